package storage

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestCacheSetGet(t *testing.T) {
	t.Parallel()

	c := NewCache[string](4, 0)

	_, ok := c.Get("bobchan")
	assert.False(t, ok)

	c.Set("bobchan", "42")
	id, ok := c.Get("bobchan")
	assert.True(t, ok)
	assert.Equal(t, "42", id)

	c.ClearKey("bobchan")
	_, ok = c.Get("bobchan")
	assert.False(t, ok)
}
