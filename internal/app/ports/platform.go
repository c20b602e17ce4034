package ports

import "context"

// PlatformAPIPort resolves a stream identifier into a live viewer count.
// One HTTP attempt per call; any network, HTTP or decode failure (and a
// stream that is simply not live) comes back as an error the caller may
// treat as "unknown this tick".
type PlatformAPIPort interface {
	ViewerCount(ctx context.Context, identifier string) (int, error)
}
