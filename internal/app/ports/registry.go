package ports

import "fmt"

// Platform codes match the input file: 0 is YouTube, 1 is Twitch.
type Platform int

const (
	PlatformYouTube Platform = iota
	PlatformTwitch
)

func (p Platform) String() string {
	switch p {
	case PlatformYouTube:
		return "youtube"
	case PlatformTwitch:
		return "twitch"
	}
	return fmt.Sprintf("platform(%d)", int(p))
}

// Stream is one monitored stream from the registry file. The Identifier
// is extracted from the URL at load time: a video ID for YouTube, a
// channel login for Twitch. Streams are immutable after load and their
// order is fixed for the process lifetime.
type Stream struct {
	Name       string
	Platform   Platform
	URL        string
	Identifier string
}

type RegistryPort interface {
	Streams() []Stream
}
