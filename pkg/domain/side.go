package domain

import (
	"fmt"
	"strings"
)

// Side represents the role of the running process.
type Side int

const (
	// SideUnknown is the result of a failed conversion. The application never
	// runs with it; ResolveSide turns it into SideClient.
	SideUnknown Side = iota

	// SideServer has no render capabilities and holds the authoritative game state.
	SideServer

	// SideClient renders and sends user input. It may embed a server.
	SideClient
)

// ParseSide converts a token into a Side. Matching is case-insensitive and
// ignores surrounding whitespace. Anything other than "server" or "client",
// including the empty string, yields SideUnknown.
func ParseSide(token string) Side {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "server":
		return SideServer
	case "client":
		return SideClient
	default:
		return SideUnknown
	}
}

// ResolveSide applies the bootstrap policy: an unknown side starts a client.
func ResolveSide(s Side) Side {
	if s.IsUnknown() {
		return SideClient
	}
	return s
}

func (s Side) String() string {
	switch s {
	case SideServer:
		return "server"
	case SideClient:
		return "client"
	default:
		return "unknown"
	}
}

func (s Side) IsServer() bool  { return s == SideServer }
func (s Side) IsClient() bool  { return s == SideClient }
func (s Side) IsUnknown() bool { return s != SideServer && s != SideClient }

// Set implements pflag.Value so the side can be bound to a command line flag.
// Unrecognised values are rejected there, unlike ParseSide.
func (s *Side) Set(value string) error {
	parsed := ParseSide(value)
	if parsed.IsUnknown() {
		return fmt.Errorf("invalid side %q (want \"server\" or \"client\")", value)
	}
	*s = parsed
	return nil
}

// Type implements pflag.Value.
func (s *Side) Type() string {
	return "side"
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is lenient like
// ParseSide: unknown tokens decode to SideUnknown.
func (s *Side) UnmarshalText(text []byte) error {
	*s = ParseSide(string(text))
	return nil
}
