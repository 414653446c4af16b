package common

import "time"

const (
	// DefaultPort is the UDP port bulbs listen on for commands
	DefaultPort = 38899
	// DefaultHost is the bulb address used when none is given
	DefaultHost = `192.168.0.70:38899`
	// DefaultTimeout for waiting on a reply.  Zero waits forever.
	DefaultTimeout time.Duration = 0
	// PublishTimeout bounds how long an event waits for a slow subscriber
	PublishTimeout = 2 * time.Second
	// MaxDatagramSize is the largest reply that will be read from a bulb
	MaxDatagramSize = 4096
)
