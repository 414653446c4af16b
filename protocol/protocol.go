// Package protocol implements the transport used to talk to a bulb.
//
// This package is not designed to be used directly by end users, other than
// to supply a transport when creating a new Client from the wizlight package.
//
// The currently implemented transports are:
//
//	UDP
package protocol

import (
	"time"

	"github.com/wizlan/wizlight/protocol/message"
)

// Protocol defines the interface between the Client and a transport
// implementation
type Protocol interface {
	// RoundTrip sends cmd and returns the single reply it provoked.  It must
	// not be called again before the previous call returned.
	RoundTrip(cmd message.Command) (*message.Response, error)
	// Close closes the transport, no further communication is possible
	Close() error
}

// Timeouter is implemented by transports that can bound how long RoundTrip
// waits for a reply
type Timeouter interface {
	SetTimeout(timeout time.Duration)
	GetTimeout() time.Duration
}
