// Package wizlight provides a simple Go interface to WiZ-style smart bulbs
// controlled over the LAN with UDP JSON datagrams.
//
// Also included in cmd/wizlight is a small CLI utility that allows turning a
// bulb on and off, changing its color, and running a party mode.
package wizlight

import (
	"github.com/wizlan/wizlight/common"
	"github.com/wizlan/wizlight/protocol"
)

const (
	// VERSION of this library
	VERSION = `0.1.0`
)

// NewClient returns a pointer to a new Client that sends its commands over
// the protocol p.
func NewClient(p protocol.Protocol) *Client {
	return &Client{
		protocol:      p,
		subscriptions: make(map[string]*common.Subscription),
	}
}

// Dial returns a Client connected to the bulb at host over UDP.  host is of
// the form host:port, and the port defaults to common.DefaultPort.
func Dial(host string) (*Client, error) {
	p, err := protocol.NewUDP(host)
	if err != nil {
		return nil, err
	}
	return NewClient(p), nil
}

// SetLogger allows assigning a custom levelled logger that conforms to the
// common.Logger interface.  Defaults to common.StubLogger, which does no
// logging at all.
func SetLogger(logger common.Logger) {
	common.SetLogger(logger)
}
