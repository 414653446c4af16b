package protocol

import (
	"errors"
	"net"
	"os"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wizlan/wizlight/common"
	"github.com/wizlan/wizlight/protocol/message"
)

// UDP talks to one bulb over a connected datagram socket.  Each RoundTrip
// writes one datagram and reads exactly one reply; the protocol carries no
// request IDs, so calls are serialized.
type UDP struct {
	socket  *net.UDPConn
	addr    *net.UDPAddr
	timeout atomic.Int64
	closed  atomic.Bool
	sync.Mutex
}

// NewUDP binds an ephemeral local port and connects it to host.  host is an
// address of the form host:port, the port defaults to common.DefaultPort.
func NewUDP(host string) (*UDP, error) {
	addr, err := net.ResolveUDPAddr(`udp`, withDefaultPort(host))
	if err != nil {
		return nil, common.NewError(common.ErrNetwork, `resolve `+host, err)
	}
	socket, err := net.DialUDP(`udp`, nil, addr)
	if err != nil {
		return nil, common.NewError(common.ErrNetwork, `dial `+addr.String(), err)
	}
	common.Log.Debugf("Connected %v to bulb at %v", socket.LocalAddr(), addr)

	p := &UDP{
		socket: socket,
		addr:   addr,
	}
	p.SetTimeout(common.DefaultTimeout)
	return p, nil
}

// RemoteAddr returns the address of the bulb
func (p *UDP) RemoteAddr() *net.UDPAddr {
	return p.addr
}

// SetTimeout bounds how long RoundTrip waits for a reply.  Zero waits
// forever.  It takes effect on the next RoundTrip and never blocks behind
// one in progress.
func (p *UDP) SetTimeout(timeout time.Duration) {
	p.timeout.Store(int64(timeout))
}

// GetTimeout returns the currently configured reply timeout
func (p *UDP) GetTimeout() time.Duration {
	return time.Duration(p.timeout.Load())
}

// RoundTrip sends cmd and waits for the reply
func (p *UDP) RoundTrip(cmd message.Command) (*message.Response, error) {
	op := cmd.Method().String()

	p.Lock()
	defer p.Unlock()
	if p.closed.Load() {
		return nil, common.NewError(common.ErrNetwork, op, common.ErrClosed)
	}

	msg, err := message.Encode(cmd)
	if err != nil {
		return nil, common.NewError(common.ErrParse, op, err)
	}

	common.Log.Debugf("Sending to %v: %s", p.addr, msg)
	if _, err = p.socket.Write(msg); err != nil {
		return nil, common.NewError(common.ErrNetwork, op, err)
	}

	deadline := time.Time{}
	if timeout := p.GetTimeout(); timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	if err = p.socket.SetReadDeadline(deadline); err != nil {
		return nil, common.NewError(common.ErrNetwork, op, err)
	}

	buf := make([]byte, common.MaxDatagramSize)
	n, err := p.socket.Read(buf)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrDeadlineExceeded):
			err = common.ErrTimeout
		case errors.Is(err, net.ErrClosed):
			err = common.ErrClosed
		}
		return nil, common.NewError(common.ErrNetwork, op, err)
	}
	common.Log.Debugf("Received from %v: %s", p.addr, buf[:n])

	resp, err := message.Decode(buf[:n])
	if err != nil {
		return nil, common.NewError(common.ErrParse, op, err)
	}

	return resp, nil
}

// Close closes the socket, no further communication is possible.  A
// RoundTrip blocked waiting for a reply returns immediately.
func (p *UDP) Close() error {
	if p.closed.Swap(true) {
		return common.ErrClosed
	}
	return p.socket.Close()
}

func withDefaultPort(host string) string {
	if _, _, err := net.SplitHostPort(host); err == nil {
		return host
	}
	return net.JoinHostPort(host, strconv.Itoa(common.DefaultPort))
}
