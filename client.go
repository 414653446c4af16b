package wizlight

import (
	"sync"
	"time"

	"github.com/wizlan/wizlight/common"
	"github.com/wizlan/wizlight/protocol"
	"github.com/wizlan/wizlight/protocol/message"
)

// Client controls a single bulb.  Client can not be instantiated manually or
// it will not function - always use NewClient() or Dial() to obtain a Client
// instance.
//
// Calls are serialized: each one sends a command and waits for its reply
// before the next command may be sent.
type Client struct {
	protocol protocol.Protocol
	exchange sync.Mutex

	subscriptions map[string]*common.Subscription
	closed        bool
	sync.RWMutex
}

// SetTurnedOn sets the power state of the bulb, true for on, false for off
func (c *Client) SetTurnedOn(on bool) error {
	if err := c.setPilot(`set turned on`, message.PowerPilot(on)); err != nil {
		return err
	}
	c.publish(common.EventUpdatePower{Power: on})
	return nil
}

// SetColor changes the color and dimming level of the bulb
func (c *Client) SetColor(color common.Color, dimming uint32) error {
	if err := c.setPilot(`set color`, message.ColorPilot(color, dimming)); err != nil {
		return err
	}
	c.publish(common.EventUpdateColor{Color: color, Dimming: dimming})
	return nil
}

// SetColorRGB changes the color of the bulb from channels in the range
// [0,1].  See common.NewColorRGB for how they are converted.
func (c *Client) SetColorRGB(r, g, b float64, dimming uint32) error {
	return c.SetColor(common.NewColorRGB(r, g, b), dimming)
}

// GetConfig requests the user configuration of the bulb
func (c *Client) GetConfig() (message.UserConfig, error) {
	return c.getUserConfig(`get config`)
}

// GetPilot requests the user configuration of the bulb, exactly like
// GetConfig.  Despite its name it does not return the live pilot state.
func (c *Client) GetPilot() (message.UserConfig, error) {
	return c.getUserConfig(`get pilot`)
}

// SetTimeout sets how long operations wait for the bulb to reply, if the
// protocol supports it.  Zero waits forever.
func (c *Client) SetTimeout(timeout time.Duration) {
	if t, ok := c.protocol.(protocol.Timeouter); ok {
		t.SetTimeout(timeout)
	}
}

// GetTimeout returns the currently configured reply timeout
func (c *Client) GetTimeout() time.Duration {
	if t, ok := c.protocol.(protocol.Timeouter); ok {
		return t.GetTimeout()
	}
	return common.DefaultTimeout
}

// NewSubscription returns a new *common.Subscription for receiving events
// from this client.
func (c *Client) NewSubscription() (*common.Subscription, error) {
	c.Lock()
	defer c.Unlock()
	if c.closed {
		return nil, common.ErrClosed
	}
	sub := common.NewSubscription(c)
	c.subscriptions[sub.ID()] = sub
	return sub, nil
}

// CloseSubscription is a callback for handling the closing of subscriptions.
func (c *Client) CloseSubscription(sub *common.Subscription) error {
	c.Lock()
	defer c.Unlock()
	if _, ok := c.subscriptions[sub.ID()]; !ok {
		return common.ErrNotFound
	}
	delete(c.subscriptions, sub.ID())
	return nil
}

// Close closes the protocol and any open subscriptions.  An operation
// blocked waiting for a reply is interrupted if the protocol allows it.
func (c *Client) Close() error {
	c.Lock()
	if c.closed {
		c.Unlock()
		return common.ErrClosed
	}
	c.closed = true
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.Unlock()

	for _, sub := range subs {
		if err := sub.Close(); err != nil {
			common.Log.Warnf("Failed closing subscription %s: %v", sub.ID(), err)
		}
	}

	return c.protocol.Close()
}

func (c *Client) send(op string, cmd message.Command) (*message.Response, error) {
	c.RLock()
	closed := c.closed
	c.RUnlock()
	if closed {
		return nil, common.NewError(common.ErrNetwork, op, common.ErrClosed)
	}

	c.exchange.Lock()
	defer c.exchange.Unlock()

	resp, err := c.protocol.RoundTrip(cmd)
	if err != nil {
		common.Log.Debugf("Failed %s: %v", op, err)
		if common.KindOf(err) == nil {
			err = common.NewError(common.ErrNetwork, op, err)
		}
		return nil, err
	}
	if resp.Method != cmd.Method() {
		return nil, unexpected(op, cmd.Method(), resp)
	}
	if resp.Error != nil {
		return nil, common.NewError(common.ErrServer, op, resp.Error)
	}

	return resp, nil
}

func (c *Client) setPilot(op string, pilot message.Pilot) error {
	resp, err := c.send(op, message.SetPilot{Pilot: pilot})
	if err != nil {
		return err
	}

	switch res := resp.Result.(type) {
	case message.SetPilotResult:
		if !res.Success {
			return common.NewError(common.ErrServer, op, nil)
		}
		return nil
	default:
		return unexpected(op, message.MethodSetPilot, resp)
	}
}

func (c *Client) getUserConfig(op string) (message.UserConfig, error) {
	resp, err := c.send(op, message.GetUserConfig{})
	if err != nil {
		return message.UserConfig{}, err
	}

	switch res := resp.Result.(type) {
	case message.UserConfigResult:
		return res.UserConfig, nil
	default:
		return message.UserConfig{}, unexpected(op, message.MethodGetUserConfig, resp)
	}
}

func unexpected(op string, want message.Method, resp *message.Response) error {
	common.Log.Warnf("Expected %v reply to %s, got %v", want, op, resp.Method)
	return common.NewError(common.ErrUnexpected, op, &mismatch{want: want, got: resp.Method})
}

type mismatch struct {
	want, got message.Method
}

func (m *mismatch) Error() string {
	return `expected ` + m.want.String() + ` reply, got ` + m.got.String()
}

// Pushes an event to subscribers
func (c *Client) publish(event interface{}) {
	c.RLock()
	subs := make([]*common.Subscription, 0, len(c.subscriptions))
	for _, sub := range c.subscriptions {
		subs = append(subs, sub)
	}
	c.RUnlock()

	for _, sub := range subs {
		if err := sub.Write(event); err != nil {
			common.Log.Warnf("Failed publishing %T to subscription %s: %v", event, sub.ID(), err)
		}
	}
}

var (
	_ common.Bulb               = (*Client)(nil)
	_ common.SubscriptionTarget = (*Client)(nil)
)
