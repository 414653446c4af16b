package common

import (
	"sync"
	"time"

	"github.com/satori/go.uuid"
)

const subscriptionChanSize = 16

// SubscriptionTarget is implemented by anything that feeds events to
// subscriptions, and must be told when one goes away
type SubscriptionTarget interface {
	NewSubscription() (*Subscription, error)
	CloseSubscription(*Subscription) error
}

// Subscription exposes a channel of events (EventUpdatePower,
// EventUpdateColor) published by its target
type Subscription struct {
	events   chan interface{}
	quitChan chan struct{}
	once     sync.Once
	id       uuid.UUID
	target   SubscriptionTarget
}

// ID returns the unique ID for this subscription
func (s *Subscription) ID() string {
	return s.id.String()
}

// Events returns the channel events are delivered on.  The channel is never
// closed, select on Done to learn when the subscription ends.
func (s *Subscription) Events() <-chan interface{} {
	return s.events
}

// Done is closed once the subscription has been closed
func (s *Subscription) Done() <-chan struct{} {
	return s.quitChan
}

// Write delivers event, waiting at most PublishTimeout for room in the
// buffer.
func (s *Subscription) Write(event interface{}) error {
	select {
	case <-s.quitChan:
		return ErrClosed
	default:
	}

	timer := time.NewTimer(PublishTimeout)
	defer timer.Stop()
	select {
	case <-s.quitChan:
		return ErrClosed
	case s.events <- event:
		return nil
	case <-timer.C:
		return ErrTimeout
	}
}

// Close detaches the subscription from its target.  Closing twice returns
// ErrClosed.
func (s *Subscription) Close() error {
	closed := false
	s.once.Do(func() {
		close(s.quitChan)
		closed = true
	})
	if !closed {
		Log.Warnf(`subscription %s already closed`, s.ID())
		return ErrClosed
	}
	return s.target.CloseSubscription(s)
}

// NewSubscription returns a *Subscription attached to target
func NewSubscription(target SubscriptionTarget) *Subscription {
	return &Subscription{
		events:   make(chan interface{}, subscriptionChanSize),
		quitChan: make(chan struct{}),
		id:       uuid.NewV4(),
		target:   target,
	}
}
