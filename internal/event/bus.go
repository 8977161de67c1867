package event

import (
	"sync"
	"time"

	"github.com/MohammedShoaib-dev/FitMate/internal/logger"
)

// Topics published by the domain services.
const (
	TopicClassCreated     = "class.created"
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
)

// Event is a published notification. Payload carries the affected entity
// (class, booking) as produced by the publisher.
type Event struct {
	Topic      string
	Payload    interface{}
	OccurredAt time.Time
}

// Bus is an in-process publish/subscribe hub. Delivery is at-least-once
// per subscriber with no ordering guarantee across subscribers. Publish
// never blocks: a subscriber whose buffer is full loses the event and a
// warning is logged.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
	closed      bool
	bufferSize  int
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]chan Event),
		bufferSize:  16,
	}
}

// Subscribe returns a channel receiving every event published to topic
// after this call. The channel is closed by Close. Subscribing to a
// closed bus yields an already-closed channel so ranging callers exit
// immediately.
func (b *Bus) Subscribe(topic string) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.bufferSize)
	if b.closed {
		close(ch)
		return ch
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)
	return ch
}

// Publish delivers the event to every current subscriber of the topic.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}

	evt := Event{
		Topic:      topic,
		Payload:    payload,
		OccurredAt: time.Now(),
	}

	for _, ch := range b.subscribers[topic] {
		select {
		case ch <- evt:
		default:
			logger.Warn("event dropped, subscriber buffer full", "topic", topic)
		}
	}
}

// Close closes all subscriber channels. Publish after Close is a no-op.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, subs := range b.subscribers {
		for _, ch := range subs {
			close(ch)
		}
	}
	b.subscribers = make(map[string][]chan Event)
}
