// Package hudstream implements the gRPC distribution server that fans
// composed HUD frames out to remote viewers. The render loop publishes one
// encoded frame per cycle; each subscriber gets a small bounded queue and a
// slow subscriber silently loses frames rather than stalling the publisher.
package hudstream

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// QueueDepth is the per-subscriber frame queue capacity. A subscriber that
// falls more than this many frames behind starts losing frames.
const QueueDepth = 5

// Frame is one encoded HUD frame with its capture timestamp in milliseconds
// since the Unix epoch.
type Frame struct {
	JPEG []byte
	TS   int64
}

// Subscriber is one connected viewer's queue. Created by Connect, destroyed
// by Disconnect; owned by the registry.
type Subscriber struct {
	id        string
	targetFPS int32
	frames    chan Frame
}

// ID returns the subscriber's opaque identity.
func (s *Subscriber) ID() string { return s.id }

// TargetFPS returns the frame rate the client requested, zero for unlimited.
func (s *Subscriber) TargetFPS() int32 { return s.targetFPS }

// Frames returns the subscriber's receive queue.
func (s *Subscriber) Frames() <-chan Frame { return s.frames }

// Registry is the subscriber set. Publish never blocks: a full subscriber
// queue drops the frame for that subscriber only.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]*Subscriber

	subscriberCount atomic.Int32
	published       atomic.Uint64
	dropped         atomic.Uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]*Subscriber)}
}

// Connect registers a new subscriber with a fresh bounded queue.
func (r *Registry) Connect(targetFPS int32) *Subscriber {
	sub := &Subscriber{
		id:        uuid.NewString(),
		targetFPS: targetFPS,
		frames:    make(chan Frame, QueueDepth),
	}

	r.mu.Lock()
	r.subs[sub.id] = sub
	r.mu.Unlock()

	count := r.subscriberCount.Add(1)
	logf("Client connected: %s (total: %d)", sub.id, count)
	return sub
}

// Disconnect removes a subscriber. Disconnecting an unknown id is a no-op.
func (r *Registry) Disconnect(id string) {
	r.mu.Lock()
	_, ok := r.subs[id]
	if ok {
		delete(r.subs, id)
	}
	r.mu.Unlock()

	if ok {
		count := r.subscriberCount.Add(-1)
		logf("Client disconnected: %s (remaining: %d)", id, count)
	}
}

// Publish enqueues one frame to every subscriber without blocking. Queue-full
// is a silent per-subscriber drop, counted but never reported to the caller.
func (r *Registry) Publish(jpeg []byte, tsMs int64) {
	msg := Frame{JPEG: jpeg, TS: tsMs}

	r.mu.RLock()
	for _, sub := range r.subs {
		select {
		case sub.frames <- msg:
		default:
			r.dropped.Add(1)
		}
	}
	r.mu.RUnlock()

	r.published.Add(1)
}

// Stats returns registry counters.
func (r *Registry) Stats() Stats {
	return Stats{
		Subscribers:     r.subscriberCount.Load(),
		FramesPublished: r.published.Load(),
		FramesDropped:   r.dropped.Load(),
	}
}

// Stats contains registry counters.
type Stats struct {
	Subscribers     int32
	FramesPublished uint64
	FramesDropped   uint64
}
