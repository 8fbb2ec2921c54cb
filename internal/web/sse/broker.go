package sse

import (
	"log/slog"
	"sync"
)

// Signal is a lightweight refresh notification pushed to browsers.
type Signal struct {
	Event string `json:"event"`
}

// Broker manages SSE client connections and broadcasts signals.
type Broker struct {
	mu      sync.RWMutex
	clients map[chan Signal]struct{}
}

// NewBroker creates a new SSE broker.
func NewBroker() *Broker {
	return &Broker{
		clients: make(map[chan Signal]struct{}),
	}
}

// Subscribe registers a new client and returns its signal channel.
// The caller must call Unsubscribe when done.
func (b *Broker) Subscribe() chan Signal {
	ch := make(chan Signal, 64)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()
	slog.Debug("sse client connected", "total", b.Count())
	return ch
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(ch chan Signal) {
	b.mu.Lock()
	delete(b.clients, ch)
	close(ch)
	b.mu.Unlock()
	slog.Debug("sse client disconnected", "total", b.Count())
}

// Broadcast sends a signal to all connected clients.
// Slow clients that can't keep up will have their signal dropped.
func (b *Broker) Broadcast(s Signal) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.clients {
		select {
		case ch <- s:
		default:
			slog.Warn("dropping signal for slow sse client")
		}
	}
}

// Count returns the number of connected clients.
func (b *Broker) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
