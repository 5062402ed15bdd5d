// Package bridge is the optional live link: a websocket broadcaster that
// pushes light-transform deltas and scene snapshots to external consumers
// such as a renderer following the piloted light in real time.
package bridge

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type client struct {
	conn wsConn
	send chan []byte
}

// wsConn is the part of *websocket.Conn the broadcaster uses.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

func newClient(conn wsConn) *client {
	c := &client{
		conn: conn,
		send: make(chan []byte, 64),
	}
	go c.writePump()
	return c
}

func (c *client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}

func (c *client) close() {
	close(c.send)
}

// Broadcaster fans scene updates out to connected live-link clients.
// Transform deltas are throttled and deduplicated by light name; full
// snapshots go out periodically and to every new client on connect.
type Broadcaster struct {
	mu       sync.RWMutex
	clients  map[*client]bool
	snapshot SnapshotPayload

	throttle       time.Duration
	snapshotTicker *time.Ticker
	done           chan struct{}

	flushMu        sync.Mutex
	pendingUpdates map[string]LightState
	flushTimer     *time.Timer
}

func NewBroadcaster(throttle, snapshotInterval time.Duration) *Broadcaster {
	b := &Broadcaster{
		clients:        make(map[*client]bool),
		throttle:       throttle,
		pendingUpdates: make(map[string]LightState),
		done:           make(chan struct{}),
	}

	b.snapshotTicker = time.NewTicker(snapshotInterval)
	go b.snapshotLoop()

	return b
}

// Close stops the snapshot loop and disconnects every client.
func (b *Broadcaster) Close() {
	b.snapshotTicker.Stop()
	close(b.done)

	b.mu.Lock()
	for c := range b.clients {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// AddClient registers a connection and immediately sends it the cached
// scene snapshot.
func (b *Broadcaster) AddClient(conn wsConn) *client {
	c := newClient(conn)

	// Register and deliver the snapshot under the lock: the send channel
	// is only closed by holders of the write lock, so a concurrent Close
	// cannot close it mid-send.
	b.mu.Lock()
	b.clients[c] = true
	data, _ := json.Marshal(Message{Type: MsgSnapshot, Payload: b.snapshot})
	select {
	case c.send <- data:
	default:
		// Client too slow, drop the snapshot
	}
	b.mu.Unlock()

	return c
}

func (b *Broadcaster) RemoveClient(c *client) {
	b.mu.Lock()
	if _, ok := b.clients[c]; ok {
		delete(b.clients, c)
		c.close()
	}
	b.mu.Unlock()
}

// PublishSnapshot caches the full scene state and broadcasts it.
func (b *Broadcaster) PublishSnapshot(p SnapshotPayload) {
	b.mu.Lock()
	b.snapshot = p
	b.mu.Unlock()

	b.broadcast(Message{Type: MsgSnapshot, Payload: p})
}

// Snapshot returns the last published scene state.
func (b *Broadcaster) Snapshot() SnapshotPayload {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snapshot
}

// QueueUpdate schedules a light-transform delta. Updates within the
// throttle window are coalesced; the latest state per light wins.
func (b *Broadcaster) QueueUpdate(states ...LightState) {
	b.flushMu.Lock()
	defer b.flushMu.Unlock()

	for _, s := range states {
		b.pendingUpdates[s.Name] = s
	}

	if b.flushTimer == nil {
		b.flushTimer = time.AfterFunc(b.throttle, b.flush)
	}
}

// PublishPilot announces a pilot session starting or ending.
func (b *Broadcaster) PublishPilot(light string, active bool) {
	b.broadcast(Message{Type: MsgPilot, Payload: PilotPayload{Light: light, Active: active}})
}

func (b *Broadcaster) flush() {
	b.flushMu.Lock()
	pending := b.pendingUpdates
	b.pendingUpdates = make(map[string]LightState)
	b.flushTimer = nil
	b.flushMu.Unlock()

	if len(pending) == 0 {
		return
	}

	p := DeltaPayload{Updates: make([]LightState, 0, len(pending))}
	for _, s := range pending {
		p.Updates = append(p.Updates, s)
	}
	b.broadcast(Message{Type: MsgDelta, Payload: p})
}

func (b *Broadcaster) snapshotLoop() {
	for {
		select {
		case <-b.done:
			return
		case <-b.snapshotTicker.C:
			b.mu.RLock()
			snapshot := b.snapshot
			b.mu.RUnlock()
			b.broadcast(Message{Type: MsgSnapshot, Payload: snapshot})
		}
	}
}

func (b *Broadcaster) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("bridge marshal error: %v", err)
		return
	}

	// Send while holding the read lock. RemoveClient and Close take the
	// write lock before closing a send channel, so no channel can close
	// mid-send here. Sends never block: the buffered channel either takes
	// the message or the client is marked slow.
	b.mu.RLock()
	var slow []*client
	for c := range b.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	b.mu.RUnlock()

	for _, c := range slow {
		// Client can't keep up, disconnect it
		log.Printf("live-link client too slow, disconnecting")
		b.RemoveClient(c)
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}
