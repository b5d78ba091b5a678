package websocket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(h *Hub, userID uint, buffer int) *Client {
	return &Client{
		hub:    h,
		send:   make(chan []byte, buffer),
		userID: userID,
		teams:  make(map[uint]bool),
	}
}

func TestEvictFromTeamStopsBroadcasts(t *testing.T) {
	h := NewHub()
	removed := newTestClient(h, 2, 4)
	staying := newTestClient(h, 3, 4)
	removed.joinTeam(10)
	staying.joinTeam(10)

	h.evictFromTeam(10, 2)
	h.broadcastToTeam(10, []byte("after removal"))

	assert.Len(t, staying.send, 1)
	assert.Empty(t, removed.send)
	assert.False(t, removed.inTeam(10))
	assert.True(t, staying.inTeam(10))
}

func TestEvictFromTeamDropsEveryConnection(t *testing.T) {
	h := NewHub()
	first := newTestClient(h, 2, 4)
	second := newTestClient(h, 2, 4)
	first.joinTeam(10)
	second.joinTeam(10)

	h.evictFromTeam(10, 2)
	h.broadcastToTeam(10, []byte("gone"))

	assert.Empty(t, first.send)
	assert.Empty(t, second.send)

	// The emptied channel is cleaned up
	h.teamsMux.RLock()
	_, ok := h.teams[10]
	h.teamsMux.RUnlock()
	assert.False(t, ok)
}

func TestBroadcastToTeamSlowConsumer(t *testing.T) {
	h := NewHub()
	go h.Run()

	slow := newTestClient(h, 2, 1)
	h.register <- slow
	slow.joinTeam(1)
	slow.joinTeam(2)
	slow.send <- []byte("fill") // buffer now full

	// Neither broadcast may panic; the stale client is torn down by Run.
	h.broadcastToTeam(1, []byte("a"))
	h.broadcastToTeam(2, []byte("b"))

	assert.Eventually(t, func() bool {
		h.teamsMux.RLock()
		defer h.teamsMux.RUnlock()
		_, inOne := h.teams[1][slow]
		_, inTwo := h.teams[2][slow]
		return !inOne && !inTwo
	}, time.Second, 10*time.Millisecond)
}

func TestBroadcastAfterTeardownDoesNotPanic(t *testing.T) {
	h := NewHub()
	gone := newTestClient(h, 2, 1)
	gone.joinTeam(1)
	gone.closeSend()

	// A torn-down client still present in a snapshot must be skipped,
	// never sent to on a closed channel.
	h.broadcastToTeam(1, []byte("late"))

	assert.False(t, gone.trySend([]byte("direct")))
}
