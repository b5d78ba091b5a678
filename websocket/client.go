package websocket

import (
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 10000
)

// Client represents a connected websocket client
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	userID   uint
	teams    map[uint]bool
	teamsMux sync.RWMutex

	sendMux sync.Mutex
	closed  bool
}

// trySend queues a message without blocking. It reports false when the
// buffer is full or the client is already torn down.
func (c *Client) trySend(message []byte) bool {
	c.sendMux.Lock()
	defer c.sendMux.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// closeSend shuts the send channel exactly once. Only the hub's Run loop
// calls this.
func (c *Client) closeSend() {
	c.sendMux.Lock()
	defer c.sendMux.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Message represents a websocket message
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// readPump pumps messages from the websocket connection to the hub
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithError(err).Error("websocket read failed")
			}
			break
		}

		HandleIncomingMessage(c, message)
	}
}

// writePump pumps messages from the hub to the websocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			// Add queued messages to the current websocket message
			n := len(c.send)
			for i := 0; i < n; i++ {
				w.Write(<-c.send)
			}

			if err := w.Close(); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// joinTeam adds the client to a team channel
func (c *Client) joinTeam(postID uint) {
	c.teamsMux.Lock()
	defer c.teamsMux.Unlock()
	c.teams[postID] = true
	c.hub.joinTeam(c, postID)
}

// leaveTeam removes the client from a team channel
func (c *Client) leaveTeam(postID uint) {
	c.teamsMux.Lock()
	defer c.teamsMux.Unlock()
	delete(c.teams, postID)
	c.hub.leaveTeam(c, postID)
}

// forgetTeam clears local membership without touching the hub. Used when
// the hub has already dropped the client from the channel.
func (c *Client) forgetTeam(postID uint) {
	c.teamsMux.Lock()
	defer c.teamsMux.Unlock()
	delete(c.teams, postID)
}

// inTeam checks if the client has joined a team channel
func (c *Client) inTeam(postID uint) bool {
	c.teamsMux.RLock()
	defer c.teamsMux.RUnlock()
	return c.teams[postID]
}

// parseTeamID converts a string team ID to uint
func parseTeamID(teamID string) uint {
	id, err := strconv.ParseUint(teamID, 10, 64)
	if err != nil {
		logrus.WithError(err).Error("failed to parse team ID")
		return 0
	}
	return uint(id)
}
