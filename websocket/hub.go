package websocket

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub maintains the set of active clients and broadcasts messages to them
type Hub struct {
	// Registered clients
	clients map[*Client]bool

	// Teams mapping (postID -> clients)
	teams map[uint]map[*Client]bool

	// Mutex for teams map
	teamsMux sync.RWMutex

	// Register requests from the clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a new hub instance
func NewHub() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		teams:      make(map[uint]map[*Client]bool),
	}
}

// Run starts the hub
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.closeSend()

				// Remove client from all team channels
				h.teamsMux.Lock()
				for postID, clients := range h.teams {
					if _, ok := clients[client]; ok {
						delete(h.teams[postID], client)
						// Clean up empty team channels
						if len(h.teams[postID]) == 0 {
							delete(h.teams, postID)
						}
					}
				}
				h.teamsMux.Unlock()
			}
		}
	}
}

// joinTeam adds a client to a team channel
func (h *Hub) joinTeam(client *Client, postID uint) {
	h.teamsMux.Lock()
	defer h.teamsMux.Unlock()

	if _, ok := h.teams[postID]; !ok {
		h.teams[postID] = make(map[*Client]bool)
	}
	h.teams[postID][client] = true
}

// leaveTeam removes a client from a team channel
func (h *Hub) leaveTeam(client *Client, postID uint) {
	h.teamsMux.Lock()
	defer h.teamsMux.Unlock()

	if _, ok := h.teams[postID]; ok {
		delete(h.teams[postID], client)
		if len(h.teams[postID]) == 0 {
			delete(h.teams, postID)
		}
	}
}

// evictFromTeam drops every connection the user has in a team channel.
func (h *Hub) evictFromTeam(postID, userID uint) {
	h.teamsMux.Lock()
	var evicted []*Client
	if clients, ok := h.teams[postID]; ok {
		for client := range clients {
			if client.userID == userID {
				delete(clients, client)
				evicted = append(evicted, client)
			}
		}
		if len(h.teams[postID]) == 0 {
			delete(h.teams, postID)
		}
	}
	h.teamsMux.Unlock()

	for _, client := range evicted {
		client.forgetTeam(postID)
	}
}

// broadcastToTeam sends a message to all clients in a team channel.
// Delivery is best-effort: a client whose buffer is full is handed to the
// hub for teardown rather than torn down here, so only Run ever closes a
// send channel.
func (h *Hub) broadcastToTeam(postID uint, message []byte) {
	h.teamsMux.RLock()
	clients := make([]*Client, 0, len(h.teams[postID]))
	for client := range h.teams[postID] {
		clients = append(clients, client)
	}
	h.teamsMux.RUnlock()

	for _, client := range clients {
		if !client.trySend(message) {
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// BroadcastToTeam sends a typed message to all clients in a team channel
func BroadcastToTeam(postID uint, msgType string, payload interface{}) {
	msg := Message{
		Type:    msgType,
		Payload: payload,
	}

	msgBytes, err := json.Marshal(msg)
	if err != nil {
		logrus.WithError(err).Error("failed to marshal broadcast message")
		return
	}

	hub.broadcastToTeam(postID, msgBytes)
}

// EvictFromTeam removes every connection a user holds on a team channel.
// Membership changes take effect on the push path the moment they land,
// not on the user's next send.
func EvictFromTeam(postID, userID uint) {
	hub.evictFromTeam(postID, userID)
}

// Global hub instance
var hub *Hub

// InitHub initializes the global hub
func InitHub() {
	hub = NewHub()
	go hub.Run()
}
