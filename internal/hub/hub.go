package hub

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single subscriber connection (one browser watching
// a game). It's essentially a channel that the SSE handler listens to.
type Client chan []byte

// Hub fans events out to all subscribers of a game. It implements the
// engine's Notifier: after every successful write the engine emits an
// opaque "session mutated" signal and subscribers refetch their view.
type Hub struct {
	games map[string]map[Client]bool
	mu    sync.RWMutex
	log   zerolog.Logger
}

// NewHub creates a new Hub.
func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		games: make(map[string]map[Client]bool),
		log:   log,
	}
}

// Subscribe adds a new client to a specific game.
func (h *Hub) Subscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]bool)
	}
	h.games[gameID][client] = true
}

// Unsubscribe removes a client from a game.
func (h *Hub) Unsubscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client) // Close the channel to signal the SSE handler to stop.
			if len(clients) == 0 {
				delete(h.games, gameID)
			}
		}
	}
}

// SessionMutated broadcasts a session_updated event for the game.
func (h *Hub) SessionMutated(gameID string) {
	h.Broadcast(gameID, Event{
		Type:    "session_updated",
		Payload: map[string]string{"game_id": gameID},
	})
}

// Broadcast sends an event to all clients subscribed to a game.
func (h *Hub) Broadcast(gameID string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.games[gameID]; ok {
		messageBytes, err := json.Marshal(event)
		if err != nil {
			h.log.Error().Err(err).Str("game_id", gameID).Msg("failed to marshal event")
			return
		}

		for client := range clients {
			// Non-blocking send so a slow client cannot stall the hub.
			select {
			case client <- messageBytes:
			default:
				// Client channel is full; the unsubscribe path cleans it up.
			}
		}
	}
}
