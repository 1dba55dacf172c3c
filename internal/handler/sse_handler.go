package handler

import (
	"io"

	"github.com/faizuddin0019/werwolf-sub002/internal/hub"

	"github.com/gin-gonic/gin"
)

// sseClientBuffer leaves headroom for bursts of mutations so a briefly
// slow reader does not miss the "refetch now" signal.
const sseClientBuffer = 16

// StreamEvents godoc
// @Summary      Subscribe to session events
// @Description  Server-Sent Events stream. Emits a session_updated event after every successful mutation; clients refetch the session view on each event. Only players of the game may subscribe.
// @Tags         games
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {string}  string "event stream"
// @Failure      403  {object}  ErrorResponse "Viewer is not in this game"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{code}/events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	// Membership check doubles as the 403/404 gate.
	view, err := h.Engine.SessionView(c.Param("code"), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	gameID := view.Game.ID

	client := make(hub.Client, sseClientBuffer)
	h.Hub.Subscribe(gameID, client)
	defer h.Hub.Unsubscribe(gameID, client)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")

	// Prime the stream so the client renders before the first mutation.
	c.SSEvent("session_updated", gin.H{"game_id": gameID})
	c.Writer.Flush()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("message", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
