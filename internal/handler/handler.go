package handler

import (
	"errors"
	"net/http"

	"github.com/faizuddin0019/werwolf-sub002/internal/engine"
	"github.com/faizuddin0019/werwolf-sub002/internal/hub"

	"github.com/gin-gonic/gin"
)

// Handler bundles the engine and the fan-out hub behind the HTTP surface.
type Handler struct {
	Engine *engine.Engine
	Hub    *hub.Hub
}

func New(eng *engine.Engine, h *hub.Hub) *Handler {
	return &Handler{Engine: eng, Hub: h}
}

// ErrorResponse represents a typed error response body.
type ErrorResponse struct {
	Error *engine.Error `json:"error"`
}

// SuccessResponse is the body of every successful action call.
type SuccessResponse struct {
	Success bool `json:"success" example:"true"`
}

func statusForCode(code string) int {
	switch code {
	case "not_found":
		return http.StatusNotFound
	case "forbidden":
		return http.StatusForbidden
	case "wrong_phase", "phase_not_started", "already_acted",
		"game_full", "duplicate_client", "game_already_started":
		return http.StatusConflict
	case "insufficient_players":
		return http.StatusUnprocessableEntity
	case "validation_error":
		return http.StatusBadRequest
	case "code_exhaustion", "storage_unavailable":
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	var engErr *engine.Error
	if errors.As(err, &engErr) {
		c.JSON(statusForCode(engErr.Code), ErrorResponse{Error: engErr})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: &engine.Error{
		Code:    "internal",
		Message: "unexpected error",
	}})
}

func clientID(c *gin.Context) string {
	id, _ := c.Get("clientID")
	s, _ := id.(string)
	return s
}
