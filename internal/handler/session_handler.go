package handler

import (
	"net/http"

	"github.com/faizuddin0019/werwolf-sub002/internal/engine"
	"github.com/faizuddin0019/werwolf-sub002/internal/models"
	"github.com/faizuddin0019/werwolf-sub002/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type CreateGameInput struct {
	HostName string `json:"host_name" binding:"required" example:"Alice"`
	ClientID string `json:"client_id" binding:"required" example:"fp-3f9a6c"`
}

type JoinGameInput struct {
	PlayerName string `json:"player_name" binding:"required" example:"Bob"`
	ClientID   string `json:"client_id" binding:"required" example:"fp-81c2de"`
}

type SessionResponse struct {
	Game   models.Game   `json:"game"`
	Player models.Player `json:"player"`
	Token  string        `json:"token"`
}

// endregion

// CreateGame godoc
// @Summary      Create a game session
// @Description  Creates a game with a unique-today code, its host player and an empty round state, and returns a token for the host's client identity.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        input body CreateGameInput true "Host Info"
// @Success      201  {object}  SessionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse "Code space exhausted"
// @Router       /games [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input CreateGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, engine.ErrValidation)
		return
	}

	game, host, _, err := h.Engine.CreateGame(input.HostName, input.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(input.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Game: *game, Player: *host, Token: token})
}

// JoinGame godoc
// @Summary      Join a game by code
// @Description  Joins a lobby if it has not started and is not full. The client identity must be new to this game.
// @Tags         games
// @Accept       json
// @Produce      json
// @Param        code  path string true "Game code"
// @Param        input body JoinGameInput true "Player Info"
// @Success      201  {object}  SessionResponse
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Failure      409  {object}  ErrorResponse "Game started, full, or client already joined"
// @Router       /games/{code}/join [post]
func (h *Handler) JoinGame(c *gin.Context) {
	var input JoinGameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, engine.ErrValidation)
		return
	}

	player, err := h.Engine.Join(c.Param("code"), input.PlayerName, input.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	game, err := h.Engine.GetGameByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := jwt.GenerateToken(input.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SessionResponse{Game: *game, Player: *player, Token: token})
}

// GetSession godoc
// @Summary      Get the session view
// @Description  Returns the visibility-filtered session snapshot for the calling client: host sees every role, everyone else only their own.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  engine.SessionView
// @Failure      403  {object}  ErrorResponse "Viewer is not in this game"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /games/{code} [get]
func (h *Handler) GetSession(c *gin.Context) {
	view, err := h.Engine.SessionView(c.Param("code"), clientID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
