package handler

import (
	"net/http"

	"github.com/faizuddin0019/werwolf-sub002/internal/engine"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type TargetInput struct {
	TargetID string `json:"target_id" binding:"required" example:"6f1c2a84-..."`
}

type PlayerInput struct {
	PlayerID string `json:"player_id" binding:"required" example:"6f1c2a84-..."`
}

// endregion

// sessionAction resolves the game code and runs an engine call that takes
// only the caller's client identity.
func (h *Handler) sessionAction(c *gin.Context, fn func(gameID, clientID string) error) {
	game, err := h.Engine.GetGameByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := fn(game.ID, clientID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// targetAction is sessionAction plus a required target id in the body.
func (h *Handler) targetAction(c *gin.Context, fn func(gameID, clientID, targetID string) error) {
	var input TargetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, engine.ErrValidation)
		return
	}
	game, err := h.Engine.GetGameByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := fn(game.ID, clientID(c), input.TargetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

func (h *Handler) playerAction(c *gin.Context, fn func(gameID, clientID, playerID string) error) {
	var input PlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, engine.ErrValidation)
		return
	}
	game, err := h.Engine.GetGameByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := fn(game.ID, clientID(c), input.PlayerID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, SuccessResponse{Success: true})
}

// AssignRoles godoc
// @Summary      Assign roles (host only)
// @Description  Deals one werewolf, one doctor, one police and villagers among the joined players. Requires at least 6 non-host players. The game stays in the lobby.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      422  {object}  ErrorResponse "Fewer than 6 players"
// @Router       /games/{code}/assign_roles [post]
func (h *Handler) AssignRoles(c *gin.Context) {
	h.sessionAction(c, h.Engine.AssignRoles)
}

// NextPhase godoc
// @Summary      Advance to the next phase (host only)
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Transition not valid from the current phase"
// @Router       /games/{code}/next_phase [post]
func (h *Handler) NextPhase(c *gin.Context) {
	h.sessionAction(c, h.Engine.NextPhase)
}

// RevealDead godoc
// @Summary      Resolve the night and reveal the casualty (host only)
// @Description  The wolf's target dies unless the doctor saved that exact player. Advances to the reveal phase and re-checks the win condition.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Failure      409  {object}  ErrorResponse
// @Router       /games/{code}/reveal_dead [post]
func (h *Handler) RevealDead(c *gin.Context) {
	h.sessionAction(c, h.Engine.RevealDead)
}

// BeginVoting godoc
// @Summary      Open the day vote (host only)
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/begin_voting [post]
func (h *Handler) BeginVoting(c *gin.Context) {
	h.sessionAction(c, h.Engine.BeginVoting)
}

// FinalVote godoc
// @Summary      Open the final voting round (host only)
// @Description  Clears the first round's votes so the final round starts clean.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/final_vote [post]
func (h *Handler) FinalVote(c *gin.Context) {
	h.sessionAction(c, h.Engine.FinalVote)
}

// EliminatePlayer godoc
// @Summary      Tally final votes and eliminate (host only)
// @Description  Eliminates the plurality target, advances the day counter and loops back to the next night.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/eliminate_player [post]
func (h *Handler) EliminatePlayer(c *gin.Context) {
	h.sessionAction(c, h.Engine.EliminatePlayer)
}

// EndGame godoc
// @Summary      Abort the game (host only)
// @Description  Ends the game immediately with no winning faction.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/end_game [post]
func (h *Handler) EndGame(c *gin.Context) {
	h.sessionAction(c, h.Engine.EndGame)
}

// WolfSelect godoc
// @Summary      Pick the werewolf's night target
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body TargetInput true "Target"
// @Success      200  {object}  SuccessResponse
// @Failure      409  {object}  ErrorResponse "Wrong phase, phase not opened, or already acted"
// @Router       /games/{code}/wolf_select [post]
func (h *Handler) WolfSelect(c *gin.Context) {
	h.targetAction(c, h.Engine.WolfSelect)
}

// DoctorSave godoc
// @Summary      Pick the doctor's protected player
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body TargetInput true "Target"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/doctor_save [post]
func (h *Handler) DoctorSave(c *gin.Context) {
	h.targetAction(c, h.Engine.DoctorSave)
}

// PoliceInspect godoc
// @Summary      Inspect a player's role
// @Description  The result appears only in the inspecting player's session view.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body TargetInput true "Target"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/police_inspect [post]
func (h *Handler) PoliceInspect(c *gin.Context) {
	h.targetAction(c, h.Engine.PoliceInspect)
}

// Vote godoc
// @Summary      Cast or change a day vote
// @Description  One vote per round per player; a repeat vote replaces the earlier choice. The host cannot vote.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body TargetInput true "Target"
// @Success      200  {object}  SuccessResponse
// @Failure      403  {object}  ErrorResponse "Host or dead player voting"
// @Router       /games/{code}/vote [post]
func (h *Handler) Vote(c *gin.Context) {
	h.targetAction(c, h.Engine.Vote)
}

// RequestLeave godoc
// @Summary      Request to leave the game
// @Description  Files a pending leave request for the host to resolve. Idempotent.
// @Tags         actions
// @Produce      json
// @Security     BearerAuth
// @Param        code path string true "Game code"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/request_leave [post]
func (h *Handler) RequestLeave(c *gin.Context) {
	h.sessionAction(c, h.Engine.RequestLeave)
}

// ApproveLeave godoc
// @Summary      Approve a leave request (host only)
// @Description  Removes the player and re-checks the win condition.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body PlayerInput true "Player"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/approve_leave [post]
func (h *Handler) ApproveLeave(c *gin.Context) {
	h.playerAction(c, h.Engine.ApproveLeave)
}

// DenyLeave godoc
// @Summary      Deny a leave request (host only)
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body PlayerInput true "Player"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/deny_leave [post]
func (h *Handler) DenyLeave(c *gin.Context) {
	h.playerAction(c, h.Engine.DenyLeave)
}

// RemovePlayer godoc
// @Summary      Remove a player (host only)
// @Description  Unconditional removal with the same post-removal win-condition check as an approved leave.
// @Tags         actions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        code  path string true "Game code"
// @Param        input body PlayerInput true "Player"
// @Success      200  {object}  SuccessResponse
// @Router       /games/{code}/remove_player [post]
func (h *Handler) RemovePlayer(c *gin.Context) {
	h.playerAction(c, h.Engine.RemovePlayer)
}
