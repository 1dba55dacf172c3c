package engine

import (
	"errors"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
	"github.com/faizuddin0019/werwolf-sub002/internal/store"

	"github.com/google/uuid"
)

// maxJoinedPlayers caps the number of non-host players per game.
const maxJoinedPlayers = 20

// Join adds a new player to a lobby. The client identity must not already
// be present in the game; display names are free to collide.
func (e *Engine) Join(code, playerName, clientID string) (*models.Player, error) {
	if playerName == "" || clientID == "" {
		return nil, ErrValidation
	}
	game, err := e.GetGameByCode(code)
	if err != nil {
		return nil, err
	}

	lock := e.gameLock(game.ID)
	lock.Lock()
	defer lock.Unlock()

	game, err = e.store.GameByID(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	if game.Phase != models.PhaseLobby {
		return nil, ErrGameStarted
	}

	players, err := e.store.PlayersByGame(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	joined := 0
	maxOrder := 0
	for _, p := range players {
		if p.ClientID == clientID {
			return nil, ErrDuplicateClient
		}
		if !p.IsHost {
			joined++
		}
		if p.JoinOrder > maxOrder {
			maxOrder = p.JoinOrder
		}
	}
	if joined >= maxJoinedPlayers {
		return nil, ErrGameFull
	}

	player := &models.Player{
		ID:        uuid.NewString(),
		GameID:    game.ID,
		ClientID:  clientID,
		Name:      playerName,
		Alive:     true,
		JoinOrder: maxOrder + 1,
	}
	if err := e.store.CreatePlayer(player); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrDuplicateClient
		}
		return nil, e.storeErr(err)
	}
	e.notifier.SessionMutated(game.ID)
	return player, nil
}

// RequestLeave files a pending leave request for the calling player.
// Idempotent: an already-pending request is left as is. The host cannot
// file one; host-initiated teardown is EndGame.
func (e *Engine) RequestLeave(gameID, clientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	player, err := e.store.PlayerByClient(gameID, clientID)
	if err != nil {
		return e.storeErr(err)
	}
	if player.IsHost {
		return ErrValidation
	}
	if _, err := e.store.PendingLeaveRequestForPlayer(gameID, player.ID); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrNotFound) {
		return e.storeErr(err)
	}

	req := &models.LeaveRequest{GameID: gameID, PlayerID: player.ID, Status: models.LeavePending}
	if err := e.store.CreateLeaveRequest(req); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// ApproveLeave resolves a pending request and removes the player. The
// win-condition evaluator runs immediately after removal, since losing a
// player can end the game without any elimination action.
func (e *Engine) ApproveLeave(gameID, hostClientID, playerID string) error {
	return e.resolveLeave(gameID, hostClientID, playerID, true)
}

// DenyLeave resolves a pending request without removing the player.
func (e *Engine) DenyLeave(gameID, hostClientID, playerID string) error {
	return e.resolveLeave(gameID, hostClientID, playerID, false)
}

func (e *Engine) resolveLeave(gameID, hostClientID, playerID string, approve bool) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	player, err := e.store.PlayerByID(playerID)
	if err != nil {
		return e.storeErr(err)
	}
	if player.GameID != gameID {
		return ErrNotFound
	}
	if player.IsHost {
		return ErrValidation
	}
	req, err := e.store.PendingLeaveRequestForPlayer(gameID, playerID)
	if err != nil {
		return e.storeErr(err)
	}

	if approve {
		req.Status = models.LeaveApproved
	} else {
		req.Status = models.LeaveDenied
	}
	if err := e.store.SaveLeaveRequest(req); err != nil {
		return e.storeErr(err)
	}
	if approve {
		if err := e.removePlayerLocked(game, playerID); err != nil {
			return err
		}
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// RemovePlayer is the host's unconditional kick. Any pending leave request
// for the player is resolved along the way.
func (e *Engine) RemovePlayer(gameID, hostClientID, playerID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	player, err := e.store.PlayerByID(playerID)
	if err != nil {
		return e.storeErr(err)
	}
	if player.GameID != gameID {
		return ErrNotFound
	}
	if player.IsHost {
		return ErrValidation
	}

	if req, err := e.store.PendingLeaveRequestForPlayer(gameID, playerID); err == nil {
		req.Status = models.LeaveApproved
		if err := e.store.SaveLeaveRequest(req); err != nil {
			return e.storeErr(err)
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		return e.storeErr(err)
	}

	if err := e.removePlayerLocked(game, playerID); err != nil {
		return err
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// hostGame loads a fresh game row and verifies the caller is its host.
// Must be called with the game lock held.
func (e *Engine) hostGame(gameID, hostClientID string) (*models.Game, error) {
	game, err := e.store.GameByID(gameID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	if game.HostClientID != hostClientID {
		return nil, ErrForbidden
	}
	return game, nil
}

// removePlayerLocked deletes the player together with every row still
// pointing at it (pending night targets, votes cast by or against it),
// then re-evaluates the win condition, which may force the game into its
// ended phase. Leaving a dangling target would wedge RevealDead.
func (e *Engine) removePlayerLocked(game *models.Game, playerID string) error {
	if err := e.store.DeletePlayer(playerID); err != nil {
		return e.storeErr(err)
	}
	if err := e.store.DeleteVotesForPlayer(game.ID, playerID); err != nil {
		return e.storeErr(err)
	}

	state, err := e.store.RoundState(game.ID)
	if err != nil {
		return e.storeErr(err)
	}
	dropped := false
	if state.WolfTargetID != nil && *state.WolfTargetID == playerID {
		state.WolfTargetID = nil
		dropped = true
	}
	if state.DoctorSavedID != nil && *state.DoctorSavedID == playerID {
		state.DoctorSavedID = nil
		dropped = true
	}
	if state.PoliceInspectedID != nil && *state.PoliceInspectedID == playerID {
		state.PoliceInspectedID = nil
		dropped = true
	}
	if dropped {
		if err := e.store.SaveRoundState(state); err != nil {
			return e.storeErr(err)
		}
	}

	players, err := e.store.PlayersByGame(game.ID)
	if err != nil {
		return e.storeErr(err)
	}
	if evaluateWin(game, players) {
		if err := e.store.SaveGame(game); err != nil {
			return e.storeErr(err)
		}
	}
	return nil
}
