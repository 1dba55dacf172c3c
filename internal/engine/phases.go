package engine

import (
	"math/rand"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

// minRolePlayers is the non-host headcount required before roles can be
// dealt: one werewolf, one doctor, one police, at least three villagers.
const minRolePlayers = 6

// AssignRoles deals exactly one werewolf, one doctor and one police among
// the non-host players; everyone else becomes a villager. The host keeps
// a nil role. The game stays in the lobby so the host can review the
// roster before committing to night 1.
func (e *Engine) AssignRoles(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase != models.PhaseLobby {
		return ErrWrongPhase
	}

	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	var candidates []models.Player
	for _, p := range players {
		if !p.IsHost {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) < minRolePlayers {
		return ErrInsufficientPlayers
	}

	rand.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for i := range candidates {
		role := models.RoleVillager
		switch i {
		case 0:
			role = models.RoleWerewolf
		case 1:
			role = models.RoleDoctor
		case 2:
			role = models.RolePolice
		}
		candidates[i].Role = &role
		if err := e.store.SavePlayer(&candidates[i]); err != nil {
			return e.storeErr(err)
		}
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// NextPhase advances through the transitions that carry no side effects:
// lobby to night_wolf, night_wolf to night_doctor, night_doctor to
// night_police. The remaining transitions go through their dedicated
// operations (RevealDead, BeginVoting, FinalVote, EliminatePlayer).
// Night actions are optional; an absent role-holder is simply skipped,
// never awaited. Entering night_wolf starts a fresh night cycle and
// clears the previous cycle's targets.
func (e *Engine) NextPhase(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}

	var next models.Phase
	switch game.Phase {
	case models.PhaseLobby:
		next = models.PhaseNightWolf
	case models.PhaseNightWolf:
		next = models.PhaseNightDoctor
	case models.PhaseNightDoctor:
		next = models.PhaseNightPolice
	default:
		return ErrWrongPhase
	}

	if game.Phase == models.PhaseLobby {
		players, err := e.store.PlayersByGame(gameID)
		if err != nil {
			return e.storeErr(err)
		}
		if !rolesAssigned(players) {
			return ErrValidation
		}
	}

	return e.enterPhase(game, next)
}

// RevealDead resolves the night: the wolf's target dies unless the doctor
// saved that exact player, then the game advances to the reveal phase and
// the win condition is re-checked.
func (e *Engine) RevealDead(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase != models.PhaseNightPolice {
		return ErrWrongPhase
	}

	state, err := e.store.RoundState(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	if state.WolfTargetID != nil {
		saved := state.DoctorSavedID != nil && *state.DoctorSavedID == *state.WolfTargetID
		if !saved {
			victim, err := e.store.PlayerByID(*state.WolfTargetID)
			if err != nil {
				return e.storeErr(err)
			}
			victim.Alive = false
			if err := e.store.SavePlayer(victim); err != nil {
				return e.storeErr(err)
			}
		}
	}

	game.Phase = models.PhaseReveal
	state.PhaseStarted = true
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}

	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	evaluateWin(game, players)
	if err := e.store.SaveGame(game); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// BeginVoting opens the first day vote.
func (e *Engine) BeginVoting(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase != models.PhaseReveal {
		return ErrWrongPhase
	}
	return e.enterPhase(game, models.PhaseDayVote)
}

// FinalVote opens the second voting round. Votes cast during day_vote are
// cleared so the final round starts clean.
func (e *Engine) FinalVote(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase != models.PhaseDayVote {
		return ErrWrongPhase
	}
	if err := e.store.DeleteVotesByRound(gameID, game.DayCount); err != nil {
		return e.storeErr(err)
	}
	return e.enterPhase(game, models.PhaseDayFinalVote)
}

// EliminatePlayer tallies the final votes, eliminates the plurality
// target, advances the day counter and loops back to the next night. With
// zero votes cast nobody is eliminated but the round still advances.
func (e *Engine) EliminatePlayer(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase != models.PhaseDayFinalVote {
		return ErrWrongPhase
	}

	votes, err := e.store.VotesByRound(gameID, game.DayCount)
	if err != nil {
		return e.storeErr(err)
	}
	players, err := e.store.PlayersByGame(gameID)
	if err != nil {
		return e.storeErr(err)
	}

	if targetID, ok := tallyVotes(votes, players); ok {
		target, err := e.store.PlayerByID(targetID)
		if err != nil {
			return e.storeErr(err)
		}
		target.Alive = false
		if err := e.store.SavePlayer(target); err != nil {
			return e.storeErr(err)
		}
		for i := range players {
			if players[i].ID == targetID {
				players[i].Alive = false
			}
		}
	}

	game.DayCount++
	game.Phase = models.PhaseNightWolf
	evaluateWin(game, players)
	if err := e.store.SaveGame(game); err != nil {
		return e.storeErr(err)
	}

	state, err := e.store.RoundState(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	state.WolfTargetID = nil
	state.DoctorSavedID = nil
	state.PoliceInspectedID = nil
	state.PhaseStarted = game.Phase == models.PhaseNightWolf
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// EndGame is the host's manual abort: the game ends with no winner.
func (e *Engine) EndGame(gameID, hostClientID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.hostGame(gameID, hostClientID)
	if err != nil {
		return err
	}
	if game.Phase == models.PhaseEnded {
		return ErrWrongPhase
	}
	game.Phase = models.PhaseEnded
	if err := e.store.SaveGame(game); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// enterPhase commits a transition, opens the phase for player actions and
// clears night targets when a new night cycle begins. Game lock held.
func (e *Engine) enterPhase(game *models.Game, next models.Phase) error {
	state, err := e.store.RoundState(game.ID)
	if err != nil {
		return e.storeErr(err)
	}
	if next == models.PhaseNightWolf {
		state.WolfTargetID = nil
		state.DoctorSavedID = nil
		state.PoliceInspectedID = nil
	}
	state.PhaseStarted = true

	game.Phase = next
	if err := e.store.SaveGame(game); err != nil {
		return e.storeErr(err)
	}
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(game.ID)
	return nil
}

func rolesAssigned(players []models.Player) bool {
	assigned := false
	for _, p := range players {
		if p.IsHost {
			continue
		}
		if p.Role == nil {
			return false
		}
		assigned = true
	}
	return assigned
}
