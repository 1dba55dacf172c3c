package engine

import (
	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

// WolfSelect records the werewolf's kill target for this night. One pick
// per night, no take-backs, no self-targeting.
func (e *Engine) WolfSelect(gameID, clientID, targetID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	state, actor, err := e.nightActionContext(gameID, clientID, targetID, models.PhaseNightWolf, models.RoleWerewolf)
	if err != nil {
		return err
	}
	if targetID == actor.ID {
		return ErrValidation
	}
	if state.WolfTargetID != nil {
		return ErrAlreadyActed
	}
	state.WolfTargetID = &targetID
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// DoctorSave records the doctor's protected player. Self-saves are
// allowed.
func (e *Engine) DoctorSave(gameID, clientID, targetID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	state, _, err := e.nightActionContext(gameID, clientID, targetID, models.PhaseNightDoctor, models.RoleDoctor)
	if err != nil {
		return err
	}
	if state.DoctorSavedID != nil {
		return ErrAlreadyActed
	}
	state.DoctorSavedID = &targetID
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// PoliceInspect records the police's inspected player. The result is
// surfaced only in the inspecting player's session view, never broadcast.
func (e *Engine) PoliceInspect(gameID, clientID, targetID string) error {
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	state, actor, err := e.nightActionContext(gameID, clientID, targetID, models.PhaseNightPolice, models.RolePolice)
	if err != nil {
		return err
	}
	if targetID == actor.ID {
		return ErrValidation
	}
	if state.PoliceInspectedID != nil {
		return ErrAlreadyActed
	}
	state.PoliceInspectedID = &targetID
	if err := e.store.SaveRoundState(state); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}

// nightActionContext runs the shared gate for the three night actions:
// right phase, phase opened by the host, actor holds the role and is
// alive, target exists in this game and is alive. Validation happens
// before any mutation so a rejected action leaves state untouched.
// Game lock held by the caller.
func (e *Engine) nightActionContext(gameID, clientID, targetID string, phase models.Phase, role models.Role) (*models.RoundState, *models.Player, error) {
	if targetID == "" {
		return nil, nil, ErrValidation
	}
	game, err := e.store.GameByID(gameID)
	if err != nil {
		return nil, nil, e.storeErr(err)
	}
	if game.Phase != phase {
		return nil, nil, ErrWrongPhase
	}
	state, err := e.store.RoundState(gameID)
	if err != nil {
		return nil, nil, e.storeErr(err)
	}
	if !state.PhaseStarted {
		return nil, nil, ErrPhaseNotStarted
	}

	actor, err := e.store.PlayerByClient(gameID, clientID)
	if err != nil {
		return nil, nil, e.storeErr(err)
	}
	if actor.Role == nil || *actor.Role != role || !actor.Alive {
		return nil, nil, ErrForbidden
	}

	target, err := e.store.PlayerByID(targetID)
	if err != nil {
		return nil, nil, e.storeErr(err)
	}
	if target.GameID != gameID || !target.Alive || target.IsHost {
		return nil, nil, ErrValidation
	}
	return state, actor, nil
}

// Vote casts or replaces the caller's vote for the current round. The
// host is structurally outside the electorate. Re-voting in the same
// round overwrites the earlier choice: last vote wins.
func (e *Engine) Vote(gameID, clientID, targetID string) error {
	if targetID == "" {
		return ErrValidation
	}
	lock := e.gameLock(gameID)
	lock.Lock()
	defer lock.Unlock()

	game, err := e.store.GameByID(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	if game.Phase != models.PhaseDayVote && game.Phase != models.PhaseDayFinalVote {
		return ErrWrongPhase
	}
	state, err := e.store.RoundState(gameID)
	if err != nil {
		return e.storeErr(err)
	}
	if !state.PhaseStarted {
		return ErrPhaseNotStarted
	}

	voter, err := e.store.PlayerByClient(gameID, clientID)
	if err != nil {
		return e.storeErr(err)
	}
	if voter.IsHost || !voter.Alive {
		return ErrForbidden
	}
	target, err := e.store.PlayerByID(targetID)
	if err != nil {
		return e.storeErr(err)
	}
	if target.GameID != gameID || !target.Alive || target.IsHost {
		return ErrValidation
	}

	vote := &models.Vote{
		GameID:   gameID,
		Round:    game.DayCount,
		VoterID:  voter.ID,
		TargetID: targetID,
	}
	if err := e.store.UpsertVote(vote); err != nil {
		return e.storeErr(err)
	}
	e.notifier.SessionMutated(gameID)
	return nil
}
