package engine

import (
	"errors"
	"testing"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

func TestWolfSelect(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	wolf, target := players[0], players[3]
	if err := e.WolfSelect(game.ID, wolf.ClientID, target.ID); err != nil {
		t.Fatalf("WolfSelect: %v", err)
	}
	state, err := e.store.RoundState(game.ID)
	if err != nil {
		t.Fatalf("RoundState: %v", err)
	}
	if state.WolfTargetID == nil || *state.WolfTargetID != target.ID {
		t.Errorf("wolf target = %v, want %s", state.WolfTargetID, target.ID)
	}

	// One pick per night; a second pick is rejected and changes nothing.
	if err := e.WolfSelect(game.ID, wolf.ClientID, players[4].ID); !errors.Is(err, ErrAlreadyActed) {
		t.Errorf("second pick: got %v, want %v", err, ErrAlreadyActed)
	}
	state, _ = e.store.RoundState(game.ID)
	if *state.WolfTargetID != target.ID {
		t.Errorf("wolf target changed to %s after rejected pick", *state.WolfTargetID)
	}
}

func TestWolfSelectGates(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	wolf, villager := players[0], players[3]

	// Wrong phase: still in the lobby.
	if err := e.WolfSelect(game.ID, wolf.ClientID, villager.ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("lobby pick: got %v, want %v", err, ErrWrongPhase)
	}

	advanceTo(t, e, game, models.PhaseNightWolf)

	// Phase matches but the host has not opened it yet.
	state, err := e.store.RoundState(game.ID)
	if err != nil {
		t.Fatalf("RoundState: %v", err)
	}
	state.PhaseStarted = false
	if err := e.store.SaveRoundState(state); err != nil {
		t.Fatalf("SaveRoundState: %v", err)
	}
	if err := e.WolfSelect(game.ID, wolf.ClientID, villager.ID); !errors.Is(err, ErrPhaseNotStarted) {
		t.Errorf("unopened phase: got %v, want %v", err, ErrPhaseNotStarted)
	}
	state.PhaseStarted = true
	if err := e.store.SaveRoundState(state); err != nil {
		t.Fatalf("SaveRoundState: %v", err)
	}

	// Only the werewolf may pick.
	if err := e.WolfSelect(game.ID, villager.ClientID, players[4].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("villager picking: got %v, want %v", err, ErrForbidden)
	}
	// No self-target.
	if err := e.WolfSelect(game.ID, wolf.ClientID, wolf.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("self-target: got %v, want %v", err, ErrValidation)
	}
	// The host is not a valid target.
	host, _ := e.store.PlayerByClient(game.ID, hostClient)
	if err := e.WolfSelect(game.ID, wolf.ClientID, host.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("host target: got %v, want %v", err, ErrValidation)
	}
	// Neither is a dead player.
	villager.Alive = false
	if err := e.store.SavePlayer(villager); err != nil {
		t.Fatalf("SavePlayer: %v", err)
	}
	if err := e.WolfSelect(game.ID, wolf.ClientID, villager.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("dead target: got %v, want %v", err, ErrValidation)
	}
	// An empty target never reaches the store.
	if err := e.WolfSelect(game.ID, wolf.ClientID, ""); !errors.Is(err, ErrValidation) {
		t.Errorf("empty target: got %v, want %v", err, ErrValidation)
	}
}

func TestDoctorSave(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightDoctor)

	doctor := players[1]
	// Self-saves are allowed.
	if err := e.DoctorSave(game.ID, doctor.ClientID, doctor.ID); err != nil {
		t.Fatalf("self-save: %v", err)
	}
	if err := e.DoctorSave(game.ID, doctor.ClientID, players[3].ID); !errors.Is(err, ErrAlreadyActed) {
		t.Errorf("second save: got %v, want %v", err, ErrAlreadyActed)
	}
}

func TestPoliceInspect(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightPolice)

	police, wolf := players[2], players[0]
	if err := e.PoliceInspect(game.ID, police.ClientID, police.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("self-inspect: got %v, want %v", err, ErrValidation)
	}
	if err := e.PoliceInspect(game.ID, police.ClientID, wolf.ID); err != nil {
		t.Fatalf("PoliceInspect: %v", err)
	}
	if err := e.PoliceInspect(game.ID, police.ClientID, players[3].ID); !errors.Is(err, ErrAlreadyActed) {
		t.Errorf("second inspect: got %v, want %v", err, ErrAlreadyActed)
	}

	state, _ := e.store.RoundState(game.ID)
	if state.PoliceInspectedID == nil || *state.PoliceInspectedID != wolf.ID {
		t.Errorf("inspected = %v, want %s", state.PoliceInspectedID, wolf.ID)
	}
}

func TestDeadRoleHolderCannotAct(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	wolf := players[0]
	wolf.Alive = false
	if err := e.store.SavePlayer(wolf); err != nil {
		t.Fatalf("SavePlayer: %v", err)
	}
	if err := e.WolfSelect(game.ID, wolf.ClientID, players[3].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("dead wolf picking: got %v, want %v", err, ErrForbidden)
	}
}

func TestVote(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseDayVote)

	if err := e.Vote(game.ID, players[0].ClientID, players[3].ID); err != nil {
		t.Fatalf("Vote: %v", err)
	}

	g, _ := e.store.GameByID(game.ID)
	votes, err := e.store.VotesByRound(game.ID, g.DayCount)
	if err != nil {
		t.Fatalf("VotesByRound: %v", err)
	}
	if len(votes) != 1 {
		t.Fatalf("votes = %d, want 1", len(votes))
	}
	if votes[0].TargetID != players[3].ID {
		t.Errorf("vote target = %s, want %s", votes[0].TargetID, players[3].ID)
	}
}

func TestVoteLastVoteWins(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseDayVote)

	if err := e.Vote(game.ID, players[0].ClientID, players[3].ID); err != nil {
		t.Fatalf("first vote: %v", err)
	}
	if err := e.Vote(game.ID, players[0].ClientID, players[4].ID); err != nil {
		t.Fatalf("re-vote: %v", err)
	}

	g, _ := e.store.GameByID(game.ID)
	votes, _ := e.store.VotesByRound(game.ID, g.DayCount)
	if len(votes) != 1 {
		t.Fatalf("votes = %d, want 1", len(votes))
	}
	if votes[0].TargetID != players[4].ID {
		t.Errorf("vote target = %s, want %s (last vote wins)", votes[0].TargetID, players[4].ID)
	}
}

func TestVoteGates(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)

	// Wrong phase: voting has not opened.
	if err := e.Vote(game.ID, players[0].ClientID, players[3].ID); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("lobby vote: got %v, want %v", err, ErrWrongPhase)
	}

	advanceTo(t, e, game, models.PhaseDayVote)

	// The host is outside the electorate.
	if err := e.Vote(game.ID, hostClient, players[3].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("host vote: got %v, want %v", err, ErrForbidden)
	}
	// Dead players do not vote.
	dead := players[5]
	dead.Alive = false
	if err := e.store.SavePlayer(dead); err != nil {
		t.Fatalf("SavePlayer: %v", err)
	}
	if err := e.Vote(game.ID, dead.ClientID, players[3].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("dead vote: got %v, want %v", err, ErrForbidden)
	}
	// Dead players are not targets either.
	if err := e.Vote(game.ID, players[0].ClientID, dead.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("dead target: got %v, want %v", err, ErrValidation)
	}
	// Neither is the host.
	host, _ := e.store.PlayerByClient(game.ID, hostClient)
	if err := e.Vote(game.ID, players[0].ClientID, host.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("host target: got %v, want %v", err, ErrValidation)
	}
}

func TestVoteAllowedInBothVotingPhases(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseDayVote)

	if err := e.Vote(game.ID, players[0].ClientID, players[3].ID); err != nil {
		t.Fatalf("day_vote vote: %v", err)
	}
	if err := e.FinalVote(game.ID, hostClient); err != nil {
		t.Fatalf("FinalVote: %v", err)
	}
	if err := e.Vote(game.ID, players[0].ClientID, players[4].ID); err != nil {
		t.Fatalf("day_final_vote vote: %v", err)
	}
}
