package engine

import (
	"errors"
	"testing"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

func TestJoinAssignsIncreasingJoinOrder(t *testing.T) {
	e := newTestEngine()
	_, players := createTestGame(t, e, 3)

	for i, p := range players {
		if p.JoinOrder != i+1 {
			t.Errorf("player %d join order = %d, want %d", i+1, p.JoinOrder, i+1)
		}
		if p.IsHost {
			t.Errorf("player %d is flagged as host", i+1)
		}
		if p.Role != nil {
			t.Errorf("player %d already has role %s", i+1, *p.Role)
		}
		if !p.Alive {
			t.Errorf("player %d is not alive", i+1)
		}
	}
}

func TestJoinRejectsDuplicateClient(t *testing.T) {
	e := newTestEngine()
	game, _ := createTestGame(t, e, 1)

	if _, err := e.Join(game.Code, "another name", "c1"); !errors.Is(err, ErrDuplicateClient) {
		t.Errorf("rejoining client: got %v, want %v", err, ErrDuplicateClient)
	}
	// The host's client identity is taken too.
	if _, err := e.Join(game.Code, "sneaky host", hostClient); !errors.Is(err, ErrDuplicateClient) {
		t.Errorf("host client joining: got %v, want %v", err, ErrDuplicateClient)
	}
}

func TestJoinAllowsDuplicateNames(t *testing.T) {
	e := newTestEngine()
	game, _ := createTestGame(t, e, 1)

	if _, err := e.Join(game.Code, "p1", "c-other"); err != nil {
		t.Errorf("same display name, new client: %v", err)
	}
}

func TestJoinRejectedAfterGameStarts(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	if _, err := e.Join(game.Code, "latecomer", "c-late"); !errors.Is(err, ErrGameStarted) {
		t.Errorf("joining after start: got %v, want %v", err, ErrGameStarted)
	}
}

func TestJoinEnforcesPlayerCap(t *testing.T) {
	e := newTestEngine()
	game, _ := createTestGame(t, e, maxJoinedPlayers)

	if _, err := e.Join(game.Code, "overflow", "c-overflow"); !errors.Is(err, ErrGameFull) {
		t.Errorf("joining a full game: got %v, want %v", err, ErrGameFull)
	}
}

func TestRequestLeaveIsIdempotent(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)

	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("repeated RequestLeave: %v", err)
	}

	reqs, err := e.store.PendingLeaveRequests(game.ID)
	if err != nil {
		t.Fatalf("PendingLeaveRequests: %v", err)
	}
	if len(reqs) != 1 {
		t.Fatalf("pending requests = %d, want 1", len(reqs))
	}
	if reqs[0].PlayerID != players[0].ID {
		t.Errorf("request player = %s, want %s", reqs[0].PlayerID, players[0].ID)
	}
}

func TestApproveLeaveRemovesPlayer(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 3)

	if err := e.RequestLeave(game.ID, "c2"); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.ApproveLeave(game.ID, hostClient, players[1].ID); err != nil {
		t.Fatalf("ApproveLeave: %v", err)
	}

	if _, err := e.store.PlayerByID(players[1].ID); err == nil {
		t.Error("approved leaver still present")
	}
	reqs, _ := e.store.PendingLeaveRequests(game.ID)
	if len(reqs) != 0 {
		t.Errorf("pending requests = %d, want 0", len(reqs))
	}
	// A lobby-phase departure never ends the game.
	if got := currentPhase(t, e, game.ID); got != models.PhaseLobby {
		t.Errorf("phase = %s, want %s", got, models.PhaseLobby)
	}
}

func TestDenyLeaveKeepsPlayer(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)

	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.DenyLeave(game.ID, hostClient, players[0].ID); err != nil {
		t.Fatalf("DenyLeave: %v", err)
	}

	if _, err := e.store.PlayerByID(players[0].ID); err != nil {
		t.Errorf("denied leaver is gone: %v", err)
	}
	reqs, _ := e.store.PendingLeaveRequests(game.ID)
	if len(reqs) != 0 {
		t.Errorf("pending requests = %d, want 0", len(reqs))
	}

	// The player may ask again after a denial.
	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("RequestLeave after denial: %v", err)
	}
	reqs, _ = e.store.PendingLeaveRequests(game.ID)
	if len(reqs) != 1 {
		t.Errorf("pending requests after re-request = %d, want 1", len(reqs))
	}
}

func TestResolveLeaveRequiresHost(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)

	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.ApproveLeave(game.ID, "c2", players[0].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-host approve: got %v, want %v", err, ErrForbidden)
	}
	if err := e.DenyLeave(game.ID, "c2", players[0].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-host deny: got %v, want %v", err, ErrForbidden)
	}
}

func TestResolveLeaveWithoutRequest(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)

	if err := e.ApproveLeave(game.ID, hostClient, players[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("approve without request: got %v, want %v", err, ErrNotFound)
	}
}

func TestRemovePlayer(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 3)

	if err := e.RemovePlayer(game.ID, hostClient, players[2].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	remaining, _ := e.store.PlayersByGame(game.ID)
	if len(remaining) != 3 { // host + 2
		t.Errorf("players left = %d, want 3", len(remaining))
	}
}

func TestRemovePlayerResolvesPendingRequest(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)

	if err := e.RequestLeave(game.ID, "c1"); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.RemovePlayer(game.ID, hostClient, players[0].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	reqs, _ := e.store.PendingLeaveRequests(game.ID)
	if len(reqs) != 0 {
		t.Errorf("pending requests = %d, want 0", len(reqs))
	}
}

func TestRemovePlayerGuards(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 2)
	host, err := e.store.PlayerByClient(game.ID, hostClient)
	if err != nil {
		t.Fatalf("PlayerByClient: %v", err)
	}

	if err := e.RemovePlayer(game.ID, hostClient, host.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("host removing itself: got %v, want %v", err, ErrValidation)
	}
	if err := e.RemovePlayer(game.ID, "c1", players[1].ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-host kick: got %v, want %v", err, ErrForbidden)
	}
	if err := e.RemovePlayer(game.ID, hostClient, "no-such-player"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown player: got %v, want %v", err, ErrNotFound)
	}

	_, otherPlayers := createTestGame2(t, e)
	if err := e.RemovePlayer(game.ID, hostClient, otherPlayers[0].ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("cross-game kick: got %v, want %v", err, ErrNotFound)
	}
}

// createTestGame2 makes a second game with its own host so cross-game
// checks have a foreign player to point at.
func createTestGame2(t *testing.T, e *Engine) (*models.Game, []*models.Player) {
	t.Helper()
	game, _, _, err := e.CreateGame("Other Host", "other-host-client")
	if err != nil {
		t.Fatalf("CreateGame: %v", err)
	}
	p, err := e.Join(game.Code, "q1", "other-c1")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	return game, []*models.Player{p}
}

// Approving the werewolf's leave mid-game hands the villagers the win
// without any elimination action.
func TestApproveLeaveOfWerewolfEndsGame(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	wolf := players[0]
	if err := e.RequestLeave(game.ID, wolf.ClientID); err != nil {
		t.Fatalf("RequestLeave: %v", err)
	}
	if err := e.ApproveLeave(game.ID, hostClient, wolf.ID); err != nil {
		t.Fatalf("ApproveLeave: %v", err)
	}

	g, err := e.store.GameByID(game.ID)
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	if g.Phase != models.PhaseEnded {
		t.Errorf("phase = %s, want %s", g.Phase, models.PhaseEnded)
	}
	if g.WinState == nil || *g.WinState != models.WinVillagers {
		t.Errorf("win state = %v, want %s", g.WinState, models.WinVillagers)
	}
}

// Shrinking the roster to the viable minimum with the werewolf alive
// hands the werewolves the win.
func TestRemovePlayerCanEndGameForWerewolves(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	// Kick villagers and the police until only wolf, doctor and one
	// villager remain, then one more.
	for _, idx := range []int{2, 3, 4} {
		if err := e.RemovePlayer(game.ID, hostClient, players[idx].ID); err != nil {
			t.Fatalf("RemovePlayer %d: %v", idx, err)
		}
	}
	if got := currentPhase(t, e, game.ID); got != models.PhaseNightWolf {
		t.Fatalf("phase after kicks = %s, want %s", got, models.PhaseNightWolf)
	}
	if err := e.RemovePlayer(game.ID, hostClient, players[5].ID); err != nil {
		t.Fatalf("final RemovePlayer: %v", err)
	}

	g, _ := e.store.GameByID(game.ID)
	if g.Phase != models.PhaseEnded {
		t.Errorf("phase = %s, want %s", g.Phase, models.PhaseEnded)
	}
	if g.WinState == nil || *g.WinState != models.WinWerewolves {
		t.Errorf("win state = %v, want %s", g.WinState, models.WinWerewolves)
	}
}

func TestJoinOrderContinuesAfterRemoval(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 3)

	if err := e.RemovePlayer(game.ID, hostClient, players[2].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}
	p, err := e.Join(game.Code, "p4", "c4")
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	if p.JoinOrder != 3 {
		t.Errorf("join order after removal = %d, want 3", p.JoinOrder)
	}
}

func TestRequestLeaveRejectsHost(t *testing.T) {
	e := newTestEngine()
	game, _ := createTestGame(t, e, 2)

	if err := e.RequestLeave(game.ID, hostClient); !errors.Is(err, ErrValidation) {
		t.Errorf("host requesting leave: got %v, want %v", err, ErrValidation)
	}
	reqs, _ := e.store.PendingLeaveRequests(game.ID)
	if len(reqs) != 0 {
		t.Errorf("pending requests = %d, want 0", len(reqs))
	}
}

// Even with a pending request written for the host directly, resolving it
// must not tear the host out of the game.
func TestResolveLeaveRejectsHost(t *testing.T) {
	e := newTestEngine()
	game, _ := createTestGame(t, e, 2)
	host, err := e.store.PlayerByClient(game.ID, hostClient)
	if err != nil {
		t.Fatalf("PlayerByClient: %v", err)
	}
	req := &models.LeaveRequest{GameID: game.ID, PlayerID: host.ID, Status: models.LeavePending}
	if err := e.store.CreateLeaveRequest(req); err != nil {
		t.Fatalf("CreateLeaveRequest: %v", err)
	}

	if err := e.ApproveLeave(game.ID, hostClient, host.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("approving host leave: got %v, want %v", err, ErrValidation)
	}
	if err := e.DenyLeave(game.ID, hostClient, host.ID); !errors.Is(err, ErrValidation) {
		t.Errorf("denying host leave: got %v, want %v", err, ErrValidation)
	}
	if _, err := e.store.PlayerByID(host.ID); err != nil {
		t.Errorf("host is gone after rejected approval: %v", err)
	}
}

// Removing the wolf's pending target clears the pick so the night still
// resolves; nobody dies at the reveal.
func TestRemovePlayerClearsNightTarget(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseNightWolf)

	if err := e.WolfSelect(game.ID, players[0].ClientID, players[3].ID); err != nil {
		t.Fatalf("WolfSelect: %v", err)
	}
	advanceTo(t, e, game, models.PhaseNightPolice)
	if err := e.RemovePlayer(game.ID, hostClient, players[3].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}

	state, err := e.store.RoundState(game.ID)
	if err != nil {
		t.Fatalf("RoundState: %v", err)
	}
	if state.WolfTargetID != nil {
		t.Error("wolf target still set after removal")
	}
	if err := e.RevealDead(game.ID, hostClient); err != nil {
		t.Fatalf("RevealDead after removal: %v", err)
	}
	if got := currentPhase(t, e, game.ID); got != models.PhaseReveal {
		t.Errorf("phase = %s, want %s", got, models.PhaseReveal)
	}
	remaining, _ := e.store.PlayersByGame(game.ID)
	for _, p := range remaining {
		if !p.Alive {
			t.Errorf("player %s died from a cleared pick", p.Name)
		}
	}
}

// Removing a player mid-vote drops the votes they cast and the votes
// naming them, so the tally never resolves to a gone player.
func TestRemovePlayerDropsVotes(t *testing.T) {
	e := newTestEngine()
	game, players := createTestGame(t, e, 6)
	dealFixedRoles(t, e, players)
	advanceTo(t, e, game, models.PhaseDayFinalVote)

	if err := e.Vote(game.ID, players[3].ClientID, players[5].ID); err != nil {
		t.Fatalf("Vote p4: %v", err)
	}
	if err := e.Vote(game.ID, players[4].ClientID, players[3].ID); err != nil {
		t.Fatalf("Vote p5: %v", err)
	}
	if err := e.Vote(game.ID, players[5].ClientID, players[4].ID); err != nil {
		t.Fatalf("Vote p6: %v", err)
	}
	if err := e.RemovePlayer(game.ID, hostClient, players[4].ID); err != nil {
		t.Fatalf("RemovePlayer: %v", err)
	}

	g, err := e.store.GameByID(game.ID)
	if err != nil {
		t.Fatalf("GameByID: %v", err)
	}
	votes, err := e.store.VotesByRound(game.ID, g.DayCount)
	if err != nil {
		t.Fatalf("VotesByRound: %v", err)
	}
	if len(votes) != 1 || votes[0].VoterID != players[3].ID {
		t.Fatalf("votes after removal = %+v, want only p4's", votes)
	}

	if err := e.EliminatePlayer(game.ID, hostClient); err != nil {
		t.Fatalf("EliminatePlayer after removal: %v", err)
	}
	target, err := e.store.PlayerByID(players[5].ID)
	if err != nil {
		t.Fatalf("PlayerByID: %v", err)
	}
	if target.Alive {
		t.Error("p6 survived the only remaining vote")
	}
}
