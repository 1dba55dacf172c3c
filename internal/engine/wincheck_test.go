package engine

import (
	"testing"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

func rolePtr(r models.Role) *models.Role { return &r }

func winPlayers() []models.Player {
	return []models.Player{
		{ID: "host", IsHost: true, Alive: true},
		{ID: "wolf", Role: rolePtr(models.RoleWerewolf), Alive: true},
		{ID: "doc", Role: rolePtr(models.RoleDoctor), Alive: true},
		{ID: "cop", Role: rolePtr(models.RolePolice), Alive: true},
		{ID: "v1", Role: rolePtr(models.RoleVillager), Alive: true},
		{ID: "v2", Role: rolePtr(models.RoleVillager), Alive: true},
		{ID: "v3", Role: rolePtr(models.RoleVillager), Alive: true},
	}
}

func kill(players []models.Player, ids ...string) []models.Player {
	dead := make(map[string]bool, len(ids))
	for _, id := range ids {
		dead[id] = true
	}
	for i := range players {
		if dead[players[i].ID] {
			players[i].Alive = false
		}
	}
	return players
}

func TestEvaluateWinGameContinues(t *testing.T) {
	game := &models.Game{Phase: models.PhaseNightWolf}
	if evaluateWin(game, winPlayers()) {
		t.Error("full roster ended the game")
	}
	if game.Phase != models.PhaseNightWolf || game.WinState != nil {
		t.Errorf("game mutated: phase=%s win=%v", game.Phase, game.WinState)
	}
}

func TestEvaluateWinVillagersWhenWolfDies(t *testing.T) {
	game := &models.Game{Phase: models.PhaseReveal}
	if !evaluateWin(game, kill(winPlayers(), "wolf")) {
		t.Fatal("dead wolf did not end the game")
	}
	if game.Phase != models.PhaseEnded {
		t.Errorf("phase = %s, want %s", game.Phase, models.PhaseEnded)
	}
	if game.WinState == nil || *game.WinState != models.WinVillagers {
		t.Errorf("win state = %v, want %s", game.WinState, models.WinVillagers)
	}
}

func TestEvaluateWinWerewolvesAtMinimum(t *testing.T) {
	game := &models.Game{Phase: models.PhaseNightWolf}
	if !evaluateWin(game, kill(winPlayers(), "cop", "v1", "v2", "v3")) {
		t.Fatal("two alive with a wolf standing did not end the game")
	}
	if game.WinState == nil || *game.WinState != models.WinWerewolves {
		t.Errorf("win state = %v, want %s", game.WinState, models.WinWerewolves)
	}
}

// The wolf-elimination rule wins ties: with only two alive and no wolf
// among them, the villagers take it.
func TestEvaluateWinVillagersAtMinimumWithoutWolf(t *testing.T) {
	game := &models.Game{Phase: models.PhaseNightWolf}
	if !evaluateWin(game, kill(winPlayers(), "wolf", "cop", "v1", "v2")) {
		t.Fatal("two alive without a wolf did not end the game")
	}
	if game.WinState == nil || *game.WinState != models.WinVillagers {
		t.Errorf("win state = %v, want %s", game.WinState, models.WinVillagers)
	}
}

func TestEvaluateWinSkipsLobbyAndEnded(t *testing.T) {
	lobby := &models.Game{Phase: models.PhaseLobby}
	if evaluateWin(lobby, nil) {
		t.Error("empty lobby was ended")
	}

	win := models.WinVillagers
	ended := &models.Game{Phase: models.PhaseEnded, WinState: &win}
	if evaluateWin(ended, kill(winPlayers(), "cop", "v1", "v2", "v3")) {
		t.Error("ended game was re-evaluated")
	}
	if *ended.WinState != models.WinVillagers {
		t.Errorf("win state flipped to %s", *ended.WinState)
	}
}

func TestEvaluateWinIsIdempotent(t *testing.T) {
	game := &models.Game{Phase: models.PhaseReveal}
	players := kill(winPlayers(), "wolf")
	if !evaluateWin(game, players) {
		t.Fatal("first evaluation did not end the game")
	}
	if evaluateWin(game, players) {
		t.Error("second evaluation reported a change")
	}
}

// The host does not count toward the viable minimum even while "alive".
func TestEvaluateWinIgnoresHost(t *testing.T) {
	game := &models.Game{Phase: models.PhaseNightWolf}
	// wolf + doc alive plus host: 2 non-host alive, wolf standing.
	if !evaluateWin(game, kill(winPlayers(), "cop", "v1", "v2", "v3")) {
		t.Fatal("host kept the game alive")
	}
	if game.WinState == nil || *game.WinState != models.WinWerewolves {
		t.Errorf("win state = %v, want %s", game.WinState, models.WinWerewolves)
	}
}
