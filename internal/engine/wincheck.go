package engine

import "github.com/faizuddin0019/werwolf-sub002/internal/models"

// minViablePlayers is the alive non-host count at or below which the game
// cannot meaningfully continue.
const minViablePlayers = 2

// evaluateWin applies the end-of-game rules to the game in place and
// reports whether anything changed. The host never counts as alive and
// never wins or loses. Idempotent: a second call on unchanged counts is a
// no-op, and a game still in the lobby (no roles dealt) is never ended.
//
// Rules, in order:
//  1. no werewolf alive -> villagers win
//  2. alive players at or below the viable minimum -> werewolves win if
//     one of them is still standing, villagers otherwise
func evaluateWin(game *models.Game, players []models.Player) bool {
	if game.Phase == models.PhaseLobby || game.Phase == models.PhaseEnded {
		return false
	}

	aliveNonHost := 0
	aliveWerewolves := 0
	for _, p := range players {
		if p.IsHost || !p.Alive {
			continue
		}
		aliveNonHost++
		if p.Role != nil && *p.Role == models.RoleWerewolf {
			aliveWerewolves++
		}
	}

	switch {
	case aliveWerewolves == 0:
		win := models.WinVillagers
		game.Phase = models.PhaseEnded
		game.WinState = &win
		return true
	case aliveNonHost <= minViablePlayers:
		win := models.WinWerewolves
		game.Phase = models.PhaseEnded
		game.WinState = &win
		return true
	default:
		return false
	}
}
