package engine

import "github.com/faizuddin0019/werwolf-sub002/internal/models"

// tallyVotes returns the plurality target among the given votes. Ties go
// to the earliest-joined player among the tied targets, which keeps the
// outcome deterministic and stable across repeated tallies. Returns false
// when no votes were cast.
func tallyVotes(votes []models.Vote, players []models.Player) (string, bool) {
	if len(votes) == 0 {
		return "", false
	}

	joinOrder := make(map[string]int, len(players))
	for _, p := range players {
		joinOrder[p.ID] = p.JoinOrder
	}

	counts := make(map[string]int)
	for _, v := range votes {
		counts[v.TargetID]++
	}

	var winner string
	best := -1
	for targetID, n := range counts {
		switch {
		case n > best:
			winner, best = targetID, n
		case n == best && joinOrder[targetID] < joinOrder[winner]:
			winner = targetID
		}
	}
	return winner, true
}
