package store

import (
	"errors"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// Store is the narrow repository boundary the engine reads and writes
// through. Every call either fully succeeds or fails atomically; the
// engine layers its own per-game serialization on top.
type Store interface {
	// CreateGameSession persists a game, its host player and its round
	// state as one logical unit. Partial creation is never observable.
	CreateGameSession(game *models.Game, host *models.Player, state *models.RoundState) error
	GameByID(id string) (*models.Game, error)
	// GameByCode returns the most recently created game with the given
	// code. Codes are only unique per creation day and may be reused.
	GameByCode(code string) (*models.Game, error)
	GameByCodeOnDay(code, day string) (*models.Game, error)
	SaveGame(game *models.Game) error

	CreatePlayer(player *models.Player) error
	PlayerByID(id string) (*models.Player, error)
	PlayerByClient(gameID, clientID string) (*models.Player, error)
	// PlayersByGame returns all players ordered by join order.
	PlayersByGame(gameID string) ([]models.Player, error)
	SavePlayer(player *models.Player) error
	DeletePlayer(id string) error

	RoundState(gameID string) (*models.RoundState, error)
	SaveRoundState(state *models.RoundState) error

	// UpsertVote inserts the voter's choice for a round, replacing any
	// earlier choice in the same round.
	UpsertVote(vote *models.Vote) error
	VotesByRound(gameID string, round int) ([]models.Vote, error)
	DeleteVotesByRound(gameID string, round int) error
	// DeleteVotesForPlayer removes every vote the player cast and every
	// vote naming the player as target, across all rounds of the game.
	DeleteVotesForPlayer(gameID, playerID string) error

	CreateLeaveRequest(req *models.LeaveRequest) error
	PendingLeaveRequests(gameID string) ([]models.LeaveRequest, error)
	PendingLeaveRequestForPlayer(gameID, playerID string) (*models.LeaveRequest, error)
	SaveLeaveRequest(req *models.LeaveRequest) error
}
