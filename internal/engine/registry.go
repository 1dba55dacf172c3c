package engine

import (
	"errors"
	"math/rand"
	"time"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
	"github.com/faizuddin0019/werwolf-sub002/internal/store"

	"github.com/google/uuid"
)

const (
	codeLength      = 5
	maxCodeAttempts = 5
)

// Ambiguous characters (0/O, 1/I) are excluded so codes survive being
// read aloud across a living room.
const codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func randomCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(b)
}

func codeDay(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// CreateGame allocates a fresh session: a game with a unique-today code,
// its host player (no role, excluded from play) and an empty round state.
// The three rows are written as one logical unit. Collisions are only
// checked against codes issued today, so yesterday's codes may be reused.
func (e *Engine) CreateGame(hostName, clientID string) (*models.Game, *models.Player, *models.RoundState, error) {
	if hostName == "" || clientID == "" {
		return nil, nil, nil, ErrValidation
	}

	day := codeDay(time.Now())
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := randomCode(codeLength)
		if _, err := e.store.GameByCodeOnDay(code, day); err == nil {
			continue
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, e.storeErr(err)
		}

		game := &models.Game{
			ID:           uuid.NewString(),
			Code:         code,
			CodeDay:      day,
			HostClientID: clientID,
			Phase:        models.PhaseLobby,
			DayCount:     1,
		}
		host := &models.Player{
			ID:       uuid.NewString(),
			GameID:   game.ID,
			ClientID: clientID,
			Name:     hostName,
			IsHost:   true,
			Alive:    true,
		}
		state := &models.RoundState{GameID: game.ID}

		if err := e.store.CreateGameSession(game, host, state); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				// Lost a race for the code; roll the dice again.
				continue
			}
			return nil, nil, nil, e.storeErr(err)
		}
		return game, host, state, nil
	}
	return nil, nil, nil, ErrCodeExhaustion
}

// GetGameByCode resolves a code to the most recently created game using it.
func (e *Engine) GetGameByCode(code string) (*models.Game, error) {
	if code == "" {
		return nil, ErrValidation
	}
	game, err := e.store.GameByCode(code)
	if err != nil {
		return nil, e.storeErr(err)
	}
	return game, nil
}
