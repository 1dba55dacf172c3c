// Package engine implements the game session core: session registry,
// membership workflow, the phase state machine, night-action validation,
// vote tallying, win-condition evaluation and viewer-scoped session views.
//
// One game is the unit of serialization: every state-mutating call runs
// under that game's mutex, so check-then-set sequences are atomic with
// respect to concurrent requests from players in the same session. There
// is no shared state across games.
package engine

import (
	"errors"
	"sync"

	"github.com/faizuddin0019/werwolf-sub002/internal/store"

	"github.com/rs/zerolog"
)

// Notifier receives an opaque "session mutated" signal after every
// successful write, so a fan-out transport can push fresh views.
type Notifier interface {
	SessionMutated(gameID string)
}

// NopNotifier discards all signals. Used in tests.
type NopNotifier struct{}

func (NopNotifier) SessionMutated(string) {}

// Engine owns all game sessions backed by a single store.
type Engine struct {
	store    store.Store
	notifier Notifier
	log      zerolog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(st store.Store, n Notifier, log zerolog.Logger) *Engine {
	if n == nil {
		n = NopNotifier{}
	}
	return &Engine{
		store:    st,
		notifier: n,
		log:      log,
		locks:    make(map[string]*sync.Mutex),
	}
}

// gameLock returns the per-game mutex, creating it on first use. Locks
// are never removed; a finished game keeps its entry until process exit.
func (e *Engine) gameLock(gameID string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[gameID]
	if !ok {
		l = &sync.Mutex{}
		e.locks[gameID] = l
	}
	return l
}

// storeErr maps a repository failure onto the engine's error taxonomy.
// Anything other than a missing row is surfaced as StorageUnavailable and
// left for the transport layer to retry.
func (e *Engine) storeErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrNotFound
	}
	e.log.Error().Err(err).Msg("storage failure")
	return ErrStorageUnavailable
}
