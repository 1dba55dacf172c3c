package store

import (
	"sort"
	"sync"
	"time"

	"github.com/faizuddin0019/werwolf-sub002/internal/models"
)

// MemoryStore is an in-memory Store used by the engine tests. Rows are
// copied on the way in and out so callers never share mutable state with
// the store.
type MemoryStore struct {
	mu         sync.RWMutex
	games      map[string]*models.Game
	players    map[string]*models.Player
	states     map[string]*models.RoundState
	votes      map[uint]*models.Vote
	leaves     map[uint]*models.LeaveRequest
	nextVoteID uint
	nextLeave  uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games:   make(map[string]*models.Game),
		players: make(map[string]*models.Player),
		states:  make(map[string]*models.RoundState),
		votes:   make(map[uint]*models.Vote),
		leaves:  make(map[uint]*models.LeaveRequest),
	}
}

func (s *MemoryStore) CreateGameSession(game *models.Game, host *models.Player, state *models.RoundState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.games {
		if g.Code == game.Code && g.CodeDay == game.CodeDay {
			return ErrDuplicate
		}
	}
	now := time.Now().UTC()
	game.CreatedAt = now
	host.CreatedAt = now
	g := *game
	h := *host
	st := *state
	s.games[g.ID] = &g
	s.players[h.ID] = &h
	s.states[st.GameID] = &st
	return nil
}

func (s *MemoryStore) GameByID(id string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	g := *game
	return &g, nil
}

func (s *MemoryStore) GameByCode(code string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.Game
	for _, g := range s.games {
		if g.Code != code {
			continue
		}
		if latest == nil || g.CreatedAt.After(latest.CreatedAt) {
			latest = g
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	g := *latest
	return &g, nil
}

func (s *MemoryStore) GameByCodeOnDay(code, day string) (*models.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.games {
		if g.Code == code && g.CodeDay == day {
			out := *g
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveGame(game *models.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[game.ID]; !ok {
		return ErrNotFound
	}
	g := *game
	s.games[g.ID] = &g
	return nil
}

func (s *MemoryStore) CreatePlayer(player *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.players {
		if p.GameID == player.GameID && p.ClientID == player.ClientID {
			return ErrDuplicate
		}
	}
	player.CreatedAt = time.Now().UTC()
	p := *player
	s.players[p.ID] = &p
	return nil
}

func (s *MemoryStore) PlayerByID(id string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, ErrNotFound
	}
	p := *player
	return &p, nil
}

func (s *MemoryStore) PlayerByClient(gameID, clientID string) (*models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.players {
		if p.GameID == gameID && p.ClientID == clientID {
			out := *p
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) PlayersByGame(gameID string) ([]models.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var players []models.Player
	for _, p := range s.players {
		if p.GameID == gameID {
			players = append(players, *p)
		}
	}
	sort.Slice(players, func(i, j int) bool { return players[i].JoinOrder < players[j].JoinOrder })
	return players, nil
}

func (s *MemoryStore) SavePlayer(player *models.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		return ErrNotFound
	}
	p := *player
	s.players[p.ID] = &p
	return nil
}

func (s *MemoryStore) DeletePlayer(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.players, id)
	return nil
}

func (s *MemoryStore) RoundState(gameID string) (*models.RoundState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.states[gameID]
	if !ok {
		return nil, ErrNotFound
	}
	st := *state
	return &st, nil
}

func (s *MemoryStore) SaveRoundState(state *models.RoundState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := *state
	s.states[st.GameID] = &st
	return nil
}

func (s *MemoryStore) UpsertVote(vote *models.Vote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.votes {
		if v.GameID == vote.GameID && v.Round == vote.Round && v.VoterID == vote.VoterID {
			v.TargetID = vote.TargetID
			return nil
		}
	}
	s.nextVoteID++
	v := *vote
	v.ID = s.nextVoteID
	s.votes[v.ID] = &v
	return nil
}

func (s *MemoryStore) VotesByRound(gameID string, round int) ([]models.Vote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var votes []models.Vote
	for _, v := range s.votes {
		if v.GameID == gameID && v.Round == round {
			votes = append(votes, *v)
		}
	}
	sort.Slice(votes, func(i, j int) bool { return votes[i].ID < votes[j].ID })
	return votes, nil
}

func (s *MemoryStore) DeleteVotesByRound(gameID string, round int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range s.votes {
		if v.GameID == gameID && v.Round == round {
			delete(s.votes, id)
		}
	}
	return nil
}

func (s *MemoryStore) DeleteVotesForPlayer(gameID, playerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, v := range s.votes {
		if v.GameID == gameID && (v.VoterID == playerID || v.TargetID == playerID) {
			delete(s.votes, id)
		}
	}
	return nil
}

func (s *MemoryStore) CreateLeaveRequest(req *models.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLeave++
	r := *req
	r.ID = s.nextLeave
	s.leaves[r.ID] = &r
	req.ID = r.ID
	return nil
}

func (s *MemoryStore) PendingLeaveRequests(gameID string) ([]models.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var reqs []models.LeaveRequest
	for _, r := range s.leaves {
		if r.GameID == gameID && r.Status == models.LeavePending {
			reqs = append(reqs, *r)
		}
	}
	sort.Slice(reqs, func(i, j int) bool { return reqs[i].ID < reqs[j].ID })
	return reqs, nil
}

func (s *MemoryStore) PendingLeaveRequestForPlayer(gameID, playerID string) (*models.LeaveRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.leaves {
		if r.GameID == gameID && r.PlayerID == playerID && r.Status == models.LeavePending {
			out := *r
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) SaveLeaveRequest(req *models.LeaveRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.leaves[req.ID]; !ok {
		return ErrNotFound
	}
	r := *req
	s.leaves[r.ID] = &r
	return nil
}
