package engine

import "github.com/faizuddin0019/werwolf-sub002/internal/models"

// PlayerView is one row of the visibility-filtered player list. Role is
// absent, not null, unless the viewer is allowed to see it, so the view
// leaks nothing beyond "has a role" even under diffing.
type PlayerView struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	IsHost bool         `json:"is_host"`
	Alive  bool         `json:"alive"`
	Role   *models.Role `json:"role,omitempty"`
	IsSelf bool         `json:"is_self"`
}

// RoundStateView exposes the phase gate to everyone and the night targets
// to the host only.
type RoundStateView struct {
	PhaseStarted      bool    `json:"phase_started"`
	WolfTargetID      *string `json:"wolf_target_player_id,omitempty"`
	DoctorSavedID     *string `json:"doctor_saved_player_id,omitempty"`
	PoliceInspectedID *string `json:"police_inspected_player_id,omitempty"`
}

// SessionView is the full read contract for one viewer. Filtering happens
// here at read time; nothing redacted is ever persisted.
type SessionView struct {
	Game              models.Game           `json:"game"`
	Players           []PlayerView          `json:"players"`
	RoundState        RoundStateView        `json:"round_state"`
	Votes             []models.Vote         `json:"votes"`
	PendingLeaves     []models.LeaveRequest `json:"pending_leave_requests"`
	InspectedPlayerID *string               `json:"inspected_player_id,omitempty"`
	InspectedRole     *models.Role          `json:"inspected_role,omitempty"`
}

// SessionView builds the viewer-scoped snapshot of a game. The viewer
// must be a player in the game. The host sees every role; every other
// viewer sees only their own. Player ordering: host first, then the
// viewer (if alive and not host), then the remaining alive players in
// join order, then the dead in join order.
func (e *Engine) SessionView(code, viewerClientID string) (*SessionView, error) {
	game, err := e.GetGameByCode(code)
	if err != nil {
		return nil, err
	}

	lock := e.gameLock(game.ID)
	lock.Lock()
	defer lock.Unlock()

	game, err = e.store.GameByID(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	viewer, err := e.store.PlayerByClient(game.ID, viewerClientID)
	if err != nil {
		return nil, ErrForbidden
	}
	players, err := e.store.PlayersByGame(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	state, err := e.store.RoundState(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}
	votes, err := e.store.VotesByRound(game.ID, game.DayCount)
	if err != nil {
		return nil, e.storeErr(err)
	}
	leaves, err := e.store.PendingLeaveRequests(game.ID)
	if err != nil {
		return nil, e.storeErr(err)
	}

	view := &SessionView{
		Game:          *game,
		Players:       orderPlayers(players, viewer),
		RoundState:    RoundStateView{PhaseStarted: state.PhaseStarted},
		Votes:         votes,
		PendingLeaves: leaves,
	}
	for i := range view.Players {
		p := &view.Players[i]
		if !viewer.IsHost && !p.IsSelf {
			p.Role = nil
		}
	}
	if viewer.IsHost {
		view.RoundState.WolfTargetID = state.WolfTargetID
		view.RoundState.DoctorSavedID = state.DoctorSavedID
		view.RoundState.PoliceInspectedID = state.PoliceInspectedID
	}
	if viewer.Role != nil && *viewer.Role == models.RolePolice && state.PoliceInspectedID != nil {
		if inspected, err := e.store.PlayerByID(*state.PoliceInspectedID); err == nil {
			view.InspectedPlayerID = state.PoliceInspectedID
			view.InspectedRole = inspected.Role
		}
	}
	return view, nil
}

func orderPlayers(players []models.Player, viewer *models.Player) []PlayerView {
	toView := func(p models.Player) PlayerView {
		return PlayerView{
			ID:     p.ID,
			Name:   p.Name,
			IsHost: p.IsHost,
			Alive:  p.Alive,
			Role:   p.Role,
			IsSelf: p.ID == viewer.ID,
		}
	}

	out := make([]PlayerView, 0, len(players))
	for _, p := range players {
		if p.IsHost {
			out = append(out, toView(p))
		}
	}
	viewerFirst := !viewer.IsHost && viewer.Alive
	if viewerFirst {
		out = append(out, toView(*viewer))
	}
	for _, p := range players {
		if !p.IsHost && p.Alive && !(viewerFirst && p.ID == viewer.ID) {
			out = append(out, toView(p))
		}
	}
	for _, p := range players {
		if !p.IsHost && !p.Alive {
			out = append(out, toView(p))
		}
	}
	return out
}
