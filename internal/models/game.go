package models

import "time"

// Phase is the current stage of a game's state machine.
type Phase string

const (
	PhaseLobby        Phase = "lobby"
	PhaseNightWolf    Phase = "night_wolf"
	PhaseNightDoctor  Phase = "night_doctor"
	PhaseNightPolice  Phase = "night_police"
	PhaseReveal       Phase = "reveal"
	PhaseDayVote      Phase = "day_vote"
	PhaseDayFinalVote Phase = "day_final_vote"
	PhaseEnded        Phase = "ended"
)

// WinState records which faction won a finished game.
type WinState string

const (
	WinVillagers  WinState = "villagers"
	WinWerewolves WinState = "werewolves"
)

// Game represents one running session, identified by a short code.
// The code is only unique among games created on the same calendar day,
// so older codes can be reissued.
type Game struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	Code         string    `gorm:"size:8;not null;uniqueIndex:idx_games_code_day" json:"code"`
	CodeDay      string    `gorm:"size:10;not null;uniqueIndex:idx_games_code_day" json:"-"`
	HostClientID string    `gorm:"size:128;not null" json:"-"`
	Phase        Phase     `gorm:"size:20;not null;default:'lobby'" json:"phase"`
	DayCount     int       `gorm:"not null;default:1" json:"day_count"`
	WinState     *WinState `gorm:"size:20" json:"win_state,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
}
