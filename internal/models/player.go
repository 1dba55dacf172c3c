package models

import "time"

// Role is a player's assigned night role. Unassigned players (lobby) and
// the host carry a nil role.
type Role string

const (
	RoleWerewolf Role = "werewolf"
	RoleDoctor   Role = "doctor"
	RolePolice   Role = "police"
	RoleVillager Role = "villager"
)

// Player represents one browser client inside a game. The ClientID is the
// browser fingerprint supplied at join time; it is unique per game so the
// same browser cannot join a game twice.
type Player struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	GameID    string    `gorm:"size:36;not null;index;uniqueIndex:idx_players_game_client,priority:1" json:"game_id"`
	ClientID  string    `gorm:"size:128;not null;uniqueIndex:idx_players_game_client,priority:2" json:"-"`
	Name      string    `gorm:"size:64;not null" json:"name"`
	Role      *Role     `gorm:"size:20" json:"role,omitempty"`
	IsHost    bool      `gorm:"not null;default:false" json:"is_host"`
	Alive     bool      `gorm:"not null;default:true" json:"alive"`
	JoinOrder int       `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}
