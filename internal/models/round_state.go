package models

import "time"

// RoundState is the single per-game row holding the current night cycle's
// role actions. The three target fields are cleared when a new night
// begins; at most one is set per role per cycle.
type RoundState struct {
	GameID            string    `gorm:"primaryKey;size:36" json:"game_id"`
	PhaseStarted      bool      `gorm:"not null;default:false" json:"phase_started"`
	WolfTargetID      *string   `gorm:"size:36" json:"-"`
	DoctorSavedID     *string   `gorm:"size:36" json:"-"`
	PoliceInspectedID *string   `gorm:"size:36" json:"-"`
	UpdatedAt         time.Time `json:"-"`
}
