package models

import "time"

// Vote is one player's current choice for a voting round. A voter has at
// most one row per round; re-voting replaces the target (last vote wins).
// Votes are hard-deleted when a round is cleared, so the uniqueness index
// never collides with a tombstone.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	GameID    string    `gorm:"size:36;not null;uniqueIndex:idx_votes_round_voter,priority:1" json:"game_id"`
	Round     int       `gorm:"not null;uniqueIndex:idx_votes_round_voter,priority:2" json:"round"`
	VoterID   string    `gorm:"size:36;not null;uniqueIndex:idx_votes_round_voter,priority:3" json:"voter_id"`
	TargetID  string    `gorm:"size:36;not null" json:"target_id"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
