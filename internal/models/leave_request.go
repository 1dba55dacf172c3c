package models

import "gorm.io/gorm"

// LeaveStatus is the lifecycle of a leave request.
type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveDenied   LeaveStatus = "denied"
)

// LeaveRequest is a player's request to exit a running game. It is
// resolved by the host; approval removes the player.
type LeaveRequest struct {
	gorm.Model
	GameID   string      `gorm:"size:36;not null;index" json:"game_id"`
	PlayerID string      `gorm:"size:36;not null;index" json:"player_id"`
	Status   LeaveStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
}
