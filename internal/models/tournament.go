package models

import "time"

// Tournament is a singleton row per group.
type Tournament struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ChatID       int64      `gorm:"not null;uniqueIndex" json:"chat_id"`
	Active       bool       `gorm:"not null;default:false" json:"active"`
	Season       int        `gorm:"not null;default:1" json:"season"`
	StartedAt    *time.Time `json:"started_at,omitempty"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	RewardFirst  int        `gorm:"not null;default:100" json:"reward_first"`
	RewardSecond int        `gorm:"not null;default:60" json:"reward_second"`
	RewardThird  int        `gorm:"not null;default:40" json:"reward_third"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
