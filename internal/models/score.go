package models

import "time"

// ScoreRecord is created on a user's first win in a group.
type ScoreRecord struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	ChatID       int64      `gorm:"not null;uniqueIndex:idx_score_chat_user" json:"chat_id"`
	UserID       int64      `gorm:"not null;uniqueIndex:idx_score_chat_user" json:"user_id"`
	DisplayName  string     `gorm:"size:100" json:"display_name"`
	Points       int        `gorm:"not null;default:0" json:"points"`
	WeeklyPoints int        `gorm:"not null;default:0" json:"weekly_points"`
	Wins         int        `gorm:"not null;default:0" json:"wins"`
	Streak       int        `gorm:"not null;default:0" json:"streak"`
	BestStreak   int        `gorm:"not null;default:0" json:"best_streak"`
	LastWinDate  *time.Time `json:"last_win_date,omitempty"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
