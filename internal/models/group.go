package models

import "time"

// Group holds per-chat game settings and scheduler bookkeeping.
type Group struct {
	ID                 uint       `gorm:"primaryKey" json:"id"`
	ChatID             int64      `gorm:"not null;uniqueIndex" json:"chat_id"`
	Title              string     `gorm:"size:255" json:"title"`
	Enabled            bool       `gorm:"not null;default:true" json:"enabled"`
	AutoQuestions      bool       `gorm:"not null;default:false" json:"auto_questions"`
	IntervalMinutes    int        `gorm:"not null;default:60" json:"interval_minutes"`
	QuestionTimeoutSec int        `gorm:"not null;default:60" json:"question_timeout_sec"`
	LastAutoAt         *time.Time `json:"last_auto_at,omitempty"`
	LastDailyKey       string     `gorm:"size:10" json:"last_daily_key,omitempty"`
	WeekKey            string     `gorm:"size:8" json:"week_key,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
