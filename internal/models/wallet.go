package models

import "time"

type Wallet struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;uniqueIndex" json:"user_id"`
	Coins     int       `gorm:"not null;default:0" json:"coins"`
	UpdatedAt time.Time `json:"updated_at"`
}
