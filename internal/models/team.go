package models

import "time"

type Team struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ChatID         int64     `gorm:"not null;uniqueIndex:idx_team_chat_name" json:"chat_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	NormalizedName string    `gorm:"size:100;not null;uniqueIndex:idx_team_chat_name" json:"-"`
	CaptainID      int64     `gorm:"not null" json:"captain_id"`
	Points         int       `gorm:"not null;default:0" json:"points"`
	Wins           int       `gorm:"not null;default:0" json:"wins"`
	Members        []TeamMember `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"members,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// TeamMember rows are unique per (chat, user): a user belongs to at
// most one team per group.
type TeamMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TeamID      uint      `gorm:"not null;index" json:"team_id"`
	ChatID      int64     `gorm:"not null;uniqueIndex:idx_member_chat_user" json:"chat_id"`
	UserID      int64     `gorm:"not null;uniqueIndex:idx_member_chat_user" json:"user_id"`
	DisplayName string    `gorm:"size:100" json:"display_name"`
	JoinedAt    time.Time `json:"joined_at"`
}
