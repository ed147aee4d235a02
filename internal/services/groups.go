package services

import (
	"time"

	"github.com/Tareq669/bot-sub000/internal/models"

	"gorm.io/gorm"
)

// GroupService owns the per-group settings document and the
// scheduler's rotation bookkeeping.
type GroupService struct {
	db *gorm.DB
}

func NewGroupService(db *gorm.DB) *GroupService {
	return &GroupService{db: db}
}

func (s *GroupService) GetOrCreate(chatID int64, title string) (*models.Group, error) {
	var group models.Group
	err := s.db.Where("chat_id = ?", chatID).First(&group).Error
	if err == nil {
		if title != "" && title != group.Title {
			group.Title = title
			s.db.Model(&group).Update("title", title)
		}
		return &group, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	group = models.Group{
		ChatID:             chatID,
		Title:              title,
		Enabled:            true,
		IntervalMinutes:    60,
		QuestionTimeoutSec: 60,
	}
	if err := s.db.Create(&group).Error; err != nil {
		return nil, err
	}
	return &group, nil
}

func (s *GroupService) Get(chatID int64) (*models.Group, error) {
	return s.GetOrCreate(chatID, "")
}

// RoundSettings satisfies the round manager's settings lookup.
func (s *GroupService) RoundSettings(chatID int64) (bool, int, error) {
	group, err := s.Get(chatID)
	if err != nil {
		return false, 0, err
	}
	return group.Enabled, group.QuestionTimeoutSec, nil
}

func (s *GroupService) SetEnabled(chatID int64, enabled bool) error {
	group, err := s.Get(chatID)
	if err != nil {
		return err
	}
	return s.db.Model(group).Update("enabled", enabled).Error
}

func (s *GroupService) SetAutoQuestions(chatID int64, on bool) error {
	group, err := s.Get(chatID)
	if err != nil {
		return err
	}
	return s.db.Model(group).Update("auto_questions", on).Error
}

func (s *GroupService) SetInterval(chatID int64, minutes int) error {
	if minutes < 1 || minutes > 1440 {
		return ErrBadInterval
	}
	group, err := s.Get(chatID)
	if err != nil {
		return err
	}
	return s.db.Model(group).Update("interval_minutes", minutes).Error
}

func (s *GroupService) SetTimeout(chatID int64, seconds int) error {
	if seconds < 10 || seconds > 600 {
		return ErrBadTimeout
	}
	group, err := s.Get(chatID)
	if err != nil {
		return err
	}
	return s.db.Model(group).Update("question_timeout_sec", seconds).Error
}

// AutoGroups returns groups eligible for scheduler consideration.
func (s *GroupService) AutoGroups() ([]models.Group, error) {
	var groups []models.Group
	err := s.db.Where("enabled = ? AND auto_questions = ?", true, true).Find(&groups).Error
	return groups, err
}

// MarkAutoStarted records a successful auto round. dailyKey is empty
// unless a daily round was started.
func (s *GroupService) MarkAutoStarted(chatID int64, at time.Time, dailyKey string) error {
	updates := map[string]interface{}{"last_auto_at": at}
	if dailyKey != "" {
		updates["last_daily_key"] = dailyKey
	}
	return s.db.Model(&models.Group{}).Where("chat_id = ?", chatID).Updates(updates).Error
}

// MarkDailyStarted records a manually started daily round.
func (s *GroupService) MarkDailyStarted(chatID int64, dailyKey string) error {
	return s.db.Model(&models.Group{}).Where("chat_id = ?", chatID).
		Update("last_daily_key", dailyKey).Error
}
