package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"

	"gorm.io/gorm"
)

// Leaderboard metrics.
const (
	MetricPoints = "points"
	MetricWeekly = "weekly_points"
	MetricWins   = "wins"
	MetricStreak = "streak"
)

// ScoreService is the persistent scoring ledger: lifetime points,
// weekly points with ISO-week rotation, and daily win streaks.
type ScoreService struct {
	db *gorm.DB

	// serializes the weekly rotation against concurrent wins per group
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewScoreService(db *gorm.DB) *ScoreService {
	return &ScoreService{db: db, locks: make(map[int64]*sync.Mutex)}
}

func (s *ScoreService) groupLock(chatID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[chatID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[chatID] = l
	}
	return l
}

// WeekKey returns the ISO-week bucket of t, e.g. "2026-W36".
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// DayKey returns the calendar-day bucket of t, e.g. "2026-09-01".
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NextStreak applies the streak rule: a win the day after the last win
// extends the streak, a second win the same day keeps it, anything
// else resets it to 1.
func NextStreak(lastWin *time.Time, now time.Time, current int) int {
	if lastWin == nil {
		return 1
	}
	last := DayKey(*lastWin)
	today := DayKey(now)
	yesterday := DayKey(now.AddDate(0, 0, -1))

	switch last {
	case today:
		return current
	case yesterday:
		return current + 1
	default:
		return 1
	}
}

// RecordWin credits a round win. The current ISO week is compared with
// the group's stored week key; on a new week every member's weekly
// points are zeroed before the reward is applied.
func (s *ScoreService) RecordWin(chatID, userID int64, displayName string, reward int) (*models.ScoreRecord, error) {
	lock := s.groupLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	now := time.Now()
	var rec models.ScoreRecord

	err := withRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			var group models.Group
			if err := tx.Where("chat_id = ?", chatID).First(&group).Error; err != nil {
				return err
			}

			week := WeekKey(now)
			if group.WeekKey != week {
				if err := tx.Model(&models.ScoreRecord{}).
					Where("chat_id = ?", chatID).
					Update("weekly_points", 0).Error; err != nil {
					return err
				}
				if err := tx.Model(&group).Update("week_key", week).Error; err != nil {
					return err
				}
			}

			if err := tx.Where("chat_id = ? AND user_id = ?", chatID, userID).
				First(&rec).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				rec = models.ScoreRecord{ChatID: chatID, UserID: userID}
			}

			if displayName != "" {
				rec.DisplayName = displayName
			}
			rec.Streak = NextStreak(rec.LastWinDate, now, rec.Streak)
			if rec.Streak > rec.BestStreak {
				rec.BestStreak = rec.Streak
			}
			rec.Points += reward
			rec.WeeklyPoints += reward
			rec.Wins++
			winAt := now
			rec.LastWinDate = &winAt

			return tx.Save(&rec).Error
		})
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// AddPoints credits lifetime points only, creating the record if
// missing. Used for tournament reward payouts.
func (s *ScoreService) AddPoints(chatID, userID int64, displayName string, points int) error {
	lock := s.groupLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	return withRetry(func() error {
		var rec models.ScoreRecord
		if err := s.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
			First(&rec).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return err
			}
			rec = models.ScoreRecord{ChatID: chatID, UserID: userID, DisplayName: displayName}
		}
		rec.Points += points
		return s.db.Save(&rec).Error
	})
}

// Leaderboard returns records ordered by metric descending, ties
// broken by user id ascending so the order never depends on insertion.
func (s *ScoreService) Leaderboard(chatID int64, metric string, limit int) ([]models.ScoreRecord, error) {
	switch metric {
	case MetricPoints, MetricWeekly, MetricWins, MetricStreak:
	default:
		metric = MetricPoints
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	var records []models.ScoreRecord
	err := s.db.Where("chat_id = ?", chatID).
		Order(metric + " DESC, user_id ASC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (s *ScoreService) GetRecord(chatID, userID int64) (*models.ScoreRecord, error) {
	var rec models.ScoreRecord
	if err := s.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// withRetry runs fn, retrying once after a short backoff. Persistence
// hiccups surface to the caller only when the retry also fails.
func withRetry(fn func() error) error {
	err := fn()
	if err == nil {
		return nil
	}
	logging.Log.Warnf("persistence error, retrying once: %v", err)
	time.Sleep(200 * time.Millisecond)
	return fn()
}
