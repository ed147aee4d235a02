package services

import (
	"context"
	"time"

	"github.com/Tareq669/bot-sub000/internal/content"
	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/redis/go-redis/v9"
)

const schedulerLeaseKey = "challenge:scheduler:lease"

// GroupSource is the slice of the group store the scheduler reads and
// marks.
type GroupSource interface {
	AutoGroups() ([]models.Group, error)
	MarkAutoStarted(chatID int64, at time.Time, dailyKey string) error
}

// RoundStarter is the slice of the round manager the scheduler drives.
// StartRound's busy check is the only per-chat concurrency guard; the
// scheduler takes no lock of its own.
type RoundStarter interface {
	StartRound(chatID int64, q content.Question) (*Round, error)
	HasActiveRound(chatID int64) bool
}

// Scheduler periodically auto-starts rounds in eligible groups. With a
// Redis client configured, a best-effort lease keeps multiple instances
// from ticking the same groups at once; without one, a single process
// is assumed.
type Scheduler struct {
	groups GroupSource
	rounds RoundStarter
	rdb    *redis.Client
	tick   time.Duration

	stopCh chan struct{}
}

func NewScheduler(groups GroupSource, rounds RoundStarter, rdb *redis.Client, tick time.Duration) *Scheduler {
	if tick <= 0 {
		tick = time.Minute
	}
	return &Scheduler{
		groups: groups,
		rounds: rounds,
		rdb:    rdb,
		tick:   tick,
		stopCh: make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go s.loop()
	logging.Log.Info("round scheduler started")
}

func (s *Scheduler) Stop() {
	close(s.stopCh)
	logging.Log.Info("round scheduler stopped")
}

func (s *Scheduler) loop() {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopCh:
			return
		case <-ticker.C:
			s.Tick(time.Now())
		}
	}
}

// acquireLease grabs the cross-instance lease for one tick. Missing
// Redis means no lease and a single-instance deployment.
func (s *Scheduler) acquireLease(now time.Time) bool {
	if s.rdb == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ok, err := s.rdb.SetNX(ctx, schedulerLeaseKey, now.Unix(), s.tick).Result()
	if err != nil {
		logging.Log.WithError(err).Warn("scheduler lease check failed, skipping tick")
		return false
	}
	return ok
}

// Due reports whether a group should get an auto round at now.
func Due(group models.Group, now time.Time) bool {
	if !group.Enabled || !group.AutoQuestions {
		return false
	}
	if group.LastAutoAt == nil {
		return true
	}
	return now.Sub(*group.LastAutoAt) >= time.Duration(group.IntervalMinutes)*time.Minute
}

// Tick scans all auto-enabled groups once. A failing group is skipped
// and retried on the next tick; lastAutoAt moves only on success.
func (s *Scheduler) Tick(now time.Time) {
	if !s.acquireLease(now) {
		return
	}

	groups, err := s.groups.AutoGroups()
	if err != nil {
		logging.Log.WithError(err).Warn("scheduler could not list groups")
		return
	}

	for _, group := range groups {
		if !Due(group, now) {
			continue
		}
		if s.rounds.HasActiveRound(group.ChatID) {
			continue
		}

		q, dailyKey := s.pickQuestion(group, now)
		if _, err := s.rounds.StartRound(group.ChatID, q); err != nil {
			if err == ErrRoundActive || err == ErrGameDisabled {
				continue
			}
			logging.Log.WithError(err).Warnf("auto round failed in chat %d", group.ChatID)
			continue
		}

		if err := s.groups.MarkAutoStarted(group.ChatID, now, dailyKey); err != nil {
			logging.Log.WithError(err).Warnf("could not mark auto round in chat %d", group.ChatID)
		}
	}
}

// pickQuestion prefers the daily prompt the first time a group is
// visited on a new calendar day, otherwise a random auto prompt.
func (s *Scheduler) pickQuestion(group models.Group, now time.Time) (content.Question, string) {
	today := DayKey(now)
	if group.LastDailyKey != today {
		if q, ok := content.Random(content.RoundTypeDaily); ok {
			return q, today
		}
	}
	return content.RandomAuto(), ""
}
