package services

import (
	"testing"
	"time"

	"github.com/Tareq669/bot-sub000/internal/content"
	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGroupSource struct {
	groups []models.Group
	marked map[int64]string
}

func (f *fakeGroupSource) AutoGroups() ([]models.Group, error) {
	return f.groups, nil
}

func (f *fakeGroupSource) MarkAutoStarted(chatID int64, at time.Time, dailyKey string) error {
	if f.marked == nil {
		f.marked = make(map[int64]string)
	}
	f.marked[chatID] = dailyKey
	return nil
}

type fakeStarter struct {
	started []int64
	types   []string
	active  map[int64]bool
	fail    error
}

func (f *fakeStarter) StartRound(chatID int64, q content.Question) (*Round, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	f.started = append(f.started, chatID)
	f.types = append(f.types, q.Type)
	return &Round{ChatID: chatID, Question: q}, nil
}

func (f *fakeStarter) HasActiveRound(chatID int64) bool {
	return f.active[chatID]
}

func autoGroup(chatID int64, lastAuto *time.Time) models.Group {
	return models.Group{
		ChatID:             chatID,
		Enabled:            true,
		AutoQuestions:      true,
		IntervalMinutes:    60,
		QuestionTimeoutSec: 60,
		LastAutoAt:         lastAuto,
	}
}

func TestDue(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("never started is due", func(t *testing.T) {
		assert.True(t, Due(autoGroup(1, nil), now))
	})

	t.Run("interval elapsed is due", func(t *testing.T) {
		last := now.Add(-61 * time.Minute)
		assert.True(t, Due(autoGroup(1, &last), now))
	})

	t.Run("within interval is not due", func(t *testing.T) {
		last := now.Add(-30 * time.Minute)
		assert.False(t, Due(autoGroup(1, &last), now))
	})

	t.Run("disabled group is never due", func(t *testing.T) {
		g := autoGroup(1, nil)
		g.Enabled = false
		assert.False(t, Due(g, now))
	})

	t.Run("auto off is never due", func(t *testing.T) {
		g := autoGroup(1, nil)
		g.AutoQuestions = false
		assert.False(t, Due(g, now))
	})
}

func TestTickStartsDueGroups(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	recent := now.Add(-5 * time.Minute)

	groups := &fakeGroupSource{groups: []models.Group{
		autoGroup(1, nil),
		autoGroup(2, &recent),
	}}
	starter := &fakeStarter{active: map[int64]bool{}}
	s := NewScheduler(groups, starter, nil, time.Minute)

	s.Tick(now)

	assert.Equal(t, []int64{1}, starter.started)
	assert.Contains(t, groups.marked, int64(1))
	assert.NotContains(t, groups.marked, int64(2))
}

func TestTickSkipsBusyChat(t *testing.T) {
	groups := &fakeGroupSource{groups: []models.Group{autoGroup(1, nil)}}
	starter := &fakeStarter{active: map[int64]bool{1: true}}
	s := NewScheduler(groups, starter, nil, time.Minute)

	s.Tick(time.Now())

	assert.Empty(t, starter.started)
	assert.Empty(t, groups.marked)
}

func TestTickDailyPreference(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("first visit of the day picks daily", func(t *testing.T) {
		g := autoGroup(1, nil)
		g.LastDailyKey = "2026-03-09"
		groups := &fakeGroupSource{groups: []models.Group{g}}
		starter := &fakeStarter{active: map[int64]bool{}}
		s := NewScheduler(groups, starter, nil, time.Minute)

		s.Tick(now)

		require.Len(t, starter.types, 1)
		assert.Equal(t, content.RoundTypeDaily, starter.types[0])
		assert.Equal(t, "2026-03-10", groups.marked[1])
	})

	t.Run("daily already ran today picks a regular type", func(t *testing.T) {
		g := autoGroup(1, nil)
		g.LastDailyKey = "2026-03-10"
		groups := &fakeGroupSource{groups: []models.Group{g}}
		starter := &fakeStarter{active: map[int64]bool{}}
		s := NewScheduler(groups, starter, nil, time.Minute)

		s.Tick(now)

		require.Len(t, starter.types, 1)
		assert.NotEqual(t, content.RoundTypeDaily, starter.types[0])
		assert.Equal(t, "", groups.marked[1])
	})
}

func TestTickStartFailureDoesNotMark(t *testing.T) {
	groups := &fakeGroupSource{groups: []models.Group{autoGroup(1, nil)}}
	starter := &fakeStarter{active: map[int64]bool{}, fail: ErrGameDisabled}
	s := NewScheduler(groups, starter, nil, time.Minute)

	s.Tick(time.Now())

	assert.Empty(t, groups.marked)
}
