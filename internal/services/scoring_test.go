package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekKey(t *testing.T) {
	// 2026-01-01 falls in ISO week 1 of 2026
	assert.Equal(t, "2026-W01", WeekKey(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)))
	// 2023-01-01 is a Sunday and belongs to ISO week 52 of 2022
	assert.Equal(t, "2022-W52", WeekKey(time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)))
}

func TestWeekKeyChangesAcrossISOBoundary(t *testing.T) {
	sunday := time.Date(2026, 8, 30, 23, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 8, 31, 1, 0, 0, 0, time.UTC)
	assert.NotEqual(t, WeekKey(sunday), WeekKey(monday))
}

func TestNextStreakFirstWin(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, NextStreak(nil, now, 0))
}

func TestNextStreakConsecutiveDays(t *testing.T) {
	d := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	next := d.AddDate(0, 0, 1)
	assert.Equal(t, 4, NextStreak(&d, next, 3))
}

func TestNextStreakSameDayUnchanged(t *testing.T) {
	d := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	later := d.Add(5 * time.Hour)
	assert.Equal(t, 3, NextStreak(&d, later, 3))
}

func TestNextStreakGapResets(t *testing.T) {
	d := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	afterGap := d.AddDate(0, 0, 3)
	assert.Equal(t, 1, NextStreak(&d, afterGap, 7))
}

func TestDayKey(t *testing.T) {
	assert.Equal(t, "2026-09-01", DayKey(time.Date(2026, 9, 1, 23, 59, 0, 0, time.UTC)))
}
