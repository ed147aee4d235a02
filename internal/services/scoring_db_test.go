package services

import (
	"testing"
	"time"

	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWinCreatesAndIncrements(t *testing.T) {
	db := testDB(t)
	seedGroup(t, db, 1, WeekKey(time.Now()))
	svc := NewScoreService(db)

	rec, err := svc.RecordWin(1, 7, "ahmad", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Points)
	assert.Equal(t, 10, rec.WeeklyPoints)
	assert.Equal(t, 1, rec.Wins)
	assert.Equal(t, 1, rec.Streak)
	assert.Equal(t, "ahmad", rec.DisplayName)

	rec, err = svc.RecordWin(1, 7, "ahmad", 15)
	require.NoError(t, err)
	assert.Equal(t, 25, rec.Points)
	assert.Equal(t, 25, rec.WeeklyPoints)
	assert.Equal(t, 2, rec.Wins)
	assert.Equal(t, 1, rec.Streak, "a second win the same day keeps the streak")
}

func TestRecordWinRotatesWeeklyPointsForWholeGroup(t *testing.T) {
	db := testDB(t)
	seedGroup(t, db, 1, "2020-W01")
	require.NoError(t, db.Create(&models.ScoreRecord{
		ChatID: 1, UserID: 7, DisplayName: "ahmad", Points: 100, WeeklyPoints: 40,
	}).Error)
	require.NoError(t, db.Create(&models.ScoreRecord{
		ChatID: 1, UserID: 8, DisplayName: "sara", Points: 50, WeeklyPoints: 30,
	}).Error)
	svc := NewScoreService(db)

	rec, err := svc.RecordWin(1, 7, "ahmad", 10)
	require.NoError(t, err)

	// the winner's weekly total restarts from this reward
	assert.Equal(t, 10, rec.WeeklyPoints)
	assert.Equal(t, 110, rec.Points)

	// every other member's weekly points are zeroed, lifetime untouched
	other, err := svc.GetRecord(1, 8)
	require.NoError(t, err)
	assert.Equal(t, 0, other.WeeklyPoints)
	assert.Equal(t, 50, other.Points)

	var group models.Group
	require.NoError(t, db.Where("chat_id = ?", 1).First(&group).Error)
	assert.Equal(t, WeekKey(time.Now()), group.WeekKey)
}

func TestRecordWinLeavesOtherGroupsAlone(t *testing.T) {
	db := testDB(t)
	seedGroup(t, db, 1, "2020-W01")
	seedGroup(t, db, 2, "2020-W01")
	require.NoError(t, db.Create(&models.ScoreRecord{
		ChatID: 2, UserID: 7, Points: 30, WeeklyPoints: 30,
	}).Error)
	svc := NewScoreService(db)

	_, err := svc.RecordWin(1, 7, "ahmad", 10)
	require.NoError(t, err)

	other, err := svc.GetRecord(2, 7)
	require.NoError(t, err)
	assert.Equal(t, 30, other.WeeklyPoints)
}

func TestAddPointsCreditsLifetimeOnly(t *testing.T) {
	db := testDB(t)
	svc := NewScoreService(db)

	require.NoError(t, svc.AddPoints(1, 7, "ahmad", 60))

	rec, err := svc.GetRecord(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 60, rec.Points)
	assert.Equal(t, 0, rec.WeeklyPoints)
	assert.Equal(t, 0, rec.Wins)
	assert.Equal(t, 0, rec.Streak)
}

func TestLeaderboardOrdersByMetricWithStableTies(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&models.ScoreRecord{ChatID: 1, UserID: 9, Points: 20, WeeklyPoints: 50}).Error)
	require.NoError(t, db.Create(&models.ScoreRecord{ChatID: 1, UserID: 7, Points: 20, WeeklyPoints: 10}).Error)
	require.NoError(t, db.Create(&models.ScoreRecord{ChatID: 1, UserID: 8, Points: 80, WeeklyPoints: 30}).Error)
	svc := NewScoreService(db)

	records, err := svc.Leaderboard(1, MetricWeekly, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(9), records[0].UserID)
	assert.Equal(t, int64(8), records[1].UserID)
	assert.Equal(t, int64(7), records[2].UserID)

	// equal lifetime points order by user id
	records, err = svc.Leaderboard(1, MetricPoints, 10)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, int64(8), records[0].UserID)
	assert.Equal(t, int64(7), records[1].UserID)
	assert.Equal(t, int64(9), records[2].UserID)
}
