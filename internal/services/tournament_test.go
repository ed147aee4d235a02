package services

import (
	"testing"

	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankTeams(t *testing.T) {
	teams := []models.Team{
		{Name: "alpha", Points: 40},
		{Name: "beta", Points: 120},
		{Name: "gamma", Points: 80},
	}
	teams[0].ID = 1
	teams[1].ID = 2
	teams[2].ID = 3

	ranked := rankTeams(teams)

	assert.Equal(t, "beta", ranked[0].Name)
	assert.Equal(t, "gamma", ranked[1].Name)
	assert.Equal(t, "alpha", ranked[2].Name)

	// input order is untouched
	assert.Equal(t, "alpha", teams[0].Name)
}

func TestRankTeamsTieBreaksByOldestTeam(t *testing.T) {
	teams := []models.Team{
		{Name: "late", Points: 50},
		{Name: "early", Points: 50},
	}
	teams[0].ID = 9
	teams[1].ID = 3

	ranked := rankTeams(teams)

	assert.Equal(t, "early", ranked[0].Name)
	assert.Equal(t, "late", ranked[1].Name)
}

func TestTournamentLifecycle(t *testing.T) {
	db := testDB(t)
	teams := NewTeamService(db, NewMatcher())
	scoring := NewScoreService(db)
	svc := NewTournamentService(db, teams, scoring)

	_, err := teams.CreateTeam(1, 7, "الصقور", "ahmad")
	require.NoError(t, err)
	_, err = teams.CreateTeam(1, 8, "النسور", "sara")
	require.NoError(t, err)
	_, err = teams.JoinTeam(1, 9, "النسور", "omar")
	require.NoError(t, err)

	assert.False(t, svc.IsActive(1))

	tour, err := svc.Start(1)
	require.NoError(t, err)
	assert.True(t, tour.Active)
	assert.Equal(t, 1, tour.Season)
	assert.True(t, svc.IsActive(1))

	_, err = svc.Start(1)
	assert.ErrorIs(t, err, ErrTournamentOn)

	_, err = svc.SetRewards(1, 100, 60, 40)
	require.NoError(t, err)

	require.NoError(t, teams.AddTeamPoints(1, 7, 10))
	require.NoError(t, teams.AddTeamPoints(1, 8, 30))

	final, err := svc.End(1)
	require.NoError(t, err)
	assert.False(t, final.Tournament.Active)
	assert.Equal(t, 2, final.Tournament.Season)
	require.Len(t, final.Standings, 2)
	assert.Equal(t, "النسور", final.Standings[0].Name)

	// every member of the winning team gets the first-place reward as
	// lifetime points, the runner-up team the second-place reward
	for _, userID := range []int64{8, 9} {
		rec, err := scoring.GetRecord(1, userID)
		require.NoError(t, err)
		assert.Equal(t, 100, rec.Points)
		assert.Equal(t, 0, rec.WeeklyPoints)
	}
	rec, err := scoring.GetRecord(1, 7)
	require.NoError(t, err)
	assert.Equal(t, 60, rec.Points)

	// team points reset for the next season
	var remaining []models.Team
	require.NoError(t, db.Where("chat_id = ?", 1).Find(&remaining).Error)
	for _, team := range remaining {
		assert.Equal(t, 0, team.Points)
	}

	_, err = svc.End(1)
	assert.ErrorIs(t, err, ErrTournamentOff)
}

func TestSetRewardsValidation(t *testing.T) {
	svc := NewTournamentService(testDB(t), nil, nil)

	_, err := svc.SetRewards(1, 50, 60, 40)
	assert.ErrorIs(t, err, ErrBadRewards)
	_, err = svc.SetRewards(1, 100, 60, 0)
	assert.ErrorIs(t, err, ErrBadRewards)

	tour, err := svc.SetRewards(1, 100, 60, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, tour.RewardFirst)
	assert.Equal(t, 40, tour.RewardThird)
}
