package services

import (
	"testing"

	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTeamService(t *testing.T) *TeamService {
	t.Helper()
	return NewTeamService(testDB(t), NewMatcher())
}

func TestCreateTeamRejectsDuplicateNormalizedName(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.CreateTeam(1, 7, "الأبطال", "ahmad")
	require.NoError(t, err)

	// same name with a different alef form collides after normalization
	_, err = svc.CreateTeam(1, 8, "الابطال", "sara")
	assert.ErrorIs(t, err, ErrTeamNameTaken)

	// the same name in another group is fine
	_, err = svc.CreateTeam(2, 8, "الأبطال", "sara")
	assert.NoError(t, err)
}

func TestCreateTeamRejectsEmptyNormalizedName(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.CreateTeam(1, 7, "!!!", "ahmad")
	assert.ErrorIs(t, err, ErrBadTeamName)

	_, err = svc.CreateTeam(1, 7, "  ", "ahmad")
	assert.ErrorIs(t, err, ErrBadTeamName)
}

func TestOneTeamPerUserPerGroup(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.CreateTeam(1, 7, "الصقور", "ahmad")
	require.NoError(t, err)
	_, err = svc.CreateTeam(1, 8, "النسور", "sara")
	require.NoError(t, err)

	// a member cannot create or join a second team
	_, err = svc.CreateTeam(1, 7, "فريق آخر", "ahmad")
	assert.ErrorIs(t, err, ErrAlreadyOnTeam)
	_, err = svc.JoinTeam(1, 7, "النسور", "ahmad")
	assert.ErrorIs(t, err, ErrAlreadyOnTeam)

	// the same user may be on a team in a different group
	_, err = svc.CreateTeam(2, 7, "الصقور", "ahmad")
	assert.NoError(t, err)
}

func TestJoinTeamUnknownName(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.JoinTeam(1, 7, "لا وجود له", "ahmad")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestLeaveTeamPromotesEarliestJoinedMember(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.CreateTeam(1, 7, "الصقور", "ahmad")
	require.NoError(t, err)
	_, err = svc.JoinTeam(1, 8, "الصقور", "sara")
	require.NoError(t, err)
	_, err = svc.JoinTeam(1, 9, "الصقور", "omar")
	require.NoError(t, err)

	_, err = svc.LeaveTeam(1, 7)
	require.NoError(t, err)

	team, err := svc.GetTeamByName(1, "الصقور")
	require.NoError(t, err)
	assert.Equal(t, int64(8), team.CaptainID)
	assert.Len(t, team.Members, 2)
}

func TestLeaveTeamLastMemberDeletesTeam(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.CreateTeam(1, 7, "الصقور", "ahmad")
	require.NoError(t, err)

	_, err = svc.LeaveTeam(1, 7)
	require.NoError(t, err)

	_, err = svc.GetTeamByName(1, "الصقور")
	assert.ErrorIs(t, err, ErrTeamNotFound)
	_, err = svc.GetTeamOf(1, 7)
	assert.ErrorIs(t, err, ErrNotTeamMember)
}

func TestLeaveTeamNotAMember(t *testing.T) {
	svc := newTeamService(t)

	_, err := svc.LeaveTeam(1, 7)
	assert.ErrorIs(t, err, ErrNotTeamMember)
}

func TestAddTeamPointsCreditsMembersTeam(t *testing.T) {
	db := testDB(t)
	svc := NewTeamService(db, NewMatcher())

	team, err := svc.CreateTeam(1, 7, "الصقور", "ahmad")
	require.NoError(t, err)

	require.NoError(t, svc.AddTeamPoints(1, 7, 10))
	require.NoError(t, svc.AddTeamPoints(1, 7, 15))

	var got models.Team
	require.NoError(t, db.First(&got, team.ID).Error)
	assert.Equal(t, 25, got.Points)
	assert.Equal(t, 2, got.Wins)
}

func TestAddTeamPointsWithoutTeamIsNoop(t *testing.T) {
	svc := newTeamService(t)

	assert.NoError(t, svc.AddTeamPoints(1, 7, 10))
}
