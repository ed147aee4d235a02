package services

import (
	"sort"
	"time"

	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"

	"gorm.io/gorm"
)

// TournamentService runs the seasonal team competition of a group.
type TournamentService struct {
	db      *gorm.DB
	teams   *TeamService
	scoring *ScoreService
}

func NewTournamentService(db *gorm.DB, teams *TeamService, scoring *ScoreService) *TournamentService {
	return &TournamentService{db: db, teams: teams, scoring: scoring}
}

func (s *TournamentService) getOrCreate(chatID int64) (*models.Tournament, error) {
	var t models.Tournament
	err := s.db.Where("chat_id = ?", chatID).First(&t).Error
	if err == nil {
		return &t, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	t = models.Tournament{ChatID: chatID, Season: 1}
	if err := s.db.Create(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Start opens a new season run. Team points are zeroed; the season
// number only advances when the tournament ends.
func (s *TournamentService) Start(chatID int64) (*models.Tournament, error) {
	t, err := s.getOrCreate(chatID)
	if err != nil {
		return nil, err
	}
	if t.Active {
		return nil, ErrTournamentOn
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Team{}).Where("chat_id = ?", chatID).
			Update("points", 0).Error; err != nil {
			return err
		}
		t.Active = true
		t.StartedAt = &now
		t.EndedAt = nil
		return tx.Save(t).Error
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

type TournamentStatus struct {
	Tournament models.Tournament `json:"tournament"`
	Standings  []models.Team     `json:"standings"`
}

func (s *TournamentService) Status(chatID int64) (*TournamentStatus, error) {
	t, err := s.getOrCreate(chatID)
	if err != nil {
		return nil, err
	}
	standings, err := s.teams.ListTeamsByPoints(chatID, 50)
	if err != nil {
		return nil, err
	}
	return &TournamentStatus{Tournament: *t, Standings: standings}, nil
}

// IsActive is the cheap check used on the win path.
func (s *TournamentService) IsActive(chatID int64) bool {
	var t models.Tournament
	if err := s.db.Where("chat_id = ?", chatID).First(&t).Error; err != nil {
		return false
	}
	return t.Active
}

// rankTeams orders teams by points descending, ties broken by team id
// ascending.
func rankTeams(teams []models.Team) []models.Team {
	ranked := make([]models.Team, len(teams))
	copy(ranked, teams)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Points != ranked[j].Points {
			return ranked[i].Points > ranked[j].Points
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

// End closes the season: the top three teams' members each receive the
// corresponding reward as lifetime points, team points reset, and the
// season number advances.
func (s *TournamentService) End(chatID int64) (*TournamentStatus, error) {
	t, err := s.getOrCreate(chatID)
	if err != nil {
		return nil, err
	}
	if !t.Active {
		return nil, ErrTournamentOff
	}

	var teams []models.Team
	if err := s.db.Where("chat_id = ?", chatID).Preload("Members").
		Find(&teams).Error; err != nil {
		return nil, err
	}
	ranked := rankTeams(teams)

	rewards := []int{t.RewardFirst, t.RewardSecond, t.RewardThird}
	for i, team := range ranked {
		if i >= len(rewards) {
			break
		}
		for _, m := range team.Members {
			if err := s.scoring.AddPoints(chatID, m.UserID, m.DisplayName, rewards[i]); err != nil {
				logging.Log.WithError(err).
					Warnf("tournament payout failed for user %d in chat %d", m.UserID, chatID)
			}
		}
	}

	now := time.Now()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Team{}).Where("chat_id = ?", chatID).
			Update("points", 0).Error; err != nil {
			return err
		}
		t.Active = false
		t.EndedAt = &now
		t.Season++
		return tx.Save(t).Error
	})
	if err != nil {
		return nil, err
	}

	final := &TournamentStatus{Tournament: *t, Standings: ranked}
	return final, nil
}

func (s *TournamentService) SetRewards(chatID int64, first, second, third int) (*models.Tournament, error) {
	if !(first >= second && second >= third && third > 0) {
		return nil, ErrBadRewards
	}
	t, err := s.getOrCreate(chatID)
	if err != nil {
		return nil, err
	}
	t.RewardFirst = first
	t.RewardSecond = second
	t.RewardThird = third
	if err := s.db.Save(t).Error; err != nil {
		return nil, err
	}
	return t, nil
}
