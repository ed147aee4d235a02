package services

import (
	"time"

	"github.com/Tareq669/bot-sub000/internal/models"

	"gorm.io/gorm"
)

// TeamService manages the per-group team registry.
type TeamService struct {
	db      *gorm.DB
	matcher *Matcher
}

func NewTeamService(db *gorm.DB, matcher *Matcher) *TeamService {
	return &TeamService{db: db, matcher: matcher}
}

func (s *TeamService) CreateTeam(chatID, captainID int64, name, displayName string) (*models.Team, error) {
	norm := s.matcher.Normalize(name)
	if norm == "" {
		return nil, ErrBadTeamName
	}

	var count int64
	if err := s.db.Model(&models.TeamMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, captainID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyOnTeam
	}

	if err := s.db.Model(&models.Team{}).
		Where("chat_id = ? AND normalized_name = ?", chatID, norm).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrTeamNameTaken
	}

	team := models.Team{
		ChatID:         chatID,
		Name:           name,
		NormalizedName: norm,
		CaptainID:      captainID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		member := models.TeamMember{
			TeamID:      team.ID,
			ChatID:      chatID,
			UserID:      captainID,
			DisplayName: displayName,
			JoinedAt:    time.Now(),
		}
		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) JoinTeam(chatID, userID int64, name, displayName string) (*models.Team, error) {
	var count int64
	if err := s.db.Model(&models.TeamMember{}).
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAlreadyOnTeam
	}

	team, err := s.GetTeamByName(chatID, name)
	if err != nil {
		return nil, err
	}

	member := models.TeamMember{
		TeamID:      team.ID,
		ChatID:      chatID,
		UserID:      userID,
		DisplayName: displayName,
		JoinedAt:    time.Now(),
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return team, nil
}

// LeaveTeam removes the member. A leaving captain hands the team to
// the earliest-joined remaining member; the last member leaving
// deletes the team.
func (s *TeamService) LeaveTeam(chatID, userID int64) (*models.Team, error) {
	var member models.TeamMember
	if err := s.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&member).Error; err != nil {
		return nil, ErrNotTeamMember
	}

	var team models.Team
	if err := s.db.First(&team, member.TeamID).Error; err != nil {
		return nil, ErrTeamNotFound
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&member).Error; err != nil {
			return err
		}

		var remaining []models.TeamMember
		if err := tx.Where("team_id = ?", team.ID).
			Order("joined_at ASC").
			Find(&remaining).Error; err != nil {
			return err
		}

		if len(remaining) == 0 {
			return tx.Delete(&team).Error
		}

		if team.CaptainID == userID {
			team.CaptainID = remaining[0].UserID
			return tx.Model(&team).Update("captain_id", team.CaptainID).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (s *TeamService) GetTeamByName(chatID int64, name string) (*models.Team, error) {
	norm := s.matcher.Normalize(name)
	var team models.Team
	if err := s.db.Where("chat_id = ? AND normalized_name = ?", chatID, norm).
		Preload("Members").
		First(&team).Error; err != nil {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

func (s *TeamService) GetTeamOf(chatID, userID int64) (*models.Team, error) {
	var member models.TeamMember
	if err := s.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&member).Error; err != nil {
		return nil, ErrNotTeamMember
	}
	var team models.Team
	if err := s.db.Preload("Members").First(&team, member.TeamID).Error; err != nil {
		return nil, ErrTeamNotFound
	}
	return &team, nil
}

func (s *TeamService) ListTeamsByPoints(chatID int64, limit int) ([]models.Team, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	var teams []models.Team
	err := s.db.Where("chat_id = ?", chatID).
		Order("points DESC, id ASC").
		Limit(limit).
		Preload("Members").
		Find(&teams).Error
	return teams, err
}

// AddTeamPoints credits a member's team for a round win. Users without
// a team are a no-op.
func (s *TeamService) AddTeamPoints(chatID, userID int64, points int) error {
	var member models.TeamMember
	if err := s.db.Where("chat_id = ? AND user_id = ?", chatID, userID).
		First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return s.db.Model(&models.Team{}).Where("id = ?", member.TeamID).
		Updates(map[string]interface{}{
			"points": gorm.Expr("points + ?", points),
			"wins":   gorm.Expr("wins + 1"),
		}).Error
}

// ResetAllPoints zeroes team points for a group (season start/end).
func (s *TeamService) ResetAllPoints(chatID int64) error {
	return s.db.Model(&models.Team{}).Where("chat_id = ?", chatID).
		Update("points", 0).Error
}
