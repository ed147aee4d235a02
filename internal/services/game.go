package services

import (
	"time"

	"github.com/Tareq669/bot-sub000/internal/content"
)

// GameService starts explicitly requested rounds, pulling prompts from
// the content bank and enforcing the once-per-day rule for daily rounds.
type GameService struct {
	rounds *RoundManager
	groups *GroupService
}

func NewGameService(rounds *RoundManager, groups *GroupService) *GameService {
	return &GameService{rounds: rounds, groups: groups}
}

func (s *GameService) StartTyped(chatID int64, roundType string) (*Round, error) {
	if roundType == "" {
		roundType = content.RoundTypeQuiz
	}
	if !content.Known(roundType) {
		return nil, ErrUnknownType
	}

	today := DayKey(time.Now())
	if roundType == content.RoundTypeDaily {
		group, err := s.groups.Get(chatID)
		if err != nil {
			return nil, err
		}
		if group.LastDailyKey == today {
			return nil, ErrDailyAlreadyRan
		}
	}

	q, _ := content.Random(roundType)
	round, err := s.rounds.StartRound(chatID, q)
	if err != nil {
		return nil, err
	}

	if roundType == content.RoundTypeDaily {
		if err := s.groups.MarkDailyStarted(chatID, today); err != nil {
			return round, err
		}
	}
	return round, nil
}
