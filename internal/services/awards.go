package services

import (
	"github.com/Tareq669/bot-sub000/internal/content"
	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"
)

// WinSummary is what the winner announcement is built from.
type WinSummary struct {
	Record     models.ScoreRecord `json:"record"`
	Coins      int                `json:"coins"`
	TeamPoints int                `json:"team_points"`
}

// AwardService executes the payout path of a resolved round: the
// scoring ledger, the coin ledger, and the winner's team when a
// tournament is running.
type AwardService struct {
	scoring     *ScoreService
	teams       *TeamService
	tournaments *TournamentService
	wallet      *WalletService
}

func NewAwardService(scoring *ScoreService, teams *TeamService, tournaments *TournamentService, wallet *WalletService) *AwardService {
	return &AwardService{scoring: scoring, teams: teams, tournaments: tournaments, wallet: wallet}
}

func (a *AwardService) HandleWin(chatID, userID int64, displayName string, q content.Question) (*WinSummary, error) {
	rec, err := a.scoring.RecordWin(chatID, userID, displayName, q.Reward)
	if err != nil {
		return nil, err
	}

	summary := &WinSummary{Record: *rec}

	coins, err := a.wallet.AddCoins(userID, q.Reward, "round win")
	if err != nil {
		logging.Log.WithError(err).Warnf("coin payout failed for user %d", userID)
	} else {
		summary.Coins = coins
	}

	if a.tournaments.IsActive(chatID) {
		if err := a.teams.AddTeamPoints(chatID, userID, q.Reward); err != nil {
			logging.Log.WithError(err).Warnf("team points failed for user %d in chat %d", userID, chatID)
		} else {
			summary.TeamPoints = q.Reward
		}
	}

	return summary, nil
}
