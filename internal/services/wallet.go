package services

import (
	"github.com/Tareq669/bot-sub000/internal/logging"
	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// WalletService is the coin ledger consumed by the win path. Only
// AddCoins is exposed; bookkeeping beyond the balance lives elsewhere.
type WalletService struct {
	db *gorm.DB
}

func NewWalletService(db *gorm.DB) *WalletService {
	return &WalletService{db: db}
}

// AddCoins credits a user and returns the new balance.
func (s *WalletService) AddCoins(userID int64, amount int, reason string) (int, error) {
	var wallet models.Wallet
	err := withRetry(func() error {
		return s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).First(&wallet).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				wallet = models.Wallet{UserID: userID}
			}
			wallet.Coins += amount
			return tx.Save(&wallet).Error
		})
	})
	if err != nil {
		return 0, err
	}

	logging.Log.WithFields(logrus.Fields{
		"user_id": userID,
		"amount":  amount,
		"reason":  reason,
	}).Debug("coins credited")
	return wallet.Coins, nil
}
