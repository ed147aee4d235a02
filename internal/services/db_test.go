package services

import (
	"testing"

	"github.com/Tareq669/bot-sub000/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens a fresh in-memory database with the full schema. Each
// test gets its own so state never leaks between them.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Group{},
		&models.ScoreRecord{},
		&models.Team{},
		&models.TeamMember{},
		&models.Tournament{},
		&models.Wallet{},
	))
	return db
}

func seedGroup(t *testing.T, db *gorm.DB, chatID int64, weekKey string) {
	t.Helper()
	require.NoError(t, db.Create(&models.Group{
		ChatID:  chatID,
		Enabled: true,
		WeekKey: weekKey,
	}).Error)
}
