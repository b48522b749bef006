package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/workfair-app/workfair-backend/internal/models"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.SignupUser{},
		&models.Nationality{},
		&models.JobSeeker{},
		&models.Employer{},
		&models.Job{},
		&models.Application{},
		&models.EmployerProfile{},
		&models.Store{},
		&models.JobSeekerProfile{},
		&models.LearningProgress{},
		&models.Post{},
	))
	return db
}

func strPtr(s string) *string { return &s }
