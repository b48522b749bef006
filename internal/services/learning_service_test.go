package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

func TestGetSummaryDefaultsWhenNoProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningService(db)

	summary, err := svc.GetSummary("seeker-1")
	require.NoError(t, err)

	assert.Equal(t, "seeker-1", summary.SeekerID)
	assert.Equal(t, "Lv.1 기초", summary.CurrentLevel)
	assert.Equal(t, 3, summary.CompletedLessons)
	assert.Equal(t, 6, summary.TotalLessons)
	assert.Equal(t, 65, summary.ProgressPercent)
}

func TestGetSummaryReturnsStoredProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningService(db)

	require.NoError(t, db.Create(&models.LearningProgress{
		ID: "lp-1", SeekerID: "seeker-1", CurrentLevel: "Lv.3 중급",
		CompletedLessons: 40, TotalLessons: 100, ProgressPercent: 40,
	}).Error)

	summary, err := svc.GetSummary("seeker-1")
	require.NoError(t, err)
	assert.Equal(t, "Lv.3 중급", summary.CurrentLevel)
	assert.Equal(t, 40, summary.CompletedLessons)
}

func TestSubmitLevelTestUpdatesExistingProgress(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningService(db)

	require.NoError(t, db.Create(&models.LearningProgress{
		ID: "lp-1", SeekerID: "seeker-1", CurrentLevel: "Lv.1 기초",
	}).Error)

	resp, err := svc.SubmitLevelTest(&dtos.LevelTestRequest{SeekerID: "seeker-1"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Lv.2 초급", resp.Level)

	var progress models.LearningProgress
	require.NoError(t, db.First(&progress, "seeker_id = ?", "seeker-1").Error)
	assert.Equal(t, "Lv.2 초급", progress.CurrentLevel)
}

func TestSubmitLevelTestWithoutProgressRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLearningService(db)

	resp, err := svc.SubmitLevelTest(&dtos.LevelTestRequest{SeekerID: "seeker-unknown"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Lv.2 초급", resp.Level)
}

func TestMapTOPIKLevel(t *testing.T) {
	cases := map[string]string{
		"":         "Lv.1 기초",
		"TOPIK 1급": "Lv.1 기초",
		"topik 1":  "Lv.1 기초",
		"TOPIK 2급": "Lv.2 초급",
		"TOPIK 3급": "Lv.3 중급",
		"TOPIK 4급": "Lv.4 상급",
		"TOPIK 6급": "Lv.4 상급",
		"native":   "Lv.4 상급",
	}
	for label, want := range cases {
		assert.Equal(t, want, mapTOPIKLevel(label), "label %q", label)
	}
}
