package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// LearningService tracks Korean-learning progress per seeker.
type LearningService struct {
	DB *gorm.DB
}

func NewLearningService(db *gorm.DB) *LearningService {
	return &LearningService{DB: db}
}

// GetSummary returns the progress row for a seeker, or a default starter
// payload when the seeker has no progress yet.
func (s *LearningService) GetSummary(seekerID string) (*dtos.LearningSummaryResponse, error) {
	var progress models.LearningProgress
	err := s.DB.Where("seeker_id = ?", seekerID).First(&progress).Error
	if err == gorm.ErrRecordNotFound {
		return &dtos.LearningSummaryResponse{
			SeekerID:         seekerID,
			CurrentLevel:     "Lv.1 기초",
			CompletedLessons: 3,
			TotalLessons:     6,
			ProgressPercent:  65,
		}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get learning progress for %s: %w", seekerID, err)
	}
	return &dtos.LearningSummaryResponse{
		SeekerID:         progress.SeekerID,
		CurrentLevel:     progress.CurrentLevel,
		CompletedLessons: progress.CompletedLessons,
		TotalLessons:     progress.TotalLessons,
		ProgressPercent:  progress.ProgressPercent,
	}, nil
}

// SubmitLevelTest grades a level test. Grading is a placeholder until real
// scoring lands: every submission maps to TOPIK 2급. When the seeker has a
// progress row its level is updated to the mapped label.
func (s *LearningService) SubmitLevelTest(req *dtos.LevelTestRequest) (*dtos.LevelTestResponse, error) {
	level := mapTOPIKLevel("TOPIK 2급")

	var progress models.LearningProgress
	err := s.DB.Where("seeker_id = ?", req.SeekerID).First(&progress).Error
	switch err {
	case nil:
		if err := s.DB.Model(&progress).Update("current_level", level).Error; err != nil {
			return nil, fmt.Errorf("update learning level: %w", err)
		}
	case gorm.ErrRecordNotFound:
		// No record yet: still hand back the mapped level.
	default:
		return nil, fmt.Errorf("get learning progress for %s: %w", req.SeekerID, err)
	}

	return &dtos.LevelTestResponse{Success: true, Level: level}, nil
}

// mapTOPIKLevel translates TOPIK-style result labels into the Lv.x labels
// the client displays. Unrecognized labels fall through to the top tier.
func mapTOPIKLevel(label string) string {
	if label == "" {
		return "Lv.1 기초"
	}
	upper := strings.ToUpper(label)
	switch {
	case strings.Contains(upper, "TOPIK 1"), strings.Contains(upper, "1급"):
		return "Lv.1 기초"
	case strings.Contains(upper, "TOPIK 2"), strings.Contains(upper, "2급"):
		return "Lv.2 초급"
	case strings.Contains(upper, "TOPIK 3"), strings.Contains(upper, "3급"):
		return "Lv.3 중급"
	default:
		return "Lv.4 상급"
	}
}
