package dtos

type LearningSummaryResponse struct {
	SeekerID         string `json:"seekerId"`
	CurrentLevel     string `json:"currentLevel"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `json:"totalLessons"`
	ProgressPercent  int    `json:"progressPercent"`
}

type LevelTestRequest struct {
	SeekerID string         `json:"seekerId" binding:"required"`
	Answers  map[string]any `json:"answers"`
}

type LevelTestResponse struct {
	Success bool   `json:"success"`
	Level   string `json:"level"`
}
