package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/services"
)

type LearningHandler struct {
	LearningService *services.LearningService
}

func NewLearningHandler(s *services.LearningService) *LearningHandler {
	return &LearningHandler{LearningService: s}
}

// GetSummary is GET /learning/summary?seekerId=….
func (h *LearningHandler) GetSummary(c *gin.Context) {
	seekerID := c.Query("seekerId")
	if seekerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "seekerId query parameter is required"})
		return
	}
	summary, err := h.LearningService.GetSummary(seekerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SubmitLevelTest is POST /leveltest.
func (h *LearningHandler) SubmitLevelTest(c *gin.Context) {
	var req dtos.LevelTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	resp, err := h.LearningService.SubmitLevelTest(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
