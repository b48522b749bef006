package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/auth"
	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/services"
)

type JobSeekerHandler struct {
	JobSeekerService *services.JobSeekerService
}

func NewJobSeekerHandler(s *services.JobSeekerService) *JobSeekerHandler {
	return &JobSeekerHandler{JobSeekerService: s}
}

// UpsertProfile is POST /job-seeker/profile (onboarding wizard).
func (h *JobSeekerHandler) UpsertProfile(c *gin.Context) {
	var req dtos.JobSeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.JobSeekerService.UpsertProfile(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// GetProfile is GET /job-seeker/profile/:user_id.
func (h *JobSeekerHandler) GetProfile(c *gin.Context) {
	profile, err := h.JobSeekerService.GetProfile(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles is GET /job-seeker/profiles (employer-facing applicant pool).
func (h *JobSeekerHandler) ListProfiles(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}
	items, err := h.JobSeekerService.ListProfiles(limit, offset, c.Query("visa_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMe is GET /profile/me: the combined profile of the authenticated
// account.
func (h *JobSeekerHandler) GetMe(c *gin.Context) {
	userID := c.GetString(auth.ContextUserID)
	profile, err := h.JobSeekerService.GetCombinedProfile(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe is PUT /profile/me.
func (h *JobSeekerHandler) UpdateMe(c *gin.Context) {
	var req dtos.ProfileData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	userID := c.GetString(auth.ContextUserID)
	profile, err := h.JobSeekerService.UpdateCombinedProfile(userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
