package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/services"
)

type ApplicationHandler struct {
	ApplicationService *services.ApplicationService
}

func NewApplicationHandler(s *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: s}
}

// CreateApplication is POST /applications.
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req dtos.ApplicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.ApplicationService.CreateApplication(c.Request.Context(), req.SeekerID, req.JobID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListApplications is GET /applications. The response shape depends on
// the filter: seeker listings carry full job summaries, employer listings
// carry applicant summaries.
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	filter := services.ApplicationFilter{
		SeekerID:   c.Query("seekerId"),
		JobID:      c.Query("jobId"),
		EmployerID: c.Query("employerId"),
		UserID:     c.Query("userId"),
	}
	apps, err := h.ApplicationService.ListApplications(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplication is PATCH /applications/:application_id.
func (h *ApplicationHandler) UpdateApplication(c *gin.Context) {
	var req dtos.ApplicationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.ApplicationService.UpdateApplicationStatus(c.Request.Context(), c.Param("application_id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
