package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/services"
)

type AuthHandler struct {
	AuthService *services.AuthService
}

func NewAuthHandler(s *services.AuthService) *AuthHandler {
	return &AuthHandler{AuthService: s}
}

// Signup is POST /auth/signup (wizard flow, both roles).
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dtos.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	resp, err := h.AuthService.Signup(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignupEmployer is POST /auth/signup/employer.
func (h *AuthHandler) SignupEmployer(c *gin.Context) {
	var req dtos.EmployerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	resp, err := h.AuthService.SignupEmployer(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Signin is POST /auth/signin/new (identifier + password).
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dtos.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	resp, err := h.AuthService.Signin(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetSignupUser is GET /auth/signup-user/:user_id.
func (h *AuthHandler) GetSignupUser(c *gin.Context) {
	resp, err := h.AuthService.GetSignupUser(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
