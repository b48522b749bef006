package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
	"github.com/workfair-app/workfair-backend/internal/services"
)

type EmployerHandler struct {
	EmployerService *services.EmployerService
}

func NewEmployerHandler(s *services.EmployerService) *EmployerHandler {
	return &EmployerHandler{EmployerService: s}
}

// GetProfile is GET /employer/profile/:user_id.
func (h *EmployerHandler) GetProfile(c *gin.Context) {
	profile, err := h.EmployerService.GetProfile(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employerProfileResponse(profile))
}

// UpsertProfile is POST /employer/profile.
func (h *EmployerHandler) UpsertProfile(c *gin.Context) {
	var req dtos.EmployerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	profile, err := h.EmployerService.UpsertProfile(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employerProfileResponse(profile))
}

// ListStores is GET /employer/stores/:user_id, main store first.
func (h *EmployerHandler) ListStores(c *gin.Context) {
	stores, err := h.EmployerService.ListStores(c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dtos.StoreResponse, 0, len(stores))
	for i := range stores {
		out = append(out, storeResponse(&stores[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetStore is GET /employer/stores/:user_id/:store_id.
func (h *EmployerHandler) GetStore(c *gin.Context) {
	store, err := h.EmployerService.GetStore(c.Param("user_id"), c.Param("store_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storeResponse(store))
}

// CreateStore is POST /employer/stores.
func (h *EmployerHandler) CreateStore(c *gin.Context) {
	var req dtos.StoreCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	store, err := h.EmployerService.CreateStore(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, storeResponse(store))
}

// SetMainStore is PATCH /employer/stores/:user_id/:store_id/main.
func (h *EmployerHandler) SetMainStore(c *gin.Context) {
	store, err := h.EmployerService.SetMainStore(c.Param("user_id"), c.Param("store_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, storeResponse(store))
}

func employerProfileResponse(p *models.EmployerProfile) dtos.EmployerProfileResponse {
	return dtos.EmployerProfileResponse{
		ID:            p.ID,
		UserID:        p.UserID,
		BusinessType:  p.BusinessType,
		CompanyName:   p.CompanyName,
		Address:       p.Address,
		AddressDetail: p.AddressDetail,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func storeResponse(s *models.Store) dtos.StoreResponse {
	return dtos.StoreResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		IsMain:          s.IsMain,
		StoreName:       s.StoreName,
		Address:         s.Address,
		AddressDetail:   s.AddressDetail,
		Phone:           s.Phone,
		Industry:        s.Industry,
		BusinessLicense: s.BusinessLicense,
		ManagementRole:  s.ManagementRole,
		StoreType:       s.StoreType,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
