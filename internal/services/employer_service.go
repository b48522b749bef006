package services

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// EmployerService manages employer business profiles and stores.
type EmployerService struct {
	DB *gorm.DB
}

func NewEmployerService(db *gorm.DB) *EmployerService {
	return &EmployerService{DB: db}
}

// GetProfile returns the business profile for an employer account.
func (s *EmployerService) GetProfile(userID string) (*models.EmployerProfile, error) {
	var profile models.EmployerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employer profile for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("get employer profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the business profile for an employer
// account.
func (s *EmployerService) UpsertProfile(req *dtos.EmployerProfileRequest) (*models.EmployerProfile, error) {
	if err := s.requireEmployer(req.UserID); err != nil {
		return nil, err
	}

	var profile models.EmployerProfile
	err := s.DB.Where("user_id = ?", req.UserID).First(&profile).Error
	switch err {
	case nil:
		profile.BusinessType = req.BusinessType
		profile.CompanyName = req.CompanyName
		profile.Address = req.Address
		profile.AddressDetail = req.AddressDetail
		profile.UpdatedAt = time.Now().UTC()
		if err := s.DB.Save(&profile).Error; err != nil {
			return nil, fmt.Errorf("update employer profile: %w", err)
		}
	case gorm.ErrRecordNotFound:
		profile = models.EmployerProfile{
			ID:            newID("profile"),
			UserID:        req.UserID,
			BusinessType:  req.BusinessType,
			CompanyName:   req.CompanyName,
			Address:       req.Address,
			AddressDetail: req.AddressDetail,
		}
		if err := s.DB.Create(&profile).Error; err != nil {
			return nil, fmt.Errorf("create employer profile: %w", err)
		}
	default:
		return nil, fmt.Errorf("get employer profile: %w", err)
	}

	return &profile, nil
}

// ListStores returns an account's stores, main store first.
func (s *EmployerService) ListStores(userID string) ([]models.Store, error) {
	var stores []models.Store
	if err := s.DB.Where("user_id = ?", userID).
		Order("is_main DESC, created_at").
		Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("list stores for %s: %w", userID, err)
	}
	return stores, nil
}

// GetStore returns one store owned by the account.
func (s *EmployerService) GetStore(userID, storeID string) (*models.Store, error) {
	var store models.Store
	if err := s.DB.Where("id = ? AND user_id = ?", storeID, userID).First(&store).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("get store %s: %w", storeID, err)
	}
	return &store, nil
}

// CreateStore adds a store. When the new store is marked main, every other
// main store of the same account is unset in the same transaction, so at
// most one main store exists per account.
func (s *EmployerService) CreateStore(req *dtos.StoreCreateRequest) (*models.Store, error) {
	if err := s.requireEmployer(req.UserID); err != nil {
		return nil, err
	}

	store := models.Store{
		ID:              newID("store"),
		UserID:          req.UserID,
		IsMain:          req.IsMain,
		StoreName:       req.StoreName,
		Address:         req.Address,
		AddressDetail:   req.AddressDetail,
		Phone:           req.Phone,
		Industry:        req.Industry,
		BusinessLicense: req.BusinessLicense,
		ManagementRole:  req.ManagementRole,
		StoreType:       req.StoreType,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsMain {
			if err := tx.Model(&models.Store{}).
				Where("user_id = ? AND is_main = ?", req.UserID, true).
				Update("is_main", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&store).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	return &store, nil
}

// SetMainStore marks one store as the account's main store, unsetting the
// others. Idempotent: re-setting the current main leaves exactly one main.
func (s *EmployerService) SetMainStore(userID, storeID string) (*models.Store, error) {
	var store models.Store
	if err := s.DB.Where("id = ? AND user_id = ?", storeID, userID).First(&store).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("store %s: %w", storeID, ErrNotFound)
		}
		return nil, fmt.Errorf("get store %s: %w", storeID, err)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Store{}).
			Where("user_id = ? AND id <> ?", userID, storeID).
			Update("is_main", false).Error; err != nil {
			return err
		}
		return tx.Model(&store).Updates(map[string]any{
			"is_main":    true,
			"updated_at": time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("set main store %s: %w", storeID, err)
	}

	store.IsMain = true
	return &store, nil
}

// requireEmployer validates that the account exists and has the employer
// role before any write.
func (s *EmployerService) requireEmployer(userID string) error {
	var user models.SignupUser
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("signup user %s: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("get signup user: %w", err)
	}
	if user.Role != "employer" {
		return fmt.Errorf("user %s is not an employer: %w", userID, ErrValidation)
	}
	return nil
}
