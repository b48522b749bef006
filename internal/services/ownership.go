package services

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/models"
)

// OwnedJobs is the result of resolving which postings an employer account
// controls.
type OwnedJobs struct {
	// JobIDs is the de-duplicated union of all ownership paths, in
	// first-seen order.
	JobIDs []string
	// StoreIDs are the stores the account owns.
	StoreIDs []string
	// EmployerID is the legacy employer id reached through the
	// business-profile path, empty when the account has none.
	EmployerID string
}

// OwnershipResolver maps an employer account to the postings it may manage.
//
// Ownership of a posting is not a single foreign key; it is the union of
// three linkage paths:
//
//  1. store path:    stores.user_id = account → jobs.store_id in those stores
//  2. direct path:   jobs.employer_id = account (pre-store postings)
//  3. profile path:  employer_profiles.user_id = account
//                    → employers.business_no = profile id
//                    → jobs.employer_id = that employer
//
// A path with no matching rows contributes nothing; a missing profile or
// legacy employer is not an error. Query failures propagate to the caller:
// an empty dashboard and a failed lookup are different outcomes.
type OwnershipResolver struct {
	DB *gorm.DB
}

func NewOwnershipResolver(db *gorm.DB) *OwnershipResolver {
	return &OwnershipResolver{DB: db}
}

// ResolveOwnedJobs computes the owned posting set for the given account id.
func (r *OwnershipResolver) ResolveOwnedJobs(userID string) (*OwnedJobs, error) {
	owned := &OwnedJobs{}
	seen := make(map[string]bool)
	add := func(ids []string) {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				owned.JobIDs = append(owned.JobIDs, id)
			}
		}
	}

	// 1. Store path.
	if err := r.DB.Model(&models.Store{}).
		Where("user_id = ?", userID).
		Pluck("id", &owned.StoreIDs).Error; err != nil {
		return nil, fmt.Errorf("resolve stores for %s: %w", userID, err)
	}
	if len(owned.StoreIDs) > 0 {
		var ids []string
		if err := r.DB.Model(&models.Job{}).
			Where("store_id IN ?", owned.StoreIDs).
			Pluck("id", &ids).Error; err != nil {
			return nil, fmt.Errorf("resolve store jobs for %s: %w", userID, err)
		}
		add(ids)
	}

	// 2. Direct legacy path.
	var directIDs []string
	if err := r.DB.Model(&models.Job{}).
		Where("employer_id = ?", userID).
		Pluck("id", &directIDs).Error; err != nil {
		return nil, fmt.Errorf("resolve direct jobs for %s: %w", userID, err)
	}
	add(directIDs)

	// 3. Business-profile path.
	var profile models.EmployerProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("resolve employer profile for %s: %w", userID, err)
	}
	if err == nil {
		var employer models.Employer
		err = r.DB.Where("business_no = ?", profile.ID).First(&employer).Error
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("resolve legacy employer for %s: %w", userID, err)
		}
		if err == nil {
			owned.EmployerID = employer.ID
			var ids []string
			if err := r.DB.Model(&models.Job{}).
				Where("employer_id = ?", employer.ID).
				Pluck("id", &ids).Error; err != nil {
				return nil, fmt.Errorf("resolve employer jobs for %s: %w", userID, err)
			}
			add(ids)
		}
	}

	return owned, nil
}
