package dtos

import "github.com/workfair-app/workfair-backend/internal/models"

// JobCreateRequest creates a posting under an employer business profile.
type JobCreateRequest struct {
	EmployerProfileID string   `json:"employer_profile_id" binding:"required"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Wage              int      `json:"wage" binding:"required"`
	WorkDays          string   `json:"work_days"`
	WorkHours         string   `json:"work_hours"`
	Deadline          string   `json:"deadline"`
	Positions         int      `json:"positions"`
	RequiredLanguage  string   `json:"required_language"`
	RequiredVisa      []string `json:"required_visa"`
	Benefits          *string  `json:"benefits"`
	EmployerMessage   *string  `json:"employer_message"`
	Status            string   `json:"status"`

	// Optional overrides for the shop shown on the card.
	Location          *string `json:"location"`
	ShopName          *string `json:"shop_name"`
	ShopAddress       *string `json:"shop_address"`
	ShopAddressDetail *string `json:"shop_address_detail"`
	ShopPhone         *string `json:"shop_phone"`
	StoreID           *string `json:"store_id"`
}

// JobUpdateRequest partially updates a posting; nil fields are untouched.
type JobUpdateRequest struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	Category         *string   `json:"category"`
	Wage             *int      `json:"wage"`
	WorkDays         *string   `json:"work_days"`
	WorkHours        *string   `json:"work_hours"`
	Deadline         *string   `json:"deadline"`
	Positions        *int      `json:"positions"`
	RequiredLanguage *string   `json:"required_language"`
	RequiredVisa     *[]string `json:"required_visa"`
	Benefits         *string   `json:"benefits"`
	EmployerMessage  *string   `json:"employer_message"`
}

// JobStatusUpdateRequest moves a posting between active/paused/closed.
type JobStatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// JobView is a posting projection returned by listings and detail reads:
// the job row plus its employer, the parsed visa list, the application
// count and the derived trust flag.
type JobView struct {
	models.Job
	Employer          *models.Employer `json:"employer"`
	RequiredVisa      []string         `json:"requiredVisa"`
	ApplicationsCount int64            `json:"applicationsCount"`
	IsTrusted         bool             `json:"isTrusted"`
}
