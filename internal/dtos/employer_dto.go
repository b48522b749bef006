package dtos

// EmployerProfileRequest creates or replaces the business profile for an
// employer account.
type EmployerProfileRequest struct {
	UserID        string  `json:"user_id" binding:"required"`
	BusinessType  string  `json:"business_type" binding:"required"`
	CompanyName   string  `json:"company_name" binding:"required"`
	Address       string  `json:"address" binding:"required"`
	AddressDetail *string `json:"address_detail"`
}

type EmployerProfileResponse struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	BusinessType  string  `json:"business_type"`
	CompanyName   string  `json:"company_name"`
	Address       string  `json:"address"`
	AddressDetail *string `json:"address_detail"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type StoreCreateRequest struct {
	UserID          string  `json:"user_id" binding:"required"`
	IsMain          bool    `json:"is_main"`
	StoreName       string  `json:"store_name" binding:"required"`
	Address         string  `json:"address" binding:"required"`
	AddressDetail   *string `json:"address_detail"`
	Phone           string  `json:"phone"`
	Industry        string  `json:"industry"`
	BusinessLicense *string `json:"business_license"`
	ManagementRole  string  `json:"management_role"`
	StoreType       string  `json:"store_type"`
}

type StoreResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	IsMain          bool    `json:"is_main"`
	StoreName       string  `json:"store_name"`
	Address         string  `json:"address"`
	AddressDetail   *string `json:"address_detail"`
	Phone           string  `json:"phone"`
	Industry        string  `json:"industry"`
	BusinessLicense *string `json:"business_license"`
	ManagementRole  string  `json:"management_role"`
	StoreType       string  `json:"store_type"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}
