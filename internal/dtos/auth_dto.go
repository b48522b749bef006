package dtos

// Terms mirrors the consent checkboxes in the signup wizard.
type Terms struct {
	TosRequired       bool `json:"tos_required"`
	PrivacyRequired   bool `json:"privacy_required"`
	SmsOptional       bool `json:"sms_optional"`
	MarketingOptional bool `json:"marketing_optional"`
}

// SignupRequest is the wizard-flow signup payload for both roles.
type SignupRequest struct {
	Role            string  `json:"role" binding:"required"`
	Name            string  `json:"name" binding:"required"`
	Phone           string  `json:"phone"`
	Email           *string `json:"email"`
	Password        string  `json:"password" binding:"required"`
	Birthdate       string  `json:"birthdate"` // YYYY-MM-DD
	Gender          *string `json:"gender"`
	NationalityCode string  `json:"nationality_code"`
	Terms           Terms   `json:"terms"`
}

type SignupResponse struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// EmployerSignupRequest creates the account, business profile and main
// store in one step.
type EmployerSignupRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         *string `json:"email" binding:"required"`
	Password      string  `json:"password" binding:"required"`
	BusinessType  string  `json:"business_type"`
	CompanyName   string  `json:"company_name"`
	Address       string  `json:"address"`
	AddressDetail *string `json:"address_detail"`
}

type EmployerSignupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CompanyName string `json:"company_name"`
	Message     string `json:"message"`
}

// SigninRequest authenticates by phone or email plus password. Role is
// advisory: a mismatch logs in under the stored role.
type SigninRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role"`
}

type SigninResponse struct {
	UserID string `json:"user_id"`
	Token  string `json:"token"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

type SignupUserResponse struct {
	ID              string  `json:"id"`
	Role            string  `json:"role"`
	Name            string  `json:"name"`
	Phone           *string `json:"phone"`
	Birthdate       *string `json:"birthdate"`
	Gender          *string `json:"gender"`
	NationalityCode *string `json:"nationality_code"`
	NationalityName *string `json:"nationality_name"`
	CreatedAt       string  `json:"created_at"`
}
