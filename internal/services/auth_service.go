package services

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/auth"
	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// AuthService handles signup and signin for both roles.
type AuthService struct {
	DB     *gorm.DB
	Tokens *auth.TokenService
}

func NewAuthService(db *gorm.DB, tokens *auth.TokenService) *AuthService {
	return &AuthService{DB: db, Tokens: tokens}
}

// Signup registers an account from the wizard flow. Both required terms
// must be accepted. Job seekers need a valid nationality code; employers
// get defaults for the fields the employer wizard does not collect.
func (s *AuthService) Signup(req *dtos.SignupRequest) (*dtos.SignupResponse, error) {
	if !req.Terms.TosRequired || !req.Terms.PrivacyRequired {
		return nil, fmt.Errorf("required terms not accepted: %w", ErrValidation)
	}

	nationalityCode := req.NationalityCode
	if req.Role == "job_seeker" {
		if nationalityCode == "" {
			return nil, fmt.Errorf("job seeker signup needs a nationality code: %w", ErrValidation)
		}
		var nat models.Nationality
		if err := s.DB.First(&nat, "code = ?", nationalityCode).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("get nationality %s: %w", nationalityCode, err)
			}
			codes, cerr := s.availableNationalityCodes()
			if cerr != nil {
				return nil, cerr
			}
			return nil, fmt.Errorf("unknown nationality code %s (available: %s): %w",
				nationalityCode, strings.Join(codes, ", "), ErrValidation)
		}
	} else if nationalityCode == "" {
		nationalityCode = "KR"
	}

	birthdate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Birthdate != "" {
		if parsed, err := time.Parse("2006-01-02", req.Birthdate); err == nil {
			birthdate = parsed
		}
	}
	gender := "male"
	if req.Gender != nil && *req.Gender != "" {
		gender = *req.Gender
	}

	phone := strings.ReplaceAll(req.Phone, "-", "")
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.SignupUser{
		ID:                     newID("signup"),
		Role:                   req.Role,
		Name:                   req.Name,
		Phone:                  &phone,
		Email:                  req.Email,
		Password:               &hashed,
		Birthdate:              &birthdate,
		Gender:                 &gender,
		NationalityCode:        &nationalityCode,
		TermsTosRequired:       req.Terms.TosRequired,
		TermsPrivacyRequired:   req.Terms.PrivacyRequired,
		TermsSmsOptional:       req.Terms.SmsOptional,
		TermsMarketingOptional: req.Terms.MarketingOptional,
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create signup user: %w", err)
	}

	return &dtos.SignupResponse{
		ID:      user.ID,
		Role:    user.Role,
		Name:    user.Name,
		Message: "회원가입이 완료되었습니다.",
	}, nil
}

// SignupEmployer creates the employer account, its business profile and,
// when the wizard collected company name and address, a main store in one
// flow. Terms are taken as accepted via the signup modal.
func (s *AuthService) SignupEmployer(req *dtos.EmployerSignupRequest) (*dtos.EmployerSignupResponse, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.SignupUser{
		ID:                   newID("employer"),
		Role:                 "employer",
		Name:                 req.Name,
		Email:                req.Email,
		Password:             &hashed,
		TermsTosRequired:     true,
		TermsPrivacyRequired: true,
	}

	profile := models.EmployerProfile{
		ID:            newID("profile"),
		UserID:        user.ID,
		BusinessType:  req.BusinessType,
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		AddressDetail: req.AddressDetail,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return fmt.Errorf("create signup user: %w", err)
		}
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("create employer profile: %w", err)
		}

		companyName := strings.TrimSpace(req.CompanyName)
		address := strings.TrimSpace(req.Address)
		if companyName == "" || address == "" {
			return nil
		}
		store := models.Store{
			ID:             newID("store"),
			UserID:         user.ID,
			IsMain:         true,
			StoreName:      companyName,
			Address:        address,
			AddressDetail:  trimmedOrNil(req.AddressDetail),
			Industry:       "기타",
			ManagementRole: "본사 관리자",
			StoreType:      "직영점",
		}
		if err := tx.Create(&store).Error; err != nil {
			return fmt.Errorf("create main store: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dtos.EmployerSignupResponse{
		ID:          user.ID,
		Name:        user.Name,
		CompanyName: profile.CompanyName,
		Message:     "고용주 회원가입이 완료되었습니다.",
	}, nil
}

// Signin authenticates by phone or email plus password. The requested role
// is advisory only: a mismatch signs the account in under its stored role.
func (s *AuthService) Signin(req *dtos.SigninRequest) (*dtos.SigninResponse, error) {
	identifier := strings.ReplaceAll(req.Identifier, "-", "")

	var user models.SignupUser
	err := s.DB.Where("phone = ?", identifier).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		err = s.DB.Where("email = ?", identifier).First(&user).Error
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("no account for identifier: %w", ErrUnauthorized)
		}
		return nil, fmt.Errorf("look up account: %w", err)
	}

	if user.Password == nil || !auth.CheckPassword(req.Password, *user.Password) {
		return nil, fmt.Errorf("password mismatch: %w", ErrUnauthorized)
	}

	token, err := s.Tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &dtos.SigninResponse{
		UserID: user.ID,
		Token:  token,
		Role:   user.Role,
		Name:   user.Name,
	}, nil
}

// GetSignupUser returns the signup record with the nationality name joined
// in when the account carries a known code.
func (s *AuthService) GetSignupUser(userID string) (*dtos.SignupUserResponse, error) {
	var user models.SignupUser
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("signup user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("get signup user: %w", err)
	}

	var nationalityName *string
	if user.NationalityCode != nil && *user.NationalityCode != "" {
		var nat models.Nationality
		err := s.DB.First(&nat, "code = ?", *user.NationalityCode).Error
		switch err {
		case nil:
			nationalityName = &nat.Name
		case gorm.ErrRecordNotFound:
		default:
			return nil, fmt.Errorf("get nationality %s: %w", *user.NationalityCode, err)
		}
	}

	var birthdate *string
	if user.Birthdate != nil {
		iso := user.Birthdate.Format("2006-01-02")
		birthdate = &iso
	}

	return &dtos.SignupUserResponse{
		ID:              user.ID,
		Role:            user.Role,
		Name:            user.Name,
		Phone:           user.Phone,
		Birthdate:       birthdate,
		Gender:          user.Gender,
		NationalityCode: user.NationalityCode,
		NationalityName: nationalityName,
		CreatedAt:       user.CreatedAt.UTC().Format(time.RFC3339),
	}, nil
}

func (s *AuthService) availableNationalityCodes() ([]string, error) {
	var nats []models.Nationality
	if err := s.DB.Limit(10).Find(&nats).Error; err != nil {
		return nil, fmt.Errorf("list nationalities: %w", err)
	}
	codes := make([]string, 0, len(nats))
	for _, n := range nats {
		codes = append(codes, n.Code)
	}
	return codes, nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
