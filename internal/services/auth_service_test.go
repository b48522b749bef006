package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/auth"
	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

func newAuthService(db *gorm.DB) *AuthService {
	return NewAuthService(db, auth.NewTokenService("test-secret"))
}

func acceptedTerms() dtos.Terms {
	return dtos.Terms{TosRequired: true, PrivacyRequired: true}
}

func TestSignupRequiresTerms(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	_, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Password: "pw",
		Terms: dtos.Terms{TosRequired: true, PrivacyRequired: false},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSignupJobSeekerValidatesNationality(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	require.NoError(t, db.Create(&models.Nationality{Code: "VN", Name: "베트남"}).Error)

	_, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Password: "pw", Terms: acceptedTerms(),
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Password: "pw",
		NationalityCode: "XX", Terms: acceptedTerms(),
	})
	assert.ErrorIs(t, err, ErrValidation)
	// The rejection names the known codes.
	assert.Contains(t, err.Error(), "VN")

	resp, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Phone: "010-1234-5678", Password: "pw",
		NationalityCode: "VN", Birthdate: "1995-04-02", Terms: acceptedTerms(),
	})
	require.NoError(t, err)
	assert.Equal(t, "job_seeker", resp.Role)

	var user models.SignupUser
	require.NoError(t, db.First(&user, "id = ?", resp.ID).Error)
	// Phone is stored without hyphens; the password is never stored raw.
	require.NotNil(t, user.Phone)
	assert.Equal(t, "01012345678", *user.Phone)
	require.NotNil(t, user.Password)
	assert.NotEqual(t, "pw", *user.Password)
}

func TestSignupEmployerGetsDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	email := "boss@example.com"
	resp, err := svc.Signup(&dtos.SignupRequest{
		Role: "employer", Name: "Boss", Email: &email, Password: "pw", Terms: acceptedTerms(),
	})
	require.NoError(t, err)

	var user models.SignupUser
	require.NoError(t, db.First(&user, "id = ?", resp.ID).Error)
	require.NotNil(t, user.NationalityCode)
	assert.Equal(t, "KR", *user.NationalityCode)
	require.NotNil(t, user.Gender)
	assert.Equal(t, "male", *user.Gender)
	assert.NotNil(t, user.Birthdate)
}

func TestSignupEmployerFlowCreatesProfileAndMainStore(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	email := "boss@example.com"
	resp, err := svc.SignupEmployer(&dtos.EmployerSignupRequest{
		Name: "Boss", Email: &email, Password: "pw",
		BusinessType: "business", CompanyName: "Seoul Mart", Address: "서울시 마포구",
	})
	require.NoError(t, err)
	assert.Equal(t, "Seoul Mart", resp.CompanyName)

	var profile models.EmployerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", resp.ID).Error)

	var store models.Store
	require.NoError(t, db.First(&store, "user_id = ?", resp.ID).Error)
	assert.True(t, store.IsMain)
	assert.Equal(t, "Seoul Mart", store.StoreName)
	assert.Equal(t, "기타", store.Industry)
	assert.Equal(t, "본사 관리자", store.ManagementRole)
	assert.Equal(t, "직영점", store.StoreType)
}

func TestSignupEmployerWithoutCompanySkipsStore(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)

	email := "boss@example.com"
	resp, err := svc.SignupEmployer(&dtos.EmployerSignupRequest{
		Name: "Boss", Email: &email, Password: "pw", BusinessType: "individual",
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Store{}).Where("user_id = ?", resp.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSigninByPhoneAndEmail(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	require.NoError(t, db.Create(&models.Nationality{Code: "VN", Name: "베트남"}).Error)

	seeker, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Phone: "010-1234-5678", Password: "pw",
		NationalityCode: "VN", Terms: acceptedTerms(),
	})
	require.NoError(t, err)

	// Hyphenated identifier matches the normalized stored phone.
	resp, err := svc.Signin(&dtos.SigninRequest{Identifier: "010-1234-5678", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, seeker.ID, resp.UserID)
	assert.NotEmpty(t, resp.Token)

	email := "boss@example.com"
	boss, err := svc.SignupEmployer(&dtos.EmployerSignupRequest{Name: "Boss", Email: &email, Password: "secret"})
	require.NoError(t, err)

	// The requested role is advisory; the stored role wins.
	resp, err = svc.Signin(&dtos.SigninRequest{Identifier: "boss@example.com", Password: "secret", Role: "job_seeker"})
	require.NoError(t, err)
	assert.Equal(t, boss.ID, resp.UserID)
	assert.Equal(t, "employer", resp.Role)
}

func TestSigninRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	require.NoError(t, db.Create(&models.Nationality{Code: "VN", Name: "베트남"}).Error)

	_, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Phone: "01012345678", Password: "pw",
		NationalityCode: "VN", Terms: acceptedTerms(),
	})
	require.NoError(t, err)

	_, err = svc.Signin(&dtos.SigninRequest{Identifier: "01012345678", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Signin(&dtos.SigninRequest{Identifier: "nobody@example.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestGetSignupUserJoinsNationalityName(t *testing.T) {
	db := newTestDB(t)
	svc := newAuthService(db)
	require.NoError(t, db.Create(&models.Nationality{Code: "VN", Name: "베트남"}).Error)

	created, err := svc.Signup(&dtos.SignupRequest{
		Role: "job_seeker", Name: "Nguyen", Phone: "01012345678", Password: "pw",
		NationalityCode: "VN", Birthdate: "1995-04-02", Terms: acceptedTerms(),
	})
	require.NoError(t, err)

	resp, err := svc.GetSignupUser(created.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.NationalityName)
	assert.Equal(t, "베트남", *resp.NationalityName)
	require.NotNil(t, resp.Birthdate)
	assert.Equal(t, "1995-04-02", *resp.Birthdate)

	_, err = svc.GetSignupUser("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
