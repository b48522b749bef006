package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

func TestUpsertJobSeekerProfileCreatesThenReplaces(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db)

	created, err := svc.UpsertProfile(&dtos.JobSeekerProfileRequest{
		UserID:           "signup-1",
		PreferredRegions: []string{"서울", "인천"},
		PreferredJobs:    []string{"cafe"},
		WorkSchedule: &dtos.WorkSchedule{
			AvailableDates: []string{"2025-09-01"},
			StartTime:      strPtr("09:00"),
			EndTime:        strPtr("18:00"),
			DaysOfWeek:     []string{"mon", "tue"},
		},
		Experience: &dtos.ExperienceInput{
			Sections: []string{"career", "skills"},
			Data:     map[string]string{"career": "2 years cafe", "skills": "barista, pos"},
		},
		VisaType: strPtr("E-9"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"서울", "인천"}, created.PreferredRegions)
	assert.Equal(t, []string{"mon", "tue"}, created.WorkDaysOfWeek)
	require.NotNil(t, created.ExperienceCareer)
	assert.Equal(t, "2 years cafe", *created.ExperienceCareer)

	replaced, err := svc.UpsertProfile(&dtos.JobSeekerProfileRequest{
		UserID:           "signup-1",
		PreferredRegions: []string{"부산"},
		VisaType:         strPtr("H-2"),
	})
	require.NoError(t, err)

	// Replace, not merge: the second payload wins wholesale.
	assert.Equal(t, created.ID, replaced.ID)
	assert.Equal(t, []string{"부산"}, replaced.PreferredRegions)
	assert.Empty(t, replaced.WorkDaysOfWeek)
	assert.Nil(t, replaced.ExperienceCareer)

	var count int64
	require.NoError(t, db.Model(&models.JobSeekerProfile{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestListProfilesFiltersByVisaAndJoinsAccount(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db)

	code := "VN"
	require.NoError(t, db.Create(&models.SignupUser{ID: "signup-1", Role: "job_seeker", Name: "Nguyen", NationalityCode: &code}).Error)
	require.NoError(t, db.Create(&models.JobSeekerProfile{ID: "profile-1", UserID: "signup-1", VisaType: strPtr("E-9")}).Error)
	require.NoError(t, db.Create(&models.JobSeekerProfile{ID: "profile-2", UserID: "signup-2", VisaType: strPtr("F-4")}).Error)
	require.NoError(t, db.Create(&models.JobSeekerProfile{ID: "profile-3", UserID: "signup-3"}).Error)

	items, err := svc.ListProfiles(50, 0, "E-9")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "profile-1", items[0].ID)
	assert.Equal(t, "Nguyen", items[0].Name)
	assert.Equal(t, "VN", items[0].Nationality)

	// Accounts without a signup row fall back to the sentinel name.
	items, err = svc.ListProfiles(50, 0, "F-4")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Unknown", items[0].Name)
}

func TestGetCombinedProfileWithPlaceholders(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db)

	email := "nguyen@example.com"
	require.NoError(t, db.Create(&models.SignupUser{ID: "signup-1", Role: "job_seeker", Name: "Nguyen", Email: &email}).Error)

	data, err := svc.GetCombinedProfile("signup-1")
	require.NoError(t, err)

	assert.Equal(t, "Nguyen", data.Name)
	require.NotNil(t, data.Email)
	assert.Equal(t, email, *data.Email)
	assert.Empty(t, data.Skills)

	_, err = svc.GetCombinedProfile("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCombinedProfileCreatesMissingRows(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobSeekerService(db)

	require.NoError(t, db.Create(&models.SignupUser{ID: "signup-1", Role: "job_seeker", Name: "Old Name"}).Error)

	code := "MN"
	birthdate := "1999-12-31"
	data, err := svc.UpdateCombinedProfile("signup-1", &dtos.ProfileData{
		Name:            "New Name",
		NationalityCode: &code,
		Birthdate:       &birthdate,
		VisaType:        "H-2",
		LanguageLevel:   "Lv.3 중급",
		Skills:          []string{"barista", "kitchen"},
		Bio:             strPtr("Hard worker"),
	})
	require.NoError(t, err)

	assert.Equal(t, "New Name", data.Name)
	assert.Equal(t, "H-2", data.VisaType)
	assert.Equal(t, []string{"barista", "kitchen"}, data.Skills)

	// The legacy jobseeker and profile rows were created, not just echoed.
	var seeker models.JobSeeker
	require.NoError(t, db.First(&seeker, "id = ?", "signup-1").Error)
	assert.Equal(t, "New Name", seeker.Name)
	assert.Equal(t, "H-2", seeker.VisaType)

	var profile models.JobSeekerProfile
	require.NoError(t, db.First(&profile, "user_id = ?", "signup-1").Error)
	require.NotNil(t, profile.VisaType)
	assert.Equal(t, "H-2", *profile.VisaType)

	// An unknown nationality code is registered on the fly.
	var nationality models.Nationality
	require.NoError(t, db.First(&nationality, "code = ?", "MN").Error)
}

func TestParseSkillsAcceptsBothEncodings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parseSkills(strPtr(`["a","b"]`)))
	assert.Equal(t, []string{"a", "b"}, parseSkills(strPtr("a, b")))
	assert.Empty(t, parseSkills(nil))
	assert.Empty(t, parseSkills(strPtr("")))
}
