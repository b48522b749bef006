package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// JobSeekerService manages job seeker onboarding profiles and the combined
// /profile/me view.
type JobSeekerService struct {
	DB *gorm.DB
}

func NewJobSeekerService(db *gorm.DB) *JobSeekerService {
	return &JobSeekerService{DB: db}
}

// UpsertProfile creates or replaces a seeker's onboarding profile.
func (s *JobSeekerService) UpsertProfile(req *dtos.JobSeekerProfileRequest) (*dtos.JobSeekerProfileResponse, error) {
	dates, daysOfWeek := "[]", "[]"
	var startTime, endTime *string
	if req.WorkSchedule != nil {
		dates = marshalStrings(req.WorkSchedule.AvailableDates)
		daysOfWeek = marshalStrings(req.WorkSchedule.DaysOfWeek)
		startTime = req.WorkSchedule.StartTime
		endTime = req.WorkSchedule.EndTime
	}

	sections := []string{}
	var career, license, skills, introduction *string
	if req.Experience != nil {
		sections = req.Experience.Sections
		career = optional(req.Experience.Data, "career")
		license = optional(req.Experience.Data, "license")
		skills = optional(req.Experience.Data, "skills")
		introduction = optional(req.Experience.Data, "introduction")
	}

	var profile models.JobSeekerProfile
	exists := true
	err := s.DB.Where("user_id = ?", req.UserID).First(&profile).Error
	switch err {
	case nil:
	case gorm.ErrRecordNotFound:
		exists = false
		profile = models.JobSeekerProfile{
			ID:     newID("profile"),
			UserID: req.UserID,
		}
	default:
		return nil, fmt.Errorf("get job seeker profile: %w", err)
	}

	profile.BasicInfoFileName = req.BasicInfoFileName
	profile.PreferredRegions = marshalStrings(req.PreferredRegions)
	profile.PreferredJobs = marshalStrings(req.PreferredJobs)
	profile.WorkAvailableDates = dates
	profile.WorkStartTime = startTime
	profile.WorkEndTime = endTime
	profile.WorkDaysOfWeek = daysOfWeek
	profile.ExperienceSections = marshalStrings(sections)
	profile.ExperienceCareer = career
	profile.ExperienceLicense = license
	profile.ExperienceSkills = skills
	profile.ExperienceIntroduction = introduction
	profile.VisaType = req.VisaType
	profile.UpdatedAt = time.Now().UTC()

	if exists {
		err = s.DB.Save(&profile).Error
	} else {
		err = s.DB.Create(&profile).Error
	}
	if err != nil {
		return nil, fmt.Errorf("save job seeker profile: %w", err)
	}

	return profileResponse(&profile), nil
}

// GetProfile returns the onboarding profile for an account.
func (s *JobSeekerService) GetProfile(userID string) (*dtos.JobSeekerProfileResponse, error) {
	var profile models.JobSeekerProfile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job seeker profile for %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("get job seeker profile: %w", err)
	}
	return profileResponse(&profile), nil
}

// ListProfiles returns the employer-facing applicant pool, optionally
// filtered by visa type.
func (s *JobSeekerService) ListProfiles(limit, offset int, visaType string) ([]dtos.JobSeekerListItem, error) {
	if limit <= 0 {
		limit = 50
	}

	var profiles []models.JobSeekerProfile
	if err := s.DB.Offset(offset).Limit(limit).Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("list job seeker profiles: %w", err)
	}

	items := make([]dtos.JobSeekerListItem, 0, len(profiles))
	for _, profile := range profiles {
		if visaType != "" && (profile.VisaType == nil || *profile.VisaType != visaType) {
			continue
		}

		item := dtos.JobSeekerListItem{
			ID:                     profile.ID,
			UserID:                 profile.UserID,
			Name:                   "Unknown",
			Nationality:            "Unknown",
			VisaType:               profile.VisaType,
			PreferredRegions:       parseStrings(profile.PreferredRegions),
			PreferredJobs:          parseStrings(profile.PreferredJobs),
			WorkAvailableDates:     parseStrings(profile.WorkAvailableDates),
			WorkStartTime:          profile.WorkStartTime,
			WorkEndTime:            profile.WorkEndTime,
			WorkDaysOfWeek:         parseStrings(profile.WorkDaysOfWeek),
			ExperienceSkills:       profile.ExperienceSkills,
			ExperienceIntroduction: profile.ExperienceIntroduction,
			CreatedAt:              profile.CreatedAt.UTC().Format(time.RFC3339),
		}

		var user models.SignupUser
		if err := s.DB.First(&user, "id = ?", profile.UserID).Error; err == nil {
			item.Name = user.Name
			if user.NationalityCode != nil {
				item.Nationality = *user.NationalityCode
			}
			if user.Birthdate != nil {
				birthdate := user.Birthdate.Format("2006-01-02")
				item.Birthdate = &birthdate
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// GetCombinedProfile assembles the /profile/me view from the signup user,
// the legacy jobseeker row and the onboarding profile. Missing rows are
// replaced with in-memory placeholders; only the account itself must exist.
func (s *JobSeekerService) GetCombinedProfile(userID string) (*dtos.ProfileData, error) {
	user, seeker, profile, _, _, err := s.loadCombined(userID)
	if err != nil {
		return nil, err
	}
	return combinedProfile(user, seeker, profile), nil
}

// UpdateCombinedProfile writes the /profile/me payload back across the
// three underlying tables, creating the jobseeker and profile rows when
// they do not exist yet.
func (s *JobSeekerService) UpdateCombinedProfile(userID string, update *dtos.ProfileData) (*dtos.ProfileData, error) {
	user, seeker, profile, seekerExists, profileExists, err := s.loadCombined(userID)
	if err != nil {
		return nil, err
	}

	user.Name = update.Name
	user.Email = update.Email
	user.Phone = update.Phone
	if update.NationalityCode != nil && *update.NationalityCode != "" {
		// Unknown codes are registered on the fly so the reference holds.
		var nationality models.Nationality
		if err := s.DB.First(&nationality, "code = ?", *update.NationalityCode).Error; err == gorm.ErrRecordNotFound {
			nationality = models.Nationality{Code: *update.NationalityCode, Name: *update.NationalityCode}
			if err := s.DB.Create(&nationality).Error; err != nil {
				return nil, fmt.Errorf("create nationality: %w", err)
			}
		}
		user.NationalityCode = update.NationalityCode
	} else {
		user.NationalityCode = nil
	}
	if update.Birthdate != nil {
		if birthdate, err := time.Parse("2006-01-02", *update.Birthdate); err == nil {
			user.Birthdate = &birthdate
		}
	}

	seeker.Name = update.Name
	seeker.VisaType = update.VisaType
	seeker.LanguageLevel = update.LanguageLevel
	seeker.Location = update.Location

	profile.VisaType = &update.VisaType
	profile.ExperienceIntroduction = update.Bio
	skills := marshalStrings(update.Skills)
	profile.ExperienceSkills = &skills
	profile.UpdatedAt = time.Now().UTC()

	if err := s.DB.Save(user).Error; err != nil {
		return nil, fmt.Errorf("save signup user: %w", err)
	}
	if err := saveOrCreate(s.DB, seeker, seekerExists); err != nil {
		return nil, fmt.Errorf("save jobseeker: %w", err)
	}
	if err := saveOrCreate(s.DB, profile, profileExists); err != nil {
		return nil, fmt.Errorf("save job seeker profile: %w", err)
	}

	return combinedProfile(user, seeker, profile), nil
}

func saveOrCreate(db *gorm.DB, value any, exists bool) error {
	if exists {
		return db.Save(value).Error
	}
	return db.Create(value).Error
}

func (s *JobSeekerService) loadCombined(userID string) (*models.SignupUser, *models.JobSeeker, *models.JobSeekerProfile, bool, bool, error) {
	var user models.SignupUser
	if err := s.DB.First(&user, "id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil, nil, false, false, fmt.Errorf("signup user %s: %w", userID, ErrNotFound)
		}
		return nil, nil, nil, false, false, fmt.Errorf("get signup user: %w", err)
	}

	seekerExists := true
	seeker := models.JobSeeker{}
	if err := s.DB.First(&seeker, "id = ?", userID).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, nil, nil, false, false, fmt.Errorf("get jobseeker: %w", err)
		}
		seekerExists = false
		seeker = models.JobSeeker{ID: userID, Name: user.Name, Experience: "[]", Preferences: "{}"}
	}

	profileExists := true
	profile := models.JobSeekerProfile{}
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, nil, nil, false, false, fmt.Errorf("get job seeker profile: %w", err)
		}
		profileExists = false
		profile = models.JobSeekerProfile{ID: "profile-" + userID, UserID: userID}
	}

	return &user, &seeker, &profile, seekerExists, profileExists, nil
}

func combinedProfile(user *models.SignupUser, seeker *models.JobSeeker, profile *models.JobSeekerProfile) *dtos.ProfileData {
	visaType := seeker.VisaType
	if profile.VisaType != nil && *profile.VisaType != "" {
		visaType = *profile.VisaType
	}

	var birthdate *string
	if user.Birthdate != nil {
		b := user.Birthdate.Format("2006-01-02")
		birthdate = &b
	}

	return &dtos.ProfileData{
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		NationalityCode: user.NationalityCode,
		Birthdate:       birthdate,
		VisaType:        visaType,
		LanguageLevel:   seeker.LanguageLevel,
		Location:        seeker.Location,
		Skills:          parseSkills(profile.ExperienceSkills),
		Bio:             profile.ExperienceIntroduction,
	}
}

func profileResponse(profile *models.JobSeekerProfile) *dtos.JobSeekerProfileResponse {
	return &dtos.JobSeekerProfileResponse{
		ID:                     profile.ID,
		UserID:                 profile.UserID,
		BasicInfoFileName:      profile.BasicInfoFileName,
		VisaType:               profile.VisaType,
		PreferredRegions:       parseStrings(profile.PreferredRegions),
		PreferredJobs:          parseStrings(profile.PreferredJobs),
		WorkAvailableDates:     parseStrings(profile.WorkAvailableDates),
		WorkStartTime:          profile.WorkStartTime,
		WorkEndTime:            profile.WorkEndTime,
		WorkDaysOfWeek:         parseStrings(profile.WorkDaysOfWeek),
		ExperienceSections:     parseStrings(profile.ExperienceSections),
		ExperienceCareer:       profile.ExperienceCareer,
		ExperienceLicense:      profile.ExperienceLicense,
		ExperienceSkills:       profile.ExperienceSkills,
		ExperienceIntroduction: profile.ExperienceIntroduction,
		CreatedAt:              profile.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:              profile.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// parseStrings deserializes a JSON string-list column; malformed data
// degrades to an empty list.
func parseStrings(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return []string{}
	}
	return values
}

// parseSkills accepts either a JSON array or a comma-separated string.
func parseSkills(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(*raw), &values); err == nil {
		return values
	}
	values = []string{}
	for _, part := range strings.Split(*raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}

func optional(data map[string]string, key string) *string {
	if value, ok := data[key]; ok && value != "" {
		return &value
	}
	return nil
}
