package dtos

// WorkSchedule is the availability block of the onboarding wizard.
type WorkSchedule struct {
	AvailableDates []string `json:"available_dates"`
	StartTime      *string  `json:"start_time"`
	EndTime        *string  `json:"end_time"`
	DaysOfWeek     []string `json:"days_of_week"`
}

// ExperienceInput carries the sections the user filled in and their values.
type ExperienceInput struct {
	Sections []string          `json:"sections"`
	Data     map[string]string `json:"data"`
}

type JobSeekerProfileRequest struct {
	UserID            string           `json:"user_id" binding:"required"`
	BasicInfoFileName *string          `json:"basic_info_file_name"`
	PreferredRegions  []string         `json:"preferred_regions"`
	PreferredJobs     []string         `json:"preferred_jobs"`
	WorkSchedule      *WorkSchedule    `json:"work_schedule"`
	Experience        *ExperienceInput `json:"experience"`
	VisaType          *string          `json:"visa_type"`
}

type JobSeekerProfileResponse struct {
	ID                     string   `json:"id"`
	UserID                 string   `json:"user_id"`
	BasicInfoFileName      *string  `json:"basic_info_file_name"`
	VisaType               *string  `json:"visa_type"`
	PreferredRegions       []string `json:"preferred_regions"`
	PreferredJobs          []string `json:"preferred_jobs"`
	WorkAvailableDates     []string `json:"work_available_dates"`
	WorkStartTime          *string  `json:"work_start_time"`
	WorkEndTime            *string  `json:"work_end_time"`
	WorkDaysOfWeek         []string `json:"work_days_of_week"`
	ExperienceSections     []string `json:"experience_sections"`
	ExperienceCareer       *string  `json:"experience_career"`
	ExperienceLicense      *string  `json:"experience_license"`
	ExperienceSkills       *string  `json:"experience_skills"`
	ExperienceIntroduction *string  `json:"experience_introduction"`
	CreatedAt              string   `json:"created_at"`
	UpdatedAt              string   `json:"updated_at"`
}

// JobSeekerListItem is the employer-facing row in the applicant pool list.
type JobSeekerListItem struct {
	ID                     string   `json:"id"`
	UserID                 string   `json:"user_id"`
	Name                   string   `json:"name"`
	Nationality            string   `json:"nationality"`
	Birthdate              *string  `json:"birthdate"`
	VisaType               *string  `json:"visa_type"`
	PreferredRegions       []string `json:"preferred_regions"`
	PreferredJobs          []string `json:"preferred_jobs"`
	WorkAvailableDates     []string `json:"work_available_dates"`
	WorkStartTime          *string  `json:"work_start_time"`
	WorkEndTime            *string  `json:"work_end_time"`
	WorkDaysOfWeek         []string `json:"work_days_of_week"`
	ExperienceSkills       *string  `json:"experience_skills"`
	ExperienceIntroduction *string  `json:"experience_introduction"`
	CreatedAt              string   `json:"created_at"`
}

// ProfileData is the combined profile read/written through /profile/me,
// assembled from the signup user, the legacy jobseeker row and the
// onboarding profile.
type ProfileData struct {
	Name            string   `json:"name"`
	Email           *string  `json:"email"`
	Phone           *string  `json:"phone"`
	NationalityCode *string  `json:"nationality_code"`
	Birthdate       *string  `json:"birthdate"`
	VisaType        string   `json:"visaType"`
	LanguageLevel   string   `json:"languageLevel"`
	Location        *string  `json:"location"`
	Skills          []string `json:"skills"`
	Bio             *string  `json:"bio"`
}
