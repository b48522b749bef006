package models

import "time"

// SignupUser is a signed-up account, either a job seeker or an employer.
// Everything else references accounts by this id.
type SignupUser struct {
	ID              string     `gorm:"primaryKey" json:"id"`
	Role            string     `gorm:"not null" json:"role"` // job_seeker | employer
	Name            string     `json:"name"`
	Phone           *string    `gorm:"index" json:"phone,omitempty"`
	Email           *string    `gorm:"index" json:"email,omitempty"`
	Password        *string    `json:"-"` // bcrypt hash
	Birthdate       *time.Time `json:"birthdate,omitempty"`
	Gender          *string    `json:"gender,omitempty"`
	NationalityCode *string    `json:"nationality_code,omitempty"`

	TermsTosRequired       bool `json:"terms_tos_required"`
	TermsPrivacyRequired   bool `json:"terms_privacy_required"`
	TermsSmsOptional       bool `json:"terms_sms_optional"`
	TermsMarketingOptional bool `json:"terms_marketing_optional"`

	CreatedAt time.Time `json:"created_at"`
}

func (SignupUser) TableName() string { return "signup_users" }

type Nationality struct {
	Code      string `gorm:"primaryKey" json:"code"`
	Name      string `json:"name"`
	PhoneCode string `json:"phone_code"`
}

func (Nationality) TableName() string { return "nationalities" }

// JobSeeker is the legacy jobseeker row applications reference by foreign
// key. Its id equals the signup user's id. Experience and Preferences are
// JSON-serialized strings.
type JobSeeker struct {
	ID            string  `gorm:"primaryKey" json:"id"`
	Name          string  `json:"name"`
	Nationality   string  `json:"nationality"`
	Phone         string  `json:"phone"`
	LanguageLevel string  `json:"languageLevel"`
	VisaType      string  `json:"visaType"`
	Availability  string  `json:"availability"`
	Location      *string `json:"location,omitempty"`
	Experience    string  `gorm:"default:'[]'" json:"experience"`
	Preferences   string  `gorm:"default:'{}'" json:"preferences"`
}

func (JobSeeker) TableName() string { return "jobseekers" }

// Employer is the legacy employer row. BusinessNo sometimes equals an
// EmployerProfile id: that link is the compatibility bridge between old
// postings and the newer business-profile model.
type Employer struct {
	ID               string   `gorm:"primaryKey" json:"id"`
	BusinessNo       string   `gorm:"index" json:"businessNo"`
	ShopName         string   `json:"shopName"`
	Industry         string   `json:"industry"`
	Address          string   `json:"address"`
	Location         *string  `json:"location,omitempty"`
	OpenHours        string   `json:"openHours"`
	Contact          string   `json:"contact"`
	Media            string   `gorm:"default:'[]'" json:"media"`
	MinLanguageLevel string   `json:"minLanguageLevel"`
	NeedVisa         string   `gorm:"default:'[]'" json:"needVisa"`
	BaseWage         int      `json:"baseWage"`
	Schedule         string   `json:"schedule"`
	Rating           *float64 `json:"rating,omitempty"`
}

func (Employer) TableName() string { return "employers" }

// Job is a posting. EmployerID may point at a legacy Employer id or directly
// at an account id (postings created before the store model existed).
// StoreID is nil for legacy postings not yet attached to a store.
// CreatedAt/PostedAt are ISO-8601 strings for legacy-schema compatibility.
type Job struct {
	ID                string  `gorm:"primaryKey" json:"id"`
	EmployerID        string  `gorm:"index" json:"employerId"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Wage              int     `json:"wage"`
	WageType          string  `gorm:"default:'hourly'" json:"wage_type"`
	WorkDays          string  `json:"workDays"`
	WorkHours         string  `json:"workHours"`
	Deadline          string  `json:"deadline"`
	Positions         int     `json:"positions"`
	RequiredLanguage  string  `json:"requiredLanguage"`
	RequiredVisa      string  `gorm:"default:'[]'" json:"-"` // JSON array string
	Benefits          *string `json:"benefits,omitempty"`
	EmployerMessage   *string `json:"employerMessage,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	Status            string  `gorm:"default:'active'" json:"status"` // active | paused | closed
	Views             int     `json:"views"`
	Applications      int     `json:"applications"`
	PostedAt          *string `json:"postedAt,omitempty"`
	Location          *string `json:"location,omitempty"`
	ShopName          *string `json:"shop_name,omitempty"`
	ShopAddress       *string `json:"shop_address,omitempty"`
	ShopAddressDetail *string `json:"shop_address_detail,omitempty"`
	ShopPhone         *string `json:"shop_phone,omitempty"`
	StoreID           *string `gorm:"index" json:"store_id,omitempty"`
}

func (Job) TableName() string { return "jobs" }

// Application links a seeker to a job. The composite unique index enforces
// the one-application-per-(seeker, job) invariant at the store level; the
// service layer pre-checks it too for a friendlier error message.
type Application struct {
	ApplicationID string  `gorm:"primaryKey" json:"applicationId"`
	SeekerID      string  `gorm:"uniqueIndex:idx_seeker_job" json:"seekerId"`
	JobID         string  `gorm:"index;uniqueIndex:idx_seeker_job" json:"jobId"`
	Status        string  `gorm:"default:'applied'" json:"status"`
	AppliedAt     string  `json:"appliedAt"`
	UpdatedAt     string  `json:"updatedAt"`
	HiredAt       *string `json:"hiredAt"`
}

func (Application) TableName() string { return "applications" }

// EmployerProfile is the business profile created at employer onboarding.
type EmployerProfile struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index" json:"user_id"`
	BusinessType    string    `json:"business_type"` // business | individual
	CompanyName     string    `json:"company_name"`
	Address         string    `json:"address"`
	AddressDetail   *string   `json:"address_detail,omitempty"`
	BusinessLicense *string   `json:"business_license,omitempty"`
	IsVerified      bool      `json:"is_verified"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (EmployerProfile) TableName() string { return "employer_profiles" }

// Store is a shop owned by an employer account. At most one store per
// account carries IsMain; setting a new main unsets the others.
type Store struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	UserID          string    `gorm:"index" json:"user_id"`
	IsMain          bool      `json:"is_main"`
	StoreName       string    `json:"store_name"`
	Address         string    `json:"address"`
	AddressDetail   *string   `json:"address_detail,omitempty"`
	Phone           string    `json:"phone"`
	Industry        string    `json:"industry"`
	BusinessLicense *string   `json:"business_license,omitempty"`
	ManagementRole  string    `json:"management_role"`
	StoreType       string    `json:"store_type"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Store) TableName() string { return "stores" }

// JobSeekerProfile holds onboarding data. List-valued fields are
// JSON-serialized strings.
type JobSeekerProfile struct {
	ID                     string    `gorm:"primaryKey" json:"id"`
	UserID                 string    `gorm:"index" json:"user_id"`
	BasicInfoFileName      *string   `json:"basic_info_file_name,omitempty"`
	PreferredRegions       string    `gorm:"default:'[]'" json:"-"`
	PreferredJobs          string    `gorm:"default:'[]'" json:"-"`
	WorkAvailableDates     string    `gorm:"default:'[]'" json:"-"`
	WorkStartTime          *string   `json:"work_start_time,omitempty"`
	WorkEndTime            *string   `json:"work_end_time,omitempty"`
	WorkDaysOfWeek         string    `gorm:"default:'[]'" json:"-"`
	ExperienceSections     string    `gorm:"default:'[]'" json:"-"`
	ExperienceCareer       *string   `json:"experience_career,omitempty"`
	ExperienceLicense      *string   `json:"experience_license,omitempty"`
	ExperienceSkills       *string   `json:"experience_skills,omitempty"`
	ExperienceIntroduction *string   `json:"experience_introduction,omitempty"`
	VisaType               *string   `json:"visa_type,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func (JobSeekerProfile) TableName() string { return "job_seeker_profiles" }

type LearningProgress struct {
	ID               string `gorm:"primaryKey" json:"id"`
	SeekerID         string `gorm:"index" json:"seekerId"`
	CurrentLevel     string `json:"currentLevel"`
	CompletedLessons int    `json:"completedLessons"`
	TotalLessons     int    `gorm:"default:100" json:"totalLessons"`
	ProgressPercent  int    `json:"progressPercent"`
}

func (LearningProgress) TableName() string { return "learning_progress" }

type Post struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (Post) TableName() string { return "posts" }
