package dtos

// ApplicationCreateRequest applies a seeker to a job.
type ApplicationCreateRequest struct {
	SeekerID string `json:"seekerId" binding:"required"`
	JobID    string `json:"jobId" binding:"required"`
}

// ApplicationUpdateRequest changes an application's status.
type ApplicationUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplicationJobSummary is the job projection attached to an application.
// Listings filtered by seeker get the full shape; listings filtered by
// employer get only id/title/category.
type ApplicationJobSummary struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Category   string `json:"category"`
	ShopName   string `json:"shopName,omitempty"`
	Wage       int    `json:"wage,omitempty"`
	Location   string `json:"location,omitempty"`
	WorkDays   string `json:"workDays,omitempty"`
	WorkHours  string `json:"workHours,omitempty"`
	EmployerID string `json:"employerId,omitempty"`
}

// ApplicationSeekerSummary is the job-seeker projection attached to an
// application when an employer lists applicants.
type ApplicationSeekerSummary struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Nationality   string         `json:"nationality"`
	Phone         string         `json:"phone"`
	LanguageLevel string         `json:"languageLevel"`
	VisaType      string         `json:"visaType"`
	Experience    []any          `json:"experience"`
	Preferences   map[string]any `json:"preferences"`
}

// ApplicationView is an application record enriched per the filter used.
type ApplicationView struct {
	ApplicationID string  `json:"applicationId"`
	SeekerID      string  `json:"seekerId"`
	JobID         string  `json:"jobId"`
	Status        string  `json:"status"`
	AppliedAt     string  `json:"appliedAt"`
	UpdatedAt     string  `json:"updatedAt"`
	HiredAt       *string `json:"hiredAt"`

	Job       *ApplicationJobSummary    `json:"job,omitempty"`
	JobSeeker *ApplicationSeekerSummary `json:"jobseeker,omitempty"`
}
