package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// Listing presets: a named filter + sort combination from the quick menu.
const (
	PresetHighWage = "high-wage"
	PresetPopular  = "popular"
	PresetTrusted  = "trusted"
)

// highWageThreshold is the minimum hourly wage (KRW) for the high-wage preset.
const highWageThreshold = 11000

// Posting statuses.
const (
	JobStatusActive = "active"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

// JobFilter narrows and orders the job listing. Substring filters are
// case-sensitive and applied in SQL, together with limit/offset; visa,
// trust and preset filters run in memory afterwards, so a page may come
// back shorter than the requested limit.
type JobFilter struct {
	Query         string // title substring
	Location      string
	Industry      string // matches category
	LanguageLevel string
	VisaType      string
	Sort          string // preset name, empty for default ordering
	StoreID       string
	UserID        string // owning account; resolved through the store path
	Limit         int
	Offset        int
}

// JobService implements the posting CRUD and the filter/sort pipeline.
type JobService struct {
	DB       *gorm.DB
	resolver *OwnershipResolver
}

func NewJobService(db *gorm.DB, resolver *OwnershipResolver) *JobService {
	return &JobService{DB: db, resolver: resolver}
}

// ListJobs returns a page of posting projections matching the filter.
func (s *JobService) ListJobs(f JobFilter) ([]dtos.JobView, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	q := s.DB.Model(&models.Job{}).Where("status = ?", JobStatusActive)
	if f.Query != "" {
		q = q.Where("title LIKE ?", "%"+f.Query+"%")
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.Industry != "" {
		q = q.Where("category LIKE ?", "%"+f.Industry+"%")
	}
	if f.LanguageLevel != "" {
		q = q.Where("required_language LIKE ?", "%"+f.LanguageLevel+"%")
	}

	switch {
	case f.StoreID != "":
		q = q.Where("store_id = ?", f.StoreID)
	case f.UserID != "":
		owned, err := s.resolver.ResolveOwnedJobs(f.UserID)
		if err != nil {
			return nil, err
		}
		if len(owned.StoreIDs) > 0 {
			q = q.Where("store_id IN ?", owned.StoreIDs)
		} else {
			// Accounts without stores see the unclaimed legacy postings.
			q = q.Where("store_id IS NULL")
		}
	}

	var jobs []models.Job
	if err := q.Offset(f.Offset).Limit(limit).Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	counts, err := s.applicationCounts()
	if err != nil {
		return nil, err
	}

	views := make([]dtos.JobView, 0, len(jobs))
	for _, job := range jobs {
		view, err := s.buildJobView(job, counts[job.ID])
		if err != nil {
			return nil, err
		}

		if f.VisaType != "" && !containsVisa(view.RequiredVisa, f.VisaType) {
			continue
		}
		switch f.Sort {
		case PresetHighWage:
			if job.Wage < highWageThreshold {
				continue
			}
		case PresetPopular:
			if view.ApplicationsCount <= 0 {
				continue
			}
		case PresetTrusted:
			if !view.IsTrusted {
				continue
			}
		}

		views = append(views, view)
	}

	switch f.Sort {
	case PresetHighWage:
		sort.SliceStable(views, func(i, j int) bool { return views[i].Wage > views[j].Wage })
	case PresetPopular:
		sort.SliceStable(views, func(i, j int) bool {
			return views[i].ApplicationsCount > views[j].ApplicationsCount
		})
	default:
		// Latest first, including the trusted preset.
		sort.SliceStable(views, func(i, j int) bool {
			return postingSortKey(views[i].Job) > postingSortKey(views[j].Job)
		})
	}

	return views, nil
}

// GetJob returns a single posting projection.
func (s *JobService) GetJob(jobID string) (*dtos.JobView, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}

	var count int64
	if err := s.DB.Model(&models.Application{}).
		Where("job_id = ?", job.ID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count applications for %s: %w", jobID, err)
	}

	view, err := s.buildJobView(job, count)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// CreateJob creates a posting under an employer business profile, lazily
// creating the legacy employer alias row the first time a profile posts.
func (s *JobService) CreateJob(req *dtos.JobCreateRequest) (*dtos.JobView, error) {
	var profile models.EmployerProfile
	if err := s.DB.First(&profile, "id = ?", req.EmployerProfileID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("employer profile %s: %w", req.EmployerProfileID, ErrNotFound)
		}
		return nil, fmt.Errorf("get employer profile: %w", err)
	}

	var user models.SignupUser
	if err := s.DB.First(&user, "id = ?", profile.UserID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("signup user %s: %w", profile.UserID, ErrNotFound)
		}
		return nil, fmt.Errorf("get signup user: %w", err)
	}

	employer, err := s.ensureLegacyEmployer(&profile, &user, req)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = JobStatusActive
	}

	now := nowISO()
	job := models.Job{
		ID:                newID("job"),
		EmployerID:        employer.ID,
		Title:             req.Title,
		Description:       req.Description,
		Category:          req.Category,
		Wage:              req.Wage,
		WorkDays:          req.WorkDays,
		WorkHours:         req.WorkHours,
		Deadline:          req.Deadline,
		Positions:         req.Positions,
		RequiredLanguage:  req.RequiredLanguage,
		RequiredVisa:      marshalStrings(req.RequiredVisa),
		Benefits:          req.Benefits,
		EmployerMessage:   req.EmployerMessage,
		CreatedAt:         now,
		PostedAt:          &now,
		Status:            status,
		Location:          deriveLocation(req, employer),
		ShopName:          req.ShopName,
		ShopAddress:       req.ShopAddress,
		ShopAddressDetail: req.ShopAddressDetail,
		ShopPhone:         req.ShopPhone,
		StoreID:           req.StoreID,
	}

	if err := s.DB.Create(&job).Error; err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	return &dtos.JobView{
		Job:          job,
		Employer:     employer,
		RequiredVisa: parseVisaList(job.RequiredVisa),
	}, nil
}

// UpdateJob applies a partial field update to a posting.
func (s *JobService) UpdateJob(jobID string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.Wage != nil {
		job.Wage = *req.Wage
	}
	if req.WorkDays != nil {
		job.WorkDays = *req.WorkDays
	}
	if req.WorkHours != nil {
		job.WorkHours = *req.WorkHours
	}
	if req.Deadline != nil {
		job.Deadline = *req.Deadline
	}
	if req.Positions != nil {
		job.Positions = *req.Positions
	}
	if req.RequiredLanguage != nil {
		job.RequiredLanguage = *req.RequiredLanguage
	}
	if req.RequiredVisa != nil {
		job.RequiredVisa = marshalStrings(*req.RequiredVisa)
	}
	if req.Benefits != nil {
		job.Benefits = req.Benefits
	}
	if req.EmployerMessage != nil {
		job.EmployerMessage = req.EmployerMessage
	}

	if err := s.DB.Save(&job).Error; err != nil {
		return nil, fmt.Errorf("update job %s: %w", jobID, err)
	}
	return &job, nil
}

// UpdateJobStatus moves a posting between active, paused and closed.
func (s *JobService) UpdateJobStatus(jobID, status string) error {
	switch status {
	case JobStatusActive, JobStatusPaused, JobStatusClosed:
	default:
		return fmt.Errorf("invalid status %q: %w", status, ErrValidation)
	}

	res := s.DB.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update job status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	return nil
}

// DeleteJob removes a posting.
func (s *JobService) DeleteJob(jobID string) error {
	res := s.DB.Delete(&models.Job{}, "id = ?", jobID)
	if res.Error != nil {
		return fmt.Errorf("delete job %s: %w", jobID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("job %s: %w", jobID, ErrNotFound)
	}
	return nil
}

// ensureLegacyEmployer finds the employer alias row bridging the business
// profile to legacy postings, creating it on first post.
func (s *JobService) ensureLegacyEmployer(profile *models.EmployerProfile, user *models.SignupUser, req *dtos.JobCreateRequest) (*models.Employer, error) {
	var employer models.Employer
	err := s.DB.Where("business_no = ?", profile.ID).First(&employer).Error
	if err == nil {
		return &employer, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("get legacy employer: %w", err)
	}

	contact := ""
	if user.Email != nil {
		contact = *user.Email
	}
	employer = models.Employer{
		ID:               newID("emp"),
		BusinessNo:       profile.ID,
		ShopName:         profile.CompanyName,
		Industry:         "기타",
		Address:          profile.Address,
		OpenHours:        "09:00-18:00",
		Contact:          contact,
		MinLanguageLevel: req.RequiredLanguage,
		BaseWage:         req.Wage,
		Schedule:         req.WorkHours,
	}
	if err := s.DB.Create(&employer).Error; err != nil {
		return nil, fmt.Errorf("create legacy employer: %w", err)
	}
	return &employer, nil
}

// buildJobView assembles the listing projection for one posting.
func (s *JobService) buildJobView(job models.Job, count int64) (dtos.JobView, error) {
	var employer *models.Employer
	var e models.Employer
	err := s.DB.First(&e, "id = ?", job.EmployerID).Error
	if err == nil {
		employer = &e
	} else if err != gorm.ErrRecordNotFound {
		return dtos.JobView{}, fmt.Errorf("get employer %s: %w", job.EmployerID, err)
	}

	trusted, err := s.isTrusted(employer)
	if err != nil {
		return dtos.JobView{}, err
	}

	return dtos.JobView{
		Job:               job,
		Employer:          employer,
		RequiredVisa:      parseVisaList(job.RequiredVisa),
		ApplicationsCount: count,
		IsTrusted:         trusted,
	}, nil
}

// isTrusted reports whether the posting's business profile carries a
// business license or an explicit verification flag.
func (s *JobService) isTrusted(employer *models.Employer) (bool, error) {
	if employer == nil || employer.BusinessNo == "" {
		return false, nil
	}
	var profile models.EmployerProfile
	err := s.DB.First(&profile, "id = ?", employer.BusinessNo).Error
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get employer profile %s: %w", employer.BusinessNo, err)
	}
	if profile.BusinessLicense != nil && *profile.BusinessLicense != "" {
		return true, nil
	}
	return profile.IsVerified, nil
}

// applicationCounts returns the count-by-job-id map used for popularity,
// computed in one grouped query instead of one count per posting.
func (s *JobService) applicationCounts() (map[string]int64, error) {
	var rows []struct {
		JobID string
		Total int64
	}
	if err := s.DB.Model(&models.Application{}).
		Select("job_id, COUNT(*) AS total").
		Group("job_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("count applications: %w", err)
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.JobID] = row.Total
	}
	return counts, nil
}

// parseVisaList deserializes a stored visa list; malformed data counts as
// an empty list, never an error.
func parseVisaList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var visas []string
	if err := json.Unmarshal([]byte(raw), &visas); err != nil {
		return []string{}
	}
	return visas
}

func containsVisa(visas []string, visa string) bool {
	for _, v := range visas {
		if v == visa {
			return true
		}
	}
	return false
}

// postingSortKey orders by posting time, falling back to creation time.
func postingSortKey(job models.Job) string {
	if job.PostedAt != nil && *job.PostedAt != "" {
		return *job.PostedAt
	}
	return job.CreatedAt
}

// deriveLocation picks the short "city district" location shown on cards:
// the explicit value if sent, otherwise the first two tokens of the shop
// or employer address.
func deriveLocation(req *dtos.JobCreateRequest, employer *models.Employer) *string {
	if req.Location != nil && *req.Location != "" {
		return req.Location
	}
	if req.ShopAddress != nil {
		if loc := shortAddress(*req.ShopAddress); loc != "" {
			return &loc
		}
	}
	if loc := shortAddress(employer.Address); loc != "" {
		return &loc
	}
	return nil
}

func shortAddress(addr string) string {
	parts := strings.Fields(addr)
	if len(parts) >= 2 {
		return parts[0] + " " + parts[1]
	}
	return ""
}
