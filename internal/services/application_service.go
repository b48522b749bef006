package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/workfair-app/workfair-backend/internal/dtos"
	"github.com/workfair-app/workfair-backend/internal/events"
	"github.com/workfair-app/workfair-backend/internal/models"
)

// Application statuses. Any status may move to any other valid status;
// there is no transition graph. Only hired has a side effect
// (the hired timestamp).
const (
	ApplicationApplied  = "applied"
	ApplicationReviewed = "reviewed"
	ApplicationHired    = "hired"
	ApplicationRejected = "rejected"
	ApplicationHold     = "hold"
)

// ValidApplicationStatus reports whether s is a known application status.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationApplied, ApplicationReviewed, ApplicationHired, ApplicationRejected, ApplicationHold:
		return true
	}
	return false
}

// ApplicationFilter selects applications by any combination of ids. UserID
// is the "resolve ownership for me" form; an explicit EmployerID bypasses
// the ownership union and is used as-is.
type ApplicationFilter struct {
	SeekerID   string
	JobID      string
	EmployerID string
	UserID     string
}

// ApplicationService implements application creation, listing with
// enrichment, and status updates.
type ApplicationService struct {
	DB        *gorm.DB
	resolver  *OwnershipResolver
	publisher *events.Publisher
}

func NewApplicationService(db *gorm.DB, resolver *OwnershipResolver, publisher *events.Publisher) *ApplicationService {
	return &ApplicationService{DB: db, resolver: resolver, publisher: publisher}
}

// CreateApplication applies a seeker to a job. The seeker's legacy row is
// auto-provisioned when missing so the foreign key holds; a duplicate
// (seeker, job) pair is a conflict; a missing job is not-found.
func (s *ApplicationService) CreateApplication(ctx context.Context, seekerID, jobID string) (*models.Application, error) {
	if err := s.ensureJobSeeker(seekerID); err != nil {
		return nil, err
	}

	var existing models.Application
	err := s.DB.Where("seeker_id = ? AND job_id = ?", seekerID, jobID).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("already applied to job %s: %w", jobID, ErrConflict)
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check existing application: %w", err)
	}

	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("job %s: %w", jobID, ErrNotFound)
		}
		return nil, fmt.Errorf("get job %s: %w", jobID, err)
	}

	now := nowISO()
	application := models.Application{
		ApplicationID: newLongID("app"),
		SeekerID:      seekerID,
		JobID:         jobID,
		Status:        ApplicationApplied,
		AppliedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.DB.Create(&application).Error; err != nil {
		// The unique index closes the pre-check race window.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("already applied to job %s: %w", jobID, ErrConflict)
		}
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.publisher.Publish(ctx, events.ApplicationCreated, events.ApplicationEvent{
		ApplicationID: application.ApplicationID,
		SeekerID:      application.SeekerID,
		JobID:         application.JobID,
		Status:        application.Status,
	})

	return &application, nil
}

// UpdateApplicationStatus moves an application to a new status. Moving to
// hired stamps the hired timestamp; the applied timestamp never changes.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, applicationID, status string) (*models.Application, error) {
	if !ValidApplicationStatus(status) {
		return nil, fmt.Errorf("invalid application status %q: %w", status, ErrValidation)
	}

	var application models.Application
	if err := s.DB.First(&application, "application_id = ?", applicationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("application %s: %w", applicationID, ErrNotFound)
		}
		return nil, fmt.Errorf("get application %s: %w", applicationID, err)
	}

	application.Status = status
	application.UpdatedAt = nowISO()
	if status == ApplicationHired {
		hired := nowISO()
		application.HiredAt = &hired
	}

	if err := s.DB.Save(&application).Error; err != nil {
		return nil, fmt.Errorf("update application %s: %w", applicationID, err)
	}

	s.publisher.Publish(ctx, events.ApplicationStatusChanged, events.ApplicationEvent{
		ApplicationID: application.ApplicationID,
		SeekerID:      application.SeekerID,
		JobID:         application.JobID,
		Status:        application.Status,
	})

	return &application, nil
}

// ListApplications returns applications matching the filter, enriched with
// the nested projections appropriate to the filter used:
//
//   - seeker filter       → full job summary per application
//   - job/employer/user   → job-seeker summary (sentinel when the legacy
//     row is missing)
//   - employer/user       → minimal job summary, and applications whose job
//     does not belong to the resolved employer are dropped
func (s *ApplicationService) ListApplications(f ApplicationFilter) ([]dtos.ApplicationView, error) {
	employerID := f.EmployerID
	var ownedJobIDs []string

	// Resolve an owning account to its employer id and owned-posting set.
	if f.UserID != "" && f.SeekerID == "" {
		owned, err := s.resolver.ResolveOwnedJobs(f.UserID)
		if err != nil {
			return nil, err
		}
		ownedJobIDs = owned.JobIDs
		if employerID == "" {
			employerID = owned.EmployerID
		}
		// An account that owns nothing has an empty dashboard, not an
		// unfiltered one.
		if len(ownedJobIDs) == 0 {
			return []dtos.ApplicationView{}, nil
		}
	}

	q := s.DB.Model(&models.Application{})
	if f.SeekerID != "" {
		q = q.Where("seeker_id = ?", f.SeekerID)
	}
	if f.JobID != "" {
		q = q.Where("job_id = ?", f.JobID)
	}
	if f.EmployerID != "" {
		var jobIDs []string
		if err := s.DB.Model(&models.Job{}).
			Where("employer_id = ?", f.EmployerID).
			Pluck("id", &jobIDs).Error; err != nil {
			return nil, fmt.Errorf("list jobs for employer %s: %w", f.EmployerID, err)
		}
		if len(jobIDs) == 0 {
			return []dtos.ApplicationView{}, nil
		}
		q = q.Where("job_id IN ?", jobIDs)
	}
	if f.UserID != "" && len(ownedJobIDs) > 0 {
		q = q.Where("job_id IN ?", ownedJobIDs)
	}

	var applications []models.Application
	if err := q.Find(&applications).Error; err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	employerView := f.EmployerID != "" || f.UserID != ""
	views := make([]dtos.ApplicationView, 0, len(applications))
	for _, app := range applications {
		view := dtos.ApplicationView{
			ApplicationID: app.ApplicationID,
			SeekerID:      app.SeekerID,
			JobID:         app.JobID,
			Status:        app.Status,
			AppliedAt:     app.AppliedAt,
			UpdatedAt:     app.UpdatedAt,
			HiredAt:       app.HiredAt,
		}

		if f.SeekerID != "" {
			view.Job = s.seekerJobSummary(app.JobID)
		}

		if f.JobID != "" || employerView {
			view.JobSeeker = s.seekerSummary(app.SeekerID)
		}

		if employerView {
			job := s.getJob(app.JobID)
			if employerID != "" && (job == nil || job.EmployerID != employerID) {
				// Stale or foreign job reference on the application row.
				continue
			}
			if job != nil && view.Job == nil {
				view.Job = &dtos.ApplicationJobSummary{
					ID:       job.ID,
					Title:    job.Title,
					Category: job.Category,
				}
			}
		}

		views = append(views, view)
	}

	return views, nil
}

// ensureJobSeeker creates the legacy jobseeker row for a signup-only user
// the first time they apply, synthesized from the best available account
// and profile data.
func (s *ApplicationService) ensureJobSeeker(seekerID string) error {
	var existing models.JobSeeker
	err := s.DB.First(&existing, "id = ?", seekerID).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("get jobseeker %s: %w", seekerID, err)
	}

	var user models.SignupUser
	hasUser := s.DB.First(&user, "id = ?", seekerID).Error == nil

	var profile models.JobSeekerProfile
	hasProfile := s.DB.Where("user_id = ?", seekerID).First(&profile).Error == nil

	seeker := models.JobSeeker{
		ID:            seekerID,
		Name:          "Unknown",
		Nationality:   "Unknown",
		LanguageLevel: "Lv.2 초급",
		VisaType:      "F-4",
		Availability:  "full-time",
		Experience:    "[]",
		Preferences:   "{}",
	}
	if hasUser {
		seeker.Name = user.Name
		if user.NationalityCode != nil {
			seeker.Nationality = *user.NationalityCode
		}
		if user.Phone != nil {
			seeker.Phone = *user.Phone
		}
	}
	if hasProfile && profile.VisaType != nil && *profile.VisaType != "" {
		seeker.VisaType = *profile.VisaType
	}

	if err := s.DB.Create(&seeker).Error; err != nil {
		return fmt.Errorf("create jobseeker %s: %w", seekerID, err)
	}
	return nil
}

// seekerJobSummary builds the job card attached to a seeker's own
// application list; nil when the job row is gone.
func (s *ApplicationService) seekerJobSummary(jobID string) *dtos.ApplicationJobSummary {
	job := s.getJob(jobID)
	if job == nil {
		return nil
	}

	shopName := ""
	if job.ShopName != nil && *job.ShopName != "" {
		shopName = *job.ShopName
	} else if employer := s.getEmployer(job.EmployerID); employer != nil {
		shopName = employer.ShopName
	}

	location := ""
	if job.Location != nil && *job.Location != "" {
		location = *job.Location
	} else if job.ShopAddress != nil {
		location = *job.ShopAddress
	}

	return &dtos.ApplicationJobSummary{
		ID:         job.ID,
		Title:      job.Title,
		ShopName:   shopName,
		Wage:       job.Wage,
		Location:   location,
		Category:   job.Category,
		WorkDays:   job.WorkDays,
		WorkHours:  job.WorkHours,
		EmployerID: job.EmployerID,
	}
}

// seekerSummary builds the applicant card. A missing legacy row yields the
// sentinel summary rather than dropping the application; malformed
// serialized fields degrade to empty values.
func (s *ApplicationService) seekerSummary(seekerID string) *dtos.ApplicationSeekerSummary {
	var seeker models.JobSeeker
	if err := s.DB.First(&seeker, "id = ?", seekerID).Error; err != nil {
		return &dtos.ApplicationSeekerSummary{
			ID:            seekerID,
			Name:          "Unknown",
			Nationality:   "Unknown",
			LanguageLevel: "Unknown",
			VisaType:      "Unknown",
			Experience:    []any{},
			Preferences:   map[string]any{},
		}
	}

	experience := []any{}
	if seeker.Experience != "" {
		if err := json.Unmarshal([]byte(seeker.Experience), &experience); err != nil {
			experience = []any{}
		}
	}
	preferences := map[string]any{}
	if seeker.Preferences != "" {
		if err := json.Unmarshal([]byte(seeker.Preferences), &preferences); err != nil {
			preferences = map[string]any{}
		}
	}

	return &dtos.ApplicationSeekerSummary{
		ID:            seeker.ID,
		Name:          seeker.Name,
		Nationality:   seeker.Nationality,
		Phone:         seeker.Phone,
		LanguageLevel: seeker.LanguageLevel,
		VisaType:      seeker.VisaType,
		Experience:    experience,
		Preferences:   preferences,
	}
}

func (s *ApplicationService) getJob(jobID string) *models.Job {
	var job models.Job
	if err := s.DB.First(&job, "id = ?", jobID).Error; err != nil {
		return nil
	}
	return &job
}

func (s *ApplicationService) getEmployer(employerID string) *models.Employer {
	var employer models.Employer
	if err := s.DB.First(&employer, "id = ?", employerID).Error; err != nil {
		return nil
	}
	return &employer
}
