package domain

import (
	"context"
	"errors"
)

// Application status values shown on the tracker form
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
	StatusGhosted   = "Ghosted"
)

// Interview stage values
const (
	StageNone         = "N/A"
	StageScreening    = "Screening"
	StageTechnical    = "Technical"
	StageFinal        = "Final"
	StageOfferPending = "Offer Pending"
)

// Statuses lists the selectable application statuses in form order.
var Statuses = []string{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusGhosted}

// Stages lists the selectable interview stages in form order.
var Stages = []string{StageNone, StageScreening, StageTechnical, StageFinal, StageOfferPending}

// Canonical column names of the tracker data file
const (
	ColID              = "ID"
	ColCompany         = "Company"
	ColJobTitle        = "Job Title"
	ColLocation        = "Location"
	ColSalaryEstimate  = "Salary (Est.)"
	ColJobPostingLink  = "Job Posting Link"
	ColApplicationDate = "Application Date"
	ColStatus          = "Application Status"
	ColInterviewStage  = "Interview Stage"
	ColFollowUpDate    = "Follow-Up Date"
	ColFollowUpSent    = "Follow-Up Sent?"
	ColResumeOptimized = "Resume Optimized?"
	ColJobSource       = "Job Source"
	ColContactName     = "Contact Name"
	ColNotes           = "Notes"
)

// Columns is the canonical ordered column set. Every persisted row carries all
// of these; loaders back-fill columns that older files are missing.
var Columns = []string{
	ColID, ColCompany, ColJobTitle, ColLocation, ColSalaryEstimate,
	ColJobPostingLink, ColApplicationDate, ColStatus, ColInterviewStage,
	ColFollowUpDate, ColFollowUpSent, ColResumeOptimized, ColJobSource,
	ColContactName, ColNotes,
}

// ErrRecordNotFound is returned when no application matches the requested ID.
var ErrRecordNotFound = errors.New("application record not found")

// Application represents one job application attempt. All fields except ID are
// free text as entered on the form; dates are passed through as given.
type Application struct {
	ID              string `json:"id"`
	Company         string `json:"company"`
	JobTitle        string `json:"job_title"`
	Location        string `json:"location"`
	SalaryEstimate  string `json:"salary_estimate"`
	JobPostingLink  string `json:"job_posting_link"`
	ApplicationDate string `json:"application_date"`
	Status          string `json:"application_status" validate:"omitempty,app_status"`
	InterviewStage  string `json:"interview_stage" validate:"omitempty,interview_stage"`
	FollowUpDate    string `json:"follow_up_date"`
	FollowUpSent    string `json:"follow_up_sent" validate:"omitempty,yes_no"`
	ResumeOptimized string `json:"resume_optimized" validate:"omitempty,yes_no"`
	JobSource       string `json:"job_source"`
	ContactName     string `json:"contact_name"`
	Notes           string `json:"notes"`
}

// Fields returns the record's values keyed by canonical column name.
func (a *Application) Fields() map[string]string {
	return map[string]string{
		ColID:              a.ID,
		ColCompany:         a.Company,
		ColJobTitle:        a.JobTitle,
		ColLocation:        a.Location,
		ColSalaryEstimate:  a.SalaryEstimate,
		ColJobPostingLink:  a.JobPostingLink,
		ColApplicationDate: a.ApplicationDate,
		ColStatus:          a.Status,
		ColInterviewStage:  a.InterviewStage,
		ColFollowUpDate:    a.FollowUpDate,
		ColFollowUpSent:    a.FollowUpSent,
		ColResumeOptimized: a.ResumeOptimized,
		ColJobSource:       a.JobSource,
		ColContactName:     a.ContactName,
		ColNotes:           a.Notes,
	}
}

// ApplicationFilter narrows a listing. Zero values mean "no restriction";
// all set criteria must match.
type ApplicationFilter struct {
	Query           string   // case-insensitive substring across all fields
	Statuses        []string // exact match against any of the given statuses
	FollowUpSent    string   // "Yes" or "No"
	ResumeOptimized string   // "Yes" or "No"
}

// ApplicationUpdate carries a partial edit; nil fields are left untouched.
type ApplicationUpdate struct {
	Company         *string `json:"company"`
	JobTitle        *string `json:"job_title"`
	Location        *string `json:"location"`
	SalaryEstimate  *string `json:"salary_estimate"`
	JobPostingLink  *string `json:"job_posting_link"`
	ApplicationDate *string `json:"application_date"`
	Status          *string `json:"application_status" validate:"omitempty,app_status"`
	InterviewStage  *string `json:"interview_stage" validate:"omitempty,interview_stage"`
	FollowUpDate    *string `json:"follow_up_date"`
	FollowUpSent    *string `json:"follow_up_sent" validate:"omitempty,yes_no"`
	ResumeOptimized *string `json:"resume_optimized" validate:"omitempty,yes_no"`
	JobSource       *string `json:"job_source"`
	ContactName     *string `json:"contact_name"`
	Notes           *string `json:"notes"`
}

// Fields returns only the set values, keyed by canonical column name.
func (u *ApplicationUpdate) Fields() map[string]string {
	fields := make(map[string]string)
	set := func(col string, v *string) {
		if v != nil {
			fields[col] = *v
		}
	}
	set(ColCompany, u.Company)
	set(ColJobTitle, u.JobTitle)
	set(ColLocation, u.Location)
	set(ColSalaryEstimate, u.SalaryEstimate)
	set(ColJobPostingLink, u.JobPostingLink)
	set(ColApplicationDate, u.ApplicationDate)
	set(ColStatus, u.Status)
	set(ColInterviewStage, u.InterviewStage)
	set(ColFollowUpDate, u.FollowUpDate)
	set(ColFollowUpSent, u.FollowUpSent)
	set(ColResumeOptimized, u.ResumeOptimized)
	set(ColJobSource, u.JobSource)
	set(ColContactName, u.ContactName)
	set(ColNotes, u.Notes)
	return fields
}

// ApplicationRepository defines data access for one user's tracker file
type ApplicationRepository interface {
	// Init creates the user's file if absent or empty and back-fills any
	// missing canonical columns. Idempotent.
	Init(ctx context.Context, username string) error
	GetAll(ctx context.Context, username string) ([]Application, error)
	// Append adds one record; a missing ID is generated.
	Append(ctx context.Context, username string, app *Application) error
	// Update overwrites only the named columns of the record with the given ID.
	Update(ctx context.Context, username string, id string, fields map[string]string) error
	Delete(ctx context.Context, username string, id string) error
	// DataFile returns the user's file name relative to the data directory,
	// for staging by the sync agent.
	DataFile(username string) string
}

// ApplicationUsecase defines business logic for tracker records. Mutations
// return the sync outcome so the caller can tell the user whether the change
// reached the remote.
type ApplicationUsecase interface {
	List(ctx context.Context, username string, filter ApplicationFilter) ([]Application, error)
	Create(ctx context.Context, username string, app *Application) (SyncOutcome, error)
	Update(ctx context.Context, username string, id string, upd *ApplicationUpdate) (SyncOutcome, error)
	Delete(ctx context.Context, username string, id string) (SyncOutcome, error)
	Sync(ctx context.Context, username string) (SyncOutcome, error)
}
