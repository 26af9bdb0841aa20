package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/JRossell27/Job-tracker/internal/domain"
	"github.com/JRossell27/Job-tracker/pkg/apperror"
)

type applicationUsecase struct {
	appRepo   domain.ApplicationRepository
	userRepo  domain.UserRepository
	syncAgent domain.SyncAgent
	validate  *validator.Validate
}

// NewApplicationUsecase creates a new application usecase
func NewApplicationUsecase(appRepo domain.ApplicationRepository, userRepo domain.UserRepository, syncAgent domain.SyncAgent, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		appRepo:   appRepo,
		userRepo:  userRepo,
		syncAgent: syncAgent,
		validate:  validate,
	}
}

// List returns the user's applications narrowed by the filter. Filtering is a
// pure read-side projection over the current snapshot.
func (uc *applicationUsecase) List(ctx context.Context, username string, filter domain.ApplicationFilter) ([]domain.Application, error) {
	apps, err := uc.appRepo.GetAll(ctx, username)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	filtered := make([]domain.Application, 0, len(apps))
	for _, app := range apps {
		if matches(&app, filter) {
			filtered = append(filtered, app)
		}
	}
	return filtered, nil
}

// Create validates the record's enum fields, defaults the form selectors,
// appends the record, and syncs the change.
func (uc *applicationUsecase) Create(ctx context.Context, username string, app *domain.Application) (domain.SyncOutcome, error) {
	if err := uc.validate.Struct(app); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	if app.Status == "" {
		app.Status = domain.StatusApplied
	}
	if app.InterviewStage == "" {
		app.InterviewStage = domain.StageNone
	}
	if app.FollowUpSent == "" {
		app.FollowUpSent = "No"
	}
	if app.ResumeOptimized == "" {
		app.ResumeOptimized = "No"
	}

	if err := uc.appRepo.Append(ctx, username, app); err != nil {
		return "", apperror.Internal(err)
	}
	return uc.Sync(ctx, username)
}

// Update overwrites only the submitted fields of the addressed record and
// syncs the change.
func (uc *applicationUsecase) Update(ctx context.Context, username string, id string, upd *domain.ApplicationUpdate) (domain.SyncOutcome, error) {
	if err := uc.validate.Struct(upd); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	fields := upd.Fields()
	if len(fields) == 0 {
		return "", apperror.BadRequest("No fields to update")
	}

	if err := uc.appRepo.Update(ctx, username, id, fields); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", apperror.NotFound("Application not found")
		}
		return "", apperror.Internal(err)
	}
	return uc.Sync(ctx, username)
}

func (uc *applicationUsecase) Delete(ctx context.Context, username string, id string) (domain.SyncOutcome, error) {
	if err := uc.appRepo.Delete(ctx, username, id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return "", apperror.NotFound("Application not found")
		}
		return "", apperror.Internal(err)
	}
	return uc.Sync(ctx, username)
}

// Sync pushes the user's data file to the remote. The credential file rides
// along so a first-time registration reaches the remote on the next sync. A
// sync failure aborts the current operation; partial success is not reported.
func (uc *applicationUsecase) Sync(ctx context.Context, username string) (domain.SyncOutcome, error) {
	outcome, err := uc.syncAgent.Sync(ctx, uc.appRepo.DataFile(username), uc.userRepo.CredentialFile())
	if err != nil {
		return "", apperror.Internal(err)
	}
	return outcome, nil
}

// matches applies all set filter criteria conjunctively.
func matches(app *domain.Application, filter domain.ApplicationFilter) bool {
	if len(filter.Statuses) > 0 {
		found := false
		for _, s := range filter.Statuses {
			if app.Status == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filter.FollowUpSent != "" && app.FollowUpSent != filter.FollowUpSent {
		return false
	}
	if filter.ResumeOptimized != "" && app.ResumeOptimized != filter.ResumeOptimized {
		return false
	}

	if filter.Query != "" {
		q := strings.ToLower(filter.Query)
		for _, val := range app.Fields() {
			if strings.Contains(strings.ToLower(val), q) {
				return true
			}
		}
		return false
	}
	return true
}
