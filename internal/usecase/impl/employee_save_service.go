// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
	"github.com/cetler74/linkuupapp-sub002/internal/form"
	"github.com/cetler74/linkuupapp-sub002/internal/usecase"
)

// employeeSaveService implements the EmployeeSaveUsecase interface.
type employeeSaveService struct {
	employees gateway.EmployeeGateway
	services  gateway.ServiceGateway
	schedules gateway.ScheduleGateway
	photos    gateway.PhotoGateway
	logger    *slog.Logger
}

// NewEmployeeSaveService is the constructor for employeeSaveService.
func NewEmployeeSaveService(
	employees gateway.EmployeeGateway,
	services gateway.ServiceGateway,
	schedules gateway.ScheduleGateway,
	photos gateway.PhotoGateway,
	logger *slog.Logger,
) usecase.EmployeeSaveUsecase {
	return &employeeSaveService{
		employees: employees,
		services:  services,
		schedules: schedules,
		photos:    photos,
		logger:    logger,
	}
}

// Submit persists the form. The primary entity write is fatal; the three
// dependent writes (service relations, schedule, photo) run concurrently and
// fail independently, each failure recorded as a warning on the otherwise
// successful result. The primary entity is never rolled back once written.
func (srv *employeeSaveService) Submit(ctx context.Context, state *form.State) (*usecase.SubmitResult, error) {
	// 1. Local validation. Nothing is sent before the form is complete.
	if err := state.ValidateRequired(); err != nil {
		return nil, err
	}

	schedule, err := state.Schedule().Schedule()
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	// 2. Primary entity write: create on first save, update afterwards.
	employee := state.Employee()

	var saved *entity.Employee
	if employee.IsNew() {
		srv.logger.Info("creating employee", "placeID", employee.PlaceID, "name", employee.FullName())
		saved, err = srv.employees.Create(ctx, employee)
	} else {
		srv.logger.Info("updating employee", "employeeID", employee.ID, "name", employee.FullName())
		saved, err = srv.employees.Update(ctx, employee)
	}
	if err != nil {
		srv.logger.Error("employee write failed", "error", err)

		return nil, errors.Wrap(err, "employee write failed")
	}

	state.SetID(saved.ID)

	// 3. Dependent writes. Order between the three is irrelevant; all are
	// attempted before the final status is reported.
	result := &usecase.SubmitResult{Employee: saved}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	warn := func(step usecase.SubmitStep, stepErr error) {
		srv.logger.Warn("dependent write failed", "step", string(step), "employeeID", saved.ID, "error", stepErr)
		mu.Lock()
		defer mu.Unlock()
		result.Warnings = append(result.Warnings, usecase.SubmitWarning{Step: step, Err: stepErr})
	}

	wg.Add(3)

	go func() {
		defer wg.Done()
		if err := srv.services.Assign(ctx, saved.ID, state.Selection().IDs()); err != nil {
			warn(usecase.StepServices, err)
		}
	}()

	go func() {
		defer wg.Done()
		if err := srv.schedules.Replace(ctx, saved.ID, schedule); err != nil {
			warn(usecase.StepSchedule, err)
		}
	}()

	go func() {
		defer wg.Done()
		if url, err := srv.resolvePhoto(ctx, saved.ID, state.Photo()); err != nil {
			warn(usecase.StepPhoto, err)
		} else if url != "" {
			mu.Lock()
			result.Employee.PhotoURL = url
			mu.Unlock()
		}
	}()

	wg.Wait()

	srv.logger.Info("employee saved", "employeeID", saved.ID, "warnings", len(result.Warnings))

	return result, nil
}

// resolvePhoto turns the form's photo state into the matching server-side
// operation: delete a photo marked for removal, upload a pending pick, or do
// nothing. Returns the uploaded photo URL when one was created.
func (srv *employeeSaveService) resolvePhoto(ctx context.Context, employeeID uuid.UUID, photo *entity.PhotoState) (string, error) {
	switch photo.Kind() {
	case entity.PhotoMarkedForRemoval:
		if photo.ExistingURL() == "" {
			return "", nil
		}
		if err := srv.photos.Delete(ctx, employeeID); err != nil {
			return "", errors.Wrap(err, "delete photo")
		}

		return "", nil

	case entity.PhotoPending:
		pending := photo.Pending()
		url, err := srv.photos.Upload(ctx, employeeID, *pending)
		if err != nil {
			return "", errors.Wrap(err, "upload photo")
		}

		return url, nil

	default:
		return "", nil
	}
}
