package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/config"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
	"github.com/cetler74/linkuupapp-sub002/internal/form"
	"github.com/cetler74/linkuupapp-sub002/internal/infra/api"
	"github.com/cetler74/linkuupapp-sub002/internal/infra/auth"
	logs "github.com/cetler74/linkuupapp-sub002/internal/infra/log"
	"github.com/cetler74/linkuupapp-sub002/internal/infra/media"
	"github.com/cetler74/linkuupapp-sub002/internal/usecase"
	"github.com/cetler74/linkuupapp-sub002/internal/usecase/impl"
)

// app wires the client core for CLI use.
type app struct {
	logger    *slog.Logger
	employees gateway.EmployeeGateway
	services  gateway.ServiceGateway
	schedules gateway.ScheduleGateway
	picker    service.MediaPicker
	save      usecase.EmployeeSaveUsecase
	limits    usecase.PlanLimitUsecase
}

func newApp() (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, errors.Wrap(err, "init logger")
	}

	client := api.NewClient(cfg, auth.NewStaticTokenSource(cfg), logger)
	employees := api.NewEmployeeGateway(client)
	services := api.NewServiceGateway(client)
	schedules := api.NewScheduleGateway(client)
	photos := api.NewPhotoGateway(client)

	return &app{
		logger:    logger,
		employees: employees,
		services:  services,
		schedules: schedules,
		picker:    media.NewFilesystemPicker(cfg),
		save:      impl.NewEmployeeSaveService(employees, services, schedules, photos, logger),
		limits:    impl.NewPlanLimitService(employees, logger),
	}, nil
}

// formFile is the on-disk shape of an employee form.
type formFile struct {
	ID          string                `json:"id,omitempty"`
	FirstName   string                `json:"first_name"`
	LastName    string                `json:"last_name"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone,omitempty"`
	Position    string                `json:"position,omitempty"`
	Bio         string                `json:"bio,omitempty"`
	Schedule    entity.WeeklySchedule `json:"schedule,omitempty"`
	ServiceIDs  []uuid.UUID           `json:"service_ids,omitempty"`
	PhotoURI    string                `json:"photo_uri,omitempty"`
	RemovePhoto bool                  `json:"remove_photo,omitempty"`
}

func (a *app) runShow(ctx context.Context, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return errors.Wrap(err, "invalid -id")
	}

	employee, err := a.employees.Get(ctx, id)
	if err != nil {
		return err
	}

	schedule, err := a.schedules.Get(ctx, id)
	if err != nil {
		return err
	}

	assigned, err := a.services.ListForEmployee(ctx, id)
	if err != nil {
		return err
	}

	return printJSON(map[string]any{
		"employee": employee,
		"schedule": schedule,
		"services": assigned,
	})
}

func (a *app) runServices(ctx context.Context, rawPlace string) error {
	placeID, err := uuid.Parse(rawPlace)
	if err != nil {
		return errors.Wrap(err, "invalid -place")
	}

	catalog, err := a.services.ListByPlace(ctx, placeID)
	if err != nil {
		return err
	}

	return printJSON(catalog)
}

func (a *app) runSave(ctx context.Context, rawPlace, file string) error {
	placeID, err := uuid.Parse(rawPlace)
	if err != nil {
		return errors.Wrap(err, "invalid -place")
	}

	raw, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "read form file")
	}

	var input formFile
	if err := json.Unmarshal(raw, &input); err != nil {
		return errors.Wrap(err, "decode form file")
	}

	state, err := a.buildState(ctx, placeID, &input)
	if err != nil {
		return err
	}

	result, err := a.save.Submit(ctx, state)
	if err != nil {
		if prompt, ok := a.limits.Interpret(ctx, placeID, err); ok {
			fmt.Printf("Plan limit reached: the %s plan allows %d employees (you have %d).\n",
				prompt.CurrentPlan, prompt.LimitValue, prompt.CurrentCount)
			if prompt.UpgradePlan != "" {
				fmt.Printf("Upgrade to the %s plan to add more.\n", prompt.UpgradePlan)
			}

			return domainerrors.ErrQuotaExceeded
		}

		return err
	}

	fmt.Printf("Saved employee %s (%s)\n", result.Employee.FullName(), result.Employee.ID)
	for _, warning := range result.Warnings {
		fmt.Printf("Warning: %s step failed: %v\n", warning.Step, warning.Err)
	}

	return nil
}

// buildState assembles the form state the way the editor screen would:
// load server state for an existing employee, then apply the file's edits.
func (a *app) buildState(ctx context.Context, placeID uuid.UUID, input *formFile) (*form.State, error) {
	state := form.NewState(placeID)

	var existing *entity.Employee
	schedule := input.Schedule
	services := input.ServiceIDs

	if input.ID != "" {
		id, err := uuid.Parse(input.ID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid employee id in form file")
		}

		existing, err = a.employees.Get(ctx, id)
		if err != nil {
			return nil, err
		}

		if schedule == nil {
			if schedule, err = a.schedules.Get(ctx, id); err != nil {
				return nil, err
			}
		}
		if services == nil {
			assigned, err := a.services.ListForEmployee(ctx, id)
			if err != nil {
				return nil, err
			}
			for _, svc := range assigned {
				services = append(services, svc.ID)
			}
		}
	}

	state.Load(existing, schedule, services)

	fields := map[string]string{
		form.FieldFirstName: input.FirstName,
		form.FieldLastName:  input.LastName,
		form.FieldEmail:     input.Email,
		form.FieldPhone:     input.Phone,
		form.FieldPosition:  input.Position,
		form.FieldBio:       input.Bio,
	}
	for name, value := range fields {
		if value == "" {
			continue
		}
		if err := state.UpdateField(name, value); err != nil {
			return nil, err
		}
	}

	if input.RemovePhoto {
		state.MarkPhotoRemoved()
	} else if input.PhotoURI != "" {
		photo, err := a.picker.Pick(ctx, input.PhotoURI)
		if err != nil {
			return nil, err
		}
		state.AttachPhoto(*photo)
	}

	return state, nil
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode output")
	}
	fmt.Println(string(encoded))

	return nil
}
