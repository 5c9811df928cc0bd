// Package gateway defines the contracts between the application core and the
// remote Linkuup API. All persistence and business rules live behind these
// interfaces; the client only coordinates calls against them.
package gateway

import (
	"context"

	"github.com/google/uuid"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

// EmployeeGateway covers the primary-entity endpoints.
type EmployeeGateway interface {
	Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error)
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Employee, error)
}

// ServiceGateway covers the sub-resource endpoints. Assign replaces the full
// relation set; there is no incremental variant.
type ServiceGateway interface {
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Service, error)
	Assign(ctx context.Context, employeeID uuid.UUID, serviceIDs []uuid.UUID) error
	ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.Service, error)
}

// ScheduleGateway covers the weekly-schedule endpoints. Replace swaps the
// whole schedule; days are never merged server-side.
type ScheduleGateway interface {
	Replace(ctx context.Context, employeeID uuid.UUID, schedule entity.WeeklySchedule) error
	Get(ctx context.Context, employeeID uuid.UUID) (entity.WeeklySchedule, error)
}

// PhotoGateway covers the photo resource of an employee. Upload transmits
// the file as a multipart field named "file".
type PhotoGateway interface {
	Upload(ctx context.Context, employeeID uuid.UUID, photo entity.PendingPhoto) (photoURL string, err error)
	Delete(ctx context.Context, employeeID uuid.UUID) error
}
