package impl

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

type mockEmployeeGateway struct {
	mock.Mock
}

func (m *mockEmployeeGateway) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeGateway) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeGateway) Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Employee), args.Error(1)
}

func (m *mockEmployeeGateway) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Employee, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Employee), args.Error(1)
}

type mockServiceGateway struct {
	mock.Mock
}

func (m *mockServiceGateway) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Service, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Service), args.Error(1)
}

func (m *mockServiceGateway) Assign(ctx context.Context, employeeID uuid.UUID, serviceIDs []uuid.UUID) error {
	args := m.Called(ctx, employeeID, serviceIDs)

	return args.Error(0)
}

func (m *mockServiceGateway) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.Service, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Service), args.Error(1)
}

type mockScheduleGateway struct {
	mock.Mock
}

func (m *mockScheduleGateway) Replace(ctx context.Context, employeeID uuid.UUID, schedule entity.WeeklySchedule) error {
	args := m.Called(ctx, employeeID, schedule)

	return args.Error(0)
}

func (m *mockScheduleGateway) Get(ctx context.Context, employeeID uuid.UUID) (entity.WeeklySchedule, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(entity.WeeklySchedule), args.Error(1)
}

type mockPhotoGateway struct {
	mock.Mock
}

func (m *mockPhotoGateway) Upload(ctx context.Context, employeeID uuid.UUID, photo entity.PendingPhoto) (string, error) {
	args := m.Called(ctx, employeeID, photo)

	return args.String(0), args.Error(1)
}

func (m *mockPhotoGateway) Delete(ctx context.Context, employeeID uuid.UUID) error {
	args := m.Called(ctx, employeeID)

	return args.Error(0)
}
