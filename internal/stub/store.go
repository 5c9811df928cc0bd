// Package stub provides an in-memory Linkuup API backend for local
// development and for integration tests of the gateway layer. It mimics the
// production API's endpoints, auth, plan limits, and its mix of error-body
// shapes.
package stub

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
)

// Owner is the single seeded account the stub authenticates.
type Owner struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Plan         entity.Plan
}

// Store holds all stub state in memory behind one mutex. Contention is a
// non-issue at stub scale.
type Store struct {
	mu sync.Mutex

	owner   Owner
	placeID uuid.UUID

	services         map[uuid.UUID]entity.Service
	serviceOrder     []uuid.UUID
	employees        map[uuid.UUID]entity.Employee
	schedules        map[uuid.UUID]entity.WeeklySchedule
	employeeServices map[uuid.UUID][]uuid.UUID
}

// NewStore seeds a store with the owner account, one place, and a small
// service catalog.
func NewStore(owner Owner) *Store {
	s := &Store{
		owner:            owner,
		placeID:          uuid.New(),
		services:         make(map[uuid.UUID]entity.Service),
		employees:        make(map[uuid.UUID]entity.Employee),
		schedules:        make(map[uuid.UUID]entity.WeeklySchedule),
		employeeServices: make(map[uuid.UUID][]uuid.UUID),
	}

	for _, svc := range []entity.Service{
		{Name: "Haircut", DurationMinutes: 30, Price: 25},
		{Name: "Beard trim", DurationMinutes: 15, Price: 12},
		{Name: "Coloring", DurationMinutes: 90, Price: 80},
	} {
		svc.ID = uuid.New()
		svc.PlaceID = s.placeID
		s.services[svc.ID] = svc
		s.serviceOrder = append(s.serviceOrder, svc.ID)
	}

	return s
}

// Owner returns the seeded account.
func (s *Store) Owner() Owner {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.owner
}

// PlaceID returns the seeded place.
func (s *Store) PlaceID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.placeID
}

// Services lists the seeded catalog in insertion order.
func (s *Store) Services() []entity.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Service, 0, len(s.serviceOrder))
	for _, id := range s.serviceOrder {
		out = append(out, s.services[id])
	}

	return out
}

// HasService reports whether id is part of the catalog.
func (s *Store) HasService(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.services[id]

	return ok
}

// EmployeeCount returns how many employees the place currently has.
func (s *Store) EmployeeCount(placeID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, emp := range s.employees {
		if emp.PlaceID == placeID {
			count++
		}
	}

	return count
}

// CreateEmployee inserts a new employee with a fresh identity.
func (s *Store) CreateEmployee(employee entity.Employee) entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee.ID = uuid.New()
	employee.CreatedAt = time.Now().UTC()
	employee.UpdatedAt = employee.CreatedAt
	s.employees[employee.ID] = employee

	return employee
}

// UpdateEmployee overwrites the stored employee's editable fields. The
// photo URL is owned by the photo endpoints and survives entity updates.
func (s *Store) UpdateEmployee(employee entity.Employee) (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.employees[employee.ID]
	if !ok {
		return entity.Employee{}, false
	}

	employee.PlaceID = stored.PlaceID
	employee.PhotoURL = stored.PhotoURL
	employee.CreatedAt = stored.CreatedAt
	employee.UpdatedAt = time.Now().UTC()
	s.employees[employee.ID] = employee

	return employee, true
}

// GetEmployee fetches one employee.
func (s *Store) GetEmployee(id uuid.UUID) (entity.Employee, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	employee, ok := s.employees[id]

	return employee, ok
}

// ListEmployees returns every employee of a place.
func (s *Store) ListEmployees(placeID uuid.UUID) []entity.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Employee, 0)
	for _, emp := range s.employees {
		if emp.PlaceID == placeID {
			out = append(out, emp)
		}
	}

	return out
}

// AssignServices replaces the employee's relation set wholesale.
func (s *Store) AssignServices(employeeID uuid.UUID, serviceIDs []uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.employeeServices[employeeID] = append([]uuid.UUID(nil), serviceIDs...)
}

// EmployeeServices resolves the employee's assigned services.
func (s *Store) EmployeeServices(employeeID uuid.UUID) []entity.Service {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Service, 0)
	for _, id := range s.employeeServices[employeeID] {
		if svc, ok := s.services[id]; ok {
			out = append(out, svc)
		}
	}

	return out
}

// ReplaceSchedule swaps the employee's weekly schedule wholesale.
func (s *Store) ReplaceSchedule(employeeID uuid.UUID, schedule entity.WeeklySchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[employeeID] = schedule.Clone()
}

// Schedule returns the employee's schedule, falling back to the default
// weekly pattern when none was stored yet.
func (s *Store) Schedule(employeeID uuid.UUID) entity.WeeklySchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if schedule, ok := s.schedules[employeeID]; ok {
		return schedule.Clone()
	}

	return entity.DefaultWeeklySchedule()
}

// SetPhoto records the stored photo URL on the employee.
func (s *Store) SetPhoto(employeeID uuid.UUID, url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[employeeID]
	if !ok {
		return false
	}
	employee.PhotoURL = url
	employee.UpdatedAt = time.Now().UTC()
	s.employees[employeeID] = employee

	return true
}

// DeletePhoto clears the employee's photo. The second return reports
// whether a photo existed.
func (s *Store) DeletePhoto(employeeID uuid.UUID) (existed, found bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	employee, ok := s.employees[employeeID]
	if !ok {
		return false, false
	}

	existed = employee.PhotoURL != ""
	employee.PhotoURL = ""
	employee.UpdatedAt = time.Now().UTC()
	s.employees[employeeID] = employee

	return existed, true
}
