package stub

import (
	"fmt"
	"net/http"
	"path"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/service"
)

// flatError responds in the flat {"error": "..."} shape most production
// endpoints use.
func flatError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// detailError responds in the {"detail": [{"loc": ..., "msg": ...}]} shape
// the schedule endpoint uses, so clients exercise both extraction paths.
type detailEntry struct {
	Loc []any  `json:"loc"`
	Msg string `json:"msg"`
}

func detailError(c echo.Context, status int, entries ...detailEntry) error {
	return c.JSON(status, map[string]any{"detail": entries})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(hasher service.PasswordHasher) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return flatError(c, http.StatusBadRequest, "Invalid login input")
		}

		owner := s.store.Owner()
		if req.Email != owner.Email || !hasher.Check(req.Password, owner.PasswordHash) {
			return flatError(c, http.StatusUnauthorized, "Invalid email or password")
		}

		token, err := s.issueToken(owner.ID)
		if err != nil {
			return flatError(c, http.StatusInternalServerError, "Failed to issue token")
		}

		return c.JSON(http.StatusOK, map[string]string{
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

func (s *Server) createEmployee(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid place ID")
	}
	if placeID != s.store.PlaceID() {
		return flatError(c, http.StatusNotFound, "Place not found")
	}

	var employee entity.Employee
	if err := c.Bind(&employee); err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee input")
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Email == "" {
		return flatError(c, http.StatusBadRequest, "first_name, last_name and email are required")
	}

	// Plan limit check happens before the insert, mirroring production.
	plan := s.store.Owner().Plan
	count := s.store.EmployeeCount(placeID)
	if count >= plan.EmployeeLimit() {
		return c.JSON(http.StatusPaymentRequired, map[string]any{
			"currentPlan":  string(plan),
			"upgradePlan":  string(entity.PlanPro),
			"currentCount": count,
		})
	}

	employee.PlaceID = placeID
	employee.PhotoURL = ""
	created := s.store.CreateEmployee(employee)

	return c.JSON(http.StatusCreated, created)
}

func (s *Server) updateEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	var employee entity.Employee
	if err := c.Bind(&employee); err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee input")
	}
	if employee.FirstName == "" || employee.LastName == "" || employee.Email == "" {
		return flatError(c, http.StatusBadRequest, "first_name, last_name and email are required")
	}

	employee.ID = id
	updated, ok := s.store.UpdateEmployee(employee)
	if !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	return c.JSON(http.StatusOK, updated)
}

func (s *Server) getEmployee(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	employee, ok := s.store.GetEmployee(id)
	if !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	return c.JSON(http.StatusOK, employee)
}

func (s *Server) listEmployees(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid place ID")
	}

	return c.JSON(http.StatusOK, s.store.ListEmployees(placeID))
}

func (s *Server) listServices(c echo.Context) error {
	placeID, err := uuid.Parse(c.Param("placeID"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid place ID")
	}
	if placeID != s.store.PlaceID() {
		return flatError(c, http.StatusNotFound, "Place not found")
	}

	return c.JSON(http.StatusOK, s.store.Services())
}

type assignServicesRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids"`
}

func (s *Server) assignServices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}
	if _, ok := s.store.GetEmployee(id); !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	var req assignServicesRequest
	if err := c.Bind(&req); err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid service assignment input")
	}

	for _, serviceID := range req.ServiceIDs {
		if !s.store.HasService(serviceID) {
			return flatError(c, http.StatusBadRequest, fmt.Sprintf("Unknown service %s", serviceID))
		}
	}

	s.store.AssignServices(id, req.ServiceIDs)

	return c.JSON(http.StatusOK, map[string]string{"message": "Services assigned"})
}

func (s *Server) employeeServices(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}
	if _, ok := s.store.GetEmployee(id); !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	return c.JSON(http.StatusOK, s.store.EmployeeServices(id))
}

func (s *Server) replaceSchedule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}
	if _, ok := s.store.GetEmployee(id); !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	var schedule entity.WeeklySchedule
	if err := c.Bind(&schedule); err != nil {
		return detailError(c, http.StatusUnprocessableEntity,
			detailEntry{Loc: []any{"body", "schedule"}, Msg: "Invalid schedule payload"})
	}
	if err := schedule.Validate(); err != nil {
		return detailError(c, http.StatusUnprocessableEntity,
			detailEntry{Loc: []any{"body", "schedule"}, Msg: err.Error()})
	}

	s.store.ReplaceSchedule(id, schedule)

	return c.JSON(http.StatusOK, map[string]string{"message": "Schedule replaced"})
}

func (s *Server) getSchedule(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}
	if _, ok := s.store.GetEmployee(id); !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	return c.JSON(http.StatusOK, s.store.Schedule(id))
}

func (s *Server) uploadPhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}
	if _, ok := s.store.GetEmployee(id); !ok {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Multipart field 'file' is required")
	}

	url := path.Join("/media/employees", id.String(), file.Filename)
	s.store.SetPhoto(id, url)

	return c.JSON(http.StatusOK, map[string]string{"photo_url": url})
}

func (s *Server) deletePhoto(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return flatError(c, http.StatusBadRequest, "Invalid employee ID")
	}

	existed, found := s.store.DeletePhoto(id)
	if !found {
		return flatError(c, http.StatusNotFound, "Employee not found")
	}
	if !existed {
		return flatError(c, http.StatusNotFound, "Employee has no photo")
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Photo removed"})
}
