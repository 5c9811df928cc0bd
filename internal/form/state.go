package form

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	domainerrors "github.com/cetler74/linkuupapp-sub002/internal/domain/errors"
)

// Field names accepted by State.UpdateField.
const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldPosition  = "position"
	FieldBio       = "bio"
)

// employeeFields is the validated field set of the form. Tags follow the
// wire names so validation failures report the name the user saw.
type employeeFields struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Position  string `json:"position"`
	Bio       string `json:"bio"`
}

// ValidationError reports every required field left empty or invalid. It is
// always complete: validation never partially reports.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Is lets errors.Is(err, ErrValidationFailed) match a ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == domainerrors.ErrValidationFailed
}

// State owns all editable state for one employee instance: the scalar
// fields, the weekly-schedule form, the photo attachment, and the service
// selection. It is mutated only by the owning screen's handlers and by the
// selection-return channel via ApplySelection.
type State struct {
	id      uuid.UUID
	placeID uuid.UUID

	fields    employeeFields
	schedule  *ScheduleForm
	photo     entity.PhotoState
	selection entity.ServiceSelection

	// lastAppliedSignature guards ApplySelection against the same incoming
	// selection being delivered twice through different lifecycle signals.
	lastAppliedSignature string

	validate *validator.Validate
}

// NewState initializes the form for a place. Pass the loaded employee,
// schedule and selection through Load before editing an existing record.
func NewState(placeID uuid.UUID) *State {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}

		return name
	})

	return &State{
		placeID:  placeID,
		schedule: NewScheduleForm(nil),
		photo:    entity.NewPhotoState(""),
		validate: v,
	}
}

// Load initializes the form from server state. A nil employee starts the
// form empty; a nil schedule falls back to the default weekly pattern.
func (s *State) Load(existing *entity.Employee, schedule entity.WeeklySchedule, services []uuid.UUID) {
	if existing != nil {
		s.id = existing.ID
		s.placeID = existing.PlaceID
		s.fields = employeeFields{
			FirstName: existing.FirstName,
			LastName:  existing.LastName,
			Email:     existing.Email,
			Phone:     existing.Phone,
			Position:  existing.Position,
			Bio:       existing.Bio,
		}
		s.photo = entity.NewPhotoState(existing.PhotoURL)
	}

	s.schedule = NewScheduleForm(schedule)
	s.selection = entity.NewServiceSelection(services)
	s.lastAppliedSignature = s.selection.Signature()
}

// UpdateField applies a named local mutation. It never touches the network.
// Unknown field names are rejected so typos surface in tests instead of
// silently dropping input.
func (s *State) UpdateField(name, value string) error {
	switch name {
	case FieldFirstName:
		s.fields.FirstName = value
	case FieldLastName:
		s.fields.LastName = value
	case FieldEmail:
		s.fields.Email = value
	case FieldPhone:
		s.fields.Phone = value
	case FieldPosition:
		s.fields.Position = value
	case FieldBio:
		s.fields.Bio = value
	default:
		return errors.Errorf("unknown form field %q", name)
	}

	return nil
}

// ValidateRequired checks every required field and reports all failures at
// once.
func (s *State) ValidateRequired() error {
	err := s.validate.Struct(&s.fields)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return errors.Wrap(err, "field validation")
	}

	missing := make([]string, 0, len(fieldErrors))
	for _, fieldErr := range fieldErrors {
		missing = append(missing, fieldErr.Field())
	}

	return &ValidationError{Fields: missing}
}

// ApplySelection reconciles an incoming service selection from the sibling
// selection flow. The same set delivered twice (in any order) is a no-op;
// only a genuinely different set replaces the local selection. Returns
// whether the state changed.
func (s *State) ApplySelection(ids []uuid.UUID) bool {
	incoming := entity.NewServiceSelection(ids)
	if incoming.Signature() == s.lastAppliedSignature {
		return false
	}

	s.selection = incoming
	s.lastAppliedSignature = incoming.Signature()

	return true
}

// ToggleService flips one service in the local selection.
func (s *State) ToggleService(id uuid.UUID) {
	s.selection.Toggle(id)
	s.lastAppliedSignature = s.selection.Signature()
}

// Selection returns the current service selection.
func (s *State) Selection() *entity.ServiceSelection {
	return &s.selection
}

// Schedule exposes the weekly-schedule form.
func (s *State) Schedule() *ScheduleForm {
	return s.schedule
}

// Photo exposes the photo attachment state.
func (s *State) Photo() *entity.PhotoState {
	return &s.photo
}

// AttachPhoto records a freshly picked photo.
func (s *State) AttachPhoto(photo entity.PendingPhoto) {
	s.photo.Attach(photo)
}

// MarkPhotoRemoved flags the existing photo for deletion at submit time.
func (s *State) MarkPhotoRemoved() {
	s.photo.MarkRemoved()
}

// KeepExistingPhoto reverts any pending pick or removal mark.
func (s *State) KeepExistingPhoto() {
	s.photo.KeepExisting()
}

// ID returns the entity identity, or uuid.Nil before the first save.
func (s *State) ID() uuid.UUID {
	return s.id
}

// SetID records the identity returned by the first successful save.
func (s *State) SetID(id uuid.UUID) {
	s.id = id
}

// PlaceID returns the owning place.
func (s *State) PlaceID() uuid.UUID {
	return s.placeID
}

// Employee snapshots the scalar fields into an entity ready for the write.
func (s *State) Employee() *entity.Employee {
	return &entity.Employee{
		ID:        s.id,
		PlaceID:   s.placeID,
		FirstName: s.fields.FirstName,
		LastName:  s.fields.LastName,
		Email:     s.fields.Email,
		Phone:     s.fields.Phone,
		Position:  s.fields.Position,
		Bio:       s.fields.Bio,
		PhotoURL:  s.photo.ExistingURL(),
	}
}
