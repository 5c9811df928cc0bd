// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/form"
)

// SubmitStep identifies one of the dependent writes of a submission.
type SubmitStep string

const (
	StepServices SubmitStep = "services"
	StepSchedule SubmitStep = "schedule"
	StepPhoto    SubmitStep = "photo"
)

// SubmitWarning records a dependent write that failed after the primary
// entity was already saved. Warnings never roll the entity back.
type SubmitWarning struct {
	Step SubmitStep
	Err  error
}

// SubmitResult is the outcome of a successful submission: the saved entity
// plus any non-fatal dependent-step warnings.
type SubmitResult struct {
	Employee *entity.Employee
	Warnings []SubmitWarning
}

// Saved reports whether the primary entity was persisted. A result returned
// without error is always saved; the method exists for readability at call
// sites.
func (r *SubmitResult) Saved() bool {
	return r != nil && r.Employee != nil
}

// EmployeeSaveUsecase persists the employee form and its dependent
// sub-resources with independent failure isolation.
type EmployeeSaveUsecase interface {
	// Submit validates the form, writes the primary entity (create or
	// update depending on the form's identity), then performs the dependent
	// writes. Validation and primary-write failures are fatal and returned
	// as the error; dependent-step failures are aggregated into the
	// result's warnings.
	Submit(ctx context.Context, state *form.State) (*SubmitResult, error)
}
