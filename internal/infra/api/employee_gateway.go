package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
)

// employeeGateway is the REST implementation of gateway.EmployeeGateway.
type employeeGateway struct {
	client *Client
}

// NewEmployeeGateway is the constructor for employeeGateway.
func NewEmployeeGateway(client *Client) gateway.EmployeeGateway {
	return &employeeGateway{client: client}
}

func (g *employeeGateway) Create(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	var created entity.Employee
	path := fmt.Sprintf("/api/places/%s/employees", employee.PlaceID)
	if err := g.client.doJSON(ctx, http.MethodPost, path, employee, &created); err != nil {
		return nil, err
	}

	return &created, nil
}

func (g *employeeGateway) Update(ctx context.Context, employee *entity.Employee) (*entity.Employee, error) {
	var updated entity.Employee
	path := fmt.Sprintf("/api/employees/%s", employee.ID)
	if err := g.client.doJSON(ctx, http.MethodPut, path, employee, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

func (g *employeeGateway) Get(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	var employee entity.Employee
	path := fmt.Sprintf("/api/employees/%s", id)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, &employee); err != nil {
		return nil, err
	}

	return &employee, nil
}

func (g *employeeGateway) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Employee, error) {
	var employees []entity.Employee
	path := fmt.Sprintf("/api/places/%s/employees", placeID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, &employees); err != nil {
		return nil, err
	}

	return employees, nil
}
