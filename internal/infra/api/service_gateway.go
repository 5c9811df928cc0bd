package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
)

// serviceGateway is the REST implementation of gateway.ServiceGateway.
type serviceGateway struct {
	client *Client
}

// NewServiceGateway is the constructor for serviceGateway.
func NewServiceGateway(client *Client) gateway.ServiceGateway {
	return &serviceGateway{client: client}
}

// assignRequest is the wholesale relation-replacement body.
type assignRequest struct {
	ServiceIDs []uuid.UUID `json:"service_ids"`
}

func (g *serviceGateway) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	path := fmt.Sprintf("/api/places/%s/services", placeID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, err
	}

	return services, nil
}

func (g *serviceGateway) Assign(ctx context.Context, employeeID uuid.UUID, serviceIDs []uuid.UUID) error {
	path := fmt.Sprintf("/api/employees/%s/services", employeeID)
	body := assignRequest{ServiceIDs: serviceIDs}
	if body.ServiceIDs == nil {
		body.ServiceIDs = []uuid.UUID{}
	}

	return g.client.doJSON(ctx, http.MethodPut, path, body, nil)
}

func (g *serviceGateway) ListForEmployee(ctx context.Context, employeeID uuid.UUID) ([]entity.Service, error) {
	var services []entity.Service
	path := fmt.Sprintf("/api/employees/%s/services", employeeID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, &services); err != nil {
		return nil, err
	}

	return services, nil
}
