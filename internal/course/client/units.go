package client

import (
	"context"
	"net/http"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

// ListUnits fetches every unit
func (c *Client) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	var units []domain.Unit
	if err := c.doJSON(ctx, "list_units", http.MethodGet, c.endpoints.Units(), nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// CreateUnit creates a unit
func (c *Client) CreateUnit(ctx context.Context, unit domain.Unit) error {
	return c.doJSON(ctx, "create_unit", http.MethodPost, c.endpoints.Units(), unit, nil)
}

// UpdateUnit replaces the display metadata of a unit
func (c *Client) UpdateUnit(ctx context.Context, unitCode string, update domain.UnitUpdate) error {
	return c.doJSON(ctx, "update_unit", http.MethodPut, c.endpoints.Unit(unitCode), update, nil)
}

// DeleteUnit deletes a unit
func (c *Client) DeleteUnit(ctx context.Context, unitCode string) error {
	return c.doJSON(ctx, "delete_unit", http.MethodDelete, c.endpoints.Unit(unitCode), nil, nil)
}
