package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

const (
	msgLoadUnits  = "Failed to load units"
	msgCreateUnit = "Failed to create unit."
)

// UnitList is the landing screen listing every unit.
type UnitList struct {
	Collection[domain.Unit]
	ActionError string `json:"action_error,omitempty"`
}

func NewUnitList() *UnitList {
	v := &UnitList{}
	v.reset()
	return v
}

func (v *UnitList) Mount(ctx context.Context, api UnitsAPI) {
	v.reset()
	v.ActionError = ""
	v.fetch(ctx, api)
}

func (v *UnitList) fetch(ctx context.Context, api UnitsAPI) {
	v.beginLoad()
	units, err := api.ListUnits(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("list_units", "error fetching units: %v", err)
	}
	v.resolve(units, err, msgLoadUnits)
}

func byUnitCode(code string) func(domain.Unit) bool {
	return func(u domain.Unit) bool { return u.UnitCode == code }
}

// Create posts a new unit and re-fetches the list.
func (v *UnitList) Create(ctx context.Context, api UnitsAPI, unit domain.Unit) error {
	unit.UnitCode = strings.TrimSpace(unit.UnitCode)
	if unit.UnitCode == "" {
		return fmt.Errorf("unit code: %w", domain.ErrEmptyName)
	}

	v.ActionError = ""
	prev := v.beginMutation()
	if err := api.CreateUnit(ctx, unit); err != nil {
		v.endMutation(prev)
		logging.NewLogger(ctx).LogErrorf("create_unit", "error creating unit %q: %v", unit.UnitCode, err)
		v.ActionError = msgCreateUnit
		return err
	}
	v.fetch(ctx, api)
	return nil
}

// Delete removes the unit locally once the API confirms.
func (v *UnitList) Delete(ctx context.Context, api UnitsAPI, unitCode string) error {
	prev := v.beginMutation()
	defer v.endMutation(prev)

	if err := api.DeleteUnit(ctx, unitCode); err != nil {
		logging.NewLogger(ctx).LogErrorf("delete_unit", "error deleting unit %q: %v", unitCode, err)
		return err
	}
	v.Remove(byUnitCode(unitCode))
	return nil
}

// Update patches the unit's display metadata once the API confirms.
func (v *UnitList) Update(ctx context.Context, api UnitsAPI, unitCode string, update domain.UnitUpdate) error {
	prev := v.beginMutation()
	defer v.endMutation(prev)

	if err := api.UpdateUnit(ctx, unitCode, update); err != nil {
		logging.NewLogger(ctx).LogErrorf("update_unit", "error updating unit %q: %v", unitCode, err)
		return err
	}
	v.Patch(byUnitCode(unitCode), func(u *domain.Unit) {
		u.UnitName = update.UnitName
		u.Description = update.Description
	})
	return nil
}
