package view

import (
	"context"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

// Roster lists the members of a unit (students or collaborators) and adds
// new ones. Kind names the member type in messages.
type Roster[T any] struct {
	UnitCode string `json:"unit_code"`
	Kind     string `json:"kind"`
	Collection[T]
	ActionError string `json:"action_error,omitempty"`
}

type (
	StudentRoster      = Roster[domain.Student]
	CollaboratorRoster = Roster[domain.Collaborator]
)

func NewStudentRoster(unitCode string) *StudentRoster {
	v := &StudentRoster{UnitCode: unitCode, Kind: "students"}
	v.reset()
	return v
}

func NewCollaboratorRoster(unitCode string) *CollaboratorRoster {
	v := &CollaboratorRoster{UnitCode: unitCode, Kind: "collaborators"}
	v.reset()
	return v
}

// Mount resets the roster and fetches it with list.
func (v *Roster[T]) Mount(ctx context.Context, list func(context.Context) ([]T, error)) {
	v.reset()
	v.ActionError = ""
	v.fetch(ctx, list)
}

func (v *Roster[T]) fetch(ctx context.Context, list func(context.Context) ([]T, error)) {
	v.beginLoad()
	members, err := list(ctx)
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("list_"+v.Kind, "error fetching %s: %v", v.Kind, err)
	}
	v.resolve(members, err, "Failed to load "+v.Kind)
}

// Add posts a member with add and re-fetches the roster with list.
func (v *Roster[T]) Add(ctx context.Context, add func(context.Context) error, list func(context.Context) ([]T, error)) error {
	v.ActionError = ""
	prev := v.beginMutation()
	if err := add(ctx); err != nil {
		v.endMutation(prev)
		logging.NewLogger(ctx).LogErrorf("add_"+v.Kind, "error adding to %s: %v", v.Kind, err)
		v.ActionError = "Failed to add to " + v.Kind + "."
		return err
	}
	v.fetch(ctx, list)
	return nil
}
