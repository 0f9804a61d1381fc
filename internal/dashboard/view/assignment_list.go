package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

const msgLoadAssignments = "Failed to load assignments"

// AssignmentList is the card list of a unit's projects with an edit mode
// exposing per-card delete and rename.
type AssignmentList struct {
	UnitCode string `json:"unit_code"`
	Collection[domain.Project]

	EditMode bool `json:"edit_mode"`
	// Editing is the project shown in the rename modal, nil when closed.
	Editing *domain.Project `json:"editing,omitempty"`
	NewName string          `json:"new_name,omitempty"`
}

func NewAssignmentList(unitCode string) *AssignmentList {
	v := &AssignmentList{UnitCode: unitCode}
	v.reset()
	return v
}

// Mount resets the view and fetches the unit's projects.
func (v *AssignmentList) Mount(ctx context.Context, api ProjectsAPI) {
	v.reset()
	v.EditMode = false
	v.Editing = nil
	v.NewName = ""
	v.fetch(ctx, api)
}

func (v *AssignmentList) fetch(ctx context.Context, api ProjectsAPI) {
	v.beginLoad()
	projects, err := api.ListProjects(ctx, v.UnitCode)
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("list_projects", "error fetching assignments: %v", err)
	}
	v.resolve(projects, err, msgLoadAssignments)
}

func (v *AssignmentList) ToggleEditMode() {
	v.EditMode = !v.EditMode
}

// ModalOpen reports whether the rename modal is showing.
func (v *AssignmentList) ModalOpen() bool {
	return v.Editing != nil
}

func byProjectID(id int64) func(domain.Project) bool {
	return func(p domain.Project) bool { return p.ProjectID == id }
}

// Delete removes the project remotely and, only on success, locally.
// Failures are logged and leave the list untouched.
func (v *AssignmentList) Delete(ctx context.Context, api ProjectsAPI, projectID int64) error {
	project, ok := v.Find(byProjectID(projectID))
	if !ok {
		return domain.ErrUnknownProject
	}

	prev := v.beginMutation()
	defer v.endMutation(prev)

	if err := api.DeleteProject(ctx, v.UnitCode, project.ProjectName); err != nil {
		logging.NewLogger(ctx).LogErrorf("delete_project", "error deleting assignment %d: %v", projectID, err)
		return err
	}
	v.Remove(byProjectID(projectID))
	if v.Editing != nil && v.Editing.ProjectID == projectID {
		v.Cancel()
	}
	return nil
}

// BeginEdit opens the rename modal pre-filled with the current name.
func (v *AssignmentList) BeginEdit(projectID int64) error {
	project, ok := v.Find(byProjectID(projectID))
	if !ok {
		return domain.ErrUnknownProject
	}
	v.Editing = &project
	v.NewName = project.ProjectName
	return nil
}

func (v *AssignmentList) SetName(name string) {
	v.NewName = name
}

// Save renames the edited project (addressed by its old name) and patches
// the local copy once the API accepts it. The modal stays open on failure.
func (v *AssignmentList) Save(ctx context.Context, api ProjectsAPI) error {
	if v.Editing == nil {
		return domain.ErrNotEditing
	}
	editing := *v.Editing
	newName := v.NewName

	prev := v.beginMutation()
	defer v.endMutation(prev)

	update := domain.ProjectUpdate{ProjectName: newName}
	if err := api.UpdateProject(ctx, v.UnitCode, editing.ProjectName, update); err != nil {
		logging.NewLogger(ctx).LogErrorf("update_project", "error updating assignment %d: %v", editing.ProjectID, err)
		return err
	}
	v.Patch(byProjectID(editing.ProjectID), func(p *domain.Project) {
		p.ProjectName = newName
	})
	v.Editing = nil
	v.NewName = ""
	return nil
}

// Cancel closes the modal without calling the API.
func (v *AssignmentList) Cancel() {
	v.Editing = nil
	v.NewName = ""
}

// Create adds a project and re-fetches the list.
func (v *AssignmentList) Create(ctx context.Context, api ProjectsAPI, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("project: %w", domain.ErrEmptyName)
	}

	prev := v.beginMutation()
	if err := api.CreateProject(ctx, v.UnitCode, domain.NewProject{ProjectName: name}); err != nil {
		v.endMutation(prev)
		logging.NewLogger(ctx).LogErrorf("create_project", "error creating assignment %q: %v", name, err)
		return err
	}
	v.fetch(ctx, api)
	return nil
}
