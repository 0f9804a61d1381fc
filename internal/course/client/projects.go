package client

import (
	"context"
	"net/http"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

// ListProjects fetches the projects of a unit
func (c *Client) ListProjects(ctx context.Context, unitCode string) ([]domain.Project, error) {
	var projects []domain.Project
	if err := c.doJSON(ctx, "list_projects", http.MethodGet, c.endpoints.Projects(unitCode), nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// CreateProject creates a project in a unit
func (c *Client) CreateProject(ctx context.Context, unitCode string, project domain.NewProject) error {
	return c.doJSON(ctx, "create_project", http.MethodPost, c.endpoints.Projects(unitCode), project, nil)
}

// UpdateProject renames the project currently called projectName
func (c *Client) UpdateProject(ctx context.Context, unitCode, projectName string, update domain.ProjectUpdate) error {
	return c.doJSON(ctx, "update_project", http.MethodPut, c.endpoints.Project(unitCode, projectName), update, nil)
}

// DeleteProject deletes a project by name
func (c *Client) DeleteProject(ctx context.Context, unitCode, projectName string) error {
	return c.doJSON(ctx, "delete_project", http.MethodDelete, c.endpoints.Project(unitCode, projectName), nil, nil)
}
