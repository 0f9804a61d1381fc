package client

import (
	"context"
	"net/http"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

func (c *Client) ListStudents(ctx context.Context, unitCode string) ([]domain.Student, error) {
	var students []domain.Student
	if err := c.doJSON(ctx, "list_students", http.MethodGet, c.endpoints.Students(unitCode), nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

func (c *Client) AddStudent(ctx context.Context, unitCode string, student domain.Student) error {
	return c.doJSON(ctx, "add_student", http.MethodPost, c.endpoints.Students(unitCode), student, nil)
}

func (c *Client) ListCollaborators(ctx context.Context, unitCode string) ([]domain.Collaborator, error) {
	var tas []domain.Collaborator
	if err := c.doJSON(ctx, "list_collaborators", http.MethodGet, c.endpoints.Collaborators(unitCode), nil, &tas); err != nil {
		return nil, err
	}
	return tas, nil
}

func (c *Client) AddCollaborator(ctx context.Context, unitCode string, ta domain.Collaborator) error {
	return c.doJSON(ctx, "add_collaborator", http.MethodPost, c.endpoints.Collaborators(unitCode), ta, nil)
}
