package view

import (
	"context"
	"io"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

// UnitsAPI is the slice of the course API the unit list needs.
type UnitsAPI interface {
	ListUnits(ctx context.Context) ([]domain.Unit, error)
	CreateUnit(ctx context.Context, unit domain.Unit) error
	UpdateUnit(ctx context.Context, unitCode string, update domain.UnitUpdate) error
	DeleteUnit(ctx context.Context, unitCode string) error
}

type ProjectsAPI interface {
	ListProjects(ctx context.Context, unitCode string) ([]domain.Project, error)
	CreateProject(ctx context.Context, unitCode string, project domain.NewProject) error
	UpdateProject(ctx context.Context, unitCode, projectName string, update domain.ProjectUpdate) error
	DeleteProject(ctx context.Context, unitCode, projectName string) error
}

type SubmissionsAPI interface {
	ListSubmissions(ctx context.Context, unitCode, projectName string) ([]domain.Submission, error)
	UploadSubmission(ctx context.Context, unitCode, projectName, fileName string, content io.Reader) error
	GenerateQuestions(ctx context.Context, unitCode, projectName string, submissionIDs []int64) (domain.Document, error)
}

type QuestionsAPI interface {
	GetQuestionTemplate(ctx context.Context, unitCode, projectName string) (domain.Document, error)
	SaveQuestionTemplate(ctx context.Context, unitCode, projectName string, doc domain.Document) error
	GetQuestionBank(ctx context.Context, unitCode, projectName string) (domain.Document, error)
	SaveQuestionBank(ctx context.Context, unitCode, projectName string, doc domain.Document) error
	GenerateAllQuestions(ctx context.Context, unitCode, projectName string) (domain.Document, error)
}
