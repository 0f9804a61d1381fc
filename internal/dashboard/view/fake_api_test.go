package view

import (
	"context"
	"errors"
	"io"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

var errUpstream = errors.New("upstream unavailable")

// fakeAPI records calls and serves canned data for every view.
type fakeAPI struct {
	calls []string

	units    []domain.Unit
	projects []domain.Project
	subs     []domain.Submission
	template domain.Document
	bank     domain.Document

	listErr     error
	mutateErr   error
	uploadErr   error
	generateErr error

	lastUpdate      domain.ProjectUpdate
	lastUpdateName  string
	lastDeletedName string
	lastGenerateIDs []int64
	lastUploadName  string
	lastUploadBody  string
	lastSavedDoc    string

	// onUpload lets a test change what the next list call returns.
	onUpload func()
}

func (f *fakeAPI) record(call string) { f.calls = append(f.calls, call) }

func (f *fakeAPI) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	f.record("ListUnits")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Unit(nil), f.units...), nil
}

func (f *fakeAPI) CreateUnit(ctx context.Context, unit domain.Unit) error {
	f.record("CreateUnit")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.units = append(f.units, unit)
	return nil
}

func (f *fakeAPI) UpdateUnit(ctx context.Context, unitCode string, update domain.UnitUpdate) error {
	f.record("UpdateUnit")
	return f.mutateErr
}

func (f *fakeAPI) DeleteUnit(ctx context.Context, unitCode string) error {
	f.record("DeleteUnit")
	return f.mutateErr
}

func (f *fakeAPI) ListProjects(ctx context.Context, unitCode string) ([]domain.Project, error) {
	f.record("ListProjects")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Project(nil), f.projects...), nil
}

func (f *fakeAPI) CreateProject(ctx context.Context, unitCode string, project domain.NewProject) error {
	f.record("CreateProject")
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.projects = append(f.projects, domain.Project{ProjectID: int64(len(f.projects) + 100), ProjectName: project.ProjectName, UnitCode: unitCode})
	return nil
}

func (f *fakeAPI) UpdateProject(ctx context.Context, unitCode, projectName string, update domain.ProjectUpdate) error {
	f.record("UpdateProject")
	f.lastUpdateName = projectName
	f.lastUpdate = update
	return f.mutateErr
}

func (f *fakeAPI) DeleteProject(ctx context.Context, unitCode, projectName string) error {
	f.record("DeleteProject")
	f.lastDeletedName = projectName
	return f.mutateErr
}

func (f *fakeAPI) ListSubmissions(ctx context.Context, unitCode, projectName string) ([]domain.Submission, error) {
	f.record("ListSubmissions")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.Submission(nil), f.subs...), nil
}

func (f *fakeAPI) UploadSubmission(ctx context.Context, unitCode, projectName, fileName string, content io.Reader) error {
	f.record("UploadSubmission")
	data, _ := io.ReadAll(content)
	f.lastUploadName = fileName
	f.lastUploadBody = string(data)
	if f.uploadErr != nil {
		return f.uploadErr
	}
	if f.onUpload != nil {
		f.onUpload()
	}
	return nil
}

func (f *fakeAPI) GenerateQuestions(ctx context.Context, unitCode, projectName string, ids []int64) (domain.Document, error) {
	f.record("GenerateQuestions")
	f.lastGenerateIDs = ids
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return domain.Document(`{ "status": "queued" }`), nil
}

func (f *fakeAPI) GetQuestionTemplate(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	f.record("GetQuestionTemplate")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.template, nil
}

func (f *fakeAPI) SaveQuestionTemplate(ctx context.Context, unitCode, projectName string, doc domain.Document) error {
	f.record("SaveQuestionTemplate")
	f.lastSavedDoc = string(doc)
	return f.mutateErr
}

func (f *fakeAPI) GetQuestionBank(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	f.record("GetQuestionBank")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bank, nil
}

func (f *fakeAPI) SaveQuestionBank(ctx context.Context, unitCode, projectName string, doc domain.Document) error {
	f.record("SaveQuestionBank")
	f.lastSavedDoc = string(doc)
	return f.mutateErr
}

func (f *fakeAPI) GenerateAllQuestions(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	f.record("GenerateAllQuestions")
	if f.generateErr != nil {
		return nil, f.generateErr
	}
	return domain.Document(`{"generated":4}`), nil
}

func (f *fakeAPI) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}
