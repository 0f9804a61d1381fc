package domain

import "encoding/json"

// Unit is a course offering that owns projects, students and collaborators.
type Unit struct {
	UnitCode    string `json:"unit_code"`
	UnitName    string `json:"unit_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// UnitUpdate is the PUT body for a unit. Empty fields are left to the API.
type UnitUpdate struct {
	UnitName    string `json:"unit_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Project is a gradable assignment within a unit. The API addresses it by
// name; the dashboard keys local state by ProjectID.
type Project struct {
	ProjectID   int64  `json:"project_id"`
	ProjectName string `json:"project_name"`
	UnitCode    string `json:"unit_code"`
}

// DisplayName falls back to a placeholder for unnamed projects.
func (p Project) DisplayName() string {
	if p.ProjectName == "" {
		return "Unnamed Project"
	}
	return p.ProjectName
}

type NewProject struct {
	ProjectName string `json:"project_name"`
}

type ProjectUpdate struct {
	ProjectName string `json:"project_name"`
}

// Submission is one uploaded archive. Status values are not validated.
type Submission struct {
	SubmissionID       int64  `json:"submission_id"`
	SubmissionFileName string `json:"submission_file_name"`
	SubmissionStatus   string `json:"submission_status"`
}

// SubmissionList is the envelope returned by the files endpoint.
type SubmissionList struct {
	SubmissionFiles []Submission `json:"submission_files"`
}

type Student struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
}

// Collaborator is a teaching assistant with access to a unit.
type Collaborator struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// GenerateQuestionsRequest selects the submissions to generate questions for.
type GenerateQuestionsRequest struct {
	SubmissionIDs []int64 `json:"submission_ids"`
}

// Document is a free-form JSON payload passed through untouched
// (question templates, question banks, generation results).
type Document = json.RawMessage
