// Package endpoints maps course resource identifiers to fully-qualified URLs
// on the remote course API.
//
// Every identifier is escaped as a single path segment, so a project named
// "A/B" yields ".../projects/A%2FB". Identifiers are not validated.
package endpoints

import (
	"net/url"
	"strings"
)

// Endpoints builds URLs against one base URL. The zero value builds
// host-relative URLs.
type Endpoints struct {
	base string
}

// New returns a builder for baseURL. A trailing slash is ignored.
func New(baseURL string) Endpoints {
	return Endpoints{base: strings.TrimRight(baseURL, "/")}
}

// Base returns the base URL without a trailing slash.
func (e Endpoints) Base() string {
	return e.base
}

// Units is the collection URL used by GET (list) and POST (create).
func (e Endpoints) Units() string {
	return e.base + "/units"
}

// Unit is the item URL used by DELETE and PUT.
func (e Endpoints) Unit(unitCode string) string {
	return e.Units() + "/" + seg(unitCode)
}

func (e Endpoints) Projects(unitCode string) string {
	return e.Unit(unitCode) + "/projects"
}

func (e Endpoints) Project(unitCode, projectName string) string {
	return e.Projects(unitCode) + "/" + seg(projectName)
}

func (e Endpoints) QuestionTemplate(unitCode, projectName string) string {
	return e.Project(unitCode, projectName) + "/template"
}

func (e Endpoints) QuestionBank(unitCode, projectName string) string {
	return e.Project(unitCode, projectName) + "/question_bank"
}

// GenerateAllQuestions triggers question generation for every submission of a project.
func (e Endpoints) GenerateAllQuestions(unitCode, projectName string) string {
	return e.Project(unitCode, projectName) + "/generate_questions"
}

func (e Endpoints) Students(unitCode string) string {
	return e.Unit(unitCode) + "/students"
}

// Collaborators lists and adds teaching assistants of a unit.
func (e Endpoints) Collaborators(unitCode string) string {
	return e.Unit(unitCode) + "/collaborators"
}

// SubmissionFiles lists (GET) and uploads (POST multipart) submission archives.
func (e Endpoints) SubmissionFiles(unitCode, projectName string) string {
	return e.Project(unitCode, projectName) + "/files"
}

// GenerateSubmissionQuestions generates questions for selected submissions.
// Note the hyphen: the submission service spells it differently from
// GenerateAllQuestions.
func (e Endpoints) GenerateSubmissionQuestions(unitCode, projectName string) string {
	return e.Project(unitCode, projectName) + "/generate-questions"
}

func seg(s string) string {
	return url.PathEscape(s)
}
