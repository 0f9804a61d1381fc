// Package http serves the instructor dashboard. Page GETs mount a view from
// the course API; action POSTs apply to the view held in the caller's
// session and render the resulting state as HTML or JSON.
package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/session"
	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
)

// CourseAPI is everything the dashboard calls on the remote course API.
type CourseAPI interface {
	view.UnitsAPI
	view.ProjectsAPI
	view.SubmissionsAPI
	view.QuestionsAPI

	ListStudents(ctx context.Context, unitCode string) ([]domain.Student, error)
	AddStudent(ctx context.Context, unitCode string, student domain.Student) error
	ListCollaborators(ctx context.Context, unitCode string) ([]domain.Collaborator, error)
	AddCollaborator(ctx context.Context, unitCode string, ta domain.Collaborator) error
}

type Options struct {
	DefaultUnit    string
	DefaultProject string
	CookieName     string
	SessionTTL     time.Duration
	MaxUploadBytes int64
	SecureCookie   bool
}

type Handler struct {
	api   CourseAPI
	store session.Store
	opt   Options
}

func New(api CourseAPI, store session.Store, opt Options) *Handler {
	if opt.CookieName == "" {
		opt.CookieName = "dash_session"
	}
	if opt.SessionTTL <= 0 {
		opt.SessionTTL = 12 * time.Hour
	}
	return &Handler{api: api, store: store, opt: opt}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/units") })
	r.GET("/dashboard", h.defaultDashboard)

	units := r.Group("/units")
	units.GET("", h.mountUnits)
	units.POST("", h.createUnit)
	units.POST("/:unit/delete", h.deleteUnit)
	units.POST("/:unit/update", h.updateUnit)

	unit := units.Group("/:unit")
	unit.GET("/assignments", h.mountAssignments)
	unit.POST("/assignments", h.createAssignment)
	unit.POST("/assignments/edit-mode", h.toggleEditMode)
	unit.POST("/assignments/:id/delete", h.deleteAssignment)
	unit.POST("/assignments/:id/edit", h.beginEditAssignment)
	unit.POST("/assignments/:id/save", h.saveAssignment)
	unit.POST("/assignments/:id/cancel", h.cancelEditAssignment)

	unit.GET("/students", h.mountStudents)
	unit.POST("/students", h.addStudent)
	unit.GET("/collaborators", h.mountCollaborators)
	unit.POST("/collaborators", h.addCollaborator)

	project := unit.Group("/projects/:project")
	project.GET("/submissions", h.mountSubmissions)
	project.POST("/submissions/upload", h.uploadSubmission)
	project.POST("/submissions/select", h.toggleSubmission)
	project.POST("/submissions/select-all", h.toggleAllSubmissions)
	project.POST("/submissions/generate", h.generateQuestions)
	project.POST("/template/open", h.openTemplate)
	project.POST("/template/close", h.closeTemplate)

	project.GET("/template", h.mountTemplate)
	project.POST("/template", h.saveTemplate)
	project.GET("/question-bank", h.mountQuestionBank)
	project.POST("/question-bank", h.saveQuestionBank)
	project.POST("/generate-all", h.generateAllQuestions)
}

// defaultDashboard opens the submissions screen of the configured project.
func (h *Handler) defaultDashboard(c *gin.Context) {
	c.Redirect(http.StatusFound, submissionsPath(h.opt.DefaultUnit, h.opt.DefaultProject))
}

// statusFor maps an action error to the response status. The view state is
// rendered regardless.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, view.ErrUploadInProgress):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownProject),
		errors.Is(err, domain.ErrUnknownSubmission):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptySelection),
		errors.Is(err, domain.ErrNoFileChosen),
		errors.Is(err, domain.ErrNotZip),
		errors.Is(err, domain.ErrInvalidTemplate),
		errors.Is(err, domain.ErrNotEditing):
		return http.StatusBadRequest
	}
	// upstream failures
	return http.StatusBadGateway
}

func unitPath(unitCode string) string {
	return "/units/" + url.PathEscape(unitCode)
}

func projectPath(unitCode, projectName string) string {
	return unitPath(unitCode) + "/projects/" + url.PathEscape(projectName)
}

func submissionsPath(unitCode, projectName string) string {
	return projectPath(unitCode, projectName) + "/submissions"
}
