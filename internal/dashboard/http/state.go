package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

// sessionState is everything one browser has mounted. Views are keyed by
// unit code, or by unit code and project name.
type sessionState struct {
	Units         *view.UnitList                       `json:"units,omitempty"`
	Assignments   map[string]*view.AssignmentList      `json:"assignments,omitempty"`
	Dashboards    map[string]*view.AssignmentDashboard `json:"dashboards,omitempty"`
	Editors       map[string]*view.QuestionEditor      `json:"editors,omitempty"`
	Students      map[string]*view.StudentRoster       `json:"students,omitempty"`
	Collaborators map[string]*view.CollaboratorRoster  `json:"collaborators,omitempty"`
}

func projectKey(unitCode, projectName string) string {
	return projectPath(unitCode, projectName)
}

func (s *sessionState) unitList() *view.UnitList {
	if s.Units == nil {
		s.Units = view.NewUnitList()
	}
	return s.Units
}

func (s *sessionState) assignmentList(unitCode string) *view.AssignmentList {
	if s.Assignments == nil {
		s.Assignments = make(map[string]*view.AssignmentList)
	}
	v, ok := s.Assignments[unitCode]
	if !ok {
		v = view.NewAssignmentList(unitCode)
		s.Assignments[unitCode] = v
	}
	return v
}

func (s *sessionState) dashboard(unitCode, projectName string) *view.AssignmentDashboard {
	if s.Dashboards == nil {
		s.Dashboards = make(map[string]*view.AssignmentDashboard)
	}
	key := projectKey(unitCode, projectName)
	v, ok := s.Dashboards[key]
	if !ok {
		v = view.NewAssignmentDashboard(unitCode, projectName)
		s.Dashboards[key] = v
	}
	return v
}

func (s *sessionState) editor(unitCode, projectName string) *view.QuestionEditor {
	if s.Editors == nil {
		s.Editors = make(map[string]*view.QuestionEditor)
	}
	key := projectKey(unitCode, projectName)
	v, ok := s.Editors[key]
	if !ok {
		v = view.NewQuestionEditor(unitCode, projectName)
		s.Editors[key] = v
	}
	return v
}

func (s *sessionState) studentRoster(unitCode string) *view.StudentRoster {
	if s.Students == nil {
		s.Students = make(map[string]*view.StudentRoster)
	}
	v, ok := s.Students[unitCode]
	if !ok {
		v = view.NewStudentRoster(unitCode)
		s.Students[unitCode] = v
	}
	return v
}

func (s *sessionState) collaboratorRoster(unitCode string) *view.CollaboratorRoster {
	if s.Collaborators == nil {
		s.Collaborators = make(map[string]*view.CollaboratorRoster)
	}
	v, ok := s.Collaborators[unitCode]
	if !ok {
		v = view.NewCollaboratorRoster(unitCode)
		s.Collaborators[unitCode] = v
	}
	return v
}

// loadSession returns the caller's session id and state, issuing a new id
// when the cookie is missing or malformed. A store failure degrades to an
// empty state.
func (h *Handler) loadSession(c *gin.Context) (string, *sessionState) {
	ctx := c.Request.Context()
	st := &sessionState{}

	id, err := c.Cookie(h.opt.CookieName)
	if err != nil || uuid.Validate(id) != nil {
		id = uuid.NewString()
	} else if _, err := h.store.Load(ctx, id, st); err != nil {
		logging.NewLogger(ctx).LogWarnf("session_load", "session %s unreadable, starting fresh: %v", id, err)
		st = &sessionState{}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.opt.CookieName, id, int(h.opt.SessionTTL.Seconds()), "/", "", h.opt.SecureCookie, true)
	return id, st
}

// detachedSaveTimeout bounds a save that outlives its request.
const detachedSaveTimeout = 5 * time.Second

func (h *Handler) saveSession(c *gin.Context, id string, st *sessionState) {
	h.persist(c.Request.Context(), id, st)
}

// saveSessionDetached saves even when the client has already gone away.
// It is used after a flag was persisted that must be lowered again.
func (h *Handler) saveSessionDetached(c *gin.Context, id string, st *sessionState) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), detachedSaveTimeout)
	defer cancel()
	h.persist(ctx, id, st)
}

func (h *Handler) persist(ctx context.Context, id string, st *sessionState) {
	if err := h.store.Save(ctx, id, st); err != nil {
		logging.NewLogger(ctx).LogErrorf("session_save", "failed to save session %s: %v", id, err)
	}
}
