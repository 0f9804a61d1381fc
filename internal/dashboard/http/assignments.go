package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
)

type assignmentForm struct {
	Name string `form:"name" json:"name"`
}

func (h *Handler) renderAssignments(c *gin.Context, status int, v *view.AssignmentList) {
	render(c, status, "assignments.html", page{Title: "Assignments · " + v.UnitCode, View: v})
}

func (h *Handler) assignments(c *gin.Context, st *sessionState) *view.AssignmentList {
	v := st.assignmentList(c.Param("unit"))
	if v.Phase == view.PhaseIdle {
		v.Mount(c.Request.Context(), h.api)
	}
	return v
}

// assignmentAction runs fn against the session's assignment list and
// renders the result.
func (h *Handler) assignmentAction(c *gin.Context, fn func(v *view.AssignmentList) error) {
	id, st := h.loadSession(c)
	v := h.assignments(c, st)
	err := fn(v)
	h.saveSession(c, id, st)
	h.renderAssignments(c, statusFor(err), v)
}

func projectIDParam(c *gin.Context) (int64, bool) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		abortBadRequest(c, err)
		return 0, false
	}
	return projectID, true
}

func (h *Handler) mountAssignments(c *gin.Context) {
	id, st := h.loadSession(c)
	v := st.assignmentList(c.Param("unit"))
	v.Mount(c.Request.Context(), h.api)
	h.saveSession(c, id, st)
	h.renderAssignments(c, statusFor(nil), v)
}

func (h *Handler) createAssignment(c *gin.Context) {
	var form assignmentForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		return v.Create(c.Request.Context(), h.api, form.Name)
	})
}

func (h *Handler) toggleEditMode(c *gin.Context) {
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		v.ToggleEditMode()
		return nil
	})
}

func (h *Handler) deleteAssignment(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		return v.Delete(c.Request.Context(), h.api, projectID)
	})
}

func (h *Handler) beginEditAssignment(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		return v.BeginEdit(projectID)
	})
}

// saveAssignment accepts the new name in the same request, so a client may
// open and save in one step.
func (h *Handler) saveAssignment(c *gin.Context) {
	projectID, ok := projectIDParam(c)
	if !ok {
		return
	}
	var form assignmentForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		if v.Editing == nil || v.Editing.ProjectID != projectID {
			if err := v.BeginEdit(projectID); err != nil {
				return err
			}
		}
		if form.Name != "" {
			v.SetName(form.Name)
		}
		return v.Save(c.Request.Context(), h.api)
	})
}

func (h *Handler) cancelEditAssignment(c *gin.Context) {
	h.assignmentAction(c, func(v *view.AssignmentList) error {
		v.Cancel()
		return nil
	})
}
