package http

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

type studentForm struct {
	StudentID string `form:"student_id" json:"student_id" binding:"required"`
	Name      string `form:"name" json:"name"`
	Email     string `form:"email" json:"email" binding:"omitempty,email"`
}

type collaboratorForm struct {
	Email string `form:"email" json:"email" binding:"required,email"`
	Name  string `form:"name" json:"name"`
}

func (h *Handler) renderRoster(c *gin.Context, status int, title string, v any) {
	render(c, status, "roster.html", page{Title: title, View: v})
}

func (h *Handler) listStudents(unitCode string) func(context.Context) ([]domain.Student, error) {
	return func(ctx context.Context) ([]domain.Student, error) { return h.api.ListStudents(ctx, unitCode) }
}

func (h *Handler) listCollaborators(unitCode string) func(context.Context) ([]domain.Collaborator, error) {
	return func(ctx context.Context) ([]domain.Collaborator, error) { return h.api.ListCollaborators(ctx, unitCode) }
}

func (h *Handler) mountStudents(c *gin.Context) {
	unitCode := c.Param("unit")
	id, st := h.loadSession(c)
	v := st.studentRoster(unitCode)
	v.Mount(c.Request.Context(), h.listStudents(unitCode))
	h.saveSession(c, id, st)
	h.renderRoster(c, statusFor(nil), "Students · "+unitCode, v)
}

func (h *Handler) addStudent(c *gin.Context) {
	var form studentForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	unitCode := c.Param("unit")
	student := domain.Student{
		StudentID: strings.TrimSpace(form.StudentID),
		Name:      strings.TrimSpace(form.Name),
		Email:     strings.TrimSpace(form.Email),
	}

	id, st := h.loadSession(c)
	v := st.studentRoster(unitCode)
	add := func(ctx context.Context) error { return h.api.AddStudent(ctx, unitCode, student) }
	err := v.Add(c.Request.Context(), add, h.listStudents(unitCode))
	h.saveSession(c, id, st)
	h.renderRoster(c, statusFor(err), "Students · "+unitCode, v)
}

func (h *Handler) mountCollaborators(c *gin.Context) {
	unitCode := c.Param("unit")
	id, st := h.loadSession(c)
	v := st.collaboratorRoster(unitCode)
	v.Mount(c.Request.Context(), h.listCollaborators(unitCode))
	h.saveSession(c, id, st)
	h.renderRoster(c, statusFor(nil), "Collaborators · "+unitCode, v)
}

func (h *Handler) addCollaborator(c *gin.Context) {
	var form collaboratorForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	unitCode := c.Param("unit")
	ta := domain.Collaborator{Email: strings.TrimSpace(form.Email), Name: strings.TrimSpace(form.Name)}

	id, st := h.loadSession(c)
	v := st.collaboratorRoster(unitCode)
	add := func(ctx context.Context) error { return h.api.AddCollaborator(ctx, unitCode, ta) }
	err := v.Add(c.Request.Context(), add, h.listCollaborators(unitCode))
	h.saveSession(c, id, st)
	h.renderRoster(c, statusFor(err), "Collaborators · "+unitCode, v)
}
