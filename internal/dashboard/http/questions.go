package http

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
)

const (
	tabTemplate = "template"
	tabBank     = "question-bank"
)

func (h *Handler) renderQuestions(c *gin.Context, status int, tab string, v *view.QuestionEditor) {
	render(c, status, "questions.html", page{Title: "Questions · " + v.ProjectName, Tab: tab, View: v})
}

func (h *Handler) questionEditor(c *gin.Context, st *sessionState) *view.QuestionEditor {
	v := st.editor(c.Param("unit"), c.Param("project"))
	if v.Phase == view.PhaseIdle {
		v.Mount(c.Request.Context(), h.api)
	}
	return v
}

// documentText reads the edited document: the raw body for JSON requests,
// the "document" field for forms.
func documentText(c *gin.Context) (string, error) {
	if c.ContentType() == binding.MIMEJSON {
		raw, err := io.ReadAll(c.Request.Body)
		return string(raw), err
	}
	return c.PostForm("document"), nil
}

func (h *Handler) mountQuestions(c *gin.Context, tab string) {
	id, st := h.loadSession(c)
	v := st.editor(c.Param("unit"), c.Param("project"))
	v.Mount(c.Request.Context(), h.api)
	h.saveSession(c, id, st)
	h.renderQuestions(c, statusFor(nil), tab, v)
}

func (h *Handler) mountTemplate(c *gin.Context)     { h.mountQuestions(c, tabTemplate) }
func (h *Handler) mountQuestionBank(c *gin.Context) { h.mountQuestions(c, tabBank) }

func (h *Handler) saveDocument(c *gin.Context, tab string) {
	text, err := documentText(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	id, st := h.loadSession(c)
	v := h.questionEditor(c, st)
	if tab == tabBank {
		err = v.SaveBank(c.Request.Context(), h.api, text)
	} else {
		err = v.SaveTemplate(c.Request.Context(), h.api, text)
	}
	h.saveSession(c, id, st)
	h.renderQuestions(c, statusFor(err), tab, v)
}

func (h *Handler) saveTemplate(c *gin.Context)     { h.saveDocument(c, tabTemplate) }
func (h *Handler) saveQuestionBank(c *gin.Context) { h.saveDocument(c, tabBank) }

func (h *Handler) generateAllQuestions(c *gin.Context) {
	id, st := h.loadSession(c)
	v := h.questionEditor(c, st)
	err := v.GenerateAll(c.Request.Context(), h.api)
	h.saveSession(c, id, st)
	h.renderQuestions(c, statusFor(err), tabBank, v)
}
