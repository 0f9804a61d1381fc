package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/dashboard/view"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

func (h *Handler) renderSubmissions(c *gin.Context, status int, v *view.AssignmentDashboard) {
	render(c, status, "submissions.html", page{Title: v.ProjectName, View: v})
}

func (h *Handler) submissions(c *gin.Context, st *sessionState) *view.AssignmentDashboard {
	v := st.dashboard(c.Param("unit"), c.Param("project"))
	if v.Phase == view.PhaseIdle {
		v.Mount(c.Request.Context(), h.api)
	}
	return v
}

func (h *Handler) submissionAction(c *gin.Context, fn func(v *view.AssignmentDashboard) error) {
	id, st := h.loadSession(c)
	v := h.submissions(c, st)
	err := fn(v)
	h.saveSession(c, id, st)
	h.renderSubmissions(c, statusFor(err), v)
}

func (h *Handler) mountSubmissions(c *gin.Context) {
	id, st := h.loadSession(c)
	v := st.dashboard(c.Param("unit"), c.Param("project"))
	v.Mount(c.Request.Context(), h.api)
	h.saveSession(c, id, st)
	h.renderSubmissions(c, statusFor(nil), v)
}

// multipartOverhead is allowed on top of the upload limit for part headers
// and boundaries.
const multipartOverhead = 64 << 10

// uploadSubmission forwards the "file" part to the course API. The raised
// uploading flag is saved before the upstream call, so a second upload on
// the same session is refused until this one finishes. Every save after
// that point is detached from the request so the flag always comes down.
func (h *Handler) uploadSubmission(c *gin.Context) {
	ctx := c.Request.Context()
	id, st := h.loadSession(c)
	v := h.submissions(c, st)

	if h.opt.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.opt.MaxUploadBytes+multipartOverhead)
	}
	fh, err := c.FormFile("file")
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) || (err == nil && h.opt.MaxUploadBytes > 0 && fh.Size > h.opt.MaxUploadBytes) {
		logging.NewLogger(ctx).LogWarnf("upload_submission", "rejected upload over %d bytes", h.opt.MaxUploadBytes)
		c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
			"ok":    false,
			"error": fmt.Sprintf("file exceeds %d bytes", h.opt.MaxUploadBytes),
		})
		return
	}
	if err != nil {
		h.saveSession(c, id, st)
		h.renderSubmissions(c, statusFor(domain.ErrNoFileChosen), v)
		return
	}
	if err := v.ChooseFile(fh.Filename); err != nil {
		h.saveSession(c, id, st)
		h.renderSubmissions(c, statusFor(err), v)
		return
	}
	if err := v.BeginUpload(); err != nil {
		h.renderSubmissions(c, statusFor(err), v)
		return
	}
	h.saveSession(c, id, st)

	f, err := fh.Open()
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("upload_submission", "failed to open uploaded file: %v", err)
		v.Uploading = false
		h.saveSessionDetached(c, id, st)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable file"})
		return
	}
	defer f.Close()

	err = v.CompleteUpload(ctx, h.api, f)
	h.saveSessionDetached(c, id, st)
	h.renderSubmissions(c, statusFor(err), v)
}

type selectForm struct {
	// pointer so that id 0 still counts as present
	SubmissionID *int64 `form:"submission_id" json:"submission_id" binding:"required"`
}

func (h *Handler) toggleSubmission(c *gin.Context) {
	var form selectForm
	if err := c.ShouldBind(&form); err != nil {
		abortBadRequest(c, err)
		return
	}
	h.submissionAction(c, func(v *view.AssignmentDashboard) error {
		return v.ToggleSubmission(*form.SubmissionID)
	})
}

func (h *Handler) toggleAllSubmissions(c *gin.Context) {
	h.submissionAction(c, func(v *view.AssignmentDashboard) error {
		v.ToggleAll()
		return nil
	})
}

func (h *Handler) generateQuestions(c *gin.Context) {
	h.submissionAction(c, func(v *view.AssignmentDashboard) error {
		return v.GenerateQuestions(c.Request.Context(), h.api)
	})
}

func (h *Handler) openTemplate(c *gin.Context) {
	h.submissionAction(c, func(v *view.AssignmentDashboard) error {
		v.OpenTemplate()
		return nil
	})
}

func (h *Handler) closeTemplate(c *gin.Context) {
	h.submissionAction(c, func(v *view.AssignmentDashboard) error {
		v.CloseTemplate()
		return nil
	})
}
