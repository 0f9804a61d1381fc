package view

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

const (
	msgFetchSubmissions = "Failed to fetch submissions."
	msgUploadFailed     = "Failed to upload file."
	msgGenerateFailed   = "Failed to generate questions."
	msgSelectSubmission = "Please select at least one submission."
	msgOnlyZip          = "Only .zip archives can be uploaded."
	msgQuestionsCreated = "Questions generated successfully."
	labelAddTemplate    = "Add Question Template"
	labelEditTemplate   = "Edit Question Template"
)

// AssignmentDashboard is the submissions screen of one project: upload,
// multi-select, question generation and the template overlay.
type AssignmentDashboard struct {
	UnitCode    string `json:"unit_code"`
	ProjectName string `json:"project_name"`
	Collection[domain.Submission]

	SelectedFile string  `json:"selected_file,omitempty"`
	Uploading    bool    `json:"uploading"`
	Selected     []int64 `json:"selected"`

	ShowTemplate  bool `json:"show_template"`
	TemplateSaved bool `json:"template_saved"`

	Notice        string          `json:"notice,omitempty"`
	LastGenerated json.RawMessage `json:"last_generated,omitempty"`
}

func NewAssignmentDashboard(unitCode, projectName string) *AssignmentDashboard {
	v := &AssignmentDashboard{UnitCode: unitCode, ProjectName: projectName}
	v.reset()
	v.Selected = []int64{}
	return v
}

// Mount resets every flag and fetches the submission list.
func (v *AssignmentDashboard) Mount(ctx context.Context, api SubmissionsAPI) {
	*v = *NewAssignmentDashboard(v.UnitCode, v.ProjectName)
	v.fetch(ctx, api)
}

func (v *AssignmentDashboard) fetch(ctx context.Context, api SubmissionsAPI) {
	v.beginLoad()
	subs, err := api.ListSubmissions(ctx, v.UnitCode, v.ProjectName)
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("list_submissions", "error fetching submissions: %v", err)
	}
	v.resolve(subs, err, msgFetchSubmissions)
	if err == nil {
		v.pruneSelection()
	}
}

// pruneSelection drops selected ids that are no longer listed.
func (v *AssignmentDashboard) pruneSelection() {
	kept := v.Selected[:0]
	for _, id := range v.Selected {
		if _, ok := v.Find(bySubmissionID(id)); ok {
			kept = append(kept, id)
		}
	}
	v.Selected = kept
}

func bySubmissionID(id int64) func(domain.Submission) bool {
	return func(s domain.Submission) bool { return s.SubmissionID == id }
}

// ShowUploadControl reports whether the upload picker is offered, which is
// only while no submission exists.
func (v *AssignmentDashboard) ShowUploadControl() bool {
	return len(v.Items) == 0
}

// ChooseFile records the picked archive and clears any error.
func (v *AssignmentDashboard) ChooseFile(fileName string) error {
	if !strings.EqualFold(filepath.Ext(fileName), ".zip") {
		v.Error = msgOnlyZip
		return domain.ErrNotZip
	}
	v.SelectedFile = fileName
	v.Error = ""
	return nil
}

// BeginUpload raises the uploading flag. It fails while another upload of
// this view is in flight or when no file was chosen.
func (v *AssignmentDashboard) BeginUpload() error {
	if v.SelectedFile == "" {
		return domain.ErrNoFileChosen
	}
	if v.Uploading {
		return ErrUploadInProgress
	}
	v.Uploading = true
	return nil
}

// CompleteUpload posts the archive and re-fetches the list on success.
// The uploading flag is always lowered.
func (v *AssignmentDashboard) CompleteUpload(ctx context.Context, api SubmissionsAPI, content io.Reader) error {
	defer func() { v.Uploading = false }()

	if err := api.UploadSubmission(ctx, v.UnitCode, v.ProjectName, v.SelectedFile, content); err != nil {
		logging.NewLogger(ctx).LogErrorf("upload_submission", "error uploading file %q: %v", v.SelectedFile, err)
		v.Error = msgUploadFailed
		return err
	}
	v.SelectedFile = ""
	v.fetch(ctx, api)
	return nil
}

// Upload is BeginUpload followed by CompleteUpload.
func (v *AssignmentDashboard) Upload(ctx context.Context, api SubmissionsAPI, content io.Reader) error {
	if err := v.BeginUpload(); err != nil {
		return err
	}
	return v.CompleteUpload(ctx, api, content)
}

func (v *AssignmentDashboard) IsSelected(id int64) bool {
	return slices.Contains(v.Selected, id)
}

// ToggleSubmission flips one row checkbox. Only listed submissions can be
// selected; a selected id can always be cleared.
func (v *AssignmentDashboard) ToggleSubmission(id int64) error {
	if i := slices.Index(v.Selected, id); i >= 0 {
		v.Selected = slices.Delete(v.Selected, i, i+1)
		return nil
	}
	if _, ok := v.Find(bySubmissionID(id)); !ok {
		return domain.ErrUnknownSubmission
	}
	v.Selected = append(v.Selected, id)
	return nil
}

// AllSelected drives the header checkbox: every listed row is selected.
func (v *AssignmentDashboard) AllSelected() bool {
	for _, s := range v.Items {
		if !v.IsSelected(s.SubmissionID) {
			return false
		}
	}
	return true
}

// ToggleAll selects every row unless all are selected, in which case it
// clears the selection.
func (v *AssignmentDashboard) ToggleAll() {
	if v.AllSelected() {
		v.Selected = []int64{}
		return
	}
	ids := make([]int64, 0, len(v.Items))
	for _, s := range v.Items {
		ids = append(ids, s.SubmissionID)
	}
	v.Selected = ids
}

// GenerateQuestions posts the selected submission ids. With an empty
// selection it only sets the validation message.
func (v *AssignmentDashboard) GenerateQuestions(ctx context.Context, api SubmissionsAPI) error {
	v.Notice = ""
	if len(v.Selected) == 0 {
		v.Error = msgSelectSubmission
		return domain.ErrEmptySelection
	}

	logger := logging.NewLogger(ctx)
	ids := slices.Clone(v.Selected)
	doc, err := api.GenerateQuestions(ctx, v.UnitCode, v.ProjectName, ids)
	if err != nil {
		logger.LogErrorf("generate_questions", "error generating questions: %v", err)
		v.Error = msgGenerateFailed
		return err
	}
	logger.LogInfof("generate_questions", "questions generated for %d submissions", len(ids))
	v.Notice = msgQuestionsCreated
	v.LastGenerated = compactJSON(doc)
	return nil
}

// OpenTemplate shows the question template overlay. The first open flips
// the button hint to "Edit".
func (v *AssignmentDashboard) OpenTemplate() {
	v.ShowTemplate = true
	if !v.TemplateSaved {
		v.TemplateSaved = true
	}
}

// CloseTemplate hides the overlay and resets the hint.
func (v *AssignmentDashboard) CloseTemplate() {
	v.ShowTemplate = false
	v.TemplateSaved = false
}

func (v *AssignmentDashboard) TemplateButtonLabel() string {
	if v.TemplateSaved {
		return labelEditTemplate
	}
	return labelAddTemplate
}

func compactJSON(doc []byte) json.RawMessage {
	if len(bytes.TrimSpace(doc)) == 0 {
		return nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, doc); err != nil {
		return nil
	}
	return buf.Bytes()
}
