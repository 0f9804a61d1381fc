package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

func twoSubmissions() []domain.Submission {
	return []domain.Submission{
		{SubmissionID: 11, SubmissionFileName: "alice.zip", SubmissionStatus: "uploaded"},
		{SubmissionID: 12, SubmissionFileName: "bob.zip", SubmissionStatus: "processed"},
	}
}

func mountedDashboard(t *testing.T, api *fakeAPI) *AssignmentDashboard {
	t.Helper()
	v := NewAssignmentDashboard("CS101", "Fastest Scheduling Algorithm")
	v.Mount(context.Background(), api)
	return v
}

func TestAssignmentDashboard_Mount(t *testing.T) {
	t.Run("lists submissions with nothing selected", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions()}
		v := mountedDashboard(t, api)

		assert.Equal(t, PhaseLoaded, v.Phase)
		assert.Equal(t, 2, v.Len())
		assert.Empty(t, v.Selected)
		assert.False(t, v.ShowUploadControl())
		assert.Equal(t, labelAddTemplate, v.TemplateButtonLabel())
	})

	t.Run("empty list offers the upload control", func(t *testing.T) {
		v := mountedDashboard(t, &fakeAPI{})
		assert.True(t, v.ShowUploadControl())
		assert.NotNil(t, v.Items)
	})

	t.Run("fetch failure", func(t *testing.T) {
		v := mountedDashboard(t, &fakeAPI{listErr: errUpstream})
		assert.Equal(t, PhaseError, v.Phase)
		assert.Equal(t, msgFetchSubmissions, v.Error)
	})

	t.Run("remount resets flags", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions()}
		v := mountedDashboard(t, api)
		v.ToggleAll()
		v.OpenTemplate()

		v.Mount(context.Background(), api)
		assert.Empty(t, v.Selected)
		assert.False(t, v.ShowTemplate)
		assert.False(t, v.TemplateSaved)
	})
}

func TestAssignmentDashboard_Selection(t *testing.T) {
	api := &fakeAPI{subs: twoSubmissions()}
	v := mountedDashboard(t, api)

	require.NoError(t, v.ToggleSubmission(12))
	assert.True(t, v.IsSelected(12))
	assert.False(t, v.AllSelected())

	v.ToggleAll()
	assert.ElementsMatch(t, []int64{11, 12}, v.Selected)
	assert.True(t, v.AllSelected())

	v.ToggleAll()
	assert.Empty(t, v.Selected)

	require.NoError(t, v.ToggleSubmission(11))
	require.NoError(t, v.ToggleSubmission(11))
	assert.False(t, v.IsSelected(11))
}

func TestAssignmentDashboard_UnknownSubmissionIsRefused(t *testing.T) {
	api := &fakeAPI{subs: twoSubmissions()}
	v := mountedDashboard(t, api)

	assert.ErrorIs(t, v.ToggleSubmission(999), domain.ErrUnknownSubmission)
	assert.Empty(t, v.Selected)

	// one listed row plus a stray id must not light the header checkbox
	require.NoError(t, v.ToggleSubmission(11))
	assert.ErrorIs(t, v.ToggleSubmission(999), domain.ErrUnknownSubmission)
	assert.False(t, v.AllSelected())

	v.ToggleAll()
	assert.ElementsMatch(t, []int64{11, 12}, v.Selected)

	require.NoError(t, v.GenerateQuestions(context.Background(), api))
	assert.NotContains(t, api.lastGenerateIDs, int64(999))
}

func TestAssignmentDashboard_AllSelectedByMembership(t *testing.T) {
	v := mountedDashboard(t, &fakeAPI{subs: twoSubmissions()})
	v.Selected = []int64{11, 999}
	assert.False(t, v.AllSelected())

	v.Selected = []int64{12, 11}
	assert.True(t, v.AllSelected())
}

func TestAssignmentDashboard_RefetchPrunesSelection(t *testing.T) {
	api := &fakeAPI{subs: twoSubmissions()}
	v := mountedDashboard(t, api)
	v.ToggleAll()
	require.NoError(t, v.ChooseFile("carol.zip"))

	api.onUpload = func() {
		api.subs = []domain.Submission{{SubmissionID: 12, SubmissionFileName: "bob.zip"}, {SubmissionID: 13, SubmissionFileName: "carol.zip"}}
	}
	require.NoError(t, v.Upload(context.Background(), api, strings.NewReader("PK")))

	assert.Equal(t, []int64{12}, v.Selected)
	assert.Equal(t, 2, v.Len())
}

func TestAssignmentDashboard_Upload(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the archive then re-fetches", func(t *testing.T) {
		api := &fakeAPI{}
		v := mountedDashboard(t, api)
		require.NoError(t, v.ChooseFile("batch.ZIP"))
		api.onUpload = func() { api.subs = twoSubmissions() }

		require.NoError(t, v.Upload(ctx, api, strings.NewReader("zip-bytes")))
		assert.Equal(t, []string{"ListSubmissions", "UploadSubmission", "ListSubmissions"}, api.calls)
		assert.Equal(t, "batch.ZIP", api.lastUploadName)
		assert.Equal(t, "zip-bytes", api.lastUploadBody)
		assert.False(t, v.Uploading)
		assert.Empty(t, v.SelectedFile)
		assert.Equal(t, 2, v.Len())
	})

	t.Run("non zip files are refused", func(t *testing.T) {
		v := mountedDashboard(t, &fakeAPI{})
		assert.ErrorIs(t, v.ChooseFile("notes.txt"), domain.ErrNotZip)
		assert.Equal(t, msgOnlyZip, v.Error)
		assert.Empty(t, v.SelectedFile)
	})

	t.Run("upload without a file", func(t *testing.T) {
		api := &fakeAPI{}
		v := mountedDashboard(t, api)
		assert.ErrorIs(t, v.Upload(ctx, api, strings.NewReader("")), domain.ErrNoFileChosen)
		assert.Equal(t, 0, api.count("UploadSubmission"))
	})

	t.Run("second upload while one is in flight", func(t *testing.T) {
		v := mountedDashboard(t, &fakeAPI{})
		require.NoError(t, v.ChooseFile("a.zip"))
		require.NoError(t, v.BeginUpload())
		assert.ErrorIs(t, v.BeginUpload(), ErrUploadInProgress)
	})

	t.Run("failure lowers the flag and keeps the list", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions(), uploadErr: errUpstream}
		v := mountedDashboard(t, api)
		require.NoError(t, v.ChooseFile("a.zip"))

		assert.ErrorIs(t, v.Upload(ctx, api, strings.NewReader("x")), errUpstream)
		assert.False(t, v.Uploading)
		assert.Equal(t, msgUploadFailed, v.Error)
		assert.Equal(t, 1, api.count("ListSubmissions"))
		assert.Equal(t, 2, v.Len())
	})
}

func TestAssignmentDashboard_GenerateQuestions(t *testing.T) {
	ctx := context.Background()

	t.Run("empty selection makes no call", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions()}
		v := mountedDashboard(t, api)

		assert.ErrorIs(t, v.GenerateQuestions(ctx, api), domain.ErrEmptySelection)
		assert.Equal(t, msgSelectSubmission, v.Error)
		assert.Equal(t, 0, api.count("GenerateQuestions"))
	})

	t.Run("posts the selected ids", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions()}
		v := mountedDashboard(t, api)
		require.NoError(t, v.ToggleSubmission(12))
		require.NoError(t, v.ToggleSubmission(11))

		require.NoError(t, v.GenerateQuestions(ctx, api))
		assert.Equal(t, []int64{12, 11}, api.lastGenerateIDs)
		assert.Equal(t, msgQuestionsCreated, v.Notice)
		assert.JSONEq(t, `{"status":"queued"}`, string(v.LastGenerated))
	})

	t.Run("failure sets the error", func(t *testing.T) {
		api := &fakeAPI{subs: twoSubmissions(), generateErr: errUpstream}
		v := mountedDashboard(t, api)
		v.ToggleAll()

		assert.Error(t, v.GenerateQuestions(ctx, api))
		assert.Equal(t, msgGenerateFailed, v.Error)
		assert.Empty(t, v.Notice)
	})
}

func TestAssignmentDashboard_TemplateOverlay(t *testing.T) {
	v := mountedDashboard(t, &fakeAPI{})

	v.OpenTemplate()
	assert.True(t, v.ShowTemplate)
	assert.Equal(t, labelEditTemplate, v.TemplateButtonLabel())

	v.OpenTemplate()
	assert.True(t, v.TemplateSaved)

	v.CloseTemplate()
	assert.False(t, v.ShowTemplate)
	assert.Equal(t, labelAddTemplate, v.TemplateButtonLabel())
}
