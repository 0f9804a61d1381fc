package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

func TestClient_ListProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/units/CS101/projects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"project_id":1,"project_name":"Lab 1","unit_code":"CS101"},{"project_id":2,"project_name":"","unit_code":"CS101"}]`))
	}))
	defer server.Close()

	client := New(server.URL)
	projects, err := client.ListProjects(context.Background(), "CS101")
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, int64(1), projects[0].ProjectID)
	assert.Equal(t, "Lab 1", projects[0].ProjectName)
	assert.Equal(t, "Unnamed Project", projects[1].DisplayName())
}

func TestClient_DeleteProject_EscapesName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/units/CS101/projects/A%2FB", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := New(server.URL).DeleteProject(context.Background(), "CS101", "A/B")
	require.NoError(t, err)
}

func TestClient_UpdateProject_SendsJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/units/CS101/projects/Old%20Name", r.URL.EscapedPath())
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body domain.ProjectUpdate
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "New Name", body.ProjectName)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := New(server.URL).UpdateProject(context.Background(), "CS101", "Old Name", domain.ProjectUpdate{ProjectName: "New Name"})
	require.NoError(t, err)
}

func TestClient_StatusError(t *testing.T) {
	ResetMetrics()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("database unavailable\n"))
	}))
	defer server.Close()

	_, err := New(server.URL).ListUnits(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "list_units", statusErr.Op)
	assert.Equal(t, "database unavailable", statusErr.Body)

	m := GetMetrics()
	assert.Equal(t, int64(1), m.Calls)
	assert.Equal(t, int64(1), m.Errors)
	assert.Equal(t, float64(100), m.ErrorRate())
}

func TestClient_TransportError(t *testing.T) {
	client := New("http://invalid-url-that-does-not-exist.invalid", WithTimeouts(2*time.Second, 0))
	_, err := client.ListUnits(context.Background())
	require.Error(t, err)

	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
}

func TestClient_ForwardsRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "rid-42", r.Header.Get("X-Request-Id"))
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	ctx := logging.WithRequestID(context.Background(), "rid-42")
	units, err := New(server.URL).ListUnits(ctx)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestClient_ListSubmissions(t *testing.T) {
	t.Run("unwraps submission_files", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/units/CS101/projects/Fastest%20Scheduling%20Algorithm/files", r.URL.EscapedPath())
			w.Write([]byte(`{"submission_files":[{"submission_id":7,"submission_file_name":"a.zip","submission_status":"processed"}]}`))
		}))
		defer server.Close()

		subs, err := New(server.URL).ListSubmissions(context.Background(), "CS101", "Fastest Scheduling Algorithm")
		require.NoError(t, err)
		require.Len(t, subs, 1)
		assert.Equal(t, int64(7), subs[0].SubmissionID)
		assert.Equal(t, "a.zip", subs[0].SubmissionFileName)
		assert.Equal(t, "processed", subs[0].SubmissionStatus)
	})

	t.Run("missing list is empty, not nil", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer server.Close()

		subs, err := New(server.URL).ListSubmissions(context.Background(), "CS101", "Lab")
		require.NoError(t, err)
		assert.NotNil(t, subs)
		assert.Empty(t, subs)
	})
}

func TestClient_UploadSubmission_Multipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/units/CS101/projects/Lab/files", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))

		file, header, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		assert.Equal(t, "subs.zip", header.Filename)
		data, _ := io.ReadAll(file)
		assert.Equal(t, "PK-archive", string(data))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := New(server.URL).UploadSubmission(context.Background(), "CS101", "Lab", "/tmp/subs.zip", strings.NewReader("PK-archive"))
	require.NoError(t, err)
}

func TestClient_GenerateQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/units/CS101/projects/Lab/generate-questions", r.URL.Path)
		var body domain.GenerateQuestionsRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []int64{3, 5}, body.SubmissionIDs)
		w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	doc, err := New(server.URL).GenerateQuestions(context.Background(), "CS101", "Lab", []int64{3, 5})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"queued"}`, string(doc))
}

func TestClient_QuestionTemplate(t *testing.T) {
	var saved string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/units/CS101/projects/Lab/template", r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`{"questions":[{"text":"Why?"}]}`))
		case http.MethodPost:
			data, _ := io.ReadAll(r.Body)
			saved = string(data)
			w.WriteHeader(http.StatusCreated)
		}
	}))
	defer server.Close()

	client := New(server.URL)
	doc, err := client.GetQuestionTemplate(context.Background(), "CS101", "Lab")
	require.NoError(t, err)
	assert.JSONEq(t, `{"questions":[{"text":"Why?"}]}`, string(doc))

	require.NoError(t, client.SaveQuestionTemplate(context.Background(), "CS101", "Lab", domain.Document(`{"questions":[]}`)))
	assert.JSONEq(t, `{"questions":[]}`, saved)

	err = client.SaveQuestionTemplate(context.Background(), "CS101", "Lab", domain.Document(`{not json`))
	assert.ErrorIs(t, err, domain.ErrInvalidTemplate)
}

func TestClient_RateLimitHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := New(server.URL, WithRateLimit(0.001, 1))
	_, err := client.ListUnits(context.Background())
	require.NoError(t, err, "first call uses the burst token")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.ListUnits(ctx)
	assert.Error(t, err, "second call cannot get a token before the deadline")
}

func TestMetrics_AverageLatency(t *testing.T) {
	m := Metrics{Calls: 2, LatencyNanos: int64(4 * time.Millisecond)}
	assert.Equal(t, float64(2), m.AverageLatency())
	assert.Equal(t, float64(0), Metrics{}.AverageLatency())
}
