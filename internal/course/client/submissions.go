package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

// ListSubmissions fetches the submission files of a project
func (c *Client) ListSubmissions(ctx context.Context, unitCode, projectName string) ([]domain.Submission, error) {
	var list domain.SubmissionList
	if err := c.doJSON(ctx, "list_submissions", http.MethodGet, c.endpoints.SubmissionFiles(unitCode, projectName), nil, &list); err != nil {
		return nil, err
	}
	if list.SubmissionFiles == nil {
		return []domain.Submission{}, nil
	}
	return list.SubmissionFiles, nil
}

// UploadSubmission posts one archive as multipart form data with a single
// "file" field.
func (c *Client) UploadSubmission(ctx context.Context, unitCode, projectName, fileName string, content io.Reader) error {
	const op = "upload_submission"
	logger := logging.NewLogger(ctx)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(fileName))
	if err != nil {
		return fmt.Errorf("%s: create form file: %w", op, err)
	}
	n, err := io.Copy(part, content)
	if err != nil {
		return fmt.Errorf("%s: copy file: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("%s: close multipart writer: %w", op, err)
	}

	logger.LogInfof(op, "uploading %s (%d bytes) to unit=%s project=%s", fileName, n, unitCode, projectName)
	resp, err := c.send(ctx, c.uploadClient, op, http.MethodPost, c.endpoints.SubmissionFiles(unitCode, projectName), &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// GenerateQuestions asks the API to generate questions for the selected
// submissions and returns its raw answer.
func (c *Client) GenerateQuestions(ctx context.Context, unitCode, projectName string, submissionIDs []int64) (domain.Document, error) {
	var doc domain.Document
	req := domain.GenerateQuestionsRequest{SubmissionIDs: submissionIDs}
	if err := c.doJSON(ctx, "generate_questions", http.MethodPost, c.endpoints.GenerateSubmissionQuestions(unitCode, projectName), req, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
