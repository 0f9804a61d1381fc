package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
)

// GetQuestionTemplate fetches the question template of a project
func (c *Client) GetQuestionTemplate(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	var doc domain.Document
	if err := c.doJSON(ctx, "get_question_template", http.MethodGet, c.endpoints.QuestionTemplate(unitCode, projectName), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveQuestionTemplate stores the question template of a project
func (c *Client) SaveQuestionTemplate(ctx context.Context, unitCode, projectName string, doc domain.Document) error {
	if !json.Valid(doc) {
		return fmt.Errorf("save_question_template: %w", domain.ErrInvalidTemplate)
	}
	return c.doJSON(ctx, "save_question_template", http.MethodPost, c.endpoints.QuestionTemplate(unitCode, projectName), doc, nil)
}

// GetQuestionBank fetches the question bank of a project
func (c *Client) GetQuestionBank(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	var doc domain.Document
	if err := c.doJSON(ctx, "get_question_bank", http.MethodGet, c.endpoints.QuestionBank(unitCode, projectName), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// SaveQuestionBank stores the question bank of a project
func (c *Client) SaveQuestionBank(ctx context.Context, unitCode, projectName string, doc domain.Document) error {
	if !json.Valid(doc) {
		return fmt.Errorf("save_question_bank: %w", domain.ErrInvalidTemplate)
	}
	return c.doJSON(ctx, "save_question_bank", http.MethodPost, c.endpoints.QuestionBank(unitCode, projectName), doc, nil)
}

// GenerateAllQuestions asks the API to generate questions for every submission
func (c *Client) GenerateAllQuestions(ctx context.Context, unitCode, projectName string) (domain.Document, error) {
	var doc domain.Document
	if err := c.doJSON(ctx, "generate_all_questions", http.MethodPost, c.endpoints.GenerateAllQuestions(unitCode, projectName), nil, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
