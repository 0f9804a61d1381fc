package view

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"github.com/coursework-hub/instructor-dashboard/internal/course/domain"
	"github.com/coursework-hub/instructor-dashboard/internal/logging"
)

const (
	msgLoadTemplate   = "Failed to load question template."
	msgLoadBank       = "Failed to load question bank."
	msgSaveTemplate   = "Failed to save question template."
	msgSaveBank       = "Failed to save question bank."
	msgInvalidJSON    = "The document must be valid JSON."
	msgGenerateAll    = "Failed to generate questions."
	msgTemplateSaved  = "Question template saved."
	msgBankSaved      = "Question bank saved."
	msgAllQuestionsOK = "Questions generated for every submission."
)

// QuestionEditor backs the question template overlay and the question bank
// screen of a project. Documents are edited as JSON text and passed through
// to the API untouched.
type QuestionEditor struct {
	UnitCode    string `json:"unit_code"`
	ProjectName string `json:"project_name"`
	Phase       Phase  `json:"phase"`
	Error       string `json:"error,omitempty"`
	Notice      string `json:"notice,omitempty"`

	Template  string `json:"template"`
	Bank      string `json:"bank"`
	Generated string `json:"generated,omitempty"`
}

func NewQuestionEditor(unitCode, projectName string) *QuestionEditor {
	return &QuestionEditor{UnitCode: unitCode, ProjectName: projectName, Phase: PhaseIdle}
}

// Mount fetches both the template and the question bank.
func (v *QuestionEditor) Mount(ctx context.Context, api QuestionsAPI) {
	*v = *NewQuestionEditor(v.UnitCode, v.ProjectName)
	v.Phase = PhaseLoading
	logger := logging.NewLogger(ctx)

	tmpl, err := api.GetQuestionTemplate(ctx, v.UnitCode, v.ProjectName)
	if err != nil {
		logger.LogErrorf("get_question_template", "error fetching question template: %v", err)
		v.Phase = PhaseError
		v.Error = msgLoadTemplate
		return
	}
	v.Template = prettyJSON(tmpl)

	bank, err := api.GetQuestionBank(ctx, v.UnitCode, v.ProjectName)
	if err != nil {
		logger.LogErrorf("get_question_bank", "error fetching question bank: %v", err)
		v.Phase = PhaseError
		v.Error = msgLoadBank
		return
	}
	v.Bank = prettyJSON(bank)
	v.Phase = PhaseLoaded
}

// SaveTemplate posts text as the new template. Invalid JSON is rejected
// before any call.
func (v *QuestionEditor) SaveTemplate(ctx context.Context, api QuestionsAPI, text string) error {
	return v.save(ctx, text, &v.Template, msgSaveTemplate, msgTemplateSaved, "save_question_template",
		func(doc domain.Document) error { return api.SaveQuestionTemplate(ctx, v.UnitCode, v.ProjectName, doc) })
}

// SaveBank posts text as the new question bank.
func (v *QuestionEditor) SaveBank(ctx context.Context, api QuestionsAPI, text string) error {
	return v.save(ctx, text, &v.Bank, msgSaveBank, msgBankSaved, "save_question_bank",
		func(doc domain.Document) error { return api.SaveQuestionBank(ctx, v.UnitCode, v.ProjectName, doc) })
}

func (v *QuestionEditor) save(ctx context.Context, text string, field *string, failMsg, okMsg, op string, post func(domain.Document) error) error {
	v.Notice = ""
	doc := domain.Document(strings.TrimSpace(text))
	if !json.Valid(doc) {
		*field = text
		v.Error = msgInvalidJSON
		return domain.ErrInvalidTemplate
	}

	prev := v.Phase
	v.Phase = PhaseMutating
	defer func() { v.Phase = prev }()

	if err := post(doc); err != nil {
		logging.NewLogger(ctx).LogErrorf(op, "error saving document: %v", err)
		*field = text
		v.Error = failMsg
		return err
	}
	*field = prettyJSON(doc)
	v.Error = ""
	v.Notice = okMsg
	return nil
}

// GenerateAll triggers question generation for every submission of the
// project and keeps the API's answer for display.
func (v *QuestionEditor) GenerateAll(ctx context.Context, api QuestionsAPI) error {
	v.Notice = ""
	doc, err := api.GenerateAllQuestions(ctx, v.UnitCode, v.ProjectName)
	if err != nil {
		logging.NewLogger(ctx).LogErrorf("generate_all_questions", "error generating questions: %v", err)
		v.Error = msgGenerateAll
		return err
	}
	v.Error = ""
	v.Generated = prettyJSON(doc)
	v.Notice = msgAllQuestionsOK
	return nil
}

// prettyJSON indents a document for editing; non-JSON input is returned as is.
func prettyJSON(doc []byte) string {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
