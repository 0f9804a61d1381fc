package domain

import "errors"

var (
	ErrEmptySelection    = errors.New("please select at least one submission")
	ErrNoFileChosen      = errors.New("no file chosen")
	ErrNotZip            = errors.New("only .zip archives can be uploaded")
	ErrInvalidTemplate   = errors.New("document is not valid JSON")
	ErrUnknownProject    = errors.New("project not in the current list")
	ErrUnknownSubmission = errors.New("submission not in the current list")
	ErrNotEditing        = errors.New("no project is being edited")
	ErrEmptyName         = errors.New("name must not be empty")
)
