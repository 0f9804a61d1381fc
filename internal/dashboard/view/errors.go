package view

import "errors"

// ErrUploadInProgress is returned while the view's upload flag is raised.
var ErrUploadInProgress = errors.New("an upload is already in progress")
