package client

import "time"

const (
	// DefaultTimeout is the standard timeout for most course API operations
	DefaultTimeout = 30 * time.Second

	// UploadTimeout is for multipart submission uploads
	UploadTimeout = 90 * time.Second

	// maxErrorBody caps how much of a failed response body is kept in errors
	maxErrorBody = 4 << 10
)
