package upload

import "errors"

var (
	ErrUploaderNameRequired = errors.New("uploader name is required")
	ErrNoFiles              = errors.New("no files selected")
	ErrUnsupportedType      = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrUploadNotFound       = errors.New("upload not found")
	ErrFileNotFound         = errors.New("file not found")
)
