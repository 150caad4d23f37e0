package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Core operation errors
	ErrValidation      = fmt.Errorf("validation failed")
	ErrNotFound        = fmt.Errorf("channel not found")
	ErrFormat          = fmt.Errorf("malformed document")
	ErrPersistence     = fmt.Errorf("persistence failure")
	ErrSnapshotMissing = fmt.Errorf("no local backup snapshot")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
