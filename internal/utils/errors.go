package utils

import "errors"

// Domain-level errors used by the service layer to provide
// fine-grained failure reasons to the controllers.
var (
	ErrEmailExists        = errors.New("email_exists")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrTaskNotFound       = errors.New("task_not_found")
)
