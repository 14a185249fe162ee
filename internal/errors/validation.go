package errors

import "net/http"

// Validation builds a 400 validation error with the given message.
func Validation(message string) *Exception {
	return &Exception{Kind: KindValidation, Message: message, StatusCode: http.StatusBadRequest}
}

var (
	ErrTitleRequired       = Validation("title is required")
	ErrPhotoRequired       = Validation("photo reference is required")
	ErrUserFieldsRequired  = Validation("name, email and password are required")
	ErrCredentialsRequired = Validation("email and password are required")
	ErrInvalidStatus       = Validation("unknown task status")
	ErrInvalidPriority     = Validation("priority must be one of high, medium, low")
	ErrInvalidRole         = Validation("role must be one of admin, manager, executor")
	ErrTaskIDRequired      = Validation("task id is required")
	ErrUserIDRequired      = Validation("user id is required")
	ErrPasswordTooLong     = Validation("password must be at most 72 bytes")
)
