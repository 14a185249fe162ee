package errors

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindInternal       Kind = "internal"
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindWrongStatus    Kind = "wrong_status"
	KindUnauthorized   Kind = "unauthorized"
	KindDuplicateEmail Kind = "duplicate_email"
	KindSelfAction     Kind = "self_action"
	KindAuth           Kind = "auth"
	KindConflict       Kind = "conflict"
	KindRateLimited    Kind = "rate_limited"
)

type Exception struct {
	Kind       Kind
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}

// KindOf returns the kind of the first Exception in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
