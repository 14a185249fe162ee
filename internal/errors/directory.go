package errors

import "net/http"

var ErrDuplicateEmail = &Exception{
	Kind:       KindDuplicateEmail,
	Message:    "user with this email already exists",
	StatusCode: http.StatusConflict,
}

var ErrSelfAction = &Exception{
	Kind:       KindSelfAction,
	Message:    "cannot deactivate or delete your own account",
	StatusCode: http.StatusForbidden,
}

var ErrAccountNotFound = &Exception{
	Kind:       KindAuth,
	Message:    "account not found",
	StatusCode: http.StatusUnauthorized,
}

var ErrAccountDeactivated = &Exception{
	Kind:       KindAuth,
	Message:    "account deactivated",
	StatusCode: http.StatusForbidden,
}

var ErrLoginInProgress = &Exception{
	Kind:       KindAuth,
	Message:    "login already in progress for this account",
	StatusCode: http.StatusTooManyRequests,
}

var ErrIdentityRequired = &Exception{
	Kind:       KindAuth,
	Message:    "X-User-ID header with a valid user id is required",
	StatusCode: http.StatusUnauthorized,
}
