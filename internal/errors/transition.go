package errors

import "net/http"

var ErrWrongStatus = &Exception{
	Kind:       KindWrongStatus,
	Message:    "transition not allowed from current status",
	StatusCode: http.StatusConflict,
}

var ErrRoleNotAllowed = &Exception{
	Kind:       KindUnauthorized,
	Message:    "role is not allowed to perform this action",
	StatusCode: http.StatusForbidden,
}

var ErrNotAssignee = &Exception{
	Kind:       KindUnauthorized,
	Message:    "only the assignee can perform this action",
	StatusCode: http.StatusForbidden,
}

var ErrOptimisticLock = &Exception{
	Kind:       KindConflict,
	Message:    "optimistic locking conflict",
	StatusCode: http.StatusConflict,
}
