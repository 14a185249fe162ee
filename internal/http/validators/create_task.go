package validators

import (
	"strings"

	dto "taskphoto.com/taskphoto/internal/data_models"
	apperrors "taskphoto.com/taskphoto/internal/errors"
)

// ValidateCreateTaskRequest trims the free-text fields before checking tags,
// so a whitespace-only title counts as missing.
func ValidateCreateTaskRequest(rv *RequestValidator, r *dto.CreateTaskRequest) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Assignee = strings.TrimSpace(r.Assignee)
	if r.Title == "" {
		return apperrors.ErrTitleRequired
	}
	return rv.Validate(r)
}

func ValidateSubmitReportRequest(rv *RequestValidator, r *dto.SubmitReportRequest) error {
	r.PhotoURL = strings.TrimSpace(r.PhotoURL)
	if r.PhotoURL == "" {
		return apperrors.ErrPhotoRequired
	}
	return rv.Validate(r)
}
