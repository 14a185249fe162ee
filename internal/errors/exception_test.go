package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCode_UnwrapsWrappedException(t *testing.T) {
	err := fmt.Errorf("%w: task 4 is approved", ErrWrongStatus)

	if got := StatusCode(err); got != http.StatusConflict {
		t.Errorf("expected status %d, got %d", http.StatusConflict, got)
	}
	if !errors.Is(err, ErrWrongStatus) {
		t.Error("expected wrapped error to match ErrWrongStatus")
	}
}

func TestStatusCode_PlainErrorIsInternal(t *testing.T) {
	err := errors.New("disk on fire")

	if got := StatusCode(err); got != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, got)
	}
	if got := KindOf(err); got != KindInternal {
		t.Errorf("expected kind %s, got %s", KindInternal, got)
	}
}

func TestKindOf_DistinguishesReasons(t *testing.T) {
	cases := map[*Exception]Kind{
		ErrTitleRequired:      KindValidation,
		ErrTaskNotFound:       KindNotFound,
		ErrWrongStatus:        KindWrongStatus,
		ErrRoleNotAllowed:     KindUnauthorized,
		ErrNotAssignee:        KindUnauthorized,
		ErrDuplicateEmail:     KindDuplicateEmail,
		ErrSelfAction:         KindSelfAction,
		ErrAccountDeactivated: KindAuth,
	}

	for sentinel, want := range cases {
		if got := KindOf(fmt.Errorf("wrapped: %w", sentinel)); got != want {
			t.Errorf("%q: expected kind %s, got %s", sentinel.Message, want, got)
		}
	}
}
