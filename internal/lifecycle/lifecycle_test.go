package lifecycle

import (
	"errors"
	"testing"
	"time"

	"taskphoto.com/taskphoto/internal/constants"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	model "taskphoto.com/taskphoto/internal/models"
)

var (
	anna    = Actor{ID: 3, Name: "Анна Петрова", Role: constants.RoleExecutor}
	dmitry  = Actor{ID: 4, Name: "Дмитрий Козлов", Role: constants.RoleExecutor}
	manager = Actor{ID: 2, Name: "Алексей Михайлов", Role: constants.RoleManager}
	admin   = Actor{ID: 1, Name: "Администратор", Role: constants.RoleAdmin}
)

func taskIn(status constants.TaskStatus) model.Task {
	return model.Task{ID: 4, Title: "Расстановка товаров", Assignee: anna.Name, Status: status}
}

func TestRules_TerminalStatusesHaveNoExit(t *testing.T) {
	for action, rule := range Rules {
		if action == ActionCreate {
			continue
		}
		if rule.From.Terminal() {
			t.Errorf("action %s leaves terminal status %s", action, rule.From)
		}
		if !rule.To.Valid() {
			t.Errorf("action %s targets unknown status %s", action, rule.To)
		}
	}
}

func TestRules_NoDirectNewToReview(t *testing.T) {
	for action, rule := range Rules {
		if rule.From == constants.StatusNew && rule.To == constants.StatusReview {
			t.Errorf("action %s moves new directly to review", action)
		}
	}
}

func TestAuthorize(t *testing.T) {
	cases := []struct {
		action Action
		actor  Actor
		ok     bool
	}{
		{ActionCreate, manager, true},
		{ActionCreate, admin, true},
		{ActionCreate, anna, false},
		{ActionStart, anna, true},
		{ActionStart, manager, false},
		{ActionSubmit, anna, true},
		{ActionSubmit, admin, false},
		{ActionApprove, manager, true},
		{ActionApprove, admin, true},
		{ActionApprove, anna, false},
		{ActionReject, manager, true},
		{ActionReject, anna, false},
	}

	for _, tc := range cases {
		err := Authorize(tc.action, tc.actor)
		if tc.ok && err != nil {
			t.Errorf("%s by %s: unexpected error %v", tc.action, tc.actor.Role, err)
		}
		if !tc.ok && !errors.Is(err, apperrors.ErrRoleNotAllowed) {
			t.Errorf("%s by %s: expected ErrRoleNotAllowed, got %v", tc.action, tc.actor.Role, err)
		}
	}
}

func TestCheck_WrongStatusAndUnauthorizedAreDistinct(t *testing.T) {
	err := Check(taskIn(constants.StatusApproved), ActionReject, manager)
	if !errors.Is(err, apperrors.ErrWrongStatus) {
		t.Errorf("expected ErrWrongStatus, got %v", err)
	}

	err = Check(taskIn(constants.StatusReview), ActionApprove, anna)
	if !errors.Is(err, apperrors.ErrRoleNotAllowed) {
		t.Errorf("expected ErrRoleNotAllowed, got %v", err)
	}

	err = Check(taskIn(constants.StatusNew), ActionStart, dmitry)
	if !errors.Is(err, apperrors.ErrNotAssignee) {
		t.Errorf("expected ErrNotAssignee, got %v", err)
	}
}

func TestApply_FullLifecycle(t *testing.T) {
	now := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	task := taskIn(constants.StatusNew)

	started, err := Apply(task, ActionStart, anna, "", now)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.Status != constants.StatusInProgress || started.PhotoURL != nil {
		t.Fatalf("unexpected snapshot after start: %+v", started)
	}
	if task.Status != constants.StatusNew {
		t.Error("Apply must not modify its input")
	}

	submitted, err := Apply(started, ActionSubmit, anna, "photo://x", now)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if submitted.Status != constants.StatusReview {
		t.Errorf("expected review, got %s", submitted.Status)
	}
	if submitted.PhotoURL == nil || *submitted.PhotoURL != "photo://x" {
		t.Errorf("expected photo to be set, got %v", submitted.PhotoURL)
	}
	if submitted.SubmittedAt == nil || !submitted.SubmittedAt.Equal(now) {
		t.Errorf("expected submitted at %v, got %v", now, submitted.SubmittedAt)
	}

	approved, err := Apply(submitted, ActionApprove, manager, "", now)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != constants.StatusApproved {
		t.Errorf("expected approved, got %s", approved.Status)
	}

	after, err := Apply(approved, ActionReject, manager, "", now)
	if !errors.Is(err, apperrors.ErrWrongStatus) {
		t.Errorf("expected ErrWrongStatus, got %v", err)
	}
	if after.Status != constants.StatusApproved {
		t.Errorf("failed transition changed status to %s", after.Status)
	}
}

func TestApply_SubmitRequiresPhoto(t *testing.T) {
	task := taskIn(constants.StatusInProgress)

	got, err := Apply(task, ActionSubmit, anna, "   ", time.Now())
	if !errors.Is(err, apperrors.ErrPhotoRequired) {
		t.Fatalf("expected ErrPhotoRequired, got %v", err)
	}
	if got.Status != constants.StatusInProgress || got.PhotoURL != nil {
		t.Errorf("failed submit changed the task: %+v", got)
	}
}

// Rejected is terminal: there is no resubmission path.
func TestApply_RejectedIsTerminal(t *testing.T) {
	task := taskIn(constants.StatusRejected)

	for action := range Rules {
		if action == ActionCreate {
			continue
		}
		for _, actor := range []Actor{anna, manager, admin} {
			if _, err := Apply(task, action, actor, "photo://again", time.Now()); err == nil {
				t.Errorf("%s by %s left rejected status", action, actor.Role)
			}
		}
	}
}

func TestAllowedActions(t *testing.T) {
	cases := []struct {
		status constants.TaskStatus
		actor  Actor
		want   []Action
	}{
		{constants.StatusNew, anna, []Action{ActionStart}},
		{constants.StatusNew, dmitry, nil},
		{constants.StatusNew, manager, nil},
		{constants.StatusInProgress, anna, []Action{ActionSubmit}},
		{constants.StatusReview, manager, []Action{ActionApprove, ActionReject}},
		{constants.StatusReview, anna, nil},
		{constants.StatusApproved, admin, nil},
	}

	for _, tc := range cases {
		got := AllowedActions(taskIn(tc.status), tc.actor)
		if len(got) != len(tc.want) {
			t.Errorf("%s/%s: expected %v, got %v", tc.status, tc.actor.Role, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s/%s: expected %v, got %v", tc.status, tc.actor.Role, tc.want, got)
			}
		}
	}
}
