// Package lifecycle holds the task state machine and the role table that gates it.
//
// Everything here is pure: functions take a task snapshot and return a new one,
// leaving persistence to the repositories.
package lifecycle

import (
	"fmt"
	"strings"
	"time"

	"taskphoto.com/taskphoto/internal/constants"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	model "taskphoto.com/taskphoto/internal/models"
)

type Action string

const (
	ActionCreate  Action = "create"
	ActionStart   Action = "start"
	ActionSubmit  Action = "submit"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
)

// Actor is the user a transition is performed on behalf of.
type Actor struct {
	ID   uint
	Name string
	Role constants.Role
}

// Rule describes one transition. From is empty for ActionCreate.
type Rule struct {
	From         constants.TaskStatus
	To           constants.TaskStatus
	Roles        []constants.Role
	AssigneeOnly bool
}

func (r Rule) permits(role constants.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Rules is the complete transition table. Approved and rejected have no outgoing rule.
var Rules = map[Action]Rule{
	ActionCreate: {
		To:    constants.StatusNew,
		Roles: []constants.Role{constants.RoleManager, constants.RoleAdmin},
	},
	ActionStart: {
		From:         constants.StatusNew,
		To:           constants.StatusInProgress,
		Roles:        []constants.Role{constants.RoleExecutor},
		AssigneeOnly: true,
	},
	ActionSubmit: {
		From:         constants.StatusInProgress,
		To:           constants.StatusReview,
		Roles:        []constants.Role{constants.RoleExecutor},
		AssigneeOnly: true,
	},
	ActionApprove: {
		From:  constants.StatusReview,
		To:    constants.StatusApproved,
		Roles: []constants.Role{constants.RoleManager, constants.RoleAdmin},
	},
	ActionReject: {
		From:  constants.StatusReview,
		To:    constants.StatusRejected,
		Roles: []constants.Role{constants.RoleManager, constants.RoleAdmin},
	},
}

// transitionOrder fixes the order AllowedActions reports in.
var transitionOrder = []Action{ActionStart, ActionSubmit, ActionApprove, ActionReject}

// Authorize checks the role part of a rule only.
func Authorize(action Action, actor Actor) error {
	rule, ok := Rules[action]
	if !ok {
		return fmt.Errorf("unknown action %q", action)
	}
	if !rule.permits(actor.Role) {
		return fmt.Errorf("%w: %s cannot %s", apperrors.ErrRoleNotAllowed, actor.Role, action)
	}
	return nil
}

// Check validates action against task for actor: role, then assignee, then status.
func Check(task model.Task, action Action, actor Actor) error {
	if err := Authorize(action, actor); err != nil {
		return err
	}

	rule := Rules[action]
	if rule.AssigneeOnly && !IsAssignee(task, actor) {
		return fmt.Errorf("%w: task %d is assigned to %q", apperrors.ErrNotAssignee, task.ID, task.Assignee)
	}
	if task.Status != rule.From {
		return fmt.Errorf("%w: cannot %s task %d in status %s", apperrors.ErrWrongStatus, action, task.ID, task.Status)
	}

	return nil
}

// Apply returns the snapshot that results from performing action on task.
// photoRef is only read for ActionSubmit. task itself is never modified.
func Apply(task model.Task, action Action, actor Actor, photoRef string, now time.Time) (model.Task, error) {
	if action == ActionCreate {
		return task, fmt.Errorf("create is not a transition of an existing task")
	}
	if err := Check(task, action, actor); err != nil {
		return task, err
	}

	next := task
	next.Status = Rules[action].To

	if action == ActionSubmit {
		photoRef = strings.TrimSpace(photoRef)
		if photoRef == "" {
			return task, apperrors.ErrPhotoRequired
		}
		submittedAt := now.UTC()
		next.PhotoURL = &photoRef
		next.SubmittedAt = &submittedAt
	}

	return next, nil
}

// AllowedActions lists the transitions actor could perform on task right now.
func AllowedActions(task model.Task, actor Actor) []Action {
	actions := make([]Action, 0, 1)
	for _, action := range transitionOrder {
		if Check(task, action, actor) == nil {
			actions = append(actions, action)
		}
	}
	return actions
}

func IsAssignee(task model.Task, actor Actor) bool {
	return actor.Name != "" && actor.Name == task.Assignee
}
