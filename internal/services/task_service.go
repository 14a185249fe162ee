package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"taskphoto.com/taskphoto/internal/constants"
	apperrors "taskphoto.com/taskphoto/internal/errors"
	"taskphoto.com/taskphoto/internal/lifecycle"
	model "taskphoto.com/taskphoto/internal/models"
	repository "taskphoto.com/taskphoto/internal/repositories"
)

const (
	defaultAssignee       = "Не назначен"
	defaultAssigneeAvatar = "НН"
	defaultDeadline       = "Без срока"
	defaultLocation       = "Не указано"
	defaultCategory       = "Общее"
	justNowLabel          = "Только что"
)

type TaskService struct {
	repo      *repository.TaskRepository
	publisher Publisher
	now       func() time.Time
}

func NewTaskService(repo *repository.TaskRepository, publisher Publisher) *TaskService {
	return &TaskService{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Assignee    string
	Deadline    string
	Location    string
	Priority    constants.Priority
	Category    string
}

type ReviewQueue struct {
	Pending  []model.Task `json:"pending"`
	Approved []model.Task `json:"approved"`
}

func (s *TaskService) CreateTask(ctx context.Context, actor lifecycle.Actor, in CreateTaskInput) (*model.Task, error) {
	if err := lifecycle.Authorize(lifecycle.ActionCreate, actor); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.ErrTitleRequired
	}

	priority := in.Priority
	if priority == "" {
		priority = constants.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidPriority, priority)
	}

	assignee := strings.TrimSpace(in.Assignee)
	task := &model.Task{
		Title:          title,
		Description:    in.Description,
		Category:       orDefault(in.Category, defaultCategory),
		Assignee:       orDefault(assignee, defaultAssignee),
		AssigneeAvatar: initials(assignee, defaultAssigneeAvatar),
		Priority:       priority,
		Deadline:       orDefault(in.Deadline, defaultDeadline),
		Location:       orDefault(in.Location, defaultLocation),
		PhotoRequired:  true,
		CreatedLabel:   justNowLabel,
	}

	if err := s.repo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.publish(lifecycle.ActionCreate, task, actor)
	return task, nil
}

func (s *TaskService) StartWork(ctx context.Context, taskID uint, actor lifecycle.Actor) (*model.Task, error) {
	return s.transition(ctx, taskID, lifecycle.ActionStart, actor, "")
}

// SubmitReport attaches photoRef to the task and moves it to review.
func (s *TaskService) SubmitReport(ctx context.Context, taskID uint, actor lifecycle.Actor, photoRef string) (*model.Task, error) {
	return s.transition(ctx, taskID, lifecycle.ActionSubmit, actor, photoRef)
}

func (s *TaskService) Approve(ctx context.Context, taskID uint, actor lifecycle.Actor) (*model.Task, error) {
	return s.transition(ctx, taskID, lifecycle.ActionApprove, actor, "")
}

func (s *TaskService) Reject(ctx context.Context, taskID uint, actor lifecycle.Actor) (*model.Task, error) {
	return s.transition(ctx, taskID, lifecycle.ActionReject, actor, "")
}

func (s *TaskService) transition(
	ctx context.Context,
	taskID uint,
	action lifecycle.Action,
	actor lifecycle.Actor,
	photoRef string,
) (*model.Task, error) {
	if taskID == 0 {
		return nil, apperrors.ErrTaskIDRequired
	}

	current, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	next, err := lifecycle.Apply(*current, action, actor, photoRef, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, &next); err != nil {
		return nil, err
	}

	s.publish(action, &next, actor)
	return &next, nil
}

func (s *TaskService) publish(action lifecycle.Action, task *model.Task, actor lifecycle.Actor) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(Event{
		Action:   action,
		TaskID:   task.ID,
		Title:    task.Title,
		Assignee: task.Assignee,
		Actor:    actor.Name,
	})
}

func (s *TaskService) GetTask(ctx context.Context, id uint) (*model.Task, error) {
	return s.repo.FindByID(ctx, id)
}

// ListTasks filters by exact status; "" and "all" return every task. Newest first.
func (s *TaskService) ListTasks(ctx context.Context, filter string) ([]model.Task, error) {
	if filter == "" || filter == constants.StatusAll {
		return s.repo.List(ctx, nil)
	}

	status := constants.TaskStatus(filter)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, filter)
	}
	return s.repo.List(ctx, &status)
}

func (s *TaskService) ReviewQueue(ctx context.Context) (ReviewQueue, error) {
	tasks, err := s.repo.List(ctx, nil)
	if err != nil {
		return ReviewQueue{}, err
	}

	q := ReviewQueue{Pending: []model.Task{}, Approved: []model.Task{}}
	for _, t := range tasks {
		switch t.Status {
		case constants.StatusReview:
			q.Pending = append(q.Pending, t)
		case constants.StatusApproved:
			q.Approved = append(q.Approved, t)
		}
	}
	return q, nil
}

func (s *TaskService) Stats(ctx context.Context) (Stats, error) {
	tasks, err := s.repo.List(ctx, nil)
	if err != nil {
		return Stats{}, err
	}
	return ComputeStats(tasks), nil
}

func (s *TaskService) AssigneeReport(ctx context.Context) ([]AssigneeStats, error) {
	tasks, err := s.repo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	return GroupByAssignee(tasks), nil
}

// AssigneeSummary reports on the tasks of a single assignee, e.g. an executor's own profile.
func (s *TaskService) AssigneeSummary(ctx context.Context, assignee string) (AssigneeStats, []model.Task, error) {
	tasks, err := s.repo.ListByAssignee(ctx, assignee)
	if err != nil {
		return AssigneeStats{}, nil, err
	}

	summary := AssigneeStats{Assignee: assignee, Avatar: initials(assignee, defaultAssigneeAvatar)}
	if groups := GroupByAssignee(tasks); len(groups) == 1 {
		summary = groups[0]
	}
	return summary, tasks, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
