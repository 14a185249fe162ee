package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"taskphoto.com/taskphoto/internal/constants"
	"taskphoto.com/taskphoto/internal/lifecycle"
	model "taskphoto.com/taskphoto/internal/models"
	repository "taskphoto.com/taskphoto/internal/repositories"
)

// Event is published after a task transition has been committed.
type Event struct {
	Action   lifecycle.Action
	TaskID   uint
	Title    string
	Assignee string
	Actor    string
}

// Publisher accepts events without blocking. It reports false when the event was dropped.
type Publisher interface {
	Publish(ev Event) bool
}

type NotificationService struct {
	queue chan Event
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool

	repo   *repository.NotificationRepository
	logger *zap.Logger
}

func NewNotificationService(
	repo *repository.NotificationRepository,
	workers int,
	queueSize int,
	logger *zap.Logger,
) *NotificationService {
	s := &NotificationService{
		queue:  make(chan Event, queueSize),
		repo:   repo,
		logger: logger.Named("notifications"),
	}

	for i := 1; i <= workers; i++ {
		s.wg.Add(1)
		go s.worker(i)
	}

	return s
}

func (s *NotificationService) Publish(ev Event) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.queue <- ev:
		return true
	default:
		s.logger.Warn("notification queue full, dropping event",
			zap.String("action", string(ev.Action)),
			zap.Uint("task_id", ev.TaskID),
		)
		return false
	}
}

func (s *NotificationService) worker(workerID int) {
	defer s.wg.Done()

	s.logger.Debug("worker started", zap.Int("worker", workerID))

	for ev := range s.queue {
		s.handleEvent(workerID, ev)
	}

	s.logger.Debug("worker stopped", zap.Int("worker", workerID))
}

func (s *NotificationService) handleEvent(workerID int, ev Event) {
	n, ok := notificationFor(ev)
	if !ok {
		return
	}

	if err := s.repo.Create(context.Background(), &n); err != nil {
		s.logger.Error("failed to store notification",
			zap.Int("worker", workerID),
			zap.Uint("task_id", ev.TaskID),
			zap.Error(err),
		)
	}
}

func notificationFor(ev Event) (model.Notification, bool) {
	taskID := ev.TaskID
	n := model.Notification{TaskID: &taskID, TimeLabel: "только что"}

	switch ev.Action {
	case lifecycle.ActionCreate:
		n.Type = constants.NotificationWarning
		n.Text = fmt.Sprintf("Новая задача '%s' назначена: %s", ev.Title, ev.Assignee)
	case lifecycle.ActionStart:
		n.Type = constants.NotificationInfo
		n.Text = fmt.Sprintf("%s приступил(а) к задаче '%s'", ev.Actor, ev.Title)
	case lifecycle.ActionSubmit:
		n.Type = constants.NotificationInfo
		n.Text = fmt.Sprintf("%s отправил(а) фото на проверку", ev.Actor)
	case lifecycle.ActionApprove:
		n.Type = constants.NotificationSuccess
		n.Text = fmt.Sprintf("Задача '%s' утверждена", ev.Title)
	case lifecycle.ActionReject:
		n.Type = constants.NotificationWarning
		n.Text = fmt.Sprintf("Задача '%s' отклонена", ev.Title)
	default:
		return model.Notification{}, false
	}

	return n, true
}

func (s *NotificationService) List(ctx context.Context) ([]model.Notification, error) {
	return s.repo.List(ctx)
}

func (s *NotificationService) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.CountUnread(ctx)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) (int64, error) {
	return s.repo.MarkAllRead(ctx)
}

// Shutdown stops accepting events and waits for queued ones to be stored.
func (s *NotificationService) Shutdown(ctx context.Context) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.logger.Info("notification workers shut down cleanly")
	case <-ctx.Done():
		s.logger.Warn("notification workers shutdown timed out")
	}
}
