// Package fixtures seeds a fresh store with the demo users, tasks and notifications.
package fixtures

import (
	"context"
	"fmt"

	"taskphoto.com/taskphoto/internal/constants"
	model "taskphoto.com/taskphoto/internal/models"
	repository "taskphoto.com/taskphoto/internal/repositories"
	"taskphoto.com/taskphoto/internal/services"
)

type demoUser struct {
	user     model.User
	password string
}

func users() []demoUser {
	return []demoUser{
		{model.User{ID: 1, Name: "Администратор", Email: "admin@taskphoto.ru", Role: constants.RoleAdmin, Avatar: "АД", Department: "Администрация", Active: true, CreatedLabel: "01 янв, 2026"}, "admin123"},
		{model.User{ID: 2, Name: "Алексей Михайлов", Email: "manager@taskphoto.ru", Role: constants.RoleManager, Avatar: "АМ", Department: "Управление", Active: true, CreatedLabel: "10 янв, 2026"}, "manager123"},
		{model.User{ID: 3, Name: "Анна Петрова", Email: "anna@taskphoto.ru", Role: constants.RoleExecutor, Avatar: "АП", Department: "Торговый зал", Active: true, CreatedLabel: "15 янв, 2026"}, "anna123"},
		{model.User{ID: 4, Name: "Дмитрий Козлов", Email: "dmitry@taskphoto.ru", Role: constants.RoleExecutor, Avatar: "ДК", Department: "Склад", Active: true, CreatedLabel: "15 янв, 2026"}, "dmitry123"},
		{model.User{ID: 5, Name: "Мария Сидорова", Email: "maria@taskphoto.ru", Role: constants.RoleExecutor, Avatar: "МС", Department: "Оборудование", Active: true, CreatedLabel: "20 янв, 2026"}, "maria123"},
	}
}

func photo(url string) *string { return &url }

func tasks() []model.Task {
	return []model.Task{
		{ID: 1, Title: "Уборка торгового зала", Description: "Провести полную уборку торгового зала, протереть витрины и стеллажи", Assignee: "Анна Петрова", AssigneeAvatar: "АП", Status: constants.StatusReview, Priority: constants.PriorityHigh, Deadline: "Сегодня, 18:00", Location: "ТЦ Европейский, зал 3", PhotoRequired: true, PhotoURL: photo("https://images.unsplash.com/photo-1613235788198-4d3e37b1ed72?w=400&q=80"), CreatedLabel: "26 фев, 10:00", Category: "Уборка"},
		{ID: 2, Title: "Инвентаризация склада", Description: "Пересчитать товары на складе и внести данные в систему", Assignee: "Дмитрий Козлов", AssigneeAvatar: "ДК", Status: constants.StatusInProgress, Priority: constants.PriorityMedium, Deadline: "Завтра, 12:00", Location: "Склад №2, ул. Промышленная 15", PhotoRequired: true, CreatedLabel: "25 фев, 09:00", Category: "Склад"},
		{ID: 3, Title: "Проверка оборудования", Description: "Осмотреть и проверить работоспособность кассового оборудования", Assignee: "Мария Сидорова", AssigneeAvatar: "МС", Status: constants.StatusApproved, Priority: constants.PriorityLow, Deadline: "26 фев, 15:00", Location: "Офис на Тверской, 12", PhotoRequired: true, PhotoURL: photo("https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=400&q=80"), CreatedLabel: "24 фев, 14:00", Category: "Оборудование"},
		{ID: 4, Title: "Расстановка товаров", Description: "Выложить новый товар согласно планограмме", Assignee: "Анна Петрова", AssigneeAvatar: "АП", Status: constants.StatusNew, Priority: constants.PriorityHigh, Deadline: "27 фев, 10:00", Location: "ТЦ Европейский, зал 1", PhotoRequired: true, CreatedLabel: "26 фев, 11:30", Category: "Мерчандайзинг"},
	}
}

func notifications() []model.Notification {
	// Inserted oldest first so that listing by id desc shows them in feed order.
	return []model.Notification{
		{Text: "Новая задача назначена вам", TimeLabel: "3 часа назад", Type: constants.NotificationWarning, Read: true},
		{Text: "Дмитрий Козлов приступил к инвентаризации", TimeLabel: "2 часа назад", Type: constants.NotificationInfo, Read: true},
		{Text: "Задача 'Проверка оборудования' утверждена", TimeLabel: "1 час назад", Type: constants.NotificationSuccess},
		{Text: "Анна Петрова отправила фото на проверку", TimeLabel: "10 мин назад", Type: constants.NotificationInfo},
	}
}

type Seeder struct {
	tasks         *repository.TaskRepository
	users         *repository.UserRepository
	notifications *repository.NotificationRepository
	bcryptCost    int
}

func NewSeeder(
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	notifications *repository.NotificationRepository,
	bcryptCost int,
) *Seeder {
	return &Seeder{tasks: tasks, users: users, notifications: notifications, bcryptCost: bcryptCost}
}

// Seed fills an empty store. A store that already has users or tasks is left alone.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	existingUsers, err := s.users.List(ctx)
	if err != nil {
		return false, err
	}
	taskCount, err := s.tasks.Count(ctx)
	if err != nil {
		return false, err
	}
	if len(existingUsers) > 0 || taskCount > 0 {
		return false, nil
	}

	for _, demo := range users() {
		u := demo.user
		hash, err := services.HashPassword(demo.password, s.bcryptCost)
		if err != nil {
			return false, err
		}
		u.PasswordHash = hash
		if err := s.users.Insert(ctx, &u); err != nil {
			return false, fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}

	for _, t := range tasks() {
		t := t
		if err := s.tasks.Insert(ctx, &t); err != nil {
			return false, fmt.Errorf("seed task %d: %w", t.ID, err)
		}
	}

	for _, n := range notifications() {
		n := n
		if err := s.notifications.Create(ctx, &n); err != nil {
			return false, fmt.Errorf("seed notification: %w", err)
		}
	}

	return true, nil
}
