package fixtures

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"taskphoto.com/taskphoto/internal/constants"
	model "taskphoto.com/taskphoto/internal/models"
	repository "taskphoto.com/taskphoto/internal/repositories"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&model.Task{}, &model.User{}, &model.Notification{}); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	return db
}

func TestSeed_OnlyFillsEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	tasks := repository.NewTaskRepository(db)
	users := repository.NewUserRepository(db)
	seeder := NewSeeder(tasks, users, repository.NewNotificationRepository(db), bcrypt.MinCost)
	ctx := context.Background()

	seeded, err := seeder.Seed(ctx)
	if err != nil || !seeded {
		t.Fatalf("first seed: seeded=%v err=%v", seeded, err)
	}

	seeded, err = seeder.Seed(ctx)
	if err != nil || seeded {
		t.Fatalf("second seed must be a no-op: seeded=%v err=%v", seeded, err)
	}

	count, _ := tasks.Count(ctx)
	if count != 4 {
		t.Errorf("expected 4 tasks, got %d", count)
	}
}

func TestSeed_PhotosMatchStatus(t *testing.T) {
	for _, task := range tasks() {
		hasPhoto := task.PhotoURL != nil
		wantPhoto := task.Status != constants.StatusNew && task.Status != constants.StatusInProgress
		if hasPhoto != wantPhoto {
			t.Errorf("task %d in %s: photo present=%v", task.ID, task.Status, hasPhoto)
		}
	}
}

func TestSeed_PasswordsAreHashed(t *testing.T) {
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	seeder := NewSeeder(repository.NewTaskRepository(db), users, repository.NewNotificationRepository(db), bcrypt.MinCost)

	if _, err := seeder.Seed(context.Background()); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	admin, err := users.FindByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("failed to load admin: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")) != nil {
		t.Error("admin password hash does not match fixture password")
	}
}
