package config

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "taskphoto.com/taskphoto/internal/models"
)

func New(dsn string, logger *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("db open failed: %w", err)
	}

	// SQLite allows one writer; a single connection also keeps a shared in-memory database alive.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Task{}, &model.User{}, &model.Notification{}); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("database ready", zap.String("dsn", dsn))
	return db, nil
}
