// Package db contains things related to opening the media database
package db

import (
	"fmt"

	"televault/media-bot/internal/model"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	switch viper.GetString("database.driver") {
	case "postgres":
		dial = postgres.Open(viper.GetString("database.dsn"))
	default:
		dial = sqlite.Open(viper.GetString("database.path"))
	}

	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database, %w", err)
	}

	// Stores created before thumbnails were tracked lack the thumb_id
	// column. Adding it twice must stay harmless
	m := db.Migrator()
	if m.HasTable(&model.Media{}) && !m.HasColumn(&model.Media{}, "thumb_id") {
		if err := m.AddColumn(&model.Media{}, "thumb_id"); err != nil {
			zap.L().Warn("Failed to add thumb_id column to legacy store", zap.Error(err))
		}
	}

	err = db.AutoMigrate(&model.Media{})
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
