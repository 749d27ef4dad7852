package internal

import (
	"televault/media-bot/internal/registry"
	"televault/media-bot/internal/service"

	"gorm.io/gorm"
)

type Deps struct {
	DB       *gorm.DB
	Registry *registry.Registry
	Archiver *service.Archiver
	Sweeper  *service.Sweeper
}
