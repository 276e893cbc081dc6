package control_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"nistq/internal/repositories"
	"nistq/internal/services"
)

var Module = fx.Provide(
	provideControlRepo, provideControlService)

func provideControlRepo(db *gorm.DB) repositories.ControlRepositoryInterface {
	return repositories.NewControlRepository(db)
}

func provideControlService(controlRepo repositories.ControlRepositoryInterface) services.ControlServiceInterface {
	return services.NewControlService(controlRepo)
}
