package reaction_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"routeplanner/internal/api/controllers"
	"routeplanner/internal/repositories"
	"routeplanner/internal/services"
)

var Module = fx.Provide(
	provideReactionRepo, services.NewContentReactionService, controllers.NewReactionController)

func provideReactionRepo(db *gorm.DB) repositories.ContentReactionRepository {
	return repositories.NewContentReactionRepository(db)
}
