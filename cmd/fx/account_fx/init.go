package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"routeplanner/internal/api/controllers"
	"routeplanner/internal/repositories"
	"routeplanner/internal/services"
	"routeplanner/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(accountRepo repositories.AccountRepository, jwt *utils.JWTManager, logger *zap.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwt, logger)
}
