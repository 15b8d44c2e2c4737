package route_fx

import (
	"context"
	"io"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"routeplanner/internal/api/controllers"
	"routeplanner/internal/config"
	"routeplanner/internal/repositories"
	"routeplanner/internal/services"
	"routeplanner/pkg/geo"
)

var Module = fx.Provide(
	geo.NewDefaultGazetteer,
	services.NewFallbackRouteGenerator,
	provideAIClient,
	provideTripPlanRepo,
	provideRoutePlanService,
	controllers.NewRouteController,
	controllers.NewHealthController,
)

func provideAIClient(lc fx.Lifecycle, cfg config.AIConfig, logger *zap.Logger) services.AIRouteClientInterface {
	client := services.NewAIRouteClient(cfg, logger)
	if closer, ok := client.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return client
}

func provideTripPlanRepo(db *gorm.DB) repositories.TripPlanRepository {
	return repositories.NewTripPlanRepository(db)
}

func provideRoutePlanService(
	aiClient services.AIRouteClientInterface,
	fallback services.FallbackRouteGeneratorInterface,
	gazetteer geo.Gazetteer,
	planRepo repositories.TripPlanRepository,
	reactionRepo repositories.ContentReactionRepository,
	accountRepo repositories.AccountRepository,
	cfg *config.Config,
	logger *zap.Logger,
) services.RoutePlanServiceInterface {
	return services.NewRoutePlanService(aiClient, fallback, gazetteer, planRepo, reactionRepo, accountRepo, cfg.HotCandidatePool, logger)
}
