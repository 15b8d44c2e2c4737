package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"routeplanner/cmd/fx/account_fx"
	"routeplanner/cmd/fx/config_fx"
	"routeplanner/cmd/fx/db_fx"
	"routeplanner/cmd/fx/memcache_fx"
	"routeplanner/cmd/fx/reaction_fx"
	"routeplanner/cmd/fx/route_fx"
	"routeplanner/internal/api/controllers"
	"routeplanner/internal/config"
	"routeplanner/pkg/middleware"
	mem "routeplanner/pkg/memcache"
	"routeplanner/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		reaction_fx.Module,
		route_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("HTTP server stopped unexpectedly", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type RouterParams struct {
	fx.In

	Config             *config.Config
	Logger             *zap.Logger
	JWT                *utils.JWTManager
	Limiter            mem.LimiterStore
	AccountController  *controllers.AccountController
	RouteController    *controllers.RouteController
	ReactionController *controllers.ReactionController
	HealthController   *controllers.HealthController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	auth := middleware.JWTAuthMiddleware(p.JWT)

	r.GET("/healthz", p.HealthController.Health)

	api := r.Group("/api")

	accountGroup := api.Group("/accounts")
	accountGroup.POST("/register", p.AccountController.Register)
	accountGroup.POST("/login", p.AccountController.Login)
	accountGroup.GET("/me", auth, p.AccountController.Me)

	routeGroup := api.Group("/routes")
	routeGroup.POST("/ai-generate",
		middleware.OptionalJWTMiddleware(p.JWT),
		middleware.RateLimitMiddleware(p.Limiter, p.Logger),
		p.RouteController.GenerateAiRoute)
	routeGroup.POST("", auth, p.RouteController.CreatePlan)
	routeGroup.GET("/my", auth, p.RouteController.ListMyPlans)
	routeGroup.GET("/hot", p.RouteController.ListHotPlans)
	routeGroup.GET("/:id", p.RouteController.GetPlan)
	routeGroup.DELETE("/:id", auth, p.RouteController.DeletePlan)

	api.GET("/users/:userId/routes", p.RouteController.ListUserPlans)

	reactionGroup := api.Group("/reactions")
	reactionGroup.GET("/:targetType/:targetId", p.ReactionController.GetCounts)
	reactionGroup.POST("/:targetType/:targetId/like", auth, p.ReactionController.ToggleLike)
	reactionGroup.POST("/:targetType/:targetId/favorite", auth, p.ReactionController.ToggleFavorite)
}
