package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"routeplanner/internal/config"
	"routeplanner/internal/infra"
	"routeplanner/pkg/utils"
)

var Module = fx.Provide(
	config.Load, provideLogger, provideAIConfig, provideJWTManager)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return infra.NewLogger(cfg)
}

func provideAIConfig(cfg *config.Config) config.AIConfig {
	return cfg.AIConfig
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL())
}
