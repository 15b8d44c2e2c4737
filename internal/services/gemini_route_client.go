package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"routeplanner/internal/config"
	"routeplanner/internal/models/request_models"
)

type GeminiRouteClient struct {
	cfg    config.AIConfig
	client *genai.Client
	logger *zap.Logger
}

func NewGeminiRouteClient(cfg config.AIConfig, logger *zap.Logger) *GeminiRouteClient {
	c := &GeminiRouteClient{
		cfg:    cfg,
		logger: logger.With(zap.String("component", "ai_route_client"), zap.String("provider", "gemini")),
	}

	if cfg.HasAPIKey() {
		client, err := genai.NewClient(context.Background(), option.WithAPIKey(strings.TrimSpace(cfg.GeminiAPIKey)))
		if err != nil {
			c.logger.Warn("Failed to create Gemini client, AI generation disabled", zap.Error(err))
		} else {
			c.client = client
		}
	}

	return c
}

func (c *GeminiRouteClient) IsAvailable() bool {
	return c.cfg.Enabled && c.cfg.HasAPIKey() && c.client != nil
}

func (c *GeminiRouteClient) Generate(ctx context.Context, req request_models.ItineraryRequest, dayCount int) AIResult {
	if !c.IsAvailable() {
		return unavailableResult()
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.ConnectTimeout()+c.cfg.ReadTimeout())
	defer cancel()

	m := c.client.GenerativeModel(c.cfg.GeminiModel)
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(0.7)
	m.SystemInstruction = genai.NewUserContent(genai.Text(routeSystemPrompt))

	c.logger.Info("Calling Gemini for route variants",
		zap.String("model", c.cfg.GeminiModel),
		zap.Strings("destinations", req.Destinations))

	resp, err := m.GenerateContent(ctx, genai.Text(buildRouteUserPrompt(req)))
	if err != nil {
		return transientResult(fmt.Errorf("gemini: %w", err))
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return malformedResult(fmt.Errorf("%w: no candidates", errMalformedRoute))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	content := sb.String()
	if strings.TrimSpace(content) == "" {
		return malformedResult(fmt.Errorf("%w: empty content", errMalformedRoute))
	}

	variants, err := parseRouteVariants(content, req.StartDate, dayCount)
	if err != nil {
		return malformedResult(err)
	}

	return AIResult{Outcome: AIOutcomeOK, Variants: variants}
}

func (c *GeminiRouteClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
