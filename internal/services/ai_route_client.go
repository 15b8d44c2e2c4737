package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"routeplanner/internal/config"
	"routeplanner/internal/models/request_models"
	"routeplanner/internal/models/response_models"
)

type AIOutcome string

const (
	AIOutcomeOK                AIOutcome = "ok"
	AIOutcomeUnavailable       AIOutcome = "unavailable"
	AIOutcomeTransientFailure  AIOutcome = "transient_failure"
	AIOutcomeMalformedResponse AIOutcome = "malformed_response"
)

// AIResult is what a generation attempt produced. Variants is set only when Outcome is ok.
type AIResult struct {
	Outcome  AIOutcome
	Variants []response_models.PlanVariant
	Err      error
}

func (r AIResult) OK() bool {
	return r.Outcome == AIOutcomeOK && len(r.Variants) > 0
}

func unavailableResult() AIResult {
	return AIResult{Outcome: AIOutcomeUnavailable}
}

func transientResult(err error) AIResult {
	return AIResult{Outcome: AIOutcomeTransientFailure, Err: err}
}

func malformedResult(err error) AIResult {
	return AIResult{Outcome: AIOutcomeMalformedResponse, Err: err}
}

// AIRouteClientInterface never returns an error; every failure is carried in AIResult.
type AIRouteClientInterface interface {
	IsAvailable() bool
	Generate(ctx context.Context, req request_models.ItineraryRequest, dayCount int) AIResult
}

// NewAIRouteClient picks the provider named by AI_PROVIDER.
func NewAIRouteClient(cfg config.AIConfig, logger *zap.Logger) AIRouteClientInterface {
	if strings.EqualFold(cfg.Provider, "gemini") {
		return NewGeminiRouteClient(cfg, logger)
	}
	return NewOpenAIRouteClient(cfg, logger)
}

type OpenAIRouteClient struct {
	cfg    config.AIConfig
	client *openai.Client
	logger *zap.Logger
}

func NewOpenAIRouteClient(cfg config.AIConfig, logger *zap.Logger) *OpenAIRouteClient {
	c := &OpenAIRouteClient{
		cfg:    cfg,
		logger: logger.With(zap.String("component", "ai_route_client"), zap.String("provider", "openai")),
	}

	if cfg.HasAPIKey() {
		clientCfg := openai.DefaultConfig(strings.TrimSpace(cfg.APIKey))
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/") + "/v1"
		clientCfg.HTTPClient = newAIHTTPClient(cfg.ConnectTimeout(), cfg.ReadTimeout())
		c.client = openai.NewClientWithConfig(clientCfg)
	}

	return c
}

// newAIHTTPClient bounds dialing by connect and waiting for the reply by read.
func newAIHTTPClient(connect, read time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{Timeout: connect, KeepAlive: 30 * time.Second}).DialContext
	transport.TLSHandshakeTimeout = connect
	transport.ResponseHeaderTimeout = read

	return &http.Client{
		Transport: transport,
		Timeout:   connect + read,
	}
}

func (c *OpenAIRouteClient) IsAvailable() bool {
	return c.cfg.Enabled && c.cfg.HasAPIKey() && c.client != nil
}

func (c *OpenAIRouteClient) Generate(ctx context.Context, req request_models.ItineraryRequest, dayCount int) AIResult {
	if !c.IsAvailable() {
		return unavailableResult()
	}

	c.logger.Info("Calling chat completion for route variants",
		zap.String("model", c.cfg.Model),
		zap.Strings("destinations", req.Destinations))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: routeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildRouteUserPrompt(req)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.7,
	})
	if err != nil {
		return classifyOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return malformedResult(fmt.Errorf("%w: no choices", errMalformedRoute))
	}
	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return malformedResult(fmt.Errorf("%w: empty content", errMalformedRoute))
	}

	variants, err := parseRouteVariants(content, req.StartDate, dayCount)
	if err != nil {
		return malformedResult(err)
	}

	c.logger.Info("Route variants parsed", zap.Int("variants", len(variants)))
	return AIResult{Outcome: AIOutcomeOK, Variants: variants}
}

// classifyOpenAIError separates transport and HTTP status failures from bodies
// that could not be decoded.
func classifyOpenAIError(err error) AIResult {
	var apiErr *openai.APIError
	var reqErr *openai.RequestError
	if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
		return transientResult(err)
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return malformedResult(fmt.Errorf("%w: %v", errMalformedRoute, err))
	}

	return transientResult(err)
}
