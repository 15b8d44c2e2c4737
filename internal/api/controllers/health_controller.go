package controllers

import (
	"github.com/gin-gonic/gin"
	"routeplanner/internal/services"
	"routeplanner/pkg/geo"
	"routeplanner/pkg/utils"
)

type HealthController struct {
	aiClient  services.AIRouteClientInterface
	gazetteer geo.Gazetteer
}

func NewHealthController(aiClient services.AIRouteClientInterface, gazetteer geo.Gazetteer) *HealthController {
	return &HealthController{aiClient: aiClient, gazetteer: gazetteer}
}

// Health reports liveness, whether the AI provider is configured and the gazetteer size.
func (h *HealthController) Health(c *gin.Context) {
	utils.RespondSuccess(c, gin.H{
		"status":            "ok",
		"ai_available":      h.aiClient.IsAvailable(),
		"gazetteer_entries": h.gazetteer.Len(),
	}, "ok")
}
