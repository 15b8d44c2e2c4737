package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"routeplanner/internal/models/request_models"
	"routeplanner/internal/services"
	"routeplanner/pkg/utils"
)

type RouteController struct {
	routeService services.RoutePlanServiceInterface
}

func NewRouteController(routeService services.RoutePlanServiceInterface) *RouteController {
	return &RouteController{
		routeService: routeService,
	}
}

// GenerateAiRoute godoc
// @Summary Generate three itinerary variants
// @Description Uses the configured AI provider and falls back to the built-in planner on any failure
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.ItineraryRequest true "Itinerary request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /routes/ai-generate [post]
func (r *RouteController) GenerateAiRoute(c *gin.Context) {
	var req request_models.ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	result, err := r.routeService.GenerateAiPlan(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Route variants generated successfully")
}

// CreatePlan godoc
// @Summary Save a route plan
// @Tags Routes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request_models.CreatePlanRequest true "Plan payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /routes [post]
func (r *RouteController) CreatePlan(c *gin.Context) {
	var req request_models.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	id, err := r.routeService.CreatePlan(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"id": id}, "Plan created successfully")
}

// ListMyPlans godoc
// @Summary List plans owned by the caller
// @Tags Routes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /routes/my [get]
func (r *RouteController) ListMyPlans(c *gin.Context) {
	plans, err := r.routeService.ListPlansByOwner(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// ListUserPlans godoc
// @Summary List plans owned by a user
// @Tags Routes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /users/{userId}/routes [get]
func (r *RouteController) ListUserPlans(c *gin.Context) {
	plans, err := r.routeService.ListPlansByOwner(c.Request.Context(), c.Param("userId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Plans retrieved successfully")
}

// ListHotPlans godoc
// @Summary Most popular plans
// @Description Ranked by likes plus favorites, newest first on ties
// @Tags Routes
// @Produce json
// @Param limit query int false "Number of plans" default(4)
// @Success 200 {object} utils.APIResponse
// @Router /routes/hot [get]
func (r *RouteController) ListHotPlans(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(services.DefaultHotLimit)))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit")
		return
	}

	plans, err := r.routeService.ListHotPlans(c.Request.Context(), limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plans, "Hot plans retrieved successfully")
}

// GetPlan godoc
// @Summary Get a plan with its days and activities
// @Tags Routes
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [get]
func (r *RouteController) GetPlan(c *gin.Context) {
	plan, err := r.routeService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, plan, "Plan retrieved successfully")
}

// DeletePlan godoc
// @Summary Delete a plan
// @Tags Routes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Plan ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [delete]
func (r *RouteController) DeletePlan(c *gin.Context) {
	if err := r.routeService.DeletePlan(c.Request.Context(), c.GetString("user_id"), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Plan deleted successfully")
}
