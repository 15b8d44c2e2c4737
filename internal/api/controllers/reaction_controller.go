package controllers

import (
	"github.com/gin-gonic/gin"
	"routeplanner/internal/models/db_models"
	"routeplanner/internal/models/response_models"
	"routeplanner/internal/services"
	"routeplanner/pkg/utils"
)

type ReactionController struct {
	reactionService services.ContentReactionServiceInterface
}

func NewReactionController(reactionService services.ContentReactionServiceInterface) *ReactionController {
	return &ReactionController{
		reactionService: reactionService,
	}
}

// ToggleLike godoc
// @Summary Like or unlike a route, note or companion post
// @Tags Reactions
// @Produce json
// @Security BearerAuth
// @Param targetType path string true "route | note | companion"
// @Param targetId path string true "Target ID"
// @Success 200 {object} utils.APIResponse
// @Router /reactions/{targetType}/{targetId}/like [post]
func (r *ReactionController) ToggleLike(c *gin.Context) {
	r.toggle(c, db_models.ReactionLike)
}

// ToggleFavorite godoc
// @Summary Favorite or unfavorite a route, note or companion post
// @Tags Reactions
// @Produce json
// @Security BearerAuth
// @Param targetType path string true "route | note | companion"
// @Param targetId path string true "Target ID"
// @Success 200 {object} utils.APIResponse
// @Router /reactions/{targetType}/{targetId}/favorite [post]
func (r *ReactionController) ToggleFavorite(c *gin.Context) {
	r.toggle(c, db_models.ReactionFavorite)
}

// GetCounts godoc
// @Summary Like and favorite totals of a route, note or companion post
// @Tags Reactions
// @Produce json
// @Param targetType path string true "route | note | companion"
// @Param targetId path string true "Target ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reactions/{targetType}/{targetId} [get]
func (r *ReactionController) GetCounts(c *gin.Context) {
	ctx := c.Request.Context()
	targetType, targetID := c.Param("targetType"), c.Param("targetId")

	likes, err := r.reactionService.Count(ctx, db_models.ReactionLike, targetType, targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	favorites, err := r.reactionService.Count(ctx, db_models.ReactionFavorite, targetType, targetID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ReactionCountsResponse{LikeCount: likes, FavoriteCount: favorites}, "Reaction counts retrieved")
}

func (r *ReactionController) toggle(c *gin.Context, kind db_models.ReactionKind) {
	res, err := r.reactionService.Toggle(c.Request.Context(), c.GetString("user_id"), kind, c.Param("targetType"), c.Param("targetId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, res, "Reaction updated")
}
