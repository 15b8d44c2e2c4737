package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"routeplanner/internal/models/db_models"
	"routeplanner/internal/models/response_models"
	"routeplanner/internal/repositories"
	"routeplanner/pkg/utils"
)

var reactionTargetTypes = map[string]bool{
	db_models.TargetRoute:     true,
	db_models.TargetNote:      true,
	db_models.TargetCompanion: true,
}

type ContentReactionServiceInterface interface {
	Toggle(ctx context.Context, userID string, kind db_models.ReactionKind, targetType string, targetID string) (*response_models.ReactionResponse, error)
	Count(ctx context.Context, kind db_models.ReactionKind, targetType string, targetID string) (int64, error)
}

type ContentReactionService struct {
	reactionRepo repositories.ContentReactionRepository
	logger       *zap.Logger
}

func NewContentReactionService(reactionRepo repositories.ContentReactionRepository, logger *zap.Logger) ContentReactionServiceInterface {
	return &ContentReactionService{
		reactionRepo: reactionRepo,
		logger:       logger.With(zap.String("component", "content_reaction_service")),
	}
}

func parseReactionTarget(targetType, targetID string) (uuid.UUID, error) {
	if !reactionTargetTypes[targetType] {
		return uuid.Nil, utils.ErrInvalidTargetType
	}
	id, err := uuid.Parse(targetID)
	if err != nil {
		return uuid.Nil, utils.ErrInvalidID
	}
	return id, nil
}

// Toggle adds the reaction if absent and removes it otherwise.
func (s *ContentReactionService) Toggle(ctx context.Context, userID string, kind db_models.ReactionKind, targetType string, targetID string) (*response_models.ReactionResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthorized
	}
	target, err := parseReactionTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	exists, err := s.reactionRepo.Exists(ctx, user, kind, targetType, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	if exists {
		err = s.reactionRepo.Remove(ctx, user, kind, targetType, target)
	} else {
		err = s.reactionRepo.Add(ctx, &db_models.ContentReaction{
			UserID:     user,
			Kind:       kind,
			TargetType: targetType,
			TargetID:   target,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	count, err := s.reactionRepo.CountByTarget(ctx, kind, targetType, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	s.logger.Debug("Reaction toggled",
		zap.String("kind", string(kind)),
		zap.String("target_type", targetType),
		zap.String("target_id", targetID),
		zap.Bool("active", !exists))

	return &response_models.ReactionResponse{Active: !exists, Count: count}, nil
}

func (s *ContentReactionService) Count(ctx context.Context, kind db_models.ReactionKind, targetType string, targetID string) (int64, error) {
	target, err := parseReactionTarget(targetType, targetID)
	if err != nil {
		return 0, err
	}
	count, err := s.reactionRepo.CountByTarget(ctx, kind, targetType, target)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return count, nil
}
