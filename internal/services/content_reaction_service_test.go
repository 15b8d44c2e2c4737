package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"routeplanner/internal/models/db_models"
	"routeplanner/pkg/utils"
)

func TestToggleReaction(t *testing.T) {
	repo := newFakeReactionRepo()
	svc := NewContentReactionService(repo, zap.NewNop())
	ctx := context.Background()
	user := uuid.NewString()
	target := uuid.New()
	repo.seed(db_models.ReactionLike, db_models.TargetRoute, target, 2)

	res, err := svc.Toggle(ctx, user, db_models.ReactionLike, db_models.TargetRoute, target.String())
	require.NoError(t, err)
	assert.True(t, res.Active)
	assert.Equal(t, int64(3), res.Count)

	res, err = svc.Toggle(ctx, user, db_models.ReactionLike, db_models.TargetRoute, target.String())
	require.NoError(t, err)
	assert.False(t, res.Active)
	assert.Equal(t, int64(2), res.Count)

	favs, err := svc.Count(ctx, db_models.ReactionFavorite, db_models.TargetRoute, target.String())
	require.NoError(t, err)
	assert.Zero(t, favs)
}

func TestToggleReactionKindsAreIndependent(t *testing.T) {
	repo := newFakeReactionRepo()
	svc := NewContentReactionService(repo, zap.NewNop())
	ctx := context.Background()
	user := uuid.NewString()
	target := uuid.NewString()

	_, err := svc.Toggle(ctx, user, db_models.ReactionFavorite, db_models.TargetNote, target)
	require.NoError(t, err)

	likes, err := svc.Count(ctx, db_models.ReactionLike, db_models.TargetNote, target)
	require.NoError(t, err)
	assert.Zero(t, likes)

	favs, err := svc.Count(ctx, db_models.ReactionFavorite, db_models.TargetNote, target)
	require.NoError(t, err)
	assert.Equal(t, int64(1), favs)
}

func TestToggleReactionValidation(t *testing.T) {
	svc := NewContentReactionService(newFakeReactionRepo(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.Toggle(ctx, "", db_models.ReactionLike, db_models.TargetRoute, uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrUnauthorized)

	_, err = svc.Toggle(ctx, uuid.NewString(), db_models.ReactionLike, "comment", uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrInvalidTargetType)

	_, err = svc.Toggle(ctx, uuid.NewString(), db_models.ReactionLike, db_models.TargetCompanion, "42")
	assert.ErrorIs(t, err, utils.ErrInvalidID)
}

// staleExistsRepo reports every reaction as absent, as a concurrent toggle
// that read before the other one committed would see it.
type staleExistsRepo struct {
	*fakeReactionRepo
}

func (r staleExistsRepo) Exists(ctx context.Context, userID uuid.UUID, kind db_models.ReactionKind, targetType string, targetID uuid.UUID) (bool, error) {
	return false, nil
}

func TestToggleReactionConcurrentAddStaysActive(t *testing.T) {
	repo := staleExistsRepo{newFakeReactionRepo()}
	svc := NewContentReactionService(repo, zap.NewNop())
	ctx := context.Background()
	user := uuid.NewString()
	target := uuid.NewString()

	for i := 0; i < 2; i++ {
		res, err := svc.Toggle(ctx, user, db_models.ReactionLike, db_models.TargetRoute, target)
		require.NoError(t, err)
		assert.True(t, res.Active)
		assert.Equal(t, int64(1), res.Count)
	}
}
