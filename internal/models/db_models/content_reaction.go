package db_models

import "github.com/google/uuid"

type ReactionKind string

const (
	ReactionLike     ReactionKind = "like"
	ReactionFavorite ReactionKind = "favorite"
)

// Target types a reaction can point at.
const (
	TargetRoute     = "route"
	TargetNote      = "note"
	TargetCompanion = "companion"
)

// ContentReaction rows are hard-deleted on toggle so the unique index stays usable.
type ContentReaction struct {
	BaseModel
	UserID     uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_reaction_unique"`
	Kind       ReactionKind `gorm:"size:16;uniqueIndex:idx_reaction_unique;index:idx_reaction_target"`
	TargetType string       `gorm:"size:32;uniqueIndex:idx_reaction_unique;index:idx_reaction_target"`
	TargetID   uuid.UUID    `gorm:"type:uuid;uniqueIndex:idx_reaction_unique;index:idx_reaction_target"`
}
