package repository

import (
	"context"
	"gorm.io/gorm"

	"birthday-timeline-api/entity"
)

type RelationshipRepository struct {
	Repository[entity.Relationship]
}

func NewRelationshipRepository() *RelationshipRepository {
	return &RelationshipRepository{}
}

// FindAllByOwner returns the edges authored by the given user.
func (repository RelationshipRepository) FindAllByOwner(ctx context.Context, db *gorm.DB, userID string, edges *[]entity.Relationship) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Find(edges).Error
}

// DeleteOwnedBy removes every edge authored by the given user. Edges authored
// by other users over the same pairs are left untouched; that is the
// replace-owned-edges contract.
func (repository RelationshipRepository) DeleteOwnedBy(ctx context.Context, db *gorm.DB, userID string) error {
	return db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Relationship{}).Error
}

// DeleteAllTouching removes every edge with the given user on either side.
// Used by the user-delete cascade.
func (repository RelationshipRepository) DeleteAllTouching(ctx context.Context, db *gorm.DB, userID string) error {
	return db.WithContext(ctx).
		Where("user_id = ? OR related_user_id = ?", userID, userID).
		Delete(&entity.Relationship{}).Error
}
