package repository

import (
	"context"
	"gorm.io/gorm"

	"birthday-timeline-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindAllOrdered returns the roster in insertion order. Timeline projection
// preserves this order, so it must stay deterministic.
func (repository UserRepository) FindAllOrdered(ctx context.Context, db *gorm.DB, users *[]entity.User) error {
	return db.WithContext(ctx).Order("created_at ASC").Find(users).Error
}

// FindByPhone looks a user up by their normalized phone.
func (repository UserRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (entity.User, error) {
	user := &entity.User{}
	err := db.WithContext(ctx).Where("phone = ?", phone).First(user).Error
	return *user, err
}
