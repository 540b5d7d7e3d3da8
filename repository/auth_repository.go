package repository

import (
	"gorm.io/gorm"

	"birthday-timeline-api/entity"
)

type AuthRepository struct {
	Repository[entity.Account]
}

func NewAuthRepository() *AuthRepository {
	return &AuthRepository{}
}

// FindByPhone resolves an account by normalized phone, with the owned user
// profile preloaded.
func (repository AuthRepository) FindByPhone(db *gorm.DB, phone string) (entity.Account, error) {
	account := &entity.Account{}
	err := db.Preload("User").Where("phone = ?", phone).First(account).Error
	if err != nil {
		return *account, err
	}
	return *account, err
}

// FindByUserID resolves the account owning the given user profile.
func (repository AuthRepository) FindByUserID(db *gorm.DB, userID string) (entity.Account, error) {
	account := &entity.Account{}
	err := db.Joins("User").Where(`"User".id = ?`, userID).First(account).Error
	return *account, err
}
