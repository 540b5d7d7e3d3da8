package usecase

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"birthday-timeline-api/config/common"
	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/entity"
	"birthday-timeline-api/phone"
	"birthday-timeline-api/repository"
	"birthday-timeline-api/security"
	"birthday-timeline-api/util"
)

type AuthUsecaseImpl struct {
	*repository.AuthRepository
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
	*security.JWT
	Config *common.Config
}

func NewAuthUsecase(authRepository *repository.AuthRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logrus.Logger, JWT *security.JWT, config *common.Config) AuthUsecase {
	return &AuthUsecaseImpl{AuthRepository: authRepository, UserRepository: userRepository, Validate: validate, DB: DB, Logger: logger, JWT: JWT, Config: config}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.RegisterResponse{}, err
	}

	normalized := phone.Normalize(request.Phone)

	// the normalized phone is the login identity and must stay unique
	if _, err := uc.UserRepository.FindByPhone(ctx, uc.DB, normalized); err == nil {
		uc.Logger.Errorf("phone already registered : %s", phone.Mask(normalized))
		return res.RegisterResponse{}, ErrPhoneTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		uc.Logger.WithError(err).Errorf("failed to check phone : %v", err)
		return res.RegisterResponse{}, err
	}

	// birthdate and the derived zodiac fields are written together
	newUser := &entity.User{
		Name:    request.Name,
		Phone:   normalized,
		IsAdmin: phone.IsAdmin(normalized, uc.Config.GetAdminPhone()),
	}
	if err := applyZodiac(newUser, request.Birthdate); err != nil {
		uc.Logger.WithError(err).Errorf("failed to classify birthdate : %v", err)
		return res.RegisterResponse{}, err
	}

	// start transaction
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	hashPassword, err := util.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to hash password : %v", err)
		return res.RegisterResponse{}, err
	}

	newAccount := &entity.Account{
		Phone:    normalized,
		Password: hashPassword,
		User:     *newUser,
	}
	// save to db
	if err := uc.AuthRepository.Save(ctx, trx, newAccount); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return res.RegisterResponse{}, err
	}
	// if success commit else rollback
	if err := trx.Commit().Error; err != nil {
		uc.Logger.WithError(err).Errorf("failed to commit user : %v", err)
		return res.RegisterResponse{}, err
	}
	// mapping response
	return res.RegisterResponse{
		ID:    newAccount.User.ID,
		Name:  newAccount.User.Name,
		Phone: newAccount.User.Phone,
	}, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	// validate request
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return res.LoginResponse{}, err
	}

	// identity is the normalized phone
	currentAccount, err := uc.AuthRepository.FindByPhone(uc.DB.WithContext(ctx), phone.Normalize(request.Phone))
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to find account by phone = %v", err)
		return res.LoginResponse{}, err
	}
	// compare the password
	if matchPassword := util.ComparePassword(currentAccount.Password, request.Password); !matchPassword {
		uc.Logger.Error("Failed to compare password")
		return res.LoginResponse{}, gorm.ErrRecordNotFound
	}
	// generate token
	token, err := uc.JWT.GenerateToken(&currentAccount.User)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token = %v", err)
		return res.LoginResponse{}, err
	}
	// mapping response
	return res.LoginResponse{
		Token:              token,
		User:               toUserResponse(currentAccount.User),
		MustChangePassword: currentAccount.MustChangePassword,
	}, nil
}
