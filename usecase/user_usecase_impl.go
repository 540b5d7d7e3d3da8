package usecase

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"birthday-timeline-api/config/common"
	"birthday-timeline-api/config/logger"
	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/entity"
	"birthday-timeline-api/phone"
	"birthday-timeline-api/repository"
	"birthday-timeline-api/security"
	"birthday-timeline-api/timeline"
	"birthday-timeline-api/util"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	*repository.AuthRepository
	*repository.RelationshipRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
	*security.JWT
	Config *common.Config
}

func NewUserUsecase(userRepository *repository.UserRepository, authRepository *repository.AuthRepository, relationshipRepository *repository.RelationshipRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, JWT *security.JWT, config *common.Config) UserUsecase {
	return &UserUsecaseImpl{
		UserRepository:         userRepository,
		AuthRepository:         authRepository,
		RelationshipRepository: relationshipRepository,
		Validate:               validate,
		DB:                     DB,
		Log:                    logger,
		JWT:                    JWT,
		Config:                 config,
	}
}

func (uc *UserUsecaseImpl) GetUserByToken(ctx context.Context, token string) (res.UserResponse, error) {
	uc.Log.Http.Trace.Trace().Msg("Extracting user ID from token")

	userIdFromToken, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Log.Http.Error.Error().
			Err(err).
			Msg("Failed to extract user ID from token")
		return res.UserResponse{}, errors.New("invalid token")
	}

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userIdFromToken); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().
				Str("userId", userIdFromToken).
				Msg("User not found")
		} else {
			uc.Log.Http.Error.Error().
				Err(err).
				Str("userId", userIdFromToken).
				Msg("Failed to find user")
		}
		return res.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// GetAllUsers returns the roster projected for the viewer: phones of other
// users are masked for display, and avatar plus wishlist are withheld from
// private profiles the viewer has no relationship with. The records
// themselves are never filtered out.
func (uc *UserUsecaseImpl) GetAllUsers(ctx context.Context, token string) ([]res.UserResponse, error) {
	viewerID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to extract user ID from token")
		return nil, errors.New("invalid token")
	}

	var users []entity.User
	if err := uc.UserRepository.FindAllOrdered(ctx, uc.DB, &users); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get all users")
		return nil, err
	}

	var edges []entity.Relationship
	if err := uc.RelationshipRepository.FindAll(ctx, uc.DB, &edges); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get relationships")
		return nil, err
	}

	userResponses := make([]res.UserResponse, 0, len(users))
	for _, user := range users {
		edge := timeline.FindEdge(edges, viewerID, user.ID)
		visible := timeline.Visible(viewerID, user, edge != nil)

		response := toUserResponse(user)
		if user.ID != viewerID {
			response.Phone = phone.Mask(user.Phone)
		}
		if !visible {
			response.AvatarURL = ""
			response.Wishlist = ""
		}
		userResponses = append(userResponses, response)
	}

	uc.Log.Http.Info.Info().
		Int("userCount", len(userResponses)).
		Msg("Successfully retrieved all users")

	return userResponses, nil
}

func (uc *UserUsecaseImpl) EditProfile(ctx context.Context, token string, request *req.EditProfileRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate request")
		return res.UserResponse{}, err
	}

	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		return res.UserResponse{}, errors.New("invalid token")
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, userID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("userId", userID).Msg("Failed to find user")
		return res.UserResponse{}, err
	}

	oldPhone := user.Phone
	user.Name = request.Name
	user.Phone = phone.Normalize(request.Phone)
	user.AvatarURL = request.AvatarURL
	user.Wishlist = request.Wishlist
	user.Likes = request.Likes
	user.IsProfilePrivate = request.IsProfilePrivate
	if err := applyZodiac(&user, request.Birthdate); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to classify birthdate")
		return res.UserResponse{}, err
	}

	if err := uc.UserRepository.Update(ctx, trx, &user); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to update user")
		return res.UserResponse{}, err
	}

	// the account mirrors the login phone and optionally a new password
	if user.Phone != oldPhone || request.NewPassword != "" {
		account, err := uc.AuthRepository.FindByUserID(trx, user.ID)
		if err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to find account for user")
			return res.UserResponse{}, err
		}
		account.Phone = user.Phone
		if request.NewPassword != "" {
			hashed, err := util.HashPassword(request.NewPassword)
			if err != nil {
				return res.UserResponse{}, err
			}
			account.Password = hashed
			account.MustChangePassword = false
		}
		if err := uc.AuthRepository.Update(ctx, trx, &account); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to update account")
			return res.UserResponse{}, err
		}
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to commit profile update")
		return res.UserResponse{}, err
	}

	uc.Log.Http.Info.Info().Str("userId", user.ID).Msg("Profile updated")
	return toUserResponse(user), nil
}

func (uc *UserUsecaseImpl) CreateUser(ctx context.Context, request *req.UserRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate request")
		return res.UserResponse{}, err
	}

	normalized := phone.Normalize(request.Phone)
	newUser := entity.User{
		Name:             request.Name,
		Phone:            normalized,
		AvatarURL:        request.AvatarURL,
		Wishlist:         request.Wishlist,
		Likes:            request.Likes,
		IsProfilePrivate: request.IsProfilePrivate,
		IsAdmin:          phone.IsAdmin(normalized, uc.Config.GetAdminPhone()),
	}
	if err := applyZodiac(&newUser, request.Birthdate); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to classify birthdate")
		return res.UserResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	// admin-created accounts start on the default password
	hashed, err := util.HashPassword(uc.Config.GetDefaultPassword())
	if err != nil {
		return res.UserResponse{}, err
	}
	newAccount := entity.Account{
		Phone:              normalized,
		Password:           hashed,
		MustChangePassword: true,
		User:               newUser,
	}
	if err := uc.AuthRepository.Save(ctx, trx, &newAccount); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to save user")
		return res.UserResponse{}, err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to commit user")
		return res.UserResponse{}, err
	}

	uc.Log.Http.Info.Info().Str("userId", newAccount.User.ID).Msg("User created by admin")
	return toUserResponse(newAccount.User), nil
}

func (uc *UserUsecaseImpl) UpdateUser(ctx context.Context, userID string, request *req.UserRequest) (res.UserResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate request")
		return res.UserResponse{}, err
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, userID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("userId", userID).Msg("Failed to find user")
		return res.UserResponse{}, err
	}

	oldPhone := user.Phone
	user.Name = request.Name
	user.Phone = phone.Normalize(request.Phone)
	user.AvatarURL = request.AvatarURL
	user.Wishlist = request.Wishlist
	user.Likes = request.Likes
	user.IsProfilePrivate = request.IsProfilePrivate
	if err := applyZodiac(&user, request.Birthdate); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to classify birthdate")
		return res.UserResponse{}, err
	}

	if err := uc.UserRepository.Update(ctx, trx, &user); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to update user")
		return res.UserResponse{}, err
	}

	if user.Phone != oldPhone {
		account, err := uc.AuthRepository.FindByUserID(trx, user.ID)
		if err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to find account for user")
			return res.UserResponse{}, err
		}
		account.Phone = user.Phone
		if err := uc.AuthRepository.Update(ctx, trx, &account); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to update account")
			return res.UserResponse{}, err
		}
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to commit user update")
		return res.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// DeleteUser removes a roster member and cascades to every relationship edge
// touching them, on either side.
func (uc *UserUsecaseImpl) DeleteUser(ctx context.Context, userID string) error {
	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, trx, &user, userID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("userId", userID).Msg("Failed to find user")
		return err
	}

	if err := uc.RelationshipRepository.DeleteAllTouching(ctx, trx, userID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to delete relationships for user")
		return err
	}

	if account, err := uc.AuthRepository.FindByUserID(trx, userID); err == nil {
		if err := uc.AuthRepository.Delete(ctx, trx, &account); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to delete account")
			return err
		}
	}

	if err := uc.UserRepository.Delete(ctx, trx, &user); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to delete user")
		return err
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to commit user delete")
		return err
	}

	uc.Log.Http.Info.Info().Str("userId", userID).Msg("User deleted with edge cascade")
	return nil
}
