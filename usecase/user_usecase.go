package usecase

import (
	"context"

	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
)

type UserUsecase interface {
	GetUserByToken(ctx context.Context, token string) (res.UserResponse, error)
	GetAllUsers(ctx context.Context, token string) ([]res.UserResponse, error)
	EditProfile(ctx context.Context, token string, request *req.EditProfileRequest) (res.UserResponse, error)

	CreateUser(ctx context.Context, request *req.UserRequest) (res.UserResponse, error)
	UpdateUser(ctx context.Context, userID string, request *req.UserRequest) (res.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}
