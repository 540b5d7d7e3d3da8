package usecase

import (
	"context"
	"errors"

	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
)

// ErrPhoneTaken is returned by RegisterUser when the normalized phone already
// identifies an existing user.
var ErrPhoneTaken = errors.New("phone already registered")

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest) (res.RegisterResponse, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
}
