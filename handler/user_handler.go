package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/usecase"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetUserByToken(ctx *fiber.Ctx) error {
	token := bearerToken(ctx)
	if token == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Missing Authorization header",
		})
	}

	userResponse, err := handler.UserUsecase.GetUserByToken(ctx.Context(), token)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by token")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User By Token",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	userResponses, err := handler.UserUsecase.GetAllUsers(ctx.Context(), bearerToken(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all users")
		return respondError(ctx, err)
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully To Get All User",
		StatusCode: fiber.StatusOK,
		Data:       userResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) EditProfile(ctx *fiber.Ctx) error {
	payload := new(req.EditProfileRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return respondError(ctx, err)
	}

	userResponse, err := handler.UserUsecase.EditProfile(ctx.Context(), bearerToken(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to edit profile")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Update Profile",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) CreateUser(ctx *fiber.Ctx) error {
	payload := new(req.UserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return respondError(ctx, err)
	}

	userResponse, err := handler.UserUsecase.CreateUser(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to create user")
		return respondError(ctx, err)
	}

	handler.Logger.Infof("Success create user with id: %s", userResponse.ID)
	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Create User",
		StatusCode: fiber.StatusCreated,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *UserHandler) UpdateUser(ctx *fiber.Ctx) error {
	payload := new(req.UserRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return respondError(ctx, err)
	}

	userResponse, err := handler.UserUsecase.UpdateUser(ctx.Context(), ctx.Params("userId"), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to update user")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Update User",
		StatusCode: fiber.StatusOK,
		Data:       userResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	if err := handler.UserUsecase.DeleteUser(ctx.Context(), ctx.Params("userId")); err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete user")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully To Delete User",
		StatusCode: fiber.StatusOK,
		Data:       ctx.Params("userId"),
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
