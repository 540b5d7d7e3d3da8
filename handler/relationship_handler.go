package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/usecase"
)

type RelationshipHandler struct {
	usecase.RelationshipUsecase
	*logrus.Logger
}

func NewRelationshipHandler(relationshipUsecase usecase.RelationshipUsecase, logger *logrus.Logger) *RelationshipHandler {
	return &RelationshipHandler{RelationshipUsecase: relationshipUsecase, Logger: logger}
}

func (handler *RelationshipHandler) GetMyRelationships(ctx *fiber.Ctx) error {
	relationshipResponses, err := handler.RelationshipUsecase.GetMyRelationships(ctx.Context(), bearerToken(ctx))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get owned relationships")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[[]res.RelationshipResponse]{
		Message:    "Successfully To Get My Relationships",
		StatusCode: fiber.StatusOK,
		Data:       relationshipResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *RelationshipHandler) ReplaceMyRelationships(ctx *fiber.Ctx) error {
	payload := new(req.ReplaceRelationshipsRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return respondError(ctx, err)
	}

	relationshipResponses, err := handler.RelationshipUsecase.ReplaceMyRelationships(ctx.Context(), bearerToken(ctx), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to replace owned relationships")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[[]res.RelationshipResponse]{
		Message:    "Successfully To Replace My Relationships",
		StatusCode: fiber.StatusOK,
		Data:       relationshipResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *RelationshipHandler) GetAllRelationships(ctx *fiber.Ctx) error {
	relationshipResponses, err := handler.RelationshipUsecase.GetAllRelationships(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all relationships")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[[]res.RelationshipResponse]{
		Message:    "Successfully To Get All Relationships",
		StatusCode: fiber.StatusOK,
		Data:       relationshipResponses,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *RelationshipHandler) CreateRelationship(ctx *fiber.Ctx) error {
	payload := new(req.RelationshipRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return respondError(ctx, err)
	}

	relationshipResponse, err := handler.RelationshipUsecase.CreateRelationship(ctx.Context(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to create relationship")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.RelationshipResponse]{
		Message:    "Successfully To Create Relationship",
		StatusCode: fiber.StatusCreated,
		Data:       relationshipResponse,
	}
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *RelationshipHandler) DeleteRelationship(ctx *fiber.Ctx) error {
	if err := handler.RelationshipUsecase.DeleteRelationship(ctx.Context(), ctx.Params("relationshipId")); err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete relationship")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[string]{
		Message:    "Successfully To Delete Relationship",
		StatusCode: fiber.StatusOK,
		Data:       ctx.Params("relationshipId"),
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
