package handler

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/timeline"
	"birthday-timeline-api/usecase"
	"birthday-timeline-api/zodiac"
)

// errorStatus maps usecase errors onto HTTP statuses. Core validation errors
// are the caller's fault; everything else is a server failure.
func errorStatus(err error) int {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrors),
		errors.Is(err, zodiac.ErrInvalidDate),
		errors.Is(err, timeline.ErrSelfRelationship),
		errors.Is(err, timeline.ErrUnknownUser),
		errors.Is(err, timeline.ErrInvalidRelationType):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrPhoneTaken):
		return fiber.StatusConflict
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound
	}
	return fiber.StatusInternalServerError
}

func respondError(ctx *fiber.Ctx, err error) error {
	status := errorStatus(err)
	return ctx.Status(status).JSON(res.ErrorResponse{
		Status:     fiber.NewError(status).Message,
		StatusCode: status,
		Error:      err.Error(),
	})
}

func bearerToken(ctx *fiber.Ctx) string {
	header := ctx.Get("Authorization")
	if len(header) <= 7 {
		return ""
	}
	return header[7:]
}
