package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/enum"
	"birthday-timeline-api/usecase"
)

type TimelineHandler struct {
	usecase.TimelineUsecase
	*logrus.Logger
}

func NewTimelineHandler(timelineUsecase usecase.TimelineUsecase, logger *logrus.Logger) *TimelineHandler {
	return &TimelineHandler{TimelineUsecase: timelineUsecase, Logger: logger}
}

// GetTimeline serves the viewer's projected timeline. Query params: "month"
// (0-based, or "all" / absent for no filter — absent is not January) and
// "relation" (one of the relationship type identifiers).
func (handler *TimelineHandler) GetTimeline(ctx *fiber.Ctx) error {
	var month *int
	if raw := ctx.Query("month"); raw != "" && raw != "all" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > 11 {
			return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
				Status:     fiber.ErrBadRequest.Message,
				StatusCode: fiber.StatusBadRequest,
				Error:      "month must be 0-11 or 'all'",
			})
		}
		month = &parsed
	}

	var relation *enum.RelationshipType
	if raw := ctx.Query("relation"); raw != "" && raw != "all" {
		parsed := enum.RelationshipType(raw)
		if !parsed.Valid() {
			return ctx.Status(fiber.StatusBadRequest).JSON(res.ErrorResponse{
				Status:     fiber.ErrBadRequest.Message,
				StatusCode: fiber.StatusBadRequest,
				Error:      "unknown relationship type",
			})
		}
		relation = &parsed
	}

	timelineResponse, err := handler.TimelineUsecase.GetTimeline(ctx.Context(), bearerToken(ctx), month, relation)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get timeline")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.TimelineResponse]{
		Message:    "Successfully To Get Timeline",
		StatusCode: fiber.StatusOK,
		Data:       timelineResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *TimelineHandler) GetStats(ctx *fiber.Ctx) error {
	statsResponse, err := handler.TimelineUsecase.GetStats(ctx.Context())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get roster stats")
		return respondError(ctx, err)
	}

	response := res.CommonResponse[res.StatsResponse]{
		Message:    "Successfully To Get Stats",
		StatusCode: fiber.StatusOK,
		Data:       statsResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
