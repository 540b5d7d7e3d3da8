package usecase

import (
	"context"

	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/enum"
)

type TimelineUsecase interface {
	GetTimeline(ctx context.Context, token string, month *int, relation *enum.RelationshipType) (res.TimelineResponse, error)
	GetStats(ctx context.Context) (res.StatsResponse, error)
}
