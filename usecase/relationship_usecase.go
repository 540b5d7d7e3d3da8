package usecase

import (
	"context"

	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
)

type RelationshipUsecase interface {
	GetMyRelationships(ctx context.Context, token string) ([]res.RelationshipResponse, error)
	ReplaceMyRelationships(ctx context.Context, token string, request *req.ReplaceRelationshipsRequest) ([]res.RelationshipResponse, error)

	GetAllRelationships(ctx context.Context) ([]res.RelationshipResponse, error)
	CreateRelationship(ctx context.Context, request *req.RelationshipRequest) (res.RelationshipResponse, error)
	DeleteRelationship(ctx context.Context, relationshipID string) error
}
