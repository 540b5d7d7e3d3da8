package usecase

import (
	"context"
	"errors"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"birthday-timeline-api/config/logger"
	"birthday-timeline-api/dto/req"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/entity"
	"birthday-timeline-api/enum"
	"birthday-timeline-api/repository"
	"birthday-timeline-api/security"
	"birthday-timeline-api/timeline"
)

type RelationshipUsecaseImpl struct {
	*repository.RelationshipRepository
	*repository.UserRepository
	*validator.Validate
	*gorm.DB
	Log *logger.AppLogger
	*security.JWT
}

func NewRelationshipUsecase(relationshipRepository *repository.RelationshipRepository, userRepository *repository.UserRepository, validate *validator.Validate, DB *gorm.DB, logger *logger.AppLogger, JWT *security.JWT) RelationshipUsecase {
	return &RelationshipUsecaseImpl{
		RelationshipRepository: relationshipRepository,
		UserRepository:         userRepository,
		Validate:               validate,
		DB:                     DB,
		Log:                    logger,
		JWT:                    JWT,
	}
}

func (uc *RelationshipUsecaseImpl) GetMyRelationships(ctx context.Context, token string) ([]res.RelationshipResponse, error) {
	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		return nil, errors.New("invalid token")
	}

	var edges []entity.Relationship
	if err := uc.RelationshipRepository.FindAllByOwner(ctx, uc.DB, userID, &edges); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get owned relationships")
		return nil, err
	}

	responses := make([]res.RelationshipResponse, 0, len(edges))
	for _, edge := range edges {
		responses = append(responses, toRelationshipResponse(edge))
	}
	return responses, nil
}

// ReplaceMyRelationships swaps the caller's full authored edge set for the
// requested one. Only edges where the caller is the author are touched;
// reverse-direction edges written by other users over the same pairs stay as
// they are.
func (uc *RelationshipUsecaseImpl) ReplaceMyRelationships(ctx context.Context, token string, request *req.ReplaceRelationshipsRequest) ([]res.RelationshipResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate request")
		return nil, err
	}

	userID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		return nil, errors.New("invalid token")
	}

	var roster []entity.User
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &roster); err != nil {
		return nil, err
	}

	newOwned := make([]entity.Relationship, 0, len(request.Relationships))
	for _, r := range request.Relationships {
		edge := entity.Relationship{
			UserID:        userID, // author is always the caller
			RelatedUserID: r.RelatedUserID,
			Type:          enum.RelationshipType(r.Type),
		}
		if err := timeline.ValidateEdge(edge, roster); err != nil {
			uc.Log.Http.Warning.Warn().
				Err(err).
				Str("relatedUserId", r.RelatedUserID).
				Msg("Rejected relationship edge")
			return nil, err
		}
		newOwned = append(newOwned, edge)
	}

	trx := uc.DB.WithContext(ctx).Begin()
	defer trx.Rollback()

	if err := uc.RelationshipRepository.DeleteOwnedBy(ctx, trx, userID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to delete owned relationships")
		return nil, err
	}
	if len(newOwned) > 0 {
		if err := uc.RelationshipRepository.SaveAll(ctx, trx, &newOwned); err != nil {
			uc.Log.Http.Error.Error().Err(err).Msg("Failed to save relationships")
			return nil, err
		}
	}

	if err := trx.Commit().Error; err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to commit relationship replacement")
		return nil, err
	}

	uc.logConflicts(ctx, userID)

	responses := make([]res.RelationshipResponse, 0, len(newOwned))
	for _, edge := range newOwned {
		responses = append(responses, toRelationshipResponse(edge))
	}
	return responses, nil
}

func (uc *RelationshipUsecaseImpl) GetAllRelationships(ctx context.Context) ([]res.RelationshipResponse, error) {
	var edges []entity.Relationship
	if err := uc.RelationshipRepository.FindAll(ctx, uc.DB, &edges); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get relationships")
		return nil, err
	}

	responses := make([]res.RelationshipResponse, 0, len(edges))
	for _, edge := range edges {
		responses = append(responses, toRelationshipResponse(edge))
	}
	return responses, nil
}

func (uc *RelationshipUsecaseImpl) CreateRelationship(ctx context.Context, request *req.RelationshipRequest) (res.RelationshipResponse, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to validate request")
		return res.RelationshipResponse{}, err
	}

	var roster []entity.User
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &roster); err != nil {
		return res.RelationshipResponse{}, err
	}

	edge := entity.Relationship{
		UserID:        request.UserID,
		RelatedUserID: request.RelatedUserID,
		Type:          enum.RelationshipType(request.Type),
	}
	if err := timeline.ValidateEdge(edge, roster); err != nil {
		uc.Log.Http.Warning.Warn().Err(err).Msg("Rejected relationship edge")
		return res.RelationshipResponse{}, err
	}

	if err := uc.RelationshipRepository.Save(ctx, uc.DB, &edge); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to save relationship")
		return res.RelationshipResponse{}, err
	}

	uc.logConflicts(ctx, edge.UserID)

	return toRelationshipResponse(edge), nil
}

func (uc *RelationshipUsecaseImpl) DeleteRelationship(ctx context.Context, relationshipID string) error {
	var edge entity.Relationship
	if err := uc.RelationshipRepository.FindById(ctx, uc.DB, &edge, relationshipID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("relationshipId", relationshipID).Msg("Failed to find relationship")
		return err
	}
	return uc.RelationshipRepository.Delete(ctx, uc.DB, &edge)
}

// logConflicts surfaces pairs where both directions carry different types.
// The lookup priority in timeline.FindEdge already resolves these
// deterministically; logging keeps the ambiguity observable instead of
// hiding it.
func (uc *RelationshipUsecaseImpl) logConflicts(ctx context.Context, userID string) {
	var edges []entity.Relationship
	if err := uc.RelationshipRepository.FindAll(ctx, uc.DB, &edges); err != nil {
		return
	}
	for _, edge := range timeline.OwnedBy(edges, userID) {
		if timeline.Conflicting(edges, edge.UserID, edge.RelatedUserID) {
			uc.Log.Http.Warning.Warn().
				Str("userId", edge.UserID).
				Str("relatedUserId", edge.RelatedUserID).
				Msg("Both directions of a pair carry different relationship types")
		}
	}
}
