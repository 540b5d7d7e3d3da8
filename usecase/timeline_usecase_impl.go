package usecase

import (
	"context"
	"errors"
	"gorm.io/gorm"

	"birthday-timeline-api/config/logger"
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/entity"
	"birthday-timeline-api/enum"
	"birthday-timeline-api/phone"
	"birthday-timeline-api/repository"
	"birthday-timeline-api/security"
	"birthday-timeline-api/timeline"
)

type TimelineUsecaseImpl struct {
	*repository.UserRepository
	*repository.RelationshipRepository
	*gorm.DB
	Log *logger.AppLogger
	*security.JWT
}

func NewTimelineUsecase(userRepository *repository.UserRepository, relationshipRepository *repository.RelationshipRepository, DB *gorm.DB, logger *logger.AppLogger, JWT *security.JWT) TimelineUsecase {
	return &TimelineUsecaseImpl{
		UserRepository:         userRepository,
		RelationshipRepository: relationshipRepository,
		DB:                     DB,
		Log:                    logger,
		JWT:                    JWT,
	}
}

// GetTimeline projects the roster for the viewer, applies the optional month
// and relation filters (nil means no filter, which is distinct from January),
// and buckets the result into the 12 calendar months.
func (uc *TimelineUsecaseImpl) GetTimeline(ctx context.Context, token string, month *int, relation *enum.RelationshipType) (res.TimelineResponse, error) {
	viewerID, err := uc.JWT.GetUserIdFromToken(token)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to extract user ID from token")
		return res.TimelineResponse{}, errors.New("invalid token")
	}

	var roster []entity.User
	if err := uc.UserRepository.FindAllOrdered(ctx, uc.DB, &roster); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get roster")
		return res.TimelineResponse{}, err
	}

	var edges []entity.Relationship
	if err := uc.RelationshipRepository.FindAll(ctx, uc.DB, &edges); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get relationships")
		return res.TimelineResponse{}, err
	}

	entries, err := timeline.Project(viewerID, roster, edges)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to project timeline")
		return res.TimelineResponse{}, err
	}

	entries = timeline.Filter{Month: month, Relation: relation}.Apply(entries)

	entryResponses := make([]res.BirthdayEntryResponse, 0, len(entries))
	for _, entry := range entries {
		entryResponses = append(entryResponses, uc.toEntryResponse(viewerID, entry))
	}

	buckets := timeline.GroupByMonth(entries)
	months := make([]res.MonthBucketResponse, 0, len(buckets))
	for m, bucket := range buckets {
		bucketResponses := make([]res.BirthdayEntryResponse, 0, len(bucket))
		for _, entry := range bucket {
			bucketResponses = append(bucketResponses, uc.toEntryResponse(viewerID, entry))
		}
		months = append(months, res.MonthBucketResponse{
			Month:   m,
			Name:    timeline.MonthNames[m],
			Entries: bucketResponses,
		})
	}

	uc.Log.Http.Info.Info().
		Str("viewerId", viewerID).
		Int("entryCount", len(entryResponses)).
		Msg("Timeline projected")

	return res.TimelineResponse{Entries: entryResponses, Months: months}, nil
}

func (uc *TimelineUsecaseImpl) GetStats(ctx context.Context) (res.StatsResponse, error) {
	var roster []entity.User
	if err := uc.UserRepository.FindAllOrdered(ctx, uc.DB, &roster); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get roster")
		return res.StatsResponse{}, err
	}

	stats, err := timeline.Aggregate(roster)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to aggregate roster")
		return res.StatsResponse{}, err
	}

	return res.StatsResponse{
		TotalUsers:   len(roster),
		ByZodiac:     stats.ByZodiac,
		ByMonth:      stats.ByMonth,
		ByGeneration: stats.ByGeneration,
	}, nil
}

// toEntryResponse flattens a projected entry for the wire. Masking follows
// the visibility policy: hidden entries keep their name and month placement
// but lose the avatar, and phones of other users are always display-masked.
func (uc *TimelineUsecaseImpl) toEntryResponse(viewerID string, entry timeline.Entry) res.BirthdayEntryResponse {
	user := entry.User

	response := res.BirthdayEntryResponse{
		ID:            user.ID,
		Name:          user.Name,
		Phone:         user.Phone,
		Birthdate:     user.Birthdate,
		ZodiacSign:    user.ZodiacSign,
		ZodiacTraits:  user.ZodiacTraits,
		ChineseZodiac: user.ChineseZodiac,
		AvatarURL:     user.AvatarURL,
		Likes:         user.Likes,
		IsVisible:     entry.Visible,
	}
	if entry.RelationToViewer != nil {
		relation := string(*entry.RelationToViewer)
		response.RelationToViewer = &relation
		response.RelationLabel = entry.RelationToViewer.Label()
	}
	if user.ID != viewerID {
		response.Phone = phone.Mask(user.Phone)
	}
	if !entry.Visible {
		response.AvatarURL = ""
	}
	return response
}
