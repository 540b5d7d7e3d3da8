package usecase

import (
	"birthday-timeline-api/dto/res"
	"birthday-timeline-api/entity"
	"birthday-timeline-api/zodiac"
)

// applyZodiac writes birthdate and all three derived zodiac fields in one
// step. Every birthdate write must go through here so the caches never go
// stale.
func applyZodiac(user *entity.User, birthdate string) error {
	date, err := zodiac.ParseDate(birthdate)
	if err != nil {
		return err
	}

	sign := zodiac.Western(date)
	user.Birthdate = birthdate
	user.ZodiacSign = sign.Name
	user.ZodiacTraits = sign.Traits
	user.ChineseZodiac = zodiac.Chinese(date).Display()
	return nil
}

func toUserResponse(user entity.User) res.UserResponse {
	return res.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Phone:            user.Phone,
		Birthdate:        user.Birthdate,
		ZodiacSign:       user.ZodiacSign,
		ZodiacTraits:     user.ZodiacTraits,
		ChineseZodiac:    user.ChineseZodiac,
		AvatarURL:        user.AvatarURL,
		Wishlist:         user.Wishlist,
		Likes:            user.Likes,
		IsProfilePrivate: user.IsProfilePrivate,
		IsAdmin:          user.IsAdmin,
		CreatedAt:        user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func toRelationshipResponse(edge entity.Relationship) res.RelationshipResponse {
	return res.RelationshipResponse{
		ID:            edge.ID,
		UserID:        edge.UserID,
		RelatedUserID: edge.RelatedUserID,
		Type:          string(edge.Type),
		TypeLabel:     edge.Type.Label(),
	}
}
