package req

type EditProfileRequest struct {
	Name             string   `json:"name" validate:"required,min=2"`
	Phone            string   `json:"phone" validate:"required,min=8"`
	Birthdate        string   `json:"birthdate" validate:"required"`
	AvatarURL        string   `json:"avatarUrl"`
	Wishlist         string   `json:"wishlist"`
	Likes            []string `json:"likes"`
	IsProfilePrivate bool     `json:"isProfilePrivate"`
	NewPassword      string   `json:"newPassword" validate:"omitempty,min=6"`
}
