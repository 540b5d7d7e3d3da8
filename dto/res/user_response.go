package res

type UserResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Birthdate        string   `json:"birthdate"`
	ZodiacSign       string   `json:"zodiacSign"`
	ZodiacTraits     []string `json:"zodiacTraits"`
	ChineseZodiac    string   `json:"chineseZodiac"`
	AvatarURL        string   `json:"avatarUrl,omitempty"`
	Wishlist         string   `json:"wishlist,omitempty"`
	Likes            []string `json:"likes"`
	IsProfilePrivate bool     `json:"isProfilePrivate"`
	IsAdmin          bool     `json:"isAdmin"`
	CreatedAt        string   `json:"createdAt"`
}
