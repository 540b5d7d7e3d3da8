package entity

// User is one roster member. Phone is stored normalized (see package phone)
// because it doubles as the login identity key. ZodiacSign, ZodiacTraits and
// ChineseZodiac are caches of zodiac classification over Birthdate and are
// recomputed atomically on every birthdate write; they must never go stale.
type User struct {
	BaseEntity
	Name             string   `json:"name" gorm:"type:varchar(255)"`
	Phone            string   `json:"phone" gorm:"unique;type:varchar(20)"`
	Birthdate        string   `json:"birthdate" gorm:"type:varchar(10)"`
	ZodiacSign       string   `json:"zodiacSign" gorm:"type:varchar(20)"`
	ZodiacTraits     []string `json:"zodiacTraits" gorm:"serializer:json;type:text"`
	ChineseZodiac    string   `json:"chineseZodiac" gorm:"type:varchar(30)"`
	AvatarURL        string   `json:"avatarUrl,omitempty" gorm:"type:text"`
	Wishlist         string   `json:"wishlist,omitempty" gorm:"type:text"`
	Likes            []string `json:"likes" gorm:"serializer:json;type:text"`
	IsProfilePrivate bool     `json:"isProfilePrivate" gorm:"default:false"`
	IsAdmin          bool     `json:"isAdmin" gorm:"default:false"`
	AuthId           string   `json:"authId" gorm:"type:varchar(255);unique"`

	Authored []Relationship `json:"-" gorm:"foreignKey:UserID"`
	Targeted []Relationship `json:"-" gorm:"foreignKey:RelatedUserID"`
}
