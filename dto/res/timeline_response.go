package res

// BirthdayEntryResponse is one viewer-relative timeline row. It is computed
// fresh per request and never persisted. RelationToViewer is null when no
// edge links the entry to the viewer. When IsVisible is false the avatar is
// blanked and the phone masked, but the entry itself stays in its month
// bucket.
type BirthdayEntryResponse struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Phone            string   `json:"phone"`
	Birthdate        string   `json:"birthdate"`
	ZodiacSign       string   `json:"zodiacSign"`
	ZodiacTraits     []string `json:"zodiacTraits"`
	ChineseZodiac    string   `json:"chineseZodiac"`
	AvatarURL        string   `json:"avatarUrl,omitempty"`
	Likes            []string `json:"likes"`
	RelationToViewer *string  `json:"relationToViewer"`
	RelationLabel    string   `json:"relationLabel,omitempty"`
	IsVisible        bool     `json:"isVisible"`
}

// MonthBucketResponse is one of the 12 fixed January-to-December buckets.
type MonthBucketResponse struct {
	Month   int                     `json:"month"`
	Name    string                  `json:"name"`
	Entries []BirthdayEntryResponse `json:"entries"`
}

type TimelineResponse struct {
	Entries []BirthdayEntryResponse `json:"entries"`
	Months  []MonthBucketResponse   `json:"months"`
}
