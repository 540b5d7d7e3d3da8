package res

type RelationshipResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	RelatedUserID string `json:"relatedUserId"`
	Type          string `json:"type"`
	TypeLabel     string `json:"typeLabel"`
}
