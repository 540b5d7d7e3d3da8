package req

// RelationshipRequest is one edge, as created by an admin or listed inside a
// ReplaceRelationshipsRequest.
type RelationshipRequest struct {
	UserID        string `json:"userId" validate:"required"`
	RelatedUserID string `json:"relatedUserId" validate:"required"`
	Type          string `json:"type" validate:"required"`
}

// ReplaceRelationshipsRequest replaces the caller's full set of authored
// edges. UserID on each edge is forced to the caller server-side.
type ReplaceRelationshipsRequest struct {
	Relationships []RelationshipRequest `json:"relationships" validate:"required,dive"`
}
