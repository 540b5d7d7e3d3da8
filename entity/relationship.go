package entity

import "birthday-timeline-api/enum"

// Relationship is one directed edge of the relationship graph: UserID is the
// author, RelatedUserID the target. Storage is directional but the edge is
// symmetric in meaning; lookups must go through timeline.FindEdge rather than
// re-deriving the match. Deleting either user cascades the edge away.
type Relationship struct {
	BaseEntity
	UserID        string                `json:"userId" gorm:"type:varchar(255);not null;index"`
	RelatedUserID string                `json:"relatedUserId" gorm:"type:varchar(255);not null;index"`
	Type          enum.RelationshipType `json:"type" gorm:"type:varchar(10)"`

	User        User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	RelatedUser User `json:"-" gorm:"foreignKey:RelatedUserID;references:ID;constraint:OnDelete:CASCADE;"`
}
