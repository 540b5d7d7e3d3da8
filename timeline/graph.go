package timeline

import (
	"errors"

	"birthday-timeline-api/entity"
)

var (
	ErrSelfRelationship    = errors.New("relationship cannot point at its own author")
	ErrUnknownUser         = errors.New("relationship references an unknown user")
	ErrInvalidRelationType = errors.New("relationship type is not in the closed set")
)

// FindEdge resolves the relationship between two users regardless of which
// side authored it. Edges outgoing from the viewer are checked first, so when
// both directions exist with different types the viewer's own label wins.
// Every relationship-aware view must resolve through here.
func FindEdge(edges []entity.Relationship, viewerID, otherID string) *entity.Relationship {
	for i := range edges {
		if edges[i].UserID == viewerID && edges[i].RelatedUserID == otherID {
			return &edges[i]
		}
	}
	for i := range edges {
		if edges[i].UserID == otherID && edges[i].RelatedUserID == viewerID {
			return &edges[i]
		}
	}
	return nil
}

// OwnedBy returns the edges authored by the given user. These are the only
// edges a replacement of "my relationships" may touch.
func OwnedBy(edges []entity.Relationship, userID string) []entity.Relationship {
	var owned []entity.Relationship
	for _, e := range edges {
		if e.UserID == userID {
			owned = append(owned, e)
		}
	}
	return owned
}

// ReplaceOwned computes the edge set after ownerID replaces their authored
// edges with newOwned. Edges authored by anyone else pass through untouched,
// including reverse-direction edges over the same pairs, which is what makes
// two users editing their own sets safe to merge without a transaction.
func ReplaceOwned(edges []entity.Relationship, ownerID string, newOwned []entity.Relationship) []entity.Relationship {
	merged := make([]entity.Relationship, 0, len(edges)+len(newOwned))
	for _, e := range edges {
		if e.UserID != ownerID {
			merged = append(merged, e)
		}
	}
	return append(merged, newOwned...)
}

// Conflicting reports whether both directions of the pair carry edges with
// different types. This is a documented ambiguity, not an error: FindEdge's
// priority order is authoritative, but callers may want to log it.
func Conflicting(edges []entity.Relationship, aID, bID string) bool {
	var forward, reverse *entity.Relationship
	for i := range edges {
		if edges[i].UserID == aID && edges[i].RelatedUserID == bID && forward == nil {
			forward = &edges[i]
		}
		if edges[i].UserID == bID && edges[i].RelatedUserID == aID && reverse == nil {
			reverse = &edges[i]
		}
	}
	return forward != nil && reverse != nil && forward.Type != reverse.Type
}

// ValidateEdge rejects self-loops, types outside the closed set, and edges
// whose endpoints are not in the roster. Called at edge-creation time, never
// silently skipped.
func ValidateEdge(edge entity.Relationship, roster []entity.User) error {
	if edge.UserID == edge.RelatedUserID {
		return ErrSelfRelationship
	}
	if !edge.Type.Valid() {
		return ErrInvalidRelationType
	}
	if !rosterHas(roster, edge.UserID) || !rosterHas(roster, edge.RelatedUserID) {
		return ErrUnknownUser
	}
	return nil
}

func rosterHas(roster []entity.User, id string) bool {
	for i := range roster {
		if roster[i].ID == id {
			return true
		}
	}
	return false
}
