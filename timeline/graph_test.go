package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-timeline-api/entity"
	"birthday-timeline-api/enum"
)

func edge(id, userID, relatedUserID string, t enum.RelationshipType) entity.Relationship {
	e := entity.Relationship{UserID: userID, RelatedUserID: relatedUserID, Type: t}
	e.ID = id
	return e
}

func user(id, birthdate string, private bool) entity.User {
	u := entity.User{Name: "user-" + id, Birthdate: birthdate, IsProfilePrivate: private}
	u.ID = id
	return u
}

func TestFindEdgeSymmetric(t *testing.T) {
	edges := []entity.Relationship{edge("r1", "A", "B", enum.RelationshipFriend)}

	fromA := FindEdge(edges, "A", "B")
	require.NotNil(t, fromA)
	assert.Equal(t, enum.RelationshipFriend, fromA.Type)

	fromB := FindEdge(edges, "B", "A")
	require.NotNil(t, fromB)
	assert.Equal(t, "r1", fromB.ID)
	assert.Equal(t, enum.RelationshipFriend, fromB.Type)
}

func TestFindEdgeOutgoingWins(t *testing.T) {
	// Both directions exist with different types. The viewer's own edge is
	// authoritative, whichever order the collection has them in.
	edges := []entity.Relationship{
		edge("r1", "B", "A", enum.RelationshipColleague),
		edge("r2", "A", "B", enum.RelationshipFriend),
	}

	forA := FindEdge(edges, "A", "B")
	require.NotNil(t, forA)
	assert.Equal(t, "r2", forA.ID)
	assert.Equal(t, enum.RelationshipFriend, forA.Type)

	forB := FindEdge(edges, "B", "A")
	require.NotNil(t, forB)
	assert.Equal(t, "r1", forB.ID)
	assert.Equal(t, enum.RelationshipColleague, forB.Type)

	assert.True(t, Conflicting(edges, "A", "B"))
	assert.True(t, Conflicting(edges, "B", "A"))
}

func TestFindEdgeMissing(t *testing.T) {
	edges := []entity.Relationship{edge("r1", "A", "B", enum.RelationshipFriend)}
	assert.Nil(t, FindEdge(edges, "A", "C"))
	assert.Nil(t, FindEdge(nil, "A", "B"))
}

func TestConflictingSameType(t *testing.T) {
	edges := []entity.Relationship{
		edge("r1", "A", "B", enum.RelationshipFriend),
		edge("r2", "B", "A", enum.RelationshipFriend),
	}
	assert.False(t, Conflicting(edges, "A", "B"))
}

func TestOwnedBy(t *testing.T) {
	edges := []entity.Relationship{
		edge("r1", "A", "B", enum.RelationshipFriend),
		edge("r2", "B", "C", enum.RelationshipFamily),
		edge("r3", "A", "C", enum.RelationshipColleague),
	}

	owned := OwnedBy(edges, "A")
	require.Len(t, owned, 2)
	assert.Equal(t, "r1", owned[0].ID)
	assert.Equal(t, "r3", owned[1].ID)
}

func TestReplaceOwnedPreservesOthers(t *testing.T) {
	bEdge := edge("r2", "B", "A", enum.RelationshipFamily)
	edges := []entity.Relationship{
		edge("r1", "A", "B", enum.RelationshipFriend),
		bEdge,
	}

	replacement := []entity.Relationship{edge("r9", "A", "C", enum.RelationshipOther)}
	merged := ReplaceOwned(edges, "A", replacement)

	require.Len(t, merged, 2)
	// B's edge survives untouched, even though it targets the same pair A
	// previously had an edge over.
	assert.Equal(t, bEdge, merged[0])
	assert.Equal(t, "r9", merged[1].ID)
}

func TestReplaceOwnedWithEmptySet(t *testing.T) {
	edges := []entity.Relationship{
		edge("r1", "A", "B", enum.RelationshipFriend),
		edge("r2", "B", "C", enum.RelationshipFamily),
	}

	merged := ReplaceOwned(edges, "A", nil)
	require.Len(t, merged, 1)
	assert.Equal(t, "r2", merged[0].ID)
}

func TestValidateEdge(t *testing.T) {
	roster := []entity.User{user("A", "1990-05-15", false), user("B", "1992-02-28", false)}

	valid := edge("r1", "A", "B", enum.RelationshipFriend)
	assert.NoError(t, ValidateEdge(valid, roster))

	selfLoop := edge("r2", "A", "A", enum.RelationshipFriend)
	assert.ErrorIs(t, ValidateEdge(selfLoop, roster), ErrSelfRelationship)

	unknown := edge("r3", "A", "Z", enum.RelationshipFriend)
	assert.ErrorIs(t, ValidateEdge(unknown, roster), ErrUnknownUser)

	badType := edge("r4", "A", "B", enum.RelationshipType("bff"))
	assert.ErrorIs(t, ValidateEdge(badType, roster), ErrInvalidRelationType)
}
