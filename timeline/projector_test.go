package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-timeline-api/entity"
	"birthday-timeline-api/enum"
	"birthday-timeline-api/zodiac"
)

func classified(id, name, phone, birthdate string, private bool) entity.User {
	u := entity.User{Name: name, Phone: phone, Birthdate: birthdate, IsProfilePrivate: private}
	u.ID = id
	date, _ := zodiac.ParseDate(birthdate)
	sign := zodiac.Western(date)
	u.ZodiacSign = sign.Name
	u.ZodiacTraits = sign.Traits
	u.ChineseZodiac = zodiac.Chinese(date).Display()
	return u
}

// The register/admin scenario: the admin sees a private friend, with the
// cached zodiac fields agreeing with the classifier.
func TestProjectAdminScenario(t *testing.T) {
	admin := classified("admin", "Administrador", "917772010", "1990-05-15", false)
	maria := classified("maria", "Maria Santos", "919876543", "1992-02-28", true)
	roster := []entity.User{admin, maria}
	edges := []entity.Relationship{edge("r1", "admin", "maria", enum.RelationshipFriend)}

	entries, err := Project("admin", roster, edges)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	self := entries[0]
	assert.Equal(t, "Touro", self.User.ZodiacSign)
	require.NotNil(t, self.RelationToViewer)
	assert.Equal(t, enum.RelationshipFamily, *self.RelationToViewer)
	assert.True(t, self.Visible)

	friend := entries[1]
	assert.Equal(t, "Peixes", friend.User.ZodiacSign)
	require.NotNil(t, friend.RelationToViewer)
	assert.Equal(t, enum.RelationshipFriend, *friend.RelationToViewer)
	assert.True(t, friend.Visible)
}

func TestProjectSelfDefaultsToFamily(t *testing.T) {
	roster := []entity.User{classified("A", "A", "1", "1990-05-15", false)}

	entries, err := Project("A", roster, nil)
	require.NoError(t, err)
	require.NotNil(t, entries[0].RelationToViewer)
	assert.Equal(t, enum.RelationshipFamily, *entries[0].RelationToViewer)

	// But only for the viewer: others without an edge carry no relation.
	entries, err = Project("someone-else", roster, nil)
	require.NoError(t, err)
	assert.Nil(t, entries[0].RelationToViewer)
}

func TestProjectVisibilityOfPrivateUser(t *testing.T) {
	private := classified("P", "Private", "1", "1985-12-25", true)
	viewerX := classified("X", "Stranger", "2", "1990-05-15", false)
	viewerY := classified("Y", "Friend", "3", "1992-02-28", false)
	roster := []entity.User{private, viewerX, viewerY}
	edges := []entity.Relationship{edge("r1", "Y", "P", enum.RelationshipFriend)}

	forX, err := Project("X", roster, edges)
	require.NoError(t, err)
	assert.False(t, forX[0].Visible, "stranger must not see the private profile")

	forY, err := Project("Y", roster, edges)
	require.NoError(t, err)
	assert.True(t, forY[0].Visible, "related viewer sees through the privacy flag")

	forP, err := Project("P", roster, edges)
	require.NoError(t, err)
	assert.True(t, forP[0].Visible, "a user always sees themself")
}

func TestProjectPreservesRosterOrder(t *testing.T) {
	roster := []entity.User{
		classified("C", "C", "1", "1985-12-25", false),
		classified("A", "A", "2", "1990-05-15", false),
		classified("B", "B", "3", "1992-02-28", false),
	}

	entries, err := Project("A", roster, nil)
	require.NoError(t, err)
	assert.Equal(t, "C", entries[0].User.ID)
	assert.Equal(t, "A", entries[1].User.ID)
	assert.Equal(t, "B", entries[2].User.ID)
}

func TestProjectInvalidBirthdate(t *testing.T) {
	broken := entity.User{Birthdate: "not-a-date"}
	broken.ID = "X"

	_, err := Project("X", []entity.User{broken}, nil)
	assert.ErrorIs(t, err, zodiac.ErrInvalidDate)
}

func TestFilterMonthZeroIsJanuaryNotAll(t *testing.T) {
	roster := []entity.User{
		classified("jan", "Jan", "1", "1991-01-10", false),
		classified("may", "May", "2", "1990-05-15", false),
	}
	entries, err := Project("jan", roster, nil)
	require.NoError(t, err)

	january := 0
	filtered := Filter{Month: &january}.Apply(entries)
	require.Len(t, filtered, 1)
	assert.Equal(t, "jan", filtered[0].User.ID)

	// nil month means no filtering, not January.
	all := Filter{}.Apply(entries)
	assert.Len(t, all, 2)
}

func TestFilterByRelationAndMonth(t *testing.T) {
	roster := []entity.User{
		classified("A", "A", "1", "1990-05-15", false),
		classified("B", "B", "2", "1991-05-20", false),
		classified("C", "C", "3", "1992-02-28", false),
	}
	edges := []entity.Relationship{
		edge("r1", "A", "B", enum.RelationshipFriend),
		edge("r2", "A", "C", enum.RelationshipFriend),
	}
	entries, err := Project("A", roster, edges)
	require.NoError(t, err)

	friend := enum.RelationshipFriend
	byRelation := Filter{Relation: &friend}.Apply(entries)
	assert.Len(t, byRelation, 2)

	may := 4
	both := Filter{Month: &may, Relation: &friend}.Apply(entries)
	require.Len(t, both, 1)
	assert.Equal(t, "B", both[0].User.ID)

	family := enum.RelationshipFamily
	byFamily := Filter{Relation: &family}.Apply(entries)
	require.Len(t, byFamily, 1)
	assert.Equal(t, "A", byFamily[0].User.ID, "self-as-family is matched by the relation filter")
}

func TestGroupByMonthSortsByDayStable(t *testing.T) {
	roster := []entity.User{
		classified("late", "Late", "1", "1990-05-20", false),
		classified("tie1", "Tie1", "2", "1991-05-15", false),
		classified("tie2", "Tie2", "3", "1992-05-15", false),
		classified("early", "Early", "4", "1993-05-02", false),
		classified("dec", "Dec", "5", "1985-12-25", false),
	}
	entries, err := Project("late", roster, nil)
	require.NoError(t, err)

	buckets := GroupByMonth(entries)

	may := buckets[4]
	require.Len(t, may, 4)
	assert.Equal(t, "early", may[0].User.ID)
	assert.Equal(t, "tie1", may[1].User.ID, "same-day ties keep roster order")
	assert.Equal(t, "tie2", may[2].User.ID)
	assert.Equal(t, "late", may[3].User.ID)

	require.Len(t, buckets[11], 1)
	assert.Equal(t, "dec", buckets[11][0].User.ID)

	for _, m := range []int{0, 1, 2, 3, 5, 6, 7, 8, 9, 10} {
		assert.Empty(t, buckets[m])
	}
}
