package enum

// RelationshipType labels a relationship edge. The values are the lowercase
// Portuguese identifiers the frontend persists.
type RelationshipType string

const (
	RelationshipFamily    RelationshipType = "familia"
	RelationshipFriend    RelationshipType = "amigo"
	RelationshipColleague RelationshipType = "colega"
	RelationshipOther     RelationshipType = "outro"
)

// Valid reports whether t is one of the closed set of relationship types.
func (t RelationshipType) Valid() bool {
	switch t {
	case RelationshipFamily, RelationshipFriend, RelationshipColleague, RelationshipOther:
		return true
	}
	return false
}

// Label is the capitalized display form.
func (t RelationshipType) Label() string {
	switch t {
	case RelationshipFamily:
		return "Família"
	case RelationshipFriend:
		return "Amigo"
	case RelationshipColleague:
		return "Colega"
	case RelationshipOther:
		return "Outro"
	}
	return string(t)
}
