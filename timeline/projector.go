package timeline

import (
	"fmt"
	"sort"
	"time"

	"birthday-timeline-api/entity"
	"birthday-timeline-api/enum"
	"birthday-timeline-api/zodiac"
)

// Entry is one viewer-relative row of the birthday timeline: the roster user
// plus the relationship label and visibility computed for that viewer.
// Entries are built fresh per query and never persisted.
type Entry struct {
	User             entity.User
	Date             time.Time
	RelationToViewer *enum.RelationshipType
	Visible          bool
}

// Month is the 0-based calendar month of the entry's birthdate, matching the
// month indexing the frontend filters with.
func (e Entry) Month() int {
	return int(e.Date.Month()) - 1
}

// Day is the entry's day of month.
func (e Entry) Day() int {
	return e.Date.Day()
}

// Project builds the viewer's personalized timeline over the roster. Output
// preserves roster order. A viewer with no explicit self-edge is labeled
// FAMILY relative to themself; that is an intentional display convention, not
// a real edge.
func Project(viewerID string, roster []entity.User, edges []entity.Relationship) ([]Entry, error) {
	entries := make([]Entry, 0, len(roster))
	for _, user := range roster {
		date, err := zodiac.ParseDate(user.Birthdate)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", user.ID, err)
		}

		edge := FindEdge(edges, viewerID, user.ID)

		var relation *enum.RelationshipType
		switch {
		case edge != nil:
			t := edge.Type
			relation = &t
		case user.ID == viewerID:
			t := enum.RelationshipFamily
			relation = &t
		}

		entries = append(entries, Entry{
			User:             user,
			Date:             date,
			RelationToViewer: relation,
			Visible:          Visible(viewerID, user, edge != nil),
		})
	}
	return entries, nil
}

// Filter narrows projected entries. Month is 0-based; a nil field means no
// filtering on that axis, which keeps "no month filter" distinct from
// "January only". Both filters are ANDed.
type Filter struct {
	Month    *int
	Relation *enum.RelationshipType
}

// Apply returns the entries matching the filter, preserving order.
func (f Filter) Apply(entries []Entry) []Entry {
	matched := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Month != nil && e.Month() != *f.Month {
			continue
		}
		if f.Relation != nil && (e.RelationToViewer == nil || *e.RelationToViewer != *f.Relation) {
			continue
		}
		matched = append(matched, e)
	}
	return matched
}

// GroupByMonth buckets entries into the 12 calendar months, January first.
// Within a month entries are sorted ascending by day; same-day ties keep
// roster order, so the sort must stay stable.
func GroupByMonth(entries []Entry) [12][]Entry {
	var buckets [12][]Entry
	for _, e := range entries {
		buckets[e.Month()] = append(buckets[e.Month()], e)
	}
	for m := range buckets {
		bucket := buckets[m]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Day() < bucket[j].Day()
		})
	}
	return buckets
}
