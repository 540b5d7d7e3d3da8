package timeline

import (
	"fmt"

	"birthday-timeline-api/entity"
	"birthday-timeline-api/zodiac"
)

// Generation cohort labels, keyed by birth-year range.
const (
	GenerationBoomers     = "Boomers"
	GenerationX           = "GenX"
	GenerationMillennials = "Millennials"
	GenerationZ           = "GenZ"
	GenerationAlpha       = "GenAlpha"
)

// Stats summarizes a roster for the dashboard. ByZodiac and ByMonth each sum
// to the roster size; ByGeneration may sum to less, because birth years
// before 1946 fall outside every bucket and are silently excluded.
type Stats struct {
	ByZodiac     map[string]int `json:"byZodiac"`
	ByMonth      [12]int        `json:"byMonth"`
	ByGeneration map[string]int `json:"byGeneration"`
}

// Aggregate counts the roster by zodiac sign, 0-based birth month and
// generation cohort.
func Aggregate(roster []entity.User) (Stats, error) {
	stats := Stats{
		ByZodiac:     make(map[string]int),
		ByGeneration: make(map[string]int),
	}

	for _, user := range roster {
		date, err := zodiac.ParseDate(user.Birthdate)
		if err != nil {
			return Stats{}, fmt.Errorf("user %s: %w", user.ID, err)
		}

		stats.ByZodiac[zodiac.Western(date).Name]++
		stats.ByMonth[int(date.Month())-1]++

		if generation := generationOf(date.Year()); generation != "" {
			stats.ByGeneration[generation]++
		}
	}
	return stats, nil
}

func generationOf(year int) string {
	switch {
	case year >= 2013:
		return GenerationAlpha
	case year >= 1997:
		return GenerationZ
	case year >= 1981:
		return GenerationMillennials
	case year >= 1965:
		return GenerationX
	case year >= 1946:
		return GenerationBoomers
	}
	return ""
}
