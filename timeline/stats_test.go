package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-timeline-api/entity"
	"birthday-timeline-api/zodiac"
)

func TestAggregateCounts(t *testing.T) {
	roster := []entity.User{
		classified("1", "Admin", "1", "1990-05-15", false),  // Touro, Millennials
		classified("2", "Maria", "2", "1992-02-28", true),   // Peixes, Millennials
		classified("3", "Carlos", "3", "1985-12-25", false), // Capricórnio, Millennials
		classified("4", "Ana", "4", "1972-05-02", false),    // Touro, GenX
		classified("5", "Rui", "5", "2014-02-10", false),    // Aquário, GenAlpha
	}

	stats, err := Aggregate(roster)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ByZodiac["Touro"])
	assert.Equal(t, 1, stats.ByZodiac["Peixes"])
	assert.Equal(t, 1, stats.ByZodiac["Capricórnio"])
	assert.Equal(t, 1, stats.ByZodiac["Aquário"])

	assert.Equal(t, 2, stats.ByMonth[4], "May")
	assert.Equal(t, 1, stats.ByMonth[11], "December")
	assert.Equal(t, 2, stats.ByMonth[1], "February is counted once for each February birthdate")

	assert.Equal(t, 3, stats.ByGeneration[GenerationMillennials])
	assert.Equal(t, 1, stats.ByGeneration[GenerationX])
	assert.Equal(t, 1, stats.ByGeneration[GenerationAlpha])
}

// ByMonth and ByZodiac always sum to the roster size.
func TestAggregateSumInvariant(t *testing.T) {
	roster := []entity.User{
		classified("1", "A", "1", "1946-01-01", false),
		classified("2", "B", "2", "1964-12-31", false),
		classified("3", "C", "3", "1965-06-15", false),
		classified("4", "D", "4", "1997-03-21", false),
		classified("5", "E", "5", "2013-08-23", false),
		classified("6", "F", "6", "1981-10-23", false),
		classified("7", "G", "7", "1996-11-21", false),
	}

	stats, err := Aggregate(roster)
	require.NoError(t, err)

	monthSum := 0
	for _, count := range stats.ByMonth {
		monthSum += count
	}
	assert.Equal(t, len(roster), monthSum)

	zodiacSum := 0
	for _, count := range stats.ByZodiac {
		zodiacSum += count
	}
	assert.Equal(t, len(roster), zodiacSum)
}

func TestAggregateGenerationBoundaries(t *testing.T) {
	roster := []entity.User{
		classified("1", "A", "1", "1946-01-01", false), // first Boomer year
		classified("2", "B", "2", "1964-12-31", false), // last Boomer year
		classified("3", "C", "3", "1965-01-01", false), // first GenX year
		classified("4", "D", "4", "1980-06-15", false),
		classified("5", "E", "5", "1981-06-15", false),
		classified("6", "F", "6", "1996-06-15", false),
		classified("7", "G", "7", "1997-06-15", false),
		classified("8", "H", "8", "2012-06-15", false),
		classified("9", "I", "9", "2013-06-15", false),
	}

	stats, err := Aggregate(roster)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.ByGeneration[GenerationBoomers])
	assert.Equal(t, 2, stats.ByGeneration[GenerationX])
	assert.Equal(t, 2, stats.ByGeneration[GenerationMillennials])
	assert.Equal(t, 2, stats.ByGeneration[GenerationZ])
	assert.Equal(t, 1, stats.ByGeneration[GenerationAlpha])
}

// Birth years before 1946 fall outside every bucket; ByGeneration may then
// sum to less than the roster size.
func TestAggregateExcludesPreBoomerYears(t *testing.T) {
	roster := []entity.User{
		classified("1", "Elder", "1", "1940-05-15", false),
		classified("2", "Boomer", "2", "1950-05-15", false),
	}

	stats, err := Aggregate(roster)
	require.NoError(t, err)

	generationSum := 0
	for _, count := range stats.ByGeneration {
		generationSum += count
	}
	assert.Equal(t, 1, generationSum)
	assert.Equal(t, 1, stats.ByGeneration[GenerationBoomers])

	monthSum := 0
	for _, count := range stats.ByMonth {
		monthSum += count
	}
	assert.Equal(t, 2, monthSum, "the excluded user still counts everywhere else")
}

func TestAggregateInvalidBirthdate(t *testing.T) {
	broken := entity.User{Birthdate: "31-12-1990"}
	broken.ID = "X"

	_, err := Aggregate([]entity.User{broken})
	assert.ErrorIs(t, err, zodiac.ErrInvalidDate)
}

func TestAggregateEmptyRoster(t *testing.T) {
	stats, err := Aggregate(nil)
	require.NoError(t, err)
	assert.Empty(t, stats.ByZodiac)
	assert.Empty(t, stats.ByGeneration)
}
