package zodiac

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := ParseDate(value)
	require.NoError(t, err)
	return parsed
}

func TestParseDateInvalid(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "1990-13-01", "15/05/1990"} {
		_, err := ParseDate(value)
		assert.ErrorIs(t, err, ErrInvalidDate, "value %q", value)
	}
}

func TestWesternCapricornBoundary(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1990-12-22", "Capricórnio"},
		{"1990-12-31", "Capricórnio"},
		{"1991-01-01", "Capricórnio"},
		{"1991-01-19", "Capricórnio"},
		{"1990-12-21", "Sagitário"},
		{"1991-01-20", "Aquário"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Western(date(t, tt.value)).Name, tt.value)
	}
}

func TestWesternKnownDates(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"1990-05-15", "Touro"},
		{"1992-02-28", "Peixes"},
		{"2000-02-29", "Peixes"},
		{"1985-12-25", "Capricórnio"},
		{"1988-03-21", "Carneiro"},
		{"1988-03-20", "Peixes"},
		{"1977-08-23", "Virgem"},
		{"1977-08-22", "Leão"},
	}
	for _, tt := range tests {
		sign := Western(date(t, tt.value))
		assert.Equal(t, tt.want, sign.Name, tt.value)
		assert.Len(t, sign.Traits, 3)
	}
}

// Every day of a leap year resolves to exactly one sign, and all 12 signs
// occur. Guards against anyone "optimizing" the two-sided boundary checks.
func TestWesternFullYearCoverage(t *testing.T) {
	seen := map[string]int{}

	day := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() == 2000 {
		sign := Western(day)
		require.NotEmpty(t, sign.Name, day.Format(DateLayout))
		seen[sign.Name]++
		day = day.AddDate(0, 0, 1)
	}

	assert.Len(t, seen, 12)

	total := 0
	for _, count := range seen {
		total += count
	}
	assert.Equal(t, 366, total)
}

func TestChineseKnownYears(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2016-06-01", "Macaco"},
		{"2000-06-01", "Dragão"},
		{"1990-05-15", "Cavalo"},
		{"1992-02-28", "Macaco"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Chinese(date(t, tt.value)).Name, tt.value)
	}
}

// The animal depends only on year mod 12.
func TestChineseCyclePeriodicity(t *testing.T) {
	for year := 1940; year <= 2030; year++ {
		a := Chinese(time.Date(year, time.March, 10, 0, 0, 0, 0, time.UTC))
		b := Chinese(time.Date(year+12, time.November, 2, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, a.Name, b.Name, "year %d", year)
	}
}

func TestChineseDisplay(t *testing.T) {
	animal := Chinese(date(t, "2000-06-01"))
	assert.Equal(t, "Dragão", animal.Name)
	assert.Equal(t, "🐉 Dragão", animal.Display())
}
