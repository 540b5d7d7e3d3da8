package zodiac

import (
	"errors"
	"time"
)

// DateLayout is the wire format for birthdates, matching the date columns
// the frontend writes (ISO date, no time component).
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid birthdate")

// ParseDate parses an ISO birthdate string. Classification functions only
// accept parsed dates, so callers get ErrInvalidDate here instead of a
// garbage sign later.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date, nil
}

type monthDay struct {
	Month int
	Day   int
}

// Sign is one entry of the western zodiac table.
type Sign struct {
	Name   string
	Start  monthDay
	End    monthDay
	Traits []string
}

const capricornio = "Capricórnio"

// Ordered as in the frontend constants; Capricórnio first because its range
// wraps the year boundary and is matched by a dedicated branch.
var signs = []Sign{
	{Name: capricornio, Start: monthDay{12, 22}, End: monthDay{1, 19}, Traits: []string{"Ambicioso", "Prático", "Disciplinado"}},
	{Name: "Aquário", Start: monthDay{1, 20}, End: monthDay{2, 18}, Traits: []string{"Inovador", "Original", "Humanitário"}},
	{Name: "Peixes", Start: monthDay{2, 19}, End: monthDay{3, 20}, Traits: []string{"Empático", "Criativo", "Intuitivo"}},
	{Name: "Carneiro", Start: monthDay{3, 21}, End: monthDay{4, 19}, Traits: []string{"Energético", "Corajoso", "Determinado"}},
	{Name: "Touro", Start: monthDay{4, 20}, End: monthDay{5, 20}, Traits: []string{"Paciente", "Persistente", "Leal"}},
	{Name: "Gémeos", Start: monthDay{5, 21}, End: monthDay{6, 20}, Traits: []string{"Adaptável", "Curioso", "Comunicativo"}},
	{Name: "Caranguejo", Start: monthDay{6, 21}, End: monthDay{7, 22}, Traits: []string{"Protetor", "Sensível", "Sentimental"}},
	{Name: "Leão", Start: monthDay{7, 23}, End: monthDay{8, 22}, Traits: []string{"Confiante", "Generoso", "Carismático"}},
	{Name: "Virgem", Start: monthDay{8, 23}, End: monthDay{9, 22}, Traits: []string{"Analítico", "Meticuloso", "Fiável"}},
	{Name: "Balança", Start: monthDay{9, 23}, End: monthDay{10, 22}, Traits: []string{"Diplomático", "Justo", "Sociável"}},
	{Name: "Escorpião", Start: monthDay{10, 23}, End: monthDay{11, 21}, Traits: []string{"Apaixonado", "Resiliente", "Misterioso"}},
	{Name: "Sagitário", Start: monthDay{11, 22}, End: monthDay{12, 21}, Traits: []string{"Otimista", "Aventureiro", "Filosófico"}},
}

// Western classifies a date into its western zodiac sign.
//
// Each non-wrapping entry is matched by two independent checks, tail of the
// start month OR head of the end month. Do not collapse this into a single
// contiguous-range comparison; full-year coverage of the table is what
// guarantees exactly one match, and the boundary semantics depend on the
// two-sided OR.
func Western(date time.Time) Sign {
	month, day := int(date.Month()), date.Day()

	for _, s := range signs {
		if s.Name == capricornio {
			if (month == 12 && day >= 22) || (month == 1 && day <= 19) {
				return s
			}
			continue
		}
		if month == s.Start.Month && day >= s.Start.Day {
			return s
		}
		if month == s.End.Month && day <= s.End.Day {
			return s
		}
	}

	// Unreachable with full-year coverage.
	return signs[0]
}

// Animal is one entry of the chinese zodiac cycle.
type Animal struct {
	Name  string
	Glyph string
}

// Display is the composed form shown in the UI. Programmatic comparisons
// must use Name.
func (a Animal) Display() string {
	return a.Glyph + " " + a.Name
}

// Order is not calendar-canonical: it is aligned so that year % 12 indexes
// the correct animal (2016 % 12 == 0 and 2016 was a Macaco year). Do not
// reorder.
var animals = []Animal{
	{Name: "Macaco", Glyph: "🐒"},
	{Name: "Galo", Glyph: "🐓"},
	{Name: "Cão", Glyph: "🐕"},
	{Name: "Porco", Glyph: "🐖"},
	{Name: "Rato", Glyph: "🐀"},
	{Name: "Boi", Glyph: "🐂"},
	{Name: "Tigre", Glyph: "🐅"},
	{Name: "Coelho", Glyph: "🐇"},
	{Name: "Dragão", Glyph: "🐉"},
	{Name: "Serpente", Glyph: "🐍"},
	{Name: "Cavalo", Glyph: "🐎"},
	{Name: "Cabra", Glyph: "🐐"},
}

// Chinese returns the chinese zodiac animal for the date's birth year.
func Chinese(date time.Time) Animal {
	return animals[date.Year()%12]
}
