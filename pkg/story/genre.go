package story

import (
	"strings"

	domainerrors "github.com/andrejsstepanovs/madlibs/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Genre is one of the four story categories a Catalog is keyed by.
type Genre int

const (
	Adventure Genre = iota
	RomCom
	Family
	Fantasy
)

// Genres lists every genre in catalog order.
var Genres = []Genre{Adventure, RomCom, Family, Fantasy}

const invalidGenreMessage = "Please enter a valid story genre: adventure, romcom, family, or fantasy"

// String returns the catalog key of the genre.
func (g Genre) String() string {
	switch g {
	case Adventure:
		return "adventure"
	case RomCom:
		return "romcom"
	case Family:
		return "family"
	case Fantasy:
		return "fantasy"
	}
	return "unknown"
}

// Title returns the genre name for display, e.g. "Adventure".
func (g Genre) Title() string {
	return cases.Title(language.English).String(g.String())
}

// ParseGenre matches free text against the genre names, ignoring case and
// surrounding whitespace.
func ParseGenre(s string) (Genre, error) {
	switch cases.Upper(language.Und).String(strings.TrimSpace(s)) {
	case "ADVENTURE":
		return Adventure, nil
	case "ROMCOM":
		return RomCom, nil
	case "FAMILY":
		return Family, nil
	case "FANTASY":
		return Fantasy, nil
	}
	return 0, domainerrors.InvalidGenre(invalidGenreMessage)
}

// GenreNames returns the catalog keys joined for prompts.
func GenreNames() string {
	names := make([]string, len(Genres))
	for i, g := range Genres {
		names[i] = g.String()
	}
	return strings.Join(names, ", ")
}
