package location

import (
	"strings"

	"github.com/ugaemi/geonerd-server/internal/game"
)

// Mode selects the subset of locations a tournament draws from.
type Mode string

const (
	ModeTournament Mode = "tournament"
	ModeExplorer   Mode = "explorer"
	ModeCultural   Mode = "cultural"
	ModeLandmark   Mode = "landmark"
	ModeHistorical Mode = "historical"
)

// ParseMode maps a client-supplied name to a Mode, defaulting to tournament.
func ParseMode(s string) Mode {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeExplorer, ModeCultural, ModeLandmark, ModeHistorical:
		return m
	default:
		return ModeTournament
	}
}

// Matches reports whether loc belongs to the mode's subset.
func (m Mode) Matches(loc game.Location) bool {
	switch m {
	case ModeExplorer:
		return loc.Category == "Natural" || loc.Category == "Nature"
	case ModeCultural:
		return loc.Category == "Cultural" || loc.Category == "Culture" || loc.Subcategory == "Street Scenes"
	case ModeLandmark:
		return loc.Subcategory == "Monuments" || loc.Subcategory == "Landmarks"
	case ModeHistorical:
		return len(loc.HistoricalSignificance) > 50
	default:
		return true
	}
}

// Filter returns the locations matching mode, preserving order.
func Filter(locations []game.Location, mode Mode) []game.Location {
	out := make([]game.Location, 0, len(locations))
	for _, loc := range locations {
		if mode.Matches(loc) {
			out = append(out, loc)
		}
	}
	return out
}
