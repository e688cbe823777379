package game

import "fmt"

// Hint is one progressively narrowing clue about a location.
type Hint struct {
	Level   int    `json:"level"`
	Kind    string `json:"kind"`
	Text    string `json:"text"`
	Penalty int    `json:"penalty"`
}

// HintForLevel returns the clue for level 1..MaxHintLevel, or nil for level 0
// and anything out of range. Missing metadata renders as Unknown.
func HintForLevel(loc Location, level int) *Hint {
	var kind, label, value string
	switch level {
	case 1:
		kind, label, value = "climate", "Climate Zone", loc.Climate
	case 2:
		kind, label, value = "continent", "Continent", loc.Continent
	case 3:
		kind, label, value = "country", "Country", loc.Country
	case 4:
		kind, label, value = "city", "Near", loc.City
	default:
		return nil
	}

	return &Hint{
		Level:   level,
		Kind:    kind,
		Text:    fmt.Sprintf("%s: %s", label, orDefault(value, Unknown)),
		Penalty: level * HintPenaltyStep,
	}
}
