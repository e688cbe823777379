package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate is returned for NaN, infinite or out-of-range coordinates.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Unknown is rendered in place of missing descriptive metadata.
const Unknown = "Unknown"

// Location is a real-world place players try to pin on the map.
type Location struct {
	ID                     int     `json:"id"`
	Name                   string  `json:"name"`
	Category               string  `json:"category"`
	Subcategory            string  `json:"subcategory"`
	Country                string  `json:"country"`
	City                   string  `json:"city"`
	Continent              string  `json:"continent"`
	Climate                string  `json:"climate"`
	Latitude               float64 `json:"latitude"`
	Longitude              float64 `json:"longitude"`
	Difficulty             string  `json:"difficulty"`
	Description            string  `json:"description"`
	WikipediaLink          string  `json:"wikipedia_link"`
	ImageURL               string  `json:"image_url"`
	CulturalContext        string  `json:"cultural_context"`
	HistoricalSignificance string  `json:"historical_significance"`
	BestVisitingTime       string  `json:"best_visiting_time"`
	LocalAttractions       string  `json:"local_attractions"`
}

// Normalize returns a copy with every optional field populated.
func (l Location) Normalize() Location {
	l.Name = orDefault(l.Name, Unknown)
	l.Category = orDefault(l.Category, "General")
	l.Subcategory = orDefault(l.Subcategory, "General")
	l.Country = orDefault(l.Country, Unknown)
	l.City = orDefault(l.City, Unknown)
	l.Continent = orDefault(l.Continent, Unknown)
	l.Climate = orDefault(l.Climate, "Temperate")
	l.Difficulty = orDefault(l.Difficulty, "Medium")
	l.CulturalContext = orDefault(l.CulturalContext, "A significant cultural landmark")
	l.HistoricalSignificance = orDefault(l.HistoricalSignificance, "Historically important location")
	l.BestVisitingTime = orDefault(l.BestVisitingTime, "Year-round")
	l.LocalAttractions = orDefault(l.LocalAttractions, "Various local attractions")
	return l
}

// Validate reports whether the truth coordinates can be scored.
func (l Location) Validate() error {
	if err := ValidateCoordinates(l.Latitude, l.Longitude); err != nil {
		return fmt.Errorf("location %d: %w", l.ID, err)
	}
	return nil
}

// ValidateCoordinates checks that lat/lng are finite and within
// [-90, 90] / [-180, 180].
func ValidateCoordinates(lat, lng float64) error {
	if !isFinite(lat) || !isFinite(lng) {
		return fmt.Errorf("%w: non-finite value", ErrInvalidCoordinate)
	}
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinate)
	}
	if lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinate)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
