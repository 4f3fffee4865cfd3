package weather

import (
	"fmt"
	"sort"
	"strings"
)

// Coordinates is a gazetteer entry.
type Coordinates struct {
	Lat  float64
	Lon  float64
	Name string
}

// gazetteer maps lowercased city names to coordinates.
var gazetteer = map[string]Coordinates{
	"goa":       {15.2993, 74.1240, "Goa"},
	"bangalore": {12.9716, 77.5946, "Bangalore"},
	"bengaluru": {12.9716, 77.5946, "Bangalore"},
	"delhi":     {28.7041, 77.1025, "Delhi"},
	"mumbai":    {19.0760, 72.8777, "Mumbai"},
	"chennai":   {13.0827, 80.2707, "Chennai"},
	"kolkata":   {22.5726, 88.3639, "Kolkata"},
	"hyderabad": {17.3850, 78.4867, "Hyderabad"},
	"pune":      {18.5204, 73.8567, "Pune"},
	"jaipur":    {26.9124, 75.7873, "Jaipur"},
	"ahmedabad": {23.0225, 72.5714, "Ahmedabad"},
	"lucknow":   {26.8467, 80.9462, "Lucknow"},
	"udaipur":   {24.5854, 73.7125, "Udaipur"},
	"agra":      {27.1767, 78.0081, "Agra"},
	"varanasi":  {25.3176, 82.9739, "Varanasi"},
}

// UnknownCityError is the typed failure for a city outside the gazetteer.
// It enumerates the known cities so a reasoning engine can correct itself.
type UnknownCityError struct {
	City  string
	Known []string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("city %q not found in database. Available cities: %s", e.City, strings.Join(e.Known, ", "))
}

// Resolve maps a city name to its coordinates.
func Resolve(city string) (Coordinates, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if coord, ok := gazetteer[key]; ok {
		return coord, nil
	}
	return Coordinates{}, &UnknownCityError{City: city, Known: KnownCities()}
}

// KnownCities returns the sorted, de-duplicated gazetteer city names.
func KnownCities() []string {
	seen := make(map[string]struct{}, len(gazetteer))
	names := make([]string, 0, len(gazetteer))
	for _, coord := range gazetteer {
		if _, ok := seen[coord.Name]; ok {
			continue
		}
		seen[coord.Name] = struct{}{}
		names = append(names, coord.Name)
	}
	sort.Strings(names)
	return names
}
