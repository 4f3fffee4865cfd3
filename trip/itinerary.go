package trip

import (
	"time"

	"github.com/tripforge/tripforge/tools/budget"
	"github.com/tripforge/tripforge/tools/flights"
	"github.com/tripforge/tripforge/tools/hotels"
	"github.com/tripforge/tripforge/tools/places"
	"github.com/tripforge/tripforge/tools/weather"
)

// DayThemes is the fixed activity theme rotation: day i uses theme i mod 5.
var DayThemes = [5]string{
	"Beach relaxation & water sports",
	"Heritage sites & local culture",
	"Shopping & cuisine exploration",
	"Adventure activities",
	"Scenic tours & photography",
}

// Activity is one chosen attraction with descriptive text.
type Activity struct {
	Place       places.Record `json:"place"`
	Description string        `json:"description"`
}

// DayPlan is one day of the itinerary.
type DayPlan struct {
	// Day 1-based day index.
	Day int `json:"day"`
	// Title the day's theme.
	Title string `json:"title"`
	// Activities ordered chosen attractions.
	Activities []Activity `json:"activities,omitempty"`
}

// Itinerary is a structured trip plan, owned by one planning invocation.
type Itinerary struct {
	Source      string           `json:"source"`
	Destination string           `json:"destination"`
	StartDate   time.Time        `json:"start_date"`
	EndDate     time.Time        `json:"end_date"`
	Days        int              `json:"days"`
	Flight      flights.Record   `json:"flight"`
	Hotel       hotels.Record    `json:"hotel"`
	Weather     []weather.Day    `json:"weather,omitempty"`
	DayPlans    []DayPlan        `json:"day_plans"`
	Budget      budget.Breakdown `json:"budget"`
}
