package flights

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tripforge/tripforge/dataset"
	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
)

// SortBy is the ranking criterion for flight results.
type SortBy = string

const (
	SortByPrice    SortBy = "price"
	SortByDuration SortBy = "duration"
)

// Input schema for the flight search tool.
type Input struct {
	schema.Base
	// Source city the flight departs from.
	Source string `json:"source" jsonschema:"title=source,description=Source city (e.g. Delhi, Mumbai)." validate:"required"`
	// Destination city the flight arrives at.
	Destination string `json:"destination" jsonschema:"title=destination,description=Destination city (e.g. Goa, Bangalore)." validate:"required"`
	// SortBy ranking criterion: price for cheapest, duration for fastest.
	SortBy SortBy `json:"sort_by,omitempty" jsonschema:"title=sort_by,enum=price,enum=duration,default=price,description=Sort criteria: price for cheapest, duration for fastest."`
}

func NewInput(source, destination string, sortBy SortBy) *Input {
	if sortBy == "" {
		sortBy = SortByPrice
	}
	return &Input{
		Source:      source,
		Destination: destination,
		SortBy:      sortBy,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Record is one flight from the dataset. Immutable once loaded.
type Record struct {
	FlightID        string `json:"flight_id"`
	Airline         string `json:"airline"`
	Source          string `json:"source"`
	Destination     string `json:"destination"`
	DepartureTime   string `json:"departure_time"`
	ArrivalTime     string `json:"arrival_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Price           int    `json:"price"`
	AvailableSeats  int    `json:"available_seats"`
}

// Duration renders the flight duration as e.g. "2h 30m".
func (r Record) Duration() string {
	hours := r.DurationMinutes / 60
	mins := r.DurationMinutes % 60
	if mins > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dh", hours)
}

// Output schema for the flight search tool.
type Output struct {
	schema.Base
	// Source the searched source city.
	Source string `json:"source,omitempty" jsonschema:"title=source,description=The searched source city."`
	// Destination the searched destination city.
	Destination string `json:"destination,omitempty" jsonschema:"title=destination,description=The searched destination city."`
	// Results matching flights in ranked order.
	Results []Record `json:"results,omitempty" jsonschema:"title=results,description=Matching flights in ranked order."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Report formats the ranked results for engine consumption, surfacing the top 3.
func (s Output) Report() string {
	if len(s.Results) == 0 {
		return fmt.Sprintf("No direct flights found from %s to %s. Please try different cities or check spelling.", s.Source, s.Destination)
	}
	p := message.NewPrinter(language.English)
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flight(s):\n\n", len(s.Results))
	for i, f := range s.Results {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, f.Airline, f.FlightID)
		fmt.Fprintf(&b, "   Route: %s -> %s\n", f.Source, f.Destination)
		p.Fprintf(&b, "   Price: ₹%d\n", f.Price)
		fmt.Fprintf(&b, "   Departure: %s | Arrival: %s\n", f.DepartureTime, f.ArrivalTime)
		fmt.Fprintf(&b, "   Duration: %s\n", f.Duration())
		fmt.Fprintf(&b, "   Available Seats: %d\n\n", f.AvailableSeats)
	}
	best := s.Results[0]
	criterion := "price"
	if len(s.Results) > 1 && best.Price > s.Results[1].Price {
		criterion = "duration"
	}
	fmt.Fprintf(&b, "Recommendation: %s offers the best %s for this route.\n", best.Airline, criterion)
	return b.String()
}

type Config struct {
	tools.Config
	loader *dataset.Loader
}

// Tool searches the flight dataset by route and ranks the matches.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("FlightSearchTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches for flights between two cities and returns the best options with prices, timings and airlines.")
	}
	return ret
}

// Run executes the flight search. An empty match set is a normal outcome,
// not an error.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	records := t.records()
	src := strings.TrimSpace(input.Source)
	dst := strings.TrimSpace(input.Destination)
	matched := make([]Record, 0, len(records))
	for _, r := range records {
		if strings.EqualFold(strings.TrimSpace(r.Source), src) && strings.EqualFold(strings.TrimSpace(r.Destination), dst) {
			matched = append(matched, r)
		}
	}
	switch input.SortBy {
	case SortByDuration:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].DurationMinutes < matched[j].DurationMinutes
		})
	default:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Price < matched[j].Price
		})
	}
	out := &Output{
		Source:      input.Source,
		Destination: input.Destination,
		Results:     matched,
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

// records loads the flight dataset, falling back to the built-in samples
// when no loader is configured or the file is unusable.
func (t *Tool) records() []Record {
	if t.loader == nil {
		return SampleFlights()
	}
	raw, err := t.loader.Load(dataset.FlightsFile)
	if err != nil {
		return SampleFlights()
	}
	records, err := dataset.Decode[Record](raw)
	if err != nil || len(records) == 0 {
		return SampleFlights()
	}
	return records
}
