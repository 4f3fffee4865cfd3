package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tripforge/tripforge/dataset"
	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
)

// Input schema for the hotel search tool.
type Input struct {
	schema.Base
	// City to search hotels in.
	City string `json:"city" jsonschema:"title=city,description=City to search hotels in." validate:"required"`
	// MinRating minimum star rating, absent means no constraint.
	MinRating *float64 `json:"min_rating,omitempty" jsonschema:"title=min_rating,description=Minimum star rating (0-5)." validate:"omitempty,gte=0,lte=5"`
	// MaxPrice maximum price per night, absent means no constraint.
	MaxPrice *float64 `json:"max_price,omitempty" jsonschema:"title=max_price,description=Maximum price per night." validate:"omitempty,gt=0"`
}

func NewInput(city string, minRating, maxPrice *float64) *Input {
	return &Input{
		City:      city,
		MinRating: minRating,
		MaxPrice:  maxPrice,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Record is one hotel from the dataset.
type Record struct {
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Rating        float64  `json:"rating"`
	PricePerNight int      `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
}

// Output schema for the hotel search tool.
type Output struct {
	schema.Base
	// City the searched city.
	City string `json:"city,omitempty" jsonschema:"title=city,description=The searched city."`
	// Results hotels matching every supplied constraint.
	Results []Record `json:"results,omitempty" jsonschema:"title=results,description=Hotels matching every supplied constraint."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Report formats the filtered hotels for engine consumption.
func (s Output) Report() string {
	if len(s.Results) == 0 {
		return fmt.Sprintf("No hotels in %s match the given rating and price constraints.", s.City)
	}
	p := message.NewPrinter(language.English)
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d hotel(s) in %s:\n\n", len(s.Results), s.City)
	for i, h := range s.Results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h.Name)
		fmt.Fprintf(&b, "   Rating: %.1f/5\n", h.Rating)
		p.Fprintf(&b, "   Price: ₹%d/night\n", h.PricePerNight)
		fmt.Fprintf(&b, "   Amenities: %s\n\n", strings.Join(h.Amenities, ", "))
	}
	return b.String()
}

type Config struct {
	tools.Config
	loader *dataset.Loader
}

// Tool filters the hotel dataset by city, rating and price.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("HotelSearchTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Searches hotels in a city, optionally constrained by minimum rating and maximum price per night.")
	}
	return ret
}

// Run executes the hotel search. Both constraints are optional; absent means
// unconstrained.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	city := strings.TrimSpace(input.City)
	matched := lo.Filter(t.records(), func(h Record, _ int) bool {
		if !strings.EqualFold(strings.TrimSpace(h.City), city) {
			return false
		}
		if input.MinRating != nil && h.Rating < *input.MinRating {
			return false
		}
		if input.MaxPrice != nil && float64(h.PricePerNight) > *input.MaxPrice {
			return false
		}
		return true
	})
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Rating > matched[j].Rating
	})
	out := &Output{
		City:    input.City,
		Results: matched,
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) records() []Record {
	if t.loader == nil {
		return SampleHotels()
	}
	raw, err := t.loader.Load(dataset.HotelsFile)
	if err != nil {
		return SampleHotels()
	}
	records, err := dataset.Decode[Record](raw)
	if err != nil || len(records) == 0 {
		return SampleHotels()
	}
	return records
}
