package places

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/tripforge/tripforge/dataset"
	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
)

// Input schema for the places search tool.
type Input struct {
	schema.Base
	// City to find attractions in.
	City string `json:"city" jsonschema:"title=city,description=City to find attractions in." validate:"required"`
	// Type optional category filter (e.g. Beach, Heritage, Shopping).
	Type string `json:"type,omitempty" jsonschema:"title=type,description=Optional category filter (e.g. Beach, Heritage, Shopping)."`
}

func NewInput(city, typ string) *Input {
	return &Input{
		City: city,
		Type: typ,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Record is one point of interest from the dataset.
type Record struct {
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Category string  `json:"type"`
	Rating   float64 `json:"rating"`
}

// Output schema for the places search tool.
type Output struct {
	schema.Base
	// City the searched city.
	City string `json:"city,omitempty" jsonschema:"title=city,description=The searched city."`
	// Results attractions ranked by rating.
	Results []Record `json:"results,omitempty" jsonschema:"title=results,description=Attractions ranked by rating."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Report formats the ranked attractions for engine consumption.
func (s Output) Report() string {
	if len(s.Results) == 0 {
		return fmt.Sprintf("No attractions found in %s.", s.City)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Top attractions in %s:\n\n", s.City)
	for i, p := range s.Results {
		fmt.Fprintf(&b, "%d. %s (%s, %.1f/5)\n", i+1, p.Name, p.Category, p.Rating)
	}
	return b.String()
}

type Config struct {
	tools.Config
	loader *dataset.Loader
}

// Tool searches the points-of-interest dataset.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("PlacesSearchTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Finds attractions and points of interest in a city, optionally filtered by category.")
	}
	return ret
}

// Run executes the places search, ranking results by rating.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	city := strings.TrimSpace(input.City)
	typ := strings.TrimSpace(input.Type)
	matched := lo.Filter(t.records(), func(p Record, _ int) bool {
		if !strings.EqualFold(strings.TrimSpace(p.City), city) {
			return false
		}
		if typ != "" && !strings.EqualFold(p.Category, typ) {
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
		return SamplePlaces()
	}
	raw, err := t.loader.Load(dataset.PlacesFile)
	if err != nil {
		return SamplePlaces()
	}
	records, err := dataset.Decode[Record](raw)
	if err != nil || len(records) == 0 {
		return SamplePlaces()
	}
	return records
}
