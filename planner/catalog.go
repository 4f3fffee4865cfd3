package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tripforge/tripforge/components"
	"github.com/tripforge/tripforge/config"
	"github.com/tripforge/tripforge/dataset"
	"github.com/tripforge/tripforge/engine"
	"github.com/tripforge/tripforge/tools"
	"github.com/tripforge/tripforge/tools/budget"
	"github.com/tripforge/tripforge/tools/flights"
	"github.com/tripforge/tripforge/tools/hotels"
	"github.com/tripforge/tripforge/tools/places"
	"github.com/tripforge/tripforge/tools/weather"
)

var validate = validator.New()

// Catalog is the closed set of lookup tools exposed to a reasoning engine.
// Every invocation is dispatched over the operation tag; names outside the
// catalog are rejected.
type Catalog struct {
	flights *flights.Tool
	hotels  *hotels.Tool
	weather *weather.Tool
	places  *places.Tool
	budget  *budget.Tool
}

// NewCatalog builds the tool set. All five tools share one dataset loader
// so cache invalidation is observed uniformly.
func NewCatalog(cfg config.Config) *Catalog {
	loader := dataset.NewLoader(cfg.DataPath)
	hooks := []tools.Option{
		tools.WithStartHook(func(ctx context.Context, t tools.ITool, input any) {
			slog.Debug("tool start", slog.String("tool", t.Title()))
		}),
		tools.WithErrorHook(func(ctx context.Context, t tools.ITool, input any, err error) {
			slog.Debug("tool failed", slog.String("tool", t.Title()), slog.Any("error", err))
		}),
	}
	return &Catalog{
		flights: flights.New(flights.WithLoader(loader), flights.WithToolOptions(hooks...)),
		hotels:  hotels.New(hotels.WithLoader(loader), hotels.WithToolOptions(hooks...)),
		weather: weather.New(weather.WithBaseURL(cfg.WeatherBaseURL), weather.WithToolOptions(hooks...)),
		places:  places.New(places.WithLoader(loader), places.WithToolOptions(hooks...)),
		budget:  budget.New(hooks...),
	}
}

// Flights exposes the flight search tool for direct invocation.
func (c *Catalog) Flights() *flights.Tool { return c.flights }

// Hotels exposes the hotel search tool for direct invocation.
func (c *Catalog) Hotels() *hotels.Tool { return c.hotels }

// Weather exposes the weather forecast tool for direct invocation.
func (c *Catalog) Weather() *weather.Tool { return c.weather }

// Places exposes the attraction search tool for direct invocation.
func (c *Catalog) Places() *places.Tool { return c.places }

// Budget exposes the budget calculator tool for direct invocation.
func (c *Catalog) Budget() *budget.Tool { return c.budget }

// Specs returns the engine-facing declarations of every operation, in
// catalog order.
func (c *Catalog) Specs() []engine.ToolSpec {
	specs := make([]engine.ToolSpec, 0, len(tools.Ops()))
	for _, op := range tools.Ops() {
		var t tools.ITool
		switch op {
		case tools.OpFlightSearch:
			t = c.flights
		case tools.OpHotelSearch:
			t = c.hotels
		case tools.OpWeatherForecast:
			t = c.weather
		case tools.OpPlacesSearch:
			t = c.places
		case tools.OpBudgetCalculator:
			t = c.budget
		}
		specs = append(specs, engine.ToolSpec{
			Name:        op.Name(),
			Description: t.Description(),
			Parameters:  opParameters[op],
		})
	}
	return specs
}

// opParameters holds the JSON-schema declaration for each operation's input.
var opParameters = map[tools.Op]map[string]any{
	tools.OpFlightSearch: {
		"type": "object",
		"properties": map[string]any{
			"source": map[string]any{
				"type":        "string",
				"description": "Source city (e.g. Delhi, Mumbai).",
			},
			"destination": map[string]any{
				"type":        "string",
				"description": "Destination city (e.g. Goa, Bangalore).",
			},
			"sort_by": map[string]any{
				"type":        "string",
				"enum":        []string{"price", "duration"},
				"description": "Sort criteria: price for cheapest, duration for fastest.",
			},
		},
		"required": []string{"source", "destination"},
	},
	tools.OpHotelSearch: {
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City to search hotels in.",
			},
			"min_rating": map[string]any{
				"type":        "number",
				"description": "Minimum star rating (0-5).",
			},
			"max_price": map[string]any{
				"type":        "number",
				"description": "Maximum price per night.",
			},
		},
		"required": []string{"city"},
	},
	tools.OpWeatherForecast: {
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City name (e.g. Goa, Bangalore, Delhi).",
			},
			"days": map[string]any{
				"type":        "integer",
				"description": "Number of days for forecast (1-7).",
			},
		},
		"required": []string{"city"},
	},
	tools.OpPlacesSearch: {
		"type": "object",
		"properties": map[string]any{
			"city": map[string]any{
				"type":        "string",
				"description": "City to find attractions in.",
			},
			"type": map[string]any{
				"type":        "string",
				"description": "Optional category filter (e.g. Beach, Heritage, Shopping).",
			},
		},
		"required": []string{"city"},
	},
	tools.OpBudgetCalculator: {
		"type": "object",
		"properties": map[string]any{
			"flight_price": map[string]any{
				"type":        "integer",
				"description": "Flight price. Defaults to 4800.",
			},
			"hotel_price": map[string]any{
				"type":        "integer",
				"description": "Hotel price per night. Defaults to 3200.",
			},
			"nights": map[string]any{
				"type":        "integer",
				"description": "Number of nights. Defaults to 3.",
			},
			"daily_expense": map[string]any{
				"type":        "integer",
				"description": "Daily food and travel expense. Defaults to 800.",
			},
		},
		"required": []string{},
	},
}

// Execute runs one requested invocation and wraps the outcome as a callback.
// Failures become typed error callbacks with the error text preserved
// verbatim; they never abort the planning call.
func (c *Catalog) Execute(ctx context.Context, call components.ToolCall) components.ToolCallback {
	cb := components.ToolCallback{ID: call.ID, Name: call.Name}
	op, err := tools.OpFromName(call.Name)
	if err != nil {
		cb.IsError = true
		cb.Content = err.Error()
		return cb
	}
	content, err := c.dispatch(ctx, op, call.Arguments)
	if err != nil {
		cb.IsError = true
		cb.Content = err.Error()
		return cb
	}
	cb.Content = content
	return cb
}

func (c *Catalog) dispatch(ctx context.Context, op tools.Op, args string) (string, error) {
	if args == "" {
		args = "{}"
	}
	switch op {
	case tools.OpFlightSearch:
		input := new(flights.Input)
		if err := decodeInput(args, input); err != nil {
			return "", err
		}
		out, err := c.flights.Run(ctx, input)
		if err != nil {
			return "", err
		}
		return out.Report(), nil
	case tools.OpHotelSearch:
		input := new(hotels.Input)
		if err := decodeInput(args, input); err != nil {
			return "", err
		}
		out, err := c.hotels.Run(ctx, input)
		if err != nil {
			return "", err
		}
		return out.Report(), nil
	case tools.OpWeatherForecast:
		input := new(weather.Input)
		if err := decodeInput(args, input); err != nil {
			return "", err
		}
		out, err := c.weather.Run(ctx, input)
		if err != nil {
			return "", err
		}
		return out.Report(), nil
	case tools.OpPlacesSearch:
		input := new(places.Input)
		if err := decodeInput(args, input); err != nil {
			return "", err
		}
		out, err := c.places.Run(ctx, input)
		if err != nil {
			return "", err
		}
		return out.Report(), nil
	case tools.OpBudgetCalculator:
		input := new(budget.Input)
		if err := decodeInput(args, input); err != nil {
			return "", err
		}
		out, err := c.budget.Run(ctx, input)
		if err != nil {
			return "", err
		}
		return out.String(), nil
	}
	return "", fmt.Errorf("unknown operation %q", op)
}

// decodeInput parses and validates a structured tool input.
func decodeInput(args string, input any) error {
	if err := json.Unmarshal([]byte(args), input); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := validate.Struct(input); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}
