package budget

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Knetic/govaluate"

	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
)

// Defaults keep the tool usable in isolation during reasoning-engine
// exploration; they are not product truth.
const (
	DefaultFlightPrice  = 4800
	DefaultHotelPrice   = 3200
	DefaultDailyExpense = 800
	DefaultNights       = 3
)

// Input schema for the budget calculator tool.
type Input struct {
	schema.Base
	// FlightPrice one-way flight price, defaults to 4800 when absent.
	FlightPrice *int `json:"flight_price,omitempty" jsonschema:"title=flight_price,default=4800,description=Flight price." validate:"omitempty,gt=0"`
	// HotelPrice price per night, defaults to 3200 when absent.
	HotelPrice *int `json:"hotel_price,omitempty" jsonschema:"title=hotel_price,default=3200,description=Hotel price per night." validate:"omitempty,gt=0"`
	// Nights number of nights billed, defaults to 3 when absent.
	Nights *int `json:"nights,omitempty" jsonschema:"title=nights,default=3,description=Number of nights." validate:"omitempty,gt=0"`
	// DailyExpense food and travel rate per day, defaults to 800 when absent.
	DailyExpense *int `json:"daily_expense,omitempty" jsonschema:"title=daily_expense,default=800,description=Daily food and travel expense." validate:"omitempty,gt=0"`
	// ActivitiesFormula optional arithmetic expression for an extra
	// activities component. Bound parameters: flight, hotel, daily, nights,
	// hotel_total, daily_total, plus any entries of params.
	ActivitiesFormula string `json:"activities_formula,omitempty" jsonschema:"title=activities_formula,description=Optional arithmetic expression for an extra activities cost."`
	// Params extra parameters for the activities formula.
	Params map[string]interface{} `json:"params,omitempty" jsonschema:"title=params,description=Extra parameters for the activities formula."`
}

func NewInput(flightPrice, hotelPrice, nights, dailyExpense *int) *Input {
	return &Input{
		FlightPrice:  flightPrice,
		HotelPrice:   hotelPrice,
		Nights:       nights,
		DailyExpense: dailyExpense,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Breakdown is the cost breakdown of a trip. The total is always derived
// from the components, never stored.
type Breakdown struct {
	// Flight one-time flight cost.
	Flight int `json:"flight"`
	// Hotel nightly rate times nights.
	Hotel int `json:"hotel"`
	// FoodAndTravel daily expense rate times nights.
	FoodAndTravel int `json:"food_and_travel"`
	// Activities extra activities cost, zero unless computed.
	Activities int `json:"activities"`
}

// Total recomputes the trip total from the components.
func (b Breakdown) Total() int {
	return b.Flight + b.Hotel + b.FoodAndTravel + b.Activities
}

func (b Breakdown) MarshalJSON() ([]byte, error) {
	type plain Breakdown
	return json.Marshal(struct {
		plain
		Total int `json:"total"`
	}{plain(b), b.Total()})
}

// Output schema for the budget calculator tool.
type Output struct {
	schema.Base
	// Breakdown the computed cost breakdown.
	Breakdown Breakdown `json:"breakdown" jsonschema:"title=breakdown,description=The computed cost breakdown."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Tool computes a trip cost breakdown. Pure arithmetic; no external state.
type Tool struct {
	tools.Config
}

func New(opts ...tools.Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("BudgetCalculatorTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Calculates a trip budget breakdown from flight price, hotel price per night, nights and daily expenses.")
	}
	return ret
}

// Run executes the budget calculation, applying defaults for absent inputs.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	flight := valueOr(input.FlightPrice, DefaultFlightPrice)
	hotel := valueOr(input.HotelPrice, DefaultHotelPrice)
	nights := valueOr(input.Nights, DefaultNights)
	daily := valueOr(input.DailyExpense, DefaultDailyExpense)
	breakdown := Breakdown{
		Flight:        flight,
		Hotel:         hotel * nights,
		FoodAndTravel: daily * nights,
	}
	if input.ActivitiesFormula != "" {
		extra, err := t.evalActivities(input, breakdown, nights)
		if err != nil {
			err = fmt.Errorf("activities formula: %w", err)
			t.OnError(ctx, t, input, err)
			return nil, err
		}
		breakdown.Activities = extra
	}
	out := &Output{Breakdown: breakdown}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) evalActivities(input *Input, b Breakdown, nights int) (int, error) {
	exp, err := govaluate.NewEvaluableExpression(input.ActivitiesFormula)
	if err != nil {
		return 0, err
	}
	params := make(map[string]interface{}, len(input.Params)+6)
	for k, v := range input.Params {
		params[k] = v
	}
	params["flight"] = float64(b.Flight)
	params["hotel"] = float64(valueOr(input.HotelPrice, DefaultHotelPrice))
	params["daily"] = float64(valueOr(input.DailyExpense, DefaultDailyExpense))
	params["nights"] = float64(nights)
	params["hotel_total"] = float64(b.Hotel)
	params["daily_total"] = float64(b.FoodAndTravel)
	result, err := exp.Evaluate(params)
	if err != nil {
		return 0, err
	}
	value, ok := result.(float64)
	if !ok {
		return 0, fmt.Errorf("expression result is not numeric: %v", result)
	}
	return int(value), nil
}

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}
