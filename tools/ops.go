package tools

import "fmt"

// Op is the closed set of lookup operations a reasoning engine may request.
// Dispatch happens over the tag, never over a raw name lookup.
type Op int

const (
	OpFlightSearch Op = iota
	OpHotelSearch
	OpWeatherForecast
	OpPlacesSearch
	OpBudgetCalculator
)

var opNames = map[Op]string{
	OpFlightSearch:     "flight_search",
	OpHotelSearch:      "hotel_search",
	OpWeatherForecast:  "weather_lookup",
	OpPlacesSearch:     "places_search",
	OpBudgetCalculator: "budget_calculator",
}

// Name returns the wire name of the operation.
func (op Op) Name() string {
	return opNames[op]
}

func (op Op) String() string {
	return op.Name()
}

// Ops returns every operation in catalog order.
func Ops() []Op {
	return []Op{OpFlightSearch, OpHotelSearch, OpWeatherForecast, OpPlacesSearch, OpBudgetCalculator}
}

// OpFromName resolves a wire name to its operation tag.
// Unrecognized names are rejected, not silently ignored.
func OpFromName(name string) (Op, error) {
	for op, n := range opNames {
		if n == name {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown operation %q", name)
}
