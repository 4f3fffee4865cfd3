package weather

// Condition is the categorical weather condition.
type Condition string

const (
	Clear        Condition = "clear"
	Cloudy       Condition = "cloudy"
	Fog          Condition = "fog"
	Drizzle      Condition = "drizzle"
	Rain         Condition = "rain"
	Snow         Condition = "snow"
	Showers      Condition = "showers"
	Thunderstorm Condition = "thunderstorm"
	Unknown      Condition = "unknown"
)

// Advice is the clothing recommendation band.
type Advice string

const (
	AdviceHot      Advice = "hot"
	AdviceCold     Advice = "cold"
	AdviceModerate Advice = "moderate"
)

// wmoConditions maps WMO weather codes to conditions.
var wmoConditions = map[int]Condition{
	0:  Clear,
	1:  Clear,
	2:  Cloudy,
	3:  Cloudy,
	45: Fog,
	48: Fog,
	51: Drizzle,
	53: Drizzle,
	55: Drizzle,
	61: Rain,
	63: Rain,
	65: Rain,
	71: Snow,
	73: Snow,
	75: Snow,
	80: Showers,
	81: Showers,
	82: Showers,
	95: Thunderstorm,
	96: Thunderstorm,
	99: Thunderstorm,
}

// ConditionFromCode maps a WMO weather code to its condition. Unrecognized
// codes map to Unknown rather than failing.
func ConditionFromCode(code int) Condition {
	if c, ok := wmoConditions[code]; ok {
		return c
	}
	return Unknown
}
