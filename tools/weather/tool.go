package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
)

const (
	// DefaultBaseURL is the public forecast endpoint.
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	// MaxForecastDays is the external API ceiling; requests are clamped to it.
	MaxForecastDays = 7

	defaultTimeout = 10 * time.Second
)

// Input schema for the weather forecast tool.
type Input struct {
	schema.Base
	// City name to forecast (must be a known city).
	City string `json:"city" jsonschema:"title=city,description=City name (e.g. Goa, Bangalore, Delhi)." validate:"required"`
	// Days number of forecast days, 1-7.
	Days int `json:"days,omitempty" jsonschema:"title=days,default=7,description=Number of days for forecast (1-7)."`
}

func NewInput(city string, days int) *Input {
	if days == 0 {
		days = MaxForecastDays
	}
	return &Input{
		City: city,
		Days: days,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Day is one forecast day.
type Day struct {
	// Date calendar date, YYYY-MM-DD.
	Date string `json:"date"`
	// Condition categorical weather condition.
	Condition Condition `json:"condition"`
	// High maximum temperature in celsius.
	High float64 `json:"high"`
	// Low minimum temperature in celsius.
	Low float64 `json:"low"`
	// Precipitation daily precipitation sum in millimeters.
	Precipitation float64 `json:"precipitation"`
	// PrecipProbability precipitation probability, 0-100.
	PrecipProbability int `json:"precip_probability"`
}

// Output schema for the weather forecast tool.
type Output struct {
	schema.Base
	// City resolved city name.
	City string `json:"city,omitempty" jsonschema:"title=city,description=The resolved city name."`
	// Days ordered forecast, index 0 is the earliest day.
	Days []Day `json:"days,omitempty" jsonschema:"title=days,description=Ordered forecast days."`
}

func (s Output) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Report formats the forecast for engine consumption, with travel tips
// derived from the window.
func (s Output) Report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s:\n\n", s.City)
	for i, d := range s.Days {
		label := d.Date
		if ts, err := time.Parse("2006-01-02", d.Date); err == nil {
			label = ts.Format("Monday, Jan 02")
		}
		fmt.Fprintf(&b, "Day %d (%s):\n", i+1, label)
		fmt.Fprintf(&b, "  Condition: %s\n", d.Condition)
		fmt.Fprintf(&b, "  Temperature: %.1f°C (High) / %.1f°C (Low)\n", d.High, d.Low)
		if d.Precipitation > 0 || d.PrecipProbability > 20 {
			fmt.Fprintf(&b, "  Precipitation: %.1fmm (%d%% chance)\n", d.Precipitation, d.PrecipProbability)
		}
		b.WriteString("\n")
	}
	b.WriteString("Travel tips:\n")
	switch advice := s.ClothingAdvice(); advice {
	case AdviceHot:
		b.WriteString("  - Pack light, breathable clothing and sunscreen\n")
	case AdviceCold:
		b.WriteString("  - Bring warm layers and a jacket\n")
	default:
		b.WriteString("  - Pleasant weather, comfortable clothing recommended\n")
	}
	if s.NeedsRainGear() {
		b.WriteString("  - Carry an umbrella or raincoat\n")
	} else {
		b.WriteString("  - No rain expected, perfect for outdoor activities\n")
	}
	return b.String()
}

// ClothingAdvice derives a clothing recommendation from the average high over
// the window: hot at 30°C and above, cold below 20°C, moderate otherwise.
func (s Output) ClothingAdvice() Advice {
	if len(s.Days) == 0 {
		return AdviceModerate
	}
	var sum float64
	for _, d := range s.Days {
		sum += d.High
	}
	avg := sum / float64(len(s.Days))
	switch {
	case avg >= 30:
		return AdviceHot
	case avg < 20:
		return AdviceCold
	default:
		return AdviceModerate
	}
}

// NeedsRainGear reports whether any day in the window has more than 5mm of
// precipitation.
func (s Output) NeedsRainGear() bool {
	for _, d := range s.Days {
		if d.Precipitation > 5 {
			return true
		}
	}
	return false
}

type Config struct {
	tools.Config
	baseURL    string
	httpClient *http.Client
}

// Tool fetches a daily forecast for a known city.
type Tool struct {
	Config
}

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("WeatherForecastTool")
	}
	if ret.Description() == "" {
		ret.SetDescription("Fetches a daily weather forecast (temperature, conditions, precipitation) for a city, up to 7 days.")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.httpClient == nil {
		ret.httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return ret
}

// forecastResponse is the upstream daily payload.
type forecastResponse struct {
	Daily struct {
		Time                        []string  `json:"time"`
		TemperatureMax              []float64 `json:"temperature_2m_max"`
		TemperatureMin              []float64 `json:"temperature_2m_min"`
		WeatherCode                 []int     `json:"weathercode"`
		PrecipitationSum            []float64 `json:"precipitation_sum"`
		PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
	} `json:"daily"`
}

// Run executes the forecast lookup. An unknown city is a typed failure
// listing the known cities; the requested day count is clamped to the
// 7-day ceiling.
func (t *Tool) Run(ctx context.Context, input *Input) (*Output, error) {
	t.OnStart(ctx, t, input)
	coord, err := Resolve(input.City)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	days := input.Days
	if days < 1 {
		days = 1
	} else if days > MaxForecastDays {
		days = MaxForecastDays
	}
	raw, err := t.fetch(ctx, coord, days)
	if err != nil {
		t.OnError(ctx, t, input, err)
		return nil, err
	}
	out := &Output{City: coord.Name}
	for i, date := range raw.Daily.Time {
		if i >= days {
			break
		}
		day := Day{
			Date:      date,
			Condition: ConditionFromCode(at(raw.Daily.WeatherCode, i)),
			High:      at(raw.Daily.TemperatureMax, i),
			Low:       at(raw.Daily.TemperatureMin, i),
		}
		day.Precipitation = at(raw.Daily.PrecipitationSum, i)
		day.PrecipProbability = at(raw.Daily.PrecipitationProbabilityMax, i)
		out.Days = append(out.Days, day)
	}
	t.OnEnd(ctx, t, input, out)
	return out, nil
}

func (t *Tool) fetch(ctx context.Context, coord Coordinates, days int) (*forecastResponse, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%.4f", coord.Lat))
	values.Set("longitude", fmt.Sprintf("%.4f", coord.Lon))
	values.Set("daily", "temperature_2m_max,temperature_2m_min,weathercode,precipitation_sum,precipitation_probability_max")
	values.Set("timezone", "auto")
	values.Set("forecast_days", fmt.Sprintf("%d", days))
	reqURL := fmt.Sprintf("%s?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("error fetching weather data: %w", err)
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("non-200 response from weather service: %d", httpResp.StatusCode)
	}
	ret := new(forecastResponse)
	if err := json.NewDecoder(httpResp.Body).Decode(ret); err != nil {
		return nil, fmt.Errorf("invalid weather payload: %w", err)
	}
	return ret, nil
}

// at indexes a parallel upstream array; entries past its end read as zero.
func at[T int | float64](list []T, i int) T {
	var zero T
	if i < 0 || i >= len(list) {
		return zero
	}
	return list[i]
}
