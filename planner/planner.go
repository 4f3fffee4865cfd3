package planner

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rs/xid"

	"github.com/tripforge/tripforge/components"
	"github.com/tripforge/tripforge/components/systemprompt"
	"github.com/tripforge/tripforge/config"
	"github.com/tripforge/tripforge/engine"
	"github.com/tripforge/tripforge/render"
	"github.com/tripforge/tripforge/schema"
	"github.com/tripforge/tripforge/tools"
	"github.com/tripforge/tripforge/tools/budget"
	"github.com/tripforge/tripforge/tools/flights"
	"github.com/tripforge/tripforge/tools/hotels"
	"github.com/tripforge/tripforge/tools/places"
	"github.com/tripforge/tripforge/tools/weather"
	"github.com/tripforge/tripforge/trip"
)

// knownCitiesProvider feeds the gazetteer coverage into the system prompt so
// an engine does not waste rounds on cities the weather tool will reject.
type knownCitiesProvider struct{}

func (knownCitiesProvider) Title() string { return "Cities with weather coverage" }
func (knownCitiesProvider) Info() string {
	return strings.Join(weather.KnownCities(), ", ")
}

func systemPrompt() string {
	gen := systemprompt.New(
		systemprompt.WithBackground([]string{
			"- You are an expert travel planner.",
			"- You plan trips using the available tools: flight_search finds flights between cities, hotel_search finds hotels in a city, weather_lookup forecasts the weather, places_search lists attractions, and budget_calculator totals the trip cost.",
		}),
		systemprompt.WithSteps([]string{
			"- Call the tools you need to gather flights, a hotel, the weather, attractions and the budget.",
			"- If a tool returns an error, adapt and continue with what you have.",
		}),
		systemprompt.WithOutputInstructs([]string{
			"- Produce one complete day-by-day itinerary with the chosen flight, hotel, weather outlook and a full budget breakdown.",
		}),
		systemprompt.WithContextProviders(knownCitiesProvider{}),
	)
	return gen.Generate()
}

// Planner answers trip planning calls. The planning mode (reasoning engine
// vs deterministic synthesis) is fixed once at construction.
type Planner struct {
	cfg      config.Config
	catalog  *Catalog
	eng      engine.Engine
	provider engine.Provider
	logger   *slog.Logger
}

type Option func(*Planner)

// WithEngine pins a reasoning engine, bypassing capability detection.
func WithEngine(e engine.Engine) Option {
	return func(p *Planner) {
		p.eng = e
	}
}

// WithLogger overrides the default logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) {
		p.logger = l
	}
}

// New builds a planner, probing for an available reasoning engine unless one
// is injected. With no engine available it degrades to deterministic
// synthesis instead of failing.
func New(ctx context.Context, cfg config.Config, opts ...Option) *Planner {
	p := &Planner{
		cfg:      cfg,
		catalog:  NewCatalog(cfg),
		provider: engine.ProviderDemo,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.eng == nil {
		p.eng, p.provider = engine.Detect(ctx, cfg)
	} else {
		p.provider = p.eng.Provider()
	}
	if p.eng == nil {
		p.logger.Info("no reasoning engine available, running in demo mode")
	} else {
		p.logger.Info("reasoning engine selected",
			slog.String("provider", string(p.provider)),
			slog.String("model", p.eng.Model()))
	}
	return p
}

// Provider reports which planning mode the planner is fixed to.
func (p *Planner) Provider() engine.Provider {
	return p.provider
}

// Catalog exposes the tool set, mainly for direct tool invocation.
func (p *Planner) Catalog() *Catalog {
	return p.catalog
}

// PlanTrip executes one planning call. It always returns a terminal result;
// failures are reported in the result, never as a panic.
func (p *Planner) PlanTrip(ctx context.Context, req trip.Request) (res *trip.PlanResult) {
	res = &trip.PlanResult{
		ID:       xid.New().String(),
		Status:   trip.StatusSuccess,
		Provider: p.provider,
	}
	defer func() {
		if r := recover(); r != nil {
			res.Status = trip.StatusError
			res.Message = fmt.Sprintf("planning failed: %v", r)
			res.Report = ""
			res.Itinerary = nil
		}
	}()
	if err := req.Validate(); err != nil {
		res.Status = trip.StatusError
		res.Message = err.Error()
		return res
	}
	if p.eng == nil {
		p.demoPlan(ctx, req, res)
	} else {
		p.aiPlan(ctx, req, res)
	}
	return res
}

// goalPrompt renders the planning request as the engine's goal message.
func goalPrompt(req trip.Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Plan a trip from %s to %s, %s to %s (%d days, %d nights).",
		req.Source, req.Destination,
		req.StartDate.Format(trip.DateLayout), req.EndDate.Format(trip.DateLayout),
		req.Days(), req.Nights())
	if req.Budget > 0 {
		fmt.Fprintf(&b, " Total budget: %s.", render.FormatCurrency(req.Budget, "INR"))
	}
	if req.Preferences != "" {
		fmt.Fprintf(&b, " Preferences: %s.", req.Preferences)
	}
	return b.String()
}

// aiPlan drives the bounded tool-invocation loop against the reasoning
// engine. The loop ends on a final answer, a transport error, or the round
// ceiling.
func (p *Planner) aiPlan(ctx context.Context, req trip.Request, res *trip.PlanResult) {
	memory := components.NewMemory(0)
	memory.NewTurn()
	memory.NewMessage(components.SystemRole, schema.String(systemPrompt()))
	memory.NewMessage(components.UserRole, schema.String(goalPrompt(req)))
	session := p.eng.NewSession(memory.History(), p.catalog.Specs())

	usage := new(components.LLMUsage)
	var callbacks []components.ToolCallback
	for round := 0; round < p.cfg.MaxRounds; round++ {
		resp := new(components.LLMResponse)
		turn, err := session.Send(ctx, callbacks, resp)
		if err != nil {
			res.Status = trip.StatusError
			res.Message = err.Error()
			return
		}
		if resp.Usage != nil {
			usage.Merge(resp.Usage)
		}
		if turn.Done {
			if strings.TrimSpace(turn.FinalAnswer) == "" {
				res.Status = trip.StatusError
				res.Message = "engine finished without a final answer"
				return
			}
			res.Report = turn.FinalAnswer
			p.logger.Debug("planning finished",
				slog.Int("rounds", round+1),
				slog.Int64("input_tokens", usage.InputTokens),
				slog.Int64("output_tokens", usage.OutputTokens))
			return
		}
		callbacks = callbacks[:0]
		for _, call := range turn.ToolCalls {
			p.logger.Debug("tool call", slog.String("name", call.Name), slog.String("args", call.Arguments))
			cb := p.catalog.Execute(ctx, call)
			res.Steps = append(res.Steps, trip.Step{
				Op:      call.Name,
				Input:   call.Arguments,
				Output:  cb.Content,
				IsError: cb.IsError,
			})
			callbacks = append(callbacks, cb)
		}
	}
	res.Status = trip.StatusError
	res.Message = fmt.Sprintf("no final answer within %d rounds", p.cfg.MaxRounds)
}

// demoPlan synthesizes a deterministic itinerary without any reasoning
// engine. Same inputs always give the same plan.
func (p *Planner) demoPlan(ctx context.Context, req trip.Request, res *trip.PlanResult) {
	days := req.Days()

	flightOut, err := p.catalog.Flights().Run(ctx, flights.NewInput(req.Source, req.Destination, flights.SortByPrice))
	if err != nil {
		res.Status = trip.StatusError
		res.Message = err.Error()
		return
	}
	res.Steps = append(res.Steps, trip.Step{Op: tools.OpFlightSearch.Name(), Output: flightOut.Report()})
	var flight flights.Record
	if len(flightOut.Results) > 0 {
		flight = flightOut.Results[0]
	} else {
		flight = flights.SampleFlights()[0]
		flight.Source = req.Source
		flight.Destination = req.Destination
	}

	hotelOut, err := p.catalog.Hotels().Run(ctx, hotels.NewInput(req.Destination, nil, nil))
	if err != nil {
		res.Status = trip.StatusError
		res.Message = err.Error()
		return
	}
	res.Steps = append(res.Steps, trip.Step{Op: tools.OpHotelSearch.Name(), Output: hotelOut.Report()})
	var hotel hotels.Record
	if len(hotelOut.Results) > 0 {
		hotel = hotelOut.Results[0]
	} else {
		hotel = hotels.SeaViewResort()
		hotel.City = req.Destination
	}

	forecast := placeholderForecast(req, days)

	placesOut, err := p.catalog.Places().Run(ctx, places.NewInput(req.Destination, ""))
	if err != nil {
		res.Status = trip.StatusError
		res.Message = err.Error()
		return
	}
	res.Steps = append(res.Steps, trip.Step{Op: tools.OpPlacesSearch.Name(), Output: placesOut.Report()})

	budgetOut, err := p.catalog.Budget().Run(ctx, budget.NewInput(&flight.Price, &hotel.PricePerNight, &days, nil))
	if err != nil {
		res.Status = trip.StatusError
		res.Message = err.Error()
		return
	}
	res.Steps = append(res.Steps, trip.Step{Op: tools.OpBudgetCalculator.Name(), Output: budgetOut.String()})

	it := &trip.Itinerary{
		Source:      req.Source,
		Destination: req.Destination,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Days:        days,
		Flight:      flight,
		Hotel:       hotel,
		Weather:     forecast,
		DayPlans:    dayPlans(days, placesOut.Results),
		Budget:      budgetOut.Breakdown,
	}
	res.Itinerary = it
	res.Report = render.Report(it)
}

// placeholderForecast synthesizes a mild forecast series so demo plans never
// need the network.
func placeholderForecast(req trip.Request, days int) []weather.Day {
	forecast := make([]weather.Day, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, weather.Day{
			Date:              req.StartDate.AddDate(0, 0, i).Format(trip.DateLayout),
			Condition:         weather.Clear,
			High:              32,
			Low:               24,
			Precipitation:     0,
			PrecipProbability: 10,
		})
	}
	return forecast
}

// dayPlans distributes attractions over the trip, two per day, under the
// fixed theme rotation. Day i reuses theme (i-1) mod 5.
func dayPlans(days int, attractions []places.Record) []trip.DayPlan {
	plans := make([]trip.DayPlan, 0, days)
	for day := 1; day <= days; day++ {
		plan := trip.DayPlan{
			Day:   day,
			Title: trip.DayThemes[(day-1)%len(trip.DayThemes)],
		}
		if n := len(attractions); n > 0 {
			for slot := 0; slot < 2; slot++ {
				place := attractions[((day-1)*2+slot)%n]
				plan.Activities = append(plan.Activities, trip.Activity{
					Place:       place,
					Description: describe(place),
				})
			}
		}
		plans = append(plans, plan)
	}
	return plans
}

func describe(place places.Record) string {
	category := strings.ToLower(place.Category)
	if category == "" {
		category = "local"
	}
	return fmt.Sprintf("Visit %s, a popular %s attraction rated %.1f/5.", place.Name, category, place.Rating)
}
