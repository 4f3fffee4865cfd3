package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// forecastServer answers like the upstream API, echoing as many days as the
// forecast_days query asks for.
func forecastServer(t *testing.T, codes []int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		days := 0
		fmt.Sscanf(r.URL.Query().Get("forecast_days"), "%d", &days)
		payload := map[string]any{
			"daily": map[string]any{
				"time":                          make([]string, 0, days),
				"temperature_2m_max":            make([]float64, 0, days),
				"temperature_2m_min":            make([]float64, 0, days),
				"weathercode":                   make([]int, 0, days),
				"precipitation_sum":             make([]float64, 0, days),
				"precipitation_probability_max": make([]int, 0, days),
			},
		}
		daily := payload["daily"].(map[string]any)
		for i := 0; i < days; i++ {
			daily["time"] = append(daily["time"].([]string), fmt.Sprintf("2024-03-%02d", i+1))
			daily["temperature_2m_max"] = append(daily["temperature_2m_max"].([]float64), 32.5)
			daily["temperature_2m_min"] = append(daily["temperature_2m_min"].([]float64), 24.1)
			code := 0
			if i < len(codes) {
				code = codes[i]
			}
			daily["weathercode"] = append(daily["weathercode"].([]int), code)
			daily["precipitation_sum"] = append(daily["precipitation_sum"].([]float64), 0.0)
			daily["precipitation_probability_max"] = append(daily["precipitation_probability_max"].([]int), 10)
		}
		json.NewEncoder(w).Encode(payload)
	}))
}

func TestRunClampsDays(t *testing.T) {
	srv := forecastServer(t, nil)
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Run(context.Background(), NewInput("Goa", 10))
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Days) != MaxForecastDays {
		t.Fatalf("expected %d days after clamping, got %d", MaxForecastDays, len(out.Days))
	}
}

func TestRunResolvesCityAlias(t *testing.T) {
	srv := forecastServer(t, nil)
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	out, err := tool.Run(context.Background(), NewInput("bengaluru", 3))
	if err != nil {
		t.Fatal(err)
	}
	if out.City != "Bangalore" {
		t.Errorf("alias should resolve to canonical name, got %q", out.City)
	}
}

func TestRunUnknownCityListsKnownCities(t *testing.T) {
	tool := New()
	_, err := tool.Run(context.Background(), NewInput("Atlantis", 3))
	if err == nil {
		t.Fatal("expected unknown-city failure")
	}
	var unknown *UnknownCityError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCityError, got %T", err)
	}
	if unknown.City != "Atlantis" {
		t.Errorf("error city = %q", unknown.City)
	}
	if !strings.Contains(err.Error(), "Goa") || !strings.Contains(err.Error(), "Delhi") {
		t.Errorf("error should list the known cities: %s", err)
	}
}

func TestRunNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	tool := New(WithBaseURL(srv.URL))
	if _, err := tool.Run(context.Background(), NewInput("Goa", 3)); err == nil {
		t.Fatal("expected failure on non-200 response")
	}
}

func TestConditionFromCode(t *testing.T) {
	cases := map[int]Condition{
		0:   Clear,
		2:   Cloudy,
		45:  Fog,
		53:  Drizzle,
		63:  Rain,
		75:  Snow,
		81:  Showers,
		95:  Thunderstorm,
		999: Unknown,
	}
	for code, want := range cases {
		if got := ConditionFromCode(code); got != want {
			t.Errorf("ConditionFromCode(%d) = %s, want %s", code, got, want)
		}
	}
}

func TestClothingAdvice(t *testing.T) {
	hot := Output{Days: []Day{{High: 31}, {High: 33}}}
	if hot.ClothingAdvice() != AdviceHot {
		t.Error("average high above 30 should advise hot-weather clothing")
	}
	cold := Output{Days: []Day{{High: 15}, {High: 18}}}
	if cold.ClothingAdvice() != AdviceCold {
		t.Error("average high below 20 should advise warm layers")
	}
	moderate := Output{Days: []Day{{High: 24}, {High: 26}}}
	if moderate.ClothingAdvice() != AdviceModerate {
		t.Error("average high in between should advise moderate clothing")
	}
}

func TestNeedsRainGear(t *testing.T) {
	dry := Output{Days: []Day{{Precipitation: 2}, {Precipitation: 5}}}
	if dry.NeedsRainGear() {
		t.Error("5mm or less should not need rain gear")
	}
	wet := Output{Days: []Day{{Precipitation: 1}, {Precipitation: 7.5}}}
	if !wet.NeedsRainGear() {
		t.Error("a day above 5mm should need rain gear")
	}
}

func TestReportTravelTips(t *testing.T) {
	out := Output{
		City: "Goa",
		Days: []Day{{Date: "2024-03-01", Condition: Clear, High: 32, Low: 24}},
	}
	report := out.Report()
	if !strings.Contains(report, "Weather forecast for Goa") {
		t.Errorf("missing header: %s", report)
	}
	if !strings.Contains(report, "Pack light, breathable clothing") {
		t.Errorf("missing hot-weather tip: %s", report)
	}
	if !strings.Contains(report, "No rain expected") {
		t.Errorf("missing dry-window tip: %s", report)
	}
}
