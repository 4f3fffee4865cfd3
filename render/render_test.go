package render

import (
	"strings"
	"testing"
	"time"

	"github.com/tripforge/tripforge/tools/budget"
	"github.com/tripforge/tripforge/tools/flights"
	"github.com/tripforge/tripforge/tools/hotels"
	"github.com/tripforge/tripforge/tools/places"
	"github.com/tripforge/tripforge/tools/weather"
	"github.com/tripforge/tripforge/trip"
)

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount   float64
		currency string
		want     string
	}{
		{20800, "INR", "₹20,800"},
		{4800, "INR", "₹4,800"},
		{123.456, "USD", "$123.46"},
		{99.9, "EUR", "€99.90"},
		{10, "JPY", "10.00 JPY"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.amount, c.currency); got != c.want {
			t.Errorf("FormatCurrency(%v, %s) = %q, want %q", c.amount, c.currency, got, c.want)
		}
	}
}

func TestFormatDateRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	if got := FormatDateRange(start, end); got != "Mar 01 - Mar 04, 2024" {
		t.Errorf("FormatDateRange = %q", got)
	}
}

func sampleItinerary() *trip.Itinerary {
	return &trip.Itinerary{
		Source:      "Delhi",
		Destination: "Goa",
		StartDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Days:        4,
		Flight: flights.Record{
			FlightID: "6E-123", Airline: "IndiGo",
			DepartureTime: "14:00", ArrivalTime: "16:30",
			DurationMinutes: 150, Price: 4800,
		},
		Hotel: hotels.Record{
			Name: "Sea View Resort", Rating: 4.5, PricePerNight: 3200,
			Amenities: []string{"Beach access", "Pool", "WiFi"},
		},
		Weather: []weather.Day{
			{Date: "2024-03-01", Condition: weather.Clear, High: 32, Low: 24},
			{Date: "2024-03-02", Condition: weather.Cloudy, High: 31, Low: 24},
		},
		DayPlans: []trip.DayPlan{
			{Day: 1, Title: trip.DayThemes[0], Activities: []trip.Activity{
				{Place: places.Record{Name: "Baga Beach", Category: "Beach", Rating: 4.6}, Description: "Visit Baga Beach."},
			}},
		},
		Budget: budget.Breakdown{Flight: 4800, Hotel: 12800, FoodAndTravel: 3200},
	}
}

func TestReportSectionOrder(t *testing.T) {
	report := Report(sampleItinerary())
	sections := []string{
		"YOUR 4-DAY TRIP TO GOA",
		"FLIGHT SELECTED",
		"HOTEL BOOKED",
		"WEATHER FORECAST",
		"DAY-WISE ITINERARY",
		"BUDGET BREAKDOWN",
		"TOTAL COST:",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(report, s)
		if idx < 0 {
			t.Fatalf("section %q missing:\n%s", s, report)
		}
		if idx < last {
			t.Errorf("section %q out of order", s)
		}
		last = idx
	}
}

func TestReportAmounts(t *testing.T) {
	report := Report(sampleItinerary())
	for _, want := range []string{"₹4,800", "₹12,800", "₹3,200", "₹20,800"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %s:\n%s", want, report)
		}
	}
	if !strings.Contains(report, "TOTAL COST:          ₹20,800") {
		t.Errorf("total line malformed:\n%s", report)
	}
}

func TestReportFlightAndHotelDetails(t *testing.T) {
	report := Report(sampleItinerary())
	for _, want := range []string{
		"Airline: IndiGo (6E-123)",
		"Duration: 2h 30m",
		"Hotel: Sea View Resort",
		"Rating: 4.5/5",
		"Amenities: Beach access, Pool, WiFi",
		"Day 1 (2024-03-01): clear - 32.0°C",
		"Day 1: Beach relaxation & water sports",
		"Baga Beach (Beach, 4.6/5)",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
