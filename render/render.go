package render

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tripforge/tripforge/trip"
)

const (
	heavyRule = "======================================================================"
	lightRule = "----------------------------------------------------------------------"
)

var printer = message.NewPrinter(language.English)

// FormatCurrency renders an amount for a currency code. INR renders with a ₹
// prefix, thousands separators and no decimal places; unrecognized codes fall
// back to a generic "amount CODE" format.
func FormatCurrency(amount float64, currency string) string {
	switch currency {
	case "INR":
		return printer.Sprintf("₹%.0f", amount)
	case "USD":
		return printer.Sprintf("$%.2f", amount)
	case "EUR":
		return printer.Sprintf("€%.2f", amount)
	default:
		return printer.Sprintf("%.2f %s", amount, currency)
	}
}

// FormatINR renders an integer rupee amount.
func FormatINR(amount int) string {
	return FormatCurrency(float64(amount), "INR")
}

// FormatDateRange renders an inclusive calendar date range.
func FormatDateRange(start, end time.Time) string {
	return fmt.Sprintf("%s - %s", start.Format("Jan 02"), end.Format("Jan 02, 2006"))
}

// Report converts a structured itinerary into the canonical multi-section
// text report.
func Report(it *trip.Itinerary) string {
	var b strings.Builder
	b.WriteString(heavyRule + "\n")
	fmt.Fprintf(&b, "YOUR %d-DAY TRIP TO %s\n", it.Days, strings.ToUpper(it.Destination))
	b.WriteString(FormatDateRange(it.StartDate, it.EndDate) + "\n")
	b.WriteString(heavyRule + "\n\n")

	b.WriteString("FLIGHT SELECTED\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "Airline: %s (%s)\n", it.Flight.Airline, it.Flight.FlightID)
	fmt.Fprintf(&b, "Price: %s\n", FormatINR(it.Flight.Price))
	fmt.Fprintf(&b, "Departure: %s | Arrival: %s\n", it.Flight.DepartureTime, it.Flight.ArrivalTime)
	fmt.Fprintf(&b, "Duration: %s\n\n", it.Flight.Duration())

	b.WriteString("HOTEL BOOKED\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "Hotel: %s\n", it.Hotel.Name)
	fmt.Fprintf(&b, "Rating: %.1f/5\n", it.Hotel.Rating)
	fmt.Fprintf(&b, "Price: %s/night\n", FormatINR(it.Hotel.PricePerNight))
	fmt.Fprintf(&b, "Amenities: %s\n\n", strings.Join(it.Hotel.Amenities, ", "))

	b.WriteString("WEATHER FORECAST\n")
	b.WriteString(lightRule + "\n")
	for i, d := range it.Weather {
		fmt.Fprintf(&b, "Day %d (%s): %s - %.1f°C\n", i+1, d.Date, d.Condition, d.High)
	}
	b.WriteString("\n")

	b.WriteString("DAY-WISE ITINERARY\n")
	b.WriteString(lightRule + "\n")
	for _, day := range it.DayPlans {
		fmt.Fprintf(&b, "\nDay %d: %s\n", day.Day, day.Title)
		for _, act := range day.Activities {
			fmt.Fprintf(&b, "  - %s (%s, %.1f/5)\n", act.Place.Name, act.Place.Category, act.Place.Rating)
			fmt.Fprintf(&b, "    %s\n", act.Description)
		}
	}
	b.WriteString("\n")

	b.WriteString("BUDGET BREAKDOWN\n")
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "Flight:              %s\n", FormatINR(it.Budget.Flight))
	fmt.Fprintf(&b, "Hotel:               %s\n", FormatINR(it.Budget.Hotel))
	fmt.Fprintf(&b, "Food & Travel:       %s\n", FormatINR(it.Budget.FoodAndTravel))
	fmt.Fprintf(&b, "Activities:          %s\n", FormatINR(it.Budget.Activities))
	b.WriteString(lightRule + "\n")
	fmt.Fprintf(&b, "TOTAL COST:          %s\n", FormatINR(it.Budget.Total()))
	b.WriteString(heavyRule + "\n")
	return b.String()
}
