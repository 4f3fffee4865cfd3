package flights

import "fmt"

func ExampleOutput_Report() {
	out := &Output{
		Source:      "Delhi",
		Destination: "Goa",
		Results: []Record{{
			FlightID:        "6E-123",
			Airline:         "IndiGo",
			Source:          "Delhi",
			Destination:     "Goa",
			DepartureTime:   "14:00",
			ArrivalTime:     "16:30",
			DurationMinutes: 150,
			Price:           4800,
			AvailableSeats:  45,
		}},
	}
	fmt.Println(out.Report())
	// Output:
	// Found 1 flight(s):
	//
	// 1. IndiGo (6E-123)
	//    Route: Delhi -> Goa
	//    Price: ₹4,800
	//    Departure: 14:00 | Arrival: 16:30
	//    Duration: 2h 30m
	//    Available Seats: 45
	//
	// Recommendation: IndiGo offers the best price for this route.
}
