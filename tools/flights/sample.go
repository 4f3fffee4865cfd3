package flights

// SampleFlights returns the built-in illustrative flight collection, used
// when no dataset file is available.
func SampleFlights() []Record {
	return []Record{
		{
			FlightID:        "6E-123",
			Airline:         "IndiGo",
			Source:          "Delhi",
			Destination:     "Goa",
			DepartureTime:   "14:00",
			ArrivalTime:     "16:30",
			DurationMinutes: 150,
			Price:           4800,
			AvailableSeats:  45,
		},
		{
			FlightID:        "SG-456",
			Airline:         "SpiceJet",
			Source:          "Delhi",
			Destination:     "Goa",
			DepartureTime:   "09:00",
			ArrivalTime:     "11:45",
			DurationMinutes: 165,
			Price:           5200,
			AvailableSeats:  30,
		},
		{
			FlightID:        "AI-789",
			Airline:         "Air India",
			Source:          "Mumbai",
			Destination:     "Bangalore",
			DepartureTime:   "10:30",
			ArrivalTime:     "12:00",
			DurationMinutes: 90,
			Price:           3500,
			AvailableSeats:  60,
		},
		{
			FlightID:        "UK-321",
			Airline:         "Vistara",
			Source:          "Bangalore",
			Destination:     "Delhi",
			DepartureTime:   "18:00",
			ArrivalTime:     "21:00",
			DurationMinutes: 180,
			Price:           6500,
			AvailableSeats:  25,
		},
		{
			FlightID:        "6E-234",
			Airline:         "IndiGo",
			Source:          "Delhi",
			Destination:     "Mumbai",
			DepartureTime:   "06:00",
			ArrivalTime:     "08:15",
			DurationMinutes: 135,
			Price:           4200,
			AvailableSeats:  50,
		},
	}
}
