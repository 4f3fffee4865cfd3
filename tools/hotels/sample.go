package hotels

// SeaViewResort is the fixed representative hotel used by deterministic
// itinerary synthesis.
func SeaViewResort() Record {
	return Record{
		Name:          "Sea View Resort",
		City:          "Goa",
		Rating:        4.5,
		PricePerNight: 3200,
		Amenities:     []string{"Beach access", "Pool", "WiFi"},
	}
}

// SampleHotels returns the built-in illustrative hotel collection, used when
// no dataset file is available.
func SampleHotels() []Record {
	return []Record{
		SeaViewResort(),
		{
			Name:          "Palm Grove Inn",
			City:          "Goa",
			Rating:        4.1,
			PricePerNight: 2400,
			Amenities:     []string{"WiFi", "Breakfast"},
		},
		{
			Name:          "City Central Hotel",
			City:          "Bangalore",
			Rating:        4.3,
			PricePerNight: 3800,
			Amenities:     []string{"Gym", "WiFi", "Restaurant"},
		},
		{
			Name:          "Heritage Palace",
			City:          "Jaipur",
			Rating:        4.7,
			PricePerNight: 5200,
			Amenities:     []string{"Pool", "Spa", "Restaurant"},
		},
		{
			Name:          "Gateway Suites",
			City:          "Mumbai",
			Rating:        4.0,
			PricePerNight: 4100,
			Amenities:     []string{"WiFi", "Airport shuttle"},
		},
	}
}
