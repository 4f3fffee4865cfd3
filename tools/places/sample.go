package places

// SamplePlaces returns the built-in illustrative attraction collection, used
// when no dataset file is available.
func SamplePlaces() []Record {
	return []Record{
		{Name: "Baga Beach", City: "Goa", Category: "Beach", Rating: 4.6},
		{Name: "Fort Aguada", City: "Goa", Category: "Heritage", Rating: 4.5},
		{Name: "Anjuna Flea Market", City: "Goa", Category: "Shopping", Rating: 4.2},
		{Name: "Dudhsagar Falls", City: "Goa", Category: "Adventure", Rating: 4.7},
		{Name: "Chapora Fort", City: "Goa", Category: "Scenic", Rating: 4.3},
		{Name: "Lalbagh Botanical Garden", City: "Bangalore", Category: "Scenic", Rating: 4.5},
		{Name: "Bangalore Palace", City: "Bangalore", Category: "Heritage", Rating: 4.4},
		{Name: "Gateway of India", City: "Mumbai", Category: "Heritage", Rating: 4.6},
		{Name: "Juhu Beach", City: "Mumbai", Category: "Beach", Rating: 4.2},
		{Name: "Hawa Mahal", City: "Jaipur", Category: "Heritage", Rating: 4.6},
		{Name: "Amber Fort", City: "Jaipur", Category: "Heritage", Rating: 4.7},
		{Name: "Red Fort", City: "Delhi", Category: "Heritage", Rating: 4.5},
		{Name: "Chandni Chowk", City: "Delhi", Category: "Shopping", Rating: 4.3},
		{Name: "India Gate", City: "Delhi", Category: "Scenic", Rating: 4.6},
	}
}
