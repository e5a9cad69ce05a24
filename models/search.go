package models

// SearchQuery is the search form payload passed between the search, results
// and itinerary steps. Flight searches fill origin/destination and the
// depart/return dates; hotel searches fill location and check-in/check-out.
type SearchQuery struct {
	Type        string `json:"type" bson:"type"` // "flight" or "hotel"
	Origin      string `json:"origin,omitempty" bson:"origin,omitempty"`
	Destination string `json:"destination,omitempty" bson:"destination,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	DepartDate  string `json:"departDate,omitempty" bson:"departDate,omitempty"`
	ReturnDate  string `json:"returnDate,omitempty" bson:"returnDate,omitempty"`
	CheckIn     string `json:"checkIn,omitempty" bson:"checkIn,omitempty"`
	CheckOut    string `json:"checkOut,omitempty" bson:"checkOut,omitempty"`
	Passengers  int    `json:"passengers,omitempty" bson:"passengers,omitempty"`
	Guests      int    `json:"guests,omitempty" bson:"guests,omitempty"`
	Rooms       int    `json:"rooms,omitempty" bson:"rooms,omitempty"`
	Airline     string `json:"airline,omitempty" bson:"airline,omitempty"`
	Name        string `json:"name,omitempty" bson:"name,omitempty"`
	SortBy      string `json:"sortBy,omitempty" bson:"sortBy,omitempty"`
}

// TripDestination resolves the display destination of a query, flight or hotel.
func (q SearchQuery) TripDestination() string {
	if q.Destination != "" {
		return q.Destination
	}
	if q.Location != "" {
		return q.Location
	}
	return "Destination"
}

// TripStart returns the start of the trip bounds.
func (q SearchQuery) TripStart() string {
	if q.DepartDate != "" {
		return q.DepartDate
	}
	return q.CheckIn
}

// TripEnd returns the end of the trip bounds.
func (q SearchQuery) TripEnd() string {
	if q.ReturnDate != "" {
		return q.ReturnDate
	}
	return q.CheckOut
}

type FlightOption struct {
	ID           string  `json:"id" bson:"id"`
	Airline      string  `json:"airline" bson:"airline"`
	FlightNumber string  `json:"flightNumber" bson:"flightNumber"`
	Departure    string  `json:"departure" bson:"departure"`
	Arrival      string  `json:"arrival" bson:"arrival"`
	Duration     string  `json:"duration" bson:"duration"`
	Stops        int     `json:"stops" bson:"stops"`
	Price        float64 `json:"price" bson:"price"`
	Aircraft     string  `json:"aircraft,omitempty" bson:"aircraft,omitempty"`
}

type HotelOption struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Rating        float64  `json:"rating" bson:"rating"`
	Stars         int      `json:"stars" bson:"stars"`
	Distance      string   `json:"distance" bson:"distance"`
	PricePerNight float64  `json:"pricePerNight" bson:"pricePerNight"`
	Amenities     []string `json:"amenities,omitempty" bson:"amenities,omitempty"`
}

// Selection is the user's chosen flight and hotel plus the original search
// payload. It is the sole input to itinerary construction.
type Selection struct {
	Flight     *FlightOption `json:"flight" bson:"flight"`
	Hotel      *HotelOption  `json:"hotel" bson:"hotel"`
	SearchData SearchQuery   `json:"searchData" bson:"searchData"`
}
