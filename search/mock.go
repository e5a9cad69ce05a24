package search

import (
	"context"
	"sort"

	"voyago/models"
	"voyago/utils"
)

// MockFlightProvider serves a fixed flight catalog filtered and sorted in
// memory.
type MockFlightProvider struct {
	Flights []models.FlightOption
}

func NewMockFlightProvider() *MockFlightProvider {
	return &MockFlightProvider{Flights: mockFlights}
}

// SearchFlights returns the catalog sorted and capped. The mock inventory is
// route-agnostic: every flight is offered for every origin/destination pair.
// The optional Airline filter is a case-insensitive substring match.
func (p *MockFlightProvider) SearchFlights(_ context.Context, q models.SearchQuery) ([]models.FlightOption, error) {
	results := []models.FlightOption{}
	for _, f := range p.Flights {
		if q.Airline != "" && !utils.ContainsIgnoreCase(f.Airline, q.Airline) {
			continue
		}
		results = append(results, f)
	}
	sortFlights(results, q.SortBy)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

func sortFlights(flights []models.FlightOption, sortBy string) {
	switch sortBy {
	case "duration":
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Duration < flights[j].Duration
		})
	case "departure":
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Departure < flights[j].Departure
		})
	default: // price
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}
}

// MockHotelProvider serves a fixed hotel catalog filtered and sorted in
// memory.
type MockHotelProvider struct {
	Hotels []models.HotelOption
}

func NewMockHotelProvider() *MockHotelProvider {
	return &MockHotelProvider{Hotels: mockHotels}
}

// SearchHotels returns the catalog sorted and capped. Hotels are offered for
// every location; the optional Name filter is a case-insensitive substring
// match.
func (p *MockHotelProvider) SearchHotels(_ context.Context, q models.SearchQuery) ([]models.HotelOption, error) {
	results := []models.HotelOption{}
	for _, h := range p.Hotels {
		if q.Name != "" && !utils.ContainsIgnoreCase(h.Name, q.Name) {
			continue
		}
		results = append(results, h)
	}
	sortHotels(results, q.SortBy)
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

func sortHotels(hotels []models.HotelOption, sortBy string) {
	switch sortBy {
	case "rating":
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Rating > hotels[j].Rating
		})
	case "stars":
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].Stars > hotels[j].Stars
		})
	default: // price
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].PricePerNight < hotels[j].PricePerNight
		})
	}
}

var mockFlights = []models.FlightOption{
	{ID: "FL001", Airline: "Delta Airlines", FlightNumber: "DL 1234", Departure: "08:00 AM", Arrival: "10:30 AM", Duration: "2h 30m", Stops: 0, Price: 245, Aircraft: "Boeing 737"},
	{ID: "FL002", Airline: "American Airlines", FlightNumber: "AA 5678", Departure: "10:15 AM", Arrival: "01:00 PM", Duration: "2h 45m", Stops: 0, Price: 198, Aircraft: "Airbus A320"},
	{ID: "FL003", Airline: "JetBlue", FlightNumber: "B6 9012", Departure: "02:30 PM", Arrival: "05:15 PM", Duration: "2h 45m", Stops: 0, Price: 215, Aircraft: "Airbus A321"},
	{ID: "FL004", Airline: "United Airlines", FlightNumber: "UA 3456", Departure: "06:00 PM", Arrival: "10:45 PM", Duration: "4h 45m", Stops: 1, Price: 175, Aircraft: "Boeing 737"},
	{ID: "FL005", Airline: "Southwest", FlightNumber: "WN 7890", Departure: "07:30 AM", Arrival: "10:00 AM", Duration: "2h 30m", Stops: 0, Price: 230, Aircraft: "Boeing 737 MAX"},
}

var mockHotels = []models.HotelOption{
	{ID: "HT001", Name: "Grand Plaza Hotel", Rating: 4.5, Stars: 4, Distance: "0.5 miles from center", PricePerNight: 189, Amenities: []string{"Free WiFi", "Pool", "Gym", "Breakfast"}},
	{ID: "HT002", Name: "City Center Inn", Rating: 4.2, Stars: 3, Distance: "0.8 miles from center", PricePerNight: 125, Amenities: []string{"Free WiFi", "Parking", "Breakfast"}},
	{ID: "HT003", Name: "Luxury Suites Downtown", Rating: 4.8, Stars: 5, Distance: "0.3 miles from center", PricePerNight: 299, Amenities: []string{"Free WiFi", "Pool", "Spa", "Gym", "Restaurant", "Bar"}},
	{ID: "HT004", Name: "Budget Stay Express", Rating: 3.9, Stars: 2, Distance: "2.1 miles from center", PricePerNight: 89, Amenities: []string{"Free WiFi", "Parking"}},
	{ID: "HT005", Name: "Boutique Hotel Central", Rating: 4.6, Stars: 4, Distance: "0.6 miles from center", PricePerNight: 210, Amenities: []string{"Free WiFi", "Gym", "Restaurant", "Room Service"}},
}
