package search

import (
	"context"
	"testing"

	"voyago/models"
)

var (
	_ FlightSearchProvider = (*MockFlightProvider)(nil)
	_ HotelSearchProvider  = (*MockHotelProvider)(nil)
)

func TestSearchFlightsDefaultSortByPrice(t *testing.T) {
	p := NewMockFlightProvider()
	flights, err := p.SearchFlights(context.Background(), models.SearchQuery{Origin: "NYC", Destination: "Rome"})
	if err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}
	if len(flights) == 0 {
		t.Fatal("expected results for any route")
	}
	for i := 1; i < len(flights); i++ {
		if flights[i-1].Price > flights[i].Price {
			t.Errorf("flights not sorted by price: %v before %v", flights[i-1].Price, flights[i].Price)
		}
	}
	if flights[0].ID != "FL004" {
		t.Errorf("cheapest flight should come first, got %s", flights[0].ID)
	}
}

func TestSearchFlightsSortByDuration(t *testing.T) {
	p := NewMockFlightProvider()
	flights, err := p.SearchFlights(context.Background(), models.SearchQuery{SortBy: "duration"})
	if err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}
	for i := 1; i < len(flights); i++ {
		if flights[i-1].Duration > flights[i].Duration {
			t.Errorf("flights not sorted by duration: %q before %q", flights[i-1].Duration, flights[i].Duration)
		}
	}
}

func TestSearchFlightsAirlineFilter(t *testing.T) {
	p := NewMockFlightProvider()
	flights, err := p.SearchFlights(context.Background(), models.SearchQuery{Airline: "delta"})
	if err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}
	if len(flights) != 1 || flights[0].Airline != "Delta Airlines" {
		t.Errorf("expected only the Delta flight, got %+v", flights)
	}
}

func TestSearchFlightsCapsResults(t *testing.T) {
	catalog := make([]models.FlightOption, 0, 8)
	for i := 0; i < 8; i++ {
		catalog = append(catalog, models.FlightOption{ID: string(rune('A' + i)), Price: float64(100 + i)})
	}
	p := &MockFlightProvider{Flights: catalog}

	flights, err := p.SearchFlights(context.Background(), models.SearchQuery{})
	if err != nil {
		t.Fatalf("SearchFlights returned error: %v", err)
	}
	if len(flights) != maxResults {
		t.Errorf("expected results capped at %d, got %d", maxResults, len(flights))
	}
	if flights[0].Price != 100 {
		t.Errorf("cap should keep the cheapest entries, got first price %v", flights[0].Price)
	}
}

func TestSearchHotelsSortByRating(t *testing.T) {
	p := NewMockHotelProvider()
	hotels, err := p.SearchHotels(context.Background(), models.SearchQuery{SortBy: "rating"})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	if len(hotels) == 0 {
		t.Fatal("expected hotel results")
	}
	if hotels[0].ID != "HT003" {
		t.Errorf("highest-rated hotel should come first, got %s", hotels[0].ID)
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i-1].Rating < hotels[i].Rating {
			t.Errorf("hotels not sorted by rating descending")
		}
	}
}

func TestSearchHotelsDefaultSortByPrice(t *testing.T) {
	p := NewMockHotelProvider()
	hotels, err := p.SearchHotels(context.Background(), models.SearchQuery{Location: "Anywhere"})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i-1].PricePerNight > hotels[i].PricePerNight {
			t.Errorf("hotels not sorted by nightly price ascending")
		}
	}
}

func TestSearchHotelsNameFilter(t *testing.T) {
	p := NewMockHotelProvider()
	hotels, err := p.SearchHotels(context.Background(), models.SearchQuery{Name: "plaza"})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	if len(hotels) != 1 || hotels[0].Name != "Grand Plaza Hotel" {
		t.Errorf("expected only the Grand Plaza, got %+v", hotels)
	}
}

func TestSearchEmptyFilterMatch(t *testing.T) {
	p := NewMockHotelProvider()
	hotels, err := p.SearchHotels(context.Background(), models.SearchQuery{Name: "no such hotel"})
	if err != nil {
		t.Fatalf("SearchHotels returned error: %v", err)
	}
	if hotels == nil {
		t.Error("no matches should yield an empty slice, not nil")
	}
	if len(hotels) != 0 {
		t.Errorf("expected no matches, got %d", len(hotels))
	}
}
