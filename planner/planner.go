// Package planner turns a user's flight/hotel selection into a structured
// day-by-day itinerary.
package planner

import (
	"errors"
	"fmt"
	"time"

	"voyago/models"
)

var (
	ErrMissingFlight = errors.New("planner: selection has no flight")
	ErrMissingHotel  = errors.New("planner: selection has no hotel")
)

// Nights used in the cost estimate. The template always emits three days and
// charges two hotel nights no matter how long the trip actually is.
const costNights = 2

// Build constructs an Itinerary from a selection. It is pure over its inputs
// and the supplied clock: for a frozen clock the output is fully
// deterministic, including the timestamp-derived id.
func Build(sel models.Selection, now func() time.Time) (models.Itinerary, error) {
	if sel.Flight == nil {
		return models.Itinerary{}, ErrMissingFlight
	}
	if sel.Hotel == nil {
		return models.Itinerary{}, ErrMissingHotel
	}
	if now == nil {
		now = time.Now
	}

	buildTime := now()
	flight := *sel.Flight
	hotel := *sel.Hotel

	it := models.Itinerary{
		ItineraryID: fmt.Sprintf("ITN-%d", buildTime.UnixMilli()),
		Destination: sel.SearchData.TripDestination(),
		StartDate:   sel.SearchData.TripStart(),
		EndDate:     sel.SearchData.TripEnd(),
		Flight:      flight,
		Hotel:       hotel,
		DailyPlans:  dailyPlans(flight, hotel),
		TotalCost:   flight.Price + hotel.PricePerNight*costNights,
		CreatedAt:   buildTime.UTC().Format(time.RFC3339),
	}
	return it, nil
}

func dailyPlans(flight models.FlightOption, hotel models.HotelOption) []models.DayPlan {
	return []models.DayPlan{
		{
			Day:   1,
			Title: "Arrival & City Exploration",
			Activities: []models.Activity{
				{
					Time:        "09:00 AM",
					Activity:    "Arrival & Hotel Check-in",
					Description: fmt.Sprintf("Arrive at %s, check-in and freshen up", hotel.Name),
					Type:        models.ActivityAccommodation,
				},
				{
					Time:        "11:00 AM",
					Activity:    "Local Breakfast",
					Description: "Try authentic local cuisine at a nearby café",
					Type:        models.ActivityDining,
				},
				{
					Time:        "01:00 PM",
					Activity:    "City Center Walking Tour",
					Description: "Explore the historic downtown area and main attractions",
					Type:        models.ActivitySightseeing,
				},
				{
					Time:        "06:00 PM",
					Activity:    "Welcome Dinner",
					Description: "Dinner at a recommended local restaurant",
					Type:        models.ActivityDining,
				},
			},
		},
		{
			Day:   2,
			Title: "Cultural Immersion",
			Activities: []models.Activity{
				{
					Time:        "08:00 AM",
					Activity:    "Breakfast at Hotel",
					Description: "Enjoy breakfast included in your stay",
					Type:        models.ActivityDining,
				},
				{
					Time:        "09:30 AM",
					Activity:    "Museum Visit",
					Description: "Visit the local art and history museum",
					Type:        models.ActivitySightseeing,
				},
				{
					Time:        "12:30 PM",
					Activity:    "Lunch Break",
					Description: "Lunch at a popular local spot",
					Type:        models.ActivityDining,
				},
				{
					Time:        "02:00 PM",
					Activity:    "Shopping District",
					Description: "Browse local markets and shops for souvenirs",
					Type:        models.ActivityGeneric,
				},
				{
					Time:        "07:00 PM",
					Activity:    "Evening Entertainment",
					Description: "Local theater show or live music venue",
					Type:        models.ActivityGeneric,
				},
			},
		},
		{
			Day:   3,
			Title: "Departure Day",
			Activities: []models.Activity{
				{
					Time:        "08:00 AM",
					Activity:    "Breakfast & Check-out",
					Description: "Final breakfast and hotel check-out",
					Type:        models.ActivityAccommodation,
				},
				{
					Time:        "10:00 AM",
					Activity:    "Last-minute Sightseeing",
					Description: "Visit any remaining attractions on your list",
					Type:        models.ActivitySightseeing,
				},
				{
					Time:        "12:00 PM",
					Activity:    "Lunch",
					Description: "Final meal before departure",
					Type:        models.ActivityDining,
				},
				{
					Time:        "02:00 PM",
					Activity:    "Airport Transfer",
					Description: fmt.Sprintf("Depart for airport for %s flight", flight.FlightNumber),
					Type:        models.ActivityTransport,
				},
			},
		},
	}
}
