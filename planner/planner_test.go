package planner

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"voyago/models"
)

func testSelection() models.Selection {
	return models.Selection{
		Flight: &models.FlightOption{
			Airline:      "Delta",
			FlightNumber: "DL100",
			Departure:    "08:00 AM",
			Arrival:      "10:30 AM",
			Duration:     "2h 30m",
			Price:        200,
		},
		Hotel: &models.HotelOption{
			Name:          "Hotel X",
			Rating:        4.5,
			Stars:         4,
			Distance:      "1 mi",
			PricePerNight: 100,
		},
		SearchData: models.SearchQuery{
			Type:        "flight",
			Origin:      "New York",
			Destination: "Rome, Italy",
			DepartDate:  "2026-09-01",
			ReturnDate:  "2026-09-04",
		},
	}
}

func frozenClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBuildTemplateShape(t *testing.T) {
	it, err := Build(testSelection(), frozenClock(time.Unix(1700000000, 0)))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(it.DailyPlans) != 3 {
		t.Fatalf("expected 3 day plans, got %d", len(it.DailyPlans))
	}

	wantCounts := []int{4, 5, 4}
	total := 0
	validTypes := map[string]bool{
		models.ActivityAccommodation: true,
		models.ActivityDining:        true,
		models.ActivitySightseeing:   true,
		models.ActivityGeneric:       true,
		models.ActivityTransport:     true,
	}

	for i, day := range it.DailyPlans {
		if day.Day != i+1 {
			t.Errorf("day %d has index %d", i+1, day.Day)
		}
		if len(day.Activities) != wantCounts[i] {
			t.Errorf("day %d: expected %d activities, got %d", day.Day, wantCounts[i], len(day.Activities))
		}
		total += len(day.Activities)
		for j, act := range day.Activities {
			if act.Time == "" || act.Activity == "" || act.Description == "" {
				t.Errorf("day %d activity %d has empty fields: %+v", day.Day, j, act)
			}
			if !validTypes[act.Type] {
				t.Errorf("day %d activity %d has unknown type %q", day.Day, j, act.Type)
			}
		}
	}
	if total != 13 {
		t.Errorf("expected 13 activities in total, got %d", total)
	}
}

func TestBuildEndToEndScenario(t *testing.T) {
	it, err := Build(testSelection(), frozenClock(time.Unix(1700000000, 0)))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if it.TotalCost != 400 {
		t.Errorf("expected total cost 400, got %v", it.TotalCost)
	}
	if it.Destination != "Rome, Italy" {
		t.Errorf("expected destination %q, got %q", "Rome, Italy", it.Destination)
	}
	if it.StartDate != "2026-09-01" || it.EndDate != "2026-09-04" {
		t.Errorf("trip bounds not copied: %q - %q", it.StartDate, it.EndDate)
	}

	checkin := it.DailyPlans[0].Activities[0]
	if !strings.Contains(checkin.Description, "Hotel X") {
		t.Errorf("day 1 check-in should reference the hotel, got %q", checkin.Description)
	}

	breakfast := it.DailyPlans[0].Activities[1]
	if breakfast.Description != "Try authentic local cuisine at a nearby café" {
		t.Errorf("day 1 breakfast wording changed: %q", breakfast.Description)
	}

	lastDay := it.DailyPlans[2]
	transfer := lastDay.Activities[len(lastDay.Activities)-1]
	if !strings.Contains(transfer.Description, "DL100") {
		t.Errorf("day 3 transfer should reference the flight number, got %q", transfer.Description)
	}
	if transfer.Type != models.ActivityTransport {
		t.Errorf("airport transfer should be transport, got %q", transfer.Type)
	}
}

func TestBuildTotalCostFormula(t *testing.T) {
	cases := []struct {
		flightPrice float64
		nightly     float64
		want        float64
	}{
		{0, 0, 0},
		{245, 189, 623},
		{175.50, 89.25, 354},
		{1, 0.5, 2},
	}

	for _, tc := range cases {
		sel := testSelection()
		sel.Flight.Price = tc.flightPrice
		sel.Hotel.PricePerNight = tc.nightly

		it, err := Build(sel, frozenClock(time.Unix(1700000000, 0)))
		if err != nil {
			t.Fatalf("Build returned error: %v", err)
		}
		if it.TotalCost != tc.want {
			t.Errorf("flight=%v nightly=%v: expected total %v, got %v",
				tc.flightPrice, tc.nightly, tc.want, it.TotalCost)
		}
	}
}

func TestBuildDeterministicUnderFrozenClock(t *testing.T) {
	clock := frozenClock(time.Unix(1700000000, 0))

	first, err := Build(testSelection(), clock)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	second, err := Build(testSelection(), clock)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical selection and frozen clock should yield identical itineraries")
	}
}

func TestBuildAdvancedClockChangesOnlyIDAndTimestamp(t *testing.T) {
	first, err := Build(testSelection(), frozenClock(time.Unix(1700000000, 0)))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	second, err := Build(testSelection(), frozenClock(time.Unix(1700000600, 0)))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if first.ItineraryID == second.ItineraryID {
		t.Errorf("advanced clock should change the id")
	}
	if first.CreatedAt == second.CreatedAt {
		t.Errorf("advanced clock should change createdAt")
	}

	// Everything else must match.
	second.ItineraryID = first.ItineraryID
	second.CreatedAt = first.CreatedAt
	if !reflect.DeepEqual(first, second) {
		t.Errorf("only id and createdAt may differ under an advanced clock")
	}
}

func TestBuildMissingSelections(t *testing.T) {
	sel := testSelection()
	sel.Flight = nil
	if _, err := Build(sel, nil); !errors.Is(err, ErrMissingFlight) {
		t.Errorf("expected ErrMissingFlight, got %v", err)
	}

	sel = testSelection()
	sel.Hotel = nil
	if _, err := Build(sel, nil); !errors.Is(err, ErrMissingHotel) {
		t.Errorf("expected ErrMissingHotel, got %v", err)
	}
}

func TestBuildDestinationFallbacks(t *testing.T) {
	sel := testSelection()
	sel.SearchData = models.SearchQuery{
		Type:     "hotel",
		Location: "Lisbon, Portugal",
		CheckIn:  "2026-10-10",
		CheckOut: "2026-10-12",
	}

	it, err := Build(sel, frozenClock(time.Unix(1700000000, 0)))
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if it.Destination != "Lisbon, Portugal" {
		t.Errorf("hotel searches should resolve destination from location, got %q", it.Destination)
	}
	if it.StartDate != "2026-10-10" || it.EndDate != "2026-10-12" {
		t.Errorf("hotel searches should use check-in/check-out bounds, got %q - %q", it.StartDate, it.EndDate)
	}
}
