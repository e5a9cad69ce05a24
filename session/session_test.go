package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"voyago/models"
)

// useFakeKV swaps the redis-backed helpers for an in-memory map for the
// duration of one test.
func useFakeKV(t *testing.T) map[string]string {
	t.Helper()
	data := map[string]string{}
	origSet, origGet, origDel := kvSet, kvGet, kvDel
	kvSet = func(key, value string, _ time.Duration) error {
		data[key] = value
		return nil
	}
	kvGet = func(key string) (string, error) {
		value, ok := data[key]
		if !ok {
			return "", redis.Nil
		}
		return value, nil
	}
	kvDel = func(key string) error {
		delete(data, key)
		return nil
	}
	t.Cleanup(func() { kvSet, kvGet, kvDel = origSet, origGet, origDel })
	return data
}

func TestStoreLoadRoundTrip(t *testing.T) {
	useFakeKV(t)

	q := models.SearchQuery{
		Type:        "flight",
		Origin:      "New York",
		Destination: "Rome, Italy",
		DepartDate:  "2026-09-01",
		ReturnDate:  "2026-09-04",
		Passengers:  2,
	}
	if err := store(sessionKey("s1", keySearchData), q); err != nil {
		t.Fatalf("store returned error: %v", err)
	}

	var got models.SearchQuery
	found, err := load(sessionKey("s1", keySearchData), &got)
	if err != nil {
		t.Fatalf("load returned error: %v", err)
	}
	if !found {
		t.Fatal("stored payload reported as absent")
	}
	if !reflect.DeepEqual(got, q) {
		t.Errorf("round trip changed the payload: got %+v, want %+v", got, q)
	}
}

func TestLoadSelectionsRoundTrip(t *testing.T) {
	useFakeKV(t)

	sel := models.Selection{
		Flight:     &models.FlightOption{ID: "FL001", Airline: "Delta Airlines", FlightNumber: "DL 1234", Price: 245},
		Hotel:      &models.HotelOption{ID: "HT001", Name: "Grand Plaza Hotel", Stars: 4, PricePerNight: 189},
		SearchData: models.SearchQuery{Type: "flight", Destination: "Rome, Italy"},
	}
	if err := store(sessionKey("s1", keySelections), sel); err != nil {
		t.Fatalf("store returned error: %v", err)
	}

	got, found, err := LoadSelections("s1")
	if err != nil {
		t.Fatalf("LoadSelections returned error: %v", err)
	}
	if !found {
		t.Fatal("stored selection reported as absent")
	}
	if !reflect.DeepEqual(got, sel) {
		t.Errorf("round trip changed the selection: got %+v, want %+v", got, sel)
	}
}

func TestLoadAbsentKeyIsNotFoundNotError(t *testing.T) {
	useFakeKV(t)

	var q models.SearchQuery
	found, err := load(sessionKey("s1", keySearchData), &q)
	if err != nil {
		t.Fatalf("absent key must not be an error, got %v", err)
	}
	if found {
		t.Error("absent key reported as found")
	}
}

func TestLoadPropagatesStoreFailure(t *testing.T) {
	useFakeKV(t)
	storeErr := errors.New("connection refused")
	kvGet = func(string) (string, error) { return "", storeErr }

	var q models.SearchQuery
	found, err := load(sessionKey("s1", keySearchData), &q)
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected the store error, got %v", err)
	}
	if found {
		t.Error("failed read reported as found")
	}
}

func TestClearSessionDropsAllFields(t *testing.T) {
	data := useFakeKV(t)

	if err := store(sessionKey("s1", keySearchData), models.SearchQuery{Type: "flight"}); err != nil {
		t.Fatalf("store returned error: %v", err)
	}
	if err := store(sessionKey("s1", keySelections), models.Selection{}); err != nil {
		t.Fatalf("store returned error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/session", nil)
	req.Header.Set("X-Session-ID", "s1")
	rec := httptest.NewRecorder()

	ClearSession(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(data) != 0 {
		t.Errorf("expected all session keys dropped, still have %v", data)
	}
}
