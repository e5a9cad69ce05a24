package destinations

import "testing"

func TestFilterEmptyQueryReturnsAll(t *testing.T) {
	got := Filter(popularDestinations, "")
	if len(got) != len(popularDestinations) {
		t.Errorf("empty query should return the full catalog, got %d of %d", len(got), len(popularDestinations))
	}
}

func TestFilterMatchesName(t *testing.T) {
	got := Filter(popularDestinations, "tokyo")
	if len(got) != 1 || got[0].Name != "Tokyo, Japan" {
		t.Errorf("expected Tokyo only, got %+v", got)
	}
}

func TestFilterMatchesCategory(t *testing.T) {
	got := Filter(popularDestinations, "european")
	if len(got) < 3 {
		t.Errorf("expected at least the three European entries, got %d", len(got))
	}
	for _, d := range got {
		if d.Category != "European" {
			t.Errorf("unexpected category %q for %q", d.Category, d.Name)
		}
	}
}

func TestFilterMatchesDescription(t *testing.T) {
	got := Filter(popularDestinations, "northern lights")
	if len(got) != 1 || got[0].Name != "Iceland" {
		t.Errorf("expected Iceland only, got %+v", got)
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(popularDestinations, "atlantis")
	if got == nil {
		t.Error("no matches should yield an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
