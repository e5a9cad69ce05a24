package experiences

import (
	"reflect"
	"testing"

	"voyago/models"
)

func TestSanitizeDropsBlankEntries(t *testing.T) {
	exp := sanitize(models.Experience{
		Highlights: []string{"Beach", "", "Food"},
		Tips:       []string{"  ", "Go early"},
		Photos:     []string{"/static/uploads/experiences/a.jpg", "\t"},
		Rating:     4,
	})

	if !reflect.DeepEqual(exp.Highlights, []string{"Beach", "Food"}) {
		t.Errorf("highlights: got %v", exp.Highlights)
	}
	if !reflect.DeepEqual(exp.Tips, []string{"Go early"}) {
		t.Errorf("tips: got %v", exp.Tips)
	}
	if !reflect.DeepEqual(exp.Photos, []string{"/static/uploads/experiences/a.jpg"}) {
		t.Errorf("photos: got %v", exp.Photos)
	}
	if exp.Rating != 4 {
		t.Errorf("valid rating should be untouched, got %d", exp.Rating)
	}
}

func TestSanitizeClampsRating(t *testing.T) {
	if got := sanitize(models.Experience{Rating: 0}).Rating; got != 1 {
		t.Errorf("rating 0 should clamp to 1, got %d", got)
	}
	if got := sanitize(models.Experience{Rating: -3}).Rating; got != 1 {
		t.Errorf("rating -3 should clamp to 1, got %d", got)
	}
	if got := sanitize(models.Experience{Rating: 9}).Rating; got != 5 {
		t.Errorf("rating 9 should clamp to 5, got %d", got)
	}
}

func TestThumbName(t *testing.T) {
	if got := thumbName("abc123.png"); got != "abc123.jpg" {
		t.Errorf("thumbName(abc123.png) = %q", got)
	}
	if got := thumbName("photo.jpeg"); got != "photo.jpg" {
		t.Errorf("thumbName(photo.jpeg) = %q", got)
	}
}
