package utils

import (
	"reflect"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(13)
	b := GenerateRandomString(13)
	if len(a) != 13 || len(b) != 13 {
		t.Errorf("expected length 13, got %d and %d", len(a), len(b))
	}
	if a == b {
		t.Errorf("two generated ids should differ: %q", a)
	}
}

func TestFilterEmpty(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"Beach", "", "Food"}, []string{"Beach", "Food"}},
		{[]string{"  ", "\t", "\n"}, []string{}},
		{[]string{}, []string{}},
		{nil, []string{}},
		{[]string{"a", "b"}, []string{"a", "b"}},
	}
	for _, tc := range cases {
		if got := FilterEmpty(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("FilterEmpty(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestContainsIgnoreCase(t *testing.T) {
	if !ContainsIgnoreCase("Grand Plaza Hotel", "plaza") {
		t.Error("expected case-insensitive match")
	}
	if ContainsIgnoreCase("Grand Plaza Hotel", "ritz") {
		t.Error("unexpected match")
	}
	if !ContainsIgnoreCase("anything", "") {
		t.Error("empty needle should match")
	}
}
