package format

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
)

func TestFormatCurrency(t *testing.T) {
	cases := map[float64]string{
		0:       "$0.00",
		12:      "$12.00",
		1234.56: "$1,234.56",
		1000000: "$1,000,000.00",
		-12:     "-$12.00",
		-4321.1: "-$4,321.10",
	}
	for input, want := range cases {
		if got := FormatCurrency(input); got != want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", input, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	date := time.Date(2024, time.March, 7, 15, 0, 0, 0, time.UTC)
	if got := FormatDate(date); got != "March 7, 2024" {
		t.Fatalf("FormatDate = %q", got)
	}
}

func TestCalculateProgress(t *testing.T) {
	cases := []struct {
		current, total, want int
	}{
		{1, 10, 10},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{10, 10, 100},
		{0, 10, 0},
		{3, 0, 0},
	}
	for _, tc := range cases {
		if got := CalculateProgress(tc.current, tc.total); got != tc.want {
			t.Errorf("CalculateProgress(%d, %d) = %d, want %d", tc.current, tc.total, got, tc.want)
		}
	}
}

func TestGenerateEmailFromName(t *testing.T) {
	got := GenerateEmailFromName("Mary-Ann", "O'Brien 2nd")
	if got != "maryann.obriennd@healthinsurancebureau.com" {
		t.Fatalf("GenerateEmailFromName = %q", got)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	cases := map[string]string{
		"":       "",
		"hELLO":  "Hello",
		"a":      "A",
		"éCOLE":  "École",
		"123abc": "123abc",
	}
	for input, want := range cases {
		if got := CapitalizeFirst(input); got != want {
			t.Errorf("CapitalizeFirst(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestGetInitials(t *testing.T) {
	if got := GetInitials("jane", "doe"); got != "JD" {
		t.Fatalf("GetInitials = %q", got)
	}
	if got := GetInitials("", "doe"); got != "D" {
		t.Fatalf("GetInitials with empty first = %q", got)
	}
}

func TestGenerateID(t *testing.T) {
	shape := regexp.MustCompile(`^[0-9a-z]{9}$`)
	seen := make(map[string]struct{})
	for i := 0; i < 200; i++ {
		id := GenerateID()
		if !shape.MatchString(id) {
			t.Fatalf("GenerateID produced %q", id)
		}
		seen[id] = struct{}{}
	}
	if len(seen) < 199 {
		t.Fatalf("expected ids to be unique, got %d distinct", len(seen))
	}
}

func TestDelay(t *testing.T) {
	if err := Delay(context.Background(), time.Millisecond); err != nil {
		t.Fatalf("Delay returned %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Delay(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
