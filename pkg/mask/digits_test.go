package mask

import "testing"

func TestDigits(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"abc":            "",
		"(555) 123-4567": "5551234567",
		"12a3 4":         "1234",
		"٣4":             "4",
	}
	for in, want := range cases {
		if got := Digits(in); got != want {
			t.Fatalf("Digits(%q): want %q, got %q", in, want, got)
		}
	}
}
