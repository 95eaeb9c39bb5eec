package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct {
		name           string
		v, lo, hi, out int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"swapped bounds", 5, 10, 0, 5},
		{"at low edge", 0, 0, 10, 0},
		{"at high edge", 10, 0, 10, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.v, tc.lo, tc.hi); got != tc.out {
				t.Fatalf("Clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.out)
			}
		})
	}
}

func TestRange(t *testing.T) {
	cases := []struct {
		name               string
		start, end, n      int
		wantStart, wantEnd int
	}{
		{"whole", 0, 5, 5, 0, 5},
		{"negative start", -4, 3, 5, 0, 3},
		{"end past length", 2, 99, 5, 2, 5},
		{"inverted", 4, 1, 5, 4, 4},
		{"both out of range", -10, 100, 5, 0, 5},
		{"empty sequence", 1, 3, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, e := Range(tc.start, tc.end, tc.n)
			if s != tc.wantStart || e != tc.wantEnd {
				t.Fatalf("Range(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tc.start, tc.end, tc.n, s, e, tc.wantStart, tc.wantEnd)
			}
			if s < 0 || e > tc.n || e < s {
				t.Fatalf("Range produced out-of-bounds pair (%d, %d) for n=%d", s, e, tc.n)
			}
		})
	}
}
