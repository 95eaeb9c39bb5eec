package conv

import "testing"

func TestItoa(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{-1, "-1"},
		{-9005, "-9005"},
		{1234567890123, "1234567890123"},
	}
	for _, tc := range cases {
		var buf [20]byte
		if got := string(Itoa(buf[:], tc.n)); got != tc.want {
			t.Errorf("Itoa(%d) = %q, want %q", tc.n, got, tc.want)
		}
		if got := ItoaString(tc.n); got != tc.want {
			t.Errorf("ItoaString(%d) = %q, want %q", tc.n, got, tc.want)
		}
	}
}

func TestItoaEmptyBuf(t *testing.T) {
	if got := Itoa(nil, 99); len(got) != 0 {
		t.Fatalf("Itoa with empty buf returned %q", got)
	}
}

func TestParseLeadingInt(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"42", 42},
		{"42abc", 42},
		{"abc", 0},
		{"", 0},
		{"-17", -17},
		{"-17px", -17},
		{"+8", 8},
		{"  99 bottles", 99},
		{"-", 0},
		{"+", 0},
		{"3.14", 3},
		{"007", 7},
	}
	for _, tc := range cases {
		if got := ParseLeadingInt(tc.in); got != tc.want {
			t.Errorf("ParseLeadingInt(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
