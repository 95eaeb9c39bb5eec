package conv

// ParseLeadingInt parses a decimal integer at the start of s, after optional
// leading spaces and an optional sign. Parsing stops at the first non-digit;
// if no digit was consumed the result is 0. There is no error return: this is
// the lenient contract firmware-facing text conversion relies on
// ("42abc" -> 42, "abc" -> 0, "" -> 0).
func ParseLeadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		digits++
		i++
	}
	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
