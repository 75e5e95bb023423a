package timestamp

import "regexp"

// pattern matches an exporter timestamp such as 2024-03-01T06_02_56-07_00.
// The minute/second region is variable width because some exporters drop
// separators or merge fields.
var pattern = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})T(\d{2}_?\d{2,4}_?\d{2})([+-]\d{2}_\d{2})`)

// Token is the raw timestamp-shaped substring of a file name.
type Token struct {
	Raw    string
	Date   string // YYYY-MM-DD
	Time   string // text between 'T' and the offset sign
	Offset string // [+-]hh_mm
}

// Match returns the first timestamp token found in filename.
func Match(filename string) (Token, bool) {
	m := pattern.FindStringSubmatch(filename)
	if m == nil {
		return Token{}, false
	}
	return Token{Raw: m[0], Date: m[1], Time: m[2], Offset: m[3]}, true
}
