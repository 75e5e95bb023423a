// Package timestamp recovers sortable timestamps from exporter file names.
//
// Exporters encode the message time as YYYY-MM-DDThh_mm_ss±hh_mm but some
// drop or misplace the separators in the time fragment. Match finds the
// token, Normalize rewrites known malformed fragments to hh_mm_ss, and the
// resulting Key compares lexicographically. Offsets are kept as written, so
// keys order by encoded local time rather than UTC.
//
// Every function in this package is pure and safe for concurrent use.
package timestamp

// Normalized is a token with its time fragment canonicalized.
type Normalized struct {
	Token Token
	Time  string
	Shape Shape
}

// Value returns the comparable form of the token.
func (n Normalized) Value() string {
	return n.Token.Date + "T" + n.Time + n.Token.Offset
}

// Normalize canonicalizes the time fragment of token.
func Normalize(token Token) Normalized {
	fragment, shape := Rewrite(token.Time)
	return Normalized{Token: token, Time: fragment, Shape: shape}
}

// Extraction is the outcome of reading a timestamp from one file name.
type Extraction struct {
	Filename   string
	Found      bool
	Normalized Normalized
	Key        Key
}

// Uncorrected reports whether a token was found but its time fragment had no
// known correction, so its position in the order may be wrong.
func (e Extraction) Uncorrected() bool {
	return e.Found && !e.Normalized.Shape.Corrected()
}

// Extract matches and normalizes the timestamp in filename.
func Extract(filename string) Extraction {
	token, ok := Match(filename)
	if !ok {
		return Extraction{Filename: filename, Key: NoDate()}
	}
	normalized := Normalize(token)
	return Extraction{
		Filename:   filename,
		Found:      true,
		Normalized: normalized,
		Key:        Dated(normalized.Value()),
	}
}

// Report writes the diagnostic lines for e to logf.
func (e Extraction) Report(logf func(format string, args ...any)) {
	if logf == nil {
		return
	}
	logf("  %s -> Date: %s", e.Filename, e.Key)
	if e.Uncorrected() {
		logf("  %s: uncorrected time fragment %q, order may be inexact", e.Filename, e.Normalized.Token.Time)
	}
}
