package timestamp

import "strings"

const separator = "_"

// Shape identifies the layout of a token's time fragment.
type Shape int

const (
	ShapeUnknown Shape = iota
	// ShapeCanonical is HH_MM_SS.
	ShapeCanonical
	// ShapeCompact is HHMMSS.
	ShapeCompact
	// ShapeMinuteSecondRun is <group>_MMSS, e.g. 06_0256.
	ShapeMinuteSecondRun
	// ShapeHourMinuteRun is HHMM_SS, e.g. 0602_56.
	ShapeHourMinuteRun
)

func (s Shape) String() string {
	switch s {
	case ShapeCanonical:
		return "canonical"
	case ShapeCompact:
		return "compact"
	case ShapeMinuteSecondRun:
		return "minute-second-run"
	case ShapeHourMinuteRun:
		return "hour-minute-run"
	default:
		return "unknown"
	}
}

// Corrected reports whether the shape has a known rewrite to HH_MM_SS.
func (s Shape) Corrected() bool {
	return s != ShapeUnknown
}

// Classify returns the shape of a time fragment.
func Classify(fragment string) Shape {
	groups := strings.Split(fragment, separator)
	switch len(groups) {
	case 1:
		if len(fragment) == 6 {
			return ShapeCompact
		}
	case 2:
		switch {
		case len(groups[1]) == 4:
			return ShapeMinuteSecondRun
		case len(groups[0]) == 4 && len(groups[1]) == 2:
			return ShapeHourMinuteRun
		}
	case 3:
		if len(groups[0]) == 2 && len(groups[1]) == 2 && len(groups[2]) == 2 {
			return ShapeCanonical
		}
	}
	return ShapeUnknown
}

// rewrites maps every correctable shape to its rewrite rule.
var rewrites = map[Shape]func(fragment string) string{
	ShapeCanonical: func(fragment string) string {
		return fragment
	},
	ShapeCompact: func(fragment string) string {
		return fragment[:2] + separator + fragment[2:4] + separator + fragment[4:]
	},
	ShapeMinuteSecondRun: func(fragment string) string {
		first, rest, _ := strings.Cut(fragment, separator)
		return first + separator + rest[:2] + separator + rest[2:]
	},
	ShapeHourMinuteRun: func(fragment string) string {
		first, seconds, _ := strings.Cut(fragment, separator)
		return first[:2] + separator + first[2:] + separator + seconds
	},
}

// Rewrite canonicalizes fragment according to its shape. Unknown shapes are
// returned unchanged.
func Rewrite(fragment string) (string, Shape) {
	shape := Classify(fragment)
	rewrite, ok := rewrites[shape]
	if !ok {
		return fragment, ShapeUnknown
	}
	return rewrite(fragment), shape
}
