package timestamp

import "strings"

// NoDateLabel is how a key without a timestamp is rendered.
const NoDateLabel = "NO DATE"

// Key is a sort key that either carries a normalized timestamp or marks its
// absence. The zero value is the no-date key.
type Key struct {
	value string
	dated bool
}

// NoDate returns the key for documents without a recoverable timestamp.
func NoDate() Key {
	return Key{}
}

// Dated returns a key holding a normalized timestamp.
func Dated(value string) Key {
	return Key{value: value, dated: true}
}

// HasDate reports whether the key carries a timestamp.
func (k Key) HasDate() bool {
	return k.dated
}

// Value returns the normalized timestamp and whether one is present.
func (k Key) Value() (string, bool) {
	return k.value, k.dated
}

func (k Key) String() string {
	if !k.dated {
		return NoDateLabel
	}
	return k.value
}

// Compare orders no-date keys before dated ones and dated keys
// lexicographically. It returns -1, 0 or +1.
func (k Key) Compare(other Key) int {
	switch {
	case !k.dated && !other.dated:
		return 0
	case !k.dated:
		return -1
	case !other.dated:
		return 1
	}
	return strings.Compare(k.value, other.value)
}
