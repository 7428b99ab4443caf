// Package password builds character pools from a set of enabled character
// classes and samples passwords from them.
//
// Pool construction is deterministic: the same four class flags always yield
// the same ordered pool, regardless of the requested length. Sampling is
// delegated to an injected Rand so callers (and tests) control the source.
package password

// DefaultLength is the password length used when none (or an unusable one)
// is supplied.
const DefaultLength = 12

// Spec describes which character classes a password may draw from and how
// long it is.
type Spec struct {
	Symbols bool
	Numbers bool
	Upper   bool
	Lower   bool
	Length  int
}

// NewSpec returns a Spec for the given class switches and length.
// When no class is enabled every class is enabled, and a negative length is
// replaced by DefaultLength.
func NewSpec(symbols, numbers, upper, lower bool, length int) Spec {
	if length < 0 {
		length = DefaultLength
	}

	if !symbols && !numbers && !upper && !lower {
		return Spec{Symbols: true, Numbers: true, Upper: true, Lower: true, Length: length}
	}

	return Spec{
		Symbols: symbols,
		Numbers: numbers,
		Upper:   upper,
		Lower:   lower,
		Length:  length,
	}
}

// DefaultSpec is the spec used when no switches are given.
func DefaultSpec() Spec {
	return NewSpec(false, false, false, false, DefaultLength)
}

// HasClass reports whether at least one character class is enabled.
func (s Spec) HasClass() bool {
	return s.Symbols || s.Numbers || s.Upper || s.Lower
}
