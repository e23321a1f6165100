package domain

import "unique"

// InternedString is a value object wrapping a unique.Handle[string].
// Target identities are repeated across the registry, the outdatedness
// graph and the scheduler's bookkeeping maps, so interning keeps the
// comparisons cheap and the duplicates free.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s and returns the handle wrapper.
func NewInternedString(s string) InternedString {
	return InternedString{h: unique.Make(s)}
}

// String returns the underlying string value. The zero InternedString
// renders as the empty string.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsZero reports whether the InternedString is the zero value, i.e.
// was never interned.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
