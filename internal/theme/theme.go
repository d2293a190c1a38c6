// Package theme defines the two-valued display theme and the presentation
// values associated with each member.
package theme

import (
	"errors"
	"fmt"
)

// Theme is the visual mode applied to the page.
type Theme string

const (
	// Dark is the default theme.
	Dark Theme = "dark"
	// Light is the alternate theme.
	Light Theme = "light"
)

// Default is used whenever no valid stored value exists.
const Default = Dark

// ErrUnknownTheme is returned when a value is neither "dark" nor "light".
var ErrUnknownTheme = errors.New("unknown theme")

// All returns every valid theme in declaration order.
func All() []Theme {
	return []Theme{Dark, Light}
}

// Parse converts s to a Theme. Only exact matches are accepted.
func Parse(s string) (Theme, error) {
	switch Theme(s) {
	case Dark, Light:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
	}
}

// Valid reports whether t is one of the two known themes.
func (t Theme) Valid() bool {
	return t == Dark || t == Light
}

// Next returns the opposite theme. Any value other than Dark yields Dark, so
// Next never returns an invalid theme.
func (t Theme) Next() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}
