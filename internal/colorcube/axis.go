package colorcube

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAxis = errors.New("invalid axis")

// Axis selects the channel held constant across a slice set.
type Axis int

const (
	FixedRed Axis = iota
	FixedGreen
	FixedBlue
)

// Axes lists the axes in display order.
var Axes = []Axis{FixedRed, FixedGreen, FixedBlue}

func (a Axis) String() string {
	switch a {
	case FixedRed:
		return "Red"
	case FixedGreen:
		return "Green"
	case FixedBlue:
		return "Blue"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

func (a Axis) Valid() bool {
	return a >= FixedRed && a <= FixedBlue
}

// ParseAxis accepts "red", "r", "green", "g", "blue", "b" in any case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red", "r":
		return FixedRed, nil
	case "green", "g":
		return FixedGreen, nil
	case "blue", "b":
		return FixedBlue, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidAxis, s)
	}
}

// MarshalText and UnmarshalText let an Axis live in config files.
func (a Axis) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
	return []byte(strings.ToLower(a.String())), nil
}

func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// mapper turns a fixed value and slice coordinates (u horizontal, v vertical)
// into a color.
type mapper func(fixed, u, v uint8) (r, g, b uint8)

func fixedRed(fixed, u, v uint8) (uint8, uint8, uint8)   { return fixed, v, u }
func fixedGreen(fixed, u, v uint8) (uint8, uint8, uint8) { return u, fixed, v }
func fixedBlue(fixed, u, v uint8) (uint8, uint8, uint8)  { return u, v, fixed }

func (a Axis) mapper() (mapper, error) {
	switch a {
	case FixedRed:
		return fixedRed, nil
	case FixedGreen:
		return fixedGreen, nil
	case FixedBlue:
		return fixedBlue, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxis, int(a))
	}
}

// ResolveColor returns the color shown at (u, v) of the slice for fixed on
// axis a. It uses the same mapping as Renderer.Generate.
func ResolveColor(a Axis, fixed, u, v uint8) (r, g, b uint8, err error) {
	m, err := a.mapper()
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = m(fixed, u, v)
	return r, g, b, nil
}
