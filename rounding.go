package bigdecimal

import (
	"fmt"
	"strings"
)

// RoundingMode specifies how a quotient or a rescaled decimal is rounded when
// digits are discarded.
// The zero value is [HalfUp].
type RoundingMode uint8

const (
	// HalfUp rounds to the nearest neighbour, and away from zero on exact ties.
	HalfUp RoundingMode = iota
	// Down rounds towards zero (truncation).
	Down
	// Up rounds away from zero whenever any discarded digit is non-zero.
	Up
	// Ceiling rounds towards positive infinity.
	Ceiling
	// Floor rounds towards negative infinity.
	Floor
)

var roundingNames = [...]string{
	HalfUp:  "half-up",
	Down:    "down",
	Up:      "up",
	Ceiling: "ceiling",
	Floor:   "floor",
}

// ParseRoundingMode converts a name to a rounding mode.
// Names are case-insensitive. Besides the canonical names returned by
// [RoundingMode.String], the aliases "truncate", "trunc", "ceil" and
// "half_up" are accepted.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(s) {
	case "half-up", "half_up", "halfup", "":
		return HalfUp, nil
	case "down", "truncate", "trunc":
		return Down, nil
	case "up":
		return Up, nil
	case "ceiling", "ceil":
		return Ceiling, nil
	case "floor":
		return Floor, nil
	}
	return 0, fmt.Errorf("rounding mode %q: %w", s, ErrInvalidRounding)
}

func (r RoundingMode) valid() bool {
	return int(r) < len(roundingNames)
}

// String implements the [fmt.Stringer] interface.
func (r RoundingMode) String() string {
	if !r.valid() {
		return fmt.Sprintf("RoundingMode(%d)", uint8(r))
	}
	return roundingNames[r]
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r RoundingMode) MarshalText() ([]byte, error) {
	if !r.valid() {
		return nil, fmt.Errorf("rounding mode %d: %w", uint8(r), ErrInvalidRounding)
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// Also see [ParseRoundingMode].
func (r *RoundingMode) UnmarshalText(text []byte) error {
	m, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*r = m
	return nil
}

// adjustQuo adjusts a quotient z that was truncated towards zero, given the
// remainder r and the divisor y of the same division.
// The adjustment moves z by one unit in the direction of the true quotient.
func (z *bint) adjustQuo(r, y *bint, mode RoundingMode) {
	if r.sign() == 0 {
		return
	}
	// Sign of the exact quotient
	sign := r.sign() * y.sign()
	inc := false
	switch mode {
	case Down:
	case Up:
		inc = true
	case Ceiling:
		inc = sign > 0
	case Floor:
		inc = sign < 0
	default: // HalfUp
		h := getBint()
		defer putBint(h)
		h.abs(r)
		h.big().Lsh(h.big(), 1) // h = 2 * |r|
		inc = h.cmpAbs(y) >= 0
	}
	if !inc {
		return
	}
	if sign > 0 {
		z.add(z, bpow10[0])
	} else {
		z.sub(z, bpow10[0])
	}
}

// Round returns d rounded to the specified number of digits after
// the decimal point using the given rounding mode.
// If the scale of d is less than the specified scale, the result is
// zero-padded to the right.
//
// Round returns an error if the scale is negative or the rounding mode is unknown.
func (d *Decimal) Round(scale int, mode RoundingMode) (*Decimal, error) {
	switch {
	case scale < 0:
		return nil, fmt.Errorf("rounding %v to %v digits: %w", d, scale, ErrInvalidPrecision)
	case !mode.valid():
		return nil, fmt.Errorf("rounding %v: %w", d, ErrInvalidRounding)
	}
	f := new(Decimal)
	if scale >= d.scale {
		f.coef.lsh(&d.coef, scale-d.scale)
	} else {
		f.coef.rshRound(&d.coef, d.scale-scale, mode)
	}
	f.scale = scale
	return f, nil
}

// Trunc returns d truncated to the specified number of digits after the
// decimal point. It is equivalent to Round(scale, Down).
func (d *Decimal) Trunc(scale int) (*Decimal, error) {
	return d.Round(scale, Down)
}

// Rescale returns d with the given scale, padding with zeros or rounding
// half-up as needed.
// Rescale panics if the scale is negative.
func (d *Decimal) Rescale(scale int) *Decimal {
	f, err := d.Round(scale, HalfUp)
	if err != nil {
		panic(fmt.Sprintf("%q.Rescale(%v) failed: %v", d, scale, err))
	}
	return f
}

// MinScale returns the smallest scale that d can be rescaled to without rounding.
func (d *Decimal) MinScale() int {
	if d.scale == 0 || d.IsZero() {
		return 0
	}
	z := d.coef.ntz()
	if z > d.scale {
		return 0
	}
	return d.scale - z
}

// Trim returns d with all trailing zeros after the decimal point removed.
// The numeric value is unchanged.
func (d *Decimal) Trim() *Decimal {
	return d.Rescale(d.MinScale())
}
