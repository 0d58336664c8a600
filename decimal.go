package bigdecimal

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimal type is a representation of an exact decimal number of arbitrary
// size. The zero value is the numeric value of 0.
//
// A decimal is a pair of two parameters:
//
//   - Coefficient: an arbitrary-precision signed integer holding all digits of
//     the decimal without the decimal point.
//   - Scale: a non-negative integer indicating how many digits of the
//     coefficient lie after the decimal point.
//
// For example, a decimal with a coefficient of -12345 and a scale of 2
// represents the value -123.45.
// Such approach allows for multiple representations of the same numerical value.
// For example, 1, 1.0, and 1.00 all have the same value, but they
// have different scales and coefficients.
//
// Decimals are used through pointers.
// A Decimal must not be copied by value, since the copy would share the
// coefficient storage with the original; use [Decimal.Clone] instead.
type Decimal struct {
	coef  bint // the coefficient of the decimal, including the sign
	scale int  // the number of digits after the decimal point
}

// DefaultPrecision is the number of digits after the decimal point used by
// [Decimal.Quo] and [DefaultContext].
const DefaultPrecision = 20

// MaxExponent is the largest absolute exponent accepted by [Parse].
const MaxExponent = 1_000_000

var (
	// ErrInvalidNumber is returned when an input does not represent a decimal number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrDivisionByZero is returned when the divisor of a division or a modulo is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidExponent is returned when a power has a negative exponent.
	ErrInvalidExponent = errors.New("invalid exponent")
	// ErrInvalidRoot is returned for a root degree below 2 or an even root of a negative number.
	ErrInvalidRoot = errors.New("invalid root")
	// ErrInvalidPrecision is returned when a negative precision or scale is requested.
	ErrInvalidPrecision = errors.New("invalid precision")
	// ErrRootDidNotConverge is returned when Newton's method exceeds its iteration limit.
	ErrRootDidNotConverge = errors.New("root did not converge")
	// ErrInvalidRounding is returned for an unknown rounding mode.
	ErrInvalidRounding = errors.New("invalid rounding mode")
)

// Mode selects whether an operation returns a new decimal or overwrites
// the receiver.
// The zero value is [Copy].
type Mode uint8

const (
	// Copy leaves all operands untouched and returns a newly allocated decimal.
	Copy Mode = iota
	// InPlace stores the result in the receiver and returns the receiver.
	InPlace
)

// target returns the decimal that receives the result of an operation.
func (d *Decimal) target(mode Mode) *Decimal {
	if mode == InPlace {
		return d
	}
	return new(Decimal)
}

// New returns a decimal equal to coef / 10^scale.
// New returns an error if the scale is negative.
func New(coef int64, scale int) (*Decimal, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale %v: %w", scale, ErrInvalidPrecision)
	}
	d := new(Decimal)
	d.coef.setInt64(coef)
	d.scale = scale
	return d, nil
}

// NewFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied, so later changes to coef do not affect the decimal.
// NewFromBigInt returns an error if the scale is negative or coef is nil.
func NewFromBigInt(coef *big.Int, scale int) (*Decimal, error) {
	switch {
	case coef == nil:
		return nil, fmt.Errorf("nil coefficient: %w", ErrInvalidNumber)
	case scale < 0:
		return nil, fmt.Errorf("scale %v: %w", scale, ErrInvalidPrecision)
	}
	d := new(Decimal)
	d.coef.setBig(coef)
	d.scale = scale
	return d, nil
}

// NewFromInt64 returns a decimal with the value of i and a scale of 0.
func NewFromInt64(i int64) *Decimal {
	d := new(Decimal)
	d.coef.setInt64(i)
	return d
}

// NewFromUint64 returns a decimal with the value of u and a scale of 0.
func NewFromUint64(u uint64) *Decimal {
	d := new(Decimal)
	d.coef.setUint64(u)
	return d
}

// NewFromFloat64 converts a float to a decimal.
// The float is first converted to the shortest decimal string that
// round-trips to the same float, so 0.1 becomes exactly 0.1.
//
// NewFromFloat64 returns an error if the float is NaN or infinite.
func NewFromFloat64(f float64) (*Decimal, error) {
	return parseFloat(strconv.FormatFloat(f, 'g', -1, 64))
}

// Zero returns a decimal with a value of 0 and the same scale as d.
func (d *Decimal) Zero() *Decimal {
	return &Decimal{scale: d.scale}
}

// One returns a decimal with a value of 1 and the same scale as d.
func (d *Decimal) One() *Decimal {
	f := &Decimal{scale: d.scale}
	f.coef.pow10(d.scale)
	return f
}

// ULP (Unit in the Last Place) returns the smallest representable positive
// difference between d and the next larger decimal value with the same scale.
func (d *Decimal) ULP() *Decimal {
	f := &Decimal{scale: d.scale}
	f.coef.setInt64(1)
	return f
}

// Clone returns a deep copy of d.
func (d *Decimal) Clone() *Decimal {
	f := new(Decimal)
	f.coef.setBint(&d.coef)
	f.scale = d.scale
	return f
}

// Set sets d to the value and scale of e and returns d.
func (d *Decimal) Set(e *Decimal) *Decimal {
	if d != e {
		d.coef.setBint(&e.coef)
		d.scale = e.scale
	}
	return d
}

// Scale returns number of digits after the decimal point.
func (d *Decimal) Scale() int {
	return d.scale
}

// Coef returns a copy of the coefficient of the decimal, including its sign.
func (d *Decimal) Coef() *big.Int {
	return new(big.Int).Set(d.coef.big())
}

// Prec returns number of digits in the coefficient.
// Zero has no digits.
func (d *Decimal) Prec() int {
	return d.coef.prec()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d *Decimal) Sign() int {
	return d.coef.sign()
}

// IsZero returns true if d == 0.
func (d *Decimal) IsZero() bool {
	return d.coef.sign() == 0
}

// IsNeg returns true if d < 0.
func (d *Decimal) IsNeg() bool {
	return d.coef.sign() < 0
}

// IsPos returns true if d > 0.
func (d *Decimal) IsPos() bool {
	return d.coef.sign() > 0
}

// IsInt returns true if the fractional part of d is zero.
func (d *Decimal) IsInt() bool {
	if d.scale == 0 {
		return true
	}
	r := getBint()
	defer putBint(r)
	r.big().Rem(d.coef.big(), pow10Bint(d.scale).big())
	return r.sign() == 0
}

// isOne returns true if d == -1 or d == 1.
func (d *Decimal) isOne() bool {
	return d.coef.cmpAbs(pow10Bint(d.scale)) == 0
}

// Identical returns true if d and e have the same coefficient and scale.
// Unlike [Decimal.Equal], 1.0 and 1.00 are not identical.
func (d *Decimal) Identical(e *Decimal) bool {
	return d.scale == e.scale && d.coef.cmp(&e.coef) == 0
}

// BigInt returns the integer part of d, truncated towards zero.
func (d *Decimal) BigInt() *big.Int {
	z := new(bint)
	z.rshDown(&d.coef, d.scale)
	return z.big()
}

// Int64 returns the integer part of d, truncated towards zero.
// If the integer part does not fit into int64, ok is false.
func (d *Decimal) Int64() (i int64, ok bool) {
	z := d.BigInt()
	if !z.IsInt64() {
		return 0, false
	}
	return z.Int64(), true
}

// Float64 returns the nearest binary floating-point number to d.
// If d is too large to be represented, ok is false.
func (d *Decimal) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(d.Text(false), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the decimal with trailing zeros after the decimal point
// removed. Also see method [Decimal.Text].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Decimal) String() string {
	return d.Text(true)
}

// Text returns a string representation of the decimal.
// The returned string does not use scientific or engineering notation and is
// formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
//
// If trimZeros is true, trailing zeros after the decimal point are removed,
// together with the decimal point itself when no fractional digits remain.
// Otherwise exactly Scale digits follow the decimal point.
func (d Decimal) Text(trimZeros bool) string {
	digits := d.coef.string()
	sign := ""
	if digits[0] == '-' {
		sign = "-"
		digits = digits[1:]
	}
	if d.scale <= 0 {
		return sign + digits
	}

	var integer, fraction string
	if len(digits) > d.scale {
		integer = digits[:len(digits)-d.scale]
		fraction = digits[len(digits)-d.scale:]
	} else {
		integer = "0"
		fraction = strings.Repeat("0", d.scale-len(digits)) + digits
	}
	if trimZeros {
		fraction = strings.TrimRight(fraction, "0")
	}

	var b strings.Builder
	b.Grow(len(sign) + len(integer) + len(fraction) + 1)
	b.WriteString(sign)
	b.WriteString(integer)
	if fraction != "" {
		b.WriteByte('.')
		b.WriteString(fraction)
	}
	return b.String()
}
