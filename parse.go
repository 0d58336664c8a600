package bigdecimal

import (
	"fmt"
	"math/big"
	"strconv"
)

// Parse converts a string to a decimal.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	0.000001234
//	1.83e5
//	0.22E-9
//
// The formal EBNF grammar for the supported format is as follows:
//
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	exponent       ::= ('e' | 'E') ['+' | '-'] digits
//	numeric-string ::= ['-'] significand [exponent]
//
// Parse keeps trailing zeros in the fractional part to preserve scale,
// so "1.50" has a scale of 2.
// A positive exponent moves fractional digits into the integer part and a
// negative exponent moves integer digits into the fractional part.
// Any representation of zero, such as "0.00" or "-0e5", is parsed as 0 with
// a scale of 0.
//
// Parse returns an error wrapping [ErrInvalidNumber] if the string does not
// represent a decimal number or its exponent exceeds [MaxExponent].
func Parse(s string) (*Decimal, error) {
	n, err := scanNumber(s)
	if err != nil {
		return nil, err
	}
	d := new(Decimal)
	scale := len(n.frac) - n.exp
	if !d.coef.setString(n.sign + n.integer + n.frac) {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidNumber) // unreachable
	}
	switch {
	case d.coef.sign() == 0:
		scale = 0
	case scale < 0:
		d.coef.lsh(&d.coef, -scale)
		scale = 0
	}
	d.scale = scale
	return d, nil
}

// ParseWithScale converts a string to a decimal with the given scale.
// The fractional digits of the input are discarded before the exponent is
// applied, and the remaining digits are used as the coefficient unchanged.
// For example, ParseWithScale("123.456", 2) returns 1.23 and
// ParseWithScale("1.5e3", 1) returns 100.0.
//
// ParseWithScale returns an error if the string is not a valid number or the
// scale is negative.
func ParseWithScale(s string, scale int) (*Decimal, error) {
	if scale < 0 {
		return nil, fmt.Errorf("scale %v: %w", scale, ErrInvalidPrecision)
	}
	n, err := scanNumber(s)
	if err != nil {
		return nil, err
	}
	d := new(Decimal)
	if !d.coef.setString(n.sign + n.integer) {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidNumber) // unreachable
	}
	if n.exp > 0 {
		d.coef.lsh(&d.coef, n.exp)
	}
	d.scale = scale
	return d, nil
}

// numParts holds the components of a scanned numeric string.
type numParts struct {
	sign    string // "-" or ""
	integer string // integer digits, possibly empty
	frac    string // fractional digits, possibly empty
	exp     int    // decimal exponent
}

func scanNumber(s string) (numParts, error) {
	var (
		n       numParts
		pos     int
		width   = len(s)
		eneg    bool
		hascoef bool
		hasexp  bool
	)

	// Sign
	switch {
	case pos == width:
		return numParts{}, fmt.Errorf("empty string: %w", ErrInvalidNumber)
	case s[pos] == '-':
		n.sign = "-"
		pos++
	case s[pos] == '+':
		return numParts{}, fmt.Errorf("%q: leading '+': %w", s, ErrInvalidNumber)
	}

	// Integer
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		pos++
	}
	n.integer = s[start:pos]
	hascoef = pos > start

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
		}
		n.frac = s[start:pos]
		hascoef = hascoef || pos > start
	}

	// Exponential part
	if pos < width && (s[pos] == 'e' || s[pos] == 'E') {
		pos++
		switch {
		case pos == width:
			// skip
		case s[pos] == '-':
			eneg = true
			pos++
		case s[pos] == '+':
			pos++
		}
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			n.exp = n.exp*10 + int(s[pos]-'0')
			if n.exp > MaxExponent {
				return numParts{}, fmt.Errorf("%q: exponent out of range: %w", s, ErrInvalidNumber)
			}
			hasexp = true
			pos++
		}
		if !hasexp {
			return numParts{}, fmt.Errorf("%q: no exponent digits: %w", s, ErrInvalidNumber)
		}
	}

	if pos != width {
		return numParts{}, fmt.Errorf("%q: invalid character %q: %w", s, s[pos], ErrInvalidNumber)
	}
	if !hascoef {
		return numParts{}, fmt.Errorf("%q: no digits: %w", s, ErrInvalidNumber)
	}
	if eneg {
		n.exp = -n.exp
	}
	return n, nil
}

// parseFloat parses the output of strconv.FormatFloat.
func parseFloat(s string) (*Decimal, error) {
	switch s {
	case "NaN", "+Inf", "-Inf":
		return nil, fmt.Errorf("special value %v: %w", s, ErrInvalidNumber)
	}
	return Parse(s)
}

// From converts a value of a supported type to a decimal.
// Supported types are string, signed and unsigned integers, float32, float64,
// *big.Int, Decimal and *Decimal.
// Strings are converted with [Parse], floats with [NewFromFloat64].
// The result never shares storage with v.
//
// From returns an error wrapping [ErrInvalidNumber] for any other type.
func From(v any) (*Decimal, error) {
	switch v := v.(type) {
	case string:
		return Parse(v)
	case int:
		return NewFromInt64(int64(v)), nil
	case int8:
		return NewFromInt64(int64(v)), nil
	case int16:
		return NewFromInt64(int64(v)), nil
	case int32:
		return NewFromInt64(int64(v)), nil
	case int64:
		return NewFromInt64(v), nil
	case uint:
		return NewFromUint64(uint64(v)), nil
	case uint8:
		return NewFromUint64(uint64(v)), nil
	case uint16:
		return NewFromUint64(uint64(v)), nil
	case uint32:
		return NewFromUint64(uint64(v)), nil
	case uint64:
		return NewFromUint64(v), nil
	case float32:
		return parseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return NewFromFloat64(v)
	case *big.Int:
		return NewFromBigInt(v, 0)
	case *Decimal:
		if v == nil {
			return nil, fmt.Errorf("nil %T: %w", v, ErrInvalidNumber)
		}
		return v.Clone(), nil
	case Decimal:
		return v.Clone(), nil
	}
	return nil, fmt.Errorf("unsupported type %T: %w", v, ErrInvalidNumber)
}
