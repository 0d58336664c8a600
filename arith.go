package bigdecimal

import (
	"fmt"
)

// Add returns the exact sum d + e.
// The scale of the result is the larger of the scales of d and e.
//
// With [InPlace] the sum is stored in d.
func (d *Decimal) Add(e *Decimal, mode Mode) *Decimal {
	scale := max(d.scale, e.scale)
	y := getBint()
	defer putBint(y)
	y.alignedCoef(e, scale)

	z := d.target(mode)
	z.coef.alignedCoef(d, scale)
	z.coef.add(&z.coef, y)
	z.scale = scale
	return z
}

// Sub returns the exact difference d - e.
// The scale of the result is the larger of the scales of d and e.
//
// With [InPlace] the difference is stored in d.
func (d *Decimal) Sub(e *Decimal, mode Mode) *Decimal {
	scale := max(d.scale, e.scale)
	y := getBint()
	defer putBint(y)
	y.alignedCoef(e, scale)

	z := d.target(mode)
	z.coef.alignedCoef(d, scale)
	z.coef.sub(&z.coef, y)
	z.scale = scale
	return z
}

// Mul returns the exact product d * e.
// The scale of the result is the sum of the scales of d and e.
//
// With [InPlace] the product is stored in d, so d.Mul(d, InPlace) squares d.
func (d *Decimal) Mul(e *Decimal, mode Mode) *Decimal {
	scale := d.scale + e.scale
	z := d.target(mode)
	z.coef.mul(&d.coef, &e.coef)
	z.scale = scale
	return z
}

// Div returns the quotient d / e rounded to prec digits after the decimal
// point using the given rounding mode.
// The scale of the result is always prec.
//
// With [InPlace] the quotient is stored in d.
//
// Div returns an error if:
//   - e is 0;
//   - prec is negative;
//   - the rounding mode is unknown.
func (d *Decimal) Div(e *Decimal, prec int, rounding RoundingMode, mode Mode) (*Decimal, error) {
	switch {
	case e.IsZero():
		return nil, fmt.Errorf("%v / %v: %w", d, e, ErrDivisionByZero)
	case prec < 0:
		return nil, fmt.Errorf("%v / %v with precision %v: %w", d, e, prec, ErrInvalidPrecision)
	case !rounding.valid():
		return nil, fmt.Errorf("%v / %v: %w", d, e, ErrInvalidRounding)
	}

	var x, y, r *bint
	x, y, r = getBint(), getBint(), getBint()
	defer putBint(x)
	defer putBint(y)
	defer putBint(r)

	// Alignment
	scale := max(d.scale, e.scale)
	x.alignedCoef(d, scale+prec)
	y.alignedCoef(e, scale)

	// Quotient
	z := d.target(mode)
	z.coef.quoRem(x, y, r)
	z.coef.adjustQuo(r, y, rounding)
	z.scale = prec
	return z, nil
}

// Quo returns the quotient d / e rounded half-up to [DefaultPrecision] digits
// after the decimal point. It is equivalent to Div(e, DefaultPrecision, HalfUp, Copy).
//
// Quo returns an error if e is 0.
func (d *Decimal) Quo(e *Decimal) (*Decimal, error) {
	return d.Div(e, DefaultPrecision, HalfUp, Copy)
}

// QuoRem returns the quotient q, truncated towards zero to an integer, and
// the remainder r such that d = q * e + r.
// The remainder has the sign of d and the larger of the scales of d and e.
//
// QuoRem returns an error if e is 0.
func (d *Decimal) QuoRem(e *Decimal) (q, r *Decimal, err error) {
	q, err = d.Div(e, 0, Down, Copy)
	if err != nil {
		return nil, nil, err
	}
	r = e.Mul(q, Copy)
	r = d.Sub(r, Copy)
	return q, r, nil
}

// Mod returns the remainder of the truncated division d / e, that is
// d - e * trunc(d / e).
// The result has the sign of d, like the % operator on Go integers, and the
// larger of the scales of d and e.
//
// With [InPlace] the remainder is stored in d.
//
// Mod returns an error if e is 0.
func (d *Decimal) Mod(e *Decimal, mode Mode) (*Decimal, error) {
	_, r, err := d.QuoRem(e)
	if err != nil {
		return nil, err
	}
	if mode == InPlace {
		return d.Set(r), nil
	}
	return r, nil
}

// Pow returns d raised to the power of exp.
// The scale of the result is d.Scale() * exp, and d^0 is 1 with a scale of 0.
//
// With [InPlace] the power is stored in d.
//
// Pow returns an error if exp is negative.
func (d *Decimal) Pow(exp int, mode Mode) (*Decimal, error) {
	if exp < 0 {
		return nil, fmt.Errorf("%v ^ %v: %w", d, exp, ErrInvalidExponent)
	}
	scale := d.scale * exp
	z := d.target(mode)
	z.coef.pow(&d.coef, exp)
	z.scale = scale
	return z, nil
}

// Abs returns the absolute value of d.
//
// With [InPlace] the result is stored in d.
func (d *Decimal) Abs(mode Mode) *Decimal {
	z := d.target(mode)
	z.coef.abs(&d.coef)
	z.scale = d.scale
	return z
}

// Neg returns d with the opposite sign.
//
// With [InPlace] the result is stored in d.
func (d *Decimal) Neg(mode Mode) *Decimal {
	z := d.target(mode)
	z.coef.neg(&d.coef)
	z.scale = d.scale
	return z
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Neither d nor e is modified.
func (d *Decimal) Cmp(e *Decimal) int {
	// Special case: different signs
	switch ds, es := d.Sign(), e.Sign(); {
	case es < ds:
		return 1
	case ds < es:
		return -1
	}

	// General case
	x, y := Align(d, e)
	return x.coef.cmp(&y.coef)
}

// Equal returns true if d and e are numerically equal.
// Also see method [Decimal.Identical].
func (d *Decimal) Equal(e *Decimal) bool {
	return d.Cmp(e) == 0
}

// Max returns the larger of d and e.
// If d and e are numerically equal, d is chosen.
//
// With [Copy] a copy of the chosen decimal is returned.
// With [InPlace] d is overwritten with the chosen decimal.
func (d *Decimal) Max(e *Decimal, mode Mode) *Decimal {
	f := d
	if d.Cmp(e) < 0 {
		f = e
	}
	if mode == InPlace {
		return d.Set(f)
	}
	return f.Clone()
}

// Min returns the smaller of d and e.
// If d and e are numerically equal, d is chosen.
//
// With [Copy] a copy of the chosen decimal is returned.
// With [InPlace] d is overwritten with the chosen decimal.
func (d *Decimal) Min(e *Decimal, mode Mode) *Decimal {
	f := d
	if d.Cmp(e) > 0 {
		f = e
	}
	if mode == InPlace {
		return d.Set(f)
	}
	return f.Clone()
}
