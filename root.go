package bigdecimal

import (
	"fmt"

	"go.uber.org/zap"
)

// Root returns the real n-th root of d rounded half-up (half away from zero)
// to prec digits after the decimal point.
// The scale of the result is always prec.
// Odd roots of negative numbers are negative.
//
// Square roots are calculated with an integer square root; other roots use
// Newton's method with the limits of [DefaultContext]. Both produce the
// correctly rounded result.
//
// With [InPlace] the root is stored in d.
//
// Root returns an error if:
//   - prec is negative;
//   - n is less than 2;
//   - d is negative and n is even;
//   - Newton's method does not converge within the iteration limit.
func (d *Decimal) Root(n, prec int, mode Mode) (*Decimal, error) {
	return DefaultContext().root(d, n, prec, mode)
}

// Sqrt returns the square root of d rounded half-up to prec digits after
// the decimal point. It is equivalent to Root(2, prec, mode).
func (d *Decimal) Sqrt(prec int, mode Mode) (*Decimal, error) {
	return DefaultContext().root(d, 2, prec, mode)
}

func (c *Context) root(d *Decimal, n, prec int, mode Mode) (*Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	switch {
	case prec < 0:
		return nil, fmt.Errorf("root of %v with precision %v: %w", d, prec, ErrInvalidPrecision)
	case n < 2:
		return nil, fmt.Errorf("root of degree %v: %w", n, ErrInvalidRoot)
	case d.IsNeg() && n%2 == 0:
		return nil, fmt.Errorf("root of degree %v of negative %v: %w", n, d, ErrInvalidRoot)
	}

	neg := d.IsNeg()
	coef := new(bint)

	switch {
	case d.IsZero():
		// coef is already zero
	case d.isOne():
		coef.pow10(prec)
	default:
		x := d.Abs(Copy)
		if n == 2 && !c.ForceNewton {
			sqrtCoef(coef, x, prec)
		} else if err := c.newtonCoef(coef, x, n, prec); err != nil {
			return nil, fmt.Errorf("root of degree %v of %v: %w", n, d, err)
		}
	}

	if neg {
		coef.neg(coef)
	}
	z := d.target(mode)
	z.coef.setBint(coef)
	z.scale = prec
	return z, nil
}

// radicand returns ⌊x * 10^(n * digits)⌋ as an integer, for a positive x.
// The integer n-th root of the radicand is the n-th root of x truncated to
// the given number of digits after the decimal point.
func radicand(x *Decimal, n, digits int) *bint {
	z := new(bint)
	if shift := n*digits - x.scale; shift >= 0 {
		z.lsh(&x.coef, shift)
	} else {
		z.rshDown(&x.coef, -shift)
	}
	return z
}

// roundGuard drops the last digit of z, rounding half-up.
// z must not be negative.
func (z *bint) roundGuard() {
	z.rshRound(z, 1, HalfUp)
}

// sqrtCoef stores into z the coefficient of √x rounded to prec digits
// after the decimal point, for a positive x.
func sqrtCoef(z *bint, x *Decimal, prec int) {
	z.sqrt(radicand(x, 2, prec+1))
	z.roundGuard()
}

// reduceRoot returns x / 10^(n*k) and k, with k chosen so that the
// result lies in [1, 10^n). The n-th root of x is then 10^k times the
// n-th root of the result.
func reduceRoot(x *Decimal, n int) (*Decimal, int) {
	e := x.coef.prec() - x.scale - 1
	k := e / n
	if e%n != 0 && e < 0 {
		k--
	}
	r := new(Decimal)
	if scale := x.scale + n*k; scale >= 0 {
		r.coef.setBint(&x.coef)
		r.scale = scale
	} else {
		r.coef.lsh(&x.coef, -scale)
	}
	return r, k
}

// newtonCoef stores into z the coefficient of the n-th root of x rounded to
// prec digits after the decimal point, for a positive x.
//
// x is first reduced to [1, 10^n) by [reduceRoot]. The iteration
// y = ((n-1) * y + x / y^(n-1)) / n runs on the reduced value in decimal
// arithmetic, starting from (x + x/2) / 2, until two consecutive
// approximations differ by at most one unit in the last place.
// The working precision covers prec+1 digits of the unreduced root plus
// GuardDigits. The approximation is then corrected against the exact
// radicand, so the result does not depend on the accumulated rounding errors.
func (c *Context) newtonCoef(z *bint, x *Decimal, n, prec int) error {
	log := c.logger()
	r, k := reduceRoot(x, n)
	digits := prec + 1 + k
	wp := max(digits, 0) + c.GuardDigits

	degree := NewFromInt64(int64(n))
	degree1 := NewFromInt64(int64(n - 1))
	two := NewFromInt64(2)

	// Initial guess
	half, err := r.Div(two, wp, HalfUp, Copy)
	if err != nil {
		return err
	}
	y, err := r.Add(half, Copy).Div(two, wp, HalfUp, InPlace)
	if err != nil {
		return err
	}
	if y.IsZero() {
		y = y.ULP()
	}

	// Newton's method
	converged := false
	for i := 1; i <= c.MaxIterations; i++ {
		p, err := y.Pow(n-1, Copy)
		if err != nil {
			return err
		}
		t, err := r.Div(p, wp, HalfUp, Copy)
		if err != nil {
			return err
		}
		next, err := y.Mul(degree1, Copy).Add(t, InPlace).Div(degree, wp, HalfUp, InPlace)
		if err != nil {
			return err
		}
		delta := next.Sub(y, Copy).Abs(InPlace)
		log.Debug("newton iteration",
			zap.Int("degree", n),
			zap.Int("iteration", i),
			zap.Stringer("delta", delta),
		)
		y = next
		if delta.coef.cmp(bpow10[0]) <= 0 {
			log.Debug("newton converged", zap.Int("degree", n), zap.Int("iterations", i))
			converged = true
			break
		}
	}
	if !converged {
		log.Warn("newton iteration limit exceeded",
			zap.Int("degree", n),
			zap.Int("limit", c.MaxIterations),
		)
		return fmt.Errorf("after %v iterations: %w", c.MaxIterations, ErrRootDidNotConverge)
	}

	// Exact correction, so that t^n <= X < (t+1)^n
	t := new(bint)
	t.rshDown(&y.coef, wp-digits)
	if err := c.bracketRoot(t, radicand(x, n, prec+1), n); err != nil {
		return err
	}
	t.roundGuard()
	z.setBint(t)
	return nil
}

// bracketRoot moves t by single steps until t^n <= rad < (t+1)^n.
func (c *Context) bracketRoot(t, rad *bint, n int) error {
	p := getBint()
	defer putBint(p)
	for i := 0; i < c.MaxIterations; i++ {
		p.pow(t, n)
		if p.cmp(rad) > 0 {
			t.sub(t, bpow10[0])
			continue
		}
		p.add(t, bpow10[0])
		p.pow(p, n)
		if p.cmp(rad) <= 0 {
			t.add(t, bpow10[0])
			continue
		}
		return nil
	}
	return fmt.Errorf("correcting root after %v steps: %w", c.MaxIterations, ErrRootDidNotConverge)
}
