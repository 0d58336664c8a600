package bigdecimal

import "fmt"

// Pipe chains operations over a single decimal that it owns and modifies in
// place. Every step runs in [InPlace] mode on the current value.
//
// Operands may be of any type accepted by [From], so a step such as
// Mul(2) or Add("0.5") needs no explicit conversion.
//
// The first error stops the chain: later steps are skipped and the error is
// reported by [Pipe.Err]. This mirrors the way [bufio.Scanner] reports errors.
// A failed operand conversion is such an error.
//
//	p := bigdecimal.NewPipe(bigdecimal.MustParse("1.5e3"))
//	p.Add(5).Quo(2).Sqrt()
//	if err := p.Err(); err != nil {
//		...
//	}
type Pipe struct {
	ctx *Context
	cur *Decimal
	err error
}

// NewPipe returns a pipe over d that uses [DefaultContext].
// The pipe modifies d itself; pass d.Clone() to keep d unchanged.
// A nil d starts the pipe at 0.
func NewPipe(d *Decimal) *Pipe {
	return DefaultContext().Pipe(d)
}

// Pipe returns a pipe over d that uses c for quotients and roots.
// The pipe modifies d itself. A nil d starts the pipe at 0.
// If c is not valid, the pipe starts with the validation error.
func (c *Context) Pipe(d *Decimal) *Pipe {
	if d == nil {
		d = new(Decimal)
	}
	return &Pipe{ctx: c, cur: d, err: c.Validate()}
}

// Add adds v to the current value.
func (p *Pipe) Add(v any) *Pipe {
	if e := p.operand(v); e != nil {
		p.cur.Add(e, InPlace)
	}
	return p
}

// Sub subtracts v from the current value.
func (p *Pipe) Sub(v any) *Pipe {
	if e := p.operand(v); e != nil {
		p.cur.Sub(e, InPlace)
	}
	return p
}

// Mul multiplies the current value by v.
func (p *Pipe) Mul(v any) *Pipe {
	if e := p.operand(v); e != nil {
		p.cur.Mul(e, InPlace)
	}
	return p
}

// Div divides the current value by v, see [Decimal.Div].
func (p *Pipe) Div(v any, prec int, rounding RoundingMode) *Pipe {
	if e := p.operand(v); e != nil {
		_, p.err = p.cur.Div(e, prec, rounding, InPlace)
	}
	return p
}

// Quo divides the current value by v with the precision and rounding
// mode of the pipe context.
func (p *Pipe) Quo(v any) *Pipe {
	return p.Div(v, p.ctx.Precision, p.ctx.Rounding)
}

// Mod replaces the current value with the remainder of its truncated
// division by v, see [Decimal.Mod].
func (p *Pipe) Mod(v any) *Pipe {
	if e := p.operand(v); e != nil {
		_, p.err = p.cur.Mod(e, InPlace)
	}
	return p
}

// Pow raises the current value to the power of exp.
func (p *Pipe) Pow(exp int) *Pipe {
	if p.err == nil {
		_, p.err = p.cur.Pow(exp, InPlace)
	}
	return p
}

// Root replaces the current value with its n-th root rounded to prec digits
// after the decimal point.
func (p *Pipe) Root(n, prec int) *Pipe {
	if p.err == nil {
		_, p.err = p.ctx.root(p.cur, n, prec, InPlace)
	}
	return p
}

// Sqrt replaces the current value with its square root rounded to the
// precision of the pipe context.
func (p *Pipe) Sqrt() *Pipe {
	return p.Root(2, p.ctx.Precision)
}

// Min replaces the current value with the smaller of it and v.
// The current value is kept when they are numerically equal.
func (p *Pipe) Min(v any) *Pipe {
	if e := p.operand(v); e != nil {
		p.cur.Min(e, InPlace)
	}
	return p
}

// Max replaces the current value with the larger of it and v.
// The current value is kept when they are numerically equal.
func (p *Pipe) Max(v any) *Pipe {
	if e := p.operand(v); e != nil {
		p.cur.Max(e, InPlace)
	}
	return p
}

// Abs replaces the current value with its absolute value.
func (p *Pipe) Abs() *Pipe {
	if p.err == nil {
		p.cur.Abs(InPlace)
	}
	return p
}

// Neg negates the current value.
func (p *Pipe) Neg() *Pipe {
	if p.err == nil {
		p.cur.Neg(InPlace)
	}
	return p
}

// operand converts v with [From]. It returns nil if the pipe has already
// failed or the conversion fails, recording the error in the latter case.
func (p *Pipe) operand(v any) *Decimal {
	if p.err != nil {
		return nil
	}
	if e, ok := v.(*Decimal); ok && e != nil {
		return e
	}
	e, err := From(v)
	if err != nil {
		p.err = fmt.Errorf("pipe operand: %w", err)
		return nil
	}
	return e
}

// Value returns the current value.
// The returned decimal is owned by the pipe and changes with further steps.
func (p *Pipe) Value() *Decimal {
	return p.cur
}

// Err returns the first error encountered by the pipe, if any.
func (p *Pipe) Err() error {
	return p.err
}

// String returns the current value with trailing zeros removed.
func (p *Pipe) String() string {
	return p.cur.Text(true)
}

// Text returns the current value, see [Decimal.Text].
func (p *Pipe) Text(trimZeros bool) string {
	return p.cur.Text(trimZeros)
}
