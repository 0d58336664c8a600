package bigdecimal

import "fmt"

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParse(s string) *Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustNew is like [New] but panics if the decimal cannot be constructed.
// It simplifies safe initialization of global variables holding decimals.
func MustNew(coef int64, scale int) *Decimal {
	d, err := New(coef, scale)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, scale, err))
	}
	return d
}

// MustDiv is like [Decimal.Div] in [Copy] mode but panics if the division fails.
func (d *Decimal) MustDiv(e *Decimal, prec int, rounding RoundingMode) *Decimal {
	f, err := d.Div(e, prec, rounding, Copy)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v, %v) failed: %v", d, e, err))
	}
	return f
}

// MustRoot is like [Decimal.Root] in [Copy] mode but panics if the root cannot be computed.
func (d *Decimal) MustRoot(n, prec int) *Decimal {
	f, err := d.Root(n, prec, Copy)
	if err != nil {
		panic(fmt.Sprintf("MustRoot(%v, %v) failed: %v", d, n, err))
	}
	return f
}
