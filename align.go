package bigdecimal

// Align returns two decimals numerically equal to a and b that share the
// larger of their scales.
// The operand with the smaller scale is replaced by a new decimal whose
// coefficient is multiplied by 10^|a.Scale() - b.Scale()|; the other operand
// is returned as is. If the scales are already equal, a and b are returned
// unchanged. Neither a nor b is modified.
//
// Also see [AlignInPlace].
func Align(a, b *Decimal) (x, y *Decimal) {
	switch {
	case a.scale < b.scale:
		return a.rescaled(b.scale), b
	case b.scale < a.scale:
		return a, b.rescaled(a.scale)
	default:
		return a, b
	}
}

// AlignInPlace is similar to [Align], but it modifies the operand with the
// smaller scale instead of allocating a new one.
func AlignInPlace(a, b *Decimal) {
	switch {
	case a.scale < b.scale:
		a.coef.lsh(&a.coef, b.scale-a.scale)
		a.scale = b.scale
	case b.scale < a.scale:
		b.coef.lsh(&b.coef, a.scale-b.scale)
		b.scale = a.scale
	}
}

// rescaled returns a new decimal equal to d with a larger or equal scale.
func (d *Decimal) rescaled(scale int) *Decimal {
	f := &Decimal{scale: scale}
	f.coef.lsh(&d.coef, scale-d.scale)
	return f
}

// alignedCoef stores into z the coefficient of d expressed at the given scale,
// which must not be less than the scale of d.
func (z *bint) alignedCoef(d *Decimal, scale int) {
	z.lsh(&d.coef, scale-d.scale)
}
