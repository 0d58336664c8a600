package bigdecimal

import (
	"math/big"
	"sync"
)

// bint (Big INTeger) is a wrapper around big.Int.
// It holds the signed magnitude of a decimal.
type bint big.Int

// bpow10 is a cache of powers of 10, where bpow10[x] = 10^x.
// Elements of the cache must never be modified.
var bpow10 = func() [128]*bint {
	var cache [128]*bint
	ten := big.NewInt(10)
	cache[0] = (*bint)(big.NewInt(1))
	for i := 1; i < len(cache); i++ {
		cache[i] = (*bint)(new(big.Int).Mul((*big.Int)(cache[i-1]), ten))
	}
	return cache
}()

// pow10Bint returns 10^power, using the cache when possible.
// The result must be treated as read-only.
func pow10Bint(power int) *bint {
	if power < len(bpow10) {
		return bpow10[power]
	}
	z := new(bint)
	z.pow10(power)
	return z
}

func (z *bint) big() *big.Int {
	return (*big.Int)(z)
}

func (z *bint) sign() int {
	return z.big().Sign()
}

func (z *bint) cmp(x *bint) int {
	return z.big().Cmp(x.big())
}

// cmpAbs compares |z| and |x|.
func (z *bint) cmpAbs(x *bint) int {
	return z.big().CmpAbs(x.big())
}

func (z *bint) string() string {
	return z.big().String()
}

func (z *bint) setBint(x *bint) {
	z.big().Set(x.big())
}

func (z *bint) setBig(x *big.Int) {
	z.big().Set(x)
}

func (z *bint) setInt64(x int64) {
	z.big().SetInt64(x)
}

func (z *bint) setUint64(x uint64) {
	z.big().SetUint64(x)
}

// setString parses a base-10 integer with an optional leading minus sign.
func (z *bint) setString(s string) bool {
	_, ok := z.big().SetString(s, 10)
	return ok
}

// add calculates z = x + y.
func (z *bint) add(x, y *bint) {
	z.big().Add(x.big(), y.big())
}

// sub calculates z = x - y.
func (z *bint) sub(x, y *bint) {
	z.big().Sub(x.big(), y.big())
}

// neg calculates z = -x.
func (z *bint) neg(x *bint) {
	z.big().Neg(x.big())
}

// abs calculates z = |x|.
func (z *bint) abs(x *bint) {
	z.big().Abs(x.big())
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	z.big().Mul(x.big(), y.big())
}

// pow calculates z = x^n by repeated squaring.
// If n is negative, the result is unpredictable.
func (z *bint) pow(x *bint, n int) {
	b := getBint()
	defer putBint(b)
	b.setBint(x)
	z.setInt64(1)
	for n > 0 {
		if n&1 == 1 {
			z.mul(z, b)
		}
		n >>= 1
		if n > 0 {
			b.mul(b, b)
		}
	}
}

// pow10 calculates z = 10^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow10(power int) {
	if power < len(bpow10) {
		z.setBint(bpow10[power])
		return
	}
	z.big().Exp(big.NewInt(10), big.NewInt(int64(power)), nil)
}

// quoRem calculates z and r such that x = z * y + r,
// where z is truncated towards zero and r has the sign of x.
func (z *bint) quoRem(x, y, r *bint) {
	z.big().QuoRem(x.big(), y.big(), r.big())
}

// lsh (Left Shift) calculates z = x * 10^shift.
// If shift is not positive, z = x.
func (z *bint) lsh(x *bint, shift int) {
	if shift <= 0 {
		z.setBint(x)
		return
	}
	z.mul(x, pow10Bint(shift))
}

// rshDown (Right Shift) calculates z = x / 10^shift and rounds
// result towards zero.
func (z *bint) rshDown(x *bint, shift int) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	r := getBint()
	defer putBint(r)
	z.quoRem(x, pow10Bint(shift), r)
}

// rshRound (Right Shift) calculates z = x / 10^shift and rounds result
// using the given rounding mode.
func (z *bint) rshRound(x *bint, shift int, mode RoundingMode) {
	switch {
	case x.sign() == 0:
		z.setInt64(0)
		return
	case shift <= 0:
		z.setBint(x)
		return
	}
	y := pow10Bint(shift)
	r := getBint()
	defer putBint(r)
	z.quoRem(x, y, r)
	z.adjustQuo(r, y, mode)
}

// prec returns length of |z| in decimal digits.
// prec assumes that 0 has no digits.
func (z *bint) prec() int {
	if z.sign() == 0 {
		return 0
	}
	if z.cmpAbs(bpow10[len(bpow10)-1]) >= 0 {
		s := z.string()
		if s[0] == '-' {
			return len(s) - 1
		}
		return len(s)
	}
	left, right := 0, len(bpow10)
	for left < right {
		mid := (left + right) / 2
		if z.cmpAbs(bpow10[mid]) < 0 {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// ntz returns number of trailing zeros in z.
// ntz assumes that 0 has no trailing zeros.
func (z *bint) ntz() int {
	if z.sign() == 0 {
		return 0
	}
	q, r := getBint(), getBint()
	defer putBint(q)
	defer putBint(r)
	q.setBint(z)
	n := 0
	for {
		r.big().Rem(q.big(), bpow10[1].big())
		if r.sign() != 0 {
			return n
		}
		q.big().Quo(q.big(), bpow10[1].big())
		n++
	}
}

// bitLen returns the length of |z| in bits.
func (z *bint) bitLen() int {
	return z.big().BitLen()
}

// sqrt calculates z = ⌊√x⌋ using Newton's method on integers.
// The initial guess 2^⌈bitLen(x)/2⌉ is never below the root, so the
// iterates decrease monotonically until they reach it.
// If x is negative, the result is unpredictable.
func (z *bint) sqrt(x *bint) {
	if x.cmp(bpow10[0]) <= 0 {
		z.setBint(x)
		return
	}
	x0, x1, t := getBint(), getBint(), getBint()
	defer putBint(x0)
	defer putBint(x1)
	defer putBint(t)
	x0.big().Lsh(big.NewInt(1), uint((x.bitLen()+1)>>1))
	for {
		t.big().Quo(x.big(), x0.big())
		x1.add(x0, t)
		x1.big().Rsh(x1.big(), 1)
		if x1.cmp(x0) >= 0 {
			break
		}
		x0.setBint(x1)
	}
	z.setBint(x0)
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
