package bigdecimal

import (
	"math/big"
	"testing"
)

func newBintFromString(s string) *bint {
	z := new(bint)
	if !z.setString(s) {
		panic("invalid integer " + s)
	}
	return z
}

func TestBint_Prec(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 1},
		{"-9", 1},
		{"10", 2},
		{"99999", 5},
		{"-100000", 6},
	}
	for _, tt := range tests {
		if got := newBintFromString(tt.x).prec(); got != tt.want {
			t.Errorf("bint(%v).prec() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestBint_Ntz(t *testing.T) {
	tests := []struct {
		x    string
		want int
	}{
		{"0", 0},
		{"1", 0},
		{"10", 1},
		{"-1200", 2},
		{"1000000000000000000000000000000", 30},
	}
	for _, tt := range tests {
		if got := newBintFromString(tt.x).ntz(); got != tt.want {
			t.Errorf("bint(%v).ntz() = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestBint_Pow(t *testing.T) {
	tests := []struct {
		x    string
		n    int
		want string
	}{
		{"2", 0, "1"},
		{"2", 1, "2"},
		{"2", 10, "1024"},
		{"-3", 3, "-27"},
		{"10", 40, "10000000000000000000000000000000000000000"},
	}
	for _, tt := range tests {
		x := newBintFromString(tt.x)
		z := new(bint)
		z.pow(x, tt.n)
		if got := z.string(); got != tt.want {
			t.Errorf("bint(%v).pow(%v) = %v, want %v", tt.x, tt.n, got, tt.want)
		}
		if x.string() != tt.x {
			t.Errorf("bint(%v).pow(%v) modified its argument", tt.x, tt.n)
		}
	}

	// Aliased receiver
	z := newBintFromString("7")
	z.pow(z, 3)
	if got := z.string(); got != "343" {
		t.Errorf("z.pow(z, 3) = %v, want 343", got)
	}
}

func TestBint_Sqrt(t *testing.T) {
	for _, x := range []int64{0, 1, 2, 3, 4, 8, 9, 10, 15, 16, 17, 99, 100, 101, 1 << 40, 1<<40 + 1, 999999999999} {
		z := new(bint)
		z.sqrt((*bint)(big.NewInt(x)))
		want := new(big.Int).Sqrt(big.NewInt(x))
		if z.big().Cmp(want) != 0 {
			t.Errorf("bint(%v).sqrt() = %v, want %v", x, z.string(), want)
		}
	}

	x := newBintFromString("123456789012345678901234567890123456789012345678901234567890")
	z := new(bint)
	z.sqrt(x)
	if want := new(big.Int).Sqrt(x.big()); z.big().Cmp(want) != 0 {
		t.Errorf("bint(%v).sqrt() = %v, want %v", x.string(), z.string(), want)
	}
}

func TestBint_RshRound(t *testing.T) {
	tests := []struct {
		x     string
		shift int
		mode  RoundingMode
		want  string
	}{
		{"1235", 1, HalfUp, "124"},
		{"-1235", 1, HalfUp, "-124"},
		{"1234", 1, HalfUp, "123"},
		{"1239", 1, Down, "123"},
		{"-1231", 1, Floor, "-124"},
		{"-1239", 1, Ceiling, "-123"},
		{"1231", 1, Up, "124"},
		{"1230", 1, Up, "123"},
		{"0", 3, Up, "0"},
		{"12", 0, Up, "12"},
		{"12", 5, Up, "1"},
		{"12", 5, HalfUp, "0"},
		{"50", 2, HalfUp, "1"},
	}
	for _, tt := range tests {
		z := new(bint)
		z.rshRound(newBintFromString(tt.x), tt.shift, tt.mode)
		if got := z.string(); got != tt.want {
			t.Errorf("bint(%v).rshRound(%v, %v) = %v, want %v", tt.x, tt.shift, tt.mode, got, tt.want)
		}
	}
}

func TestPow10Bint(t *testing.T) {
	for _, p := range []int{0, 1, 19, 127, 128, 300} {
		want := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(p)), nil)
		if got := pow10Bint(p); got.big().Cmp(want) != 0 {
			t.Errorf("pow10Bint(%v) = %v, want %v", p, got.string(), want)
		}
	}
}
