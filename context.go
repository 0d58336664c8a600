package bigdecimal

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
)

// Context holds the defaults and limits used by the context-aware operations
// [Context.Quo], [Context.Root], [Context.Sqrt] and [Context.Pipe].
//
// A Context can be built with [DefaultContext], loaded from the environment
// with [LoadContext], or decoded from YAML. The zero value is not usable:
// every context-aware operation checks the settings with [Context.Validate]
// and fails if they are not valid.
type Context struct {
	// Precision is the number of digits after the decimal point of quotients and roots.
	Precision int `split_words:"true" default:"20" yaml:"precision"`
	// Rounding is used by Quo.
	Rounding RoundingMode `split_words:"true" default:"half-up" yaml:"rounding"`
	// GuardDigits is the number of extra digits carried by Newton's method.
	GuardDigits int `split_words:"true" default:"8" yaml:"guard_digits"`
	// MaxIterations bounds the number of Newton iterations of a single root.
	MaxIterations int `split_words:"true" default:"10000" yaml:"max_iterations"`
	// ForceNewton disables the integer fast path for square roots.
	ForceNewton bool `split_words:"true" default:"false" yaml:"force_newton"`
	// Logger receives debug traces of the root solver. Nil disables logging.
	Logger *zap.Logger `ignored:"true" yaml:"-"`
}

// DefaultContext returns a new context with default settings:
// a precision of [DefaultPrecision], [HalfUp] rounding, 8 guard digits
// and at most 10000 Newton iterations.
func DefaultContext() *Context {
	return &Context{
		Precision:     DefaultPrecision,
		Rounding:      HalfUp,
		GuardDigits:   8,
		MaxIterations: 10_000,
	}
}

// LoadContext loads a context from environment variables.
// Variable names are the field names in upper snake case prefixed with prefix
// and an underscore, for example DECIMAL_MAX_ITERATIONS for the prefix "decimal".
// Unprefixed names such as PRECISION are not consulted when prefix is not empty.
// Unset variables keep their default values.
func LoadContext(prefix string) (*Context, error) {
	var ctx Context
	if err := envconfig.Process(prefix, &ctx); err != nil {
		return nil, fmt.Errorf("failed to load context: %w", err)
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}
	return &ctx, nil
}

// Validate checks that the context settings are usable.
func (c *Context) Validate() error {
	switch {
	case c.Precision < 0:
		return fmt.Errorf("precision %v: %w", c.Precision, ErrInvalidPrecision)
	case c.GuardDigits < 0:
		return fmt.Errorf("guard digits %v: %w", c.GuardDigits, ErrInvalidPrecision)
	case c.MaxIterations < 1:
		return fmt.Errorf("max iterations %v: %w", c.MaxIterations, ErrInvalidPrecision)
	case !c.Rounding.valid():
		return fmt.Errorf("rounding %v: %w", c.Rounding, ErrInvalidRounding)
	}
	return nil
}

func (c *Context) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Quo returns d / e rounded to the context precision with the context rounding mode.
func (c *Context) Quo(d, e *Decimal) (*Decimal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return d.Div(e, c.Precision, c.Rounding, Copy)
}

// Root returns the n-th root of d rounded half-up to the context precision.
// Also see method [Decimal.Root].
func (c *Context) Root(d *Decimal, n int) (*Decimal, error) {
	return c.root(d, n, c.Precision, Copy)
}

// Sqrt returns the square root of d rounded half-up to the context precision.
func (c *Context) Sqrt(d *Decimal) (*Decimal, error) {
	return c.root(d, 2, c.Precision, Copy)
}
