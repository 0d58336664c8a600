/*
Package bigdecimal implements exact decimal numbers of arbitrary size.
It is designed for calculations where binary floating-point rounding errors
are not acceptable and where the number of digits is not known in advance.

# Representation

[Decimal] is a struct with two fields:

  - Coefficient: an arbitrary-precision signed integer holding all digits of
    the decimal without the decimal point.
  - Scale: a non-negative integer indicating how many digits of the
    coefficient lie after the decimal point.
    For example, a decimal with a coefficient of 12345 and a scale of 2
    represents the value 123.45.
    Conceptually, the scale can be understood as the inverse of the exponent
    in scientific notation.

The numerical value of a decimal is calculated as:

	Coefficient / 10^Scale

In this approach, the same numeric value can have multiple representations.
For example, 1, 1.0, and 1.00 all represent the same value but have different
scales and coefficients.
[Decimal.Equal] compares numeric values, [Decimal.Identical] compares
representations.

There are no special values: no [NaN], no [Infinity] and no [negative zeros].

# Modes

Most arithmetic methods take a [Mode] argument:

  - [Copy] leaves the operands untouched and returns a new decimal.
  - [InPlace] stores the result in the receiver and returns the receiver,
    avoiding an allocation in tight loops.

Operations never modify their arguments, and on error the receiver is left
unchanged even in [InPlace] mode.
Decimals are not safe for concurrent use when any goroutine mutates them.

# Scales of Results

  - [Decimal.Add], [Decimal.Sub], [Decimal.Mod]:
    the larger of the operand scales. These operations are exact.
  - [Decimal.Mul]: the sum of the operand scales. Exact.
  - [Decimal.Pow]: the scale of the base times the exponent. Exact.
  - [Decimal.Div], [Decimal.Root], [Decimal.Sqrt]:
    the requested precision. The result is rounded.

# Rounding

[Decimal.Div] and [Decimal.Round] accept any [RoundingMode]:

  - [HalfUp]: round to nearest, ties away from zero. This is the default.
  - [Down]: round towards zero.
  - [Up]: round away from zero.
  - [Ceiling]: round towards positive infinity.
  - [Floor]: round towards negative infinity.

Roots are always rounded half-up.
Their results are correctly rounded: an approximation found by Newton's method
is corrected against the exact value before the final rounding.

# Context

A [Context] collects the default precision and rounding mode, together with
the limits of the root solver and an optional [zap.Logger] for tracing it.
[DefaultContext] matches the behaviour of the methods of [Decimal];
[LoadContext] reads a context from environment variables.
A [Pipe] chains several operations over one decimal and reports the first
error at the end.

# Errors

All methods are panic-free, except the Must helpers and [Decimal.Rescale].
Errors wrap one of the exported sentinel errors and can be tested with
[errors.Is]:

  - [ErrInvalidNumber]: a string or value is not a decimal number.
  - [ErrDivisionByZero]: the divisor of [Decimal.Div], [Decimal.QuoRem]
    or [Decimal.Mod] is 0.
  - [ErrInvalidExponent]: [Decimal.Pow] was called with a negative exponent.
  - [ErrInvalidRoot]: a root degree below 2, or an even root of a negative number.
  - [ErrInvalidPrecision]: a negative precision or scale.
  - [ErrRootDidNotConverge]: Newton's method reached its iteration limit.
  - [ErrInvalidRounding]: an unknown rounding mode.

# Encoding

Decimals implement [encoding.TextMarshaler], [json.Marshaler], [yaml.Marshaler],
[toml.Marshaler], [sql.Scanner] and [driver.Valuer], together with the
matching unmarshaling interfaces.
All encodings keep every digit of the scale.

[Infinity]: https://en.wikipedia.org/wiki/Infinity#Computing
[NaN]: https://en.wikipedia.org/wiki/NaN
[negative zeros]: https://en.wikipedia.org/wiki/Signed_zero
[zap.Logger]: https://pkg.go.dev/go.uber.org/zap#Logger
[json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
[yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
[toml.Marshaler]: https://pkg.go.dev/github.com/BurntSushi/toml#Marshaler
[sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
[driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
*/
package bigdecimal
