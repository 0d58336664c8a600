package bigdecimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultContext(t *testing.T) {
	ctx := DefaultContext()
	assert.Equal(t, DefaultPrecision, ctx.Precision)
	assert.Equal(t, HalfUp, ctx.Rounding)
	assert.Equal(t, 8, ctx.GuardDigits)
	assert.Equal(t, 10_000, ctx.MaxIterations)
	assert.False(t, ctx.ForceNewton)
	assert.Nil(t, ctx.Logger)
	assert.NoError(t, ctx.Validate())
	assert.NotNil(t, ctx.logger())
}

func TestLoadContext(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ctx, err := LoadContext("bigdecimal_test_unset")
		require.NoError(t, err)
		assert.Equal(t, DefaultContext(), ctx)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("DECIMAL_PRECISION", "5")
		t.Setenv("DECIMAL_ROUNDING", "floor")
		t.Setenv("DECIMAL_GUARD_DIGITS", "3")
		t.Setenv("DECIMAL_MAX_ITERATIONS", "50")
		t.Setenv("DECIMAL_FORCE_NEWTON", "true")

		ctx, err := LoadContext("decimal")
		require.NoError(t, err)
		assert.Equal(t, 5, ctx.Precision)
		assert.Equal(t, Floor, ctx.Rounding)
		assert.Equal(t, 3, ctx.GuardDigits)
		assert.Equal(t, 50, ctx.MaxIterations)
		assert.True(t, ctx.ForceNewton)

		got, err := ctx.Quo(MustParse("-10"), MustParse("3"))
		require.NoError(t, err)
		assert.Equal(t, "-3.33334", got.Text(false))

		got, err = ctx.Sqrt(MustParse("2"))
		require.NoError(t, err)
		assert.Equal(t, "1.41421", got.Text(false))
	})

	t.Run("unprefixed", func(t *testing.T) {
		t.Setenv("PRECISION", "3")
		t.Setenv("ROUNDING", "floor")
		t.Setenv("GUARD_DIGITS", "-1")
		ctx, err := LoadContext("decimal")
		require.NoError(t, err)
		assert.Equal(t, DefaultContext(), ctx)
	})

	t.Run("invalid rounding", func(t *testing.T) {
		t.Setenv("DECIMAL_ROUNDING", "sideways")
		_, err := LoadContext("decimal")
		assert.Error(t, err)
	})

	t.Run("invalid precision", func(t *testing.T) {
		t.Setenv("DECIMAL_PRECISION", "-1")
		_, err := LoadContext("decimal")
		assert.ErrorIs(t, err, ErrInvalidPrecision)
	})

	t.Run("invalid number", func(t *testing.T) {
		t.Setenv("DECIMAL_MAX_ITERATIONS", "many")
		_, err := LoadContext("decimal")
		assert.Error(t, err)
	})
}

func TestContext_Validate(t *testing.T) {
	tests := map[string]struct {
		modify func(*Context)
		want   error
	}{
		"precision":      {func(c *Context) { c.Precision = -1 }, ErrInvalidPrecision},
		"guard digits":   {func(c *Context) { c.GuardDigits = -1 }, ErrInvalidPrecision},
		"max iterations": {func(c *Context) { c.MaxIterations = 0 }, ErrInvalidPrecision},
		"rounding":       {func(c *Context) { c.Rounding = RoundingMode(42) }, ErrInvalidRounding},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx := DefaultContext()
			tt.modify(ctx)
			assert.ErrorIs(t, ctx.Validate(), tt.want)
		})
	}
}

func TestContext_Invalid(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		var ctx Context
		d := MustParse("8")

		_, err := ctx.Root(d, 3)
		assert.ErrorIs(t, err, ErrInvalidPrecision)
		_, err = ctx.Sqrt(d)
		assert.ErrorIs(t, err, ErrInvalidPrecision)
		_, err = ctx.Quo(d, MustParse("3"))
		assert.ErrorIs(t, err, ErrInvalidPrecision)
		assert.Equal(t, "8", d.String())
	})

	t.Run("negative guard digits", func(t *testing.T) {
		ctx := DefaultContext()
		ctx.GuardDigits = -5
		_, err := ctx.Root(MustParse("123.45"), 3)
		assert.ErrorIs(t, err, ErrInvalidPrecision)
	})

	t.Run("invalid rounding", func(t *testing.T) {
		ctx := DefaultContext()
		ctx.Rounding = RoundingMode(42)
		_, err := ctx.Quo(MustParse("1"), MustParse("3"))
		assert.ErrorIs(t, err, ErrInvalidRounding)
	})
}

func TestContext_YAML(t *testing.T) {
	t.Run("decode", func(t *testing.T) {
		data := []byte("precision: 4\nrounding: up\nmax_iterations: 100\n")
		ctx := DefaultContext()
		require.NoError(t, yaml.Unmarshal(data, ctx))
		require.NoError(t, ctx.Validate())

		assert.Equal(t, 4, ctx.Precision)
		assert.Equal(t, Up, ctx.Rounding)
		assert.Equal(t, 8, ctx.GuardDigits)
		assert.Equal(t, 100, ctx.MaxIterations)

		got, err := ctx.Quo(MustParse("10"), MustParse("3"))
		require.NoError(t, err)
		assert.Equal(t, "3.3334", got.Text(false))
	})

	t.Run("encode", func(t *testing.T) {
		ctx := DefaultContext()
		ctx.Rounding = Ceiling
		data, err := yaml.Marshal(ctx)
		require.NoError(t, err)
		assert.Contains(t, string(data), "rounding: ceiling\n")
		assert.Contains(t, string(data), "precision: 20\n")
		assert.NotContains(t, string(data), "logger")
	})

	t.Run("invalid rounding", func(t *testing.T) {
		ctx := DefaultContext()
		assert.ErrorIs(t, yaml.Unmarshal([]byte("rounding: sideways\n"), ctx), ErrInvalidRounding)
	})
}
