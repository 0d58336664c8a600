package bigdecimal

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// The text encodings below write all digits of the scale, so a decoded
// decimal is identical to the encoded one, except that any zero decodes
// with a scale of 0.

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	f, err := Parse(string(text))
	if err != nil {
		return err
	}
	d.Set(f)
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Decimal.Text].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.Text(false)), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers are accepted.
// A JSON null leaves the decimal unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if err := d.UnmarshalText(data); err != nil {
		return fmt.Errorf("decoding JSON %s: %w", data, err)
	}
	return nil
}

// MarshalJSON implements [json.Marshaler] interface.
// The decimal is encoded as a JSON string, so that no JSON decoder silently
// converts it to a binary floating-point number.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	text := d.Text(false)
	b := make([]byte, 0, len(text)+2)
	b = append(b, '"')
	b = append(b, text...)
	b = append(b, '"')
	return b, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler] interface.
// Both plain numbers and quoted strings are accepted.
// A YAML null leaves the decimal unchanged.
//
// [yaml.Unmarshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Unmarshaler
func (d *Decimal) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("decoding YAML at line %v: not a scalar: %w", value.Line, ErrInvalidNumber)
	}
	if value.ShortTag() == "!!null" {
		return nil
	}
	if err := d.UnmarshalText([]byte(value.Value)); err != nil {
		return fmt.Errorf("decoding YAML at line %v: %w", value.Line, err)
	}
	return nil
}

// MarshalYAML implements [yaml.Marshaler] interface.
// The decimal is encoded as a plain numeric scalar.
//
// [yaml.Marshaler]: https://pkg.go.dev/gopkg.in/yaml.v3#Marshaler
func (d Decimal) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Value: d.Text(false),
	}, nil
}

// UnmarshalTOML implements [toml.Unmarshaler] interface.
// TOML strings, integers and floats are accepted.
// Floats are converted with [NewFromFloat64].
//
// [toml.Unmarshaler]: https://pkg.go.dev/github.com/BurntSushi/toml#Unmarshaler
func (d *Decimal) UnmarshalTOML(data any) error {
	var (
		f   *Decimal
		err error
	)
	switch v := data.(type) {
	case string:
		f, err = Parse(v)
	case int64:
		f = NewFromInt64(v)
	case float64:
		f, err = NewFromFloat64(v)
	default:
		err = fmt.Errorf("unsupported TOML type %T: %w", data, ErrInvalidNumber)
	}
	if err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}
	d.Set(f)
	return nil
}

// MarshalTOML implements [toml.Marshaler] interface.
// The decimal is encoded as a TOML string, since TOML numbers are limited to
// 64-bit integers and floats.
//
// [toml.Marshaler]: https://pkg.go.dev/github.com/BurntSushi/toml#Marshaler
func (d Decimal) MarshalTOML() ([]byte, error) {
	return []byte(strconv.Quote(d.Text(false))), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings, byte slices, int64 and float64 values are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (d *Decimal) Scan(value any) error {
	var (
		f   *Decimal
		err error
	)
	switch value := value.(type) {
	case string:
		f, err = Parse(value)
	case []byte:
		f, err = Parse(string(bytes.TrimSpace(value)))
	case int64:
		f = NewFromInt64(value)
	case float64:
		f, err = NewFromFloat64(value)
	default:
		err = fmt.Errorf("%T: %w", value, ErrInvalidNumber)
	}
	if err != nil {
		return fmt.Errorf("converting from %T: %w", value, err)
	}
	d.Set(f)
	return nil
}

// Value implements the [driver.Valuer] interface.
// The decimal is passed to the driver as a string.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Decimal) Value() (driver.Value, error) {
	return d.Text(false), nil
}
