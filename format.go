package bigdecimal

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -123.456
//	%f:     -123.4560
//	%q:    "-123.456"
//
// The %s, %v and %q verbs remove trailing zeros after the decimal point,
// like [Decimal.String]. The %f verb keeps all digits of the scale.
//
// The following format flags can be used with all verbs: '+', ' ', '0', '-'.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the actual scale of the decimal;
// a smaller precision rounds the decimal half-up, a larger one pads it with zeros.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d Decimal) Format(state fmt.State, verb rune) {
	// Rescaling
	var text string
	switch verb {
	case 'f', 'F':
		f := &d
		if p, ok := state.Precision(); ok {
			f = f.Rescale(p)
		}
		text = f.Text(false)
	default:
		text = d.Text(true)
	}

	// Arithmetic sign
	rsign := ""
	switch {
	case text[0] == '-':
		rsign = "-"
		text = text[1:]
	case state.Flag('+'):
		rsign = "+"
	case state.Flag(' '):
		rsign = " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	width := len(quote) + len(rsign) + len(text) + len(quote)
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	var buf strings.Builder
	buf.Grow(width)
	buf.WriteString(strings.Repeat(" ", lspaces))
	buf.WriteString(quote)
	buf.WriteString(rsign)
	buf.WriteString(strings.Repeat("0", lzeroes))
	buf.WriteString(text)
	buf.WriteString(quote)
	buf.WriteString(strings.Repeat(" ", tspaces))

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F':
		fmt.Fprint(state, buf.String())
	default:
		fmt.Fprintf(state, "%%!%c(bigdecimal.Decimal=%s)", verb, buf.String())
	}
}

// FormatOptions controls the human-readable output of [Decimal.FormatWith].
type FormatOptions struct {
	// DecimalPlaces is the exact number of digits after the decimal separator.
	// Nil keeps the digits of the decimal with trailing zeros removed.
	// Use [Places] to set it.
	DecimalPlaces *int
	// Rounding is applied when DecimalPlaces discards digits.
	Rounding RoundingMode
	// ThousandsSeparator is inserted between groups of three integer digits.
	// Empty disables grouping.
	ThousandsSeparator string
	// DecimalSeparator separates the integer and fractional digits.
	// Empty means ".".
	DecimalSeparator string
}

// DefaultFormat is the formatting used when no options are given:
// no grouping, a "." decimal separator and trailing zeros removed.
var DefaultFormat = FormatOptions{}

// Places returns a pointer to n for use in [FormatOptions].
func Places(n int) *int {
	return &n
}

// FormatWith returns a human-readable representation of d.
// Unlike [Decimal.Text], the output may contain group separators and a custom
// decimal separator, so it is not intended to be parsed back.
// The decimal itself is never modified.
//
// FormatWith returns an error if the number of decimal places is negative or
// the rounding mode is unknown.
func (d *Decimal) FormatWith(opts FormatOptions) (string, error) {
	// Rounding
	var text string
	if opts.DecimalPlaces == nil {
		text = d.Text(true)
	} else {
		f, err := d.Round(*opts.DecimalPlaces, opts.Rounding)
		if err != nil {
			return "", fmt.Errorf("formatting %v: %w", d, err)
		}
		text = f.Text(false)
	}

	// Sign, integer and fractional digits
	sign := ""
	if text[0] == '-' {
		sign = "-"
		text = text[1:]
	}
	integer, fraction, _ := strings.Cut(text, ".")

	var buf strings.Builder
	buf.WriteString(sign)

	// Grouping
	if opts.ThousandsSeparator == "" || len(integer) <= 3 {
		buf.WriteString(integer)
	} else {
		head := len(integer) % 3
		if head > 0 {
			buf.WriteString(integer[:head])
		}
		for i := head; i < len(integer); i += 3 {
			if i > 0 {
				buf.WriteString(opts.ThousandsSeparator)
			}
			buf.WriteString(integer[i : i+3])
		}
	}

	// Fraction
	if fraction != "" {
		sep := opts.DecimalSeparator
		if sep == "" {
			sep = "."
		}
		buf.WriteString(sep)
		buf.WriteString(fraction)
	}
	return buf.String(), nil
}

// localeSample is formatted with a locale to discover its separators.
const localeSample = 1234567.5

// LocaleFormat returns formatting options with the group and decimal
// separators of the given language, taken from the CLDR data in
// [golang.org/x/text]. Grouping is always done by three digits.
//
//	opts := bigdecimal.LocaleFormat(language.German)
//	s, _ := d.FormatWith(opts) // 1.234.567,89
func LocaleFormat(tag language.Tag) FormatOptions {
	p := message.NewPrinter(tag)
	sample := p.Sprintf("%v", number.Decimal(localeSample))

	// Non-digit runs of the sample are the separators
	var seps []string
	var run strings.Builder
	for _, r := range sample {
		if unicode.IsDigit(r) {
			if run.Len() > 0 {
				seps = append(seps, run.String())
				run.Reset()
			}
			continue
		}
		run.WriteRune(r)
	}
	if run.Len() > 0 {
		seps = append(seps, run.String())
	}

	opts := FormatOptions{DecimalSeparator: "."}
	switch len(seps) {
	case 0:
	case 1:
		opts.DecimalSeparator = seps[0]
	default:
		opts.ThousandsSeparator = seps[0]
		opts.DecimalSeparator = seps[len(seps)-1]
	}
	return opts
}
