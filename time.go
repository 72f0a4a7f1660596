package seisutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FractionMode controls how a TimeFormat treats fractional seconds when
// parsing.
type FractionMode int

const (
	// FractionNone parses the input against the layout as-is. Fractional
	// seconds are always zero.
	FractionNone FractionMode = iota

	// FractionOptional accepts a dot-delimited fractional part after the
	// layout-matched prefix. The input and the layout may not contain any
	// other dots.
	FractionOptional

	// FractionRequired demands a dot-delimited fractional part. Parsing
	// fails with a MissingFractionalSecondsError when the input has no dot.
	FractionRequired
)

const (
	// DefaultTimeLayout is the layout used for the integer-second part of
	// time strings throughout the toolkit.
	DefaultTimeLayout = "2006-01-02 15:04:05"

	// DefaultParseFormat is the format accepted by ParseTime when callers
	// have no special needs: optional fractional seconds after the dot.
	DefaultParseFormat = DefaultTimeLayout + ".OPTFRAC"

	// DefaultTimeFormat renders a timestamp with three fractional digits.
	DefaultTimeFormat = DefaultTimeLayout + ".%.3f"
)

// A MissingFractionalSecondsError is returned when a format with
// FractionRequired is applied to an input that contains no dot.
type MissingFractionalSecondsError struct {
	Input  string
	Layout string
}

func (e *MissingFractionalSecondsError) Error() string {
	return "seisutil: missing fractional seconds in " + strconv.Quote(e.Input) +
		" for layout " + strconv.Quote(e.Layout)
}

// A TimeFormat describes how to parse a UTC time string: a Go reference-time
// layout for the integer-second part plus a FractionMode for the fractional
// part. The zero value parses with DefaultTimeLayout semantics disabled; use
// CompileTimeFormat or construct the fields explicitly.
type TimeFormat struct {
	Layout string
	Mode   FractionMode
}

// CompileTimeFormat resolves a format string into an explicit TimeFormat.
// A trailing ".FRAC" marker makes fractional seconds mandatory, a trailing
// ".OPTFRAC" marker makes them optional; anything else is used verbatim as
// the layout. The marker is stripped exactly once, here, so that Parse never
// re-derives it.
func CompileTimeFormat(format string) TimeFormat {
	switch {
	case strings.HasSuffix(format, ".FRAC"):
		return TimeFormat{Layout: strings.TrimSuffix(format, ".FRAC"), Mode: FractionRequired}
	case strings.HasSuffix(format, ".OPTFRAC"):
		return TimeFormat{Layout: strings.TrimSuffix(format, ".OPTFRAC"), Mode: FractionOptional}
	default:
		return TimeFormat{Layout: format, Mode: FractionNone}
	}
}

// Parse converts a string representing UTC time to a floating point epoch
// value (seconds since 1970-01-01 00:00:00 UTC). The fractional part, when
// present, is everything after the last dot; the prefix is parsed against
// the layout with time.Parse. Errors from time.Parse are returned verbatim.
func (f TimeFormat) Parse(s string) (float64, error) {
	var fracsec float64

	switch f.Mode {
	case FractionRequired:
		dot := strings.LastIndexByte(s, '.')
		if dot == -1 {
			return 0, &MissingFractionalSecondsError{Input: s, Layout: f.Layout}
		}
		fs, err := strconv.ParseFloat(s[dot:], 64)
		if err != nil {
			return 0, err
		}
		fracsec = fs
		s = s[:dot]

	case FractionOptional:
		dot := strings.LastIndexByte(s, '.')
		if dot != -1 {
			if len(s[dot:]) > 1 {
				fs, err := strconv.ParseFloat(s[dot:], 64)
				if err != nil {
					return 0, err
				}
				fracsec = fs
			}
			s = s[:dot]
		}
	}

	tm, err := time.Parse(f.Layout, s)
	if err != nil {
		return 0, err
	}
	return float64(tm.Unix()) + fracsec, nil
}

// ParseTime converts a string representing UTC time to a floating point
// epoch value. The format may end in ".FRAC" or ".OPTFRAC"; see
// CompileTimeFormat. Callers parsing many strings with the same format
// should compile once and use TimeFormat.Parse.
func ParseTime(s, format string) (float64, error) {
	return CompileTimeFormat(format).Parse(s)
}

// fracDirective matches a fractional-digits directive of the form %.Nf.
var fracDirective = regexp.MustCompile(`%\.[0-9]f`)

// FormatTime renders a floating point epoch value as a UTC time string.
// The layout follows time.Format semantics and may additionally contain one
// %.Nf directive (N a single digit) which is replaced by the fractional part
// of t rounded to N digits, without the leading "0.". Only the first
// directive is substituted. For example t = 1234567890.12345 with layout
// "%.3f" yields "123".
//
// The integer part is math.Floor(t), so the fractional part is always in
// [0,1), also for negative t. A fraction that rounds up to 1.0 renders as
// all zero digits; it does not carry into the seconds.
func FormatTime(t float64, layout string) string {
	ts := math.Floor(t)
	tfrac := t - ts
	tm := time.Unix(int64(ts), 0).UTC()

	m := fracDirective.FindStringIndex(layout)
	if m == nil {
		return tm.Format(layout)
	}

	digits := int(layout[m[0]+2] - '0')
	frac := strconv.FormatFloat(tfrac, 'f', digits, 64)
	if i := strings.IndexByte(frac, '.'); i >= 0 {
		frac = frac[i+1:]
	} else {
		frac = ""
	}

	// The digit string must not pass through time.Format, where digits are
	// layout elements. Format the surrounding pieces separately instead.
	return tm.Format(layout[:m[0]]) + frac + tm.Format(layout[m[1]:])
}
