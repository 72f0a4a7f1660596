package seisutil

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A ConvertFunc converts the raw text of a '@' field into a value.
type ConvertFunc func(s string) (any, error)

// A FieldSpec describes a single fixed-width field: its type code, its
// width in characters and whether blank content maps to nil instead of a
// conversion attempt.
//
// The type codes are:
//
//	A  string, full field width
//	a  string, surrounding whitespace removed
//	i  integer value
//	f  floating point value
//	@  caller-supplied conversion
//	x  skip, produces no output value
type FieldSpec struct {
	Type     byte
	Width    int
	Optional bool
}

// An UnknownFieldTypeError describes a field descriptor with an
// unrecognized type code.
type UnknownFieldTypeError struct {
	Type byte
}

func (e *UnknownFieldTypeError) Error() string {
	return "seisutil: unknown field type " + strconv.Quote(string(e.Type))
}

// A CallbackExhaustedError is returned when a '@' field has no conversion
// callback left to consume.
type CallbackExhaustedError struct {
	Field int
}

func (e *CallbackExhaustedError) Error() string {
	return "seisutil: no conversion callback left for '@' field " + strconv.Itoa(e.Field)
}

// A FieldConversionError describes a field whose extracted text could not
// be converted to its declared type.
type FieldConversionError struct {
	Field      int    // index of the field in the format, counting skip fields
	Start, End int    // character range of the field within the line
	Line       string // the offending input line
	Cause      error  // original conversion error
}

func (e *FieldConversionError) Error() string {
	s := "seisutil: cannot convert field " + strconv.Itoa(e.Field) +
		" [" + strconv.Itoa(e.Start) + ":" + strconv.Itoa(e.End) + "]" +
		" of line " + strconv.Quote(e.Line)
	if e.Cause != nil {
		return s + ": " + e.Cause.Error()
	}
	return s
}

func (e *FieldConversionError) Unwrap() error { return e.Cause }

// parseFieldSpec parses a single <type><width>[?] descriptor.
func parseFieldSpec(form string) (FieldSpec, error) {
	var spec FieldSpec
	if strings.HasSuffix(form, "?") {
		spec.Optional = true
		form = strings.TrimSuffix(form, "?")
	}
	if len(form) < 2 {
		return spec, errors.Errorf("seisutil: malformed field descriptor %q", form)
	}

	spec.Type = form[0]
	switch spec.Type {
	case 'A', 'a', 'i', 'f', '@', 'x':
	default:
		return spec, &UnknownFieldTypeError{Type: spec.Type}
	}

	w, err := strconv.Atoi(form[1:])
	if err != nil || w < 1 {
		return spec, errors.Errorf("seisutil: invalid width in field descriptor %q", form)
	}
	spec.Width = w
	return spec, nil
}

// ParseFieldFormat parses a comma-separated list of field descriptors, for
// example "a5,i4,f8,x2,A4?". Malformed descriptors and unknown type codes
// are programmer errors and fail immediately.
func ParseFieldFormat(format string) ([]FieldSpec, error) {
	forms := strings.Split(format, ",")
	specs := make([]FieldSpec, 0, len(forms))
	for _, form := range forms {
		spec, err := parseFieldSpec(form)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// Unpack decodes a fixed-width formatted line, as produced by many fortran
// codes, into a sequence of typed values. The format is a comma-separated
// list of field descriptors (see FieldSpec); callbacks supplies the
// conversions for '@' fields and is consumed in left-to-right field order.
//
// A field marked optional yields nil when its content is blank. Skip fields
// produce no value but still advance the cursor. A line shorter than the
// cumulative field widths yields shorter or empty substrings for the
// trailing fields; this is not an error.
//
// Either the full value sequence is returned or an error; there are no
// partial results.
func Unpack(format, line string, callbacks ...ConvertFunc) ([]any, error) {
	specs, err := ParseFieldFormat(format)
	if err != nil {
		return nil, err
	}

	values := make([]any, 0, len(specs))
	pos := 0
	next := 0 // index of the next callback to consume
	for i, spec := range specs {
		raw := clampSlice(line, pos, pos+spec.Width)
		pos += spec.Width

		var conv ConvertFunc
		switch spec.Type {
		case 'x':
			continue
		case 'A':
			conv = rawField
		case 'a':
			conv = trimmedField
		case 'i':
			conv = intField
		case 'f':
			conv = floatField
		case '@':
			if next >= len(callbacks) {
				return nil, &CallbackExhaustedError{Field: i}
			}
			conv = callbacks[next]
			next++
		}

		if spec.Optional && strings.TrimSpace(raw) == "" {
			values = append(values, nil)
			continue
		}

		v, err := conv(raw)
		if err != nil {
			return nil, &FieldConversionError{
				Field: i,
				Start: pos - spec.Width,
				End:   pos,
				Line:  line,
				Cause: err,
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// clampSlice is s[lo:hi] with both bounds clamped to len(s).
func clampSlice(s string, lo, hi int) string {
	if lo > len(s) {
		lo = len(s)
	}
	if hi > len(s) {
		hi = len(s)
	}
	return s[lo:hi]
}

func rawField(s string) (any, error) {
	return s, nil
}

func trimmedField(s string) (any, error) {
	return strings.TrimSpace(s), nil
}

// Numeric fields tolerate surrounding whitespace: fixed-width numeric
// columns are routinely space padded.

func intField(s string) (any, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

func floatField(s string) (any, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
