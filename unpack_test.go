package seisutil

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func ExampleUnpack() {
	values, _ := Unpack("A4,i2,f5?", "ABCD421.50")
	fmt.Println(values)
	// Output:
	// [ABCD 42 1.5]
}

func upperField(s string) (any, error) {
	return strings.ToUpper(s), nil
}

func TestUnpack(t *testing.T) {
	for _, tt := range []struct {
		name      string
		format    string
		line      string
		callbacks []ConvertFunc
		expected  []any
		shouldErr bool
	}{
		{"mixed types", "A4,i2,f5?", "ABCD421.50", nil, []any{"ABCD", 42, 1.5}, false},
		{"blank optional", "A4,i2,f5?", "ABCD42     ", nil, []any{"ABCD", 42, nil}, false},
		{"trimmed string", "a6,A4", "  ab  cd  ", nil, []any{"ab", "cd  "}, false},
		{"skip field", "A2,x3,i3", "abXXX123", nil, []any{"ab", 123}, false},
		{"short line clamps", "A4,a4", "ABCDEF", nil, []any{"ABCD", "EF"}, false},
		{"line exhausted", "A4,i2,A3", "ABCD", nil, nil, true},
		{"blank optionals on short line", "A4,i2?,A3?", "ABCD", nil, []any{"ABCD", nil, nil}, false},
		{"whitespace padded numerics", "i4,f6", "  7   1.25", nil, []any{7, 1.25}, false},
		{"conversion failure", "i3", "abc", nil, nil, true},
		{"unknown field type", "z3", "abc", nil, nil, true},
		{"missing width", "i", "abc", nil, nil, true},
		{"bad width", "ix", "abc", nil, nil, true},
		{"callback", "@3", "xyz", []ConvertFunc{upperField}, []any{"XYZ"}, false},
		{"callback exhausted", "@3", "xyz", nil, nil, true},
		{"callbacks in field order", "@2,x1,@2", "ab-cd",
			[]ConvertFunc{
				func(s string) (any, error) { return "first:" + s, nil },
				func(s string) (any, error) { return "second:" + s, nil },
			},
			[]any{"first:ab", "second:cd"}, false},
		{"blank optional callback still consumed", "@2?,@2", "  AB",
			[]ConvertFunc{
				func(s string) (any, error) { return "first", nil },
				upperField,
			},
			[]any{nil, "AB"}, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Unpack(tt.format, tt.line, tt.callbacks...)
			if tt.shouldErr != (err != nil) {
				t.Fatalf("Unpack() err want %v, have %v (%v)", tt.shouldErr, err != nil, err)
			}
			if !tt.shouldErr && !reflect.DeepEqual(values, tt.expected) {
				t.Errorf("Unpack() want %#v, have %#v", tt.expected, values)
			}
		})
	}

	t.Run("conversion error identifies field and range", func(t *testing.T) {
		_, err := Unpack("A2,i3", "ab 1c")
		var fce *FieldConversionError
		if !errors.As(err, &fce) {
			t.Fatalf("Unpack() want *FieldConversionError, have %T (%v)", err, err)
		}
		if fce.Field != 1 || fce.Start != 2 || fce.End != 5 {
			t.Errorf("FieldConversionError want field 1 [2:5], have field %d [%d:%d]", fce.Field, fce.Start, fce.End)
		}
		if fce.Cause == nil {
			t.Error("FieldConversionError.Cause is nil")
		}
	})

	t.Run("callback exhausted error identifies field", func(t *testing.T) {
		_, err := Unpack("@2,@2", "abcd", func(s string) (any, error) { return s, nil })
		var cee *CallbackExhaustedError
		if !errors.As(err, &cee) {
			t.Fatalf("Unpack() want *CallbackExhaustedError, have %T (%v)", err, err)
		}
		if cee.Field != 1 {
			t.Errorf("CallbackExhaustedError.Field want 1, have %d", cee.Field)
		}
	})

	t.Run("unknown field type error", func(t *testing.T) {
		_, err := Unpack("A2,Q4", "abcdef")
		var ufe *UnknownFieldTypeError
		if !errors.As(err, &ufe) {
			t.Fatalf("Unpack() want *UnknownFieldTypeError, have %T (%v)", err, err)
		}
		if ufe.Type != 'Q' {
			t.Errorf("UnknownFieldTypeError.Type want 'Q', have %q", ufe.Type)
		}
	})
}

// The cursor advances by exactly the declared width for every field,
// independent of type and optionality. Each field of the composed format
// must therefore see exactly its own slice of the line.
func TestUnpackCursorAdvance(t *testing.T) {
	probes := make([]string, 0, 4)
	probe := func(s string) (any, error) {
		probes = append(probes, s)
		return s, nil
	}

	line := "0123456789AB"
	values, err := Unpack("@2,x3,@1,@4?,@2", line, probe, probe, probe, probe)
	if err != nil {
		t.Fatalf("Unpack() err %v", err)
	}

	expectedProbes := []string{"01", "5", "6789", "AB"}
	if !reflect.DeepEqual(probes, expectedProbes) {
		t.Errorf("probe slices want %q, have %q", expectedProbes, probes)
	}
	if len(values) != 4 {
		t.Errorf("Unpack() value count want 4, have %d", len(values))
	}
}

func TestParseFieldFormat(t *testing.T) {
	for _, tt := range []struct {
		name      string
		format    string
		expected  []FieldSpec
		shouldErr bool
	}{
		{"single", "a5", []FieldSpec{{'a', 5, false}}, false},
		{"optional", "f10?", []FieldSpec{{'f', 10, true}}, false},
		{"multi", "A4,x2,i3?", []FieldSpec{{'A', 4, false}, {'x', 2, false}, {'i', 3, true}}, false},
		{"wide", "A120", []FieldSpec{{'A', 120, false}}, false},
		{"empty descriptor", "A4,,i3", nil, true},
		{"zero width", "A0", nil, true},
		{"negative width", "A-4", nil, true},
		{"unknown type", "b5", nil, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := ParseFieldFormat(tt.format)
			if tt.shouldErr != (err != nil) {
				t.Fatalf("ParseFieldFormat() err want %v, have %v (%v)", tt.shouldErr, err != nil, err)
			}
			if !tt.shouldErr && !reflect.DeepEqual(specs, tt.expected) {
				t.Errorf("ParseFieldFormat() want %+v, have %+v", tt.expected, specs)
			}
		})
	}
}
