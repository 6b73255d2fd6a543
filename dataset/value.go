package dataset

import (
	"math"
	"strconv"
)

// Kind discriminates the closed set of cell value variants.
// The variant is decided once, at ingestion time, so downstream code never
// inspects runtime types.
type Kind uint8

const (
	// KindMissing is an absent cell, distinct from NaN.
	KindMissing Kind = iota

	// KindNumber is a numeric cell. The value may be NaN.
	KindNumber

	// KindText is a non-numeric cell.
	KindText
)

// Value is one dataset cell: a number, a text string, or missing.
// Fields are exported for gob serialization; construct values through
// Number, Text, Missing, or ValueOf rather than struct literals.
type Value struct {
	Kind Kind
	Num  float64
	Text string
}

// Number returns a numeric cell value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// Text returns a text cell value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Missing returns an absent cell value.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// ValueOf converts an arbitrary scalar into a Value. Numeric types become
// KindNumber, strings become KindText, and nil or any unrecognized type
// becomes KindMissing.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return Missing()
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case string:
		return Text(x)
	default:
		return Missing()
	}
}

// Float returns the numeric value and true when the cell is a non-NaN number.
func (v Value) Float() (float64, bool) {
	if v.Kind == KindNumber && !math.IsNaN(v.Num) {
		return v.Num, true
	}
	return 0, false
}

// String renders the cell for delimited output. NaN renders as "NaN" and
// missing cells render empty, keeping the two distinguishable in CSV files.
func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		if math.IsNaN(v.Num) {
			return "NaN"
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindText:
		return v.Text
	default:
		return ""
	}
}

// Sanitize returns the cell's number when it is numeric and not NaN, and sub
// otherwise. NaN, missing, and text cells all collapse to the substitute.
func Sanitize(v Value, sub float64) float64 {
	if f, ok := v.Float(); ok {
		return f
	}
	return sub
}
