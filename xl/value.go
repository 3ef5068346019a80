package xl

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// ErrValue reports a Go value that has no cell representation.
var ErrValue = errors.New("unsupported cell value")

// ValueKind tags the content of a Value.
type ValueKind uint8

const (
	KindUnset ValueKind = iota // zero Value, nothing assigned yet
	KindEmpty
	KindString
	KindNumber
	KindBool
	KindDate
	KindTime
	KindFormula
	KindError
)

// Value is the content of a cell. Build one with the constructors below or
// with ValueOf at an API boundary.
type Value struct {
	kind ValueKind
	s    string // string, formula or error text
	n    float64
	b    bool
	t    time.Time
	d    time.Duration
}

func EmptyValue() Value               { return Value{kind: KindEmpty} }
func StringValue(s string) Value      { return Value{kind: KindString, s: s} }
func NumberValue(n float64) Value     { return Value{kind: KindNumber, n: n} }
func IntValue(n int64) Value          { return Value{kind: KindNumber, n: float64(n)} }
func BoolValue(b bool) Value          { return Value{kind: KindBool, b: b} }
func DateValue(t time.Time) Value     { return Value{kind: KindDate, t: t} }
func ErrorValue(code string) Value    { return Value{kind: KindError, s: code} }
func FormulaValue(f string) Value     { return Value{kind: KindFormula, s: f} }
func TimeValue(d time.Duration) Value { return Value{kind: KindTime, d: d} }

// ValueOf converts a Go value of one of the accepted types: nil, string,
// bool, signed and unsigned integers, float32, float64, time.Time,
// time.Duration and Value.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return EmptyValue(), nil
	case Value:
		return x, nil
	case string:
		return StringValue(x), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return NumberValue(float64(x)), nil
	case uint8:
		return NumberValue(float64(x)), nil
	case uint16:
		return NumberValue(float64(x)), nil
	case uint32:
		return NumberValue(float64(x)), nil
	case uint64:
		return NumberValue(float64(x)), nil
	case float32:
		return NumberValue(float64(x)), nil
	case float64:
		return NumberValue(x), nil
	case time.Time:
		return DateValue(x), nil
	case time.Duration:
		return TimeValue(x), nil
	}
	return Value{}, fmt.Errorf("%w: %T", ErrValue, v)
}

func (v Value) Kind() ValueKind { return v.kind }

// Type is the cell type the value is written as.
func (v Value) Type() CellType {
	switch v.kind {
	case KindEmpty:
		return CellTypeEmpty
	case KindString:
		return CellTypeSharedString
	case KindNumber:
		return CellTypeNumber
	case KindBool:
		return CellTypeBool
	case KindDate:
		return CellTypeDate
	case KindTime:
		return CellTypeTime
	case KindFormula:
		return CellTypeFormula
	case KindError:
		return CellTypeError
	}
	return CellTypeUnset
}

// Text returns the string, formula or error text of v.
func (v Value) Text() string { return v.s }

func (v Value) Number() float64         { return v.n }
func (v Value) Bool() bool              { return v.b }
func (v Value) Time() time.Time         { return v.t }
func (v Value) Duration() time.Duration { return v.d }

// String renders v for display and diagnostics.
func (v Value) String() string {
	switch v.kind {
	case KindString, KindError:
		return v.s
	case KindFormula:
		return "=" + v.s
	case KindNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "TRUE"
		}
		return "FALSE"
	case KindDate:
		return v.t.Format(time.RFC3339)
	case KindTime:
		return v.d.String()
	}
	return ""
}

// excelEpoch is day zero of the 1900 date system, shifted to absorb the
// nonexistent 1900-02-29.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

var leapBugEnd = time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)
var firstDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// serial returns the numeric cell content of number, date and time
// values.
func (v Value) serial() (float64, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.n) || math.IsInf(v.n, 0) {
			return 0, fmt.Errorf("%w: number %v", ErrValue, v.n)
		}
		return v.n, nil
	case KindDate:
		// wall clock in the value's own location
		y, m, d := v.t.Date()
		t := time.Date(y, m, d, v.t.Hour(), v.t.Minute(), v.t.Second(), v.t.Nanosecond(), time.UTC)
		if t.Before(firstDate) {
			return 0, fmt.Errorf("%w: date %s precedes 1900-01-01", ErrRange, v.t.Format(time.DateOnly))
		}
		secs := float64(t.Unix()-excelEpoch.Unix()) + float64(t.Nanosecond())/1e9
		days := secs / 86400
		if t.Before(leapBugEnd) {
			days--
		}
		return days, nil
	case KindTime:
		if v.d < 0 {
			return 0, fmt.Errorf("%w: negative time %s", ErrRange, v.d)
		}
		return v.d.Hours() / 24, nil
	}
	return 0, fmt.Errorf("%w: %d is not numeric", ErrValue, v.kind)
}
