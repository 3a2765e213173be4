package tabs

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// ErrNonFinite is reported for NaN and infinite numbers, which have no
// document representation.
var ErrNonFinite = errors.New("non-finite number")

type valueKind uint8

const (
	kindAbsent valueKind = iota
	kindString
	kindNumber
	kindBool
)

// Value is what an extractor returns: a string, a number, a boolean, or
// Absent when the source data is missing.
type Value struct {
	kind valueKind
	str  string
	num  float64
	bit  bool
}

// Absent marks a field whose source data is missing. It renders as "".
var Absent = Value{}

func Str(s string) Value { return Value{kind: kindString, str: s} }

func Num(n float64) Value { return Value{kind: kindNumber, num: n} }

func Int(n int) Value { return Num(float64(n)) }

func Bool(b bool) Value { return Value{kind: kindBool, bit: b} }

// NumPtr returns Absent for a nil pointer.
func NumPtr(n *float64) Value {
	if n == nil {
		return Absent
	}
	return Num(*n)
}

// StrOrAbsent treats the empty string as missing data.
func StrOrAbsent(s string) Value {
	if s == "" {
		return Absent
	}
	return Str(s)
}

func (v Value) IsAbsent() bool { return v.kind == kindAbsent }

// Render is Format with an error for numbers that cannot be rendered.
func (v Value) Render(currency bool) (string, error) {
	if v.kind == kindNumber && !finite(v.num) {
		return "", fmt.Errorf("%w: %v", ErrNonFinite, v.num)
	}
	return v.Format(currency), nil
}

// Format renders the value as a document field string. Currency applies a
// fixed two-decimal rule to numbers and is ignored for other kinds. NaN and
// infinities render as "".
func (v Value) Format(currency bool) string {
	switch v.kind {
	case kindString:
		return v.str
	case kindNumber:
		if !finite(v.num) {
			return ""
		}
		if currency {
			return FormatCurrency(v.num)
		}
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case kindBool:
		return strconv.FormatBool(v.bit)
	default:
		return ""
	}
}

func (v Value) String() string { return v.Format(false) }

// FormatCurrency rounds the shortest decimal form of n half away from zero
// to two decimals, so 1.005 renders as "1.01". NaN and infinities render as "".
func FormatCurrency(n float64) string {
	if !finite(n) {
		return ""
	}
	return decimal.NewFromFloat(n).StringFixed(2)
}

func finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}
