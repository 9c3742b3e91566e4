// Package models defines data structures for workbook profiling.
package models

import (
	"math"
	"strconv"
	"time"
)

// Kind is the variant tag of a cell value.
type Kind uint8

const (
	// KindMissing marks an absent cell or a missing-value token.
	KindMissing Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindBool is a boolean cell.
	KindBool
	// KindDate is a date or date-time cell.
	KindDate
)

// DateLayout is the layout used to render date values.
const DateLayout = "2006-01-02 15:04:05"

var kindNames = [...]string{"missing", "text", "number", "bool", "date"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single cell value.
type Value struct {
	// Kind is the variant tag.
	Kind Kind
	// Str holds the payload of text values.
	Str string
	// Num holds the payload of number values.
	Num float64
	// Integral reports whether Num has no fractional part.
	Integral bool
	// Bool holds the payload of bool values.
	Bool bool
	// Time holds the payload of date values.
	Time time.Time
}

// Missing returns a missing value.
func Missing() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Str: s} }

// Number returns a numeric value.
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f, Integral: f == math.Trunc(f) && !math.IsInf(f, 0)}
}

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// Date returns a date value.
func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// IsMissing reports whether v is missing.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// String renders the value for display.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		if v.Integral && math.Abs(v.Num) < 1e15 {
			return strconv.FormatInt(int64(v.Num), 10)
		}
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		return v.Time.Format(DateLayout)
	default:
		return "NaN"
	}
}

// Key returns a comparable identity for equality checks. Two missing values
// share the same key.
func (v Value) Key() string {
	switch v.Kind {
	case KindMissing:
		return "\x00"
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.Num, 'g', -1, 64)
	case KindDate:
		return "d:" + v.Time.UTC().Format(time.RFC3339Nano)
	default:
		return string(rune('0'+v.Kind)) + ":" + v.String()
	}
}

// Interface returns the payload as a plain Go value: nil, string, int64,
// float64, bool or a formatted date string.
func (v Value) Interface() any {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		if v.Integral && math.Abs(v.Num) < 1e15 {
			return int64(v.Num)
		}
		return v.Num
	case KindBool:
		return v.Bool
	case KindDate:
		return v.Time.Format(DateLayout)
	default:
		return nil
	}
}
