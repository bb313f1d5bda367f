/*
SPDX-License-Identifier: Apache-2.0

Copyright 2025 The Crosstab Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package records defines the value domain of the pivot engine: tagged
// scalar values with an explicit missing sentinel, records mapping
// attribute names to values, derived attributes, and the attribute value
// index that feeds selection menus.
package records

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	// KindMissing is the sentinel for an absent attribute value. It is a
	// first-class, groupable, sortable value, not an error.
	KindMissing Kind = iota
	KindBool
	KindNumber
	KindTime
	KindString
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindTime:
		return "time"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// MissingLabel is how the sentinel displays in keys, menus and cells.
const MissingLabel = "null"

// Value is a tagged scalar. The zero value is the missing sentinel, so a
// lookup into a record that lacks an attribute yields the sentinel
// directly. The sentinel is a distinct variant rather than a reserved
// string, so genuine data equal to "null" never collides with it.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
	t    time.Time
}

// Missing returns the sentinel value.
func Missing() Value {
	return Value{}
}

// String wraps a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number wraps a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// Bool wraps a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Time wraps a timestamp value.
func Time(t time.Time) Value {
	return Value{kind: KindTime, t: t}
}

// Kind returns the variant held by the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsMissing reports whether the value is the sentinel.
func (v Value) IsMissing() bool {
	return v.kind == KindMissing
}

// Display returns the value formatted for grouping keys, menus and cells.
// The sentinel displays as "null".
func (v Value) Display() string {
	switch v.kind {
	case KindMissing:
		return MissingLabel
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindTime:
		return v.t.Format("2006-01-02 15:04:05")
	case KindString:
		return v.str
	default:
		return MissingLabel
	}
}

// Num returns the value coerced to a float64 and whether the coercion
// succeeded. Numbers coerce directly; strings coerce when they parse as a
// number. Everything else, including the sentinel, does not coerce.
func (v Value) Num() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindString:
		f, err := strconv.ParseFloat(v.str, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// BoolValue returns the boolean payload. Only meaningful for KindBool.
func (v Value) BoolValue() bool {
	return v.b
}

// TimeValue returns the timestamp payload. Only meaningful for KindTime.
func (v Value) TimeValue() time.Time {
	return v.t
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindMissing:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindTime:
		return v.t.Equal(o.t)
	case KindString:
		return v.str == o.str
	default:
		return false
	}
}

// FromAny converts an arbitrary scalar into a Value. Unsupported types
// map to the sentinel, matching how derived attributes that return a
// non-scalar are recovered.
func FromAny(x interface{}) Value {
	switch t := x.(type) {
	case nil:
		return Missing()
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case time.Time:
		return Time(t)
	default:
		return Missing()
	}
}

// GoString helps debugging output in tests.
func (v Value) GoString() string {
	return fmt.Sprintf("records.Value{%s:%s}", v.kind, v.Display())
}
