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

package pivot

import (
	"fmt"
	"strings"

	"github.com/google/crosstab/core/records"
)

// tupleOf reads the record's values for the given attributes, in order.
// Attributes the record lacks read as the sentinel, which buckets under
// its own key component like any other value.
func tupleOf(r records.Record, attrs []string) []records.Value {
	tuple := make([]records.Value, len(attrs))
	for i, attr := range attrs {
		tuple[i] = r.Get(attr)
	}
	return tuple
}

// kindTag gives each value kind a one-byte marker inside encoded keys, so
// the sentinel can never collide with a genuine string "null".
func kindTag(k records.Kind) byte {
	switch k {
	case records.KindMissing:
		return 'm'
	case records.KindBool:
		return 'b'
	case records.KindNumber:
		return 'n'
	case records.KindTime:
		return 't'
	default:
		return 's'
	}
}

// encodeTuple encodes a key tuple into a single grouping key. Every
// component is prefixed with its display length and kind tag, so values
// containing any would-be separator cannot collide; the empty tuple
// encodes as the empty string, which is how a pivot with no row (or
// column) attributes routes everything into one bucket. The typed tuple
// itself is what callers sort and display; the encoding exists only for
// map lookup.
func encodeTuple(tuple []records.Value) string {
	if len(tuple) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, v := range tuple {
		s := v.Display()
		fmt.Fprintf(&sb, "%d%c", len(s), kindTag(v.Kind()))
		sb.WriteString(s)
	}
	return sb.String()
}
