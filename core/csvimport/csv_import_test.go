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

package csvimport

import (
	"strings"
	"testing"

	"github.com/google/crosstab/core/records"
)

func TestImportWithHeader(t *testing.T) {
	input := "name,amount,active\nalice,10,true\nbob,20.5,false\n"
	recs, err := ImportFromReader(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}

	if got := recs[0].Get("name"); got.Kind() != records.KindString || got.Display() != "alice" {
		t.Errorf("name = %v, want string \"alice\"", got)
	}
	if got := recs[0].Get("amount"); got.Kind() != records.KindNumber {
		t.Errorf("amount kind = %v, want number", got.Kind())
	}
	if f, _ := recs[1].Get("amount").Num(); f != 20.5 {
		t.Errorf("amount = %v, want 20.5", f)
	}
	if got := recs[0].Get("active"); got.Kind() != records.KindBool || !got.BoolValue() {
		t.Errorf("active = %v, want bool true", got)
	}
}

func TestImportWithoutHeader(t *testing.T) {
	options := DefaultOptions()
	options.HasHeader = false
	recs, err := ImportFromReader(strings.NewReader("a,1\nb,2\n"), options)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if got := recs[0].Get("column_1").Display(); got != "a" {
		t.Errorf("column_1 = %q, want \"a\"", got)
	}
	if got := recs[1].Get("column_2"); got.Kind() != records.KindNumber {
		t.Errorf("column_2 kind = %v, want number", got.Kind())
	}
}

func TestImportEmptyFieldsAreAbsent(t *testing.T) {
	input := "region,amount\nA,1\n,2\n"
	recs, err := ImportFromReader(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if got := recs[1].Get("region"); !got.IsMissing() {
		t.Errorf("empty field = %v, want the missing sentinel", got)
	}
	if _, present := recs[1]["region"]; present {
		t.Error("empty field should be absent from the record, not stored")
	}
}

func TestImportRaggedRows(t *testing.T) {
	input := "a,b,c\n1,2,3\n4,5\n"
	recs, err := ImportFromReader(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("short rows should import, got %v", err)
	}
	if got := recs[1].Get("c"); !got.IsMissing() {
		t.Errorf("attribute past the short row = %v, want the missing sentinel", got)
	}
}

func TestImportMixedColumnStaysString(t *testing.T) {
	input := "v\n1\nabc\n"
	recs, err := ImportFromReader(strings.NewReader(input), DefaultOptions())
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if got := recs[0].Get("v"); got.Kind() != records.KindString {
		t.Errorf("mixed column kind = %v, want string", got.Kind())
	}
}

func TestImportColumnTypeOverride(t *testing.T) {
	options := DefaultOptions()
	options.ColumnTypes["code"] = ColumnTypeString
	recs, err := ImportFromReader(strings.NewReader("code\n007\n042\n"), options)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	// Without the override the column would detect as numeric and lose
	// the leading zeros.
	if got := recs[0].Get("code"); got.Kind() != records.KindString || got.Display() != "007" {
		t.Errorf("code = %v, want string \"007\"", got)
	}
}

func TestImportForcedNumberFallsBackPerField(t *testing.T) {
	options := DefaultOptions()
	options.ColumnTypes["v"] = ColumnTypeNumber
	recs, err := ImportFromReader(strings.NewReader("v\n1\nnot-a-number\n"), options)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if got := recs[0].Get("v"); got.Kind() != records.KindNumber {
		t.Errorf("parsable field kind = %v, want number", got.Kind())
	}
	if got := recs[1].Get("v"); got.Kind() != records.KindString {
		t.Errorf("unparsable field kind = %v, want string fallback", got.Kind())
	}
}

func TestImportCustomDelimiter(t *testing.T) {
	options := DefaultOptions()
	options.Delimiter = ';'
	recs, err := ImportFromReader(strings.NewReader("a;b\n1;2\n"), options)
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(recs) != 1 || recs[0].Get("b").IsMissing() {
		t.Errorf("semicolon-delimited input parsed as %v", recs)
	}
}

func TestImportEmptyInput(t *testing.T) {
	if _, err := ImportFromReader(strings.NewReader(""), DefaultOptions()); err == nil {
		t.Error("expected an error for empty input")
	}
}

func TestImportMissingFile(t *testing.T) {
	if _, err := ImportFromFile("/no/such/file.csv", DefaultOptions()); err == nil {
		t.Error("expected an error for a missing file")
	}
}
