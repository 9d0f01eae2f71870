// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package ast_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/mpalmer/jval/ast"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		value ast.Value
		want  string
	}{
		{ast.Null{}, `null`},
		{ast.Bool(true), `true`},
		{ast.Bool(false), `false`},

		{ast.Number(0), `0`},
		{ast.Number(-50), `-50`},
		{ast.Number(0.5), `0.5`},
		{ast.Number(6.02e23), `6.02e+23`},
		{ast.Number(math.Inf(1)), `1.0e5000`},
		{ast.Number(math.Inf(-1)), `-1.0e5000`},
		{ast.Number(math.NaN()), `null`},

		{ast.String(""), `""`},
		{ast.String("a b c"), `"a b c"`},
		{ast.String("a\nb\tc"), `"a\nb\tc"`},
		{ast.String("\b\f\r"), `"\b\f\r"`},
		{ast.String(`say "when"`), `"say \"when\""`},
		{ast.String(`back\slash`), `"back\\slash"`},
		{ast.String("smiley \U0001F600"), "\"smiley \U0001F600\""},
		{ast.String("\x01\x7f"), "\"\x01\x7f\""}, // other controls pass through

		{ast.Array{}, `[]`},
		{ast.Array{ast.Number(1)}, `[1]`},
		{ast.Array{ast.Number(1), ast.String("two"), ast.Null{}}, `[1, "two", null]`},
		{ast.Array{ast.Array{}}, `[[]]`},

		{ast.Object{}, `{}`},
		{ast.NewObject(ast.Field("a", 1)), `{"a": 1}`},
		{ast.NewObject(
			ast.Field("b", 2),
			ast.Field("a", ast.Array{ast.Bool(true)}),
		), `{"a": [true], "b": 2}`},
	}
	for _, test := range tests {
		if got := test.value.JSON(); got != test.want {
			t.Errorf("JSON of %v: got %#q, want %#q", test.value, got, test.want)
		}
	}
}

// Object members render in ascending key order regardless of input order.
func TestJSON_sortedKeys(t *testing.T) {
	v, err := ast.Parse(strings.NewReader(`{"zed": 1, "alpha": {"n": 2, "m": 3}}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	const want = `{"alpha": {"m": 3, "n": 2}, "zed": 1}`
	if got := v.JSON(); got != want {
		t.Errorf("JSON: got %#q, want %#q", got, want)
	}
}

func TestPrint(t *testing.T) {
	v := ast.NewObject(ast.Field("key", ast.Array{ast.Number(1), ast.Null{}}))

	var buf bytes.Buffer
	if err := ast.Print(&buf, v); err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	const want = `{"key": [1, null]}`
	if got := buf.String(); got != want {
		t.Errorf("Print: got %#q, want %#q", got, want)
	}
	if strings.HasSuffix(buf.String(), "\n") {
		t.Error("Print emitted a trailing newline")
	}
}
