// Copyright (C) 2026 M. Palmer. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"

	"github.com/mpalmer/jval/ast"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		value ast.Value
		kind  ast.Kind
		name  string
	}{
		{ast.Null{}, ast.KindNull, "null"},
		{ast.Bool(true), ast.KindBool, "bool"},
		{ast.Number(1.5), ast.KindNumber, "number"},
		{ast.String("x"), ast.KindString, "string"},
		{ast.Array{}, ast.KindArray, "array"},
		{ast.Object{}, ast.KindObject, "object"},
	}
	for _, test := range tests {
		if got := test.value.Kind(); got != test.kind {
			t.Errorf("Kind of %v: got %v, want %v", test.value, got, test.kind)
		}
		if got := test.kind.String(); got != test.name {
			t.Errorf("Kind string: got %q, want %q", got, test.name)
		}
	}
}

func TestAccessors(t *testing.T) {
	if !ast.IsNull(ast.Null{}) || ast.IsNull(ast.Bool(false)) {
		t.Error("IsNull misreported")
	}
	if !ast.IsBool(ast.Bool(true)) || ast.IsBool(ast.Null{}) {
		t.Error("IsBool misreported")
	}
	if !ast.IsNumber(ast.Number(0)) || ast.IsNumber(ast.String("0")) {
		t.Error("IsNumber misreported")
	}
	if !ast.IsString(ast.String("")) || ast.IsString(ast.Number(0)) {
		t.Error("IsString misreported")
	}
	if !ast.IsArray(ast.Array{}) || ast.IsArray(ast.Object{}) {
		t.Error("IsArray misreported")
	}
	if !ast.IsObject(ast.Object{}) || ast.IsObject(ast.Array{}) {
		t.Error("IsObject misreported")
	}

	if v, ok := ast.AsBool(ast.Bool(true)); !ok || !v {
		t.Errorf("AsBool: got %v, %v; want true, true", v, ok)
	}
	if _, ok := ast.AsBool(ast.Null{}); ok {
		t.Error("AsBool reported ok for null")
	}
	if v, ok := ast.AsNumber(ast.Number(2.5)); !ok || v != 2.5 {
		t.Errorf("AsNumber: got %v, %v; want 2.5, true", v, ok)
	}
	if _, ok := ast.AsNumber(ast.Bool(true)); ok {
		t.Error("AsNumber reported ok for bool")
	}
	if v, ok := ast.AsString(ast.String("pear")); !ok || v != "pear" {
		t.Errorf("AsString: got %q, %v; want pear, true", v, ok)
	}
	if _, ok := ast.AsString(ast.Number(1)); ok {
		t.Error("AsString reported ok for number")
	}
	if v, ok := ast.AsArray(ast.Array{ast.Null{}}); !ok || v.Len() != 1 {
		t.Errorf("AsArray: got %v, %v; want 1-element array, true", v, ok)
	}
	if _, ok := ast.AsArray(ast.String("[]")); ok {
		t.Error("AsArray reported ok for string")
	}
	if v, ok := ast.AsObject(ast.NewObject(ast.Field("a", 1))); !ok || v.Len() != 1 {
		t.Errorf("AsObject: got %v, %v; want 1-member object, true", v, ok)
	}
	if _, ok := ast.AsObject(ast.Array{}); ok {
		t.Error("AsObject reported ok for array")
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  ast.Value
	}{
		{nil, ast.Null{}},
		{true, ast.Bool(true)},
		{3, ast.Number(3)},
		{0.5, ast.Number(0.5)},
		{"ok", ast.String("ok")},
		{ast.Array{ast.Null{}}, ast.Array{ast.Null{}}},
	}
	for _, test := range tests {
		got := ast.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ToValue(%v): (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Invalid", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
	})
}

func TestObject(t *testing.T) {
	o := ast.NewObject(
		ast.Field("pear", 1),
		ast.Field("apple", 2),
		ast.Field("plum", 3),
		ast.Field("apple", 4), // duplicate, discarded
		ast.Field("cherry", 5),
	)
	if o.Len() != 4 {
		t.Errorf("Len: got %d, want 4", o.Len())
	}

	// Members are kept in ascending order by key, first occurrence winning.
	var keys []string
	for _, m := range o {
		keys = append(keys, m.Key)
	}
	want := []string{"apple", "cherry", "pear", "plum"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}

	if m := o.Find("apple"); m == nil {
		t.Error("Find(apple): not found")
	} else if n, _ := ast.AsNumber(m.Value); n != 2 {
		t.Errorf("Find(apple): got %v, want 2", m.Value)
	}
	if m := o.Find("durian"); m != nil {
		t.Errorf("Find(durian): got %v, want nil", m)
	}
}
