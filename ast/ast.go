// Copyright (C) 2026 M. Palmer. All Rights Reserved.

// Package ast defines a tree representation for JSON values, a parser that
// constructs trees from JSON source, and a canonical compact serializer.
package ast

import (
	"fmt"
	"slices"
	"strings"
)

// Kind enumerates the six kinds of JSON value.
type Kind int

// Constants defining the valid Kind values.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

var kindStr = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindNumber: "number",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a single JSON value. The concrete type is one of Null, Bool,
// Number, String, Array, or Object; the set is closed. A Value is not
// modified after construction.
type Value interface {
	// Kind reports which of the six kinds of value this is.
	Kind() Kind

	// JSON returns the canonical compact JSON encoding of the value.
	JSON() string

	encode(sb *strings.Builder)
}

// Null is the JSON null constant. All Null values are identical.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return KindNull }

func (Null) String() string { return "null" }

// A Bool is a JSON Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return KindBool }

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a JSON number. All numbers, integer or not, are represented
// as 64-bit floating point.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return KindNumber }

func (n Number) String() string { return n.JSON() }

// A String is a JSON string. The contents are UTF-8 with all escape
// sequences already decoded.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return KindString }

func (s String) String() string { return string(s) }

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return KindArray }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// Len reports the number of elements of a.
func (a Array) Len() int { return len(a) }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// An Object is a collection of key-value members, maintained in ascending
// order by key with no duplicates.
type Object []*Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return KindObject }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Len reports the number of members of o.
func (o Object) Len() int { return len(o) }

// Find returns the member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i, ok := slices.BinarySearchFunc(o, key, compareMemberKey); ok {
		return o[i]
	}
	return nil
}

// insert adds m to o, keeping o sorted by key. If a member with the same
// key is already present the existing member wins and m is discarded.
func (o Object) insert(m *Member) Object {
	i, ok := slices.BinarySearchFunc(o, m.Key, compareMemberKey)
	if ok {
		return o
	}
	return slices.Insert(o, i, m)
}

func compareMemberKey(m *Member, key string) int { return strings.Compare(m.Key, key) }

// NewObject constructs an Object from the given members. Members are
// reordered by key; when two share a key the one given first wins.
func NewObject(ms ...*Member) Object {
	var o Object
	for _, m := range ms {
		o = o.insert(m)
	}
	return o
}

// Field constructs an object member with the given key and value.
// The value must be a type accepted by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts a string, int, float64, bool, nil, or Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case nil:
		return Null{}
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case float64:
		return Number(t)
	case string:
		return String(t)
	}
	panic(fmt.Sprintf("invalid value %+v of type %T", v, v))
}

// IsNull reports whether v is a Null.
func IsNull(v Value) bool { return v.Kind() == KindNull }

// IsBool reports whether v is a Bool.
func IsBool(v Value) bool { return v.Kind() == KindBool }

// IsNumber reports whether v is a Number.
func IsNumber(v Value) bool { return v.Kind() == KindNumber }

// IsString reports whether v is a String.
func IsString(v Value) bool { return v.Kind() == KindString }

// IsArray reports whether v is an Array.
func IsArray(v Value) bool { return v.Kind() == KindArray }

// IsObject reports whether v is an Object.
func IsObject(v Value) bool { return v.Kind() == KindObject }

// AsBool returns the payload of v if v is a Bool.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsNumber returns the payload of v if v is a Number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// AsString returns the payload of v if v is a String.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsArray returns v as an Array if it is one.
func AsArray(v Value) (Array, bool) {
	a, ok := v.(Array)
	return a, ok
}

// AsObject returns v as an Object if it is one.
func AsObject(v Value) (Object, bool) {
	o, ok := v.(Object)
	return o, ok
}
