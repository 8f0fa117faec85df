/*
File   : object/object.go
Package object defines eta's runtime values and the lexical Environment
they live in.

Values are a tagged variant dispatched by a Go type switch (see package
eval), not a class hierarchy with downcasts: Null, Int, Float, Bool,
String, Array, ReturnValue, Function, Builtin, SimpleError, DetailedError.
Scalars are immutable; Array and String are mutable in place via indexed
assignment, and are shared by reference so that mutating an array through
one binding is observed through any other binding to the same array.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xunicatt/eta/ast"
)

// Kind names a Value's runtime type, as returned by the `type` builtin.
type Kind string

const (
	NULL     Kind = "null"
	INT      Kind = "int"
	FLOAT    Kind = "float"
	BOOL     Kind = "bool"
	STRING   Kind = "string"
	ARRAY    Kind = "array"
	FUNCTION Kind = "function"
	BUILTIN  Kind = "builtin function"
	RETURN   Kind = "return"
	ERROR    Kind = "error"
)

// Value is implemented by every runtime value variant.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Null is the single representable null value.
type Null struct{}

func (*Null) Kind() Kind      { return NULL }
func (*Null) Inspect() string { return "null" }

// NullValue is the shared null singleton (see DESIGN.md on mismatched
// non-numeric ==/!=): equality comparisons against it are reference-correct.
var NullValue = &Null{}

// Int is a 64-bit signed integer value.
type Int struct{ Value int64 }

func (i *Int) Kind() Kind      { return INT }
func (i *Int) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating point value.
type Float struct{ Value float64 }

func (f *Float) Kind() Kind      { return FLOAT }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Bool is a boolean value; True and False below are the shared
// singletons every boolean literal and comparison resolves to.
type Bool struct{ Value bool }

func (b *Bool) Kind() Kind      { return BOOL }
func (b *Bool) Inspect() string { return strconv.FormatBool(b.Value) }

var (
	True  = &Bool{Value: true}
	False = &Bool{Value: false}
)

// BoolFor returns the shared True/False singleton for v.
func BoolFor(v bool) *Bool {
	if v {
		return True
	}
	return False
}

// String is a mutable, reference-shared byte string.
type String struct{ Value string }

func (s *String) Kind() Kind      { return STRING }
func (s *String) Inspect() string { return s.Value }

// Array is a mutable, reference-shared ordered sequence of Values.
type Array struct{ Elements []Value }

func (a *Array) Kind() Kind { return ARRAY }

// Inspect renders the array's elements comma-separated inside brackets.
// String elements are wrapped in double quotes so that rendered arrays
// keep the boundary between neighbouring string values visible.
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		if e.Kind() == STRING {
			parts[i] = `"` + e.Inspect() + `"`
			continue
		}
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ReturnValue wraps the payload of a `return` statement as it propagates
// up through block evaluation. It is never visible to user code.
type ReturnValue struct{ Value Value }

func (r *ReturnValue) Kind() Kind      { return RETURN }
func (r *ReturnValue) Inspect() string { return r.Value.Inspect() }

// Function is a user-defined closure: its parameters, body, and the
// environment frame active at its definition.
type Function struct {
	Params []*ast.Identifier
	Body   *ast.Block
	Env    *Environment
}

func (f *Function) Kind() Kind { return FUNCTION }
func (f *Function) Inspect() string {
	names := make([]string, len(f.Params))
	for i, p := range f.Params {
		names[i] = p.Name
	}
	return "fn(" + strings.Join(names, ", ") + ") { ... }"
}

// BuiltinFunc is the Go function signature backing a Builtin value.
type BuiltinFunc func(args []Value) Value

// Builtin wraps a native implementation invoked directly by the
// evaluator when a Call's callee resolves to one.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

func (b *Builtin) Kind() Kind      { return BUILTIN }
func (b *Builtin) Inspect() string { return "builtin " + b.Name + "(...)" }

// SimpleError is produced at the site of a detected error and carries
// only a message; it has not yet been decorated with source position.
type SimpleError struct{ Message string }

func (e *SimpleError) Kind() Kind      { return ERROR }
func (e *SimpleError) Inspect() string { return e.Message }

// NewError formats a SimpleError the way the reference builtins and
// evaluator do throughout.
func NewError(format string, a ...interface{}) *SimpleError {
	return &SimpleError{Message: fmt.Sprintf(format, a...)}
}

// DetailedError is a SimpleError decorated with a source-position
// banner by the diagnostic formatter. Only DetailedErrors reach the
// top level of evaluation.
type DetailedError struct{ Formatted string }

func (e *DetailedError) Kind() Kind      { return ERROR }
func (e *DetailedError) Inspect() string { return e.Formatted }

// IsError reports whether v is a SimpleError or a DetailedError.
func IsError(v Value) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case *SimpleError, *DetailedError:
		return true
	default:
		return false
	}
}

// Truthy implements eta's truthiness rule: a value is falsy when its
// rendered form equals the null or false singleton's rendering, and
// truthy otherwise. The comparison is on rendered text, not identity,
// so the string "false" is falsy exactly like the false singleton.
func Truthy(v Value) bool {
	switch v.Inspect() {
	case NullValue.Inspect(), False.Inspect():
		return false
	default:
		return true
	}
}
