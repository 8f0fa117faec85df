/*
File   : eval/builtins.go
Builtin arities, type checks, and error messages are grounded on
_examples/original_source/src/evaluator/builtins.cpp, the original eta
implementation this evaluator is a rewrite of.
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/xunicatt/eta/object"
)

// registerBuiltins binds the builtin table to e so that print/println
// write through whatever Writer is current at call time (it closes over
// e, not e.Writer, so a later SetWriter still takes effect).
func (e *Evaluator) registerBuiltins() map[string]*object.Builtin {
	fns := map[string]object.BuiltinFunc{
		"len":     builtinLen,
		"int":     builtinInt,
		"float":   builtinFloat,
		"type":    builtinType,
		"print":   func(args []object.Value) object.Value { return e.doPrint(args, "") },
		"println": func(args []object.Value) object.Value { return e.doPrint(args, "\n") },
		"any":     builtinAny,
		"push":    builtinPush,
		"pop":     builtinPop,
		"slice":   builtinSlice,
	}
	out := make(map[string]*object.Builtin, len(fns))
	for name, fn := range fns {
		out[name] = &object.Builtin{Name: name, Fn: fn}
	}
	return out
}

func builtinLen(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError("len() only accepts one argument")
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Int{Value: int64(len(v.Value))}
	case *object.Array:
		return &object.Int{Value: int64(len(v.Elements))}
	default:
		return object.NewError("type is not supported")
	}
}

func builtinInt(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError("int() only accepts one argument")
	}
	switch v := args[0].(type) {
	case *object.Int:
		return v
	case *object.Float:
		return &object.Int{Value: int64(v.Value)}
	case *object.Bool:
		if v.Value {
			return &object.Int{Value: 1}
		}
		return &object.Int{Value: 0}
	default:
		return object.NewError("type is not supported")
	}
}

func builtinFloat(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError("float() only accepts one argument")
	}
	switch v := args[0].(type) {
	case *object.Float:
		return v
	case *object.Int:
		return &object.Float{Value: float64(v.Value)}
	default:
		return object.NewError("type is not supported")
	}
}

func builtinType(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError("type() only accepts one argument")
	}
	return &object.String{Value: string(args[0].Kind())}
}

// renderPrintArg matches the reference: only String arguments get the
// literal backslash-n sequence rewritten to a real newline; this is a
// runtime substitution at print time, distinct from the lexer's escape
// decoding of `\"`/`\\` inside string literals.
func renderPrintArg(v object.Value) string {
	if s, ok := v.(*object.String); ok {
		return strings.ReplaceAll(s.Value, `\n`, "\n")
	}
	return v.Inspect()
}

// doPrint writes each argument's rendered form back to back, with no
// separator between arguments, then the suffix. Returns the argument
// count as an Int.
func (e *Evaluator) doPrint(args []object.Value, suffix string) object.Value {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(renderPrintArg(a))
	}
	b.WriteString(suffix)
	fmt.Fprint(e.Writer, b.String())
	return &object.Int{Value: int64(len(args))}
}

func builtinAny(args []object.Value) object.Value {
	if len(args) != 0 {
		return object.NewError("any() does not accept any arguments")
	}
	return object.NullValue
}

func builtinPush(args []object.Value) object.Value {
	if len(args) != 2 {
		return object.NewError("push() requires 2 arguments")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("expected an array type")
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

func builtinPop(args []object.Value) object.Value {
	if len(args) != 1 {
		return object.NewError("pop() requires 1 argument")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("expected an array type")
	}
	if len(arr.Elements) > 0 {
		arr.Elements = arr.Elements[:len(arr.Elements)-1]
	}
	return arr
}

func builtinSlice(args []object.Value) object.Value {
	switch len(args) {
	case 1:
		arr, ok := args[0].(*object.Array)
		if !ok {
			return object.NewError("expected an array type")
		}
		cloned := make([]object.Value, len(arr.Elements))
		copy(cloned, arr.Elements)
		return &object.Array{Elements: cloned}

	case 3:
		arr, ok := args[0].(*object.Array)
		if !ok {
			return object.NewError("expected an array type")
		}
		start, ok := args[1].(*object.Int)
		if !ok {
			return object.NewError("expected start index to be an integer type")
		}
		end, ok := args[2].(*object.Int)
		if !ok {
			return object.NewError("expected end index to be an integer type")
		}
		if start.Value < 0 || end.Value < 0 || int(end.Value) > len(arr.Elements) {
			return object.NewError("index out of range")
		}
		if start.Value > end.Value {
			return object.NewError("start index is greater than end index")
		}
		cloned := make([]object.Value, end.Value-start.Value)
		copy(cloned, arr.Elements[start.Value:end.Value])
		return &object.Array{Elements: cloned}

	default:
		return object.NewError("slice() requires either 1 or 3 arguments")
	}
}
