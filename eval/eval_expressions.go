package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

func (e *Evaluator) evalIdentifier(n *ast.Identifier, env *object.Environment) object.Value {
	if v, ok := env.Get(n.Name); ok {
		return v
	}
	if b, ok := e.Builtins[n.Name]; ok {
		return b
	}
	return e.wrap(n.Pos, object.NewError("undefined identifier: %s", n.Name))
}

func (e *Evaluator) evalArrayLit(n *ast.ArrayLit, env *object.Environment) object.Value {
	elements, err := e.evalExpressions(n.Elements, env)
	if err != nil {
		return e.wrap(n.Pos, err)
	}
	return &object.Array{Elements: elements}
}

// evalPrefix implements `!` and `-`. `!` negates Truthy, which compares
// rendered text: !true is false, while !false, !null, and any operand
// rendering as "false" or "null" (the string "false" included) are true.
func (e *Evaluator) evalPrefix(n *ast.Prefix, env *object.Environment) object.Value {
	right := e.wrap(n.Right.Position(), e.Eval(n.Right, env))
	if object.IsError(right) {
		return right
	}

	var res object.Value
	switch n.Op {
	case "!":
		res = object.BoolFor(!object.Truthy(right))
	case "-":
		switch v := right.(type) {
		case *object.Int:
			res = &object.Int{Value: -v.Value}
		case *object.Float:
			res = &object.Float{Value: -v.Value}
		default:
			res = object.NewError("type is not supported")
		}
	default:
		res = object.NewError("unknown operator")
	}
	return e.wrap(n.Pos, res)
}

// evalInfix evaluates the right operand before the left.
func (e *Evaluator) evalInfix(n *ast.Infix, env *object.Environment) object.Value {
	right := e.wrap(n.Right.Position(), e.Eval(n.Right, env))
	if object.IsError(right) {
		return right
	}
	left := e.wrap(n.Left.Position(), e.Eval(n.Left, env))
	if object.IsError(left) {
		return left
	}

	return e.wrap(n.Pos, applyInfix(n.Op, left, right))
}

func applyInfix(op string, left, right object.Value) object.Value {
	switch l := left.(type) {
	case *object.Int:
		if r, ok := right.(*object.Int); ok {
			return infixInt(op, l.Value, r.Value)
		}
		return object.NewError("type mismatch")
	case *object.Float:
		if r, ok := right.(*object.Float); ok {
			return infixFloat(op, l.Value, r.Value)
		}
		return object.NewError("type mismatch")
	case *object.String:
		if r, ok := right.(*object.String); ok {
			return infixString(op, l.Value, r.Value)
		}
		return object.NewError("type mismatch")
	default:
		if left.Kind() != right.Kind() {
			return object.NewError("type mismatch")
		}
		return infixGeneric(op, left, right)
	}
}

func infixInt(op string, l, r int64) object.Value {
	switch op {
	case "+":
		return &object.Int{Value: l + r}
	case "-":
		return &object.Int{Value: l - r}
	case "*":
		return &object.Int{Value: l * r}
	case "/":
		if r == 0 {
			return object.NewError("division by zero")
		}
		return &object.Int{Value: l / r}
	case "<":
		return object.BoolFor(l < r)
	case "<=":
		return object.BoolFor(l <= r)
	case ">":
		return object.BoolFor(l > r)
	case ">=":
		return object.BoolFor(l >= r)
	case "==":
		return object.BoolFor(l == r)
	case "!=":
		return object.BoolFor(l != r)
	default:
		return object.NewError("unknown operator")
	}
}

func infixFloat(op string, l, r float64) object.Value {
	switch op {
	case "+":
		return &object.Float{Value: l + r}
	case "-":
		return &object.Float{Value: l - r}
	case "*":
		return &object.Float{Value: l * r}
	case "/":
		return &object.Float{Value: l / r} // IEEE-754 handles zero divisor
	case "<":
		return object.BoolFor(l < r)
	case "<=":
		return object.BoolFor(l <= r)
	case ">":
		return object.BoolFor(l > r)
	case ">=":
		return object.BoolFor(l >= r)
	case "==":
		return object.BoolFor(l == r)
	case "!=":
		return object.BoolFor(l != r)
	default:
		return object.NewError("unknown operator")
	}
}

func infixString(op string, l, r string) object.Value {
	switch op {
	case "+":
		return &object.String{Value: l + r}
	case "<":
		return object.BoolFor(l < r)
	case "<=":
		return object.BoolFor(l <= r)
	case ">":
		return object.BoolFor(l > r)
	case ">=":
		return object.BoolFor(l >= r)
	case "==":
		return object.BoolFor(l == r)
	case "!=":
		return object.BoolFor(l != r)
	default:
		return object.NewError("unknown operator")
	}
}

// infixGeneric handles matched non-numeric, non-string kinds: only ==
// and != are defined, compared by reference identity. This is correct
// for the shared Bool/Null singletons and is also eta's choice for
// Array/Function/Builtin.
func infixGeneric(op string, left, right object.Value) object.Value {
	switch op {
	case "==":
		return object.BoolFor(left == right)
	case "!=":
		return object.BoolFor(left != right)
	default:
		return object.NewError("unknown operator")
	}
}
