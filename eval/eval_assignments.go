package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

// evalAssign handles both target forms: a plain identifier, and
// `IDENTIFIER[EXPR]` indexed assignment (the parser already rejects any
// other index target, so Target.Left is always an *ast.Identifier here).
func (e *Evaluator) evalAssign(n *ast.Assign, env *object.Environment) object.Value {
	switch target := n.Target.(type) {
	case *ast.Identifier:
		return e.assignIdentifier(n, target, env)
	case *ast.Index:
		return e.assignIndex(n, target, env)
	default:
		return e.wrap(n.Pos, object.NewError("invalid assignment target"))
	}
}

func (e *Evaluator) assignIdentifier(n *ast.Assign, target *ast.Identifier, env *object.Environment) object.Value {
	existing, ok := env.Get(target.Name)
	if !ok {
		return e.wrap(n.Pos, object.NewError("undefined variable: %s", target.Name))
	}
	if _, isFn := existing.(*object.Function); isFn {
		return e.wrap(n.Pos, object.NewError("a function type variable can not be reassigned"))
	}

	val := e.wrap(n.Value.Position(), e.Eval(n.Value, env))
	if object.IsError(val) {
		return val
	}

	if _, isNull := existing.(*object.Null); !isNull && existing.Kind() != val.Kind() {
		return e.wrap(n.Pos, object.NewError("a variable cannot be reassigned with a new type"))
	}

	env.Update(target.Name, val)
	return val
}

func (e *Evaluator) assignIndex(n *ast.Assign, target *ast.Index, env *object.Environment) object.Value {
	ident := target.Left.(*ast.Identifier)
	container, ok := env.Get(ident.Name)
	if !ok {
		return e.wrap(n.Pos, object.NewError("undefined variable: %s", ident.Name))
	}

	idxVal := e.wrap(target.Index.Position(), e.Eval(target.Index, env))
	if object.IsError(idxVal) {
		return idxVal
	}
	idx, ok := idxVal.(*object.Int)
	if !ok {
		return e.wrap(n.Pos, object.NewError("expected an int type for index"))
	}

	val := e.wrap(n.Value.Position(), e.Eval(n.Value, env))
	if object.IsError(val) {
		return val
	}

	switch c := container.(type) {
	case *object.Array:
		if idx.Value < 0 || int(idx.Value) >= len(c.Elements) {
			return e.wrap(n.Pos, object.NewError("index out of range"))
		}
		c.Elements[idx.Value] = val
		return val
	case *object.String:
		if idx.Value < 0 || int(idx.Value) >= len(c.Value) {
			return e.wrap(n.Pos, object.NewError("index out of range"))
		}
		s, ok := val.(*object.String)
		if !ok {
			return e.wrap(n.Pos, object.NewError("expected a string type"))
		}
		if len(s.Value) != 1 {
			return e.wrap(n.Pos, object.NewError("expected a single-character string"))
		}
		c.Value = c.Value[:idx.Value] + s.Value + c.Value[idx.Value+1:]
		return val
	default:
		return e.wrap(n.Pos, object.NewError("expected an array or string type"))
	}
}

// evalOpAssign implements `x OP= v`: evaluate x and v, apply OP, rebind
// x via Update. The parser only ever produces an *ast.Identifier target.
func (e *Evaluator) evalOpAssign(n *ast.OpAssign, env *object.Environment) object.Value {
	existing, ok := env.Get(n.Target.Name)
	if !ok {
		return e.wrap(n.Pos, object.NewError("undefined variable: %s", n.Target.Name))
	}

	val := e.wrap(n.Value.Position(), e.Eval(n.Value, env))
	if object.IsError(val) {
		return val
	}

	res := e.wrap(n.Pos, applyInfix(n.Op, existing, val))
	if object.IsError(res) {
		return res
	}

	env.Update(n.Target.Name, res)
	return res
}
