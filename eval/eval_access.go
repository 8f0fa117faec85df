package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

// evalIndex reads left[index] for an Array or a String.
func (e *Evaluator) evalIndex(n *ast.Index, env *object.Environment) object.Value {
	left := e.wrap(n.Left.Position(), e.Eval(n.Left, env))
	if object.IsError(left) {
		return left
	}
	idxVal := e.wrap(n.Index.Position(), e.Eval(n.Index, env))
	if object.IsError(idxVal) {
		return idxVal
	}

	return e.wrap(n.Pos, indexInto(left, idxVal))
}

func indexInto(left, idxVal object.Value) object.Value {
	idx, ok := idxVal.(*object.Int)
	if !ok {
		return object.NewError("expected an int type for index")
	}

	switch v := left.(type) {
	case *object.Array:
		if idx.Value < 0 || int(idx.Value) >= len(v.Elements) {
			return object.NewError("index out of range")
		}
		return v.Elements[idx.Value]
	case *object.String:
		if idx.Value < 0 || int(idx.Value) >= len(v.Value) {
			return object.NewError("index out of range")
		}
		return &object.String{Value: string(v.Value[idx.Value])}
	default:
		return object.NewError("expected an array or string type")
	}
}
