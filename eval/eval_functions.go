package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

func (e *Evaluator) evalCall(n *ast.Call, env *object.Environment) object.Value {
	callee := e.wrap(n.Callee.Position(), e.Eval(n.Callee, env))
	if object.IsError(callee) {
		return callee
	}

	args, err := e.evalExpressions(n.Args, env)
	if err != nil {
		return e.wrap(n.Pos, err)
	}

	return e.wrap(n.Pos, e.applyFunction(callee, args))
}

func (e *Evaluator) applyFunction(callee object.Value, args []object.Value) object.Value {
	switch fn := callee.(type) {
	case *object.Function:
		if len(fn.Params) != len(args) {
			return object.NewError("expected %d arguments but got %d", len(fn.Params), len(args))
		}

		callEnv := object.NewEnclosedEnvironment(fn.Env)
		for i, param := range fn.Params {
			callEnv.Set(param.Name, args[i])
		}

		result := e.Eval(fn.Body, callEnv)
		if ret, ok := result.(*object.ReturnValue); ok {
			return ret.Value
		}
		return result

	case *object.Builtin:
		return fn.Fn(args)

	default:
		return object.NewError("undefined or not a function")
	}
}
