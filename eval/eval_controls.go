package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

// evalIf evaluates the condition, then the taken branch inside a freshly
// pushed child environment.
func (e *Evaluator) evalIf(n *ast.If, env *object.Environment) object.Value {
	cond := e.wrap(n.Cond.Position(), e.Eval(n.Cond, env))
	if object.IsError(cond) {
		return cond
	}

	branchEnv := object.NewEnclosedEnvironment(env)
	if object.Truthy(cond) {
		return e.Eval(n.Then, branchEnv)
	}
	if n.Else != nil {
		return e.Eval(n.Else, branchEnv)
	}
	return object.NullValue
}

// evalFor pushes a child environment once for the whole loop, runs init
// once, then repeatedly checks cond, runs body, and runs update. There
// is no break/continue support (eta's non-goals).
func (e *Evaluator) evalFor(n *ast.For, env *object.Environment) object.Value {
	loopEnv := object.NewEnclosedEnvironment(env)

	if n.Init != nil {
		if res := e.Eval(n.Init, loopEnv); object.IsError(res) {
			return res
		}
	}

	for {
		if n.Cond != nil {
			cond := e.wrap(n.Cond.Position(), e.Eval(n.Cond, loopEnv))
			if object.IsError(cond) {
				return cond
			}
			if !object.Truthy(cond) {
				break
			}
		}

		res := e.Eval(n.Body, loopEnv)
		switch res.(type) {
		case *object.ReturnValue, *object.DetailedError:
			return res
		}

		if n.Update != nil {
			if res := e.wrap(n.Update.Position(), e.Eval(n.Update, loopEnv)); object.IsError(res) {
				return res
			}
		}
	}

	return object.NullValue
}
