package eval

import (
	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/object"
)

// evalProgram evaluates statements in order, unwrapping a ReturnValue
// immediately and stopping immediately on a DetailedError; otherwise the
// final statement's value is the program's result.
func (e *Evaluator) evalProgram(prog *ast.Program, env *object.Environment) object.Value {
	var result object.Value = object.NullValue

	for _, stmt := range prog.Statements {
		result = e.Eval(stmt, env)

		switch r := result.(type) {
		case *object.ReturnValue:
			return r.Value
		case *object.DetailedError:
			return r
		}
	}
	return result
}

// evalBlock is like evalProgram but does not unwrap ReturnValue: it
// propagates the sentinel outward so that `return` inside a nested
// block exits the nearest enclosing function call.
func (e *Evaluator) evalBlock(block *ast.Block, env *object.Environment) object.Value {
	var result object.Value = object.NullValue

	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)

		switch result.(type) {
		case *object.ReturnValue, *object.DetailedError:
			return result
		}
	}
	return result
}

func (e *Evaluator) evalLet(stmt *ast.Let, env *object.Environment) object.Value {
	val := e.wrap(stmt.Value.Position(), e.Eval(stmt.Value, env))
	if object.IsError(val) {
		return val
	}

	if env.ExistsHere(stmt.Name.Name) {
		return e.wrap(stmt.Pos, object.NewError("redeclaration of same variable"))
	}
	if _, isBuiltin := e.Builtins[stmt.Name.Name]; isBuiltin {
		return e.wrap(stmt.Pos, object.NewError("a function with same name already exists"))
	}

	env.Set(stmt.Name.Name, val)
	return val
}

func (e *Evaluator) evalReturn(stmt *ast.Return, env *object.Environment) object.Value {
	var val object.Value = object.NullValue
	if stmt.Value != nil {
		val = e.wrap(stmt.Value.Position(), e.Eval(stmt.Value, env))
		if object.IsError(val) {
			return val
		}
	}
	return &object.ReturnValue{Value: val}
}
