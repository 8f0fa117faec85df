// Package eval implements the tree-walking evaluator: it walks an
// ast.Program against a lexically scoped object.Environment,
// dispatching on node kind with a Go type switch.
//
// Source positions are threaded through every evaluation step: whenever
// an evaluated sub-expression yields a SimpleError, wrap decorates it
// into a DetailedError carrying the position of the innermost enclosing
// expression being evaluated, by re-driving the Evaluator's Lexer
// (package diag). A DetailedError, once produced, passes through
// unchanged.
package eval

import (
	"io"
	"os"

	"github.com/xunicatt/eta/ast"
	"github.com/xunicatt/eta/diag"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/object"
	"github.com/xunicatt/eta/token"
)

// Evaluator walks an AST against an Environment. It keeps a reference to
// the source Lexer purely for diagnostic re-scanning; it never advances
// the Lexer for any other reason.
type Evaluator struct {
	Lex      *lexer.Lexer
	Writer   io.Writer
	Color    bool
	Builtins map[string]*object.Builtin
}

// New constructs an Evaluator with the standard builtin table, writing
// program output to os.Stdout.
func New(lex *lexer.Lexer) *Evaluator {
	e := &Evaluator{
		Lex:    lex,
		Writer: os.Stdout,
		Color:  true,
	}
	e.Builtins = e.registerBuiltins()
	return e
}

// SetWriter redirects builtin output (print/println).
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// wrap decorates v with pos if v is a SimpleError, passes a
// DetailedError through untouched, and is a no-op for any other value.
// Every evaluator entry point that holds a source position for an
// operand calls wrap on that operand's result, so an error surfaces
// with the position of the innermost enclosing expression being
// evaluated, not merely the site of detection.
func (e *Evaluator) wrap(pos token.Position, v object.Value) object.Value {
	if v == nil {
		return v
	}
	if se, ok := v.(*object.SimpleError); ok {
		return &object.DetailedError{Formatted: diag.Format(e.Lex, pos, se.Message, e.Color)}
	}
	return v
}

// Eval evaluates any AST node against env.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch n := node.(type) {
	case *ast.Program:
		return e.evalProgram(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expr, env)
	case *ast.Block:
		return e.evalBlock(n, env)
	case *ast.Let:
		return e.evalLet(n, env)
	case *ast.Return:
		return e.evalReturn(n, env)

	case *ast.IntegerLit:
		return &object.Int{Value: n.Value}
	case *ast.FloatLit:
		return &object.Float{Value: n.Value}
	case *ast.BoolLit:
		return object.BoolFor(n.Value)
	case *ast.StringLit:
		return &object.String{Value: n.Value}
	case *ast.ArrayLit:
		return e.evalArrayLit(n, env)

	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.Prefix:
		return e.evalPrefix(n, env)
	case *ast.Infix:
		return e.evalInfix(n, env)
	case *ast.Index:
		return e.evalIndex(n, env)

	case *ast.Assign:
		return e.evalAssign(n, env)
	case *ast.OpAssign:
		return e.evalOpAssign(n, env)

	case *ast.If:
		return e.evalIf(n, env)
	case *ast.For:
		return e.evalFor(n, env)

	case *ast.FunctionLit:
		return &object.Function{Params: n.Params, Body: n.Body, Env: env}
	case *ast.Call:
		return e.evalCall(n, env)

	default:
		return object.NullValue
	}
}

// evalExpressions evaluates a list of expressions left-to-right,
// short-circuiting on the first error encountered.
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *object.Environment) ([]object.Value, object.Value) {
	values := make([]object.Value, 0, len(exprs))
	for _, expr := range exprs {
		v := e.wrap(expr.Position(), e.Eval(expr, env))
		if object.IsError(v) {
			return nil, v
		}
		values = append(values, v)
	}
	return values, nil
}
