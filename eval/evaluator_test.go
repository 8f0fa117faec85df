package eval_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xunicatt/eta/eval"
	"github.com/xunicatt/eta/lexer"
	"github.com/xunicatt/eta/object"
	"github.com/xunicatt/eta/parser"
)

// run parses and evaluates src, returning the result value and whatever
// was written by print/println.
func run(t *testing.T, src string) (object.Value, string) {
	t.Helper()
	lex := lexer.New("test.eta", src)
	p := parser.New(lex)
	program := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parser errors: %v", p.Errors())

	var buf bytes.Buffer
	ev := eval.New(lex)
	ev.SetWriter(&buf)
	ev.Color = false

	result := ev.Eval(program, object.NewEnvironment())
	return result, buf.String()
}

// TestEndToEndScenarios covers representative whole-program behavior:
// arithmetic, recursion, arrays, string mutation, closures, loops, and
// slicing.
func TestEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		output string
	}{
		{"sum", `let x = 2; let y = 3; println(x + y);`, "5\n"},
		{"recursive fib", `let f = fn(n) { if (n < 2) { return n; } return f(n-1) + f(n-2); }; println(f(10));`, "55\n"},
		{"array push len", `let a = [1,2,3]; push(a, 4); println(len(a));`, "4\n"},
		{"string index write", `let s = "hello"; s[0] = "H"; println(s);`, "Hello\n"},
		{"closure capture", `let mk = fn(x) { fn(y) { return x + y; } }; let add3 = mk(3); println(add3(4));`, "7\n"},
		{"for loop", `for (let i = 0; i < 3; i = i + 1) { println(i); }`, "0\n1\n2\n"},
		{"slice", `println(slice([10,20,30,40], 1, 3));`, "[20, 30]\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, out := run(t, tc.src)
			require.False(t, object.IsError(result), "unexpected error: %v", result)
			assert.Equal(t, tc.output, out)
		})
	}
}

func TestReassignmentTypeMismatchIsDetailedError(t *testing.T) {
	result, _ := run(t, `let x = 1; x = "s";`)
	detailed, ok := result.(*object.DetailedError)
	require.True(t, ok, "expected a DetailedError, got %T (%v)", result, result)
	assert.Contains(t, detailed.Formatted, "a variable cannot be reassigned with a new type")
}

func TestLexicalScoping(t *testing.T) {
	// An outer binding is visible inside a nested block, and a binding
	// declared inside the block does not leak back out.
	result, out := run(t, `
		let x = 10;
		if (true) {
			let y = x + 1;
			println(y);
		}
		println(x);
	`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "11\n10\n", out)
}

func TestClosureObservesLaterMutation(t *testing.T) {
	result, out := run(t, `
		let counter = 0;
		let read = fn() { return counter; };
		counter = counter + 1;
		println(read());
	`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "1\n", out)
}

func TestIntegerDivisionByZero(t *testing.T) {
	result, _ := run(t, `1 / 0;`)
	require.True(t, object.IsError(result))
}

func TestArrayPushPopRoundTrip(t *testing.T) {
	result, out := run(t, `
		let a = [1, 2];
		push(a, 3);
		pop(a);
		println(len(a));
	`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "2\n", out)
}

func TestTypeBuiltinNamesEveryKind(t *testing.T) {
	cases := map[string]string{
		`type(1)`:       "int",
		`type(1.5)`:     "float",
		`type(true)`:    "bool",
		`type("s")`:     "string",
		`type([1])`:     "array",
		`type(fn(){1})`: "function",
		`type(len)`:     "builtin function",
		`type(any())`:   "null",
	}
	for src, want := range cases {
		result, _ := run(t, src)
		str, ok := result.(*object.String)
		require.True(t, ok, "%s: expected string result, got %T", src, result)
		assert.Equal(t, want, str.Value, "type(%s)", src)
	}
}

func TestRedeclarationInSameScopeIsError(t *testing.T) {
	result, _ := run(t, `let x = 1; let x = 2;`)
	assert.True(t, object.IsError(result))
}

func TestIndexAssignOutOfRange(t *testing.T) {
	result, _ := run(t, `let a = [1,2]; a[5] = 9;`)
	assert.True(t, object.IsError(result))
}

func TestPrintConcatenatesWithoutSeparator(t *testing.T) {
	result, out := run(t, `print(1, "a", 2);`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "1a2", out)

	n, ok := result.(*object.Int)
	require.True(t, ok)
	assert.EqualValues(t, 3, n.Value)
}

func TestPrintRewritesLiteralBackslashN(t *testing.T) {
	// The two-character sequence \n inside a string survives the lexer
	// untouched and is rewritten to a newline only at print time.
	result, out := run(t, `print("a\nb");`)
	require.False(t, object.IsError(result))
	assert.Equal(t, "a\nb", out)
}

func TestOpAssign(t *testing.T) {
	result, out := run(t, `let x = 10; x += 5; x *= 2; x -= 6; x /= 4; println(x);`)
	require.False(t, object.IsError(result), "unexpected error: %v", result)
	assert.Equal(t, "6\n", out)
}

func TestStringConcatAndCompare(t *testing.T) {
	_, out := run(t, `println("foo" + "bar"); println("a" < "b"); println("x" == "x");`)
	assert.Equal(t, "foobar\ntrue\ntrue\n", out)
}

func TestBangAndUnaryMinus(t *testing.T) {
	_, out := run(t, `println(!true); println(!false); println(!0); println(-3); println(-2.5);`)
	// 0 renders as "0", not "false" or "null", so it is truthy.
	assert.Equal(t, "false\ntrue\nfalse\n-3\n-2.5\n", out)
}

func TestTruthinessComparesRenderedText(t *testing.T) {
	// A string rendering as "false" or "null" is falsy, like the
	// singletons themselves.
	_, out := run(t, `
		println(!("false"));
		println(!("null"));
		println(!("anything else"));
		if ("false") { println("taken"); } else { println("not taken"); }
	`)
	assert.Equal(t, "true\ntrue\nfalse\nnot taken\n", out)
}

func TestArrayInspectQuotesStringElements(t *testing.T) {
	_, out := run(t, `println(["a", "b", 1, [2, "c"]]);`)
	assert.Equal(t, "[\"a\", \"b\", 1, [2, \"c\"]]\n", out)
}

func TestTypeMismatchInfixIsError(t *testing.T) {
	result, _ := run(t, `1 + "a";`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "type mismatch")
}

func TestFunctionReassignmentRejected(t *testing.T) {
	result, _ := run(t, `let f = fn() { return 1; }; f = 2;`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "a function type variable can not be reassigned")
}

func TestNullBindingAcceptsAnyKind(t *testing.T) {
	result, out := run(t, `let x = any(); x = 3; println(x);`)
	require.False(t, object.IsError(result), "unexpected error: %v", result)
	assert.Equal(t, "3\n", out)
}

func TestBuiltinShadowingRejected(t *testing.T) {
	result, _ := run(t, `let len = 1;`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "a function with same name already exists")
}

func TestCallArityMismatch(t *testing.T) {
	result, _ := run(t, `let f = fn(a, b) { return a; }; f(1);`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "expected 2 arguments but got 1")
}

func TestReturnExitsNearestFunctionOnly(t *testing.T) {
	_, out := run(t, `
		let f = fn() {
			if (true) {
				if (true) {
					return 1;
				}
			}
			return 2;
		};
		println(f());
	`)
	assert.Equal(t, "1\n", out)
}

func TestIntFloatConversionBuiltins(t *testing.T) {
	_, out := run(t, `println(int(3.9)); println(int(true)); println(int(false)); println(float(2));`)
	assert.Equal(t, "3\n1\n0\n2\n", out)
}

func TestSliceWholeArrayEqualsClone(t *testing.T) {
	_, out := run(t, `
		let a = [1, 2, 3];
		let b = slice(a);
		push(a, 4);
		println(b);
		println(slice(a, 0, len(a)));
	`)
	assert.Equal(t, "[1, 2, 3]\n[1, 2, 3, 4]\n", out)
}

func TestSliceBoundsErrors(t *testing.T) {
	for _, src := range []string{
		`slice([1,2], 0, 3);`,
		`slice([1,2], 2, 1);`,
		`slice([1,2], 0);`,
	} {
		result, _ := run(t, src)
		assert.True(t, object.IsError(result), "expected error for %s", src)
	}
}

func TestStringIndexReadAndWrite(t *testing.T) {
	_, out := run(t, `let s = "abc"; println(s[1]); s[2] = "Z"; println(s);`)
	assert.Equal(t, "b\nabZ\n", out)
}

func TestStringIndexWriteRequiresSingleChar(t *testing.T) {
	result, _ := run(t, `let s = "abc"; s[0] = "XY";`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "expected a single-character string")
}

func TestArrayAliasingThroughBindings(t *testing.T) {
	// Arrays are shared by reference: mutation through one binding is
	// observed through the other.
	_, out := run(t, `let a = [1]; let b = a; push(b, 2); println(a);`)
	assert.Equal(t, "[1, 2]\n", out)
}

func TestInfixEvaluatesRightOperandFirst(t *testing.T) {
	_, out := run(t, `let f = fn(x) { print(x); return x; }; f(1) + f(2);`)
	assert.Equal(t, "21", out)
}

func TestUndefinedIdentifierIsError(t *testing.T) {
	result, _ := run(t, `missing;`)
	require.True(t, object.IsError(result))
	assert.Contains(t, result.Inspect(), "undefined identifier")
}

func TestForLoopScopeDoesNotLeak(t *testing.T) {
	result, _ := run(t, `for (let i = 0; i < 1; i = i + 1) {} i;`)
	assert.True(t, object.IsError(result), "loop variable must not escape the loop")
}
