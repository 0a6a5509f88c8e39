package calc_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/intset/calc"
	"github.com/denismitr/intset/set"
	"github.com/denismitr/intset/workspace"
)

func eval(t *testing.T, ev *calc.Evaluator, input string) string {
	t.Helper()

	r, err := ev.Eval(input)
	require.NoError(t, err, input)
	defer r.Release()

	return r.String()
}

func TestEvaluator_Expressions(t *testing.T) {
	tt := []struct {
		name  string
		input string
		exp   string
	}{
		{name: "literal", input: "{1 2 3}", exp: "{ 1 2 3 }"},
		{name: "literal with commas", input: "{1, 2, 3}", exp: "{ 1 2 3 }"},
		{name: "negative values", input: "{-3 -1 4}", exp: "{ -3 -1 4 }"},
		{name: "empty literal", input: "{}", exp: "Set is empty!"},
		{name: "union", input: "{1 2 3} + {2 3 4}", exp: "{ 1 2 3 4 }"},
		{name: "intersection", input: "{1 2 3} * {2 3 4}", exp: "{ 2 3 }"},
		{name: "difference", input: "{1 2 3} - {2 3 4}", exp: "{ 1 }"},
		{name: "intersection binds tighter", input: "{1} + {2 3} * {3}", exp: "{ 1 3 }"},
		{name: "parentheses", input: "({1} + {2 3}) * {3}", exp: "{ 3 }"},
		{name: "left associative", input: "{1 2 3} - {1} - {2}", exp: "{ 3 }"},
		{name: "subset", input: "{1 2} <= {1 2 3}", exp: "true"},
		{name: "not a subset", input: "{1 2 3} <= {1 2}", exp: "false"},
		{name: "equality", input: "{1 2} == {1} + {2}", exp: "true"},
		{name: "membership", input: "2 in {1 2 3}", exp: "true"},
		{name: "negative membership", input: "-2 in {1 2 3}", exp: "false"},
		{name: "cardinality", input: "#({1 2} + {5})", exp: "3"},
		{name: "unsorted literal in lenient mode", input: "{3 1 2 1}", exp: "{ 1 2 3 }"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ev := calc.New(workspace.New())
			assert.Equal(t, tc.exp, eval(t, ev, tc.input))
		})
	}
}

func TestEvaluator_Assignments(t *testing.T) {
	t.Run("bind and reuse names", func(t *testing.T) {
		ws := workspace.New()
		ev := calc.New(ws)

		assert.Equal(t, "a = { 1 2 3 }", eval(t, ev, "a = {1 2 3}"))
		assert.Equal(t, "b = { 2 3 4 }", eval(t, ev, "b = {2 3 4}"))
		assert.Equal(t, "{ 1 2 3 4 }", eval(t, ev, "a + b"))
		assert.Equal(t, "{ 1 2 3 }", eval(t, ev, "a"), "operands must not be mutated")
		assert.Equal(t, "true", eval(t, ev, "a * b <= b"))
		assert.Equal(t, []string{"a", "b"}, ws.Names())
	})

	t.Run("compound assignment mutates in place", func(t *testing.T) {
		ws := workspace.New()
		ev := calc.New(ws)
		eval(t, ev, "a = {1 2 3}")
		bound, _ := ws.Get("a")

		assert.Equal(t, "a = { 1 2 3 4 }", eval(t, ev, "a += {2 3 4}"))
		assert.Equal(t, "a = { 2 3 4 }", eval(t, ev, "a *= {2 3 4 5}"))
		assert.Equal(t, "a = { 4 }", eval(t, ev, "a -= {2 3}"))

		after, _ := ws.Get("a")
		assert.Same(t, bound, after)
	})

	t.Run("compound assignment with itself", func(t *testing.T) {
		ev := calc.New(workspace.New())
		eval(t, ev, "a = {1 2 3}")

		assert.Equal(t, "a = { 1 2 3 }", eval(t, ev, "a += a"))
		assert.Equal(t, "a = { 1 2 3 }", eval(t, ev, "a *= a"))
		assert.Equal(t, "a = Set is empty!", eval(t, ev, "a -= a"))
	})

	t.Run("rebinding from itself", func(t *testing.T) {
		ev := calc.New(workspace.New())
		eval(t, ev, "a = {1 2}")

		assert.Equal(t, "a = { 1 2 }", eval(t, ev, "a = a"))
		assert.Equal(t, "a = { 1 2 5 }", eval(t, ev, "a = a + {5}"))
	})

	t.Run("temporaries are released", func(t *testing.T) {
		ws := workspace.New()
		ev := calc.New(ws)

		eval(t, ev, "a = {1 2 3}")
		eval(t, ev, "b = a + {4 5} - {1}")
		eval(t, ev, "a * b <= b")
		eval(t, ev, "3 in a + b")
		eval(t, ev, "#(a - b)")
		eval(t, ev, "a += b * {2}")

		live := 0
		ws.ForEach(func(name string, s *set.SortedSet, order int) {
			live += s.Cardinality() + 2
		})
		assert.Equal(t, live, ws.Counter().Live())
	})
}

func TestEvaluator_Errors(t *testing.T) {
	tt := []struct {
		name   string
		input  string
		target error
	}{
		{name: "undefined name", input: "a + {1}", target: calc.ErrUndefined},
		{name: "undefined compound target", input: "x += {1}", target: calc.ErrUndefined},
		{name: "unclosed set", input: "{1 2", target: calc.ErrSyntax},
		{name: "unclosed parenthesis", input: "({1}", target: calc.ErrSyntax},
		{name: "unknown character", input: "{1} & {2}", target: calc.ErrSyntax},
		{name: "trailing input", input: "{1} {2}", target: calc.ErrSyntax},
		{name: "membership without set", input: "1 in", target: calc.ErrSyntax},
		{name: "empty input", input: "", target: calc.ErrSyntax},
		{name: "integer overflow", input: "{99999999999999999999999}", target: calc.ErrSyntax},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			ev := calc.New(workspace.New())
			_, err := ev.Eval(tc.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.target), "unexpected error %v", err)
		})
	}

	t.Run("only ascii digits form integers", func(t *testing.T) {
		ev := calc.New(workspace.New())

		_, err := ev.Eval("{1 ٣}")
		require.Error(t, err)
		assert.True(t, errors.Is(err, calc.ErrSyntax))
		assert.Contains(t, err.Error(), "unexpected character")
		assert.NotContains(t, err.Error(), "out of range")
	})

	t.Run("strict mode rejects unsorted literals", func(t *testing.T) {
		ws := workspace.New()
		ev := calc.New(ws, calc.WithStrict(true))

		_, err := ev.Eval("a = {3 1 2}")
		require.Error(t, err)
		assert.True(t, errors.Is(err, set.ErrUnsorted))
		assert.Contains(t, err.Error(), "set at 4")
		assert.False(t, ws.Has("a"))

		assert.Equal(t, "{ 1 2 3 }", eval(t, ev, "{1 2 3}"))
	})

	t.Run("failed expression leaves nothing behind", func(t *testing.T) {
		ws := workspace.New()
		ev := calc.New(ws)

		_, err := ev.Eval("{1 2 3} + missing")
		require.Error(t, err)
		assert.Equal(t, 0, ws.Counter().Live())
	})
}
