package cmd

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/intset/calc"
)

func TestSession_Run(t *testing.T) {
	t.Run("statements and meta commands", func(t *testing.T) {
		s := newSession(false, 10)
		defer s.close()

		out, quit, err := s.run("a = {1 2 3}")
		require.NoError(t, err)
		assert.False(t, quit)
		assert.Equal(t, "a = { 1 2 3 }", out)

		out, _, err = s.run("  b = a - {2}  ")
		require.NoError(t, err)
		assert.Equal(t, "b = { 1 3 }", out)

		out, _, _ = s.run(":vars")
		assert.Equal(t, "a = { 1 2 3 }\nb = { 1 3 }", out)

		out, _, _ = s.run(":nodes")
		assert.Equal(t, "live nodes: 9", out)

		out, _, _ = s.run(":history")
		assert.Equal(t, "  1  a = {1 2 3}\n  2  b = a - {2}", out)

		out, _, _ = s.run(":del a")
		assert.Equal(t, "a removed", out)
		out, _, _ = s.run(":del a")
		assert.Equal(t, "a is not defined", out)

		out, _, _ = s.run(":clear")
		assert.Equal(t, "workspace cleared", out)
		out, _, _ = s.run(":vars")
		assert.Equal(t, "no sets defined", out)
		out, _, _ = s.run(":nodes")
		assert.Equal(t, "live nodes: 0", out)
	})

	t.Run("blank lines are ignored", func(t *testing.T) {
		s := newSession(false, 10)
		out, quit, err := s.run("   ")
		assert.NoError(t, err)
		assert.False(t, quit)
		assert.Empty(t, out)
		assert.True(t, s.history.IsEmpty())
	})

	t.Run("quit and unknown commands", func(t *testing.T) {
		s := newSession(false, 10)

		_, quit, _ := s.run(":quit")
		assert.True(t, quit)

		out, quit, _ := s.run(":bogus")
		assert.False(t, quit)
		assert.Contains(t, out, "unknown command :bogus")
	})

	t.Run("errors are returned and the statement is kept in history", func(t *testing.T) {
		s := newSession(true, 10)

		_, _, err := s.run("{2 1}")
		require.Error(t, err)
		assert.Equal(t, 1, s.history.Len())

		_, _, err = s.run("nope")
		assert.True(t, errors.Is(err, calc.ErrUndefined))
	})
}
