package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunEval(t *testing.T) {
	t.Run("statements from arguments share a workspace", func(t *testing.T) {
		out, _, err := execute(t, "", "eval", "a = {1 2 3}", "a * {2 3 4}", "{1 2} <= a", "#a")
		require.NoError(t, err)

		assert.Equal(t, "a = { 1 2 3 }\n{ 2 3 }\ntrue\n3\n", out)
	})

	t.Run("statements from stdin", func(t *testing.T) {
		stdin := "a = {1 2 3}\n\na - {2 3 4}\n:quit\na\n"
		out, _, err := execute(t, stdin, "eval")
		require.NoError(t, err)

		assert.Equal(t, "a = { 1 2 3 }\n{ 1 }\n", out)
	})

	t.Run("failures are reported and evaluation goes on", func(t *testing.T) {
		out, errOut, err := execute(t, "", "eval", "x + {1}", "{1} + {2}")
		require.Error(t, err)

		assert.Equal(t, "{ 1 2 }\n", out)
		assert.Contains(t, errOut, "undefined set")
		assert.Contains(t, err.Error(), "1 statements failed")
	})
	t.Run("node count is logged at debug level", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "intset.log")
		t.Setenv("INTSET_LOG_FILE", logFile)

		t.Setenv("INTSET_LOG_LEVEL", "info")
		_, _, err := execute(t, "", "eval", "{1}")
		require.NoError(t, err)

		logs, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.NotContains(t, string(logs), "evaluation finished")

		t.Setenv("INTSET_LOG_LEVEL", "debug")
		_, _, err = execute(t, "", "eval", "{1}")
		require.NoError(t, err)

		logs, err = os.ReadFile(logFile)
		require.NoError(t, err)
		assert.Contains(t, string(logs), `"live_nodes":0`)
		assert.Contains(t, string(logs), "evaluation finished")
	})
}
