package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execCLI runs the root command with the given args and returns combined
// stdout output.
func execCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestNewRootCommandStructure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "materna", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"analyze", "context", "redact", "myths"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestNewRootCommandGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), "missing flag %q", name)
	}
}

func TestGetCLIContextMissing(t *testing.T) {
	cmd := NewRootCommand()
	_, err := GetCLIContext(cmd)
	require.Error(t, err)
}

func TestFormatTable(t *testing.T) {
	out := FormatTable(
		[]string{"ID", "VALUE"},
		[][]string{{"a", "1"}, {"longer-id", "22"}},
	)
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "longer-id")

	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, 4, lines)

	assert.Empty(t, FormatTable(nil, nil))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", padRight("ab", 5))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
}
