package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/wui"
	"github.com/bjaus/wui/cli"
)

func run(t *testing.T, stdin string, argv ...string) (string, error) {
	t.Helper()
	return runApp(t, true, stdin, argv...)
}

// runColor keeps escape sequences in the output. Callers must not be
// parallel since it clears the color environment.
func runColor(t *testing.T, stdin string, argv ...string) (string, error) {
	t.Helper()
	t.Setenv("NO_COLOR", "")
	t.Setenv("CLICOLOR", "")
	return runApp(t, false, stdin, argv...)
}

func runApp(t *testing.T, noColor bool, stdin string, argv ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	p := newProgram(strings.NewReader(stdin), &out, &errOut)
	p.app.Width = 80
	p.app.NoColor = noColor
	err := p.app.Run(context.Background(), argv)
	return out.String(), err
}

func TestTable(t *testing.T) {
	t.Parallel()
	out, err := run(t, "alice,30\nbob,4\n", "table")
	require.NoError(t, err)
	assert.Equal(t, "alice  30\nbob    4\n", out)
}

func TestTableTitles(t *testing.T) {
	t.Parallel()
	out, err := run(t, "name,age\nalice,30\nbob,4\n", "t", "--titles")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"name   age",
		"------------",
		"alice  30",
		"bob    4",
		"",
	}, "\n"), out)
}

func TestTableTitlesColor(t *testing.T) {
	out, err := runColor(t, "name,age\nalice,30\n", "t", "--titles")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		wui.Bold + "name   age" + wui.Reset,
		wui.Cyan + "------------" + wui.Reset,
		"alice  30",
		"",
	}, "\n"), out)
}

func TestTableTSVStripe(t *testing.T) {
	out, err := runColor(t, "a\tb\nc\td\n", "table", "--tsv", "--stripe")
	require.NoError(t, err)
	assert.Equal(t, "a  b\n"+stripeBg+"c  d"+wui.DefaultBg+"\n", out)
}

func TestTableNoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	out, err := runApp(t, false, "a\tb\nc\td\n", "table", "--tsv", "--stripe")
	require.NoError(t, err)
	assert.Equal(t, "a  b\nc  d\n", out)
}

func TestTableFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n"), 0o600))
	out, err := run(t, "", "table", path)
	require.NoError(t, err)
	assert.Equal(t, "x  y\n", out)
}

func TestTableTooNarrowFallsBack(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("word ", 30)
	input := "id,text\n1," + long + "\n2,short\n"
	out, err := run(t, input, "table", "--titles", "--wrap", "-1", "--min", "1:100")
	require.NoError(t, err)
	plain := wui.StripEscapes(out)
	assert.Contains(t, plain, "Warning: terminal too narrow")
	assert.Contains(t, plain, "id: 1\ntext: "+long+"\n\nid: 2\ntext: short\n")
}

func TestTableWrap(t *testing.T) {
	t.Parallel()
	long := strings.Repeat("word ", 30)
	out, err := run(t, "1,"+long+"\n", "table", "--wrap", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Greater(t, len(lines), 1)
	for _, line := range lines {
		assert.LessOrEqual(t, wui.VisibleLength(line), 80)
	}
}

func TestTableErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		argv   []string
		target error
	}{
		"unknown flag":  {argv: []string{"table", "--bogus"}, target: cli.ErrUnknownArgument},
		"two files":     {argv: []string{"table", "a.csv", "b.csv"}, target: cli.ErrTrailingArguments},
		"wrap no value": {argv: []string{"table", "--wrap"}, target: cli.ErrMissingArgument},
		"min no value":  {argv: []string{"table", "--min"}, target: cli.ErrMissingArgument},
		"wrap range":    {argv: []string{"table", "--wrap", "5"}, target: wui.ErrColumnOutOfRange},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := run(t, "a,b\n", tt.argv...)
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseMinWidth(t *testing.T) {
	t.Parallel()
	got, err := parseMinWidth("-1:20")
	require.NoError(t, err)
	assert.Equal(t, wui.MinWidth{Column: -1, Width: 20}, got)

	for _, bad := range []string{"1", "x:2", "1:y"} {
		_, err := parseMinWidth(bad)
		assert.Error(t, err, bad)
	}
}

func TestColors(t *testing.T) {
	out, err := runColor(t, "", "colors")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2+len(palette)+2)
	assert.Equal(t, "Color      Code        Sample", wui.StripEscapes(lines[0]))
	assert.Contains(t, out, wui.Red+"sample")
	assert.Contains(t, out, wui.Bold+"31"+wui.NoBold)
	assert.Equal(t, "", lines[len(lines)-2])

	_, err = run(t, "", "c", "extra")
	require.ErrorIs(t, err, cli.ErrTrailingArguments)
}

func TestHelp(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "help", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: wui table [<options>] [<file>]")
	assert.Contains(t, out, "  --titles")
}
