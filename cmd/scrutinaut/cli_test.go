package main_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/scrutinaut/cmd/scrutinaut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser(t *testing.T, cli *main.CLI, stdout, stderr *bytes.Buffer) *kong.Kong {
	t.Helper()

	// Use kong.Exit to prevent os.Exit from being called during tests
	parser, err := kong.New(cli,
		kong.Name("scrutinaut"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"version": "scrutinaut test"},
	)
	require.NoError(t, err)
	return parser
}

func TestCLI_Defaults(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := parser.Parse([]string{"https://example.com"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.com"}, cli.URLs)
	assert.Equal(t, "json", cli.Format)
	assert.Equal(t, 10*time.Second, cli.Timeout)
	assert.Empty(t, cli.File)
	assert.Empty(t, cli.Output)
	assert.False(t, cli.Verbose)
}

func TestCLI_ShortFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := parser.Parse([]string{"-f", "urls.txt", "-o", "out.json", "-t", "3s", "-v", "https://a.example", "https://b.example"})
	require.NoError(t, err)

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cli.URLs)
	assert.Equal(t, "urls.txt", cli.File)
	assert.Equal(t, "out.json", cli.Output)
	assert.Equal(t, 3*time.Second, cli.Timeout)
	assert.True(t, cli.Verbose)
}

func TestCLI_FormatAcceptsKnownValues(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "indent", "table", "xml"} {
		format := format
		t.Run(format, func(t *testing.T) {
			t.Parallel()

			cli := &main.CLI{}
			parser := newParser(t, cli, &bytes.Buffer{}, &bytes.Buffer{})

			_, err := parser.Parse([]string{"--format", format, "https://example.com"})
			require.NoError(t, err)
			assert.Equal(t, format, cli.Format)
		})
	}
}

func TestCLI_FormatRejectsUnknownValue(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser := newParser(t, cli, &bytes.Buffer{}, &bytes.Buffer{})

	_, err := parser.Parse([]string{"--format", "yaml", "https://example.com"})
	require.Error(t, err)
}

func TestCLI_HelpListsFlags(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	parser := newParser(t, cli, stdout, &bytes.Buffer{})

	// Parse --help (Kong writes help to stdout)
	_, _ = parser.Parse([]string{"--help"})

	help := stdout.String()
	for _, flag := range []string{"--file", "--format", "--output", "--timeout", "--verbose", "--version"} {
		assert.Contains(t, help, flag)
	}
}
