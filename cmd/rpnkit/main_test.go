package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/rpnkit/config"
	"github.com/randalmurphal/rpnkit/notation"
	"github.com/randalmurphal/rpnkit/render"
)

func compactConverter(t *testing.T) *notation.Converter {
	t.Helper()
	conv, err := notation.NewConverter(render.FormatCompact)
	require.NoError(t, err)
	return conv
}

func TestLoadConfig_Flags(t *testing.T) {
	cfg, args, err := loadConfig([]string{"--format=spaced", "--stages", "a+b", "-a"})
	require.NoError(t, err)

	assert.Equal(t, "spaced", cfg.Format)
	assert.True(t, cfg.Stages)
	assert.Equal(t, []string{"a+b", "-a"}, args)
}

func TestLoadConfig_DoubleDash(t *testing.T) {
	_, args, err := loadConfig([]string{"--", "--stages"})
	require.NoError(t, err)
	assert.Equal(t, []string{"--stages"}, args)
}

func TestLoadConfig_Layering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rpnkit.toml")
	require.NoError(t, os.WriteFile(path, []byte("format = \"json\"\nstages = true\n"), 0644))
	t.Setenv("RPNKIT_FORMAT", "yaml")

	cfg, _, err := loadConfig([]string{"--config=" + path})
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format, "env overrides file")
	assert.True(t, cfg.Stages)

	cfg, _, err = loadConfig([]string{"--config=" + path, "--format=compact"})
	require.NoError(t, err)
	assert.Equal(t, "compact", cfg.Format, "flag overrides env")
}

func TestLoadConfig_Errors(t *testing.T) {
	_, _, err := loadConfig([]string{"--verbose"})
	assert.Error(t, err)

	_, _, err = loadConfig([]string{"--format=xml"})
	assert.Error(t, err)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, notation.Convert("a+b"), false)
	assert.Equal(t, "ab+\n", buf.String())

	buf.Reset()
	printResult(&buf, notation.Convert("a+b"), true)
	assert.Equal(t, `input  : "a+b"
parts  : ["a" "+" "b"]
tokens : [a + b]
rpn    : [a b +]
output : ab+
`, buf.String())
}

func TestConvertReader(t *testing.T) {
	input := "a+b\n# comment\n\n  # indented comment\na-b-c\r\na+b*c"

	var buf bytes.Buffer
	err := convertReader(&buf, strings.NewReader(input), compactConverter(t), config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, "ab+\nab-c-\nabc*+\n", buf.String())
}

func TestConvertReader_NoCommentPrefix(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CommentPrefix = ""

	var buf bytes.Buffer
	err := convertReader(&buf, strings.NewReader("#+a\n"), compactConverter(t), cfg)
	require.NoError(t, err)
	assert.Equal(t, "#a+\n", buf.String())
}

func TestConvertFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("# header\na+b*c\na-b-c\n"), 0644))

	conv, err := notation.NewConverter(render.FormatSpaced)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, convertFile(&buf, path, conv, config.DefaultConfig()))
	assert.Equal(t, "a b c * +\na b - c -\n", buf.String())

	err = convertFile(&buf, filepath.Join(t.TempDir(), "missing.txt"), conv, config.DefaultConfig())
	assert.Error(t, err)
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runDemo(&buf, compactConverter(t), config.DefaultConfig()))

	out := buf.String()
	assert.Contains(t, out, `input  : "a+b*c/d-e-f*g*h"`)
	assert.Contains(t, out, "rpn    : [a b c * d / + e - f g * h * -]")
	assert.True(t, strings.HasSuffix(out, "output : abc*d/+e-fg*h*-\n"))
}
