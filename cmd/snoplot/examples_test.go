package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExamplesSans(t *testing.T) {
	out := t.TempDir()
	require.NoError(t, runExamples(exampleOpts{style: "sans", out: out}))

	for _, name := range []string{"example1D_Sans.pdf", "example2D_Sans.pdf"} {
		fi, err := os.Stat(filepath.Join(out, name))
		require.NoError(t, err, name)
		assert.Greater(t, fi.Size(), int64(0), name)
	}
}

func TestRunExamplesWithRC(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("figure_width: 9\ntick_pad: 8\n"), 0o644))

	out := t.TempDir()
	require.NoError(t, runExamples(exampleOpts{style: "sans", out: out, rc: rc}))

	_, err := os.Stat(filepath.Join(out, "example1D_Sans.pdf"))
	require.NoError(t, err)
}

func TestRunExamplesBadRC(t *testing.T) {
	rc := filepath.Join(t.TempDir(), "rc.yaml")
	require.NoError(t, os.WriteFile(rc, []byte("no_such_knob: 1\n"), 0o644))

	require.Error(t, runExamples(exampleOpts{style: "sans", out: t.TempDir(), rc: rc}))
}

func TestRunExamplesUnknownStyle(t *testing.T) {
	require.Error(t, runExamples(exampleOpts{style: "fancy", out: t.TempDir()}))
}

func TestRunExamplesTimesMissingFont(t *testing.T) {
	err := runExamples(exampleOpts{
		style: "times",
		font:  filepath.Join(t.TempDir(), "nope.ttf"),
		out:   t.TempDir(),
	})
	require.Error(t, err, "publication style must not render without its font")
}

func TestStylesCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := stylesCmd()
	cmd.SetOut(&buf)
	require.NoError(t, cmd.Execute())

	got := buf.String()
	assert.Contains(t, got, "histogram")
	assert.Contains(t, got, "blue")
	assert.Contains(t, got, "errorbar")
}
