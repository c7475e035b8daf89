package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const lineGML = `graph
[
  node
  [
    id 0
  ]
  node
  [
    id 1
  ]
  node
  [
    id 2
  ]
  edge
  [
    source 0
    target 1
  ]
  edge
  [
    source 1
    target 2
  ]
]
`

func TestRunKPath_ProducesCSVWithBothColumns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.gml")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, os.WriteFile(in, []byte(lineGML), 0o644))
	require.NoError(t, runKPath([]string{in, out}, 1, 1))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "Vertex,Exact,KPath")
}

func TestParsePLength_DefaultsWithinRange(t *testing.T) {
	got := parsePLength(nil, 10, 9)
	require.GreaterOrEqual(t, got, 1)
	require.LessOrEqual(t, got, 10)
}

func TestParseAlpha_DefaultsToZero(t *testing.T) {
	require.Equal(t, 0.0, parseAlpha(nil))
	require.Equal(t, 0.0, parseAlpha([]string{"a", "b", "2.0"}))
}
