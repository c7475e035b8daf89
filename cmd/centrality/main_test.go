package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const starGML = `graph
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
  node
  [
    id 3
  ]
  node
  [
    id 4
  ]
  edge
  [
    source 0
    target 1
  ]
  edge
  [
    source 0
    target 2
  ]
  edge
  [
    source 0
    target 3
  ]
  edge
  [
    source 0
    target 4
  ]
]
`

func TestRunCentrality_ProducesCSVWithAllThreeColumns(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.gml")
	out := filepath.Join(dir, "out.csv")

	require.NoError(t, os.WriteFile(in, []byte(starGML), 0o644))
	require.NoError(t, runCentrality([]string{in, out}, 1, 1))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	content := string(data)
	require.Contains(t, content, "Vertex,Exact,Randomized,Adaptive")
}

func TestRunCentrality_RejectsUnreadableInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")
	err := runCentrality([]string{filepath.Join(dir, "missing.gml"), out}, 1, 1)
	require.Error(t, err)
}
