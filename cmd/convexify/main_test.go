package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/osuushi/convexify/advanced"
	"github.com/osuushi/convexify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lShapeInput = `0 0
2 0
2 1
1 1
1 2
0 2
`

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out, _, err := runAppWithLog(t, stdin, args...)
	return out, err
}

func runAppWithLog(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cfg, err := config.Load()
	require.NoError(t, err)
	var out, errOut bytes.Buffer
	err = newApp(cfg, strings.NewReader(stdin), &out, &errOut).run(args)
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadPolygons(t *testing.T) {
	polygons, err := readPolygons(strings.NewReader("0 0\n1 0\n0 1\n\n\n# comment\n5,5\n6 5\n5 6"))
	require.NoError(t, err)
	require.Len(t, polygons, 2)
	assert.Equal(t, []advanced.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, polygons[0].Points)
	assert.Equal(t, []advanced.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 6}}, polygons[1].Points)

	_, err = readPolygons(strings.NewReader("0 0\n1\n"))
	assert.ErrorIs(t, err, advanced.ErrParse)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadSVGPolygons(t *testing.T) {
	svg := `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 4,0 0,4"/></svg>`
	polygons, err := readSVGPolygons(strings.NewReader(svg))
	require.NoError(t, err)
	require.Len(t, polygons, 1)
	assert.Equal(t, 3, polygons[0].Len())

	_, err = readSVGPolygons(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	assert.ErrorIs(t, err, advanced.ErrParse)
}

func TestDecomposeCommand(t *testing.T) {
	out, err := runApp(t, lShapeInput, "decompose")
	require.NoError(t, err)
	polygons, err := readPolygons(strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, polygons, 2)

	t.Run("with a fixture and a drawing", func(t *testing.T) {
		fixture := writeFile(t, "fixture.yaml", "density: 3\n")
		png := filepath.Join(t.TempDir(), "out.png")
		_, err := runApp(t, lShapeInput, "decompose", "--fixture", fixture, "--png", png, "--no-trace")
		require.NoError(t, err)
		assert.FileExists(t, png)
	})

	t.Run("from svg", func(t *testing.T) {
		svg := writeFile(t, "comb.svg", `<svg xmlns="http://www.w3.org/2000/svg"><polygon points="0,0 10,0 10,6 8,6 8,2 6,2 6,6 4,6 4,2 2,2 2,6 0,6"/></svg>`)
		out, err := runApp(t, "", "decompose", "--svg", svg)
		require.NoError(t, err)
		polygons, err := readPolygons(strings.NewReader(out))
		require.NoError(t, err)
		assert.Len(t, polygons, 4)
	})
}

func TestHullCommand(t *testing.T) {
	out, err := runApp(t, lShapeInput, "hull")
	require.NoError(t, err)
	assert.Equal(t, "0 0\n2 0\n2 1\n1 2\n0 2\n", out)
}

func TestTraceCommand(t *testing.T) {
	out, err := runApp(t, "0 0\n2 2\n2 0\n0 2\n", "trace")
	require.NoError(t, err)
	assert.Equal(t, "1 1\n2 0\n2 2\n", out)

	out, err = runApp(t, "0 0\n2 2\n2 0\n0 2\n", "trace", "--lobes")
	require.NoError(t, err)
	assert.Equal(t, "1 1\n2 0\n2 2\n\n1 1\n0 2\n0 0\n", out)
}

func TestInsideCommand(t *testing.T) {
	square := writeFile(t, "square.hull", "4\n-1 -1\n1 -1\n1 1\n-1 1\n")
	out, err := runApp(t, "", "inside", "0", "0", square)
	require.NoError(t, err)
	assert.Equal(t, square+": Inside\ninside 1 of 1\n", out)

	out, err = runApp(t, "", "inside", "--ptu", "0.5", "0.5", "0", square)
	require.NoError(t, err)
	assert.Contains(t, out, ": Boundary\n")

	out, err = runApp(t, "", "inside", "--center-x", "10", "0", "0", square)
	require.NoError(t, err)
	assert.Contains(t, out, ": Outside\ninside 0 of 1\n")
}

func TestSpinCommand(t *testing.T) {
	square := writeFile(t, "square.hull", "4\n-1 -1\n1 -1\n1 1\n-1 1\n")
	out, err := runApp(t, "", "spin", square, "--to", "3.14159", "--frames", "4")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.GreaterOrEqual(t, len(lines), 4)
	assert.Contains(t, lines[len(lines)-1], "3.1416")
}

func TestSimulateCommand(t *testing.T) {
	out, err := runApp(t, lShapeInput, "simulate", "--steps", "60", "--every", "30")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 2)
}

func TestSimulateUsesConfig(t *testing.T) {
	// Square with a midpoint on every edge
	square := "0 0\n1 0\n2 0\n2 1\n2 2\n1 2\n0 2\n0 1\n"
	t.Setenv("CONVEXIFY_MAX_POLYGON_VERTICES", "4")

	_, log, err := runAppWithLog(t, square, "simulate", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, log, "pieces=3")

	t.Setenv("CONVEXIFY_MERGE_PARALLEL_EDGES", "true")
	_, log, err = runAppWithLog(t, square, "simulate", "--steps", "1")
	require.NoError(t, err)
	assert.Contains(t, log, "pieces=1")
}
