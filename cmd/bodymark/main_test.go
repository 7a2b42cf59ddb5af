package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/bodymark/internal/mesh"
	"github.com/Faultbox/bodymark/internal/meshfile"
	"github.com/Faultbox/bodymark/internal/meshtest"
)

func writeStatsMesh(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats.bin")
	require.NoError(t, meshfile.Save(path, meshtest.Buffer(mesh.StatsBufferLen, mesh.VariantStats)))
	return path
}

// run executes the CLI with args and decodes its YAML output.
func run(t *testing.T, args ...string) (map[string]any, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return nil, err
	}

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc), out.String())
	return doc, nil
}

func TestInfo(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "info", "--mesh", path)
	require.NoError(t, err)

	assert.Equal(t, "stats", doc["variant"])
	assert.Equal(t, mesh.StatsBufferLen, doc["floats"])
	assert.Equal(t, true, doc["sniffed"])
	assert.Len(t, doc["rings"], 6)

	marks := doc["landmarks"].(map[string]any)
	assert.Len(t, marks, 8)
	assert.Contains(t, marks, "mid-point-of-eyes")
	assert.Contains(t, marks, "left-shoulder")
}

func TestInfoSchemaMismatch(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "info", "--mesh", path, "--schema", "photo/v1")
	require.NoError(t, err)
	assert.Equal(t, "unsupported", doc["variant"])
	assert.Nil(t, doc["rings"])
	assert.Nil(t, doc["landmarks"])
}

func TestRings(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "rings", "--mesh", path, "--ring", "waistGirth")
	require.NoError(t, err)

	rings := doc["rings"].([]any)
	require.Len(t, rings, 1)
	waist := rings[0].(map[string]any)
	assert.Equal(t, "waistGirth", waist["name"])
	assert.Len(t, waist["smoothed"], 22)
	assert.NotNil(t, waist["tube"])
}

func TestRingsDebug(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "rings", "--mesh", path, "--ring", "waistGirth", "--debug-rings")
	require.NoError(t, err)

	waist := doc["rings"].([]any)[0].(map[string]any)
	assert.Len(t, waist["raw"], 22)
	assert.Nil(t, waist["tube"])
}

func TestRingsUnknownRing(t *testing.T) {
	path := writeStatsMesh(t)
	_, err := run(t, "rings", "--mesh", path, "--ring", "neckGirth")
	assert.Error(t, err)
}

func TestPostureFront(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "posture", "front", "--mesh", path, "--ear", "2", "--shoulder", "-1.5", "--top-hip", "0")
	require.NoError(t, err)

	assert.Equal(t, "front", doc["direction"])
	assert.Equal(t, true, doc["applicable"])
	assert.Len(t, doc["lines"], 3)
}

func TestPostureFrontFromSide(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "posture", "front", "--mesh", path, "-d", "right", "--ear", "2")
	require.NoError(t, err)

	assert.Equal(t, false, doc["applicable"])
	assert.Nil(t, doc["lines"])
}

func TestPostureSide(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "posture", "side", "--mesh", path, "--angles", "1,2,3,4")
	require.NoError(t, err)

	assert.Equal(t, "right", doc["direction"])
	assert.Equal(t, true, doc["applicable"])
	lines := doc["lines"].([]any)
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].(map[string]any)["measured"], 5)
}

func TestPostureSideAngleCount(t *testing.T) {
	path := writeStatsMesh(t)
	_, err := run(t, "posture", "side", "--mesh", path, "--angles", "1,2")
	assert.Error(t, err)
}

func TestIndicators(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "indicators", "--mesh", path,
		"-i", "bustGirth:right", "-i", "waistGirth:right", "-i", "hipGirth:left:noline")
	require.NoError(t, err)

	assert.Equal(t, true, doc["applicable"])
	anchors := doc["anchors"].([]any)
	require.Len(t, anchors, 3)
	assert.NotNil(t, anchors[0].(map[string]any)["leader"])
	assert.Nil(t, anchors[2].(map[string]any)["leader"])
}

func TestIndicatorsDefault(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "indicators", "--mesh", path)
	require.NoError(t, err)
	assert.Len(t, doc["anchors"], 6)
}

func TestFit(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "fit", "--mesh", path, "-d", "back")
	require.NoError(t, err)

	assert.Equal(t, "back", doc["direction"])
	assert.Greater(t, doc["distance"].(float64), 0.0)
}

func TestDebug(t *testing.T) {
	path := writeStatsMesh(t)
	doc, err := run(t, "debug", "--mesh", path)
	require.NoError(t, err)
	assert.Len(t, doc["box"], 24)
}

func TestNoMesh(t *testing.T) {
	_, err := run(t, "rings")
	assert.True(t, errors.Is(err, errNoMesh))
}

func TestInfoMissingMesh(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	cmd := newRootCmd()
	cmd.SetArgs([]string{"info", "--mesh", filepath.Join(t.TempDir(), "missing.bin")})
	require.Error(t, cmd.Execute())
}

func TestParseIndicators(t *testing.T) {
	inds, err := parseIndicators([]string{"waistGirth:left", "calfGirthR:right:noline"})
	require.NoError(t, err)
	require.Len(t, inds, 2)
	assert.False(t, inds[0].HideLine)
	assert.True(t, inds[1].HideLine)

	for _, bad := range []string{"waistGirth", "waistGirth:up", "neck:left", "waistGirth:left:dashed"} {
		_, err := parseIndicators([]string{bad})
		assert.Error(t, err, bad)
	}
}
