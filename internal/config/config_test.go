package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raycaster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 600, cfg.Screen.ColumnCount(), "one ray per pixel column by default")
	assert.InDelta(t, math.Pi/2, cfg.Player.FOVRadians(), 1e-12)
	assert.InDelta(t, math.Pi, cfg.Player.RotateSpeedRadians(), 1e-12)
	assert.InDelta(t, math.Pi, cfg.Player.DirectionRadians(), 1e-12)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
screen:
  columns: 160
player:
  fov_degrees: 60
map:
  generator: noise
  seed: 7
log:
  format: json
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 160, cfg.Screen.ColumnCount())
	assert.Equal(t, 600, cfg.Screen.Width, "unnamed fields keep their defaults")
	assert.Equal(t, 60.0, cfg.Player.FOVDegrees)
	assert.Equal(t, 20, cfg.Player.ViewRange)
	assert.Equal(t, "noise", cfg.Map.Generator)
	assert.Equal(t, int64(7), cfg.Map.Seed)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	path := writeConfig(t, "render:\n  backend: term\n")
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "term", cfg.Render.Backend)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeConfig(t, "screen: [1, 2\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Screen.Width = 0
	cfg.Player.FOVDegrees = 400
	cfg.Map.WallRatio = 1.5
	cfg.Map.Generator = "maze"
	cfg.Render.Backend = "opengl"
	cfg.Render.TPS = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"screen", "fov_degrees", "wall_ratio", "maze", "opengl", "tps"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestValidate_StartOutsideGeneratedMap(t *testing.T) {
	cfg := Default()
	cfg.Map.StartX = cfg.Map.Width
	assert.ErrorContains(t, cfg.Validate(), "start")
}

func TestValidate_FileSkipsGeneratorChecks(t *testing.T) {
	cfg := Default()
	cfg.Map.File = "level.map"
	cfg.Map.Width = 0
	cfg.Map.Generator = ""
	assert.NoError(t, cfg.Validate())

	cfg.Map.Encoding = "hex"
	assert.ErrorContains(t, cfg.Validate(), "encoding")
}

func TestMetricsConfig_GetAddr(t *testing.T) {
	t.Setenv(EnvMetricsAddr, ":9200")

	m := MetricsConfig{}
	assert.Equal(t, ":9200", m.GetAddr())

	m.Addr = "127.0.0.1:9100"
	assert.Equal(t, "127.0.0.1:9100", m.GetAddr())
}
