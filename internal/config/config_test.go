package config

import (
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-renderer/internal/mathutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, "basic", cfg.Shading)
	assert.Equal(t, mathutil.Vec3{10, 5, 15}, cfg.Camera.Position)
	assert.Equal(t, 50.0, cfg.Camera.FOV)
	assert.Equal(t, 5, cfg.Stairs.StepCount)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yaml")
	yamlContent := `
output_dir: out
backdrop: sky.tga
width: 320
frames: 4
shading: lambert
background: "#102030"
camera:
  position: [0, 8, 20]
  fov: 35
stairs:
  step_count: 7
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "out"), cfg.OutputDir)
	assert.Equal(t, filepath.Join(dir, "sky.tga"), cfg.Backdrop)
	assert.Equal(t, 320, cfg.Width)
	assert.Equal(t, 480, cfg.Height, "unset fields keep defaults")
	assert.Equal(t, 4, cfg.Frames)
	assert.Equal(t, "lambert", cfg.Shading)
	assert.Equal(t, mathutil.Vec3{0, 8, 20}, cfg.Camera.Position)
	assert.Equal(t, 35.0, cfg.Camera.FOV)
	assert.Equal(t, 7, cfg.Stairs.StepCount)
	assert.Equal(t, 0.2, cfg.Stairs.StepHeight)
	assert.Equal(t, 0.5, cfg.Lights.Ambient)
	assert.Equal(t, "debug", cfg.Logging.Level)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, bg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "config: read")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [oops"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "config: parse")
}

func TestResolve(t *testing.T) {
	cfg := Config{}
	cfg.Resolve(Flags{Width: 100, Frames: 3, Shading: "lambert", LogLevel: "warn"})

	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 480, cfg.Height)
	assert.Equal(t, 3, cfg.Frames)
	assert.Equal(t, "lambert", cfg.Shading)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "renders", cfg.OutputDir)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 2, cfg.Supersample)
	assert.Equal(t, 50.0, cfg.Camera.FOV)
}

func TestResolveFlagsOverrideFile(t *testing.T) {
	cfg := Default()
	cfg.Workers = 2
	cfg.Resolve(Flags{OutputDir: "/tmp/x", Workers: 8})
	assert.Equal(t, "/tmp/x", cfg.OutputDir)
	assert.Equal(t, 8, cfg.Workers)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("LightBlue")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 173, G: 216, B: 230, A: 255}, c)

	c, err = ParseColor("")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{}, c)

	_, err = ParseColor("#12")
	assert.Error(t, err)
	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
	_, err = ParseColor("notacolor")
	assert.Error(t, err)
}
