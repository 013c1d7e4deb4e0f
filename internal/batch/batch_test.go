package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"school-renderer/internal/config"
	"school-renderer/internal/layout"
	"school-renderer/internal/raster"
	"school-renderer/internal/scene"
)

func smallConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		OutputDir:   t.TempDir(),
		Scene:       scene.Default(),
		Width:       48,
		Height:      32,
		Supersample: 2,
		Frames:      4,
		Workers:     2,
		Shading:     raster.ShadingLambert,
	}
}

func TestRunWritesEveryFrame(t *testing.T) {
	cfg := smallConfig(t)
	results := Run(context.Background(), cfg)
	require.Len(t, results, 4)

	for i, r := range results {
		assert.True(t, r.Success, "frame %d: %s", i, r.Error)
		assert.Equal(t, i, r.Frame)
		assert.Equal(t, FrameName(i), r.Image)
		assert.Positive(t, r.Stats.Drawn)

		info, err := os.Stat(filepath.Join(cfg.OutputDir, r.Image))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
	assert.InDelta(t, results[0].YawDeg+90, results[1].YawDeg, 1e-9)
}

func TestRunCancelled(t *testing.T) {
	cfg := smallConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := Run(ctx, cfg)
	require.Len(t, results, 4)
	for _, r := range results {
		if !r.Success {
			assert.NotEmpty(t, r.Error)
		}
	}
}

func TestRunReportsWriteFailure(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 1
	// a regular file where the output directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	cfg.OutputDir = filepath.Join(blocker, "out")

	results := Run(context.Background(), cfg)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.NotEmpty(t, results[0].Error)
}

func TestManifestRoundTrip(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Frames = 2
	results := Run(context.Background(), cfg)
	results = append(results, Result{Frame: 2, Error: "boom"})

	m := NewManifest(cfg.Scene, results)
	assert.Equal(t, 39, m.Primitives)
	assert.Equal(t, 18, m.Floors["ground"])
	assert.Equal(t, 10, m.Groups["staircase"])
	require.Len(t, m.Frames, 2)

	path := filepath.Join(cfg.OutputDir, "manifest.json")
	require.NoError(t, WriteManifest(path, m))
	got, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Stairs.StepCount = 0
	cfg.Shading = "lambert"
	cfg.Background = "white"
	cfg.Resolve(config.Flags{})

	bc, err := FromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, raster.ShadingLambert, bc.Shading)
	assert.Equal(t, uint8(255), bc.Background.A)
	assert.Len(t, bc.Scene.Primitives, 39-10)
	assert.Zero(t, bc.Scene.Primitives.CountByGroup()[layout.Staircase])
	assert.Nil(t, bc.Backdrop)
}

func TestFromConfigErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Shading = "phong"
	_, err := FromConfig(cfg)
	assert.Error(t, err)

	cfg = config.Default()
	cfg.Backdrop = filepath.Join(t.TempDir(), "missing.png")
	_, err = FromConfig(cfg)
	assert.ErrorContains(t, err, "backdrop")
}
