package batch

import (
	"fmt"

	"school-renderer/internal/config"
	"school-renderer/internal/imageio"
	"school-renderer/internal/layout"
	"school-renderer/internal/raster"
	"school-renderer/internal/scene"
)

// SceneFromConfig assembles the reference building with the configured
// stairs, camera and lights.
func SceneFromConfig(cfg config.Config) scene.Scene {
	plan := layout.ReferencePlan()
	plan.Stairs = cfg.Stairs

	s := scene.New(layout.Assemble(plan))
	s.Camera = cfg.Camera
	s.Lights = cfg.Lights
	return s
}

// FromConfig resolves a loaded config into a batch Config, decoding the
// backdrop image if one is set.
func FromConfig(cfg config.Config) (Config, error) {
	shading, err := raster.ParseShading(cfg.Shading)
	if err != nil {
		return Config{}, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return Config{}, err
	}

	bc := Config{
		OutputDir:   cfg.OutputDir,
		Scene:       SceneFromConfig(cfg),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Shading:     shading,
		Background:  bg,
		DoubleSided: cfg.DoubleSided,
	}

	if cfg.Backdrop != "" {
		img, err := imageio.LoadImage(cfg.Backdrop)
		if err != nil {
			return Config{}, fmt.Errorf("batch: backdrop: %w", err)
		}
		bc.Backdrop = img
	}
	return bc, nil
}
