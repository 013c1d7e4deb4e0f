package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"school-renderer/internal/mathutil"
	"school-renderer/internal/scene"
)

// Manifest describes one orbit render.
type Manifest struct {
	Primitives int            `json:"primitives"`
	Floors     map[string]int `json:"floors"`
	Groups     map[string]int `json:"groups"`
	FOV        float64        `json:"fov"`
	Target     mathutil.Vec3  `json:"target"`
	Frames     []FrameEntry   `json:"frames"`
}

// FrameEntry represents one rendered frame in the manifest.
type FrameEntry struct {
	Frame    int           `json:"frame"`
	Image    string        `json:"image"`
	YawDeg   float64       `json:"yaw_deg"`
	Position mathutil.Vec3 `json:"position"`
}

// NewManifest summarises the scene and the successful frames.
func NewManifest(s scene.Scene, results []Result) Manifest {
	m := Manifest{
		Primitives: len(s.Primitives),
		Floors:     make(map[string]int),
		Groups:     make(map[string]int),
		FOV:        s.Camera.FOV,
		Target:     s.Camera.Target,
		Frames:     []FrameEntry{},
	}
	for k, n := range s.Primitives.CountByFloor() {
		m.Floors[k.String()] = n
	}
	for k, n := range s.Primitives.CountByGroup() {
		m.Groups[k.String()] = n
	}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, FrameEntry{
			Frame:    r.Frame,
			Image:    r.Image,
			YawDeg:   r.YawDeg,
			Position: r.Position,
		})
	}
	return m
}

// WriteManifest writes manifest.json to path.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("batch: read manifest %s: %w", path, err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("batch: parse manifest %s: %w", path, err)
	}
	return m, nil
}
