package batch

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"school-renderer/internal/camera"
	"school-renderer/internal/imageio"
	"school-renderer/internal/logger"
	"school-renderer/internal/mathutil"
	"school-renderer/internal/mesh"
	"school-renderer/internal/postprocess"
	"school-renderer/internal/raster"
	"school-renderer/internal/scene"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Scene       scene.Scene
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
	Shading     raster.Shading
	Background  color.NRGBA
	DoubleSided bool
	Backdrop    image.Image // optional
}

// Result holds the outcome of rendering one orbit frame.
type Result struct {
	Frame    int
	Image    string // path relative to OutputDir
	YawDeg   float64
	Position mathutil.Vec3
	Stats    raster.Stats
	Success  bool
	Error    string
}

// job is one frame with its camera. Cameras are not shared between workers.
type job struct {
	index int
	cam   *camera.OrbitCamera
}

// FrameName returns the output file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%03d.webp", i)
}

// Run renders every orbit frame using a worker pool. Frames not started
// before ctx is cancelled are reported as failed.
func Run(ctx context.Context, cfg Config) []Result {
	base := camera.FromPose(cfg.Scene.Camera)
	cams := base.Orbit(cfg.Frames)
	total := len(cams)
	results := make([]Result, total)
	var processed atomic.Int64

	// Tessellate once; workers only read the triangles.
	tris := mesh.TessellateAll(cfg.Scene.Primitives)
	lc := raster.NewLightConfig(cfg.Scene.Lights)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					logger.Sugar.Infof("[%d/%d] %.1f frames/sec", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobs := make(chan job, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.index] = renderFrame(cfg, tris, lc, j)
				processed.Add(1)
			}
		}()
	}

	// Send work
	sent := 0
send:
	for i, c := range cams {
		select {
		case <-ctx.Done():
			break send
		case jobs <- job{index: i, cam: c}:
			sent++
		}
	}
	close(jobs)

	wg.Wait()
	close(done)

	for i := sent; i < total; i++ {
		results[i] = Result{Frame: i, Error: ctx.Err().Error()}
	}

	logger.Log.Debug("batch finished",
		zap.Int("frames", total),
		zap.Int("rendered", sent),
		zap.Duration("elapsed", time.Since(start)))

	return results
}

func renderFrame(cfg Config, tris []mesh.Triangle, lc raster.LightConfig, j job) Result {
	res := Result{
		Frame:    j.index,
		Image:    FrameName(j.index),
		YawDeg:   j.cam.Yaw * 180 / math.Pi,
		Position: j.cam.Position(),
	}

	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}

	img, stats := raster.Render(tris, j.cam, lc, raster.Options{
		Width:           cfg.Width * ss,
		Height:          cfg.Height * ss,
		Shading:         cfg.Shading,
		Background:      cfg.Background,
		ForceDoubleSide: cfg.DoubleSided,
	})
	res.Stats = stats

	// Post-processing: supersample downsample
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}
	img = postprocess.Composite(img, cfg.Backdrop)

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := imageio.SaveWebP(outPath, img); err != nil {
		res.Error = err.Error()
		logger.Log.Warn("frame failed", zap.Int("frame", j.index), zap.Error(err))
		return res
	}

	logger.Log.Debug("frame rendered",
		zap.Int("frame", j.index),
		zap.Int("drawn", stats.Drawn),
		zap.Int("culled", stats.Culled))

	res.Success = true
	return res
}
