package coverage

import (
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/roomscan/roomscan/spatialmath"
)

// DefaultUpdateInterval caps full recomputation at 10 Hz.
const DefaultUpdateInterval = 100 * time.Millisecond

// Config configures a coverage pipeline.
type Config struct {
	MaskWidth      int
	MaskHeight     int
	UpdateInterval time.Duration
}

// DefaultConfig returns the standard configuration: 270x480 portrait mask,
// 10 Hz update cap.
func DefaultConfig() Config {
	return Config{
		MaskWidth:      DefaultMaskWidth,
		MaskHeight:     DefaultMaskHeight,
		UpdateInterval: DefaultUpdateInterval,
	}
}

// Validate ensures all configuration values are usable.
func (c Config) Validate() error {
	if c.MaskWidth <= 0 || c.MaskHeight <= 0 {
		return errors.Errorf("mask dimensions must be positive, got %dx%d", c.MaskWidth, c.MaskHeight)
	}
	if c.UpdateInterval < 0 {
		return errors.Errorf("update interval must be non-negative, got %v", c.UpdateInterval)
	}
	return nil
}

// Stats is a read-only snapshot of pipeline diagnostics. Instrumentation
// only; not part of the coverage contract.
type Stats struct {
	// LastUpdateDuration is the wall-clock cost of the most recent admitted
	// update.
	LastUpdateDuration time.Duration
	// TrianglesRasterized counts triangles drawn during the most recent
	// admitted update.
	TrianglesRasterized int
	// FragmentsSkipped counts fragments dropped during the most recent
	// admitted update for having a non-triangular primitive arity.
	FragmentsSkipped int
	// UpdatesAdmitted and UpdatesThrottled count Update calls over the
	// pipeline's lifetime.
	UpdatesAdmitted  int
	UpdatesThrottled int
}

// Pipeline recomputes the coverage mask from the current camera frame and
// mesh fragment snapshot, at most once per configured interval.
//
// The pipeline is single-owner: it performs no internal locking and must be
// driven from one goroutine. Readers of exported masks always observe a
// complete recomputation, never a partial one, because exports copy and
// Update runs to completion before returning.
type Pipeline struct {
	cfg    Config
	mask   *Mask
	clk    clock.Clock
	logger golog.Logger

	lastUpdate time.Time
	hasUpdated bool
	stats      Stats
}

// NewPipeline builds a pipeline with the real wall clock.
func NewPipeline(cfg Config, logger golog.Logger) (*Pipeline, error) {
	return NewPipelineWithClock(cfg, logger, clock.New())
}

// NewPipelineWithClock builds a pipeline against an injected clock so the
// update gate can be tested deterministically.
func NewPipelineWithClock(cfg Config, logger golog.Logger, clk clock.Clock) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mask, err := NewMask(cfg.MaskWidth, cfg.MaskHeight)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:    cfg,
		mask:   mask,
		clk:    clk,
		logger: logger,
	}, nil
}

// Update recomputes the coverage mask for the given camera frame and fragment
// snapshot, provided at least the configured interval has elapsed since the
// previous admitted update. It returns whether recomputation happened; on a
// throttled call the previous mask contents remain authoritative and the
// caller should simply try again on its own schedule.
//
// maxRange is the capture distance in meters; vertices farther from the
// camera, or behind it, invalidate their triangles entirely.
func (p *Pipeline) Update(frame *CameraFrame, fragments []*spatialmath.Fragment, maxRange float64) bool {
	now := p.clk.Now()
	if p.hasUpdated && now.Sub(p.lastUpdate) < p.cfg.UpdateInterval {
		p.stats.UpdatesThrottled++
		return false
	}
	p.lastUpdate = now
	p.hasUpdated = true

	p.mask.Clear()
	p.stats.TrianglesRasterized = 0
	p.stats.FragmentsSkipped = 0

	viewProjection := frame.ViewProjection()
	cameraPos := frame.WorldPosition()
	maxRangeSq := maxRange * maxRange

	for _, frag := range fragments {
		p.processFragment(frag, frame, viewProjection, cameraPos, maxRangeSq)
	}

	p.stats.LastUpdateDuration = p.clk.Since(now)
	p.stats.UpdatesAdmitted++
	p.logger.Debugw("coverage mask updated",
		"duration", p.stats.LastUpdateDuration,
		"triangles", p.stats.TrianglesRasterized,
		"fragments", len(fragments),
		"skipped", p.stats.FragmentsSkipped,
	)
	return true
}

// processFragment projects every vertex of the fragment once, then rasterizes
// each face whose three projections are all valid. Faces straddling the range
// boundary or near plane are dropped wholesale rather than clipped.
func (p *Pipeline) processFragment(
	frag *spatialmath.Fragment,
	frame *CameraFrame,
	viewProjection mgl64.Mat4,
	cameraPos r3.Vector,
	maxRangeSq float64,
) {
	if frag.VerticesPerFace() != spatialmath.TriangleArity {
		p.stats.FragmentsSkipped++
		return
	}

	meshToWorld := frag.Pose()
	vertices := frag.Vertices()
	projected := make([]projectedVertex, len(vertices))
	for i, v := range vertices {
		projected[i] = projectPoint(
			v, meshToWorld, viewProjection, cameraPos,
			maxRangeSq, frame.Viewport, p.mask.width, p.mask.height,
		)
	}

	faces := frag.Faces()
	for i := 0; i+2 < len(faces); i += spatialmath.TriangleArity {
		v0 := projected[faces[i]]
		v1 := projected[faces[i+1]]
		v2 := projected[faces[i+2]]
		if !v0.valid || !v1.valid || !v2.valid {
			continue
		}
		rasterizeTriangle(p.mask, v0, v1, v2)
		p.stats.TrianglesRasterized++
	}
}

// Reset clears the mask and re-arms the update gate for a new scanning
// session.
func (p *Pipeline) Reset() {
	p.mask.Clear()
	p.hasUpdated = false
	p.lastUpdate = time.Time{}
	p.stats = Stats{}
}

// Mask returns the live mask for overlay rendering. Callers must not retain
// it across updates; use the Export methods for snapshots.
func (p *Pipeline) Mask() *Mask {
	return p.mask
}

// ExportMask returns a snapshot of the current mask, covered=255 uncovered=0,
// row-major top-to-bottom.
func (p *Pipeline) ExportMask() []byte {
	return p.mask.Export()
}

// ExportInvertedMask returns a byte-for-byte complement snapshot of the
// current mask.
func (p *Pipeline) ExportInvertedMask() []byte {
	return p.mask.ExportInverted()
}

// Stats returns a copy of the pipeline diagnostics.
func (p *Pipeline) Stats() Stats {
	return p.stats
}
