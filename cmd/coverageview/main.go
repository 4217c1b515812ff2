// Package main renders the coverage mask of a synthetic room scan to PNG
// files, standing in for the live display overlay.
package main

import (
	"context"
	"flag"
	"image"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/edaniels/golog"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/utils"

	"github.com/roomscan/roomscan/coverage"
	"github.com/roomscan/roomscan/spatialmath"
)

var logger = golog.NewDevelopmentLogger("coverageview")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, logger golog.Logger) error {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	outDir := flags.String("out", ".", "output directory for PNG files")
	maxRange := flags.Float64("range", 3.0, "capture range in meters")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	pipeline, err := coverage.NewPipeline(coverage.DefaultConfig(), logger)
	if err != nil {
		return err
	}

	// a small synthetic room: floor plus two walls, camera in a corner
	fragments := []*spatialmath.Fragment{
		spatialmath.NewQuadFragment(spatialmath.FloorPose(r3.Vector{Y: -1.2}), 4, 4),
		spatialmath.NewQuadFragment(spatialmath.WallPose(r3.Vector{Z: -2}), 4, 2.4),
		spatialmath.NewQuadFragment(
			spatialmath.WallPose(r3.Vector{X: -2}).Mul4(mgl64.HomogRotate3DY(mgl64.DegToRad(90))),
			4, 2.4,
		),
	}

	frame := coverage.NewPerspectiveFrame(
		r3.Vector{X: 1.5, Y: 0, Z: 1.5},
		r3.Vector{X: -1, Y: -0.5, Z: -1},
		mgl64.DegToRad(60),
		image.Point{1080, 1920},
	)

	if !pipeline.Update(&frame, fragments, *maxRange) {
		return errors.New("first update was throttled; this should be impossible")
	}

	stats := pipeline.Stats()
	logger.Infow("scan complete",
		"triangles", stats.TrianglesRasterized,
		"covered_cells", pipeline.Mask().CoveredCount(),
		"duration", stats.LastUpdateDuration,
	)

	mask := pipeline.Mask()
	for name, img := range map[string]image.Image{
		"mask.png":     mask.Image(),
		"inverted.png": mask.InvertedImage(),
		"overlay.png":  mask.OverlayImage(frame.Viewport),
	} {
		path := filepath.Join(*outDir, name)
		if err := writePNG(path, img); err != nil {
			return errors.Wrapf(err, "writing %s", path)
		}
		logger.Infof("wrote %s", path)
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	return imaging.Save(img, path)
}
