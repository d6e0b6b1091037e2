// Package checker runs the polygon validation pipeline: read coordinates,
// undo the SceneKit transform, close the boundary, validate its structure,
// then test it for self-intersections. Stages run in that order and the
// first failure stops the run.
package checker

import (
	"errors"
	"fmt"

	logging "github.com/op/go-logging"

	"polycheck/coords"
	"polycheck/geom"
	"polycheck/polygon"
)

var log = logging.MustGetLogger("polycheck:checker")

// ErrNoPoints reports a coordinate file that parsed fine but holds no pairs.
var ErrNoPoints = errors.New("no coordinate pairs in file")

// Report is the outcome of a completed run.
type Report struct {
	Points      polygon.Sequence // closed, validated boundary
	Simple      bool
	Area        float64 // signed shoelace area
	Orientation string
}

// Run executes the pipeline on the file at path. eps is the tolerance for
// the intersection predicates. Any anticipated failure comes back as an
// error wrapped with the stage that detected it.
func Run(path string, eps float64) (*Report, error) {
	pts, err := coords.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coordinates: %w", err)
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("read coordinates: %w", ErrNoPoints)
	}
	log.Debugf("read %d coordinate pairs from %s", len(pts), path)

	seq := polygon.Sequence(geom.SceneKitInverse.ApplyAll(pts))
	log.Debugf("undid SceneKit transform on %d points", len(seq))

	seq = seq.Close()
	if err := seq.Validate(); err != nil {
		return nil, fmt.Errorf("invalid polygon: %w", err)
	}
	log.Debugf("closed boundary has %d points (%d edges)", len(seq), len(seq)-1)

	simple := seq.IsSimple(eps)
	log.Debugf("intersection scan done: simple=%v (epsilon=%g)", simple, eps)

	return &Report{
		Points:      seq,
		Simple:      simple,
		Area:        seq.Area(),
		Orientation: seq.Orientation(),
	}, nil
}
