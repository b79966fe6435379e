package lod

import (
	"fmt"

	"github.com/philipparndt/lodconv/pkg/geometry"
	"github.com/philipparndt/lodconv/pkg/mesh"
	"go.uber.org/zap"
)

// Result is the outcome of a successful conversion
type Result struct {
	Model     *mesh.Model
	Counts    Counts
	Height    HeightEstimate
	Extrusion ExtrusionStats
}

type options struct {
	log *zap.Logger
}

// Option configures Convert
type Option func(*options)

// WithLogger reports the progress of each step at debug level
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// Convert turns a LoD2.2 model into a LoD1.2 block model. The input model is
// modified in place: faces receive labels and walls and roofs are removed.
// The first failing step aborts the conversion and is reported as a *StepError.
func Convert(m *mesh.Model, cfg Config, opts ...Option) (*Result, error) {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.log

	if err := cfg.Validate(); err != nil {
		return nil, &StepError{Step: StepValidate, Err: fmt.Errorf("invalid config: %w", err)}
	}
	if err := m.Validate(); err != nil {
		return nil, &StepError{Step: StepValidate, Err: err}
	}

	adj := m.Adjacency()
	log.Debug("built adjacency",
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()),
		zap.Int("edges", adj.EdgeCount()),
		zap.Int("boundary_faces", len(adj.BoundaryFaces(3))),
	)

	counts, err := Classify(m, cfg)
	if err != nil {
		return nil, &StepError{Step: StepClassify, Err: err}
	}
	log.Debug("classified surfaces",
		zap.Int("ground", counts.Ground),
		zap.Int("wall", counts.Wall),
		zap.Int("roof", counts.Roof),
	)

	est, err := EstimateHeight(m, cfg)
	if err != nil {
		return nil, &StepError{Step: StepHeight, Err: err}
	}
	if est.Height <= geometry.Epsilon {
		return nil, &StepError{
			Step: StepHeight,
			Err:  fmt.Errorf("%w: estimated height %g is not positive", ErrDegenerateGeometry, est.Height),
		}
	}
	log.Debug("estimated height",
		zap.Float64("height", est.Height),
		zap.String("mode", string(cfg.HeightMode)),
		zap.Int("roof_faces", est.RoofFaces),
		zap.Float64("roof_area", est.RoofArea),
	)

	removed := m.RemoveFaces(func(f geometry.Face) bool {
		return f.Surface == geometry.Wall || f.Surface == geometry.Roof
	})
	log.Debug("removed wall and roof faces", zap.Int("removed", removed))

	out, stats, err := Extrude(m, est.Height, cfg)
	if err != nil {
		return nil, &StepError{Step: StepExtrude, Err: err}
	}
	if stats.Islands > 1 {
		log.Warn("ground surface is fragmented; each island is extruded separately",
			zap.Int("islands", stats.Islands))
	}
	if stats.OpenLoops > 0 {
		log.Warn("ground boundary does not close", zap.Int("open_loops", stats.OpenLoops))
	}
	log.Debug("extruded footprint",
		zap.Int("boundary_edges", stats.BoundaryEdges),
		zap.Int("wall_faces", stats.WallFaces),
		zap.Int("vertices", out.VertexCount()),
		zap.Int("faces", out.FaceCount()),
	)

	return &Result{
		Model:     out,
		Counts:    counts,
		Height:    est,
		Extrusion: stats,
	}, nil
}
