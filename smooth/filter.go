package smooth

import (
	"fmt"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"go.uber.org/zap"
)

// AngleFilter builds straight paths, dropping the interior
// vertices whose turn angle is strictly below MinAngle (in degrees).
//
// Each vertex is judged against its original neighbours : dropping
// a point does not change the angles computed for the following ones.
type AngleFilter struct {
	MinAngle float64

	// Debug enables the logging of the angle computed
	// for every interior vertex, at debug level.
	Debug bool
	// Logger receives the debug entries. When nil, a development
	// logger writing to standard error is used.
	Logger *zap.Logger
}

// NewAngleFilter returns a filter with the given threshold, in degrees.
func NewAngleFilter(minAngle float64, debug bool) AngleFilter {
	return AngleFilter{MinAngle: minAngle, Debug: debug}
}

func (f AngleFilter) logger() *zap.Logger {
	if !f.Debug {
		return zap.NewNop()
	}
	if f.Logger != nil {
		return f.Logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// FilterPath returns the straight path through the kept points,
// and true if at least one point has been dropped.
// The first and last points are always kept.
func (f AngleFilter) FilterPath(points []geom.Point) (svgpath.Path, bool, error) {
	if len(points) < 2 {
		return nil, false, fmt.Errorf("filtering %d point(s): %w", len(points), ErrTooFewPoints)
	}
	log := f.logger()
	hasSmallAngle := false

	out := make(svgpath.Path, 0, len(points))
	out.Start(points[0])
	for i := 1; i < len(points)-1; i++ {
		previous := geom.Line(points[i-1], points[i])
		current := geom.Line(points[i], points[i+1])
		angle := geom.TurnAngle(previous, current)

		log.Debug("turn angle", zap.Int("index", i), zap.Float64("angle", angle), zap.Float64("threshold", f.MinAngle))

		if angle < f.MinAngle {
			hasSmallAngle = true
			log.Debug("angle too small, dropping point", zap.Int("index", i), zap.Stringer("point", points[i]))
			continue
		}
		out.Line(points[i])
	}
	out.Line(points[len(points)-1])
	return out, hasSmallAngle, nil
}

// Filter returns the path data of the filtered path, such as
// "M 0,0L 3,0L 3,3", and true if at least one point has been dropped.
func (f AngleFilter) Filter(points []geom.Point) (string, bool, error) {
	p, dropped, err := f.FilterPath(points)
	if err != nil {
		return "", false, err
	}
	return p.Format(""), dropped, nil
}
