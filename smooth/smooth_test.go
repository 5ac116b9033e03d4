package smooth

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/svgsmooth/geom"
	"github.com/benoitkugler/svgsmooth/svgpath"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSmooth(t *testing.T) {
	for _, test := range []struct {
		factor float64
		points []geom.Point
		want   string
	}{
		{
			DefaultFactor,
			[]geom.Point{{0, 0}, {10, 0}, {20, 0}},
			"M 0,0 C 0,0 10,0 10,0 C 10,0 20,0 20,0",
		},
		{
			0.25,
			[]geom.Point{{0, 0}, {400, 400}, {800, 800}},
			"M 0,0 C 100,100 200,200 400,400 C 600,600 700,700 800,800",
		},
		{
			0.1,
			[]geom.Point{{0, 0}, {100, 0}, {100, 100}},
			"M 0,0 C 10,0 90,-10 100,0 C 110,10 100,90 100,100",
		},
		{
			DefaultFactor,
			[]geom.Point{{1.4, 2.6}, {3, 4}},
			"M 1.4,2.6 C 1,3 3,4 3,4",
		},
	} {
		got, err := Smoother{Factor: test.factor}.Smooth(test.points)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("%v: expected %q, got %q", test.points, test.want, got)
		}
	}
}

func TestSmoothCommandCount(t *testing.T) {
	points := []geom.Point{{5527, 4565}, {5519, 4570}, {5505, 4580}, {5492, 4590}, {5480, 4601}}
	d, err := NewSmoother().Smooth(points)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(d, "M 5527,4565 ") {
		t.Errorf("unexpected start %q", d)
	}
	if n := strings.Count(d, "C "); n != len(points)-1 {
		t.Errorf("expected %d curves, got %d", len(points)-1, n)
	}

	// the output is valid path data, ending at each input point
	p, err := svgpath.ParseData(d)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(points, p.Points()); diff != "" {
		t.Errorf("unexpected end points (-want +got):\n%s", diff)
	}
}

func TestControlPoint(t *testing.T) {
	s := Smoother{Factor: 0.5}
	current := geom.Pt(3, 4)
	if got := s.ControlPoint(current, nil, nil, false); got != current {
		t.Errorf("expected %v, got %v", current, got)
	}
	if got := s.ControlPoint(current, nil, nil, true); got != current {
		t.Errorf("expected %v, got %v", current, got)
	}
	next := geom.Pt(7, 4)
	if got := s.ControlPoint(current, nil, &next, false); got != geom.Pt(5, 4) {
		t.Errorf("unexpected control point %v", got)
	}
	if got := s.ControlPoint(current, nil, &next, true).Round(); got != geom.Pt(1, 4) {
		t.Errorf("unexpected reversed control point %v", got)
	}
}

func TestCommandErrors(t *testing.T) {
	s := NewSmoother()
	points := []geom.Point{{0, 0}, {1, 1}, {2, 0}}

	if _, err := s.Command(points, 0); !errors.Is(err, ErrZeroIndex) {
		t.Errorf("expected ErrZeroIndex, got %v", err)
	}
	if _, err := s.Command(points, 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if _, err := s.Command(points, -1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if cmd, err := s.Command(points, 2); err != nil || cmd[2] != geom.Pt(2, 0) {
		t.Errorf("unexpected command %v (%v)", cmd, err)
	}

	for _, pts := range [][]geom.Point{nil, {{1, 1}}} {
		if _, err := s.Smooth(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("expected ErrTooFewPoints, got %v", err)
		}
		if _, _, err := NewAngleFilter(10, false).Filter(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("expected ErrTooFewPoints, got %v", err)
		}
	}
}

var square = []geom.Point{{0, 0}, {3, 0}, {3, 3}}

func TestFilter(t *testing.T) {
	for _, test := range []struct {
		minAngle    float64
		points      []geom.Point
		want        string
		wantDropped bool
	}{
		{45, square, "M 0,0L 3,0L 3,3", false},
		{90, square, "M 0,0L 3,0L 3,3", false},
		{91, square, "M 0,0L 3,3", true},
		{10, []geom.Point{{0, 0}, {5, 5}}, "M 0,0L 5,5", false},
		{180, []geom.Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}}, "M 0,0L 1,0L 3,1", true},
	} {
		got, dropped, err := NewAngleFilter(test.minAngle, false).Filter(test.points)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want || dropped != test.wantDropped {
			t.Errorf("threshold %v: expected (%q, %v), got (%q, %v)",
				test.minAngle, test.want, test.wantDropped, got, dropped)
		}
	}
}

func TestFilterZeroThreshold(t *testing.T) {
	points := []geom.Point{{0, 0}, {3, 0}, {0, 1}, {4, 2}, {-1, -7}}
	p, dropped, err := AngleFilter{}.FilterPath(points)
	if err != nil {
		t.Fatal(err)
	}
	if dropped {
		t.Errorf("no point should be dropped with a zero threshold")
	}
	if diff := cmp.Diff(points, p.Points()); diff != "" {
		t.Errorf("unexpected points (-want +got):\n%s", diff)
	}
}

func TestFilterUsesOriginalNeighbours(t *testing.T) {
	// a zig-zag : every interior vertex is sharp, and is judged
	// with its input neighbours even when the previous one is dropped
	points := []geom.Point{{0, 0}, {10, 0}, {0, 1}, {10, 2}, {0, 3}}
	p, dropped, err := NewAngleFilter(20, false).FilterPath(points)
	if err != nil {
		t.Fatal(err)
	}
	if !dropped {
		t.Fatal("expected dropped points")
	}
	want := svgpath.Path{svgpath.MoveTo{0, 0}, svgpath.LineTo{0, 3}}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("unexpected path (-want +got):\n%s", diff)
	}
}

func TestFilterDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	f := NewAngleFilter(91, true)
	f.Logger = zap.New(core)

	if _, _, err := f.Filter(square); err != nil {
		t.Fatal(err)
	}
	if n := logs.FilterMessage("turn angle").Len(); n != 1 {
		t.Errorf("expected 1 angle entry, got %d", n)
	}
	dropped := logs.FilterMessage("angle too small, dropping point").All()
	if len(dropped) != 1 {
		t.Fatalf("expected 1 dropping entry, got %d", len(dropped))
	}
	if idx := dropped[0].ContextMap()["index"]; idx != int64(1) {
		t.Errorf("unexpected index field %v", idx)
	}

	// without the debug flag, the logger stays silent
	f.Debug = false
	if _, _, err := f.Filter(square); err != nil {
		t.Fatal(err)
	}
	if n := logs.Len(); n != 2 {
		t.Errorf("expected no new entries, got %d total", n)
	}
}
