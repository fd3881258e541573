package export

import (
	"strings"
	"testing"

	"github.com/san-kum/neurovolt/internal/playback"
	"github.com/san-kum/neurovolt/internal/trace"
)

func TestTracesToSVG(t *testing.T) {
	set := trace.New([]float64{0, 50, 100, 150, 200}, map[string][]float64{
		"cell_0": {-70, -65, -60, -68, -70},
		"cell_1": {-70, -72, -75, -71, -70},
	})

	svg := TracesToSVG(set, Options{
		Width:     800,
		Height:    400,
		Markers:   []float64{21, 26, 61},
		Highlight: &playback.Window{Start: 20, End: 35},
		VMin:      -75,
		VMax:      -30,
	})

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if got := strings.Count(svg, "<polyline"); got != 2 {
		t.Errorf("expected 2 polylines, got %d", got)
	}
	if got := strings.Count(svg, "stroke-dasharray"); got != 3 {
		t.Errorf("expected 3 marker lines, got %d", got)
	}
	if !strings.Contains(svg, `fill-opacity="0.15"`) {
		t.Error("missing highlight band")
	}
}

func TestTracesToSVGEmpty(t *testing.T) {
	if svg := TracesToSVG(trace.New(nil, nil), Options{}); svg != "" {
		t.Errorf("expected empty string for empty set, got %q", svg)
	}
}

func TestTracesToSVGAutoscale(t *testing.T) {
	set := trace.New([]float64{0, 1}, map[string][]float64{
		"cell_0": {-70, -60},
	})
	svg := TracesToSVG(set, Options{})
	if !strings.Contains(svg, "<polyline") {
		t.Error("expected a polyline with autoscaled bounds")
	}
}
