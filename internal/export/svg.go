package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/neurovolt/internal/playback"
	"github.com/san-kum/neurovolt/internal/trace"
)

var strokeColors = []string{"#4363d8", "#e6194b", "#3cb44b", "#f58231"}

// Options controls the exported figure.
type Options struct {
	Width  int
	Height int
	// Markers are vertical dashed lines at stimulus times.
	Markers []float64
	// Highlight draws a translucent band over the summation window.
	Highlight *playback.Window
	// VMin/VMax fix the voltage axis; equal values mean autoscale.
	VMin float64
	VMax float64
}

// TracesToSVG renders the fully revealed traces of a recording as an SVG
// figure with markers and the highlight band, mirroring what the animation
// shows on its final frame.
func TracesToSVG(set *trace.Set, opts Options) string {
	if set.Len() == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = 960
	}
	if opts.Height <= 0 {
		opts.Height = 540
	}

	times := set.Times()
	tMin, tMax := times[0], times[set.Len()-1]
	if tMax == tMin {
		tMax = tMin + 1
	}

	vMin, vMax := opts.VMin, opts.VMax
	if vMin == vMax {
		vMin, vMax = bounds(set)
	}

	x := func(t float64) float64 {
		return (t - tMin) / (tMax - tMin) * float64(opts.Width)
	}
	y := func(v float64) float64 {
		return float64(opts.Height) - (v-vMin)/(vMax-vMin)*float64(opts.Height)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
`, opts.Width, opts.Height, opts.Width, opts.Height))

	if opts.Highlight != nil {
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="0" width="%.1f" height="%d" fill="#ffeb3b" fill-opacity="0.15"/>
`, x(opts.Highlight.Start), x(opts.Highlight.End)-x(opts.Highlight.Start), opts.Height))
	}

	for _, m := range opts.Markers {
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="#9e9e9e" stroke-width="2" stroke-dasharray="6,4" stroke-opacity="0.7"/>
`, x(m), x(m), opts.Height))
	}

	for i, id := range set.Channels() {
		values := set.Values(id)
		color := strokeColors[i%len(strokeColors)]
		sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="2" points="`, color))
		for j, v := range values {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x(times[j]), y(v)))
		}
		sb.WriteString("\"/>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func bounds(set *trace.Set) (float64, float64) {
	first := true
	var lo, hi float64
	for _, id := range set.Channels() {
		for _, v := range set.Values(id) {
			if first {
				lo, hi = v, v
				first = false
				continue
			}
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
	}
	if first || lo == hi {
		return lo - 1, hi + 1
	}
	// padding so the extremes do not sit on the frame
	pad := (hi - lo) * 0.05
	return lo - pad, hi + pad
}
