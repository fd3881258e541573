package viz

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurovolt/internal/playback"
)

const (
	chartWidth  = 90
	chartHeight = 18
)

type TickMsg time.Time

// Model is the bubbletea host for a playback controller. It owns the tick
// cadence and the stop signal; all playback state lives in the controller.
type Model struct {
	ctrl   *playback.Controller
	title  string
	labels map[string]string
	fps    int
	vMin   float64
	vMax   float64

	frame     playback.Frame
	haveFrame bool
	paused    bool
	cycles    int
}

// NewModel wires a controller to the terminal renderer. The voltage axis is
// fixed so the chart does not rescale as traces are revealed; equal bounds
// mean autoscale.
func NewModel(ctrl *playback.Controller, title string, labels map[string]string, fps int, vMin, vMax float64) Model {
	if fps <= 0 {
		fps = 12
	}
	return Model{
		ctrl:   ctrl,
		title:  title,
		labels: labels,
		fps:    fps,
		vMin:   vMin,
		vMax:   vMax,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	m.ctrl.Start()
	return m.tick()
}

// Update handles key input and drives one controller tick per frame message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.ctrl.Stop()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "r":
			m.ctrl.Restart()
		}
	case TickMsg:
		if !m.paused {
			frame, err := m.ctrl.Tick()
			if err != nil {
				if errors.Is(err, playback.ErrStopped) {
					return m, tea.Quit
				}
				return m, m.tick()
			}
			if frame.CycleComplete && !(m.haveFrame && m.frame.CycleComplete) {
				m.cycles++
			}
			m.frame = frame
			m.haveFrame = true
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.title)) + "\n")
	s.WriteString(m.statusLine() + "\n")

	if note := m.degradedNote(); note != "" {
		s.WriteString(warnStyle.Render(note) + "\n")
	}

	s.WriteString(chartStyle.Render(m.chart()) + "\n")
	s.WriteString(m.legend() + "\n")
	s.WriteString(m.annotations())
	s.WriteString(helpStyle.Render("SP:pause  R:restart  Q:quit"))
	return s.String()
}

func (m Model) statusLine() string {
	if !m.haveFrame || len(m.frame.Times) == 0 {
		return statusStyle.Render("waiting for data")
	}
	revealed := m.frame.Times[len(m.frame.Times)-1]
	status := fmt.Sprintf("t = %.1f ms", revealed)
	if m.paused {
		status += "  PAUSED"
	}
	if m.cycles > 0 {
		status += fmt.Sprintf("  cycle %d", m.cycles+1)
	}
	return statusStyle.Render(status)
}

func (m Model) chart() string {
	if !m.haveFrame {
		return ""
	}
	var data [][]float64
	var colors []asciigraph.AnsiColor
	for i, ch := range m.frame.Channels {
		if len(ch.Values) == 0 {
			continue
		}
		data = append(data, ch.Values)
		colors = append(colors, seriesColors[i%len(seriesColors)])
	}
	if len(data) == 0 {
		return ""
	}

	opts := []asciigraph.Option{
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption("membrane potential (mV)"),
	}
	if m.vMin != m.vMax {
		opts = append(opts,
			asciigraph.LowerBound(m.vMin),
			asciigraph.UpperBound(m.vMax))
	}
	return asciigraph.PlotMany(data, opts...)
}

func (m Model) legend() string {
	if !m.haveFrame {
		return ""
	}
	parts := make([]string, 0, len(m.frame.Channels))
	for i, ch := range m.frame.Channels {
		label := m.labels[ch.ID]
		if label == "" {
			label = ch.ID
		}
		parts = append(parts, legendStyles[i%len(legendStyles)].Render("── "+label))
	}
	return strings.Join(parts, "   ")
}

// annotations renders the fired stimulus markers and the highlight banner.
// Each marker appears when its trigger fires and stays for the rest of the
// cycle; the banner follows the highlight window tick by tick.
func (m Model) annotations() string {
	var s strings.Builder
	if len(m.frame.Markers) > 0 {
		parts := make([]string, len(m.frame.Markers))
		for i, t := range m.frame.Markers {
			parts[i] = fmt.Sprintf("%g ms", t)
		}
		s.WriteString(markerStyle.Render("stimuli: "+strings.Join(parts, "  ")) + "\n")
	}
	if m.frame.HighlightOn {
		s.WriteString(highlightStyle.Render(" SUMMATION WINDOW ") + "\n")
	}
	return s.String()
}

func (m Model) degradedNote() string {
	degraded := m.ctrl.Degraded()
	if len(degraded) == 0 {
		return ""
	}
	return "no trace for " + strings.Join(degraded, ", ")
}
