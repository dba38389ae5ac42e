package presenter

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/piraz/ppresent/layout"
)

// Display options understood by TerminalHost.
const (
	// OptionCursor controls terminal cursor visibility: "visible" or
	// "hidden". This is the presentation-mode override a terminal host has
	// in place of an editor's command-line height.
	OptionCursor = "cursor"

	CursorVisible = "visible"
	CursorHidden  = "hidden"
)

// DefaultOverrides returns the option overrides a terminal presentation
// usually wants while active.
func DefaultOverrides() []OptionSpec {
	return []OptionSpec{{ID: OptionCursor, Value: CursorHidden}}
}

// TerminalHost materializes surfaces as viewports composited by z-order
// into one terminal frame. It implements Host.
type TerminalHost struct {
	width  int
	height int

	surfaces []*termSurface
	options  map[string]string
	style    Style

	// output applies cursor-visibility options; nil leaves them recorded
	// but otherwise inert (useful under test).
	output *termenv.Output
}

func NewTerminalHost(output *termenv.Output, style Style) *TerminalHost {
	return &TerminalHost{
		options: map[string]string{OptionCursor: CursorVisible},
		style:   style,
		output:  output,
	}
}

// SetScreenSize records the usable terminal dimensions. Hosts call it on
// every terminal resize before forwarding the event to the controller.
func (h *TerminalHost) SetScreenSize(width, height int) {
	h.width, h.height = width, height
}

func (h *TerminalHost) ScreenSize() (int, int) { return h.width, h.height }

func (h *TerminalHost) CreateSurface(r layout.Region, focus bool) Surface {
	s := &termSurface{
		region:  r,
		vp:      viewport.New(r.Width, r.Height),
		style:   h.styleFor(r),
		focused: focus,
	}
	h.surfaces = append(h.surfaces, s)
	return s
}

func (h *TerminalHost) Option(id string) (string, bool) {
	v, ok := h.options[id]
	return v, ok
}

func (h *TerminalHost) SetOption(id, value string) {
	h.options[id] = value
	if id == OptionCursor && h.output != nil {
		if value == CursorHidden {
			h.output.HideCursor()
		} else {
			h.output.ShowCursor()
		}
	}
}

// View composites every open surface over a blank canvas, lowest z-index
// first, each at its region anchor.
func (h *TerminalHost) View() string {
	open := make([]*termSurface, 0, len(h.surfaces))
	for _, s := range h.surfaces {
		if s.Valid() {
			open = append(open, s)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].region.ZIndex < open[j].region.ZIndex
	})

	canvas := lipgloss.NewStyle().Width(h.width).Height(h.height).Render("")
	for _, s := range open {
		canvas = overlay.Composite(
			s.view(),
			canvas,
			overlay.Left,
			overlay.Top,
			s.region.Col,
			s.region.Row,
		)
	}
	return canvas
}

// styleFor maps a region to its paint style. Header and footer share a
// stacking level, so the top-anchored one is the header.
func (h *TerminalHost) styleFor(r layout.Region) lipgloss.Style {
	switch {
	case r.ZIndex == layout.ZBackground:
		return h.style.Background
	case r.ZIndex == layout.ZBody:
		return h.style.Body
	case r.Row == 0:
		return h.style.Header
	default:
		return h.style.Footer
	}
}

// termSurface is one viewport-backed display area.
type termSurface struct {
	region  layout.Region
	vp      viewport.Model
	style   lipgloss.Style
	focused bool
	closed  bool
}

func (s *termSurface) SetContent(lines []string) {
	if s.closed {
		return
	}
	s.vp.SetContent(strings.Join(lines, "\n"))
}

func (s *termSurface) SetGeometry(r layout.Region) {
	if s.closed {
		return
	}
	s.region = r
	s.vp.Width = r.Width
	s.vp.Height = r.Height
}

func (s *termSurface) Close() { s.closed = true }

func (s *termSurface) Valid() bool { return !s.closed }

func (s *termSurface) view() string {
	st := s.style.Width(s.region.Width).Height(s.region.Height)
	if s.region.HasBorder {
		st = st.Border(s.region.Border)
	}
	return st.Render(s.vp.View())
}
