package presenter

import (
	"fmt"

	"github.com/piraz/ppresent/internal/textwidth"
)

// render pushes the current slide to the header, body, and footer surfaces.
// Invalid surfaces are skipped; a stale redraw is preferable to a failure
// mid-session.
func (c *Controller) render() {
	slide := c.deck.Slide(c.current)

	writeContent(c.header, []string{textwidth.CenterPad(slide.Title, c.regions.Header.Width)})

	body := slide.Body
	if c.cfg.RenderBody != nil {
		body = c.cfg.RenderBody(body)
	}
	writeContent(c.body, body)

	writeContent(c.footer, []string{c.footerLine()})

	if c.cfg.OnSlide != nil {
		c.cfg.OnSlide(buildSlideEvent(c))
	}
}

func (c *Controller) footerLine() string {
	return fmt.Sprintf(" %d / %d | %s", c.current, c.deck.Len(), c.cfg.SourceLabel)
}

func writeContent(s Surface, lines []string) {
	if s == nil || !s.Valid() {
		return
	}
	s.SetContent(lines)
}
