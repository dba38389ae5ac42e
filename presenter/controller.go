package presenter

import (
	"errors"

	"github.com/piraz/ppresent/deck"
	"github.com/piraz/ppresent/layout"
)

// State is the session lifecycle phase.
type State int

const (
	StateUninitialized State = iota
	StateActive
	StateClosed
)

var (
	// ErrInactive is returned by operations issued outside an active
	// session.
	ErrInactive = errors.New("presenter: session is not active")

	// ErrStarted is returned by Start on a controller that already ran.
	ErrStarted = errors.New("presenter: session already started")
)

// Controller owns the state of one presentation session. Hosts construct a
// fresh Controller per session; a Closed controller is not restartable.
//
// All methods must be called from a single goroutine. The host's event
// dispatch serializes them; the controller itself takes no locks.
type Controller struct {
	cfg  Config
	host Host

	state   State
	deck    deck.Deck
	current int // 1-based, clamped into deck bounds
	regions layout.Regions

	background Surface
	header     Surface
	body       Surface
	footer     Surface

	overrides []OptionOverride
}

func NewController(host Host, cfg Config) *Controller {
	return &Controller{cfg: cfg, host: host}
}

func (c *Controller) State() State { return c.state }

// CurrentSlide returns the 1-based index of the displayed slide.
func (c *Controller) CurrentSlide() int { return c.current }

func (c *Controller) Deck() deck.Deck { return c.deck }

// Regions returns the geometry computed at start or by the last resize.
func (c *Controller) Regions() layout.Regions { return c.regions }

// Start parses lines into the session deck, applies option overrides,
// creates the four surfaces, and renders the first slide.
func (c *Controller) Start(lines []string) error {
	if c.state != StateUninitialized {
		return ErrStarted
	}

	c.deck = deck.Parse(lines, deck.Options{Marker: c.cfg.Marker})
	c.current = 1

	w, h := c.host.ScreenSize()
	c.regions = layout.Compute(w, h)

	for _, o := range c.cfg.Overrides {
		orig, _ := c.host.Option(o.ID)
		c.overrides = append(c.overrides, OptionOverride{ID: o.ID, Present: o.Value, Original: orig})
		c.host.SetOption(o.ID, o.Value)
	}

	c.background = c.host.CreateSurface(c.regions.Background, false)
	c.header = c.host.CreateSurface(c.regions.Header, false)
	c.footer = c.host.CreateSurface(c.regions.Footer, false)
	c.body = c.host.CreateSurface(c.regions.Body, true)

	c.state = StateActive
	c.render()
	return nil
}

// Next advances one slide. Past the last slide it is a no-op.
func (c *Controller) Next() error { return c.moveTo(c.current + 1) }

// Prev steps back one slide. Before the first slide it is a no-op.
func (c *Controller) Prev() error { return c.moveTo(c.current - 1) }

// First jumps to slide 1.
func (c *Controller) First() error { return c.moveTo(1) }

// Last jumps to the final slide.
func (c *Controller) Last() error { return c.moveTo(c.deck.Len()) }

func (c *Controller) moveTo(idx int) error {
	if c.state != StateActive {
		return ErrInactive
	}
	next := c.deck.Clamp(idx)
	if next == c.current {
		return nil
	}
	c.current = next
	// Navigation re-renders content only; geometry is untouched.
	c.render()
	return nil
}

// Resize recomputes region geometry from the live screen size, reapplies it
// to every surviving surface, and re-renders the current slide. If the body
// surface is gone the whole call is a defensive no-op.
func (c *Controller) Resize() error {
	if c.state != StateActive {
		return ErrInactive
	}
	if c.body == nil || !c.body.Valid() {
		return nil
	}

	w, h := c.host.ScreenSize()
	c.regions = layout.Compute(w, h)

	applyGeometry(c.background, c.regions.Background)
	applyGeometry(c.header, c.regions.Header)
	applyGeometry(c.body, c.regions.Body)
	applyGeometry(c.footer, c.regions.Footer)

	c.render()
	return nil
}

// Quit tears the session down: recorded option overrides are restored to
// their original values in reverse order, then every surface is released.
// Quit is idempotent and safe to call in any state; surfaces already gone
// are skipped.
func (c *Controller) Quit() {
	if c.state == StateClosed {
		return
	}
	c.state = StateClosed

	for i := len(c.overrides) - 1; i >= 0; i-- {
		o := c.overrides[i]
		c.host.SetOption(o.ID, o.Original)
	}
	c.overrides = nil

	closeSurface(c.background)
	closeSurface(c.header)
	closeSurface(c.body)
	closeSurface(c.footer)
	c.background, c.header, c.body, c.footer = nil, nil, nil, nil
}

func applyGeometry(s Surface, r layout.Region) {
	if s == nil || !s.Valid() {
		return
	}
	s.SetGeometry(r)
}

func closeSurface(s Surface) {
	if s == nil {
		return
	}
	s.Close()
}
