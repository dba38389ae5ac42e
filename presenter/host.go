package presenter

import "github.com/piraz/ppresent/layout"

// Surface is one host-managed display area bound to a region.
//
// All methods are best-effort: writing to or closing a surface that is
// already gone must not panic. Callers consult Valid before relying on a
// surface and skip it when it reports false.
type Surface interface {
	// SetContent replaces the surface's displayed lines.
	SetContent(lines []string)

	// SetGeometry reapplies region geometry to the surface.
	SetGeometry(r layout.Region)

	// Close releases the surface. Closing twice is a no-op.
	Close()

	// Valid reports whether the surface still exists.
	Valid() bool
}

// Host supplies the display primitives a session runs on. Navigation and
// resize events are not part of the contract; hosts deliver those by calling
// the corresponding Controller methods.
type Host interface {
	// CreateSurface allocates a surface for r. focus marks the surface the
	// host should give input focus to. A nil return means the host could
	// not allocate; the controller skips nil surfaces.
	CreateSurface(r layout.Region, focus bool) Surface

	// ScreenSize returns the usable screen dimensions.
	ScreenSize() (width, height int)

	// Option returns the current value of a host display option.
	Option(id string) (value string, ok bool)

	// SetOption sets a host display option.
	SetOption(id, value string)
}

// OptionSpec names a host option and the value it should hold while a
// session is active.
type OptionSpec struct {
	ID    string
	Value string
}

// OptionOverride records one applied override so it can be restored on
// teardown.
type OptionOverride struct {
	ID       string
	Present  string
	Original string
}
