package presenter

// Config configures a presentation session.
type Config struct {
	// SourceLabel names the originating document in the footer, e.g. the
	// file name. The session formats it; it never computes it.
	SourceLabel string

	// Marker overrides the slide-heading prefix. Default: "#".
	Marker string

	// Overrides are host display options held at the given values while the
	// session is active and restored to their original values on teardown.
	Overrides []OptionSpec

	// RenderBody, when set, transforms a slide's body lines before they are
	// written to the body surface. Bodies are shown verbatim otherwise.
	RenderBody func(lines []string) []string

	// OnSlide, when set, is called after every slide render.
	OnSlide func(SlideEvent)

	// Rendering options for the terminal model.
	KeyMap KeyMap
	Style  Style
}
