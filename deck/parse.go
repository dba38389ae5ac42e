package deck

import "strings"

// DefaultMarker is the heading prefix that starts a new slide.
const DefaultMarker = "#"

type Options struct {
	// Marker is the literal prefix that makes a line a slide heading.
	// Default: DefaultMarker. The match is "line begins with this literal
	// prefix", not markdown heading semantics; "##" lines match "#" too.
	Marker string
}

// Parse scans lines in order and splits them into slides.
//
// A heading line closes the slide accumulated so far (if it has a title) and
// opens a new one titled with the heading line itself. Every other line is
// appended verbatim to the current slide's body. The final slide is always
// emitted, so a document without headings yields exactly one untitled slide
// holding all of its lines, and empty input yields one empty slide. Parse
// never fails.
func Parse(lines []string, opt Options) Deck {
	if opt.Marker == "" {
		opt.Marker = DefaultMarker
	}

	var slides []Slide
	var cur Slide
	for _, line := range lines {
		if strings.HasPrefix(line, opt.Marker) {
			if cur.Title != "" {
				slides = append(slides, cur)
			}
			cur = Slide{Title: line}
			continue
		}
		cur.Body = append(cur.Body, line)
	}
	slides = append(slides, cur)

	return Deck{slides: slides}
}
