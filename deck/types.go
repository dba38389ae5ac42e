package deck

// Slide is one titled unit of displayed content.
//
// Title is the exact heading line including its marker prefix; it is empty
// only for the single slide produced by a document without any headings.
// Body holds every line between the slide's heading and the next heading,
// verbatim, blank lines included.
type Slide struct {
	Title string
	Body  []string
}

// Deck is the ordered collection of slides parsed from one source document.
type Deck struct {
	slides []Slide
}

// Len returns the number of slides.
func (d Deck) Len() int { return len(d.slides) }

// Slides returns the slides in source order.
func (d Deck) Slides() []Slide { return d.slides }

// Slide returns the slide at the 1-based index idx, clamped into bounds.
// An empty deck returns a zero Slide.
func (d Deck) Slide(idx int) Slide {
	if len(d.slides) == 0 {
		return Slide{}
	}
	return d.slides[d.Clamp(idx)-1]
}

// Clamp clamps a 1-based slide index into [1, Len]. Decks always have a
// lower bound of 1, even when empty.
func (d Deck) Clamp(idx int) int {
	return clampInt(idx, 1, len(d.slides))
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
