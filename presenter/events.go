package presenter

// SlideEvent describes the slide shown after a render.
type SlideEvent struct {
	Index int // 1-based
	Count int
	Title string
}

func buildSlideEvent(c *Controller) SlideEvent {
	return SlideEvent{
		Index: c.current,
		Count: c.deck.Len(),
		Title: c.deck.Slide(c.current).Title,
	}
}
