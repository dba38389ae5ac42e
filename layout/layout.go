package layout

import "github.com/charmbracelet/lipgloss"

// Heights and anchors are fixed by the presentation design: a one-row
// bordered header at the top, a one-row bare footer on the last row, and a
// left-inset body between them.
const (
	HeaderHeight = 1 // content rows in the header
	headerFrame  = 2 // border rows around the header content
	FooterHeight = 1

	// Rows kept clear between the body and its neighbors.
	reservedRows = 2

	BodyRow   = 4
	BodyCol   = 8
	bodyInset = 8
)

// Stacking order, lowest first. Header and footer sit above the body so
// their rows are never obscured by body content.
const (
	ZBackground = 1
	ZBody       = 50
	ZHeader     = 100
	ZFooter     = 100
)

// Region describes one rectangular screen area.
type Region struct {
	Width  int
	Height int
	Row    int
	Col    int
	ZIndex int

	// Border glyphs for the region's frame. The body uses a hidden border:
	// the glyphs are invisible but still reserve their spacing.
	Border    lipgloss.Border
	HasBorder bool
}

// Regions holds the four areas of one presentation screen.
type Regions struct {
	Background Region
	Header     Region
	Body       Region
	Footer     Region
}

// Compute derives region geometry from the usable screen size. It is pure
// and total: any dimensions, including degenerate ones, yield a valid value,
// with negative sizes clamped to zero.
func Compute(screenWidth, screenHeight int) Regions {
	bodyHeight := screenHeight - (HeaderHeight + headerFrame) - FooterHeight - reservedRows

	footerRow := screenHeight - 1
	if footerRow < 0 {
		footerRow = 0
	}

	return Regions{
		Background: Region{
			Width:  clampDim(screenWidth),
			Height: clampDim(screenHeight),
			Row:    0,
			Col:    1,
			ZIndex: ZBackground,
		},
		Header: Region{
			Width:     clampDim(screenWidth),
			Height:    HeaderHeight,
			Row:       0,
			Col:       1,
			ZIndex:    ZHeader,
			Border:    lipgloss.RoundedBorder(),
			HasBorder: true,
		},
		Body: Region{
			Width:     clampDim(screenWidth - bodyInset),
			Height:    clampDim(bodyHeight),
			Row:       BodyRow,
			Col:       BodyCol,
			ZIndex:    ZBody,
			Border:    lipgloss.HiddenBorder(),
			HasBorder: true,
		},
		Footer: Region{
			Width:  clampDim(screenWidth),
			Height: FooterHeight,
			Row:    footerRow,
			Col:    1,
			ZIndex: ZFooter,
		},
	}
}

func clampDim(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
