package chrome

import (
	"image"
	"image/color"
)

const (
	iconInset = 5
	iconSize  = 20

	// titleOffsetX is where the title text starts; the text is vertically
	// centred in the bar.
	titleOffsetX = 30
)

// OpKind selects what an Op draws.
type OpKind int

const (
	OpFillRect OpKind = iota
	OpIcon
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFillRect:
		return "fill"
	case OpIcon:
		return "icon"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Align positions text inside an Op's Rect.
type Align int

const (
	// AlignStart draws from the left edge, vertically centred.
	AlignStart Align = iota
	// AlignCenter centres the text on both axes.
	AlignCenter
)

// Op is one draw command. Rect is in window-local coordinates and is never
// inverted; it may be empty when the window is too small.
type Op struct {
	Kind  OpKind
	Rect  image.Rectangle
	Color color.RGBA
	Text  string
	Align Align
	Image image.Image
}

// Palette holds the chrome colours.
type Palette struct {
	Bar   color.RGBA
	Title color.RGBA
	Close color.RGBA
	Glyph color.RGBA
}

var (
	DarkPalette = Palette{
		Bar:   color.RGBA{0x2b, 0x2d, 0x31, 0xff},
		Title: color.RGBA{0xe8, 0xe8, 0xe8, 0xff},
		Close: color.RGBA{0xc4, 0x2b, 0x1c, 0xff},
		Glyph: color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	LightPalette = Palette{
		Bar:   color.RGBA{0xe6, 0xe6, 0xe6, 0xff},
		Title: color.RGBA{0x20, 0x20, 0x20, 0xff},
		Close: color.RGBA{0xe8, 0x11, 0x23, 0xff},
		Glyph: color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
)

// Paint returns the draw commands for the title bar of a window of the
// given size: bar, icon, title, close box and its glyph, in that order.
// Hosts call it on every repaint.
func Paint(size image.Point, icon image.Image, title string, pal Palette) []Op {
	bounds := image.Rect(0, 0, max(size.X, 0), max(size.Y, 0))
	clip := func(r image.Rectangle) image.Rectangle {
		r = r.Intersect(bounds)
		if r.Empty() {
			return image.Rectangle{}
		}
		return r
	}

	w := bounds.Dx()
	closeRect := clip(rect(w-CloseButtonWidth, 0, w, TitleBarHeight))

	return []Op{
		{Kind: OpFillRect, Rect: clip(rect(0, 0, w, TitleBarHeight)), Color: pal.Bar},
		{Kind: OpIcon, Rect: clip(rect(iconInset, iconInset, iconInset+iconSize, iconInset+iconSize)), Image: icon},
		{Kind: OpText, Rect: clip(rect(titleOffsetX, 0, w-CloseButtonWidth, TitleBarHeight)), Color: pal.Title, Text: title, Align: AlignStart},
		{Kind: OpFillRect, Rect: closeRect, Color: pal.Close},
		{Kind: OpText, Rect: closeRect, Color: pal.Glyph, Text: "X", Align: AlignCenter},
	}
}

// rect builds a rectangle without swapping inverted coordinates, so a
// window narrower than the chrome yields an empty intersection.
func rect(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// Paint returns the draw commands for the controller's window.
func (c *Controller) Paint() []Op {
	return Paint(c.size, c.icon, c.title, c.palette)
}
