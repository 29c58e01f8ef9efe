package eui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"measuredesk/chrome"
)

type roundRect struct {
	Position point
	Size     point
	Fillet   float32
	Border   float32
	Color    color.RGBA
	Filled   bool
}

func pixelOffset(width float32) float32 {
	if int(math.Round(float64(width)))%2 == 0 {
		return 0
	}
	return 0.5
}

func drawFilledRect(dst *ebiten.Image, x, y, w, h float32, col color.Color) {
	x = float32(math.Round(float64(x)))
	y = float32(math.Round(float64(y)))
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	vector.DrawFilledRect(dst, x, y, w, h, col, false)
}

func strokeRect(dst *ebiten.Image, x, y, w, h, width float32, col color.Color) {
	width = float32(math.Round(float64(width)))
	off := pixelOffset(width)
	x = float32(math.Round(float64(x))) + off
	y = float32(math.Round(float64(y))) + off
	w = float32(math.Round(float64(w)))
	h = float32(math.Round(float64(h)))
	vector.StrokeRect(dst, x, y, w, h, width, col, false)
}

func strokeLine(dst *ebiten.Image, x0, y0, x1, y1, width float32, col color.Color) {
	width = float32(math.Round(float64(width)))
	off := pixelOffset(width)
	x0 = float32(math.Round(float64(x0))) + off
	y0 = float32(math.Round(float64(y0))) + off
	x1 = float32(math.Round(float64(x1))) + off
	y1 = float32(math.Round(float64(y1))) + off
	vector.StrokeLine(dst, x0, y0, x1, y1, width, col, true)
}

func fillRect(dst *ebiten.Image, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	drawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), col)
}

func drawRoundRect(screen *ebiten.Image, rrect *roundRect) {
	var path vector.Path

	width := float32(math.Round(float64(rrect.Border)))
	if rrect.Fillet <= 0 {
		if rrect.Filled {
			drawFilledRect(screen, rrect.Position.X, rrect.Position.Y, rrect.Size.X, rrect.Size.Y, rrect.Color)
		}
		if width > 0 {
			strokeRect(screen, rrect.Position.X, rrect.Position.Y, rrect.Size.X, rrect.Size.Y, width, rrect.Color)
		}
		return
	}
	off := float32(0)
	if !rrect.Filled {
		off = pixelOffset(width)
	}

	x := float32(math.Round(float64(rrect.Position.X))) + off
	y := float32(math.Round(float64(rrect.Position.Y))) + off
	w := float32(math.Round(float64(rrect.Size.X)))
	h := float32(math.Round(float64(rrect.Size.Y)))
	fillet := rrect.Fillet

	if !rrect.Filled && width > 0 {
		inset := width / 2
		x += inset
		y += inset
		w = max(w-width, 0)
		h = max(h-width, 0)
		fillet = max(fillet-inset, 0)
	}
	fillet = float32(math.Round(float64(min(fillet, w/2, h/2))))

	path.MoveTo(x+fillet, y)
	path.LineTo(x+w-fillet, y)
	path.QuadTo(x+w, y, x+w, y+fillet)
	path.LineTo(x+w, y+h-fillet)
	path.QuadTo(x+w, y+h, x+w-fillet, y+h)
	path.LineTo(x+fillet, y+h)
	path.QuadTo(x, y+h, x, y+h-fillet)
	path.LineTo(x, y+fillet)
	path.QuadTo(x, y, x+fillet, y)
	path.Close()

	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(rrect.Color)
	if rrect.Filled {
		vector.FillPath(screen, &path, nil, drawOp)
		return
	}
	if width <= 0 {
		return
	}
	vector.StrokePath(screen, &path, &vector.StrokeOptions{Width: width}, drawOp)
}

func drawCheckmark(screen *ebiten.Image, start, mid, end point, width float32, col color.Color) {
	var path vector.Path

	width = float32(math.Round(float64(width)))
	off := pixelOffset(width)

	path.MoveTo(float32(math.Round(float64(start.X)))+off, float32(math.Round(float64(start.Y)))+off)
	path.LineTo(float32(math.Round(float64(mid.X)))+off, float32(math.Round(float64(mid.Y)))+off)
	path.LineTo(float32(math.Round(float64(end.X)))+off, float32(math.Round(float64(end.Y)))+off)

	strokeOpts := &vector.StrokeOptions{Width: width, LineJoin: vector.LineJoinRound, LineCap: vector.LineCapRound}
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(col)
	vector.StrokePath(screen, &path, strokeOpts, drawOp)
}

// drawText draws s inside r, clipped to it.
func drawText(dst *ebiten.Image, s string, face text.Face, r image.Rectangle, col color.Color, align chrome.Align) {
	if s == "" || r.Empty() {
		return
	}
	sub, ok := dst.SubImage(r.Intersect(dst.Bounds())).(*ebiten.Image)
	if !ok {
		return
	}
	op := &text.DrawOptions{}
	op.ColorScale.ScaleWithColor(col)
	op.SecondaryAlign = text.AlignCenter
	y := float64(r.Min.Y) + float64(r.Dy())/2
	x := float64(r.Min.X)
	if align == chrome.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		x += float64(r.Dx()) / 2
	} else {
		x += 4
	}
	op.GeoM.Translate(x, y)
	text.Draw(sub, s, face, op)
}

// iconCache keeps the GPU copy of every image handed to DrawChrome.
var iconCache = map[image.Image]*ebiten.Image{}

func ebitenImage(img image.Image) *ebiten.Image {
	if e, ok := img.(*ebiten.Image); ok {
		return e
	}
	if e, ok := iconCache[img]; ok {
		return e
	}
	e := ebiten.NewImageFromImage(img)
	iconCache[img] = e
	return e
}

// DrawChrome executes chrome draw commands with the window's top-left at
// origin.
func DrawChrome(dst *ebiten.Image, ops []chrome.Op, origin image.Point) {
	for _, op := range ops {
		r := op.Rect.Add(origin)
		if op.Rect.Empty() {
			continue
		}
		switch op.Kind {
		case chrome.OpFillRect:
			fillRect(dst, r, op.Color)
		case chrome.OpIcon:
			if op.Image == nil {
				continue
			}
			img := ebitenImage(op.Image)
			b := img.Bounds()
			do := &ebiten.DrawImageOptions{Filter: ebiten.FilterLinear}
			do.GeoM.Scale(float64(r.Dx())/float64(b.Dx()), float64(r.Dy())/float64(b.Dy()))
			do.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
			dst.DrawImage(img, do)
		case chrome.OpText:
			face := boldFace(titleSize)
			if op.Align == chrome.AlignCenter {
				face = textFace(FontSize)
			}
			drawText(dst, op.Text, face, r, op.Color, op.Align)
		}
	}
}

// DrawText draws a single line of s inside r, vertically centred.
func DrawText(dst *ebiten.Image, s string, r image.Rectangle, col color.Color) {
	drawText(dst, s, textFace(FontSize), r, col, chrome.AlignStart)
}
