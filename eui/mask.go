package eui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"measuredesk/chrome"
)

// maskPixels returns premultiplied RGBA pixels that are opaque white inside
// reg and transparent outside it.
func maskPixels(reg chrome.ClipRegion) []byte {
	b := reg.Bounds
	pix := make([]byte, 4*b.Dx()*b.Dy())
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if reg.Contains(image.Pt(x, y)) {
				pix[i], pix[i+1], pix[i+2], pix[i+3] = 0xff, 0xff, 0xff, 0xff
			}
			i += 4
		}
	}
	return pix
}

// RoundedMask clips a frame to a chrome clip region. The mask image is
// rebuilt whenever the region changes.
type RoundedMask struct {
	region chrome.ClipRegion
	img    *ebiten.Image
}

// Set updates the region. It reports whether the mask was rebuilt.
func (m *RoundedMask) Set(reg chrome.ClipRegion) bool {
	if m.img != nil && reg == m.region {
		return false
	}
	m.region = reg
	if m.img != nil {
		m.img.Deallocate()
		m.img = nil
	}
	if reg.Empty() {
		return true
	}
	m.img = ebiten.NewImage(reg.Bounds.Dx(), reg.Bounds.Dy())
	m.img.WritePixels(maskPixels(reg))
	return true
}

func (m *RoundedMask) Region() chrome.ClipRegion { return m.region }

// Composite draws src onto dst keeping only the pixels inside the region.
// dst is cleared first.
func (m *RoundedMask) Composite(dst, src *ebiten.Image) {
	dst.Clear()
	if m.img == nil {
		return
	}
	dst.DrawImage(m.img, nil)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendSourceIn}
	dst.DrawImage(src, op)
}
