package chrome

import "image"

// ClipRegion describes a rectangle with rounded corners. Hosts turn it into
// their own clipping primitive (a window shape, a mask image, a path).
type ClipRegion struct {
	Bounds   image.Rectangle
	Diameter int
}

// ComputeClipRegion returns the rounded region for a width x height window.
// The diameter is clamped to the shorter side; negative sizes give an empty
// region.
func ComputeClipRegion(width, height, diameter int) ClipRegion {
	width = max(width, 0)
	height = max(height, 0)
	diameter = min(max(diameter, 0), width, height)
	return ClipRegion{Bounds: image.Rect(0, 0, width, height), Diameter: diameter}
}

// Radius is half the corner diameter.
func (r ClipRegion) Radius() float64 { return float64(r.Diameter) / 2 }

func (r ClipRegion) Empty() bool { return r.Bounds.Empty() }

// Contains reports whether the pixel at p is inside the region. Pixel
// centres are tested against the corner circles.
func (r ClipRegion) Contains(p image.Point) bool {
	if !p.In(r.Bounds) {
		return false
	}
	if r.Diameter == 0 {
		return true
	}
	rad := r.Radius()
	px := float64(p.X) + 0.5
	py := float64(p.Y) + 0.5
	x0 := float64(r.Bounds.Min.X) + rad
	y0 := float64(r.Bounds.Min.Y) + rad
	x1 := float64(r.Bounds.Max.X) - rad
	y1 := float64(r.Bounds.Max.Y) - rad

	cx, cy := px, py
	switch {
	case px < x0:
		cx = x0
	case px > x1:
		cx = x1
	}
	switch {
	case py < y0:
		cy = y0
	case py > y1:
		cy = y1
	}
	if cx == px || cy == py {
		// Not in a corner square.
		return true
	}
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= rad*rad
}
