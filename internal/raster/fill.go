// Package raster implements the pixel operations of the canvas: region
// flood fill, rectangle fill and whole-image flips and rotations.
package raster

import (
	"image"
	"image/color"
)

// FloodFill recolours the 4-connected region of img that shares the colour
// of the seed pixel. It returns the number of pixels written. Seeds outside
// the image and regions already in the replacement colour are left alone.
func FloodFill(img *image.RGBA, x, y int, replacement color.RGBA) int {
	return FloodFillInto(img, img, x, y, replacement)
}

// FloodFillInto finds the region in src and writes the replacement colour to
// both src and dst. src is usually a flattened copy of dst with vector
// outlines painted in, so outlines bound the fill while only dst keeps the
// result. The two images must share bounds.
func FloodFillInto(dst, src *image.RGBA, x, y int, replacement color.RGBA) int {
	b := src.Bounds()
	if !image.Pt(x, y).In(b) {
		return 0
	}
	target := src.RGBAAt(x, y)
	if target == replacement {
		return 0
	}
	n := 0
	stack := []image.Point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.In(b) {
			continue
		}
		if src.RGBAAt(p.X, p.Y) != target {
			continue
		}
		src.SetRGBA(p.X, p.Y, replacement)
		if dst != src {
			dst.SetRGBA(p.X, p.Y, replacement)
		}
		n++
		stack = append(stack,
			image.Pt(p.X+1, p.Y),
			image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1),
			image.Pt(p.X, p.Y-1),
		)
	}
	return n
}

// FillRect sets every pixel of img inside r to c. Pixels of r outside img
// are skipped. It returns the number of pixels written.
func FillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) int {
	r = r.Canon().Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return r.Dx() * r.Dy()
}
