package raster

import "image"

// FlipHorizontal returns a mirror of img across its vertical axis.
func FlipHorizontal(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(w-1-x, y, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// FlipVertical returns a mirror of img across its horizontal axis.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetRGBA(x, h-1-y, img.RGBAAt(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}

// Rotate90 returns img turned a quarter turn. The result has the width and
// height swapped.
func Rotate90(img *image.RGBA, clockwise bool) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, h, w))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(b.Min.X+x, b.Min.Y+y)
			if clockwise {
				out.SetRGBA(h-1-y, x, c)
			} else {
				out.SetRGBA(y, w-1-x, c)
			}
		}
	}
	return out
}

// FlipPoint maps p the way FlipHorizontal or FlipVertical move the pixel at
// p in a w×h image.
func FlipPoint(p image.Point, w, h int, horizontal bool) image.Point {
	if horizontal {
		return image.Pt(w-1-p.X, p.Y)
	}
	return image.Pt(p.X, h-1-p.Y)
}

// RotatePoint maps p the way Rotate90 moves the pixel at p in a w×h image.
func RotatePoint(p image.Point, w, h int, clockwise bool) image.Point {
	if clockwise {
		return image.Pt(h-1-p.Y, p.X)
	}
	return image.Pt(p.Y, w-1-p.X)
}
