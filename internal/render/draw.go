// Package render holds the raster primitives used to paint drawing objects,
// brush stamps and overlays onto RGBA buffers. Every primitive clips to the
// destination bounds so callers never need to pre-check coordinates.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.Color) {
	r := thick / 2
	b := img.Bounds()
	for dx := -r; dx <= r; dx++ {
		for dy := -r; dy <= r; dy++ {
			px := x + dx
			py := y + dy
			if image.Pt(px, py).In(b) {
				img.Set(px, py, col)
			}
		}
	}
}

// Line draws a Bresenham line between the two points. thick is the pen
// width; zero and one both produce a single pixel line.
func Line(img *image.RGBA, x0, y0, x1, y1 int, col color.Color, thick int) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Rect outlines the box spanning r.Min to r.Max inclusive, the way a pen
// traces the border of an w×h rectangle anchored at r.Min.
func Rect(img *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	Line(img, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, col, thick)
	Line(img, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, col, thick)
	Line(img, r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, col, thick)
	Line(img, r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, col, thick)
}

// FillRect paints the half-open rectangle r.
func FillRect(img *image.RGBA, r image.Rectangle, col color.Color) {
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Ellipse outlines the ellipse inscribed in the box r.
func Ellipse(img *image.RGBA, r image.Rectangle, col color.Color, thick int) {
	cx := float64(r.Min.X+r.Max.X) / 2
	cy := float64(r.Min.Y+r.Max.Y) / 2
	rx := float64(r.Dx()) / 2
	ry := float64(r.Dy()) / 2
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(rx*rx+ry*ry)))
	if steps < 8 {
		steps = 8
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := int(math.Round(cx + math.Cos(angle)*rx))
		y := int(math.Round(cy + math.Sin(angle)*ry))
		if i > 0 {
			Line(img, prevX, prevY, x, y, col, thick)
		} else {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// FillEllipse paints the ellipse inscribed in the half-open box r using a
// vector rasterizer mask.
func FillEllipse(img *image.RGBA, r image.Rectangle, col color.Color) {
	if r.Empty() {
		return
	}
	clip := r.Intersect(img.Bounds())
	if clip.Empty() {
		return
	}
	w, h := r.Dx(), r.Dy()
	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	// Four cubic arcs approximate the ellipse; k is the usual circle constant.
	const k = 0.5522847498
	cx, cy := float32(w)/2, float32(h)/2
	rx, ry := float32(w)/2, float32(h)/2
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+k*ry, cx+k*rx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-k*rx, cy+ry, cx-rx, cy+k*ry, cx-rx, cy)
	z.CubeTo(cx-rx, cy-k*ry, cx-k*rx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+k*rx, cy-ry, cx+rx, cy-k*ry, cx+rx, cy)
	z.ClosePath()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	// Threshold the coverage so filled regions have hard edges and stay
	// usable as flood-fill boundaries.
	for i, a := range mask.Pix {
		if a >= 0x80 {
			mask.Pix[i] = 0xff
		} else {
			mask.Pix[i] = 0
		}
	}
	draw.DrawMask(img, clip, image.NewUniform(col), image.Point{}, mask, clip.Min.Sub(r.Min), draw.Over)
}

// Oval stamps a filled w×h oval whose bounding box starts at p.
func Oval(img *image.RGBA, p image.Point, w, h int, col color.Color) {
	FillEllipse(img, image.Rect(p.X, p.Y, p.X+w, p.Y+h), col)
}

// Square paints a size×size square centred on p.
func Square(img *image.RGBA, p image.Point, size int, col color.Color) {
	FillRect(img, image.Rect(p.X-size/2, p.Y-size/2, p.X-size/2+size, p.Y-size/2+size), col)
}

func dashedLine(img *image.RGBA, x0, y0, x1, y1, dash int, c1, c2 color.Color) {
	b := img.Bounds()
	set := func(x, y int, c color.Color) {
		if image.Pt(x, y).In(b) {
			img.Set(x, y, c)
		}
	}
	if y0 == y1 {
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		for x := x0; x <= x1; x++ {
			if ((x-x0)/dash)%2 == 0 {
				set(x, y0, c1)
			} else {
				set(x, y0, c2)
			}
		}
		return
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for y := y0; y <= y1; y++ {
		if ((y-y0)/dash)%2 == 0 {
			set(x0, y, c1)
		} else {
			set(x0, y, c2)
		}
	}
}

// DashedRect outlines r with alternating dashes of c1 and c2. A nil c2
// leaves the gaps untouched.
func DashedRect(img *image.RGBA, r image.Rectangle, dash int, c1, c2 color.Color) {
	if dash <= 0 {
		dash = 1
	}
	if c2 == nil {
		dashedGap(img, r, dash, c1)
		return
	}
	dashedLine(img, r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, dash, c1, c2)
	dashedLine(img, r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, dash, c1, c2)
	dashedLine(img, r.Min.X, r.Max.Y, r.Max.X, r.Max.Y, dash, c1, c2)
	dashedLine(img, r.Min.X, r.Min.Y, r.Min.X, r.Max.Y, dash, c1, c2)
}

func dashedGap(img *image.RGBA, r image.Rectangle, dash int, c color.Color) {
	b := img.Bounds()
	mark := func(x, y, i int) {
		if (i/dash)%2 == 0 && image.Pt(x, y).In(b) {
			img.Set(x, y, c)
		}
	}
	for x := r.Min.X; x <= r.Max.X; x++ {
		mark(x, r.Min.Y, x-r.Min.X)
		mark(x, r.Max.Y, x-r.Min.X)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		mark(r.Min.X, y, y-r.Min.Y)
		mark(r.Max.X, y, y-r.Min.Y)
	}
}

// Checkerboard fills rect of dst with alternating size×size squares.
func Checkerboard(dst *image.RGBA, rect image.Rectangle, size int, light, dark color.Color) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.Set(x, y, light)
			} else {
				dst.Set(x, y, dark)
			}
		}
	}
}
