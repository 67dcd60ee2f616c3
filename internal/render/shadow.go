package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the drop shadow painted under the page.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
	// Color tints the shadow; its alpha is ignored.
	Color color.RGBA
}

// DefaultShadowOptions returns the shadow used by the editor window.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  6,
		Offset:  image.Pt(4, 4),
		Opacity: 0.45,
		Color:   color.RGBA{0, 0, 0, 0xff},
	}
}

// PageShadow paints a blurred shadow of the page rectangle onto dst. The page
// itself is not drawn; callers paint it on top afterwards.
func PageShadow(dst *image.RGBA, page image.Rectangle, opts ShadowOptions) {
	if page.Empty() || opts.Opacity <= 0 {
		return
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}
	padded := page.Inset(-radius)
	mask := image.NewGray(image.Rect(0, 0, padded.Dx(), padded.Dy()))
	inner := page.Sub(padded.Min)
	draw.Draw(mask, inner, image.White, image.Point{}, draw.Src)
	blurred := blurGray(mask, radius)

	target := padded.Add(opts.Offset)
	clip := target.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	a := uint32(opacity*255 + 0.5)
	tint := color.RGBA{
		R: uint8(uint32(opts.Color.R) * a / 255),
		G: uint8(uint32(opts.Color.G) * a / 255),
		B: uint8(uint32(opts.Color.B) * a / 255),
		A: uint8(a),
	}
	draw.DrawMask(dst, clip, image.NewUniform(tint), image.Point{}, blurred, clip.Min.Sub(target.Min), draw.Over)
}

// blurGray applies a separable box blur of the given radius.
func blurGray(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())
	boxPass(src.Pix, tmp.Pix, w, h, src.Stride, 1, radius)
	boxPass(tmp.Pix, out.Pix, h, w, 1, tmp.Stride, radius)
	return out
}

// boxPass averages along one axis. lines is the number of lines, n the
// length of each; lineStep and step address the pixels.
func boxPass(src, dst []uint8, n, lines, lineStep, step, radius int) {
	prefix := make([]int, n+1)
	for l := 0; l < lines; l++ {
		base := l * lineStep
		for i := 0; i < n; i++ {
			prefix[i+1] = prefix[i] + int(src[base+i*step])
		}
		for i := 0; i < n; i++ {
			lo := i - radius
			if lo < 0 {
				lo = 0
			}
			hi := i + radius
			if hi >= n {
				hi = n - 1
			}
			dst[base+i*step] = uint8((prefix[hi+1] - prefix[lo]) / (hi - lo + 1))
		}
	}
}
