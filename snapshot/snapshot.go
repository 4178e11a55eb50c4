// Package snapshot renders the framebuffer into image files.
package snapshot

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"github.com/hexaflex/chip8/devices/display"
)

// Palette maps cell values to colors.
type Palette struct {
	Off color.Color
	On  color.Color
}

// DefaultPalette draws white pixels on black.
var DefaultPalette = Palette{
	Off: color.Black,
	On:  color.White,
}

// Image returns the framebuffer as a display.Width x display.Height
// paletted image.
func Image(b *display.Buffer, pal Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, display.Width, display.Height), color.Palette{pal.Off, pal.On})
	copy(img.Pix, b.Pixels())
	return img
}

// Scale returns src enlarged by the given integer factor using
// nearest-neighbour sampling, so cells stay sharp squares.
func Scale(src image.Image, factor int) image.Image {
	if factor <= 1 {
		return src
	}

	sr := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, sr.Dx()*factor, sr.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, sr, draw.Src, nil)
	return dst
}

// Encode writes the framebuffer to w as a PNG, scaled by factor.
func Encode(w io.Writer, b *display.Buffer, pal Palette, factor int) error {
	img := Scale(Image(b, pal), factor)
	if err := png.Encode(w, img); err != nil {
		return errors.Wrapf(err, "failed to encode snapshot")
	}
	return nil
}
