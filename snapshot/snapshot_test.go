package snapshot

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexaflex/chip8/devices/display"
)

func TestImage(t *testing.T) {
	b := display.New()
	b.DrawSprite(1, 2, []byte{0x80})

	img := Image(b, DefaultPalette)
	assert.Equal(t, display.Width, img.Bounds().Dx())
	assert.Equal(t, display.Height, img.Bounds().Dy())
	assert.Equal(t, uint8(1), img.ColorIndexAt(1, 2))
	assert.Equal(t, uint8(0), img.ColorIndexAt(0, 0))
}

func TestScale(t *testing.T) {
	b := display.New()
	b.DrawSprite(63, 31, []byte{0x80})

	img := Scale(Image(b, DefaultPalette), 4)
	assert.Equal(t, display.Width*4, img.Bounds().Dx())
	assert.Equal(t, display.Height*4, img.Bounds().Dy())

	white := color.RGBAModel.Convert(color.White)
	black := color.RGBAModel.Convert(color.Black)
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(63*4, 31*4)))
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(63*4+3, 31*4+3)))
	assert.Equal(t, black, color.RGBAModel.Convert(img.At(62*4+3, 31*4)))
}

func TestEncode(t *testing.T) {
	b := display.New()
	b.DrawSprite(0, 0, []byte{0xf0})

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b, DefaultPalette, 2))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, display.Width*2, img.Bounds().Dx())

	r, _, _, _ := img.At(7, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	r, _, _, _ = img.At(8, 0).RGBA()
	assert.Equal(t, uint32(0), r)
}
