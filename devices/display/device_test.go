package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func countSet(b *Buffer) int {
	var n int
	for _, v := range b.Pixels() {
		n += int(v)
	}
	return n
}

func TestDrawSprite(t *testing.T) {
	b := New()

	collision := b.DrawSprite(0, 0, []byte{0xa0, 0x01})
	assert.False(t, collision)
	assert.True(t, b.Dirty())

	assert.Equal(t, byte(1), b.Pixel(0, 0))
	assert.Equal(t, byte(0), b.Pixel(1, 0))
	assert.Equal(t, byte(1), b.Pixel(2, 0))
	assert.Equal(t, byte(1), b.Pixel(7, 1))
	assert.Equal(t, 3, countSet(b))
}

func TestDrawSpriteTwiceRestores(t *testing.T) {
	b := New()
	b.DrawSprite(3, 4, []byte{0x18})
	before := append([]byte(nil), b.Pixels()...)

	sprite := []byte{0xff, 0x81, 0x81, 0xff}
	assert.False(t, b.DrawSprite(10, 12, sprite))
	assert.True(t, b.DrawSprite(10, 12, sprite))
	assert.Equal(t, before, b.Pixels())
}

func TestCollisionStaysRaised(t *testing.T) {
	b := New()
	b.DrawSprite(0, 0, []byte{0x80})

	// The first row collides, the second row only sets a fresh pixel.
	assert.True(t, b.DrawSprite(0, 0, []byte{0x80, 0x80}))
	assert.Equal(t, byte(0), b.Pixel(0, 0))
	assert.Equal(t, byte(1), b.Pixel(0, 1))
}

func TestDrawSpriteWraps(t *testing.T) {
	b := New()

	b.DrawSprite(63, 31, []byte{0xc0, 0xc0})
	assert.Equal(t, byte(1), b.Pixel(63, 31))
	assert.Equal(t, byte(1), b.Pixel(0, 31))
	assert.Equal(t, byte(1), b.Pixel(63, 0))
	assert.Equal(t, byte(1), b.Pixel(0, 0))
	assert.Equal(t, 4, countSet(b))
}

func TestDrawSpriteLargeOrigin(t *testing.T) {
	b := New()

	b.DrawSprite(64+5, 32+2, []byte{0x80})
	assert.Equal(t, byte(1), b.Pixel(5, 2))
}

func TestClear(t *testing.T) {
	b := New()
	b.DrawSprite(0, 0, []byte{0xff, 0xff})
	b.ClearDirty()
	assert.False(t, b.Dirty())

	b.Clear()
	assert.Equal(t, 0, countSet(b))
	assert.True(t, b.Dirty())
}

func TestObserver(t *testing.T) {
	type cell struct {
		x, y  int
		value byte
	}

	var changes []cell
	b := New()
	b.SetObserver(func(x, y int, value byte) {
		changes = append(changes, cell{x, y, value})
	})

	b.DrawSprite(62, 0, []byte{0xc0})
	assert.Equal(t, []cell{{62, 0, 1}, {63, 0, 1}}, changes)

	changes = nil
	assert.NoError(t, b.Startup())
	assert.ElementsMatch(t, []cell{{62, 0, 0}, {63, 0, 0}}, changes)

	b.SetObserver(nil)
	b.DrawSprite(0, 0, []byte{0x80})
	assert.Len(t, changes, 2)
}
