package texture

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphaScale(t *testing.T) {
	assert.Equal(t, byte(0x00), alphaScale(0x00))
	assert.Equal(t, byte(0x01), alphaScale(0x01))
	assert.Equal(t, byte(0x7f), alphaScale(0x40))
	assert.Equal(t, byte(0xff), alphaScale(0x80))
	assert.Equal(t, byte(0xff), alphaScale(0xff))

	last := 0
	for i := 0; i < 256; i++ {
		v := int(alphaScale(byte(i)))
		assert.True(t, v >= last, "alphaScale(%d) went backwards", i)
		last = v
	}
}

func markerPalette(n int) []color.RGBA {
	p := make([]color.RGBA, n)
	for i := range p {
		p[i] = color.RGBA{R: byte(i), A: 0xff}
	}
	return p
}

func TestUnswizzleCSM1(t *testing.T) {
	in := markerPalette(256)

	out := unswizzleCSM1(in)

	require.Len(t, out, 256)
	for g := 0; g < 256; g += 32 {
		assert.Equal(t, in[g:g+8], out[g:g+8], "group %d block 1", g/32)
		assert.Equal(t, in[g+16:g+24], out[g+8:g+16], "group %d block 2", g/32)
		assert.Equal(t, in[g+8:g+16], out[g+16:g+24], "group %d block 3", g/32)
		assert.Equal(t, in[g+24:g+32], out[g+24:g+32], "group %d block 4", g/32)
	}
}

func TestUnswizzleCSM1ShortPalette(t *testing.T) {
	in := markerPalette(16)
	assert.Equal(t, in, unswizzleCSM1(in))
}
