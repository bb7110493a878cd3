/*
Package texture implements a decoder for the PlayStation 2 TIM2 texture
container format.

Containers come in two shapes that carry the same kind of picture data but
differ in framing. The legacy shape is a single bare picture: a flat 0x40
byte header holding the pixel byte length, palette entry count and
dimensions, followed by the pixel plane and then the palette. The chained
shape starts with the ASCII tag "TIM2" and a picture count; 0x28 byte
picture headers begin at offset 0x80 and each one is found by adding the
previous picture's total size, so consecutive pictures sit at irregular
offsets. Files carry no reliable discriminator between the two shapes, so
the caller selects one up front.

The pixel layout of a picture is derived from its palette entry count: 256
entries is 8 bit indexed, 16 entries is 4 bit indexed with the low nibble
first, and 0 entries is direct 32 bit RGBA. Palette entries and direct
pixels store alpha on the GS scale where 0x80 is fully opaque; decoding
expands it onto the usual 0..255 range. 256 entry palettes read through the
legacy shape are additionally rearranged out of the CSM1 storage order.

Pictures of a chained container can be flattened onto one canvas with
Compose, which stacks them into top to bottom columns. Container.Layout
documents the placement and canvas sizing rules.
*/
package texture

// Shape selects the container framing; it is never guessed from the data.
type Shape int

const (
	// LegacyShape is the flat single picture layout, usually a .tm2 file.
	LegacyShape Shape = iota
	// ChainedShape is the tagged multi picture layout, usually a .tex file.
	ChainedShape
)

const (
	legacyHeaderSize  = 0x40
	pictureBase       = 0x80
	pictureHeaderSize = 0x28
	paletteEntrySize  = 4
)

// Direct color pictures normally carry format 0x03; some files store 0x00
// with the same 32 bit layout.
const (
	formatNone   = 0x00
	formatRGBA32 = 0x03
)

var chainedMagic = []byte("TIM2")
