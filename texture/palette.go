package texture

import "image/color"

// alphaScale expands GS alpha, where 0x80 is opaque, onto the 0..255 range.
func alphaScale(a byte) byte {
	v := int(a)*2 - 1
	if v > 0xff {
		v = 0xff
	}
	if v < 0 {
		v = 0
	}
	return byte(v)
}

// unswizzleCSM1 undoes the CSM1 palette storage order: within every 32
// entry group of four 8 entry blocks b1 b2 b3 b4, the GS stores the middle
// two blocks swapped. Trailing entries short of a full group keep their
// order.
func unswizzleCSM1(p []color.RGBA) []color.RGBA {
	out := make([]color.RGBA, 0, len(p))
	for i := 0; i+32 <= len(p); i += 32 {
		out = append(out, p[i:i+8]...)
		out = append(out, p[i+16:i+24]...)
		out = append(out, p[i+8:i+16]...)
		out = append(out, p[i+24:i+32]...)
	}
	return append(out, p[len(out):]...)
}

// palette reads and decodes the color table of p. Only 256 entry palettes
// read through the legacy shape are stored swizzled.
func (c *Container) palette(p Picture) ([]color.RGBA, error) {
	raw, err := c.r.window(p.PaletteOffset, p.ColorCount*paletteEntrySize)
	if err != nil {
		return nil, ErrDataOverflow
	}

	pal := make([]color.RGBA, p.ColorCount)
	for i := range pal {
		e := raw[i*paletteEntrySize:]
		pal[i] = color.RGBA{e[0], e[1], e[2], alphaScale(e[3])}
	}

	if c.Shape == LegacyShape && p.ColorCount == 256 {
		pal = unswizzleCSM1(pal)
	}

	return pal, nil
}
