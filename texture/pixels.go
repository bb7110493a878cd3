package texture

import (
	"image"
	"image/color"
)

func upperNibble(b byte) byte {
	return b & 0xf0
}

func lowerNibble(b byte) byte {
	return b & 0x0f
}

// decodeIndexed8 reads one palette index per pixel. Anything in the pixel
// block beyond width*height bytes is padding and ignored.
func (c *Container) decodeIndexed8(p Picture, pal []color.RGBA) (*image.RGBA, error) {
	n := p.Width * p.Height
	pix, err := c.r.window(p.ImageOffset, n)
	if err != nil {
		return nil, ErrDataOverflow
	}

	m := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i := 0; i < n; i++ {
		e := pal[pix[i]]
		o := i * 4
		m.Pix[o+0] = e.R
		m.Pix[o+1] = e.G
		m.Pix[o+2] = e.B
		m.Pix[o+3] = e.A
	}
	return m, nil
}

// decodeIndexed4 reads two palette indices per byte, low nibble first.
func (c *Container) decodeIndexed4(p Picture, pal []color.RGBA) (*image.RGBA, error) {
	n := p.Width * p.Height
	pix, err := c.r.window(p.ImageOffset, (n+1)/2)
	if err != nil {
		return nil, ErrDataOverflow
	}

	m := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i := 0; i < n; i++ {
		b := pix[i/2]
		if i%2 == 0 {
			b = lowerNibble(b)
		} else {
			b = upperNibble(b) >> 4
		}
		e := pal[b]
		o := i * 4
		m.Pix[o+0] = e.R
		m.Pix[o+1] = e.G
		m.Pix[o+2] = e.B
		m.Pix[o+3] = e.A
	}
	return m, nil
}

// decodeDirect reads packed RGBA quads, rescaling only the alpha channel.
func (c *Container) decodeDirect(p Picture) (*image.RGBA, error) {
	n := p.Width * p.Height
	pix, err := c.r.window(p.ImageOffset, n*4)
	if err != nil {
		return nil, ErrDataOverflow
	}

	m := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for i := 0; i < n; i++ {
		o := i * 4
		m.Pix[o+0] = pix[o+0]
		m.Pix[o+1] = pix[o+1]
		m.Pix[o+2] = pix[o+2]
		m.Pix[o+3] = alphaScale(pix[o+3])
	}
	return m, nil
}
