package texture

import (
	"bytes"
	"fmt"
	"image"
)

// Picture is one picture header within a container. Offsets are absolute
// positions in the container buffer; sizes come straight from the header
// and are only validated once the picture is decoded.
type Picture struct {
	TotalSize     int // whole block: header, pixels, palette
	PaletteSize   int
	PixelSize     int
	HeaderSize    int
	ColorCount    int
	Format        byte
	MipmapCount   byte
	ClutFormat    byte
	Depth         byte // stored bits per pixel, informational only
	Width         int
	Height        int
	ImageOffset   int
	PaletteOffset int
}

// Container is a parsed TIM2 file. Pictures holds every header that could
// be read; headers cut off by a truncated buffer are simply absent.
type Container struct {
	Shape       Shape
	Version     int
	TotalWidth  int // declared canvas width, 0 when unspecified
	TotalHeight int // declared canvas height, 0 when unspecified
	Pictures    []Picture

	r byteReader
}

// Parse reads the container headers from data, which is retained for later
// pixel decoding and must not be modified.
func Parse(data []byte, shape Shape) (*Container, error) {
	switch shape {
	case LegacyShape:
		return parseLegacy(data)
	case ChainedShape:
		return parseChained(data)
	default:
		return nil, fmt.Errorf("texture: unknown shape %d", shape)
	}
}

func parseLegacy(data []byte) (*Container, error) {
	if len(data) < legacyHeaderSize {
		return nil, ErrTruncatedHeader
	}

	r := byteReader{data}

	// None of these reads can fail past the length check above.
	pixelSize, _ := r.uint32(0x18)
	colors, _ := r.uint16(0x1e)
	width, _ := r.uint16(0x24)
	height, _ := r.uint16(0x26)

	p := Picture{
		PixelSize:     int(pixelSize),
		PaletteSize:   int(colors) * paletteEntrySize,
		HeaderSize:    legacyHeaderSize,
		ColorCount:    int(colors),
		Width:         int(width),
		Height:        int(height),
		ImageOffset:   legacyHeaderSize,
		PaletteOffset: legacyHeaderSize + int(pixelSize),
	}
	p.TotalSize = p.HeaderSize + p.PixelSize + p.PaletteSize

	return &Container{
		Shape:    LegacyShape,
		Pictures: []Picture{p},
		r:        r,
	}, nil
}

func parseChained(data []byte) (*Container, error) {
	if len(data) < len(chainedMagic) || !bytes.Equal(data[:len(chainedMagic)], chainedMagic) {
		return nil, ErrBadMagic
	}
	if len(data) < 0x10 {
		return nil, ErrTruncatedHeader
	}

	r := byteReader{data}

	version, _ := r.uint16(0x04)
	count, _ := r.uint16(0x06)
	totalWidth, _ := r.uint16(0x08)
	totalHeight, _ := r.uint16(0x0a)

	c := &Container{
		Shape:       ChainedShape,
		Version:     int(version),
		TotalWidth:  int(totalWidth),
		TotalHeight: int(totalHeight),
		r:           r,
	}

	off := pictureBase
	for i := 0; i < int(count); i++ {
		p, err := parsePicture(r, off)
		if err != nil {
			// The remaining slots no longer fit in the buffer.
			break
		}
		c.Pictures = append(c.Pictures, p)
		off += p.TotalSize
	}

	return c, nil
}

func parsePicture(r byteReader, off int) (Picture, error) {
	if _, err := r.window(off, pictureHeaderSize); err != nil {
		return Picture{}, err
	}

	totalSize, _ := r.uint32(off + 0x00)
	paletteSize, _ := r.uint32(off + 0x04)
	pixelSize, _ := r.uint32(off + 0x08)
	headerSize, _ := r.uint16(off + 0x0c)
	colors, _ := r.uint16(off + 0x0e)
	format, _ := r.uint8(off + 0x10)
	mipmaps, _ := r.uint8(off + 0x11)
	clut, _ := r.uint8(off + 0x12)
	depth, _ := r.uint8(off + 0x13)
	width, _ := r.uint16(off + 0x14)
	height, _ := r.uint16(off + 0x16)

	p := Picture{
		TotalSize:   int(totalSize),
		PaletteSize: int(paletteSize),
		PixelSize:   int(pixelSize),
		HeaderSize:  int(headerSize),
		ColorCount:  int(colors),
		Format:      format,
		MipmapCount: mipmaps,
		ClutFormat:  clut,
		Depth:       depth,
		Width:       int(width),
		Height:      int(height),
	}
	if p.HeaderSize == 0 {
		p.HeaderSize = pictureBase
	}
	p.ImageOffset = off + p.HeaderSize
	p.PaletteOffset = p.ImageOffset + p.PixelSize

	return p, nil
}

// Image decodes picture i into an RGBA raster. A picture with an
// unrecognized layout returns ErrUnsupportedFormat and one whose data runs
// past the end of the buffer returns ErrDataOverflow; either way the rest
// of the container is unaffected.
func (c *Container) Image(i int) (*image.RGBA, error) {
	if i < 0 || i >= len(c.Pictures) {
		return nil, fmt.Errorf("texture: no picture %d", i)
	}
	p := c.Pictures[i]

	switch p.ColorCount {
	case 256, 16:
		pal, err := c.palette(p)
		if err != nil {
			return nil, err
		}
		if p.ColorCount == 16 {
			return c.decodeIndexed4(p, pal)
		}
		return c.decodeIndexed8(p, pal)
	case 0:
		if c.Shape == ChainedShape && p.Format != formatNone && p.Format != formatRGBA32 {
			return nil, ErrUnsupportedFormat
		}
		return c.decodeDirect(p)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Images decodes every picture, returning parallel slices of rasters and
// errors. A nil raster at index i means the picture was skipped and errs[i]
// says why.
func (c *Container) Images() ([]*image.RGBA, []error) {
	imgs := make([]*image.RGBA, len(c.Pictures))
	errs := make([]error, len(c.Pictures))
	for i := range c.Pictures {
		imgs[i], errs[i] = c.Image(i)
	}
	return imgs, errs
}

// Size returns the container's span in bytes, from the start of the buffer
// to the end of the last parsed picture's block, clamped to the buffer.
func (c *Container) Size() int {
	end := legacyHeaderSize
	if c.Shape == ChainedShape {
		end = pictureBase
	}
	if n := len(c.Pictures); n > 0 {
		p := c.Pictures[n-1]
		end = p.ImageOffset - p.HeaderSize + p.TotalSize
	}
	if end > len(c.r.data) {
		end = len(c.r.data)
	}
	return end
}
