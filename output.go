package tim2

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/xfmoulet/qoi"
)

// Supported output encodings.
const (
	FormatPNG = "png"
	FormatQOI = "qoi"
)

const maxPaletteColors = 256

func (t *TIM2) outExt() string {
	return "." + t.opts.Format
}

// writeImage persists m at path in the configured encoding, creating parent
// directories as needed.
func (t *TIM2) writeImage(path string, m image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if t.opts.Format == FormatQOI {
		return qoi.Encode(f, m)
	}

	if t.opts.Indexed {
		return png.Encode(f, palettize(m))
	}
	return png.Encode(f, m)
}

// palettize reduces m to at most 256 colors. Images already holding few
// enough distinct colors keep them exactly; anything bigger goes through
// median cut quantization.
func palettize(m image.Image) *image.Paletted {
	b := m.Bounds()

	p := exactPalette(m)
	if p == nil {
		q := quantize.MedianCutQuantizer{}
		p = q.Quantize(make(color.Palette, 0, maxPaletteColors), m)
	}

	pm := image.NewPaletted(b, p)
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// exactPalette collects the distinct colors of m, or nil when there are too
// many for one palette.
func exactPalette(m image.Image) color.Palette {
	b := m.Bounds()
	seen := make(map[color.Color]struct{})
	var p color.Palette
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.At(x, y)
			if _, ok := seen[c]; ok {
				continue
			}
			if len(p) == maxPaletteColors {
				return nil
			}
			seen[c] = struct{}{}
			p = append(p, c)
		}
	}
	return p
}
