package tim2

import (
	"bytes"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/icey9527/tim2/texture"
)

var scanMagic = []byte("TIM2")

// Scan searches input, any binary blob, for embedded chained containers and
// writes each one found as a composite image named after its byte offset.
// Cue sheets are scanned through their first data track rather than the
// sheet file itself, so disc dumps work whether or not they carry raw
// sector framing.
func (t *TIM2) Scan(input, output string) error {
	data, err := t.readScanInput(input)
	if err != nil {
		return err
	}

	name := sourceName(input)
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))

	found := 0
	for off := 0; off+len(scanMagic) <= len(data); {
		i := bytes.Index(data[off:], scanMagic)
		if i < 0 {
			break
		}
		off += i

		m, span := t.extract(data[off:], fmt.Sprintf("%s@0x%X", input, off))
		if m == nil {
			off += len(scanMagic)
			continue
		}

		out := filepath.Join(output, fmt.Sprintf("%s_%08X%s", stem, off, t.outExt()))
		if err := t.writeImage(out, m); err != nil {
			return err
		}
		t.logger.Printf("[OK] %s@0x%X -> %s", input, off, out)
		found++

		if span < len(scanMagic) {
			span = len(scanMagic)
		}
		off += span
	}

	t.logger.Printf("%d container(s) found", found)

	return nil
}

func (t *TIM2) readScanInput(input string) ([]byte, error) {
	if strings.EqualFold(filepath.Ext(input), ".cue") {
		return readDataTrack(input)
	}
	return readInput(input)
}

// extract tries to decode a chained container at the start of data,
// returning its composite and byte span. A magic hit that parses to no
// decodable pictures returns nil and the search moves on.
func (t *TIM2) extract(data []byte, label string) (*image.RGBA, int) {
	c, err := texture.Parse(data, texture.ChainedShape)
	if err != nil || len(c.Pictures) == 0 {
		return nil, 0
	}

	images, errs := c.Images()
	present := 0
	for i := range errs {
		if errs[i] != nil {
			t.logger.Printf("%s: picture %d skipped: %v", label, i, errs[i])
			continue
		}
		present++
	}
	if present == 0 {
		return nil, 0
	}

	return texture.Compose(images, c.Layout(images)), c.Size()
}
