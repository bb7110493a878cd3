package tim2

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/icey9527/tim2/texture"
)

var errAlreadyConverted = errors.New("tim2: container already cataloged")

// counters aggregates per file outcomes across workers.
type counters struct {
	converted atomic.Int64
	failed    atomic.Int64
	skipped   atomic.Int64
}

// matchesShape reports whether file is named like a container of the given
// shape, ignoring any compression extension.
func matchesShape(file string, shape texture.Shape) bool {
	name := strings.ToLower(sourceName(file))
	switch shape {
	case texture.LegacyShape:
		return strings.HasSuffix(name, ".tm2")
	case texture.ChainedShape:
		return strings.HasSuffix(name, ".tex")
	}
	return false
}

func (t *TIM2) findContainers(ctx context.Context, base string, shape texture.Shape) (<-chan string, <-chan error, error) {
	info, err := os.Stat(base)
	if err != nil {
		return nil, nil, err
	}

	out := make(chan string)
	errc := make(chan error, 1)

	if !info.IsDir() {
		if !matchesShape(base, shape) {
			return nil, nil, fmt.Errorf("tim2: %s is not a recognized container name", base)
		}
		go func() {
			defer close(out)
			defer close(errc)
			select {
			case out <- base:
			case <-ctx.Done():
			}
		}()
		return out, errc, nil
	}

	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up fighting with things like Spotlight, etc.
			if info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !matchesShape(file, shape) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (t *TIM2) convertWorker(ctx context.Context, in <-chan string, base, output string, shape texture.Shape, n *counters) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for file := range in {
			switch err := t.convertFile(file, base, output, shape); {
			case err == nil:
				n.converted.Add(1)
				t.logger.Printf("[OK] %s", file)
			case errors.Is(err, errAlreadyConverted):
				n.skipped.Add(1)
			default:
				n.failed.Add(1)
				t.logger.Printf("[ERR] %s: %v", file, err)
			}
		}
	}()
	return errc, nil
}

// outputPath mirrors file's position under base into the output directory,
// swapping the container extension for the output encoding's.
func (t *TIM2) outputPath(file, base, output string) string {
	name := sourceName(file)
	rel, err := filepath.Rel(base, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(name)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel)) + t.outExt()
	return filepath.Join(output, rel)
}

// writeParts writes each present picture on its own under a "_parts"
// directory next to where the composite goes, numbered by container slot.
func (t *TIM2) writeParts(out string, images []*image.RGBA) error {
	dir := strings.TrimSuffix(out, filepath.Ext(out)) + "_parts"
	for i, m := range images {
		if m == nil {
			continue
		}
		if err := t.writeImage(filepath.Join(dir, fmt.Sprintf("picture_%02d%s", i, t.outExt())), m); err != nil {
			return err
		}
	}
	return nil
}

func (t *TIM2) convertFile(file, base, output string, shape texture.Shape) error {
	data, err := readInput(file)
	if err != nil {
		return err
	}

	var crc string
	if t.db != nil {
		crc = crcData(data)
		path, err := t.db.FindFileByCRC(crc)
		if err != nil {
			return err
		}
		if path != "" {
			t.logger.Printf("%s: already converted from %s", file, path)
			return errAlreadyConverted
		}
	}

	c, err := texture.Parse(data, shape)
	if err != nil {
		return err
	}

	images, errs := c.Images()
	present := 0
	for i := range errs {
		if errs[i] != nil {
			t.logger.Printf("%s: picture %d skipped: %v", file, i, errs[i])
			continue
		}
		present++
	}
	if present == 0 {
		return errors.New("tim2: no decodable pictures")
	}

	out := t.outputPath(file, base, output)

	var m *image.RGBA
	if shape == texture.LegacyShape {
		m = images[0]
	} else {
		if t.opts.Parts {
			if err := t.writeParts(out, images); err != nil {
				return err
			}
		}

		l := c.Layout(images)
		if c.TotalWidth > 0 && l.Width != c.TotalWidth {
			t.logger.Printf("%s: composed width %d differs from declared %d", file, l.Width, c.TotalWidth)
		}
		if c.TotalHeight > 0 && l.Height != c.TotalHeight {
			t.logger.Printf("%s: composed height %d differs from declared %d", file, l.Height, c.TotalHeight)
		}
		m = texture.Compose(images, l)
	}

	if err := t.writeImage(out, m); err != nil {
		return err
	}

	if t.db != nil {
		id, err := t.db.AddFile(crc, file, len(c.Pictures), present)
		if err != nil {
			return err
		}
		for i := range images {
			if images[i] == nil {
				continue
			}
			if err := t.db.AddPicture(id, i, c.Pictures[i]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *TIM2) convert(input, output string, shape texture.Shape) error {
	input, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	info, err := os.Stat(input)
	if err != nil {
		return err
	}
	base := input
	if !info.IsDir() {
		base = filepath.Dir(input)
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	files, errc, err := t.findContainers(ctx, input, shape)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	var n counters
	for i := 0; i < t.opts.Workers; i++ {
		errc, err := t.convertWorker(ctx, files, base, output, shape, &n)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	if err := waitForPipeline(errcList...); err != nil {
		return err
	}

	t.logger.Printf("%d converted, %d failed, %d skipped", n.converted.Load(), n.failed.Load(), n.skipped.Load())

	return nil
}

// ConvertTM2 converts every legacy single picture container under input
// into output.
func (t *TIM2) ConvertTM2(input, output string) error {
	return t.convert(input, output, texture.LegacyShape)
}

// ConvertTex converts every chained multi picture container under input
// into output, mirroring the directory structure.
func (t *TIM2) ConvertTex(input, output string) error {
	return t.convert(input, output, texture.ChainedShape)
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}
