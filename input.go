package tim2

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// readInput loads a container file, transparently decompressing zstd and
// gzip archives by extension.
func readInput(file string) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".zst":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return io.ReadAll(r)
	case ".gz":
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		return io.ReadAll(r)
	default:
		return os.ReadFile(file)
	}
}

// sourceName strips any compression extension, leaving the container's own
// name.
func sourceName(file string) string {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".zst", ".gz":
		return strings.TrimSuffix(file, filepath.Ext(file))
	}
	return file
}
