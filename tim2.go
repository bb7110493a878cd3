/*
Package tim2 converts PlayStation 2 TIM2 texture containers into common
image files, in bulk.
*/
package tim2

import (
	"fmt"
	"log"
	"runtime"
)

// Options tunes a converter. The zero value writes composite PNGs with one
// worker per CPU.
type Options struct {
	// Parts also writes every picture of a chained container individually,
	// before composition.
	Parts bool
	// Format selects the output encoding, FormatPNG (the default) or
	// FormatQOI.
	Format string
	// Indexed quantizes PNG output down to a 256 color palette.
	Indexed bool
	// Workers caps the number of files converted concurrently; 0 means one
	// per CPU.
	Workers int
}

type TIM2 struct {
	db     *TextureDB
	logger *log.Logger
	opts   Options
}

// New returns a converter. A non empty database path opens, creating it if
// needed, a catalog used to skip containers already converted on earlier
// runs.
func New(database string, logger *log.Logger, opts Options) (*TIM2, error) {
	switch opts.Format {
	case "":
		opts.Format = FormatPNG
	case FormatPNG, FormatQOI:
	default:
		return nil, fmt.Errorf("tim2: unknown output format %q", opts.Format)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}

	t := &TIM2{
		logger: logger,
		opts:   opts,
	}

	if database != "" {
		db, err := NewTextureDB(database)
		if err != nil {
			return nil, err
		}
		t.db = db
	}

	return t, nil
}

func (t *TIM2) Close() error {
	if t.db != nil {
		return t.db.Close()
	}
	return nil
}
