package texture

import "errors"

// Errors returned by the container parsers and picture decoders. The first
// two reject a whole container; the rest mark a single picture as
// undecodable while its siblings proceed.
var (
	ErrBadMagic          = errors.New("texture: bad container magic")
	ErrTruncatedHeader   = errors.New("texture: truncated header")
	ErrOutOfBounds       = errors.New("texture: read out of bounds")
	ErrDataOverflow      = errors.New("texture: pixel or palette data past end of buffer")
	ErrUnsupportedFormat = errors.New("texture: unsupported pixel format")
)
