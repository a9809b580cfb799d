package pixel

import "errors"

var (
	ErrCannotLoad     = errors.New("could not load image")
	ErrEmptyImage     = errors.New("image has no pixels")
	ErrTooFewChannels = errors.New("grid needs at least 3 channels")
	ErrShortPixelData = errors.New("pixel data does not match dimensions")
)
