package synth

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrInvalidTempo      = errors.New("tempo must be positive")
	ErrNegativeOffset    = errors.New("start offsets must not be negative")
	ErrOffsetOutOfRange  = errors.New("start offset outside image bounds")
	ErrZeroSamples       = errors.New("samples per pixel rounds to zero")
)
