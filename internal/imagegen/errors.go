package imagegen

import "errors"

var (
	ErrInvalidSize    = errors.New("invalid image size")
	ErrInvalidQuality = errors.New("invalid image quality")
	ErrEmptyPrompt    = errors.New("prompt is empty")
	ErrNoImage        = errors.New("no image returned")
)
