package repository

import "errors"

var (
	ErrLengthMismatch    = errors.New("chunks and vectors differ in length")
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)
