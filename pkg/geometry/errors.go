package geometry

import "errors"

var (
	ErrInvalidRadius       = errors.New("sphere radius must be positive")
	ErrInvalidReflectivity = errors.New("reflectivity must be within [0, 1]")
	ErrInvalidColor        = errors.New("color channels must be within [0, 1]")
	ErrInvalidNormal       = errors.New("plane normal must be non-zero")
)
