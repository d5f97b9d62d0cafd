package sphrot

import "errors"

var (
	ErrZeroAxis      = errors.New("sphrot: rotation axis has zero length")
	ErrZeroVector    = errors.New("sphrot: orientation vector has zero length")
	ErrGridTooSmall  = errors.New("sphrot: grid axis needs at least 2 samples")
	ErrNotIncreasing = errors.New("sphrot: grid axis is not strictly increasing")
	ErrNegativeR     = errors.New("sphrot: radial axis has negative samples")
	ErrShapeMismatch = errors.New("sphrot: values do not match grid shape")
	ErrTooFewSamples = errors.New("sphrot: simpson rule needs at least 3 samples per axis")
	ErrBadMethod     = errors.New("sphrot: unknown interpolation method")
)
