package data

import "github.com/pkg/errors"

// Common errors. Call sites wrap them with context; test with errors.Is.
var (
	// ErrConfiguration reports an invalid split configuration, such as a
	// non-positive numeric spec.
	ErrConfiguration = errors.New("invalid split configuration")
	// ErrLengthMismatch reports that X and y resolve to different lengths.
	ErrLengthMismatch = errors.New("X and y have inconsistent lengths")
	// ErrInconsistentLength reports that the leaves of a nested container
	// disagree on their length.
	ErrInconsistentLength = errors.New("dataset does not have consistent lengths")
	// ErrIndexType reports an array index that is neither boolean nor integer.
	ErrIndexType = errors.New("arrays used as indices must be of integer (or boolean) type")
	// ErrStratification reports that a stratified split is not possible for
	// the given target.
	ErrStratification = errors.New("stratified CV not possible with given y")
	// ErrUnsized reports a 0-d leaf where a length is required.
	ErrUnsized = errors.New("len() of unsized object")
	// ErrOutOfRange reports an index outside the container bounds.
	ErrOutOfRange = errors.New("index out of range")
	// ErrUnsupported reports a value the data layer cannot handle.
	ErrUnsupported = errors.New("unsupported value")
)
