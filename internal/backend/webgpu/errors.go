package webgpu

import "errors"

// ErrUnavailable is returned when no usable WebGPU adapter can be created.
var ErrUnavailable = errors.New("webgpu: not available")
