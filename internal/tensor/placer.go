package tensor

// Placer materializes host tensors on a device.
//
// Implementations:
//   - backend/cpu: host memory, no copy
//   - backend/webgpu: uploads into a GPU storage buffer (Windows)
type Placer interface {
	// Device is the placement target.
	Device() Device
	// Place returns a tensor with the same contents resident on Device().
	// It blocks until the copy is complete.
	Place(t *RawTensor) (*RawTensor, error)
}
