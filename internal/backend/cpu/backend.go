// Package cpu implements host-memory tensor indexing and placement.
package cpu

import (
	"github.com/born-ml/born-data/internal/tensor"
)

// CPUBackend indexes tensors in host memory and places them on the CPU.
type CPUBackend struct {
	device tensor.Device
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Place implements tensor.Placer. Host tensors are returned as shallow
// clones; tensors resident on another device get a host-only copy.
func (cpu *CPUBackend) Place(t *tensor.RawTensor) (*tensor.RawTensor, error) {
	if t.Device() == cpu.device && t.Resident() == nil {
		return t.Clone(), nil
	}
	out, err := tensor.NewRaw(t.Shape(), t.DType(), cpu.device)
	if err != nil {
		return nil, err
	}
	copy(out.Data(), t.Data())
	return out, nil
}

var _ tensor.Placer = (*CPUBackend)(nil)
