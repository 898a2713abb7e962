//go:build !windows

package webgpu

import (
	"errors"
	"testing"

	"github.com/born-ml/born-data/internal/tensor"
)

func TestUnavailable(t *testing.T) {
	if IsAvailable() {
		t.Error("IsAvailable() = true on a platform without bindings")
	}

	backend, err := New()
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("New() error = %v, want ErrUnavailable", err)
	}
	if backend != nil {
		t.Error("New() should not return a backend on failure")
	}

	host, _ := tensor.FromSlice([]float32{1}, tensor.Shape{1}, tensor.CPU)
	if _, err := (&Backend{}).Place(host); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Place() error = %v, want ErrUnavailable", err)
	}
}
