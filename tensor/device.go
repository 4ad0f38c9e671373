package tensor

// Device represents the compute device a tensor's buffer lives on.
// This package never dispatches to a device; the tag exists for
// storage and future kernel layers.
type Device int

// Supported compute devices.
const (
	CPU Device = iota
	GPU
	TPU
	UnknownDevice
)

// String returns a human-readable device name.
func (d Device) String() string {
	switch d {
	case CPU:
		return "CPU"
	case GPU:
		return "GPU"
	case TPU:
		return "TPU"
	default:
		return "Unknown"
	}
}

// MemoryLayout tags the element ordering of a buffer.
type MemoryLayout int

// Supported memory layouts. All metadata derived in this package is
// row-major; the column-major tag exists for interop at the storage
// boundary.
const (
	RowMajor MemoryLayout = iota
	ColMajor
	UnknownLayout
)

// String returns a human-readable layout name.
func (l MemoryLayout) String() string {
	switch l {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown"
	}
}
