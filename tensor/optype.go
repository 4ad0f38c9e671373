package tensor

// OpType tags the kind of operation a future compute layer applies to a
// tensor. The metadata core only defines the vocabulary.
type OpType int

// Supported operation kinds.
const (
	OpAdd OpType = iota
	OpSub
	OpMul
	OpDiv
	OpMatMul
	OpReLU
	OpSigmoid
	OpTanh
	OpSoftmax
	OpConv2D
	OpMaxPool
	OpAvgPool
	OpFlatten
	OpReshape
	OpTranspose
	OpUnknown
)

// String returns a human-readable operation name.
func (op OpType) String() string {
	switch op {
	case OpAdd:
		return "add"
	case OpSub:
		return "sub"
	case OpMul:
		return "mul"
	case OpDiv:
		return "div"
	case OpMatMul:
		return "matmul"
	case OpReLU:
		return "relu"
	case OpSigmoid:
		return "sigmoid"
	case OpTanh:
		return "tanh"
	case OpSoftmax:
		return "softmax"
	case OpConv2D:
		return "conv2d"
	case OpMaxPool:
		return "maxpool"
	case OpAvgPool:
		return "avgpool"
	case OpFlatten:
		return "flatten"
	case OpReshape:
		return "reshape"
	case OpTranspose:
		return "transpose"
	default:
		return "unknown"
	}
}
