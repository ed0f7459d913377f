package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The CPU backend (internal/backend/cpu) is the only implementation;
// the interface is the seam where an accelerated backend would plug in.
type Backend interface {
	// Element-wise binary operations (NumPy-style broadcasting)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul performs 2D matrix multiplication: (M, K) @ (K, N) -> (M, N).
	MatMul(a, b *RawTensor) *RawTensor

	// Shape operations
	Reshape(t *RawTensor, newShape Shape) *RawTensor
	Transpose(t *RawTensor, axes ...int) *RawTensor

	// Sigmoid applies 1/(1+exp(-x)) element-wise.
	Sigmoid(x *RawTensor) *RawTensor

	// Sum reduces to a single-element tensor holding the total.
	Sum(x *RawTensor) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
