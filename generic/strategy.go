// Package generic implements the strategy pattern with type
// parameters: the behavior is fixed when the container type is
// instantiated. IntValue[IncrementInt] and IntValue[DecrementInt] are
// distinct concrete types that both satisfy the Value capability;
// there is no runtime swap, and the stateless strategy occupies no
// per-instance storage.
package generic

// IntStrategy computes the successor of an int32 scalar. Used as a
// type constraint, so the compiler binds the concrete behavior
// directly into each container instantiation.
type IntStrategy interface {
	Apply(value int32) int32
}

// FloatStrategy computes the successor of a float32 scalar.
type FloatStrategy interface {
	Apply(value float32) float32
}

// IncrementInt adds one.
type IncrementInt struct{}

func (IncrementInt) Apply(value int32) int32 { return value + 1 }

// DecrementInt subtracts one.
type DecrementInt struct{}

func (DecrementInt) Apply(value int32) int32 { return value - 1 }

// IncrementFloat adds one.
type IncrementFloat struct{}

func (IncrementFloat) Apply(value float32) float32 { return value + 1 }

// DecrementFloat subtracts one.
type DecrementFloat struct{}

func (DecrementFloat) Apply(value float32) float32 { return value - 1 }
