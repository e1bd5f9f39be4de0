package generic

import "github.com/alexshd/strategybench"

var (
	_ strategybench.Value = (*IntValue[IncrementInt])(nil)
	_ strategybench.Value = (*IntValue[DecrementInt])(nil)
	_ strategybench.Value = (*FloatValue[IncrementFloat])(nil)
	_ strategybench.Value = (*FloatValue[DecrementFloat])(nil)
)

// IntValue owns an int32 scalar; its behavior is the type parameter.
// The strategy field is zero-size for the stateless behaviors, so an
// IntValue is exactly one int32 wide.
type IntValue[S IntStrategy] struct {
	strategy S
	value    int32
}

// NewIntValue constructs an IntValue with the behavior named by the
// instantiation: NewIntValue[IncrementInt](0).
func NewIntValue[S IntStrategy](value int32) *IntValue[S] {
	return &IntValue[S]{value: value}
}

// Operation applies the type-bound strategy to the scalar.
func (v *IntValue[S]) Operation() { v.value = v.strategy.Apply(v.value) }

// Value returns the current scalar.
func (v *IntValue[S]) Value() int32 { return v.value }

// SetValue overwrites the current scalar.
func (v *IntValue[S]) SetValue(value int32) { v.value = value }

// FloatValue owns a float32 scalar; its behavior is the type
// parameter.
type FloatValue[S FloatStrategy] struct {
	strategy S
	value    float32
}

// NewFloatValue constructs a FloatValue with the behavior named by the
// instantiation.
func NewFloatValue[S FloatStrategy](value float32) *FloatValue[S] {
	return &FloatValue[S]{value: value}
}

// Operation applies the type-bound strategy to the scalar.
func (v *FloatValue[S]) Operation() { v.value = v.strategy.Apply(v.value) }

// Value returns the current scalar.
func (v *FloatValue[S]) Value() float32 { return v.value }

// SetValue overwrites the current scalar.
func (v *FloatValue[S]) SetValue(value float32) { v.value = value }
