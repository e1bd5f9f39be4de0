package dynamic

import "github.com/alexshd/strategybench"

var (
	_ strategybench.Value = (*IntValue)(nil)
	_ strategybench.Value = (*FloatValue)(nil)
)

// IntValue owns an int32 scalar and the strategy that mutates it.
// The scalar changes only through Operation or SetValue; int32
// arithmetic wraps on overflow.
type IntValue struct {
	strategy Strategy[IntValue]
	value    int32
}

// NewIntValue constructs an IntValue. A value is never without
// behavior: a nil strategy panics here instead of failing later.
func NewIntValue(value int32, strategy Strategy[IntValue]) *IntValue {
	if strategy == nil {
		panic("dynamic: nil strategy for IntValue")
	}
	return &IntValue{strategy: strategy, value: value}
}

// Operation delegates to the assigned strategy.
func (v *IntValue) Operation() { v.strategy.Operation(v) }

// SetStrategy replaces the assigned strategy; the old one is dropped.
func (v *IntValue) SetStrategy(strategy Strategy[IntValue]) {
	if strategy == nil {
		panic("dynamic: nil strategy for IntValue")
	}
	v.strategy = strategy
}

// Value returns the current scalar.
func (v *IntValue) Value() int32 { return v.value }

// SetValue overwrites the current scalar.
func (v *IntValue) SetValue(value int32) { v.value = value }

// FloatValue owns a float32 scalar and the strategy that mutates it.
type FloatValue struct {
	strategy Strategy[FloatValue]
	value    float32
}

// NewFloatValue constructs a FloatValue. A nil strategy panics.
func NewFloatValue(value float32, strategy Strategy[FloatValue]) *FloatValue {
	if strategy == nil {
		panic("dynamic: nil strategy for FloatValue")
	}
	return &FloatValue{strategy: strategy, value: value}
}

// Operation delegates to the assigned strategy.
func (v *FloatValue) Operation() { v.strategy.Operation(v) }

// SetStrategy replaces the assigned strategy; the old one is dropped.
func (v *FloatValue) SetStrategy(strategy Strategy[FloatValue]) {
	if strategy == nil {
		panic("dynamic: nil strategy for FloatValue")
	}
	v.strategy = strategy
}

// Value returns the current scalar.
func (v *FloatValue) Value() float32 { return v.value }

// SetValue overwrites the current scalar.
func (v *FloatValue) SetValue(value float32) { v.value = value }
