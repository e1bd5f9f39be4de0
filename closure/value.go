package closure

import "github.com/alexshd/strategybench"

var (
	_ strategybench.Value = (*IntValue)(nil)
	_ strategybench.Value = (*FloatValue)(nil)
)

// IntValue owns an int32 scalar and a func-valued strategy.
type IntValue struct {
	strategy Strategy[IntValue]
	value    int32
}

// NewIntValue constructs an IntValue. A nil strategy panics.
func NewIntValue(value int32, strategy Strategy[IntValue]) *IntValue {
	if strategy == nil {
		panic("closure: nil strategy for IntValue")
	}
	return &IntValue{strategy: strategy, value: value}
}

// Operation invokes the stored strategy on the container.
func (v *IntValue) Operation() { v.strategy(v) }

// SetStrategy replaces the stored strategy; the old func is dropped.
func (v *IntValue) SetStrategy(strategy Strategy[IntValue]) {
	if strategy == nil {
		panic("closure: nil strategy for IntValue")
	}
	v.strategy = strategy
}

// Value returns the current scalar.
func (v *IntValue) Value() int32 { return v.value }

// SetValue overwrites the current scalar.
func (v *IntValue) SetValue(value int32) { v.value = value }

// FloatValue owns a float32 scalar and a func-valued strategy.
type FloatValue struct {
	strategy Strategy[FloatValue]
	value    float32
}

// NewFloatValue constructs a FloatValue. A nil strategy panics.
func NewFloatValue(value float32, strategy Strategy[FloatValue]) *FloatValue {
	if strategy == nil {
		panic("closure: nil strategy for FloatValue")
	}
	return &FloatValue{strategy: strategy, value: value}
}

// Operation invokes the stored strategy on the container.
func (v *FloatValue) Operation() { v.strategy(v) }

// SetStrategy replaces the stored strategy; the old func is dropped.
func (v *FloatValue) SetStrategy(strategy Strategy[FloatValue]) {
	if strategy == nil {
		panic("closure: nil strategy for FloatValue")
	}
	v.strategy = strategy
}

// Value returns the current scalar.
func (v *FloatValue) Value() float32 { return v.value }

// SetValue overwrites the current scalar.
func (v *FloatValue) SetValue(value float32) { v.value = value }
