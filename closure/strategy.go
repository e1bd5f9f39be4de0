// Package closure implements the strategy pattern with func values:
// containers store their behavior as a first-class func bound to the
// container type. Swap semantics match package dynamic, but assignment
// copies a func value instead of re-pointing an interface.
package closure

// Strategy mutates a container of type T.
type Strategy[T any] func(v *T)

// IncrementInt returns the add-one behavior for IntValue.
func IncrementInt() Strategy[IntValue] {
	return func(v *IntValue) { v.SetValue(v.Value() + 1) }
}

// DecrementInt returns the subtract-one behavior for IntValue.
func DecrementInt() Strategy[IntValue] {
	return func(v *IntValue) { v.SetValue(v.Value() - 1) }
}

// IncrementFloat returns the add-one behavior for FloatValue.
func IncrementFloat() Strategy[FloatValue] {
	return func(v *FloatValue) { v.SetValue(v.Value() + 1) }
}

// DecrementFloat returns the subtract-one behavior for FloatValue.
func DecrementFloat() Strategy[FloatValue] {
	return func(v *FloatValue) { v.SetValue(v.Value() - 1) }
}
