// Package dynamic implements the strategy pattern with interface
// dispatch: containers hold their behavior behind an interface value
// and can swap it at runtime. Every Operation call pays one indirect
// dispatch.
package dynamic

// Strategy mutates a container of type T. Concrete strategies are
// stateless; a container owns exactly one at a time.
type Strategy[T any] interface {
	Operation(v *T)
}

// IncrementInt adds one to an IntValue.
type IncrementInt struct{}

func (IncrementInt) Operation(v *IntValue) { v.SetValue(v.Value() + 1) }

// DecrementInt subtracts one from an IntValue.
type DecrementInt struct{}

func (DecrementInt) Operation(v *IntValue) { v.SetValue(v.Value() - 1) }

// IncrementFloat adds one to a FloatValue.
type IncrementFloat struct{}

func (IncrementFloat) Operation(v *FloatValue) { v.SetValue(v.Value() + 1) }

// DecrementFloat subtracts one from a FloatValue.
type DecrementFloat struct{}

func (DecrementFloat) Operation(v *FloatValue) { v.SetValue(v.Value() - 1) }
