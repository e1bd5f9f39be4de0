package strategybench

// Value is an opaque handle to a thing with one mutating operation.
// Operation changes the instance's internal scalar by the amount and
// direction of its assigned strategy. It cannot fail: no return value,
// no error, pure scalar arithmetic.
type Value interface {
	Operation()
}
