package generic

import "github.com/alexshd/strategybench"

// CreateRandomValue builds one value of a randomly chosen concrete
// type — four distinct instantiations, one per type×behavior pair —
// starting at zero. Two independent draws keep the outcomes equally
// likely.
func CreateRandomValue(src strategybench.BoolSource) strategybench.Value {
	if src.Bool() {
		if src.Bool() {
			return NewIntValue[IncrementInt](0)
		}
		return NewIntValue[DecrementInt](0)
	}

	if src.Bool() {
		return NewFloatValue[IncrementFloat](0)
	}
	return NewFloatValue[DecrementFloat](0)
}
