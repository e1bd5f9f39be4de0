package closure

import "github.com/alexshd/strategybench"

// CreateRandomValue builds one randomly typed, randomly strategized
// value starting at zero. Two independent draws keep the four
// type×behavior outcomes equally likely.
func CreateRandomValue(src strategybench.BoolSource) strategybench.Value {
	if src.Bool() {
		if src.Bool() {
			return NewIntValue(0, IncrementInt())
		}
		return NewIntValue(0, DecrementInt())
	}

	if src.Bool() {
		return NewFloatValue(0, IncrementFloat())
	}
	return NewFloatValue(0, DecrementFloat())
}
