package closure_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexshd/strategybench"
	"github.com/alexshd/strategybench/closure"
)

// TestIntValue_Operations mirrors the dynamic variant's scenario; to
// external callers the two encodings must be indistinguishable.
func TestIntValue_Operations(t *testing.T) {
	intValue := closure.NewIntValue(0, closure.IncrementInt())
	require.Equal(t, int32(0), intValue.Value())

	var value strategybench.Value = intValue
	strategybench.AssertTransitions(t, intValue.Value, value.Operation, 1, 2)

	intValue.SetStrategy(closure.DecrementInt())
	require.Equal(t, int32(2), intValue.Value(), "swap must not touch the scalar")

	strategybench.AssertTransitions(t, intValue.Value, value.Operation, 1, 0)
}

func TestFloatValue_Operations(t *testing.T) {
	floatValue := closure.NewFloatValue(0, closure.IncrementFloat())
	require.Equal(t, float32(0), floatValue.Value())

	var value strategybench.Value = floatValue
	strategybench.AssertTransitions(t, floatValue.Value, value.Operation, 1, 2)

	floatValue.SetStrategy(closure.DecrementFloat())
	require.Equal(t, float32(2), floatValue.Value(), "swap must not touch the scalar")

	strategybench.AssertTransitions(t, floatValue.Value, value.Operation, 1, 0)
}

func TestIntValue_RoundTrip(t *testing.T) {
	v := closure.NewIntValue(41, closure.IncrementInt())

	strategybench.AssertRoundTrip(t, v.Value,
		func() { v.SetStrategy(closure.IncrementInt()); v.Operation() },
		func() { v.SetStrategy(closure.DecrementInt()); v.Operation() })
}

func TestFloatValue_RoundTrip(t *testing.T) {
	v := closure.NewFloatValue(41, closure.IncrementFloat())

	strategybench.AssertRoundTrip(t, v.Value,
		func() { v.SetStrategy(closure.IncrementFloat()); v.Operation() },
		func() { v.SetStrategy(closure.DecrementFloat()); v.Operation() })
}

func TestNilStrategyPanics(t *testing.T) {
	require.Panics(t, func() { closure.NewIntValue(0, nil) })
	require.Panics(t, func() { closure.NewFloatValue(0, nil) })

	require.Panics(t, func() {
		closure.NewIntValue(0, closure.IncrementInt()).SetStrategy(nil)
	})
	require.Panics(t, func() {
		closure.NewFloatValue(0, closure.IncrementFloat()).SetStrategy(nil)
	})
}
