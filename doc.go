// Package strategybench compares three encodings of the Strategy pattern.
//
// # Overview
//
// The same tiny system — numeric containers whose single mutating
// operation (increment or decrement) is supplied by an interchangeable
// strategy — is implemented three times, once per encoding:
//
//   - dynamic/  - interface dispatch: the strategy lives behind an
//     interface value and is swappable at runtime
//   - closure/  - func values: the strategy is a stored func, swappable
//     at runtime, no interface indirection
//   - generic/  - type parameters: the strategy is bound at the type
//     level, zero per-instance storage, not swappable
//
// All three expose identical behavior through the one-method Value
// capability, so the only thing left to compare is the cost of the
// dispatch mechanics themselves.
//
// # The Value capability
//
// A Value is "a thing with one mutating operation":
//
//	type Value interface {
//	    Operation()
//	}
//
// Callers holding a Value polymorphically know nothing else about it.
// Each variant's IntValue (int32) and FloatValue (float32) containers
// implement it by delegating to their strategy.
//
// # Quick start
//
// Build a mixed population and measure each encoding:
//
//	src := strategybench.NewSource(42)
//
//	results, err := strategybench.Run([]strategybench.Variant{
//	    {Name: "dynamic", Factory: func() strategybench.Value { return dynamic.CreateRandomValue(src) }},
//	    {Name: "closure", Factory: func() strategybench.Value { return closure.CreateRandomValue(src) }},
//	    {Name: "generic", Factory: func() strategybench.Value { return generic.CreateRandomValue(src) }},
//	}, strategybench.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	strategybench.WriteComparison(os.Stdout, results)
//
// # Measuring
//
// Each trial builds Count containers through the variant's factory
// (two independent coin flips: int vs float, increment vs decrement),
// then invokes Operation exactly once on each. Construction is fully
// materialized before the operate phase starts and the two phases are
// timed separately, so the operate column isolates dispatch + mutation
// cost. The same phasing applies to every variant; comparing across
// variants is the whole point.
//
// # Testing
//
// The assertion helpers drive the exact-transition scenarios shared by
// all variants:
//
//	v := dynamic.NewIntValue(0, dynamic.IncrementInt{})
//	strategybench.AssertTransitions(t, v.Value, v.Operation, 1, 2)
//
//	v.SetStrategy(dynamic.DecrementInt{})
//	strategybench.AssertTransitions(t, v.Value, v.Operation, 1, 0)
//
// # Precision note
//
// FloatValue accumulates in float32 with unit steps. The benchmark
// performs one operation per container, so values never leave the range
// where unit increments are exactly representable; nothing bounds the
// magnitude if a caller iterates far beyond that.
package strategybench
