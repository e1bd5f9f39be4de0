package strategybench

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertTransitions drives op once per expected value and verifies the
// observed scalar after each call. value reads the container's current
// scalar; op is typically the container's Operation method.
func AssertTransitions[T comparable](t testing.TB, value func() T, op func(), want ...T) {
	t.Helper()

	for i, expected := range want {
		op()
		require.Equal(t, expected, value(), "after %d operation(s)", i+1)
	}
}

// AssertRoundTrip verifies the round-trip law: for any starting value,
// one increment followed by one decrement restores it.
func AssertRoundTrip[T comparable](t testing.TB, value func() T, increment, decrement func()) {
	t.Helper()

	initial := value()
	increment()
	decrement()
	require.Equal(t, initial, value(), "decrement(increment(v)) != v")
}

// AssertCoverage verifies a randomly built population is
// non-degenerate: every expected type×behavior combination appears at
// least once. A statistical sanity check, not an exact-ratio
// assertion.
func AssertCoverage(t testing.TB, observed map[string]int, expected ...string) {
	t.Helper()

	total := 0
	for _, n := range observed {
		total += n
	}

	for _, combo := range expected {
		require.Greaterf(t, observed[combo], 0,
			"combination %q never produced across %d values", combo, total)
	}

	t.Logf("coverage over %d values: %v", total, observed)
}
