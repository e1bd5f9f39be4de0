package closure_test

import (
	"testing"

	"github.com/alexshd/strategybench"
	"github.com/alexshd/strategybench/closure"
)

// classify identifies the type×behavior combination of a factory
// product by observing one operation.
func classify(t *testing.T, v strategybench.Value) string {
	t.Helper()

	switch c := v.(type) {
	case *closure.IntValue:
		before := c.Value()
		c.Operation()
		if c.Value() > before {
			return "int/increment"
		}
		return "int/decrement"
	case *closure.FloatValue:
		before := c.Value()
		c.Operation()
		if c.Value() > before {
			return "float/increment"
		}
		return "float/decrement"
	default:
		t.Fatalf("unexpected concrete type %T", v)
		return ""
	}
}

func TestCreateRandomValue_CoversAllCombinations(t *testing.T) {
	src := strategybench.NewSource(42)

	observed := make(map[string]int)
	for i := 0; i < 10_000; i++ {
		observed[classify(t, closure.CreateRandomValue(src))]++
	}

	strategybench.AssertCoverage(t, observed,
		"int/increment", "int/decrement", "float/increment", "float/decrement")
}
