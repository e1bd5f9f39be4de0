package dynamic_test

import (
	"testing"

	"github.com/alexshd/strategybench"
	"github.com/alexshd/strategybench/dynamic"
)

const benchmarkPopulation = 50_000

var sink strategybench.Value

func BenchmarkCreateRandomValue(b *testing.B) {
	src := strategybench.NewSource(1)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		sink = dynamic.CreateRandomValue(src)
	}
}

// BenchmarkOperation isolates dispatch + mutation cost over a
// pre-built mixed population.
func BenchmarkOperation(b *testing.B) {
	src := strategybench.NewSource(1)
	values := make([]strategybench.Value, benchmarkPopulation)
	for i := range values {
		values[i] = dynamic.CreateRandomValue(src)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		values[i%benchmarkPopulation].Operation()
	}
}

// BenchmarkBuildOperate times the whole canonical block: materialize
// 50,000 random values, then operate once on each in sequence order.
func BenchmarkBuildOperate(b *testing.B) {
	src := strategybench.NewSource(1)
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		values := make([]strategybench.Value, 0, benchmarkPopulation)
		for j := 0; j < benchmarkPopulation; j++ {
			values = append(values, dynamic.CreateRandomValue(src))
		}
		for _, v := range values {
			v.Operation()
		}
	}
}
