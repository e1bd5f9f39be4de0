package strategybench

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dustin/go-humanize"
)

// WriteComparison renders a per-variant timing table.
//
// The build column is the mean time to materialize the population
// through the factory; operate is the mean time to call Operation once
// on every value; ns/op and throughput derive from the operate phase
// alone.
func WriteComparison(w io.Writer, results []Result) {
	if len(results) == 0 {
		return
	}

	fmt.Fprintf(w, "population: %s values, %d trial(s) per variant\n",
		humanize.Comma(int64(results[0].Count)), results[0].Trials)
	fmt.Fprintf(w, "%-10s %14s %14s %14s %10s %14s\n",
		"variant", "build", "operate", "total", "ns/op", "throughput")

	for _, r := range results {
		fmt.Fprintf(w, "%-10s %14s %14s %14s %10.2f %14s\n",
			r.Variant,
			r.Build.Mean,
			r.Operate.Mean,
			r.Build.Mean+r.Operate.Mean,
			r.NsPerOp(),
			humanize.SIWithDigits(r.OpsPerSec(), 2, "op/s"))
	}
}

// PrintComparison outputs the comparison table to the test log.
func PrintComparison(t testing.TB, results []Result) {
	t.Helper()

	var buf strings.Builder
	WriteComparison(&buf, results)
	t.Logf("\n%s", buf.String())
}
