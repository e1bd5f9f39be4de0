package strategybench

import (
	"fmt"
	"math"
	"time"
)

// Factory constructs one randomly typed, randomly strategized Value.
// It always succeeds and transfers ownership of the result to the
// caller.
type Factory func() Value

// Variant pairs a strategy encoding with the factory that produces its
// values.
type Variant struct {
	Name    string
	Factory Factory
}

// Config controls a comparison run.
type Config struct {
	Count  int // values built and operated per trial
	Trials int // measured trials per variant
	Warmup int // unmeasured trials before measurement
}

// DefaultConfig returns sensible defaults: the canonical 50,000-value
// population, five measured trials, one warmup trial.
func DefaultConfig() Config {
	return Config{
		Count:  50_000,
		Trials: 5,
		Warmup: 1,
	}
}

// Result contains the measurements for one variant.
type Result struct {
	Variant string
	Count   int
	Trials  int
	Build   Statistics // per-trial construction wall time
	Operate Statistics // per-trial operate wall time
}

// NsPerOp returns the mean cost of a single Operation call in
// nanoseconds, derived from the operate phase alone.
func (r Result) NsPerOp() float64 {
	if r.Count == 0 {
		return 0
	}
	return float64(r.Operate.Mean.Nanoseconds()) / float64(r.Count)
}

// OpsPerSec returns the mean operate-phase throughput.
func (r Result) OpsPerSec() float64 {
	secs := r.Operate.Mean.Seconds()
	if secs == 0 {
		return 0
	}
	return float64(r.Count) / secs
}

// Statistics summarizes a set of trial durations.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Run executes the build-then-operate block for every variant and
// returns one Result per variant, in input order.
//
// Each trial fully materializes Count values through the variant's
// factory, then invokes Operation exactly once on each, in sequence
// order. The phases are timed separately so the operate numbers
// isolate dispatch + mutation cost. Identical phasing for every
// variant keeps the comparison fair.
func Run(variants []Variant, cfg Config) ([]Result, error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("no variants to run")
	}
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("invalid Count %d: must be positive", cfg.Count)
	}
	if cfg.Trials <= 0 {
		return nil, fmt.Errorf("invalid Trials %d: must be positive", cfg.Trials)
	}
	if cfg.Warmup < 0 {
		return nil, fmt.Errorf("invalid Warmup %d: must be non-negative", cfg.Warmup)
	}

	results := make([]Result, 0, len(variants))
	for _, v := range variants {
		results = append(results, runVariant(v, cfg))
	}
	return results, nil
}

// runVariant measures one variant: warmup trials first, then the
// measured trials.
func runVariant(v Variant, cfg Config) Result {
	for i := 0; i < cfg.Warmup; i++ {
		values, _ := buildPhase(v.Factory, cfg.Count)
		operatePhase(values)
	}

	builds := make([]time.Duration, 0, cfg.Trials)
	operates := make([]time.Duration, 0, cfg.Trials)

	for i := 0; i < cfg.Trials; i++ {
		values, buildTime := buildPhase(v.Factory, cfg.Count)
		builds = append(builds, buildTime)
		operates = append(operates, operatePhase(values))
	}

	return Result{
		Variant: v.Name,
		Count:   cfg.Count,
		Trials:  cfg.Trials,
		Build:   CalculateStatistics(builds),
		Operate: CalculateStatistics(operates),
	}
}

// buildPhase materializes the full population before any operation
// runs.
func buildPhase(f Factory, n int) ([]Value, time.Duration) {
	values := make([]Value, 0, n)

	start := time.Now()
	for i := 0; i < n; i++ {
		values = append(values, f())
	}
	return values, time.Since(start)
}

// operatePhase invokes Operation once per value, in sequence order.
func operatePhase(values []Value) time.Duration {
	start := time.Now()
	for _, v := range values {
		v.Operation()
	}
	return time.Since(start)
}

// CalculateStatistics computes mean, standard deviation, and extrema
// over trial samples.
func CalculateStatistics(samples []time.Duration) Statistics {
	if len(samples) == 0 {
		return Statistics{}
	}

	min, max := samples[0], samples[0]
	var sum time.Duration
	for _, s := range samples {
		sum += s
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := sum / time.Duration(len(samples))

	var variance float64
	for _, s := range samples {
		diff := float64(s - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(samples))))

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		Min:    min,
		Max:    max,
	}
}
