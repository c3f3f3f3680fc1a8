package alphabeta

import (
	"math"
	"time"
)

// Sentinel bounds for an unbounded search window, the root call
// starts with alpha = MinValue and beta = MaxValue
const (
	MinValue = math.MinInt32
	MaxValue = math.MaxInt32
)

// Default inclusive range for randomly generated leaf evaluations,
// used when no leaf-value sequence is supplied to the generator
const (
	RandMin = -20
	RandMax = 20
)

type SeedGeneratorFnType func() int64

var SeedGeneratorFn SeedGeneratorFnType = func() int64 {
	return time.Now().UnixNano()
}

// Set custom seed generator function for the generators' random sources,
// by default uses current time in nanoseconds
func SetSeedGeneratorFn(f SeedGeneratorFnType) {
	if f != nil {
		SeedGeneratorFn = f
	}
}
