package separation

import (
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/oxygene76/porkchop-client/pkg/ephemeris"
)

var (
	// ErrInvalidRange is returned when the end epoch is not strictly
	// after the start epoch.
	ErrInvalidRange = errors.New("end epoch must be after start epoch")

	// ErrPositionLookup is returned when the ephemeris provider cannot
	// resolve a position for a requested body and epoch. The whole
	// sample fails; no partial series is returned.
	ErrPositionLookup = errors.New("position lookup failed")
)

// MinStepDays is the smallest sampling cadence accepted. Smaller or
// non-positive step values are floored to this to prevent degenerate
// epoch loops.
const MinStepDays = 0.01

// Sample represents one (epoch, separation distance) measurement.
// Distances are in the provider's length unit (kilometres for the
// bundled providers).
type Sample struct {
	Epoch    ephemeris.Epoch
	Distance float64
}

// Series is an immutable separation-distance time series, strictly
// increasing in epoch, with precomputed extrema.
type Series struct {
	BodyA  string
	BodyB  string
	Frame  string
	Origin string

	Samples []Sample

	minIdx int
	maxIdx int
}

// Min returns the sample with the smallest separation. Ties resolve to
// the earliest epoch.
func (s *Series) Min() Sample { return s.Samples[s.minIdx] }

// Max returns the sample with the largest separation. Ties resolve to
// the earliest epoch.
func (s *Series) Max() Sample { return s.Samples[s.maxIdx] }

// Epochs builds the fixed-step epoch sequence for a sampling window:
// start, start+step, ... including the first epoch at or past end, so
// the final bucket may overshoot end by less than one step.
func Epochs(start, end ephemeris.Epoch, stepDays float64) ([]ephemeris.Epoch, error) {
	if end <= start {
		return nil, fmt.Errorf("%w (start %s, end %s)", ErrInvalidRange, start.Format(), end.Format())
	}
	if stepDays < MinStepDays {
		stepDays = MinStepDays
	}
	stepSec := stepDays * ephemeris.SecondsPerDay

	var epochs []ephemeris.Epoch
	for k := 0; ; k++ {
		// Multiply rather than accumulate to avoid float drift over
		// long windows.
		et := start + ephemeris.Epoch(float64(k)*stepSec)
		epochs = append(epochs, et)
		if et >= end {
			break
		}
	}
	return epochs, nil
}

// Sampler measures body-to-body separation against one ephemeris
// provider. The zero number of workers means one per CPU.
type Sampler struct {
	Provider ephemeris.Provider
	Workers  int
}

// Sample computes the separation between bodyA and bodyB over
// [start, end] at the given cadence. Per-epoch lookups carry no data
// dependency, so they are fanned out across workers and reassembled by
// index; the returned series is always in epoch order.
func (s *Sampler) Sample(bodyA, bodyB string, start, end ephemeris.Epoch, stepDays float64) (*Series, error) {
	epochs, err := Epochs(start, end, stepDays)
	if err != nil {
		return nil, err
	}

	distances := make([]float64, len(epochs))
	lookupErrs := make([]error, len(epochs))

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(epochs) {
		workers = len(epochs)
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				distances[i], lookupErrs[i] = s.separationAt(bodyA, bodyB, epochs[i])
			}
		}()
	}
	for i := range epochs {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	// Surface the earliest failure so reruns are deterministic.
	for i, lerr := range lookupErrs {
		if lerr != nil {
			return nil, fmt.Errorf("%w at %s: %w", ErrPositionLookup, epochs[i].Format(), lerr)
		}
	}

	series := &Series{
		BodyA:   bodyA,
		BodyB:   bodyB,
		Frame:   s.Provider.Frame(),
		Origin:  s.Provider.Origin(),
		Samples: make([]Sample, len(epochs)),
	}
	for i, et := range epochs {
		series.Samples[i] = Sample{Epoch: et, Distance: distances[i]}
		if distances[i] < series.Samples[series.minIdx].Distance {
			series.minIdx = i
		}
		if distances[i] > series.Samples[series.maxIdx].Distance {
			series.maxIdx = i
		}
	}
	return series, nil
}

// separationAt performs the two position lookups for one epoch and
// returns the Euclidean separation.
func (s *Sampler) separationAt(bodyA, bodyB string, et ephemeris.Epoch) (float64, error) {
	posA, err := s.Provider.Position(bodyA, et)
	if err != nil {
		return 0, fmt.Errorf("body %s: %w", bodyA, err)
	}
	posB, err := s.Provider.Position(bodyB, et)
	if err != nil {
		return 0, fmt.Errorf("body %s: %w", bodyB, err)
	}
	return posA.Distance(posB), nil
}
