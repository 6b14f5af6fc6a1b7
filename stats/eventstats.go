// Package stats summarizes observations produced while a simulation runs.
// EventStats handles values sampled at discrete moments, such as a waiting
// time recorded at a departure. TimeWeightedStats handles values that
// persist between updates, such as a queue length. StatsCollector dispatches
// to both by name.
package stats

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInsufficientObservations is returned when a confidence interval is
// requested for fewer than 2 observations.
var ErrInsufficientObservations = errors.New(
	"need at least 2 observations to compute a confidence interval")

// Two-tailed 95% Student-t critical values for degrees of freedom 1-29.
// Samples with more than 30 observations use the normal approximation.
var tTable95 = [...]float64{
	12.706, 4.303, 3.182, 2.776, 2.571, // df = 1-5
	2.447, 2.365, 2.306, 2.262, 2.228, // df = 6-10
	2.201, 2.179, 2.160, 2.145, 2.131, // df = 11-15
	2.120, 2.110, 2.101, 2.093, 2.086, // df = 16-20
	2.080, 2.074, 2.069, 2.064, 2.060, // df = 21-25
	2.056, 2.052, 2.048, 2.045, // df = 26-29
}

// EventStats accumulates scalar observations recorded at discrete moments
// and computes summary statistics over them.
//
// Average, Min, Max, and StandardDeviation return 0 when there are no
// observations. The zero default is a deliberate policy so that reports can
// be rendered for statistics that never received a sample.
type EventStats struct {
	name         string
	observations []float64
}

// NewEventStats creates an EventStats with the given name and no
// observations.
func NewEventStats(name string) *EventStats {
	return &EventStats{name: name}
}

// Name returns the name of the statistic.
func (s *EventStats) Name() string {
	return s.name
}

// Add appends an observation.
func (s *EventStats) Add(value float64) {
	s.observations = append(s.observations, value)
}

// Count returns the number of observations.
func (s *EventStats) Count() int {
	return len(s.observations)
}

// Observations returns the recorded observations in insertion order. The
// returned slice is the internal storage and must not be modified.
func (s *EventStats) Observations() []float64 {
	return s.observations
}

// Average returns the arithmetic mean of the observations, or 0 if there
// are none.
func (s *EventStats) Average() float64 {
	if len(s.observations) == 0 {
		return 0
	}

	sum := 0.0
	for _, v := range s.observations {
		sum += v
	}

	return sum / float64(len(s.observations))
}

// Min returns the smallest observation, or 0 if there are none.
func (s *EventStats) Min() float64 {
	if len(s.observations) == 0 {
		return 0
	}

	min := s.observations[0]
	for _, v := range s.observations[1:] {
		if v < min {
			min = v
		}
	}

	return min
}

// Max returns the largest observation, or 0 if there are none.
func (s *EventStats) Max() float64 {
	if len(s.observations) == 0 {
		return 0
	}

	max := s.observations[0]
	for _, v := range s.observations[1:] {
		if v > max {
			max = v
		}
	}

	return max
}

// StandardDeviation returns the sample standard deviation of the
// observations (divisor n-1), or 0 when there are fewer than 2. The sample
// convention matches the standard error used by ConfidenceInterval95.
func (s *EventStats) StandardDeviation() float64 {
	n := len(s.observations)
	if n < 2 {
		return 0
	}

	avg := s.Average()
	variance := 0.0
	for _, v := range s.observations {
		variance += (v - avg) * (v - avg)
	}

	return math.Sqrt(variance / float64(n-1))
}

// ConfidenceInterval95 returns the bounds of the 95% confidence interval for
// the mean. Samples of more than 30 observations use the normal critical
// value 1.96; smaller samples use the Student-t critical value for n-1
// degrees of freedom. It returns ErrInsufficientObservations when there are
// fewer than 2 observations.
func (s *EventStats) ConfidenceInterval95() (lower, upper float64, err error) {
	n := len(s.observations)
	if n < 2 {
		return 0, 0, ErrInsufficientObservations
	}

	mean := s.Average()
	stdError := s.StandardDeviation() / math.Sqrt(float64(n))

	criticalValue := 1.96
	if n <= 30 {
		criticalValue = tTable95[n-2]
	}

	margin := criticalValue * stdError

	return mean - margin, mean + margin, nil
}

// Report renders the summary of the statistic for human consumption.
func (s *EventStats) Report() string {
	b := new(strings.Builder)

	fmt.Fprintf(b, "%s (Event-based)\n", s.name)
	fmt.Fprintf(b, "  Count: %d\n", s.Count())
	fmt.Fprintf(b, "  Average: %.4f\n", s.Average())
	fmt.Fprintf(b, "  Std Dev: %.4f\n", s.StandardDeviation())
	fmt.Fprintf(b, "  Min: %.4f\n", s.Min())
	fmt.Fprintf(b, "  Max: %.4f", s.Max())

	lower, upper, err := s.ConfidenceInterval95()
	if err == nil {
		fmt.Fprintf(b, "\n  95%% CI: [%.4f, %.4f]", lower, upper)
	} else {
		fmt.Fprintf(b, "\n  95%% CI: N/A (need >= 2 observations)")
	}

	return b.String()
}
