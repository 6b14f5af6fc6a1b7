package stats

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfOrderUpdate is returned when an update carries a time earlier than
// the last recorded update. The clock of a time-weighted statistic never
// runs backward.
var ErrOutOfOrderUpdate = errors.New(
	"update time must not precede the last recorded update")

// ErrEndTimeBeforeUpdate is returned when an average is requested for an end
// time earlier than the last recorded update.
var ErrEndTimeBeforeUpdate = errors.New(
	"cannot average before the last recorded update")

// TimeWeightedStats accumulates a value that stays constant between updates
// and computes its time-integral average: the area under the step function
// divided by the elapsed time.
//
// Construction records an implicit update of value 0 at time 0. It counts as
// the first update, and the initial 0 participates in Min and Max. Update
// directly after construction to start from a different value.
type TimeWeightedStats struct {
	name        string
	lastTime    float64
	lastValue   float64
	integral    float64
	min         float64
	max         float64
	updateCount int
}

// NewTimeWeightedStats creates a TimeWeightedStats with the given name,
// initialized with value 0 at time 0.
func NewTimeWeightedStats(name string) *TimeWeightedStats {
	return &TimeWeightedStats{
		name:        name,
		updateCount: 1,
	}
}

// Name returns the name of the statistic.
func (s *TimeWeightedStats) Name() string {
	return s.name
}

// Update records a new value at the given time. The previous value is
// accumulated over the interval from the last update to the given time. It
// returns ErrOutOfOrderUpdate when the time precedes the last update.
func (s *TimeWeightedStats) Update(time, value float64) error {
	if time < s.lastTime {
		return fmt.Errorf("%w: %f < %f", ErrOutOfOrderUpdate, time, s.lastTime)
	}

	s.integral += s.lastValue * (time - s.lastTime)

	if value < s.min {
		s.min = value
	}
	if value > s.max {
		s.max = value
	}

	s.lastTime = time
	s.lastValue = value
	s.updateCount++

	return nil
}

// Count returns the number of updates, including the implicit update at
// construction.
func (s *TimeWeightedStats) Count() int {
	return s.updateCount
}

// Min returns the smallest value recorded, including the initial 0.
func (s *TimeWeightedStats) Min() float64 {
	return s.min
}

// Max returns the largest value recorded, including the initial 0.
func (s *TimeWeightedStats) Max() float64 {
	return s.max
}

// Integral returns the accumulated area up to the last update, excluding
// the open interval after it.
func (s *TimeWeightedStats) Integral() float64 {
	return s.integral
}

// LastValue returns the most recently recorded value.
func (s *TimeWeightedStats) LastValue() float64 {
	return s.lastValue
}

// LastTime returns the time of the most recent update.
func (s *TimeWeightedStats) LastTime() float64 {
	return s.lastTime
}

// Average returns the time-weighted average over [0, endTime], closing the
// open interval after the last update with the last value. It returns 0 when
// endTime is not positive, and ErrEndTimeBeforeUpdate when endTime precedes
// the last update.
func (s *TimeWeightedStats) Average(endTime float64) (float64, error) {
	if endTime <= 0 {
		return 0, nil
	}

	if endTime < s.lastTime {
		return 0, fmt.Errorf("%w: %f < %f",
			ErrEndTimeBeforeUpdate, endTime, s.lastTime)
	}

	totalIntegral := s.integral + s.lastValue*(endTime-s.lastTime)

	return totalIntegral / endTime, nil
}

// Report renders the summary of the statistic for human consumption.
func (s *TimeWeightedStats) Report(endTime float64) (string, error) {
	average, err := s.Average(endTime)
	if err != nil {
		return "", err
	}

	b := new(strings.Builder)

	fmt.Fprintf(b, "%s (Time-Weighted)\n", s.name)
	fmt.Fprintf(b, "  Updates: %d\n", s.Count())
	fmt.Fprintf(b, "  Average: %.4f\n", average)
	fmt.Fprintf(b, "  Min: %.4f\n", s.Min())
	fmt.Fprintf(b, "  Max: %.4f", s.Max())

	return b.String(), nil
}
