package stats

import (
	"fmt"
	"sort"
	"strings"
)

// StatsCollector is a named registry of statistics. Event-based and
// time-weighted statistics live in disjoint namespaces, so the same name may
// exist in both. Instances are created lazily on first use and live for the
// lifetime of the collector.
type StatsCollector struct {
	eventStats        map[string]*EventStats
	timeWeightedStats map[string]*TimeWeightedStats
}

// NewStatsCollector creates an empty StatsCollector.
func NewStatsCollector() *StatsCollector {
	return &StatsCollector{
		eventStats:        make(map[string]*EventStats),
		timeWeightedStats: make(map[string]*TimeWeightedStats),
	}
}

// Add records an event-based observation under the given name, creating the
// statistic on first use.
func (c *StatsCollector) Add(name string, value float64) {
	s, ok := c.eventStats[name]
	if !ok {
		s = NewEventStats(name)
		c.eventStats[name] = s
	}

	s.Add(value)
}

// Update records a time-weighted observation under the given name, creating
// the statistic on first use.
func (c *StatsCollector) Update(name string, time, value float64) error {
	s, ok := c.timeWeightedStats[name]
	if !ok {
		s = NewTimeWeightedStats(name)
		c.timeWeightedStats[name] = s
	}

	return s.Update(time, value)
}

// GetEventStats returns the event-based statistic with the given name, or
// nil if it does not exist.
func (c *StatsCollector) GetEventStats(name string) *EventStats {
	return c.eventStats[name]
}

// GetTimeWeighted returns the time-weighted statistic with the given name,
// or nil if it does not exist.
func (c *StatsCollector) GetTimeWeighted(name string) *TimeWeightedStats {
	return c.timeWeightedStats[name]
}

// HasEventStats tells if an event-based statistic with the given name
// exists.
func (c *StatsCollector) HasEventStats(name string) bool {
	_, ok := c.eventStats[name]
	return ok
}

// HasTimeWeighted tells if a time-weighted statistic with the given name
// exists.
func (c *StatsCollector) HasTimeWeighted(name string) bool {
	_, ok := c.timeWeightedStats[name]
	return ok
}

// EventStatsNames returns the names of all event-based statistics in sorted
// order, so that reports are deterministic.
func (c *StatsCollector) EventStatsNames() []string {
	names := make([]string, 0, len(c.eventStats))
	for name := range c.eventStats {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// TimeWeightedNames returns the names of all time-weighted statistics in
// sorted order.
func (c *StatsCollector) TimeWeightedNames() []string {
	names := make([]string, 0, len(c.timeWeightedStats))
	for name := range c.timeWeightedStats {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Report renders every statistic in the collector under a fixed header,
// separated by blank lines. Event-based statistics come first, then
// time-weighted statistics, each group in name order.
func (c *StatsCollector) Report(endTime float64) (string, error) {
	b := new(strings.Builder)
	b.WriteString("=== Statistics Report ===\n")

	first := true
	for _, name := range c.EventStatsNames() {
		if !first {
			b.WriteString("\n\n")
		}
		b.WriteString(c.eventStats[name].Report())
		first = false
	}

	for _, name := range c.TimeWeightedNames() {
		report, err := c.timeWeightedStats[name].Report(endTime)
		if err != nil {
			return "", fmt.Errorf("reporting %q: %w", name, err)
		}

		if !first {
			b.WriteString("\n\n")
		}
		b.WriteString(report)
		first = false
	}

	return b.String(), nil
}
