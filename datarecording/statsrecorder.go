package datarecording

import (
	"errors"
	"fmt"
	"slices"

	"github.com/desvulab/desvu/stats"
)

// EventStatsTableName is the table that stores event-based statistic
// snapshots.
const EventStatsTableName = "event_stats"

// TimeWeightedTableName is the table that stores time-weighted statistic
// snapshots.
const TimeWeightedTableName = "time_weighted_stats"

// EventStatsEntry is one row in the event_stats table. The confidence
// interval columns are 0 when the statistic has fewer than 2 observations.
type EventStatsEntry struct {
	Name    string
	Count   int
	Average float64
	StdDev  float64
	Min     float64
	Max     float64
	CILower float64
	CIUpper float64
}

// TimeWeightedEntry is one row in the time_weighted_stats table.
type TimeWeightedEntry struct {
	Name    string
	Updates int
	Average float64
	Min     float64
	Max     float64
	EndTime float64
}

// RecordCollector snapshots every statistic of the collector into the
// recorder, creating the tables on first use, and flushes.
func RecordCollector(
	rec DataRecorder,
	c *stats.StatsCollector,
	endTime float64,
) error {
	tables := rec.ListTables()
	if !slices.Contains(tables, EventStatsTableName) {
		rec.CreateTable(EventStatsTableName, EventStatsEntry{})
	}
	if !slices.Contains(tables, TimeWeightedTableName) {
		rec.CreateTable(TimeWeightedTableName, TimeWeightedEntry{})
	}

	for _, name := range c.EventStatsNames() {
		s := c.GetEventStats(name)

		entry := EventStatsEntry{
			Name:    name,
			Count:   s.Count(),
			Average: s.Average(),
			StdDev:  s.StandardDeviation(),
			Min:     s.Min(),
			Max:     s.Max(),
		}

		lower, upper, err := s.ConfidenceInterval95()
		switch {
		case err == nil:
			entry.CILower = lower
			entry.CIUpper = upper
		case errors.Is(err, stats.ErrInsufficientObservations):
			// Columns stay 0.
		default:
			return fmt.Errorf("recording %q: %w", name, err)
		}

		rec.InsertData(EventStatsTableName, entry)
	}

	for _, name := range c.TimeWeightedNames() {
		s := c.GetTimeWeighted(name)

		average, err := s.Average(endTime)
		if err != nil {
			return fmt.Errorf("recording %q: %w", name, err)
		}

		rec.InsertData(TimeWeightedTableName, TimeWeightedEntry{
			Name:    name,
			Updates: s.Count(),
			Average: average,
			Min:     s.Min(),
			Max:     s.Max(),
			EndTime: endTime,
		})
	}

	rec.Flush()

	return nil
}
