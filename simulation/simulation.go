package simulation

import (
	"github.com/desvulab/desvu/datarecording"
	"github.com/desvulab/desvu/monitoring"
	"github.com/desvulab/desvu/sim"
	"github.com/desvulab/desvu/stats"
)

// A Simulation bundles the services required to run a simulation: the
// simulator driving the clock, the statistics collector, and optionally a
// data recorder and a monitor.
type Simulation struct {
	id           string
	simulator    *sim.Simulator
	collector    *stats.StatsCollector
	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor
}

// ID returns the ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// Simulator returns the simulator that drives the simulation.
func (s *Simulation) Simulator() *sim.Simulator {
	return s.simulator
}

// Collector returns the statistics collector of the simulation.
func (s *Simulation) Collector() *stats.StatsCollector {
	return s.collector
}

// DataRecorder returns the data recorder, or nil when recording is
// disabled.
func (s *Simulation) DataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// Monitor returns the monitor, or nil when monitoring is disabled.
func (s *Simulation) Monitor() *monitoring.Monitor {
	return s.monitor
}

// Schedule registers an event with the simulator.
func (s *Simulation) Schedule(evt sim.Event) {
	s.simulator.Schedule(evt)
}

// Run processes events until the event queue drains.
func (s *Simulation) Run() error {
	return s.simulator.Run()
}

// RunUntil processes events up to the given time.
func (s *Simulation) RunUntil(until sim.VTimeInSec) error {
	return s.simulator.RunUntil(until)
}

// RecordStats snapshots every collected statistic into the data recorder,
// closing the time-weighted statistics at the current simulated time.
func (s *Simulation) RecordStats() error {
	if s.dataRecorder == nil {
		return nil
	}

	return datarecording.RecordCollector(
		s.dataRecorder, s.collector, s.simulator.Now())
}

// Terminate releases the resources of the simulation.
func (s *Simulation) Terminate() {
	if s.dataRecorder != nil {
		s.dataRecorder.Close()
	}

	if s.monitor != nil {
		s.monitor.StopServer()
	}
}
