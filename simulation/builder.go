// Package simulation wires a simulator, a statistics collector, a data
// recorder, and a monitor into one runnable unit.
package simulation

import (
	"log"
	"os"

	"github.com/rs/xid"

	"github.com/desvulab/desvu/datarecording"
	"github.com/desvulab/desvu/monitoring"
	"github.com/desvulab/desvu/sim"
	"github.com/desvulab/desvu/stats"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordingOn    bool
	outputFileName string
	eventLogger    *log.Logger
}

// MakeBuilder creates a new builder with the default configuration: data
// recording on, monitoring off, event logging off.
func MakeBuilder() Builder {
	return Builder{
		recordingOn: true,
	}
}

// WithMonitoring makes the simulation start a monitoring server.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitoringPort sets the port of the monitoring server and implies
// WithMonitoring.
func (b Builder) WithMonitoringPort(port int) Builder {
	b.monitorOn = true
	b.monitorPort = port
	return b
}

// WithoutDataRecording disables the SQLite data recorder.
func (b Builder) WithoutDataRecording() Builder {
	b.recordingOn = false
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithEventLogging makes the simulator print one line per executed event to
// standard output.
func (b Builder) WithEventLogging() Builder {
	b.eventLogger = log.New(os.Stdout, "", 0)
	return b
}

// WithEventLogger makes the simulator print one line per executed event to
// the given logger.
func (b Builder) WithEventLogger(logger *log.Logger) Builder {
	b.eventLogger = logger
	return b
}

// Build builds the simulation.
func (b Builder) Build() *Simulation {
	s := &Simulation{
		id:        xid.New().String(),
		simulator: sim.NewSimulator(),
		collector: stats.NewStatsCollector(),
	}

	if b.eventLogger != nil {
		s.simulator.AcceptHook(sim.NewEventLogger(b.eventLogger))
	}

	if b.recordingOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "desvu_sim_" + s.id
		}
		s.dataRecorder = datarecording.NewDataRecorder(outputPath)
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor().WithPortNumber(b.monitorPort)
		s.monitor.RegisterSimulator(s.simulator)
		s.monitor.RegisterCollector(s.collector)
		s.monitor.StartServer()
	}

	return s
}
