// Package monitoring turns a running simulation into a small web server, so
// that the simulated clock, the collected statistics, and the host process
// can be observed and the run loop can be paused and continued.
package monitoring

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime/pprof"
	"strconv"
	"time"

	"github.com/google/pprof/profile"
	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/desvulab/desvu/sim"
	"github.com/desvulab/desvu/stats"
)

// Monitor can turn a simulation into a server and allows external monitoring
// and controlling of the simulation.
type Monitor struct {
	simulator  *sim.Simulator
	collector  *stats.StatsCollector
	portNumber int
	open       bool

	listener net.Listener
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// WithBrowserLaunch makes StartServer open the monitor in the default
// browser.
func (m *Monitor) WithBrowserLaunch() *Monitor {
	m.open = true
	return m
}

// RegisterSimulator registers the simulator that drives the simulation.
func (m *Monitor) RegisterSimulator(s *sim.Simulator) {
	m.simulator = s
}

// RegisterCollector registers the statistics collector to report.
func (m *Monitor) RegisterCollector(c *stats.StatsCollector) {
	m.collector = c
}

// StartServer starts the monitor as a web server, on the configured port or
// a random free one.
func (m *Monitor) StartServer() {
	r := m.router()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	m.listener = listener

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Monitoring simulation with %s\n", url)

	if m.open {
		_ = browser.OpenURL(url)
	}

	go func() {
		_ = http.Serve(listener, r)
	}()
}

// StopServer stops serving.
func (m *Monitor) StopServer() {
	if m.listener != nil {
		_ = m.listener.Close()
	}
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/api/now", m.now)
	r.HandleFunc("/api/pause", m.pauseSimulator)
	r.HandleFunc("/api/continue", m.continueSimulator)
	r.HandleFunc("/api/stats", m.reportStats)
	r.HandleFunc("/api/resource", m.listResources)
	r.HandleFunc("/api/profile", m.collectProfile)

	return r
}

func (m *Monitor) now(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"now\":%.10f}", m.simulator.Now())
}

func (m *Monitor) pauseSimulator(w http.ResponseWriter, _ *http.Request) {
	m.simulator.Pause()
	_, err := w.Write(nil)
	dieOnErr(err)
}

func (m *Monitor) continueSimulator(w http.ResponseWriter, _ *http.Request) {
	m.simulator.Continue()
	_, err := w.Write(nil)
	dieOnErr(err)
}

type eventStatsRsp struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type timeWeightedRsp struct {
	Name    string  `json:"name"`
	Updates int     `json:"updates"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

type statsRsp struct {
	Now          sim.VTimeInSec    `json:"now"`
	EventStats   []eventStatsRsp   `json:"event_stats"`
	TimeWeighted []timeWeightedRsp `json:"time_weighted_stats"`
}

func (m *Monitor) reportStats(w http.ResponseWriter, _ *http.Request) {
	now := m.simulator.Now()

	rsp := statsRsp{
		Now:          now,
		EventStats:   []eventStatsRsp{},
		TimeWeighted: []timeWeightedRsp{},
	}

	for _, name := range m.collector.EventStatsNames() {
		s := m.collector.GetEventStats(name)
		rsp.EventStats = append(rsp.EventStats, eventStatsRsp{
			Name:    name,
			Count:   s.Count(),
			Average: s.Average(),
			StdDev:  s.StandardDeviation(),
			Min:     s.Min(),
			Max:     s.Max(),
		})
	}

	for _, name := range m.collector.TimeWeightedNames() {
		s := m.collector.GetTimeWeighted(name)

		average, err := s.Average(now)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		rsp.TimeWeighted = append(rsp.TimeWeighted, timeWeightedRsp{
			Name:    name,
			Updates: s.Count(),
			Average: average,
			Min:     s.Min(),
			Max:     s.Max(),
		})
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

type resourceRsp struct {
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (m *Monitor) listResources(w http.ResponseWriter, _ *http.Request) {
	pid := os.Getpid()
	proc, err := process.NewProcess(int32(pid))
	dieOnErr(err)

	cpuPercent, err := proc.CPUPercent()
	dieOnErr(err)

	memorySize, err := proc.MemoryInfo()
	dieOnErr(err)

	rsp := resourceRsp{
		CPUPercent: cpuPercent,
		MemorySize: memorySize.RSS,
	}

	bytes, err := json.Marshal(rsp)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func (m *Monitor) collectProfile(w http.ResponseWriter, _ *http.Request) {
	buf := bytes.NewBuffer(nil)

	err := pprof.StartCPUProfile(buf)
	dieOnErr(err)

	time.Sleep(time.Second)

	pprof.StopCPUProfile()

	prof, err := profile.ParseData(buf.Bytes())
	dieOnErr(err)

	bytes, err := json.Marshal(prof)
	dieOnErr(err)

	_, err = w.Write(bytes)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
