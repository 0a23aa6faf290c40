package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

type Algorithm string

const (
	FirstComeFirstServe        Algorithm = "FCFS"
	ShortestJobFirst           Algorithm = "SJF NonPreemptive"
	ShortestRemainingTimeFirst Algorithm = "SJF Preemptive"
	PriorityNonPreemptive      Algorithm = "Priority NonPreemptive"
	PriorityPreemptive         Algorithm = "Priority Preemptive"
	RoundRobin                 Algorithm = "Round Robin"
)

// Algorithms lists every policy in report order.
var Algorithms = []Algorithm{
	FirstComeFirstServe,
	ShortestJobFirst,
	ShortestRemainingTimeFirst,
	PriorityNonPreemptive,
	PriorityPreemptive,
	RoundRobin,
}

var slugs = map[Algorithm]string{
	FirstComeFirstServe:        "fcfs",
	ShortestJobFirst:           "sjf",
	ShortestRemainingTimeFirst: "srtf",
	PriorityNonPreemptive:      "priority",
	PriorityPreemptive:         "priority-preemptive",
	RoundRobin:                 "rr",
}

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Slug is the short name used in API routes.
func (a Algorithm) Slug() string {
	return slugs[a]
}

// ParseAlgorithm accepts either a slug ("srtf") or a display name
// ("SJF Preemptive"), case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.TrimSpace(s)
	for _, a := range Algorithms {
		if strings.EqualFold(s, a.Slug()) || strings.EqualFold(s, string(a)) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

const (
	DefaultTimeQuantum       = 4
	DefaultContextSwitchCost = 0.001
)

var DefaultThroughputThresholds = []int{50, 100, 150, 200}

// Options parametrizes a single simulation run and its analytics.
type Options struct {
	TimeQuantum       int
	ContextSwitchCost float64
	Thresholds        []int
}

func DefaultOptions() Options {
	return Options{
		TimeQuantum:       DefaultTimeQuantum,
		ContextSwitchCost: DefaultContextSwitchCost,
		Thresholds:        DefaultThroughputThresholds,
	}
}

func (o Options) quantum() int {
	if o.TimeQuantum < 1 {
		return DefaultTimeQuantum
	}
	return o.TimeQuantum
}

func (o Options) thresholds() []int {
	if o.Thresholds == nil {
		return DefaultThroughputThresholds
	}
	return o.Thresholds
}

// Result is the raw outcome of one simulation run.
type Result struct {
	Algorithm Algorithm
	Timeline  core.Timeline
	Finish    map[string]int
	Switches  int
	Metric    core.CpuMetric

	// States are the finished run states in input order.
	States []*core.RunState
}

func newResult(algorithm Algorithm, cpu *core.CPU, states []*core.RunState) Result {
	finish := make(map[string]int, len(states))
	for _, s := range states {
		finish[s.ID] = s.FinishTime
	}
	return Result{
		Algorithm: algorithm,
		Timeline:  cpu.Timeline,
		Finish:    finish,
		Switches:  cpu.Switches,
		States:    states,
		Metric:    cpu.Metric(),
	}
}

// Run simulates one algorithm over fresh run states built from processes.
// The processes slice is only read.
func Run(algorithm Algorithm, processes []core.Process, opts Options) (Result, error) {
	var result Result
	switch algorithm {
	case FirstComeFirstServe:
		result = ScheduleFirstComeFirstServe(processes)
	case ShortestJobFirst:
		result = ScheduleShortestJobFirst(processes)
	case ShortestRemainingTimeFirst:
		result = ScheduleShortestRemainingTimeFirst(processes)
	case PriorityNonPreemptive:
		result = SchedulePriorityNonPreemptive(processes)
	case PriorityPreemptive:
		result = SchedulePriorityPreemptive(processes)
	case RoundRobin:
		result = ScheduleRoundRobin(processes, opts.quantum())
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
	}
	zap.L().Debug("simulation finished",
		zap.String("algorithm", string(algorithm)),
		zap.Int("processes", len(processes)),
		zap.Int("segments", len(result.Timeline)),
		zap.Int("switches", result.Switches),
		zap.Int("clock", result.Metric.TotalTime))
	return result, nil
}

// Schedule runs one algorithm and computes its analytics.
func Schedule(algorithm Algorithm, processes []core.Process, opts Options) (responses.ScheduleResponse, error) {
	result, err := Run(algorithm, processes, opts)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return GenerateAnalytics(result, opts), nil
}
