package core

import "strings"

// Idle labels timeline segments where no process was eligible.
const Idle = "IDLE"

// LowestPriority is the rank given to labels missing from the priority map.
const LowestPriority = 4

// DefaultPriorityLabels maps priority labels to ranks. Lower rank wins.
var DefaultPriorityLabels = map[string]int{
	"high":   1,
	"normal": 2,
	"low":    3,
}

// Process holds the input facts about one process. It is never mutated by a
// scheduler; each run builds its own RunState from it.
type Process struct {
	ID       string
	Arrival  int
	Burst    int
	Priority int
}

// PriorityRank resolves a priority label case-insensitively. A nil map uses
// DefaultPriorityLabels.
func PriorityRank(label string, labels map[string]int) int {
	if labels == nil {
		labels = DefaultPriorityLabels
	}
	if rank, ok := labels[strings.ToLower(strings.TrimSpace(label))]; ok {
		return rank
	}
	return LowestPriority
}

// RunState is the mutable progress of one process within a single run.
type RunState struct {
	Process
	Index      int // position in the input slice, used for tie-breaking
	Remaining  int
	StartTime  int
	FinishTime int
}

func NewRunState(p Process, index int) *RunState {
	return &RunState{
		Process:   p,
		Index:     index,
		Remaining: p.Burst,
		StartTime: -1,
	}
}

// NewRunStates builds fresh run states for every process, preserving input
// order.
func NewRunStates(processes []Process) []*RunState {
	states := make([]*RunState, len(processes))
	for i, p := range processes {
		states[i] = NewRunState(p, i)
	}
	return states
}

func (s *RunState) Done() bool {
	return s.Remaining == 0
}

func (s *RunState) Turnaround() int {
	return s.FinishTime - s.Arrival
}

// Waiting is clamped at zero.
func (s *RunState) Waiting() int {
	w := s.Turnaround() - s.Burst
	if w < 0 {
		return 0
	}
	return w
}
