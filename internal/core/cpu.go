package core

// Segment is one Gantt chart entry: Label occupied the CPU over [Start, End).
type Segment struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

func (s Segment) Duration() int {
	return s.End - s.Start
}

type Timeline []Segment

// Busy returns the time spent running processes.
func (t Timeline) Busy() int {
	busy := 0
	for _, s := range t {
		if s.Label != Idle {
			busy += s.Duration()
		}
	}
	return busy
}

// IdleTime returns the time spent in IDLE segments.
func (t Timeline) IdleTime() int {
	idle := 0
	for _, s := range t {
		if s.Label == Idle {
			idle += s.Duration()
		}
	}
	return idle
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the simulated processor of a single run. It owns the clock, records
// the timeline and counts context switches. A CPU must not be shared between
// runs.
type CPU struct {
	Clock    int
	Timeline Timeline
	Switches int

	coalesce bool   // merge consecutive dispatches of the same process
	last     string // last dispatched process, untouched by idle periods
}

// NewCPU returns a CPU at time zero. With coalesce set, back-to-back
// dispatches of one process grow a single segment instead of adding new ones.
// Idle periods are always merged.
func NewCPU(coalesce bool) *CPU {
	return &CPU{coalesce: coalesce}
}

// Execute runs p for up to units time units starting at the current clock
// and returns the time actually consumed.
func (c *CPU) Execute(p *RunState, units int) int {
	if units > p.Remaining {
		units = p.Remaining
	}
	if units <= 0 {
		return 0
	}

	if c.last != "" && c.last != p.ID {
		c.Switches++
	}
	c.last = p.ID
	if p.StartTime < 0 {
		p.StartTime = c.Clock
	}

	c.record(c.Clock+units, p.ID, c.coalesce)
	c.Clock += units
	p.Remaining -= units
	if p.Remaining == 0 {
		p.FinishTime = c.Clock
	}
	return units
}

// IdleUntil advances the clock to t, recording the gap as IDLE.
func (c *CPU) IdleUntil(t int) {
	if t <= c.Clock {
		return
	}
	c.record(t, Idle, true)
	c.Clock = t
}

func (c *CPU) record(end int, label string, merge bool) {
	if n := len(c.Timeline); merge && n > 0 && c.Timeline[n-1].Label == label && c.Timeline[n-1].End == c.Clock {
		c.Timeline[n-1].End = end
		return
	}
	c.Timeline = append(c.Timeline, Segment{Start: c.Clock, End: end, Label: label})
}

func (c *CPU) Metric() CpuMetric {
	busy := c.Timeline.Busy()
	return CpuMetric{
		TotalTime:       c.Clock,
		UtilizationTime: busy,
		IdleTime:        c.Timeline.IdleTime(),
	}
}
