package requests

import (
	"errors"
	"fmt"

	"os-scheduler/internal/core"
)

var ErrInvalidJob = errors.New("invalid job")

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    string `json:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
	// TimeQuantum overrides the configured Round Robin quantum when positive.
	TimeQuantum int `json:"time_quantum,omitempty"`
}

func (j Job) Validate() error {
	switch {
	case j.ProcessId == "":
		return fmt.Errorf("%w: empty process id", ErrInvalidJob)
	case j.ArrivalTime < 0:
		return fmt.Errorf("%w: process %s has negative arrival time %d", ErrInvalidJob, j.ProcessId, j.ArrivalTime)
	case j.BurstTime < 1:
		return fmt.Errorf("%w: process %s has burst time %d, want at least 1", ErrInvalidJob, j.ProcessId, j.BurstTime)
	}
	return nil
}

// Validate checks every job and that process ids are unique.
func (r *ScheduleRequests) Validate() error {
	if r.TimeQuantum < 0 {
		return fmt.Errorf("%w: negative time quantum %d", ErrInvalidJob, r.TimeQuantum)
	}
	seen := make(map[string]struct{}, len(r.Jobs))
	for _, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			return err
		}
		if _, ok := seen[job.ProcessId]; ok {
			return fmt.Errorf("%w: duplicate process id %s", ErrInvalidJob, job.ProcessId)
		}
		seen[job.ProcessId] = struct{}{}
	}
	return nil
}

// Processes converts the jobs into process descriptors, resolving priority
// labels through labels (nil means core.DefaultPriorityLabels). The request
// is expected to be valid.
func (r *ScheduleRequests) Processes(labels map[string]int) []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.Process{
			ID:       job.ProcessId,
			Arrival:  job.ArrivalTime,
			Burst:    job.BurstTime,
			Priority: core.PriorityRank(job.Priority, labels),
		})
	}
	return processes
}
