package schedulers

import (
	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

// GenerateAnalytics turns a finished run into its aggregate statistics.
func GenerateAnalytics(result Result, opts Options) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(result.States))
	makespan, totalBurst := 0, 0
	for _, s := range result.States {
		processDetails = append(processDetails, generateProcessDetails(s))
		makespan = max(makespan, s.FinishTime)
		totalBurst += s.Burst
	}

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(processDetails)
	maxWaitingTime, maxTurnAroundTime := util.CalculateMax(processDetails)

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		Timeline:              result.Timeline,
		ContextSwitches:       result.Switches,
		TotalTime:             makespan,
		IdleTime:              result.Timeline.IdleTime(),
		TotalBurstTime:        totalBurst,
		AverageWaitingTime:    averageWaitingTime,
		MaxWaitingTime:        float64(maxWaitingTime),
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		MaxTurnAroundTime:     float64(maxTurnAroundTime),
		Throughput:            util.CountFinishedBy(processDetails, opts.thresholds()),
		CpuEfficiency:         efficiency(totalBurst, makespan, result.Switches, opts.ContextSwitchCost),
		Details:               processDetails,
	}
}

// efficiency is the busy share of the makespan once every context switch is
// charged switchCost time units, as a percentage.
func efficiency(totalBurst, makespan, switches int, switchCost float64) float64 {
	duration := float64(makespan) + float64(switches)*switchCost
	if duration <= 0 {
		return 0
	}
	return 100 * float64(totalBurst) / duration
}

func generateProcessDetails(s *core.RunState) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      s.ID,
		ArrivalTime:    s.Arrival,
		BurstTime:      s.Burst,
		Priority:       s.Priority,
		StartTime:      s.StartTime,
		FinishTime:     s.FinishTime,
		ResponseTime:   s.StartTime - s.Arrival,
		TurnAroundTime: s.Turnaround(),
		WaitingTime:    s.Waiting(),
	}
}
