package responses

import "os-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	StartTime      int    `json:"start_time"`
	FinishTime     int    `json:"finish_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

// Throughput is the number of processes finished by Threshold.
type Throughput struct {
	Threshold int `json:"threshold"`
	Completed int `json:"completed"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Timeline              core.Timeline     `json:"timeline"`
	ContextSwitches       int               `json:"context_switches"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	TotalBurstTime        int               `json:"total_burst_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	MaxWaitingTime        float64           `json:"max_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	MaxTurnAroundTime     float64           `json:"max_turn_around_time"`
	Throughput            []Throughput      `json:"throughput"`
	CpuEfficiency         float64           `json:"cpu_efficiency"`
	Details               []ProcessResponse `json:"details"`
}
