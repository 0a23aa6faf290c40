package util

import "os-scheduler/internal/responses"

// CalculateAverage returns zero averages for an empty slice.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}

	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, proccess := range proccessDetails {
		waitingTimeSum += float64(proccess.WaitingTime)
		responseTimeSum += float64(proccess.ResponseTime)
		turnAroundTimeSum += float64(proccess.TurnAroundTime)
	}

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = waitingTimeSum / proccessCount
	averageResponseTime = responseTimeSum / proccessCount
	averageTurnAroundTime = turnAroundTimeSum / proccessCount
	return
}

func CalculateMax(proccessDetails []responses.ProcessResponse) (maxWaitingTime, maxTurnAroundTime int) {
	for _, proccess := range proccessDetails {
		maxWaitingTime = max(maxWaitingTime, proccess.WaitingTime)
		maxTurnAroundTime = max(maxTurnAroundTime, proccess.TurnAroundTime)
	}
	return
}

// CountFinishedBy counts processes whose finish time is at or before each
// threshold, in threshold order.
func CountFinishedBy(proccessDetails []responses.ProcessResponse, thresholds []int) []responses.Throughput {
	throughput := make([]responses.Throughput, 0, len(thresholds))
	for _, threshold := range thresholds {
		completed := 0
		for _, proccess := range proccessDetails {
			if proccess.FinishTime <= threshold {
				completed++
			}
		}
		throughput = append(throughput, responses.Throughput{Threshold: threshold, Completed: completed})
	}
	return throughput
}
