package schedulers

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
)

// RunAll simulates every algorithm concurrently and returns the responses in
// Algorithms order. Each run builds its own run states from processes, which
// is only read, so the runs share nothing.
func RunAll(processes []core.Process, opts Options) []responses.ScheduleResponse {
	startTime := time.Now()
	results := make([]responses.ScheduleResponse, len(Algorithms))

	var wg sync.WaitGroup
	wg.Add(len(Algorithms))
	for i, algorithm := range Algorithms {
		i, algorithm := i, algorithm
		go func() {
			defer wg.Done()
			// Algorithms only holds known values, so Schedule cannot fail here.
			results[i], _ = Schedule(algorithm, processes, opts)
		}()
	}
	wg.Wait()

	zap.L().Info("all simulations finished",
		zap.Int("processes", len(processes)),
		zap.Int("algorithms", len(results)),
		zap.Duration("duration", time.Since(startTime)))
	return results
}
