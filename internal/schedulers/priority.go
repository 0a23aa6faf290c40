package schedulers

import (
	"os-scheduler/internal/core"
)

// SchedulePriorityNonPreemptive picks the arrived process with the lowest
// priority rank and runs it to completion. Later arrivals never interrupt it.
func SchedulePriorityNonPreemptive(processes []core.Process) Result {
	states := core.NewRunStates(processes)
	cpu := runToCompletion(states, byPriority)
	return newResult(PriorityNonPreemptive, cpu, states)
}

// SchedulePriorityPreemptive re-evaluates every time unit, so a higher
// priority arrival takes the CPU on the tick it becomes eligible.
func SchedulePriorityPreemptive(processes []core.Process) Result {
	states := core.NewRunStates(processes)
	cpu := runByTick(states, byPriority)
	return newResult(PriorityPreemptive, cpu, states)
}
