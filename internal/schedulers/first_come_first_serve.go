package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving together keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) Result {
	states := core.NewRunStates(processes)
	cpu := core.NewCPU(false)

	for _, s := range byArrival(states) {
		cpu.IdleUntil(s.Arrival)
		cpu.Execute(s, s.Remaining)
	}

	return newResult(FirstComeFirstServe, cpu, states)
}
