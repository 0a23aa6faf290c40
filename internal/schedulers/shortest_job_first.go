package schedulers

import (
	"os-scheduler/internal/core"
)

// ScheduleShortestJobFirst picks the arrived process with the smallest burst
// and runs it to completion.
func ScheduleShortestJobFirst(processes []core.Process) Result {
	states := core.NewRunStates(processes)
	cpu := runToCompletion(states, byBurst)
	return newResult(ShortestJobFirst, cpu, states)
}

// ScheduleShortestRemainingTimeFirst re-evaluates every time unit and runs
// the arrived process with the least remaining time.
func ScheduleShortestRemainingTimeFirst(processes []core.Process) Result {
	states := core.NewRunStates(processes)
	cpu := runByTick(states, byRemaining)
	return newResult(ShortestRemainingTimeFirst, cpu, states)
}

// runToCompletion is the non-preemptive decision loop: once selected, a
// process keeps the CPU until it finishes.
func runToCompletion(states []*core.RunState, key selectionKey) *core.CPU {
	cpu := core.NewCPU(false)
	q := newReadyQueue(states, key)

	for done := 0; done < len(states); {
		q.admit(cpu.Clock)
		next, ok := q.peek()
		if !ok {
			cpu.IdleUntil(cpu.Clock + 1)
			continue
		}
		q.pop()
		cpu.Execute(next, next.Remaining)
		done++
	}
	return cpu
}

// runByTick is the preemptive decision loop: one time unit per decision, with
// consecutive units of the same process merged into one segment.
func runByTick(states []*core.RunState, key selectionKey) *core.CPU {
	cpu := core.NewCPU(true)
	q := newReadyQueue(states, key)

	for done := 0; done < len(states); {
		q.admit(cpu.Clock)
		current, ok := q.peek()
		if !ok {
			cpu.IdleUntil(cpu.Clock + 1)
			continue
		}
		cpu.Execute(current, 1)
		if current.Done() {
			q.pop()
			done++
		}
	}
	return cpu
}
