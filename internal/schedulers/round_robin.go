package schedulers

import (
	"github.com/gammazero/deque"

	"os-scheduler/internal/core"
)

// ScheduleRoundRobin cycles through a FIFO ready queue, giving each dispatch
// at most timeQuantum units. Processes that arrive during a slice are queued
// ahead of the preempted process.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) Result {
	if timeQuantum < 1 {
		timeQuantum = DefaultTimeQuantum
	}
	states := core.NewRunStates(processes)
	cpu := core.NewCPU(false)

	pending := byArrival(states)
	var readyQueue deque.Deque[*core.RunState]
	admit := func() {
		for len(pending) > 0 && pending[0].Arrival <= cpu.Clock {
			readyQueue.PushBack(pending[0])
			pending = pending[1:]
		}
	}

	admit()
	for done := 0; done < len(states); {
		if readyQueue.Len() == 0 {
			cpu.IdleUntil(cpu.Clock + 1)
			admit()
			continue
		}

		current := readyQueue.PopFront()
		cpu.Execute(current, timeQuantum)
		admit()
		if current.Done() {
			done++
		} else {
			readyQueue.PushBack(current)
		}
	}

	return newResult(RoundRobin, cpu, states)
}
