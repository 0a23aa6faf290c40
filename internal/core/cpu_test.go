package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
)

func TestCpuExecuteCoalesces(t *testing.T) {
	cpu := core.NewCPU(true)
	p1 := core.NewRunState(core.Process{ID: "P1", Burst: 3}, 0)

	for !p1.Done() {
		require.Equal(t, 1, cpu.Execute(p1, 1))
	}

	require.Equal(t, core.Timeline{{Start: 0, End: 3, Label: "P1"}}, cpu.Timeline)
	require.Equal(t, 0, cpu.Switches)
	require.Equal(t, 0, p1.StartTime)
	require.Equal(t, 3, p1.FinishTime)
}

func TestCpuExecuteWithoutCoalescing(t *testing.T) {
	cpu := core.NewCPU(false)
	p1 := core.NewRunState(core.Process{ID: "P1", Burst: 6}, 0)

	require.Equal(t, 4, cpu.Execute(p1, 4))
	require.Equal(t, 2, cpu.Execute(p1, 4))
	require.Equal(t, 0, cpu.Execute(p1, 4))

	require.Equal(t, core.Timeline{
		{Start: 0, End: 4, Label: "P1"},
		{Start: 4, End: 6, Label: "P1"},
	}, cpu.Timeline)
	require.Equal(t, 6, p1.FinishTime)
}

func TestCpuIdleDoesNotCountAsSwitch(t *testing.T) {
	cpu := core.NewCPU(true)
	p1 := core.NewRunState(core.Process{ID: "P1", Burst: 2}, 0)
	p2 := core.NewRunState(core.Process{ID: "P2", Arrival: 5, Burst: 1}, 1)

	cpu.IdleUntil(1)
	cpu.IdleUntil(2)
	cpu.Execute(p1, 1)
	cpu.IdleUntil(4)
	cpu.Execute(p1, 1)
	require.Equal(t, 0, cpu.Switches)

	cpu.IdleUntil(5)
	cpu.Execute(p2, 1)
	require.Equal(t, 1, cpu.Switches)

	require.Equal(t, core.Timeline{
		{Start: 0, End: 2, Label: core.Idle},
		{Start: 2, End: 3, Label: "P1"},
		{Start: 3, End: 4, Label: core.Idle},
		{Start: 4, End: 5, Label: "P1"},
		{Start: 5, End: 6, Label: "P2"},
	}, cpu.Timeline)

	metric := cpu.Metric()
	require.Equal(t, 6, metric.TotalTime)
	require.Equal(t, 3, metric.UtilizationTime)
	require.Equal(t, 3, metric.IdleTime)
}

func TestCpuIdleUntilPastIsNoop(t *testing.T) {
	cpu := core.NewCPU(true)
	cpu.IdleUntil(0)
	require.Empty(t, cpu.Timeline)
	require.Equal(t, 0, cpu.Clock)
}
