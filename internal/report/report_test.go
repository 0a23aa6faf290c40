package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"os-scheduler/internal/core"
	"os-scheduler/internal/report"
	"os-scheduler/internal/schedulers"
)

func scenario() []core.Process {
	return []core.Process{
		{ID: "P1", Arrival: 0, Burst: 5, Priority: 2},
		{ID: "P2", Arrival: 1, Burst: 3, Priority: 1},
	}
}

func TestFileName(t *testing.T) {
	require.Equal(t, "Case1_Result_FCFS.txt", report.FileName("Case1", "FCFS"))
	require.Equal(t, "Case2_Result_SJF_NonPreemptive.txt", report.FileName("Case2", "SJF NonPreemptive"))
}

func TestWrite(t *testing.T) {
	response, err := schedulers.Schedule(schedulers.FirstComeFirstServe, scenario(), schedulers.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "Case1", response))
	out := buf.String()

	require.Contains(t, out, "CASE: Case1 | ALGORITHM: FCFS")
	require.Contains(t, out, "[   0 ] - -  P1  - - [   5 ]\n")
	require.Contains(t, out, "[   5 ] - -  P2  - - [   8 ]\n")
	require.Contains(t, out, "   Average: 2.000\n   Maximum: 4.000\n")
	require.Contains(t, out, "   Average: 6.000\n   Maximum: 7.000\n")
	require.Contains(t, out, "   T=50: 2\n   T=100: 2\n   T=150: 2\n   T=200: 2\n")
	require.Contains(t, out, "   Value: %99.988\n")
	require.Contains(t, out, "   Count: 1\n")
	require.Contains(t, out, "TURNAROUND")
}

func TestWriteIdleLabel(t *testing.T) {
	response, err := schedulers.Schedule(schedulers.RoundRobin,
		[]core.Process{{ID: "P10000", Arrival: 2, Burst: 1}}, schedulers.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, "c", response))
	require.Contains(t, buf.String(), "[   0 ] - - IDLE - - [   2 ]\n")
	require.Contains(t, buf.String(), "[   2 ] - - P10000 - - [   3 ]\n")
}

func TestWriteCase(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	results := schedulers.RunAll(scenario(), schedulers.DefaultOptions())

	paths, err := report.WriteCase(dir, "Case1", results)
	require.NoError(t, err)
	require.Len(t, paths, len(schedulers.Algorithms))

	content, err := os.ReadFile(filepath.Join(dir, "Case1_Result_Priority_Preemptive.txt"))
	require.NoError(t, err)
	require.Contains(t, string(content), "[   1 ] - -  P2  - - [   4 ]\n")
	require.Contains(t, string(content), "   Count: 2\n")
}
