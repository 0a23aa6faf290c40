// Package report renders scheduling results as plain-text artifacts.
package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

// FileName names the artifact for one algorithm of one case.
func FileName(caseName, algorithm string) string {
	return fmt.Sprintf("%s_Result_%s.txt", caseName, strings.ReplaceAll(algorithm, " ", "_"))
}

// Write renders one algorithm's results.
func Write(w io.Writer, caseName string, response responses.ScheduleResponse) error {
	title := fmt.Sprintf("CASE: %s | ALGORITHM: %s", caseName, response.Algorithm)
	_, _ = fmt.Fprintln(w, title)
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Repeat("=", 50))

	writeGantt(w, response)
	_, _ = fmt.Fprintf(w, "\n%s\n", strings.Repeat("-", 40))
	writeDetails(w, response)

	_, _ = fmt.Fprintln(w, "\nWaiting time")
	_, _ = fmt.Fprintf(w, "   Average: %.3f\n", response.AverageWaitingTime)
	_, _ = fmt.Fprintf(w, "   Maximum: %.3f\n", response.MaxWaitingTime)

	_, _ = fmt.Fprintln(w, "\nTurnaround time")
	_, _ = fmt.Fprintf(w, "   Average: %.3f\n", response.AverageTurnAroundTime)
	_, _ = fmt.Fprintf(w, "   Maximum: %.3f\n", response.MaxTurnAroundTime)

	_, _ = fmt.Fprintln(w, "\nThroughput")
	for _, tp := range response.Throughput {
		_, _ = fmt.Fprintf(w, "   T=%d: %d\n", tp.Threshold, tp.Completed)
	}

	_, _ = fmt.Fprintln(w, "\nAverage CPU efficiency")
	_, _ = fmt.Fprintf(w, "   Value: %%%.3f\n", response.CpuEfficiency)

	_, err := fmt.Fprintf(w, "\nContext switches\n   Count: %d\n", response.ContextSwitches)
	return err
}

func writeGantt(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	for _, s := range response.Timeline {
		_, _ = fmt.Fprintf(w, "[ %3d ] - - %s - - [ %3d ]\n", s.Start, center(s.Label, 4), s.End)
	}
}

func writeDetails(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Process table")
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.StartTime),
			fmt.Sprint(d.FinishTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Arrival", "Burst", "Start", "Finish", "Wait", "Turnaround"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.3f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.3f", response.AverageTurnAroundTime)})
	table.Render()
}

// center pads s on both sides to width, putting any odd space on the right.
func center(s string, width int) string {
	gap := width - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// WriteCase writes one artifact per response into dir and returns the paths
// written. It keeps going after a failed file and reports every failure.
func WriteCase(dir, caseName string, results []responses.ScheduleResponse) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	var paths []string
	var errs []error
	for _, response := range results {
		path := filepath.Join(dir, FileName(caseName, response.Algorithm))
		if err := writeFile(path, caseName, response); err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

func writeFile(path, caseName string, response responses.ScheduleResponse) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing report %s: %w", path, cerr)
		}
	}()
	if err := Write(f, caseName, response); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
