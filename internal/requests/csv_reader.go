package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadJobs parses process records in "id,arrival,burst,priority" form. The
// first row is a header. Rows with fewer than four fields are skipped; any
// other malformed row fails the whole read.
func ReadJobs(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return &ScheduleRequests{}, nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	request := &ScheduleRequests{}
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line %d: %w", line, err)
		}
		if len(row) < 4 {
			continue
		}
		job, err := parseJob(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		request.Jobs = append(request.Jobs, job)
	}

	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

// ReadJobsFile opens path and reads it with ReadJobs.
func ReadJobsFile(path string) (*ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening process file: %w", err)
	}
	defer f.Close()

	request, err := ReadJobs(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return request, nil
}

func parseJob(row []string) (Job, error) {
	arrival, err := strconv.Atoi(strings.TrimSpace(row[1]))
	if err != nil {
		return Job{}, fmt.Errorf("%w: arrival time %q is not an integer", ErrInvalidJob, row[1])
	}
	burst, err := strconv.Atoi(strings.TrimSpace(row[2]))
	if err != nil {
		return Job{}, fmt.Errorf("%w: burst time %q is not an integer", ErrInvalidJob, row[2])
	}
	job := Job{
		ProcessId:   strings.TrimSpace(row[0]),
		ArrivalTime: arrival,
		BurstTime:   burst,
		Priority:    strings.TrimSpace(row[3]),
	}
	return job, job.Validate()
}
