package requests

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

var ErrInvalidRecord = errors.New("invalid record")

// LoadScheduleRequests reads PID,ArrivalTime,BurstTime,Priority lines. Blank
// lines and lines starting with # are skipped; lines with the wrong number of
// fields are skipped with a warning.
func LoadScheduleRequests(r io.Reader) (*ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	request := &ScheduleRequests{Jobs: make([]Job, 0)}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading CSV", err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) != 4 {
			log.Printf("skipping line %d: want 4 fields, got %d", line, len(record))
			continue
		}
		job, err := parseJob(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		request.Jobs = append(request.Jobs, job)
	}
	return request, nil
}

func parseJob(record []string) (Job, error) {
	var values [3]int
	for i, name := range []string{"arrival time", "burst time", "priority"} {
		v, err := strconv.Atoi(strings.TrimSpace(record[i+1]))
		if err != nil {
			return Job{}, fmt.Errorf("%w: %s %q is not an integer", ErrInvalidRecord, name, record[i+1])
		}
		values[i] = v
	}
	return Job{
		ProcessId:   strings.TrimSpace(record[0]),
		ArrivalTime: values[0],
		BurstTime:   values[1],
		Priority:    values[2],
	}, nil
}
