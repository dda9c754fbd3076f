package requests

import (
	"fmt"

	"mlq-scheduler/internal/core"
)

type Job struct {
	ProcessId   string `json:"process_id"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// Processes validates every job and builds the classified process records.
// It rejects the whole request on the first bad job.
func (r *ScheduleRequests) Processes(classifier core.Classifier) ([]*core.Process, error) {
	processes := make([]*core.Process, 0, len(r.Jobs))
	seen := make(map[string]bool, len(r.Jobs))
	for i, job := range r.Jobs {
		if seen[job.ProcessId] {
			return nil, fmt.Errorf("job %d: %w: duplicate process id %s", i+1, core.ErrInvalidProcess, job.ProcessId)
		}
		seen[job.ProcessId] = true

		p, err := core.NewProcess(job.ProcessId, job.ArrivalTime, job.BurstTime, job.Priority, classifier)
		if err != nil {
			return nil, fmt.Errorf("job %d: %w", i+1, err)
		}
		processes = append(processes, p)
	}
	return processes, nil
}

// DefaultScheduleRequests is the reference dataset used when no input is given
// or the input cannot be read.
func DefaultScheduleRequests() *ScheduleRequests {
	return &ScheduleRequests{
		Jobs: []Job{
			{ProcessId: "P1", ArrivalTime: 0, BurstTime: 10, Priority: 3},
			{ProcessId: "P2", ArrivalTime: 2, BurstTime: 5, Priority: 1},
			{ProcessId: "P3", ArrivalTime: 4, BurstTime: 3, Priority: 4},
			{ProcessId: "P4", ArrivalTime: 6, BurstTime: 8, Priority: 2},
			{ProcessId: "P5", ArrivalTime: 8, BurstTime: 1, Priority: 5},
		},
	}
}
