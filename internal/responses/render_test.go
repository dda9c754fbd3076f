package responses

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	response := ScheduleResponse{
		TotalTime:      6,
		IdleTime:       1,
		CpuUtilization: 5.0 / 6.0,
		Averages:       &AverageResponse{CompletionTime: 4.5, TurnAroundTime: 3.5, WaitingTime: 1, ResponseTime: 1},
		Queues: []QueueResponse{
			{Queue: "system", Label: "Q1", Policy: "preemptive priority", Count: 1},
			{Queue: "user", Label: "Q2", Policy: "first come first serve", Count: 1},
		},
		Details: []ProcessResponse{
			{ProcessId: "P2", ArrivalTime: 1, BurstTime: 2, Priority: 1, Queue: "system", CompletionTime: 3, TurnAroundTime: 2},
			{ProcessId: "P1", ArrivalTime: 1, BurstTime: 3, Priority: 4, Queue: "user", CompletionTime: 6, TurnAroundTime: 5, WaitingTime: 2, ResponseTime: 2},
		},
		Gantt: []GanttResponse{
			{Idle: true, Start: 0, Stop: 1},
			{ProcessId: "P2", Queue: "system", Start: 1, Stop: 3},
			{ProcessId: "P1", Queue: "user", Start: 3, Stop: 6},
		},
	}

	var buf bytes.Buffer
	Render(&buf, response)
	out := buf.String()

	for _, want := range []string{"Schedule table", "Gantt schedule", "Execution log", "PREEMPTIVE PRIORITY", "3.50", "idle", "Q2 (user)"} {
		if !strings.Contains(strings.ToUpper(out), strings.ToUpper(want)) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	results := out[strings.Index(out, "Schedule table"):]
	if p1, p2 := strings.Index(results, "| P1"), strings.Index(results, "| P2"); p1 < 0 || p1 > p2 {
		t.Errorf("results not sorted by pid:\n%s", out)
	}
	if !strings.Contains(out, "|idle|") {
		t.Errorf("gantt chart missing idle slice:\n%s", out)
	}
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	Render(&buf, ScheduleResponse{})
	if !strings.Contains(buf.String(), "(empty)") {
		t.Errorf("output = %s", buf.String())
	}
}
