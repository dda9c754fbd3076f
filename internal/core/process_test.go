package core

import (
	"errors"
	"testing"
)

func TestNewProcess_Validation(t *testing.T) {
	classifier := DefaultClassifier()
	tests := []struct {
		name                     string
		id                       string
		arrival, burst, priority int
		wantErr                  error
	}{
		{name: "empty id", id: "", arrival: 0, burst: 1, priority: 1, wantErr: ErrInvalidProcess},
		{name: "negative arrival", id: "P1", arrival: -1, burst: 1, priority: 1, wantErr: ErrInvalidProcess},
		{name: "zero burst", id: "P1", arrival: 0, burst: 0, priority: 1, wantErr: ErrInvalidProcess},
		{name: "bad priority", id: "P1", arrival: 0, burst: 1, priority: 9, wantErr: ErrInvalidPriority},
		{name: "ok", id: "P1", arrival: 3, burst: 4, priority: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProcess(tt.id, tt.arrival, tt.burst, tt.priority, classifier)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.RemainingTime() != tt.burst {
				t.Errorf("remaining = %d, want %d", p.RemainingTime(), tt.burst)
			}
			if p.Queue != UserQueue {
				t.Errorf("queue = %v", p.Queue)
			}
			if _, ok := p.FirstRunTime(); ok {
				t.Error("first run set on a new process")
			}
			if p.Completed() {
				t.Error("new process completed")
			}
		})
	}
}

func TestProcess_Metrics(t *testing.T) {
	p, err := NewProcess("P1", 2, 3, 1, DefaultClassifier())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Metrics(); !errors.Is(err, ErrIncompleteProcess) {
		t.Fatalf("metrics before completion: %v", err)
	}

	cpu := &Cpu{}
	for _, unit := range []int{4, 6, 7} {
		if err := cpu.Execute(p, unit); err != nil {
			t.Fatal(err)
		}
	}
	m, err := p.Metrics()
	if err != nil {
		t.Fatal(err)
	}
	want := ProcessMetrics{
		ProcessId: "P1", ArrivalTime: 2, BurstTime: 3, Priority: 1, Queue: SystemQueue,
		FirstRunTime: 4, CompletionTime: 8, TurnaroundTime: 6, WaitingTime: 3, ResponseTime: 2,
	}
	if m != want {
		t.Errorf("metrics = %+v, want %+v", m, want)
	}
}

func TestProcess_Fresh(t *testing.T) {
	p, _ := NewProcess("P1", 0, 1, 1, DefaultClassifier())
	cpu := &Cpu{}
	if err := cpu.Execute(p, 0); err != nil {
		t.Fatal(err)
	}
	f := p.Fresh()
	if f.Completed() || f.RemainingTime() != 1 {
		t.Errorf("fresh copy kept runtime state: %v", f)
	}
	if !p.Completed() {
		t.Error("original lost its runtime state")
	}
}
