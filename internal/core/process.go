package core

import "fmt"

// Process is one schedulable record. The input attributes and Queue are fixed
// once built; the runtime fields are only touched by Cpu.
type Process struct {
	ProcessId   string
	ArrivalTime int
	BurstTime   int
	Priority    int
	Queue       Queue

	remainingTime  int
	firstRunTime   *int
	completionTime *int
}

// ProcessMetrics is the read-only result for a completed process.
type ProcessMetrics struct {
	ProcessId      string
	ArrivalTime    int
	BurstTime      int
	Priority       int
	Queue          Queue
	FirstRunTime   int
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

func NewProcess(processId string, arrivalTime, burstTime, priority int, classifier Classifier) (*Process, error) {
	if processId == "" {
		return nil, fmt.Errorf("%w: empty process id", ErrInvalidProcess)
	}
	if arrivalTime < 0 {
		return nil, fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidProcess, processId, arrivalTime)
	}
	if burstTime <= 0 {
		return nil, fmt.Errorf("%w: %s has non-positive burst time %d", ErrInvalidProcess, processId, burstTime)
	}
	queue, err := classifier.Classify(priority)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", processId, err)
	}
	return &Process{
		ProcessId:     processId,
		ArrivalTime:   arrivalTime,
		BurstTime:     burstTime,
		Priority:      priority,
		Queue:         queue,
		remainingTime: burstTime,
	}, nil
}

// Fresh returns a copy of p with its runtime state reset to the loaded state.
func (p *Process) Fresh() *Process {
	return &Process{
		ProcessId:     p.ProcessId,
		ArrivalTime:   p.ArrivalTime,
		BurstTime:     p.BurstTime,
		Priority:      p.Priority,
		Queue:         p.Queue,
		remainingTime: p.BurstTime,
	}
}

func (p *Process) RemainingTime() int {
	return p.remainingTime
}

func (p *Process) FirstRunTime() (int, bool) {
	if p.firstRunTime == nil {
		return 0, false
	}
	return *p.firstRunTime, true
}

func (p *Process) CompletionTime() (int, bool) {
	if p.completionTime == nil {
		return 0, false
	}
	return *p.completionTime, true
}

func (p *Process) Completed() bool {
	return p.completionTime != nil
}

func (p *Process) Metrics() (ProcessMetrics, error) {
	if p.completionTime == nil || p.firstRunTime == nil {
		return ProcessMetrics{}, fmt.Errorf("%w: %s has %d units left", ErrIncompleteProcess, p.ProcessId, p.remainingTime)
	}
	turnaround := *p.completionTime - p.ArrivalTime
	return ProcessMetrics{
		ProcessId:      p.ProcessId,
		ArrivalTime:    p.ArrivalTime,
		BurstTime:      p.BurstTime,
		Priority:       p.Priority,
		Queue:          p.Queue,
		FirstRunTime:   *p.firstRunTime,
		CompletionTime: *p.completionTime,
		TurnaroundTime: turnaround,
		WaitingTime:    turnaround - p.BurstTime,
		ResponseTime:   *p.firstRunTime - p.ArrivalTime,
	}, nil
}

func (p *Process) String() string {
	if p.Completed() {
		return fmt.Sprintf("%s [completed]", p.ProcessId)
	}
	return fmt.Sprintf("%s [remaining %d]", p.ProcessId, p.remainingTime)
}
