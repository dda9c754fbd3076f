package core

import "fmt"

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Utilization is busy time over total time, 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Cpu runs processes one time unit at a time and records what occupied each unit.
type Cpu struct {
	Metric   CpuMetric
	Timeline []TimelineEntry
}

// Execute dispatches p for the unit starting at unit: it stamps the first run,
// spends one unit of burst and stamps completion at unit+1 when the burst is used up.
func (c *Cpu) Execute(p *Process, unit int) error {
	if p.completionTime != nil {
		return fmt.Errorf("%w: %s dispatched at %d after completing", ErrInvalidProcessState, p.ProcessId, unit)
	}
	if p.remainingTime <= 0 {
		return fmt.Errorf("%w: %s has remaining time %d at %d", ErrInvalidProcessState, p.ProcessId, p.remainingTime, unit)
	}

	if p.firstRunTime == nil {
		firstRun := unit
		p.firstRunTime = &firstRun
	}
	c.Timeline = append(c.Timeline, TimelineEntry{Time: unit, ProcessId: p.ProcessId, Queue: p.Queue})

	p.remainingTime--
	if p.remainingTime == 0 {
		completion := unit + 1
		p.completionTime = &completion
	}

	c.Metric.TotalTime++
	c.Metric.UtilizationTime++
	return nil
}

func (c *Cpu) Idle(unit int) {
	c.Timeline = append(c.Timeline, TimelineEntry{Time: unit, Idle: true})
	c.Metric.TotalTime++
	c.Metric.IdleTime++
}
