package schedulers

import "mlq-scheduler/internal/core"

// selectFirstCome picks the user process at the head of FCFS order. A user
// process that already ran keeps its place by arrival time and gets no extra
// preference over other waiting user processes.
func selectFirstCome(ready []*core.Process) *core.Process {
	var first *core.Process
	for _, p := range ready {
		if first == nil || earlierArrival(p, first) {
			first = p
		}
	}
	return first
}

func earlierArrival(a, b *core.Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessId < b.ProcessId
}
