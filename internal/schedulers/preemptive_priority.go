package schedulers

import "mlq-scheduler/internal/core"

// selectHighestPriority picks the system process to run: lowest priority number,
// then earliest arrival, then lowest id. Ties never depend on input order.
func selectHighestPriority(ready []*core.Process) *core.Process {
	var best *core.Process
	for _, p := range ready {
		if best == nil || higherPriority(p, best) {
			best = p
		}
	}
	return best
}

func higherPriority(a, b *core.Process) bool {
	if a.Priority != b.Priority {
		return a.Priority < b.Priority
	}
	return earlierArrival(a, b)
}
