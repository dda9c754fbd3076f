package schedulers

import (
	"fmt"
	"log"
	"sort"

	"mlq-scheduler/internal/core"
)

type SelectionKind int

const (
	SelectIdle SelectionKind = iota
	SelectSystem
	SelectUser
)

// Selection is the decision for one time unit. Process is nil for SelectIdle.
type Selection struct {
	Kind    SelectionKind
	Process *core.Process
}

type Options struct {
	Classifier core.Classifier

	// MaxTimeUnits bounds the simulated time. Zero means max(arrival)+sum(burst),
	// which a valid process set always finishes within.
	MaxTimeUnits int

	// Trace receives one line per arrival, dispatch, preemption and completion.
	Trace *log.Logger
}

func DefaultOptions() Options {
	return Options{Classifier: core.DefaultClassifier()}
}

type Result struct {
	// Processes holds the simulated copies in input order.
	Processes   []*core.Process
	Timeline    []core.TimelineEntry
	CpuMetric   core.CpuMetric
	Preemptions map[string]int
}

func (r *Result) Gantt() []core.TimeSlice {
	return core.MergeTimeline(r.Timeline)
}

func (r *Result) TotalPreemptions() int {
	total := 0
	for _, n := range r.Preemptions {
		total += n
	}
	return total
}

// simulation is the state of a single run. It is owned by one Simulate call.
type simulation struct {
	unit      int
	limit     int
	pending   []*core.Process
	system    []*core.Process
	user      []*core.Process
	completed int
	previous  *core.Process
	cpu       core.Cpu
	result    *Result
	trace     *log.Logger
}

// Simulate runs the two-level queue to completion on copies of processes; the
// inputs are left untouched so repeated runs give identical results. On
// ErrSimulationTimeout the returned Result holds the partial timeline.
func Simulate(processes []*core.Process, opts Options) (*Result, error) {
	s, err := newSimulation(processes, opts)
	if err != nil {
		return nil, err
	}

	for s.completed < len(s.result.Processes) {
		if s.unit >= s.limit {
			s.finish()
			return s.result, fmt.Errorf("%w: %d of %d processes unfinished after %d units",
				core.ErrSimulationTimeout, len(s.result.Processes)-s.completed, len(s.result.Processes), s.limit)
		}
		if err := s.step(); err != nil {
			s.finish()
			return s.result, err
		}
	}
	s.finish()
	return s.result, nil
}

func newSimulation(processes []*core.Process, opts Options) (*simulation, error) {
	s := &simulation{
		result: &Result{
			Processes:   make([]*core.Process, 0, len(processes)),
			Timeline:    make([]core.TimelineEntry, 0),
			Preemptions: make(map[string]int),
		},
		trace: opts.Trace,
	}

	seen := make(map[string]bool, len(processes))
	maxArrival, totalBurst := 0, 0
	for _, p := range processes {
		if seen[p.ProcessId] {
			return nil, fmt.Errorf("%w: duplicate process id %s", core.ErrInvalidProcess, p.ProcessId)
		}
		seen[p.ProcessId] = true

		fresh := p.Fresh()
		s.result.Processes = append(s.result.Processes, fresh)
		s.pending = append(s.pending, fresh)
		if p.ArrivalTime > maxArrival {
			maxArrival = p.ArrivalTime
		}
		totalBurst += p.BurstTime
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		return earlierArrival(s.pending[i], s.pending[j])
	})

	s.limit = opts.MaxTimeUnits
	if s.limit <= 0 {
		s.limit = maxArrival + totalBurst
	}
	return s, nil
}

func (s *simulation) step() error {
	s.admit()

	selection := s.selectNext()
	if s.previous != nil && !s.previous.Completed() && selection.Process != s.previous {
		s.result.Preemptions[s.previous.ProcessId]++
		s.tracef("%s preempted by %s", s.previous.ProcessId, describe(selection))
	}

	switch selection.Kind {
	case SelectIdle:
		s.cpu.Idle(s.unit)
		if s.previous != nil {
			s.tracef("cpu idle")
		}
	default:
		p := selection.Process
		if _, ran := p.FirstRunTime(); !ran {
			s.tracef("%s gets cpu for the first time (response %d)", p.ProcessId, s.unit-p.ArrivalTime)
		}
		if err := s.cpu.Execute(p, s.unit); err != nil {
			return err
		}
		if p.Completed() {
			s.retire(p)
		}
	}

	s.previous = selection.Process
	s.unit++
	return nil
}

func (s *simulation) admit() {
	for len(s.pending) > 0 && s.pending[0].ArrivalTime <= s.unit {
		p := s.pending[0]
		s.pending = s.pending[1:]
		switch p.Queue {
		case core.SystemQueue:
			s.system = append(s.system, p)
		default:
			s.user = append(s.user, p)
		}
		s.tracef("%s arrived -> %s queue", p.ProcessId, p.Queue)
	}
}

// selectNext re-runs the whole decision every unit, which is what makes
// preemption implicit: the system queue always wins while it has work.
func (s *simulation) selectNext() Selection {
	if p := selectHighestPriority(s.system); p != nil {
		return Selection{Kind: SelectSystem, Process: p}
	}
	if p := selectFirstCome(s.user); p != nil {
		return Selection{Kind: SelectUser, Process: p}
	}
	return Selection{Kind: SelectIdle}
}

func (s *simulation) retire(p *core.Process) {
	switch p.Queue {
	case core.SystemQueue:
		s.system = removeProcess(s.system, p)
	default:
		s.user = removeProcess(s.user, p)
	}
	s.completed++
	completion, _ := p.CompletionTime()
	s.tracef("%s completed (ct=%d)", p.ProcessId, completion)
}

func (s *simulation) finish() {
	if s.cpu.Timeline != nil {
		s.result.Timeline = s.cpu.Timeline
	}
	s.result.CpuMetric = s.cpu.Metric
}

func (s *simulation) tracef(format string, args ...interface{}) {
	if s.trace == nil {
		return
	}
	s.trace.Printf("time %d: "+format, append([]interface{}{s.unit}, args...)...)
}

func removeProcess(ready []*core.Process, p *core.Process) []*core.Process {
	for i := range ready {
		if ready[i] == p {
			return append(ready[:i], ready[i+1:]...)
		}
	}
	return ready
}

func describe(selection Selection) string {
	if selection.Process == nil {
		return "idle"
	}
	return selection.Process.ProcessId
}
