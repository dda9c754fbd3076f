package core

// TimelineEntry is what occupied the CPU during [Time, Time+1).
// ProcessId and Queue are empty when Idle is set.
type TimelineEntry struct {
	Time      int
	ProcessId string
	Queue     Queue
	Idle      bool
}

// TimeSlice is a run of consecutive units with the same occupant.
type TimeSlice struct {
	ProcessId string
	Queue     Queue
	Idle      bool
	Start     int
	Stop      int
}

func (s TimeSlice) Duration() int {
	return s.Stop - s.Start
}

func MergeTimeline(timeline []TimelineEntry) []TimeSlice {
	slices := make([]TimeSlice, 0)
	for _, entry := range timeline {
		if n := len(slices); n > 0 {
			last := &slices[n-1]
			if last.Stop == entry.Time && last.Idle == entry.Idle && last.ProcessId == entry.ProcessId {
				last.Stop++
				continue
			}
		}
		slices = append(slices, TimeSlice{
			ProcessId: entry.ProcessId,
			Queue:     entry.Queue,
			Idle:      entry.Idle,
			Start:     entry.Time,
			Stop:      entry.Time + 1,
		})
	}
	return slices
}
