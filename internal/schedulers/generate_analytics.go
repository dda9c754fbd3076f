package schedulers

import (
	"mlq-scheduler/internal/core"
	"mlq-scheduler/internal/responses"
	"mlq-scheduler/internal/util"
)

type QueueMetrics struct {
	Queue    core.Queue
	Count    int
	Averages *util.Averages
}

type Metrics struct {
	Processes []core.ProcessMetrics
	Overall   *util.Averages

	// Queues always lists the system queue then the user queue.
	Queues []QueueMetrics
}

var queuePolicies = map[core.Queue]string{
	core.SystemQueue: "preemptive priority",
	core.UserQueue:   "first come first serve",
}

// CalculateMetrics derives per-process and aggregate metrics from finished
// processes. It only reads its input and fails with ErrIncompleteProcess if
// any process has not completed.
func CalculateMetrics(processes []*core.Process) (*Metrics, error) {
	metrics := &Metrics{Processes: make([]core.ProcessMetrics, 0, len(processes))}
	byQueue := make(map[core.Queue][]core.ProcessMetrics)
	for _, p := range processes {
		m, err := p.Metrics()
		if err != nil {
			return nil, err
		}
		metrics.Processes = append(metrics.Processes, m)
		byQueue[m.Queue] = append(byQueue[m.Queue], m)
	}

	metrics.Overall = util.CalculateAverage(metrics.Processes)
	for _, queue := range []core.Queue{core.SystemQueue, core.UserQueue} {
		metrics.Queues = append(metrics.Queues, QueueMetrics{
			Queue:    queue,
			Count:    len(byQueue[queue]),
			Averages: util.CalculateAverage(byQueue[queue]),
		})
	}
	return metrics, nil
}

func generateResponse(runId string, result *Result, metrics *Metrics) responses.ScheduleResponse {
	response := responses.ScheduleResponse{
		RunId:          runId,
		TotalTime:      result.CpuMetric.TotalTime,
		IdleTime:       result.CpuMetric.IdleTime,
		CpuUtilization: result.CpuMetric.Utilization(),
		Preemptions:    result.TotalPreemptions(),
		Queues:         make([]responses.QueueResponse, 0, 2),
		Details:        make([]responses.ProcessResponse, 0),
		Timeline:       generateTimeline(result.Timeline),
		Gantt:          generateGantt(result.Gantt()),
	}
	if result.CpuMetric.TotalTime > 0 {
		response.CpuThroughput = float64(len(result.Processes)) / float64(result.CpuMetric.TotalTime)
	}
	if metrics == nil {
		return response
	}

	response.Averages = generateAverages(metrics.Overall)
	for _, q := range metrics.Queues {
		response.Queues = append(response.Queues, responses.QueueResponse{
			Queue:    q.Queue.String(),
			Label:    q.Queue.Label(),
			Policy:   queuePolicies[q.Queue],
			Count:    q.Count,
			Averages: generateAverages(q.Averages),
		})
	}
	for _, m := range metrics.Processes {
		response.Details = append(response.Details, generateProcessDetails(m, result.Preemptions[m.ProcessId]))
	}
	return response
}

func generateProcessDetails(m core.ProcessMetrics, preemptions int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      m.ProcessId,
		ArrivalTime:    m.ArrivalTime,
		BurstTime:      m.BurstTime,
		Priority:       m.Priority,
		Queue:          m.Queue.String(),
		FirstRunTime:   m.FirstRunTime,
		CompletionTime: m.CompletionTime,
		TurnAroundTime: m.TurnaroundTime,
		WaitingTime:    m.WaitingTime,
		ResponseTime:   m.ResponseTime,
		Preemptions:    preemptions,
	}
}

func generateAverages(averages *util.Averages) *responses.AverageResponse {
	if averages == nil {
		return nil
	}
	return &responses.AverageResponse{
		CompletionTime: averages.CompletionTime,
		TurnAroundTime: averages.TurnaroundTime,
		WaitingTime:    averages.WaitingTime,
		ResponseTime:   averages.ResponseTime,
	}
}

func generateTimeline(timeline []core.TimelineEntry) []responses.TimelineResponse {
	entries := make([]responses.TimelineResponse, 0, len(timeline))
	for _, e := range timeline {
		entry := responses.TimelineResponse{Time: e.Time, Idle: e.Idle}
		if !e.Idle {
			entry.ProcessId = e.ProcessId
			entry.Queue = e.Queue.String()
		}
		entries = append(entries, entry)
	}
	return entries
}

func generateGantt(slices []core.TimeSlice) []responses.GanttResponse {
	gantt := make([]responses.GanttResponse, 0, len(slices))
	for _, s := range slices {
		g := responses.GanttResponse{Idle: s.Idle, Start: s.Start, Stop: s.Stop}
		if !s.Idle {
			g.ProcessId = s.ProcessId
			g.Queue = s.Queue.String()
		}
		gantt = append(gantt, g)
	}
	return gantt
}
