package util

import "mlq-scheduler/internal/core"

type Averages struct {
	CompletionTime float64
	TurnaroundTime float64
	WaitingTime    float64
	ResponseTime   float64
}

// CalculateAverage returns the arithmetic mean of each metric, or nil when
// there is nothing to average.
func CalculateAverage(processMetrics []core.ProcessMetrics) *Averages {
	if len(processMetrics) == 0 {
		return nil
	}

	var completionTimeSum, turnaroundTimeSum, waitingTimeSum, responseTimeSum int
	for _, m := range processMetrics {
		completionTimeSum += m.CompletionTime
		turnaroundTimeSum += m.TurnaroundTime
		waitingTimeSum += m.WaitingTime
		responseTimeSum += m.ResponseTime
	}

	processCount := float64(len(processMetrics))
	return &Averages{
		CompletionTime: float64(completionTimeSum) / processCount,
		TurnaroundTime: float64(turnaroundTimeSum) / processCount,
		WaitingTime:    float64(waitingTimeSum) / processCount,
		ResponseTime:   float64(responseTimeSum) / processCount,
	}
}
