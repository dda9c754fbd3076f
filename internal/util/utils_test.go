package util

import (
	"testing"

	"mlq-scheduler/internal/core"
)

func TestCalculateAverage(t *testing.T) {
	if got := CalculateAverage(nil); got != nil {
		t.Fatalf("empty input averaged to %+v", got)
	}

	got := CalculateAverage([]core.ProcessMetrics{
		{CompletionTime: 5, TurnaroundTime: 5, WaitingTime: 0, ResponseTime: 0},
		{CompletionTime: 8, TurnaroundTime: 6, WaitingTime: 3, ResponseTime: 1},
	})
	want := Averages{CompletionTime: 6.5, TurnaroundTime: 5.5, WaitingTime: 1.5, ResponseTime: 0.5}
	if got == nil || *got != want {
		t.Errorf("CalculateAverage() = %+v, want %+v", got, want)
	}
}
