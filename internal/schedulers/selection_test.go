package schedulers

import (
	"testing"

	"mlq-scheduler/internal/core"
)

func TestSelectHighestPriority(t *testing.T) {
	c := core.DefaultClassifier()
	a, _ := core.NewProcess("A", 3, 1, 2, c)
	b, _ := core.NewProcess("B", 1, 1, 2, c)
	d, _ := core.NewProcess("D", 5, 1, 1, c)
	e, _ := core.NewProcess("E", 5, 1, 1, c)

	tests := []struct {
		name  string
		ready []*core.Process
		want  *core.Process
	}{
		{name: "empty", ready: nil, want: nil},
		{name: "lowest number wins", ready: []*core.Process{a, b, d}, want: d},
		{name: "earlier arrival on equal priority", ready: []*core.Process{a, b}, want: b},
		{name: "id on equal arrival", ready: []*core.Process{e, d}, want: d},
	}
	for _, tt := range tests {
		if got := selectHighestPriority(tt.ready); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSelectFirstCome(t *testing.T) {
	c := core.DefaultClassifier()
	a, _ := core.NewProcess("A", 4, 1, 5, c)
	b, _ := core.NewProcess("B", 2, 1, 3, c)
	z, _ := core.NewProcess("Z", 2, 1, 4, c)

	if got := selectFirstCome([]*core.Process{a, z, b}); got != b {
		t.Errorf("got %v, want %v", got, b)
	}
	if got := selectFirstCome(nil); got != nil {
		t.Errorf("got %v from an empty queue", got)
	}
}
