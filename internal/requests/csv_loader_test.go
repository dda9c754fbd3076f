package requests

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestLoadScheduleRequests(t *testing.T) {
	input := `# pid,arrival,burst,priority
P1,0,10,3

P2, 2, 5, 1
bad,line
P3,4,3,4
`
	got, err := LoadScheduleRequests(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	want := []Job{
		{ProcessId: "P1", ArrivalTime: 0, BurstTime: 10, Priority: 3},
		{ProcessId: "P2", ArrivalTime: 2, BurstTime: 5, Priority: 1},
		{ProcessId: "P3", ArrivalTime: 4, BurstTime: 3, Priority: 4},
	}
	if !reflect.DeepEqual(got.Jobs, want) {
		t.Errorf("jobs = %+v, want %+v", got.Jobs, want)
	}
}

func TestLoadScheduleRequests_NotAnInteger(t *testing.T) {
	_, err := LoadScheduleRequests(strings.NewReader("P1,0,10,3\nP2,x,5,1\n"))
	if !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidRecord)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the line", err)
	}
}

func TestLoadScheduleRequests_Empty(t *testing.T) {
	got, err := LoadScheduleRequests(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Jobs) != 0 {
		t.Errorf("jobs = %+v", got.Jobs)
	}
}
