package responses

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Render writes the queue assignment, the results table and the Gantt chart
// for a finished run.
func Render(w io.Writer, response ScheduleResponse) {
	details := make([]ProcessResponse, len(response.Details))
	copy(details, response.Details)
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ProcessId < details[j].ProcessId
	})

	outputTitle(w, "Multilevel queue scheduling")
	outputQueues(w, response.Queues, details)
	outputResults(w, details, response.Averages)
	outputSummary(w, response)
	outputGantt(w, response.Gantt)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputQueues(w io.Writer, queues []QueueResponse, details []ProcessResponse) {
	_, _ = fmt.Fprintln(w, "Queue assignment")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Queue", "Policy", "Processes"})
	for _, q := range queues {
		members := make([]string, 0)
		for _, d := range details {
			if d.Queue == q.Queue {
				members = append(members, d.ProcessId)
			}
		}
		if len(members) == 0 {
			members = append(members, "(none)")
		}
		table.Append([]string{fmt.Sprintf("%s (%s)", q.Label, q.Queue), q.Policy, strings.Join(members, " ")})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputResults(w io.Writer, details []ProcessResponse, averages *AverageResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "Priority", "Queue", "CT", "TAT", "WT", "RT"})
	for _, d := range details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.Priority),
			d.Queue,
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.ResponseTime),
		})
	}
	if averages != nil {
		table.SetFooter([]string{"Average", "", "", "", "",
			fmt.Sprintf("%.2f", averages.CompletionTime),
			fmt.Sprintf("%.2f", averages.TurnAroundTime),
			fmt.Sprintf("%.2f", averages.WaitingTime),
			fmt.Sprintf("%.2f", averages.ResponseTime)})
	}
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputSummary(w io.Writer, response ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Summary")
	_, _ = fmt.Fprintf(w, "  Total processes: %d\n", len(response.Details))
	for _, q := range response.Queues {
		_, _ = fmt.Fprintf(w, "  %s (%s - %s): %d processes\n", q.Label, q.Queue, q.Policy, q.Count)
	}
	_, _ = fmt.Fprintf(w, "  CPU utilization: %.2f%%\n", response.CpuUtilization*100)
	_, _ = fmt.Fprintf(w, "  Throughput: %.2f/t\n", response.CpuThroughput)
	_, _ = fmt.Fprintf(w, "  Preemptions: %d\n\n", response.Preemptions)
}

func outputGantt(w io.Writer, gantt []GanttResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(gantt) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}

	chart := &strings.Builder{}
	times := &strings.Builder{}
	chart.WriteString("|")
	times.WriteString("0")
	for _, g := range gantt {
		width := (g.Stop-g.Start)*4 - 1
		label := ganttLabel(g)
		if len(label) > width {
			width = len(label)
		}
		padding := width - len(label)
		chart.WriteString(strings.Repeat(" ", padding/2) + label + strings.Repeat(" ", padding-padding/2) + "|")
		stop := fmt.Sprint(g.Stop)
		times.WriteString(strings.Repeat(" ", width+1-len(stop)) + stop)
	}
	_, _ = fmt.Fprintln(w, chart.String())
	_, _ = fmt.Fprintln(w, times.String())
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Execution log")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Start", "End", "Duration"})
	for _, g := range gantt {
		table.Append([]string{ganttLabel(g), fmt.Sprint(g.Start), fmt.Sprint(g.Stop), fmt.Sprint(g.Stop - g.Start)})
	}
	table.Render()
}

func ganttLabel(g GanttResponse) string {
	if g.Idle {
		return "idle"
	}
	return g.ProcessId
}
