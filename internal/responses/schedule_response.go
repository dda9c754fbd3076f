package responses

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	Queue          string `json:"queue"`
	FirstRunTime   int    `json:"first_run_time"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
	Preemptions    int    `json:"preemptions"`
}

type AverageResponse struct {
	CompletionTime float64 `json:"completion_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
	ResponseTime   float64 `json:"response_time"`
}

type QueueResponse struct {
	Queue    string           `json:"queue"`
	Label    string           `json:"label"`
	Policy   string           `json:"policy"`
	Count    int              `json:"count"`
	Averages *AverageResponse `json:"averages"`
}

type TimelineResponse struct {
	Time      int    `json:"time"`
	ProcessId string `json:"process_id,omitempty"`
	Queue     string `json:"queue,omitempty"`
	Idle      bool   `json:"idle"`
}

type GanttResponse struct {
	ProcessId string `json:"process_id,omitempty"`
	Queue     string `json:"queue,omitempty"`
	Idle      bool   `json:"idle"`
	Start     int    `json:"start"`
	Stop      int    `json:"stop"`
}

type ScheduleResponse struct {
	RunId          string             `json:"run_id"`
	TotalTime      int                `json:"total_time"`
	IdleTime       int                `json:"idle_time"`
	CpuUtilization float64            `json:"cpu_utilization"`
	CpuThroughput  float64            `json:"cpu_throughput"`
	Preemptions    int                `json:"preemptions"`
	Averages       *AverageResponse   `json:"averages"`
	Queues         []QueueResponse    `json:"queues"`
	Details        []ProcessResponse  `json:"details"`
	Timeline       []TimelineResponse `json:"timeline"`
	Gantt          []GanttResponse    `json:"gantt"`
}
