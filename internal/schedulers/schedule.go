package schedulers

import (
	"errors"
	"log"

	"github.com/google/uuid"

	"mlq-scheduler/internal/core"
	"mlq-scheduler/internal/requests"
	"mlq-scheduler/internal/responses"
)

// ScheduleMultilevelQueue validates the request, runs the simulation and builds
// the response. On ErrSimulationTimeout the response still carries the partial
// timeline and CPU figures.
func ScheduleMultilevelQueue(request *requests.ScheduleRequests, opts Options) (responses.ScheduleResponse, error) {
	runId := uuid.NewString()
	log.Println("run:", runId, "mlq algorithm with", len(request.Jobs), "jobs, system threshold =", opts.Classifier.SystemPriorityThreshold)

	processes, err := request.Processes(opts.Classifier)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	result, err := Simulate(processes, opts)
	if errors.Is(err, core.ErrSimulationTimeout) {
		log.Println("run:", runId, err)
		return generateResponse(runId, result, nil), err
	}
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	metrics, err := CalculateMetrics(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(runId, result, metrics)
	log.Println("run:", runId, "finished at", response.TotalTime, "with", response.Preemptions, "preemptions")
	return response, nil
}
