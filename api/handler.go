package api

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"mlq-scheduler/config"
	"mlq-scheduler/internal/core"
	"mlq-scheduler/internal/requests"
	"mlq-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	MultilevelQueue(ctx *fiber.Ctx) error
	Sample(ctx *fiber.Ctx) error
	Queues(ctx *fiber.Ctx) error
	Classify(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config  *config.SchedulerConfig
	options schedulers.Options
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) (*SchedulerHandlerImpl, error) {
	classifier, err := config.Classifier()
	if err != nil {
		return nil, err
	}
	options := schedulers.Options{
		Classifier:   classifier,
		MaxTimeUnits: config.MaxTimeUnits,
	}
	if config.Debug {
		options.Trace = log.New(os.Stderr, "mlq ", log.LstdFlags)
	}
	return &SchedulerHandlerImpl{config: config, options: options}, nil
}

func Register(app *fiber.App, handler SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	{
		v1.Post("/mlq", handler.MultilevelQueue)
		v1.Get("/mlq/sample", handler.Sample)
		v1.Get("/queues", handler.Queues)
		v1.Post("/classify", handler.Classify)
	}
}

func (s *SchedulerHandlerImpl) MultilevelQueue(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	return s.schedule(ctx, request)
}

func (s *SchedulerHandlerImpl) Sample(ctx *fiber.Ctx) error {
	return s.schedule(ctx, requests.DefaultScheduleRequests())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, request *requests.ScheduleRequests) error {
	response, err := schedulers.ScheduleMultilevelQueue(request, s.options)
	switch {
	case err == nil:
		return ctx.JSON(response)
	case errors.Is(err, core.ErrInvalidProcess), errors.Is(err, core.ErrInvalidPriority):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, core.ErrSimulationTimeout):
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":   err.Error(),
			"partial": response,
		})
	}
	log.Println("can not process request:", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}

type queueInfo struct {
	Queue       string `json:"queue"`
	Label       string `json:"label"`
	Policy      string `json:"policy"`
	MinPriority int    `json:"min_priority"`
	MaxPriority int    `json:"max_priority"`
}

func (s *SchedulerHandlerImpl) Queues(ctx *fiber.Ctx) error {
	c := s.options.Classifier
	return ctx.JSON(fiber.Map{
		"system_priority_threshold": c.SystemPriorityThreshold,
		"max_time_units":            s.config.MaxTimeUnits,
		"queues": []queueInfo{
			{Queue: core.SystemQueue.String(), Label: core.SystemQueue.Label(), Policy: "preemptive priority",
				MinPriority: c.MinPriority, MaxPriority: c.SystemPriorityThreshold},
			{Queue: core.UserQueue.String(), Label: core.UserQueue.Label(), Policy: "first come first serve",
				MinPriority: c.SystemPriorityThreshold + 1, MaxPriority: c.MaxPriority},
		},
	})
}

type classification struct {
	ProcessId string `json:"process_id"`
	Priority  int    `json:"priority"`
	Queue     string `json:"queue"`
}

// Classify reports the queue each posted job would be assigned to, without running it.
func (s *SchedulerHandlerImpl) Classify(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	processes, err := request.Processes(s.options.Classifier)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	assignments := make([]classification, 0, len(processes))
	for _, p := range processes {
		assignments = append(assignments, classification{ProcessId: p.ProcessId, Priority: p.Priority, Queue: p.Queue.String()})
	}
	return ctx.JSON(fiber.Map{"assignments": assignments})
}
