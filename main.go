package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"mlq-scheduler/api"
	"mlq-scheduler/config"
	"mlq-scheduler/internal/core"
	"mlq-scheduler/internal/requests"
	"mlq-scheduler/internal/responses"
	"mlq-scheduler/internal/schedulers"
)

func main() {
	cfg := config.GetSchedulerConfig()

	// mlq-scheduler <processes.csv> runs once and prints the schedule.
	if len(os.Args) > 1 {
		if err := runOnce(os.Stdout, cfg, os.Args[1]); err != nil {
			log.Fatalln(err)
		}
		return
	}

	handler, err := api.NewSchedulerHandlerImpl(cfg)
	if err != nil {
		log.Fatalln(err)
	}
	app := fiber.New()
	api.Register(app, handler)

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func runOnce(w io.Writer, cfg *config.SchedulerConfig, path string) error {
	classifier, err := cfg.Classifier()
	if err != nil {
		return err
	}
	opts := schedulers.Options{Classifier: classifier, MaxTimeUnits: cfg.MaxTimeUnits}
	if cfg.Debug {
		opts.Trace = log.New(os.Stderr, "mlq ", 0)
	}

	response, err := schedulers.ScheduleMultilevelQueue(loadRequest(path), opts)
	if err != nil && !errors.Is(err, core.ErrSimulationTimeout) {
		return err
	}
	responses.Render(w, response)
	return err
}

// loadRequest falls back to the default dataset when the file cannot be read.
func loadRequest(path string) *requests.ScheduleRequests {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("%v: using default dataset", err)
		return requests.DefaultScheduleRequests()
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("%v: error closing scheduling file", err)
		}
	}()

	request, err := requests.LoadScheduleRequests(f)
	if err != nil {
		log.Printf("%v: using default dataset", err)
		return requests.DefaultScheduleRequests()
	}
	log.Println("loaded", len(request.Jobs), "jobs from", path)
	return request
}
