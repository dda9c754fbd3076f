package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"mlq-scheduler/internal/core"
)

type SchedulerConfig struct {
	Port                    int
	Debug                   bool
	MinPriority             int
	MaxPriority             int
	SystemPriorityThreshold int
	MaxTimeUnits            int
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig loads config.yaml from the working directory once per process.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		var err error
		config, err = Load("./")
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

// Load reads config.yaml from the first of paths that has one, then applies
// MLQ_ environment overrides. A missing file is not an error.
func Load(paths ...string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix("mlq")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", 9095)
	v.SetDefault("debug", false)
	v.SetDefault("scheduler.min_priority", core.DefaultMinPriority)
	v.SetDefault("scheduler.max_priority", core.DefaultMaxPriority)
	v.SetDefault("scheduler.system_priority_threshold", core.DefaultSystemPriorityThreshold)
	v.SetDefault("scheduler.max_time_units", 0)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		log.Println("no config file found, using defaults")
	}

	c := &SchedulerConfig{
		Port:                    v.GetInt("port"),
		Debug:                   v.GetBool("debug"),
		MinPriority:             v.GetInt("scheduler.min_priority"),
		MaxPriority:             v.GetInt("scheduler.max_priority"),
		SystemPriorityThreshold: v.GetInt("scheduler.system_priority_threshold"),
		MaxTimeUnits:            v.GetInt("scheduler.max_time_units"),
	}
	if _, err := c.Classifier(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *SchedulerConfig) Classifier() (core.Classifier, error) {
	return core.NewClassifier(c.MinPriority, c.MaxPriority, c.SystemPriorityThreshold)
}
