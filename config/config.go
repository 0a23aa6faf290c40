package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"os-scheduler/internal/core"
	"os-scheduler/internal/schedulers"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	ContextSwitchCost     float64
	ThroughputThresholds  []int
	PriorityLabels        map[string]int
	OutputDir             string
	LogLevel              string
	LogDevelopment        bool
}

var once sync.Once
var config *SchedulerConfig
var configErr error

// GetSchedulerConfig loads config.yaml from the working directory once and
// caches the result. A missing file leaves every setting at its default.
func GetSchedulerConfig() (*SchedulerConfig, error) {
	once.Do(func() {
		config, configErr = Load("")
	})
	return config, configErr
}

// Load reads the configuration from path, or searches for config.yaml in the
// working directory when path is empty. Environment variables prefixed with
// SCHEDULER_ override file values, e.g. SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &SchedulerConfig{}
	cfg.Port = v.GetInt("port")
	cfg.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	cfg.ContextSwitchCost = v.GetFloat64("scheduler.context_switch_cost")
	cfg.ThroughputThresholds = v.GetIntSlice("scheduler.throughput_thresholds")
	cfg.PriorityLabels = make(map[string]int)
	for label := range v.GetStringMap("scheduler.priority_labels") {
		cfg.PriorityLabels[strings.ToLower(label)] = v.GetInt("scheduler.priority_labels." + label)
	}
	cfg.OutputDir = v.GetString("report.output_dir")
	cfg.LogLevel = v.GetString("log.level")
	cfg.LogDevelopment = v.GetBool("log.development")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", schedulers.DefaultTimeQuantum)
	v.SetDefault("scheduler.context_switch_cost", schedulers.DefaultContextSwitchCost)
	v.SetDefault("scheduler.throughput_thresholds", schedulers.DefaultThroughputThresholds)
	labels := make(map[string]any, len(core.DefaultPriorityLabels))
	for label, rank := range core.DefaultPriorityLabels {
		labels[label] = rank
	}
	v.SetDefault("scheduler.priority_labels", labels)
	v.SetDefault("report.output_dir", ".")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}

func (c *SchedulerConfig) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.RoundRobinTimeQuantum < 1:
		return fmt.Errorf("round robin time quantum must be at least 1, got %d", c.RoundRobinTimeQuantum)
	case c.ContextSwitchCost < 0:
		return fmt.Errorf("context switch cost must not be negative, got %v", c.ContextSwitchCost)
	case len(c.ThroughputThresholds) == 0:
		return errors.New("at least one throughput threshold is required")
	}
	return nil
}

// Options returns the simulation parameters carried by the configuration.
func (c *SchedulerConfig) Options() schedulers.Options {
	return schedulers.Options{
		TimeQuantum:       c.RoundRobinTimeQuantum,
		ContextSwitchCost: c.ContextSwitchCost,
		Thresholds:        c.ThroughputThresholds,
	}
}
