// Package config loads the settings of a simulation run.
//
// Values come from the defaults, then from an optional YAML file, then from
// the command line flags bound in main.
package config

import (
	"fmt"
	"io/ioutil"
	"time"

	"gopkg.in/yaml.v3"

	"cellular-automat/src/runner"
	"cellular-automat/src/universe"
)

//Config holds the settings of a simulation run
type Config struct {
	Width       int           `yaml:"width"`
	Height      int           `yaml:"height"`
	Endless     bool          `yaml:"endless"`
	Rule        string        `yaml:"rule"`     // B/S notation, e.g. B3/S23
	Pattern     string        `yaml:"pattern"`  // .rle or .json file to load
	Output      string        `yaml:"output"`   // .rle or .json file written on finish
	Interval    time.Duration `yaml:"interval"` // e.g. 150ms
	MaxSteps    int           `yaml:"max_steps"`
	Engine      string        `yaml:"engine"`
	Interactive bool          `yaml:"interactive"`
	Random      bool          `yaml:"random"`
	Seed        int64         `yaml:"seed"` // 0 means seeded from the clock
}

//default options
const (
	DefWidth  = 40
	DefHeight = 15
)

//Default returns the configuration used without a file
func Default() Config {
	return Config{
		Width:    DefWidth,
		Height:   DefHeight,
		Endless:  true,
		Rule:     universe.Conway().String(),
		Interval: runner.DefSimulationInterval,
		MaxSteps: runner.DefMaxSteps,
		Engine:   runner.EngineSequential,
	}
}

//Load reads the YAML file at path on top of the defaults
func Load(path string) (Config, error) {
	c := Default()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, c.Validate()
}

//Validate checks the values which can not be fixed by the simulation itself
func (c Config) Validate() error {
	if c.Pattern == "" && (c.Width < 1 || c.Height < 1) {
		return fmt.Errorf("config: invalid dimension %v x %v", c.Width, c.Height)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("config: negative max steps %v", c.MaxSteps)
	}
	if c.Interval < 0 {
		return fmt.Errorf("config: negative interval %v", c.Interval)
	}
	if _, err := universe.ParseBS(c.Rule); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

//RunnerOptions converts the settings to the runner options
func (c Config) RunnerOptions() runner.Options {
	o := runner.DefaultOptions
	o.Interval = c.Interval
	o.MaxSteps = c.MaxSteps
	o.Engine = c.Engine
	return o
}
