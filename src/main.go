package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/integrii/flaggy"

	"cellular-automat/src/config"
	"cellular-automat/src/format"
	"cellular-automat/src/runner"
	"cellular-automat/src/universe"
	"cellular-automat/src/view"
)

var (
	testSample = [][]int{
		{1, 1}, {1, 2},
		{2, 1}, {2, 2},
		{3, 3},
		{4, 2},
		{4, 3},
		{5, 3},
	}
)

func main() {
	c := initOptions()

	cfg, err := newConfiguration(c)
	if err != nil {
		log.Fatalf("cellular-automat: %v", err)
	}

	var stateCh chan runner.Status
	if !c.Interactive {
		stateCh = make(chan runner.Status, 10) //the buffered channel to getting the runner status
	}

	o := c.RunnerOptions()
	r := runner.New(cfg, &o, stateCh)
	if c.Seed != 0 {
		r.Seed(c.Seed)
	}

	r.AddTemplate(
		runner.Template{
			Name:        "testSample1",
			Descr:       "the test sample with 3 stable patterns",
			Coordinates: testSample,
		})

	if c.Random {
		r.SettleWithRandomData()
	} else if c.Pattern == "" {
		r.SettleTemplate("testSample1")
	}

	if c.Interactive {
		v := view.NewViewTerminal(c.Output)
		r.RegisterViewer(v)
		v.Start()
		r.Close()
		return
	}

	v := view.NewConsoleOut(true)
	r.RegisterViewer(v)
	v.Start()
	r.Run()
	for {
		st := <-stateCh
		if st.RunningMode == runner.RunningStateFinished {
			break
		}
	}
	if c.Output != "" {
		var err error
		r.WithConfiguration(func(cfg *universe.Configuration) {
			err = format.WriteFile(c.Output, cfg)
		})
		if err != nil {
			log.Fatalf("cellular-automat: %v", err)
		}
		fmt.Printf("Saved to %s\n", c.Output)
	}
	r.Close()
}

//newConfiguration loads the pattern file or creates an empty universe
func newConfiguration(c config.Config) (*universe.Configuration, error) {
	if c.Pattern != "" {
		return format.ReadFile(c.Pattern)
	}
	rule, err := universe.ParseBS(c.Rule)
	if err != nil {
		return nil, err
	}
	return universe.NewConfiguration(universe.New(c.Width, c.Height, c.Endless), rule), nil
}

//initOptions reads the optional config file first, the flags override its values
func initOptions() config.Config {
	c := config.Default()

	var configPath string
	pre := flaggy.NewParser("cellular-automat")
	pre.ShowHelpOnUnexpected = false
	pre.ShowHelpWithHFlag = false
	pre.ShowVersionWithVersionFlag = false
	pre.String(&configPath, "c", "config", "YAML file with the settings, flags override the file")
	if err := pre.ParseArgs(os.Args[1:]); err != nil {
		log.Fatalf("cellular-automat: %v", err)
	}
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			log.Fatalf("cellular-automat: %v", err)
		}
	}

	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.String(&configPath, "c", "config", "YAML file with the settings, flags override the file")
	flaggy.Int(&c.Width, "x", "width", "Width of a simulation field")
	flaggy.Int(&c.Height, "y", "height", "Height of a simulation field")
	flaggy.Bool(&c.Endless, "l", "endless", "Wrap the edges of the field")
	flaggy.String(&c.Rule, "u", "rule", "Rule in B/S notation, for example B3/S23")
	flaggy.String(&c.Pattern, "p", "pattern", "Load the universe and the rule from a .rle or .json file")
	flaggy.String(&c.Output, "o", "output", "Save the universe to a .rle or .json file on finish (or on 'e' in interactive mode)")
	flaggy.Duration(&c.Interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	flaggy.Int(&c.MaxSteps, "s", "maxSteps", "Limit the simulation to maxSteps")
	flaggy.Bool(&c.Interactive, "n", "interactive", "Start interactive mode")
	flaggy.Bool(&c.Random, "r", "random", "Settle with random data")
	flaggy.Int64(&c.Seed, "d", "seed", "Seed of the random data")
	flaggy.String(&c.Engine, "e", "engine", "Engine to use ["+strings.Join(runner.EngineNames(), "|")+"]")

	flaggy.Parse()

	if err := c.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if !knownEngine(c.Engine) {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	return c
}

func knownEngine(name string) bool {
	for _, e := range runner.EngineNames() {
		if e == name {
			return true
		}
	}
	return false
}
