package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"cellular-automat/src/runner"
)

//ConsoleOut prints the progress of a non interactive run
type ConsoleOut struct {
	r         *runner.Runner
	w         io.Writer
	au        aurora.Aurora
	every     int
	startTime time.Time
}

//NewConsoleOut creates the printer writing to stdout, the progress is printed every 10 iterations
func NewConsoleOut(colors bool) *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, colors, 10)
}

//NewConsoleOutTo creates the printer writing to w, the progress is printed every `every` iterations
func NewConsoleOutTo(w io.Writer, colors bool, every int) *ConsoleOut {
	if every < 1 {
		every = 1
	}
	return &ConsoleOut{w: w, au: aurora.NewAurora(colors), every: every}
}

func (c *ConsoleOut) Refresh() {
	st := c.r.Status()
	if st.RunningMode == runner.RunningStateFinished {
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
		}
		fmt.Fprintln(c.w, c.au.Red("\nFinished:"))
		c.printHashData(resultData)
	} else if st.RunningMode == runner.RunningStateStep || st.RunningMode == runner.RunningStateRun {
		if st.IterationNum > 0 && st.IterationNum%c.every == 0 {
			fmt.Fprintf(c.w, "  %s: %v, %s: %v\n",
				c.au.Cyan("Iterations done"), st.IterationNum, c.au.Cyan("live cells"), st.LiveCells)
		}
	}
}

func (c *ConsoleOut) Register(r *runner.Runner) {
	c.r = r
	o := c.r.Options()
	w, h := c.r.Dimension()
	fmt.Fprintln(c.w, c.au.Green("Running configuration:"))
	fmt.Fprintf(c.w, "  Dimension: %v x %v\n", w, h)
	fmt.Fprintf(c.w, "  Interval: %v\n", o.Interval)
	fmt.Fprintf(c.w, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	fmt.Fprintln(c.w, c.au.Green("\nSimulation started..."))
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		fmt.Fprintf(c.w, "  %s: %v\n", propName, d[propName])
	}
}
