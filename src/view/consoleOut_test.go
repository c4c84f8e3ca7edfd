package view

import (
	"bytes"
	"strings"
	"testing"

	"cellular-automat/src/runner"
	"cellular-automat/src/universe"
)

func TestConsoleOut(t *testing.T) {
	o := runner.DefaultOptions
	o.Interval = 0
	o.MaxSteps = 4
	cfg := universe.NewConfiguration(universe.New(6, 6, true), universe.Conway())
	stateCh := make(chan runner.Status, 10)
	r := runner.New(cfg, &o, stateCh)
	defer r.Close()

	var b bytes.Buffer
	out := NewConsoleOutTo(&b, false, 2)
	r.RegisterViewer(out)
	out.Start()
	r.Settle([][]int{{2, 1}, {2, 2}, {2, 3}})
	r.Run()
	for {
		if st := <-stateCh; st.RunningMode == runner.RunningStateFinished {
			break
		}
	}
	//the finished status is sent before the views are refreshed, the clear command runs after the refresh
	r.Clear()
	for {
		if st := <-stateCh; st.RunningMode == runner.RunningStateManual {
			break
		}
	}

	s := b.String()
	for _, expected := range []string{
		"Running configuration:",
		"Dimension: 6 x 6",
		"Max iterations: 4 steps",
		"rule: B3/S23",
		"Simulation started...",
		"Iterations done: 2, live cells: 3",
		"Finished:",
		"Last iteration: 4",
		"Live cells: 3",
	} {
		if !strings.Contains(s, expected) {
			t.Fatalf("output misses %q:\n%s", expected, s)
		}
	}
}
