package runner

import (
	"sort"
	"sync"

	"cellular-automat/src/universe"
)

/*
	Engines calculate one generation of a configuration.
	The sequential engine is Configuration.Step.
	The parallel engine splits the universe into bands of rows, each band is staged by an individual goroutine,
	the cells are committed only after all bands are staged.
*/

const (
	EngineSequential = "sequential"
	EngineParallel   = "parallel"

	DefWorkers          = 10 //default workers
	DefMinRowsPerWorker = 3  //minimum rows for one worker
)

//Engine calculates the next generation of the configuration
type Engine interface {
	Name() string
	Step(cfg *universe.Configuration) universe.StepResult
}

var engines = map[string]func(u *universe.Universe) Engine{
	EngineSequential: func(*universe.Universe) Engine { return sequentialEngine{} },
	EngineParallel: func(u *universe.Universe) Engine {
		return newParallelEngine(u, DefWorkers)
	},
}

//EngineNames returns the sorted names of the known engines
func EngineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

//NewEngine creates the engine by name, unknown names fall back to the sequential engine
func NewEngine(name string, u *universe.Universe) Engine {
	f, ok := engines[name]
	if !ok {
		f = engines[EngineSequential]
	}
	return f(u)
}

type sequentialEngine struct{}

func (sequentialEngine) Name() string {
	return EngineSequential
}

func (sequentialEngine) Step(cfg *universe.Configuration) universe.StepResult {
	return cfg.Step()
}

type parallelEngine struct {
	workAreas []workArea
}

//workArea describe the rows for the worker
type workArea struct {
	y1        int
	y2        int
	buf       []int
	liveCells int
	changed   bool
}

func newParallelEngine(u *universe.Universe, workers int) *parallelEngine {
	pe := parallelEngine{}
	height := u.Height()
	linesPerWorker := height / workers
	if linesPerWorker < DefMinRowsPerWorker {
		linesPerWorker = DefMinRowsPerWorker
	} else if linesPerWorker*workers < height {
		linesPerWorker++
	}
	pe.workAreas = make([]workArea, 0, workers)
	for y1 := 0; y1 < height; y1 += linesPerWorker {
		y2 := y1 + linesPerWorker - 1
		if y2 > height-1 {
			y2 = height - 1
		}
		pe.workAreas = append(pe.workAreas, workArea{y1: y1, y2: y2, buf: make([]int, 0, 8)})
	}
	return &pe
}

func (pe *parallelEngine) Name() string {
	return EngineParallel
}

//Workers returns the number of bands
func (pe *parallelEngine) Workers() int {
	return len(pe.workAreas)
}

//Step stages all bands concurrently, waits, then commits all bands concurrently
func (pe *parallelEngine) Step(cfg *universe.Configuration) (res universe.StepResult) {
	pe.each(func(wa *workArea) { pe.stageArea(cfg, wa) })
	pe.each(func(wa *workArea) { pe.commitArea(cfg.Universe, wa) })
	for _, wa := range pe.workAreas {
		res.LiveCells += wa.liveCells
		res.Changed = res.Changed || wa.changed
	}
	return
}

func (pe *parallelEngine) each(fn func(wa *workArea)) {
	var waitGroup sync.WaitGroup
	for i := range pe.workAreas {
		workArea := &pe.workAreas[i]
		waitGroup.Add(1)
		go func() {
			fn(workArea)
			waitGroup.Done()
		}()
	}
	waitGroup.Wait()
}

//stageArea evaluates the rule for the cells inside workArea, the values are not visible until commit
func (pe *parallelEngine) stageArea(cfg *universe.Configuration, wa *workArea) {
	u := cfg.Universe
	cells := u.Cells()
	for i := wa.y1 * u.Width(); i < (wa.y2+1)*u.Width(); i++ {
		c := &cells[i]
		wa.buf = u.NeighbourValues(c, wa.buf)
		c.Stage(cfg.Rule.NewValue(c.Value(), wa.buf))
	}
}

func (pe *parallelEngine) commitArea(u *universe.Universe, wa *workArea) {
	wa.liveCells = 0
	wa.changed = false
	cells := u.Cells()
	for i := wa.y1 * u.Width(); i < (wa.y2+1)*u.Width(); i++ {
		c := &cells[i]
		c.Commit(false)
		wa.changed = wa.changed || c.Changed()
		if c.Alive() {
			wa.liveCells++
		}
	}
}
