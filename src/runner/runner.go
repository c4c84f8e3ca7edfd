package runner

import (
	"math/rand"
	"sync"
	"time"

	"cellular-automat/src/universe"
)

//Options represents the Runner's configurable options
type Options struct {
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	Engine          string
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Runner at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Details       map[string]interface{} //advanced details (engine specific)
}

//Area is a snapshot of the universe, Values and Changed are indexed [y][x]
type Area struct {
	Width   int
	Height  int
	Values  [][]int
	Changed [][]bool
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the runner
type Viewer interface {
	Refresh()
	Register(r *Runner)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//The runner status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefMaxSkippedTicks    = 5
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

var DefaultOptions = Options{
	Interval:        DefSimulationInterval,
	MaxSteps:        DefMaxSteps,
	MaxSkippedTicks: DefMaxSkippedTicks,
	Engine:          EngineSequential,
}

//Runner drives a configuration: it advances the generations on a fixed interval
//all commands are executed by the main loop goroutine, the public methods return immediately
type Runner struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	cfg struct {
		*universe.Configuration
		sync.Mutex
	}
	engine    Engine
	rnd       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	templates map[string]Template
	controlCh chan func()
	closeCh   chan bool
}

//New creates the Runner for the configuration and starts its main loop
//stateCh may be nil, otherwise every running state switch is written to it
func New(cfg *universe.Configuration, o *Options, stateCh chan Status) *Runner {
	if o == nil {
		d := DefaultOptions
		o = &d
	}
	r := Runner{
		options:   *o,
		controlCh: make(chan func(), 1),
		closeCh:   make(chan bool, 1),
		stateCh:   stateCh,
		templates: map[string]Template{},
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	r.engine = NewEngine(o.Engine, cfg.Universe)
	r.options.Advanced = map[string]interface{}{
		"engine":  r.engine.Name(),
		"rule":    ruleName(cfg.Rule),
		"endless": cfg.Universe.Endless(),
	}
	for k, v := range o.Advanced {
		r.options.Advanced[k] = v
	}
	r.cfg.Configuration = cfg
	r.state.Details = make(map[string]interface{})
	r.state.LiveCells = cfg.Universe.LiveCells()

	r.refreshView()
	go r.mainLoop()
	return &r
}

//Seed makes SettleWithRandomData reproducible
func (r *Runner) Seed(seed int64) {
	r.controlCh <- func() {
		r.rnd = rand.New(rand.NewSource(seed))
	}
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (r *Runner) AddTemplate(tmpl Template) {
	r.templates[tmpl.Name] = tmpl
}

//Settle settles the universe with data
//vc - array of x,y coordinates
func (r *Runner) Settle(vc [][]int) {
	r.cfg.Lock()
	r.cfg.Settle(vc, 1)
	r.cfg.Unlock()
	r.updateLiveCells()
	r.refreshView()
}

//SettleTemplate populates the universe with the seeding template
func (r *Runner) SettleTemplate(name string) {
	tmpl, ok := r.templates[name]
	if !ok {
		return
	}
	r.Settle(tmpl.Coordinates)
}

//SettleWithRandomData populates the universe with random data
func (r *Runner) SettleWithRandomData() {
	mode := r.Status().RunningMode
	if mode == RunningStateManual || mode == RunningStateFinished {
		r.controlCh <- r.clear
		r.controlCh <- func() {
			r.cfg.Lock()
			r.cfg.Randomize(r.rnd)
			r.cfg.Unlock()
			r.updateLiveCells()
			r.refreshView()
		}
	}
}

//InverseCell inverses the cell state at point x, y
func (r *Runner) InverseCell(x int, y int) {
	u := r.cfg.Universe
	if x < 0 || y < 0 || x >= u.Width() || y >= u.Height() {
		return
	}
	r.cfg.Lock()
	c := u.CellAt(x, y)
	v := 1
	if c.Alive() {
		v = 0
	}
	c.Stage(v).Commit(true)
	r.cfg.Unlock()
	r.updateLiveCells()
	r.refreshView()
}

//RegisterViewer registers the viewer - the runner will call the viewer when the state is changed
func (r *Runner) RegisterViewer(v Viewer) {
	r.views = append(r.views, v)
	v.Register(r)
}

//StateCh returns the channel with the runner's status updates
func (r *Runner) StateCh() chan Status {
	return r.stateCh
}

//Status returns current runner status represented by Status struct
func (r *Runner) Status() Status {
	r.state.Lock()
	defer r.state.Unlock()
	return r.state.Status
}

//Options returns the runner configuration represented by Options struct
func (r *Runner) Options() Options {
	return r.options
}

//Dimension returns the width and the height of the universe
func (r *Runner) Dimension() (int, int) {
	return r.cfg.Universe.Width(), r.cfg.Universe.Height()
}

//Area returns a snapshot of the universe (field where cells is living)
func (r *Runner) Area() Area {
	r.cfg.Lock()
	defer r.cfg.Unlock()
	u := r.cfg.Universe
	a := createArea(u.Width(), u.Height())
	for _, c := range u.Cells() {
		a.Values[c.Y][c.X] = c.Value()
		a.Changed[c.Y][c.X] = c.Changed()
	}
	return a
}

//WithConfiguration calls fn with the configuration while no step is running
func (r *Runner) WithConfiguration(fn func(cfg *universe.Configuration)) {
	r.cfg.Lock()
	defer r.cfg.Unlock()
	fn(r.cfg.Configuration)
}

//Run starts the simulation, returns immediately
func (r *Runner) Run() {
	r.controlCh <- r.run
}

//Stop stops the simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (r *Runner) Stop() {
	r.controlCh <- r.stop
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (r *Runner) Step() {
	r.controlCh <- r.step
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (r *Runner) Clear() {
	r.controlCh <- r.clear
}

//Close stops the main loop, returns immediately
func (r *Runner) Close() {
	r.closeCh <- true
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (r *Runner) mainLoop() {
	var c = false
	for !c {
		select {
		case cmd := <-r.controlCh:
			cmd()
		case c = <-r.closeCh:
		}
	}
}

func (r *Runner) updateLiveCells() {
	r.cfg.Lock()
	live := r.cfg.Universe.LiveCells()
	r.cfg.Unlock()
	r.state.Lock()
	r.state.LiveCells = live
	r.state.Unlock()
}

//switchRunningState switch the state of the runner to RunningState
//also writes the new state to the stateCh to signal upper control software
func (r *Runner) switchRunningState(to RunningState) {
	r.state.Lock()
	r.state.RunningMode = to
	st := r.state.Status
	r.state.Unlock()
	if r.stateCh != nil {
		r.stateCh <- st
	}
}

//run starts the simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (r *Runner) run() {
	go func() {
		r.switchRunningState(RunningStateRun)
		skipped := 0
		done := make(chan bool)
		for {
			mode := r.Status().RunningMode
			if mode != RunningStateRun && mode != RunningStateStep {
				break
			}
			if skipped > r.options.MaxSkippedTicks {
				r.switchRunningState(RunningStateFinished)
				break
			}
			//skip the tick if the runner is still in the calculation mode
			if mode != RunningStateStep {
				skipped = 0
				r.controlCh <- func() {
					r.step()
					done <- true
				}
				<-done
			} else {
				skipped++
			}
			if r.options.Interval > 0 {
				time.Sleep(r.options.Interval)
			}
		}
	}()
}

//stop stops the running cycle
func (r *Runner) stop() {
	if r.Status().RunningMode == RunningStateRun {
		r.switchRunningState(RunningStateManual)
	}
}

//step calculates one generation for the entire universe
//the runner finishes when MaxSteps is reached, all cells are dead or nothing changed
func (r *Runner) step() {
	finished := false
	rm := r.Status().RunningMode
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	defer func() {
		if finished {
			r.switchRunningState(RunningStateFinished)
		} else {
			r.switchRunningState(rm)
		}
		r.refreshView()
	}()

	r.switchRunningState(RunningStateStep)
	start := time.Now()
	r.cfg.Lock()
	res := r.engine.Step(r.cfg.Configuration)
	r.cfg.Unlock()

	r.state.Lock()
	r.state.IterationNum++
	r.state.LiveCells = res.LiveCells
	r.state.IterationTime = time.Since(start)
	iter := r.state.IterationNum
	r.state.Unlock()

	if res.LiveCells == 0 || !res.Changed {
		finished = true
	}
	if r.options.MaxSteps != 0 && iter >= r.options.MaxSteps {
		finished = true
	}
}

//clear kills all cells and resets all counters
func (r *Runner) clear() {
	r.cfg.Lock()
	r.cfg.Universe.Reset()
	r.cfg.Unlock()

	r.state.Lock()
	r.state.IterationNum = 0
	r.state.LiveCells = 0
	r.state.IterationTime = 0
	r.state.Unlock()
	r.switchRunningState(RunningStateManual)
	r.refreshView()
}

//refreshView calls Refresh event for all registered views
func (r *Runner) refreshView() {
	for _, v := range r.views {
		v.Refresh()
	}
}

func ruleName(rule universe.Rule) string {
	if s, ok := rule.(interface{ String() string }); ok {
		return s.String()
	}
	return "unknown"
}

//createArea allocates the area buffers
func createArea(width int, height int) Area {
	area := Area{Width: width, Height: height, Values: make([][]int, height), Changed: make([][]bool, height)}
	v := make([]int, width*height)
	c := make([]bool, width*height)
	for i := 0; i < height; i++ {
		start := width * i
		area.Values[i] = v[start : start+width : start+width]
		area.Changed[i] = c[start : start+width : start+width]
	}
	return area
}
