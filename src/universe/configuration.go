package universe

import "math/rand"

//Configuration pairs a universe with the rule driving it
type Configuration struct {
	Universe *Universe
	Rule     Rule
	buf      []int
}

//StepResult describes the generation produced by Step
type StepResult struct {
	LiveCells int
	Changed   bool
}

//NewConfiguration creates the configuration, the universe is shared, not copied
func NewConfiguration(u *Universe, r Rule) *Configuration {
	return &Configuration{Universe: u, Rule: r}
}

//Step calculates the next generation
//all cells are staged first and committed afterwards, so every cell sees the previous generation
func (c *Configuration) Step() (res StepResult) {
	cells := c.Universe.cells
	for i := range cells {
		c.buf = c.Universe.NeighbourValues(&cells[i], c.buf)
		cells[i].Stage(c.Rule.NewValue(cells[i].value, c.buf))
	}
	for i := range cells {
		cells[i].Commit(false)
		if cells[i].changed {
			res.Changed = true
		}
		if cells[i].value > 0 {
			res.LiveCells++
		}
	}
	return
}

//Randomize kills all cells and settles every cell with 0 or 1
//all cells are touched to force a full redraw
func (c *Configuration) Randomize(rnd *rand.Rand) {
	c.Universe.Reset()
	cells := c.Universe.cells
	for i := range cells {
		cells[i].Stage(rnd.Intn(2)).Commit(true)
	}
}

//Settle sets the value of the listed cells, coordinates outside the universe are skipped
func (c *Configuration) Settle(coordinates [][]int, value int) {
	u := c.Universe
	for _, v := range coordinates {
		if len(v) < 2 || v[0] < 0 || v[1] < 0 || v[0] >= u.width || v[1] >= u.height {
			continue
		}
		u.CellAt(v[0], v[1]).Stage(value).Commit(true)
	}
}
