package universe

//Cell is a single position of the universe
//value is the current state (0 = dead, >0 = alive), pending is the value staged by the rule evaluation
//the neighbours are indices into the owning universe's cell slice
type Cell struct {
	X          int
	Y          int
	value      int
	pending    int
	changed    bool
	neighbours []int
}

//CellRecord is the serialized form of a cell
type CellRecord struct {
	X int `json:"x"`
	Y int `json:"y"`
	V int `json:"v"`
}

//Value returns the committed value of the cell
func (c *Cell) Value() int {
	return c.value
}

//Changed reports whether the last commit altered the value or was touched
func (c *Cell) Changed() bool {
	return c.changed
}

//Alive reports whether the cell value is greater than zero
func (c *Cell) Alive() bool {
	return c.value > 0
}

//Neighbours returns the indices of the neighbour cells
func (c *Cell) Neighbours() []int {
	return c.neighbours
}

//Stage records the value which will be applied by Commit
func (c *Cell) Stage(v int) *Cell {
	c.pending = v
	return c
}

//Commit applies the staged value
//an unchanged cell is marked as changed only when touch is set
func (c *Cell) Commit(touch bool) {
	if c.pending != c.value {
		c.value = c.pending
		c.changed = true
		return
	}
	c.changed = touch
}

//Reset kills the cell
func (c *Cell) Reset() {
	c.value = 0
	c.pending = 0
	c.changed = true
}

//Serialize returns the cell as a record
func (c *Cell) Serialize() CellRecord {
	return CellRecord{X: c.X, Y: c.Y, V: c.value}
}
