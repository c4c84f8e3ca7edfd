package universe

//Universe owns all the cells of a two dimensional grid
//the cells are stored row by row, the neighbour lists are computed once on construction
type Universe struct {
	width   int
	height  int
	endless bool
	cells   []Cell
}

//neighbourOffsets is the fixed enumeration order of the neighbours
var neighbourOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

//New creates the universe with all cells dead
//endless = true means the edges wrap around (toroidal universe)
func New(width int, height int, endless bool) *Universe {
	u := &Universe{
		width:   width,
		height:  height,
		endless: endless,
	}
	if width > 0 && height > 0 {
		u.cells = make([]Cell, 0, width*height)
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u.cells = append(u.cells, Cell{X: x, Y: y})
		}
	}
	for i := range u.cells {
		u.cells[i].neighbours = u.neighbourIndices(u.cells[i].X, u.cells[i].Y)
	}
	return u
}

//Cycle maps v into the range [0, max)
//max must be positive, Cycle panics for max == 0
func Cycle(v int, max int) int {
	if v < 0 {
		r := max + (v % max)
		if r == max {
			return 0
		}
		return r
	}
	if v < max {
		return v
	}
	return v % max
}

//Width returns the number of columns
func (u *Universe) Width() int {
	return u.width
}

//Height returns the number of rows
func (u *Universe) Height() int {
	return u.height
}

//Endless reports whether the edges wrap around
func (u *Universe) Endless() bool {
	return u.endless
}

//Cells returns the cells in row-major order
//the slice must not be resized by the caller
func (u *Universe) Cells() []Cell {
	return u.cells
}

//Index returns the position of the cell x, y inside Cells, coordinates are wrapped
func (u *Universe) Index(x int, y int) int {
	return Cycle(x, u.width) + Cycle(y, u.height)*u.width
}

//CellAt returns the cell at x, y, coordinates outside the universe are wrapped
func (u *Universe) CellAt(x int, y int) *Cell {
	return &u.cells[u.Index(x, y)]
}

//NeighboursOf returns the neighbour cells in the fixed enumeration order
func (u *Universe) NeighboursOf(c *Cell) []*Cell {
	n := make([]*Cell, len(c.neighbours))
	for i, idx := range c.neighbours {
		n[i] = &u.cells[idx]
	}
	return n
}

//NeighbourValues fills buf with the values of the neighbours of c and returns it
func (u *Universe) NeighbourValues(c *Cell, buf []int) []int {
	buf = buf[:0]
	for _, idx := range c.neighbours {
		buf = append(buf, u.cells[idx].value)
	}
	return buf
}

//Reset kills all cells and marks them changed
func (u *Universe) Reset() {
	for i := range u.cells {
		u.cells[i].Reset()
	}
}

//SumOfValues returns the total of all cell values
func (u *Universe) SumOfValues() int {
	sum := 0
	for i := range u.cells {
		sum += u.cells[i].value
	}
	return sum
}

//LiveCells returns the count of cells with value > 0
func (u *Universe) LiveCells() int {
	live := 0
	for i := range u.cells {
		if u.cells[i].value > 0 {
			live++
		}
	}
	return live
}

//isInside checks the relative offset (not the absolute position) against the bounds
//for bounded universes this keeps only the (+1,+1) neighbour, the behaviour is kept on purpose
func (u *Universe) isInside(dx int, dy int) bool {
	return u.endless || dx > 0 && dx < u.width && dy > 0 && dy < u.height
}

func (u *Universe) neighbourIndices(x int, y int) []int {
	n := make([]int, 0, len(neighbourOffsets))
	for _, o := range neighbourOffsets {
		if u.isInside(o[0], o[1]) {
			n = append(n, u.Index(x+o[0], y+o[1]))
		}
	}
	return n
}
