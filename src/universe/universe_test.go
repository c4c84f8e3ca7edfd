package universe

import (
	"testing"
)

func TestNewUniverse(t *testing.T) {
	u := New(20, 20, true)
	if u.Width() != 20 || u.Height() != 20 {
		t.Fatalf("dimension: %v x %v, expected 20 x 20", u.Width(), u.Height())
	}
	if len(u.Cells()) != 400 {
		t.Fatalf("cells: %v, expected 400", len(u.Cells()))
	}
	if u.SumOfValues() != 0 {
		t.Fatalf("new universe must be dead, sum is %v", u.SumOfValues())
	}
	for i, c := range u.Cells() {
		if u.Index(c.X, c.Y) != i {
			t.Fatalf("cell %v has coordinates %v,%v which map to %v", i, c.X, c.Y, u.Index(c.X, c.Y))
		}
	}
}

func TestNeighbours(t *testing.T) {
	u := New(20, 20, true)
	testData := []struct {
		cell       [2]int
		neighbours [8][2]int
	}{
		{
			cell:       [2]int{10, 10},
			neighbours: [8][2]int{{9, 9}, {10, 9}, {11, 9}, {9, 10}, {11, 10}, {9, 11}, {10, 11}, {11, 11}},
		},
		{
			cell:       [2]int{0, 0},
			neighbours: [8][2]int{{19, 19}, {0, 19}, {1, 19}, {19, 0}, {1, 0}, {19, 1}, {0, 1}, {1, 1}},
		},
	}
	for _, td := range testData {
		c := u.CellAt(td.cell[0], td.cell[1])
		n := u.NeighboursOf(c)
		if len(n) != 8 {
			t.Fatalf("cell(x=%v, y=%v) has %v neighbours", td.cell[0], td.cell[1], len(n))
		}
		for i, e := range td.neighbours {
			if n[i].X != e[0] || n[i].Y != e[1] {
				t.Fatalf("cell(x=%v, y=%v) number=%v: got %v,%v expected %v,%v",
					td.cell[0], td.cell[1], i, n[i].X, n[i].Y, e[0], e[1])
			}
		}
	}
}

//bounded universes compare the relative offset with the bounds, only (+1,+1) passes the check
func TestBoundedNeighboursQuirk(t *testing.T) {
	u := New(5, 5, false)
	for i := range u.Cells() {
		c := &u.Cells()[i]
		n := u.NeighboursOf(c)
		if len(n) != 1 {
			t.Fatalf("cell(x=%v, y=%v) has %v neighbours, expected 1", c.X, c.Y, len(n))
		}
		if n[0].X != Cycle(c.X+1, 5) || n[0].Y != Cycle(c.Y+1, 5) {
			t.Fatalf("cell(x=%v, y=%v) neighbour is %v,%v", c.X, c.Y, n[0].X, n[0].Y)
		}
	}

	thin := New(1, 5, false)
	if n := thin.CellAt(0, 2).Neighbours(); len(n) != 0 {
		t.Fatalf("1 wide bounded universe: %v neighbours, expected 0", len(n))
	}
}

func TestCycle(t *testing.T) {
	testData := [][3]int{
		{5, 10, 5},
		{10, 10, 0},
		{14, 10, 4},
		{0, 10, 0},
		{0, 1, 0},
		{1, 1, 0},
		{-1, 10, 9},
		{-8, 10, 2},
		{-12, 10, 8},
		{-10, 10, 0},
	}
	for _, td := range testData {
		if r := Cycle(td[0], td[1]); r != td[2] {
			t.Fatalf("cycle(%v, %v) = %v, expected %v", td[0], td[1], r, td[2])
		}
	}
}

func TestCycleZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("cycle(0, 0) must panic")
		}
	}()
	Cycle(0, 0)
}

func TestCellAtWraps(t *testing.T) {
	u := New(4, 3, true)
	if c := u.CellAt(-1, -1); c.X != 3 || c.Y != 2 {
		t.Fatalf("cell(-1,-1) is %v,%v", c.X, c.Y)
	}
	if c := u.CellAt(5, 7); c.X != 1 || c.Y != 1 {
		t.Fatalf("cell(5,7) is %v,%v", c.X, c.Y)
	}
}

func TestEmptyUniverse(t *testing.T) {
	u := New(0, 0, true)
	if len(u.Cells()) != 0 {
		t.Fatalf("empty universe has %v cells", len(u.Cells()))
	}
	u.Reset()
	if u.SumOfValues() != 0 || u.LiveCells() != 0 {
		t.Fatal("empty universe must have no values")
	}
}

func TestCellCommit(t *testing.T) {
	u := New(3, 3, true)
	c := u.CellAt(1, 1)

	c.Stage(1)
	if c.Value() != 0 {
		t.Fatal("staged value must not be visible before commit")
	}
	c.Commit(false)
	if c.Value() != 1 || !c.Changed() {
		t.Fatalf("value=%v changed=%v after commit", c.Value(), c.Changed())
	}

	c.Stage(1).Commit(false)
	if c.Changed() {
		t.Fatal("unchanged commit must not mark the cell changed")
	}
	c.Stage(1).Commit(true)
	if !c.Changed() {
		t.Fatal("touched commit must mark the cell changed")
	}

	c.Stage(7).Commit(false)
	if u.SumOfValues() != 7 || u.LiveCells() != 1 {
		t.Fatalf("sum=%v live=%v", u.SumOfValues(), u.LiveCells())
	}
	if r := c.Serialize(); r != (CellRecord{X: 1, Y: 1, V: 7}) {
		t.Fatalf("serialized: %+v", r)
	}

	u.Reset()
	if c.Value() != 0 || !c.Changed() {
		t.Fatalf("value=%v changed=%v after reset", c.Value(), c.Changed())
	}
	c.Commit(false)
	if c.Value() != 0 {
		t.Fatal("reset must clear the staged value")
	}
}
