package universe

import (
	"math/rand"
	"testing"
)

func liveSet(u *Universe) map[[2]int]bool {
	live := map[[2]int]bool{}
	for _, c := range u.Cells() {
		if c.Alive() {
			live[[2]int{c.X, c.Y}] = true
		}
	}
	return live
}

func TestStepDeadUniverse(t *testing.T) {
	cfg := NewConfiguration(New(8, 8, true), Conway())
	res := cfg.Step()
	if res.Changed || res.LiveCells != 0 || cfg.Universe.SumOfValues() != 0 {
		t.Fatalf("dead universe changed: %+v", res)
	}
}

func TestStepIsolatedCellDies(t *testing.T) {
	for _, r := range []Rule{Conway(), EEFFRule{2, 3, 3, 3}} {
		cfg := NewConfiguration(New(8, 8, true), r)
		cfg.Universe.CellAt(4, 4).Stage(1).Commit(false)
		res := cfg.Step()
		if !res.Changed || res.LiveCells != 0 || cfg.Universe.SumOfValues() != 0 {
			t.Fatalf("%T: isolated cell survived: %+v", r, res)
		}
		if !cfg.Universe.CellAt(4, 4).Changed() || cfg.Universe.CellAt(0, 0).Changed() {
			t.Fatalf("%T: changed flags are wrong", r)
		}
	}
}

func TestStepBlinker(t *testing.T) {
	cfg := NewConfiguration(New(5, 5, true), Conway())
	cfg.Settle([][]int{{2, 1}, {2, 2}, {2, 3}}, 1)

	horizontal := map[[2]int]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	vertical := map[[2]int]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}

	for i, expected := range []map[[2]int]bool{horizontal, vertical, horizontal} {
		res := cfg.Step()
		live := liveSet(cfg.Universe)
		if len(live) != len(expected) || res.LiveCells != 3 {
			t.Fatalf("step %v: live cells %v, expected %v", i, live, expected)
		}
		for k := range expected {
			if !live[k] {
				t.Fatalf("step %v: cell %v must be alive", i, k)
			}
		}
	}
}

func TestStepGliderWraps(t *testing.T) {
	cfg := NewConfiguration(New(6, 6, true), Conway())
	glider := [][]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	cfg.Settle(glider, 1)
	start := liveSet(cfg.Universe)

	//a glider moves one cell diagonally every 4 generations, 24 generations bring it home on a 6x6 torus
	for i := 0; i < 24; i++ {
		cfg.Step()
	}
	end := liveSet(cfg.Universe)
	if len(end) != len(start) {
		t.Fatalf("glider has %v cells, expected %v", len(end), len(start))
	}
	for k := range start {
		if !end[k] {
			t.Fatalf("cell %v is not alive after a full cycle", k)
		}
	}
}

func TestSettleSkipsOutside(t *testing.T) {
	cfg := NewConfiguration(New(3, 3, true), Conway())
	cfg.Settle([][]int{{0, 0}, {3, 0}, {-1, 1}, {1}, {2, 2}}, 1)
	if cfg.Universe.LiveCells() != 2 {
		t.Fatalf("live cells %v, expected 2", cfg.Universe.LiveCells())
	}
}

func TestRandomize(t *testing.T) {
	cfg := NewConfiguration(New(16, 16, true), Conway())
	cfg.Randomize(rand.New(rand.NewSource(42)))
	live := 0
	for _, c := range cfg.Universe.Cells() {
		if !c.Changed() {
			t.Fatalf("cell %v,%v must be touched", c.X, c.Y)
		}
		if c.Value() != 0 && c.Value() != 1 {
			t.Fatalf("cell %v,%v has value %v", c.X, c.Y, c.Value())
		}
		live += c.Value()
	}
	if live == 0 || live == 256 {
		t.Fatalf("random data is not random: %v live cells", live)
	}
}
