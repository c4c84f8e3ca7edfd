package view

import (
	"strings"
	"testing"

	"cellular-automat/src/runner"
)

func testArea() runner.Area {
	return runner.Area{
		Width:   3,
		Height:  2,
		Values:  [][]int{{1, 0, 2}, {0, 1, 0}},
		Changed: [][]bool{{true, true, false}, {false, false, false}},
	}
}

func TestField(t *testing.T) {
	ui := ConsoleUI{liveFiller: "L", deadFiller: ".", bornFiller: "B", diedFiller: "x"}
	testData := []struct {
		name     string
		maxW     int
		maxH     int
		expected string
		cropped  bool
	}{
		{"fits", 10, 10, "BxL\n.L.", false},
		{"narrow", 2, 10, "Bx\n.L", true},
	}
	for _, td := range testData {
		s := ui.field(testArea(), td.maxW, td.maxH)
		if !strings.HasPrefix(s, td.expected) {
			t.Fatalf("%s: field %q, expected prefix %q", td.name, s, td.expected)
		}
		if cropped := s != td.expected; cropped != td.cropped {
			t.Fatalf("%s: field %q, cropped=%v", td.name, s, cropped)
		}
	}
}

func TestFieldCropped(t *testing.T) {
	ui := ConsoleUI{liveFiller: "L", deadFiller: ".", bornFiller: "B", diedFiller: "x"}
	s := ui.field(testArea(), 10, 1)
	if strings.Contains(s, "B") || !strings.Contains(s, "larger than the viewing area") {
		t.Fatalf("cropped field %q", s)
	}
	s = ui.field(testArea(), 2, 2)
	if !strings.HasPrefix(s, "Bx\n") || !strings.Contains(s, "larger than the viewing area") {
		t.Fatalf("cropped field %q", s)
	}
}
