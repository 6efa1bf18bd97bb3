package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)
	if s.Width() != 40 || s.Height() != 12 {
		t.Fatalf("size = %dx%d, expected 40x12", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c != blank {
				t.Fatalf("cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 5)
	s.SetColored(3, 2, '■', ColorRed)

	if got := s.GetCell(3, 2); got.Rune != '■' || got.Color != ColorRed {
		t.Errorf("GetCell(3, 2) = %+v", got)
	}
	// out of bounds is ignored
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	if s.Get(-1, 0) != ' ' || s.Get(0, 99) != ' ' {
		t.Error("out of bounds Get should return space")
	}

	s.Clear()
	if s.Get(3, 2) != ' ' {
		t.Error("Clear should reset cells")
	}
}

func TestScreenTextAndString(t *testing.T) {
	s := NewScreen(7, 2)
	s.DrawTextColored(1, 0, "■□x", ColorCyan)
	s.DrawText(5, 1, "long")

	lines := strings.Split(s.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if lines[0] != " ■□x   " {
		t.Errorf("row 0 = %q", lines[0])
	}
	if lines[1] != "     lo" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if s.GetCell(2, 0).Color != ColorCyan {
		t.Error("multibyte runes should advance one column each")
	}
	if s.Row(1) != lines[1] {
		t.Errorf("Row(1) = %q", s.Row(1))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(0, 0, 4, 3), ColorGray)
	want := "┌──┐\n│  │\n└──┘"
	if s.String() != want {
		t.Errorf("box = %q, expected %q", s.String(), want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'x')
	s.Resize(6, 2)
	if s.Width() != 6 || s.Height() != 2 || s.Get(1, 1) != ' ' {
		t.Errorf("unexpected state after resize: %q", s.String())
	}
}

func TestClampWrap(t *testing.T) {
	tests := []struct {
		name     string
		got, exp int
	}{
		{"clamp inside", Clamp(5, 0, 8), 5},
		{"clamp low", Clamp(-2, 0, 8), 0},
		{"clamp high", Clamp(12, 0, 8), 8},
		{"wrap inside", Wrap(2, 3), 2},
		{"wrap over", Wrap(3, 3), 0},
		{"wrap negative", Wrap(-1, 3), 2},
		{"wrap empty", Wrap(4, 0), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.exp {
				t.Errorf("got %d, expected %d", tc.got, tc.exp)
			}
		})
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame(ActionLeft, ActionSlot2)
	if !f.Has(ActionLeft) || !f.Has(ActionSlot2) || f.Has(ActionConfirm) {
		t.Errorf("unexpected frame %v", f.Actions)
	}
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should drop actions")
	}
	var zero InputFrame
	zero.Set(ActionConfirm)
	if !zero.Has(ActionConfirm) {
		t.Error("Set on zero frame")
	}
	if ActionNextSlot.String() != "NextSlot" || Action(99).String() != "Unknown" {
		t.Error("Action.String")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame(ActionSlot1)
	c := f.Clone()
	f.Clear()
	if !c.Has(ActionSlot1) {
		t.Error("clone should survive Clear on the original")
	}
	c.Set(ActionConfirm)
	if f.Has(ActionConfirm) {
		t.Error("clone should not share actions")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(2, 2, 3, 3)
	if !r.Contains(2, 2) || !r.Contains(4, 4) || r.Contains(5, 2) || r.Contains(1, 3) {
		t.Error("Contains boundaries")
	}
}
