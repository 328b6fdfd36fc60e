package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if got := s.Get(3, 2); got != 'X' {
		t.Errorf("Get(3,2) = %q, expected 'X'", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("Out-of-bounds Get = %q, expected space", got)
	}
	if got := s.Get(99, 99); got != ' ' {
		t.Errorf("Out-of-bounds Get = %q, expected space", got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.Fill('#')
	s.Clear()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("Clear left %q at (%d,%d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not place characters")
	}

	// Clipped text must not panic
	s.DrawText(8, 1, "long text")
	if s.Get(8, 1) != 'l' || s.Get(9, 1) != 'o' {
		t.Error("Clipped DrawText should keep in-bounds characters")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'A')
	s.Set(5, 3, 'B')

	s.Resize(4, 3)

	if s.Get(1, 1) != 'A' {
		t.Error("Resize should preserve in-bounds content")
	}
	if s.Width() != 4 || s.Height() != 3 {
		t.Errorf("Resize dimensions = %dx%d, expected 4x3", s.Width(), s.Height())
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawHLine(0, 0, 3, '-')

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "---" {
		t.Errorf("Row 0 = %q, expected ---", lines[0])
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(0, 0, 6, 4)

	if s.Get(0, 0) != '┌' || s.Get(5, 0) != '┐' || s.Get(0, 3) != '└' || s.Get(5, 3) != '┘' {
		t.Error("DrawBox corners missing")
	}
	if s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Error("DrawBox edges missing")
	}
}
