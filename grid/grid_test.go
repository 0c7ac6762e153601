package grid

import "testing"

func TestStepUnstep(t *testing.T) {
	cases := []struct {
		name string
		pos  Position
		dir  Direction
		want Position
	}{
		{"up", Position{2, 2}, Up, Position{2, 1}},
		{"left", Position{2, 2}, Left, Position{1, 2}},
		{"down", Position{2, 2}, Down, Position{2, 3}},
		{"right", Position{2, 2}, Right, Position{3, 2}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Step(c.pos, c.dir); got != c.want {
				t.Errorf("Step(%v, %v) = %v; want %v", c.pos, c.dir, got, c.want)
			}
			if back := Unstep(c.want, c.dir); back != c.pos {
				t.Errorf("Unstep(Step(pos,dir),dir) = %v; want %v", back, c.pos)
			}
		})
	}
}

func TestInverse(t *testing.T) {
	for _, d := range Directions {
		if d.Inverse().Inverse() != d {
			t.Errorf("Inverse is not involutive for %v", d)
		}
	}
}

func TestInBounds(t *testing.T) {
	size := Size{W: 3, H: 2}
	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{2, 1}, true},
		{Position{3, 0}, false},
		{Position{-1, 0}, false},
		{Position{0, 2}, false},
	}
	for _, c := range cases {
		if got := InBounds(c.pos, size); got != c.want {
			t.Errorf("InBounds(%v, %v) = %v; want %v", c.pos, size, got, c.want)
		}
	}
}

func TestManhattan(t *testing.T) {
	if got := Manhattan(Position{0, 0}, Position{3, 4}); got != 7 {
		t.Errorf("Manhattan = %d; want 7", got)
	}
}

func TestKeystroke(t *testing.T) {
	want := "wasd"
	for i, d := range Directions {
		if d.Keystroke() != want[i] {
			t.Errorf("Direction %v keystroke = %c; want %c", d, d.Keystroke(), want[i])
		}
	}
}

func TestLess(t *testing.T) {
	a := Position{1, 5}
	b := Position{2, 0}
	if !a.Less(b) {
		t.Errorf("expected %v < %v", a, b)
	}
	if b.Less(a) {
		t.Errorf("expected %v not < %v", b, a)
	}
}
