package keeper

import (
	"testing"

	"github.com/renanaferreira/sokoban-solver/grid"
)

func TestFindPathStraightLine(t *testing.T) {
	size := grid.Size{W: 5, H: 1}
	obstacles := map[grid.Position]struct{}{}
	path, ok := FindPath(obstacles, size, grid.Position{X: 0, Y: 0}, grid.Position{X: 3, Y: 0})
	if !ok {
		t.Fatalf("expected path to be found")
	}
	if len(path) != 3 {
		t.Fatalf("path length = %d; want 3", len(path))
	}
	for _, d := range path {
		if d != grid.Right {
			t.Errorf("expected every step to be Right, got %v", d)
		}
	}
}

func TestFindPathSamePosition(t *testing.T) {
	path, ok := FindPath(nil, grid.Size{W: 3, H: 3}, grid.Position{X: 1, Y: 1}, grid.Position{X: 1, Y: 1})
	if !ok {
		t.Fatalf("expected trivial path to be found")
	}
	if len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}

func TestFindPathUnreachable(t *testing.T) {
	size := grid.Size{W: 3, H: 3}
	obstacles := map[grid.Position]struct{}{
		{X: 1, Y: 0}: {},
		{X: 1, Y: 1}: {},
		{X: 1, Y: 2}: {},
	}
	_, ok := FindPath(obstacles, size, grid.Position{X: 0, Y: 1}, grid.Position{X: 2, Y: 1})
	if ok {
		t.Errorf("expected target to be unreachable behind a solid wall")
	}
}

func TestFindPathAroundObstacle(t *testing.T) {
	size := grid.Size{W: 3, H: 3}
	obstacles := map[grid.Position]struct{}{
		{X: 1, Y: 1}: {},
	}
	path, ok := FindPath(obstacles, size, grid.Position{X: 0, Y: 1}, grid.Position{X: 2, Y: 1})
	if !ok {
		t.Fatalf("expected a path around the obstacle")
	}
	pos := grid.Position{X: 0, Y: 1}
	for _, d := range path {
		pos = grid.Step(pos, d)
		if _, blocked := obstacles[pos]; blocked {
			t.Fatalf("path stepped onto an obstacle at %v", pos)
		}
	}
	if pos != (grid.Position{X: 2, Y: 1}) {
		t.Errorf("path ended at %v; want (2,1)", pos)
	}
}
