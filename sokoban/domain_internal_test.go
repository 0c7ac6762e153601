package sokoban

import (
	"testing"

	"github.com/renanaferreira/sokoban-solver/grid"
	"github.com/renanaferreira/sokoban-solver/levelmap"
	"github.com/renanaferreira/sokoban-solver/staticmap"
)

func buildDomain(t *testing.T, text string) *Domain {
	t.Helper()
	m, err := levelmap.Parse([]byte(text))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	tables := staticmap.Analyze(m)
	return NewDomain(m, tables)
}

// TestFreezeDeadlockDetectsTwoBoxesAgainstWall exercises freezeDeadlock
// directly, outside any search, against the
// classic two-box-flush-against-a-wall freeze: a wall sits directly above
// both boxes, ruling out vertical movement for either outright, and each
// box occupies the other's only remaining horizontal escape cell. This is
// the same layout TestFreezeDeadlockTwoBoxesAgainstWall in domain_test.go
// runs through the full search, confirming here that freezeDeadlock itself
// -- not just the absence of any legal push -- reports both boxes frozen.
func TestFreezeDeadlockDetectsTwoBoxesAgainstWall(t *testing.T) {
	level := "" +
		"######\n" +
		"#$$  #\n" +
		"#@   #\n" +
		"#  ..#\n" +
		"######"
	d := buildDomain(t, level)

	boxA := grid.Position{X: 1, Y: 1}
	boxB := grid.Position{X: 2, Y: 1}
	boxes := []grid.Position{boxA, boxB}

	if !d.freezeDeadlock(boxes, d.walls, boxA) {
		t.Errorf("expected box at %v to be frozen", boxA)
	}
	if !d.freezeDeadlock(boxes, d.walls, boxB) {
		t.Errorf("expected box at %v to be frozen", boxB)
	}
}

// TestFreezeDeadlockFalseForMovableBox is the negative control: a single
// box in the middle of an open room has a legal push in at least one
// direction, so freezeDeadlock must report false from its first loop,
// without ever reaching the recursive neighbour count.
func TestFreezeDeadlockFalseForMovableBox(t *testing.T) {
	level := "" +
		"######\n" +
		"#    #\n" +
		"# $  #\n" +
		"#  @ #\n" +
		"#  . #\n" +
		"######"
	d := buildDomain(t, level)

	box := grid.Position{X: 2, Y: 2}
	if d.freezeDeadlock([]grid.Position{box}, d.walls, box) {
		t.Errorf("expected box at %v in an open room not to be frozen", box)
	}
}

// TestFreezeDeadlockSingleBoxAgainstWallIsNotFrozen is a second negative
// control: a lone box flush against the top wall still has a legal push
// along the wall (the goal sits on that same row, so the destination cell
// is not a simple deadlock, and the cell the keeper would need to stand on
// is clear), so it must not be reported frozen just because one direction
// is blocked.
func TestFreezeDeadlockSingleBoxAgainstWallIsNotFrozen(t *testing.T) {
	level := "" +
		"#######\n" +
		"#  $ .#\n" +
		"#  @  #\n" +
		"#     #\n" +
		"#######"
	d := buildDomain(t, level)

	box := grid.Position{X: 3, Y: 1}
	if d.freezeDeadlock([]grid.Position{box}, d.walls, box) {
		t.Errorf("expected box at %v flush against the top wall but free to slide sideways not to be frozen", box)
	}
}
