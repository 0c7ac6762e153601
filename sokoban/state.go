package sokoban

import (
	"fmt"
	"sort"

	"github.com/renanaferreira/sokoban-solver/grid"
	"github.com/renanaferreira/sokoban-solver/levelmap"
)

// State is the outer search state: the keeper position and the sorted
// multiset of box positions (spec.md §3). Boxes is always kept sorted so
// Hash and Equivalent can compare by value without re-sorting.
type State struct {
	Keeper grid.Position
	Boxes  []grid.Position
}

// MacroAction is a single box push plus the keeper's walking path leading
// to it: the walk is exclusive of the final push, which is Keystrokes'
// last element (spec.md §3, §4.5.1).
type MacroAction struct {
	Box        grid.Position
	Keystrokes []grid.Direction
}

func sortedCopy(positions []grid.Position) []grid.Position {
	out := make([]grid.Position, len(positions))
	copy(out, positions)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// InitialState builds the outer search's root state from a parsed level.
func InitialState(m levelmap.Map) State {
	return State{Keeper: m.InitialKeeper, Boxes: sortedCopy(m.InitialBoxes)}
}

// GoalState builds the goal for Domain.Satisfies: the keeper field is
// unused by Satisfies, which only compares box multisets.
func GoalState(m levelmap.Map) State {
	goals := make([]grid.Position, 0, len(m.Goals))
	for g := range m.Goals {
		goals = append(goals, g)
	}
	return State{Boxes: sortedCopy(goals)}
}

func boxesEqual(a, b []grid.Position) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// boxesKey renders a sorted box slice as a stable map key for the
// visited-keepers table (spec.md §4.5.4 "map<frozenset(boxes), ...>" --
// Go has no frozenset, so a sorted-and-joined string plays that role).
func boxesKey(boxes []grid.Position) string {
	return fmt.Sprint(boxes)
}

// removeBox returns a copy of boxes with one occurrence of box removed.
func removeBox(boxes []grid.Position, box grid.Position) []grid.Position {
	out := make([]grid.Position, 0, len(boxes))
	removed := false
	for _, b := range boxes {
		if !removed && b == box {
			removed = true
			continue
		}
		out = append(out, b)
	}
	return out
}

// replaceSorted returns boxes with old replaced by new, re-sorted.
func replaceSorted(boxes []grid.Position, old, new grid.Position) []grid.Position {
	out := removeBox(boxes, old)
	out = append(out, new)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

func toSet(boxes []grid.Position) map[grid.Position]struct{} {
	s := make(map[grid.Position]struct{}, len(boxes))
	for _, b := range boxes {
		s[b] = struct{}{}
	}
	return s
}

func withWall(walls map[grid.Position]struct{}, box grid.Position) map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{}, len(walls)+1)
	for w := range walls {
		out[w] = struct{}{}
	}
	out[box] = struct{}{}
	return out
}
