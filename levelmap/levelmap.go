// Package levelmap loads XSB-style Sokoban level text into the immutable
// Map snapshot the solver core consumes. This is the one external
// collaborator spec.md leaves unspecified beyond "a Map provider"; it is
// kept deliberately thin so the core never depends on file formats.
package levelmap

import (
	"fmt"
	"strings"

	"github.com/renanaferreira/sokoban-solver/grid"
)

// Map is an immutable snapshot of a level: walls, floor, goals, the
// initial box multiset and the initial keeper position. Once built by
// Parse it is never mutated; the solver's static tables are derived from
// it once at construction (spec.md §3).
type Map struct {
	Size          grid.Size
	Walls         map[grid.Position]struct{}
	Goals         map[grid.Position]struct{}
	Floor         map[grid.Position]struct{}
	InitialBoxes  []grid.Position
	InitialKeeper grid.Position
}

// IsBlocked reports whether pos is a wall or outside the map bounds.
func (m Map) IsBlocked(pos grid.Position) bool {
	if !grid.InBounds(pos, m.Size) {
		return true
	}
	_, wall := m.Walls[pos]
	return wall
}

const (
	wall         = '#'
	floorSpace   = ' '
	floorDash    = '-'
	goalChar     = '.'
	boxChar      = '$'
	boxOnGoal    = '*'
	keeperChar   = '@'
	keeperOnGoal = '+'
)

// Parse decodes XSB-alphabet level text into a Map, validating the
// invariants spec.md §3 requires: box count equals goal count, exactly
// one keeper, every character recognised, and all positions in bounds.
func Parse(data []byte) (Map, error) {
	text := strings.TrimRight(string(data), "\n")
	lines := strings.Split(text, "\n")

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	m := Map{
		Size:  grid.Size{W: width, H: height},
		Walls: make(map[grid.Position]struct{}),
		Goals: make(map[grid.Position]struct{}),
		Floor: make(map[grid.Position]struct{}),
	}

	keeperFound := false
	for y, line := range lines {
		for x, r := range line {
			pos := grid.Position{X: x, Y: y}
			switch r {
			case wall:
				m.Walls[pos] = struct{}{}
			case floorSpace, floorDash:
				m.Floor[pos] = struct{}{}
			case goalChar:
				m.Goals[pos] = struct{}{}
				m.Floor[pos] = struct{}{}
			case boxChar:
				m.InitialBoxes = append(m.InitialBoxes, pos)
				m.Floor[pos] = struct{}{}
			case boxOnGoal:
				m.InitialBoxes = append(m.InitialBoxes, pos)
				m.Goals[pos] = struct{}{}
				m.Floor[pos] = struct{}{}
			case keeperChar:
				if keeperFound {
					return Map{}, fmt.Errorf("%w: more than one keeper", ErrMalformedMap)
				}
				m.InitialKeeper = pos
				m.Floor[pos] = struct{}{}
				keeperFound = true
			case keeperOnGoal:
				if keeperFound {
					return Map{}, fmt.Errorf("%w: more than one keeper", ErrMalformedMap)
				}
				m.InitialKeeper = pos
				m.Goals[pos] = struct{}{}
				m.Floor[pos] = struct{}{}
				keeperFound = true
			default:
				return Map{}, fmt.Errorf("%w: unrecognised tile %q at (%d,%d)", ErrMalformedMap, r, x, y)
			}
		}
	}

	if !keeperFound {
		return Map{}, fmt.Errorf("%w: no keeper found", ErrMalformedMap)
	}
	if len(m.InitialBoxes) != len(m.Goals) {
		return Map{}, fmt.Errorf("%w: %d boxes != %d goals", ErrMalformedMap, len(m.InitialBoxes), len(m.Goals))
	}

	return m, nil
}
