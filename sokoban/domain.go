// Package sokoban implements the outer box-push search domain (spec.md §4.5,
// C5): macro-action enumeration, the three deadlock detectors, the greedy
// min-cost matching heuristic, keeper-equivalence dominance, and state
// (in)equivalence/hashing. It implements search.Domain and is driven by a
// search.Tree exactly as original_source/sokoban_domain.py's SokobanDomain
// is driven by the shared SearchTree/SearchProblem pair.
package sokoban

import (
	"fmt"
	"sort"

	"github.com/renanaferreira/sokoban-solver/grid"
	"github.com/renanaferreira/sokoban-solver/keeper"
	"github.com/renanaferreira/sokoban-solver/levelmap"
	"github.com/renanaferreira/sokoban-solver/search"
	"github.com/renanaferreira/sokoban-solver/staticmap"
)

// sentinelDistance replaces an unreachable goal-to-box pull distance in the
// candidate edge list, so unreachable pairs are still considered but sort
// last (spec.md §4.5.3 step 1, §9 open question: "a value strictly larger
// than any realistic plan length but safely below overflow"); a match
// accepted on such an edge adds sentinelDistance to the sum. It is distinct
// from staticmap.Infinite, which the leftover-box fallback adds for a truly
// unreachable pair and which the final-sum check compares against.
const sentinelDistance = 100_000_000

type areaInfo struct {
	cells     map[grid.Position]struct{}
	goalCount int
}

// Domain implements search.Domain for the outer Sokoban search.
type Domain struct {
	walls  map[grid.Position]struct{}
	goals  map[grid.Position]struct{}
	size   grid.Size

	goalList []grid.Position
	tables   staticmap.Tables
	areas    []areaInfo

	// visitedKeepers maps a box-multiset key to every keeper position a
	// state with that box set has been discovered at, used by the
	// keeper-dominance check (spec.md §4.5.4).
	visitedKeepers map[string][]grid.Position
}

// NewDomain builds the Sokoban search domain for a parsed map and its
// precomputed static tables.
func NewDomain(m levelmap.Map, tables staticmap.Tables) *Domain {
	d := &Domain{
		walls:          m.Walls,
		goals:          m.Goals,
		size:           m.Size,
		tables:         tables,
		visitedKeepers: make(map[string][]grid.Position),
	}
	for g := range m.Goals {
		d.goalList = append(d.goalList, g)
	}
	sort.Slice(d.goalList, func(i, j int) bool { return d.goalList[i].Less(d.goalList[j]) })

	for _, area := range tables.Areas {
		info := areaInfo{cells: make(map[grid.Position]struct{}, len(area.Cells)), goalCount: len(area.Goals)}
		for _, c := range area.Cells {
			info.cells[c] = struct{}{}
		}
		d.areas = append(d.areas, info)
	}
	return d
}

// isMovable reports whether box can legally move one cell in direction dir
// given the rest of boxes and a wall set (spec.md §4.5.1 bullet "is_movable").
func (d *Domain) isMovable(boxes []grid.Position, walls map[grid.Position]struct{}, box grid.Position, dir grid.Direction) bool {
	obstacles := toSet(removeBox(boxes, box))
	newBox := grid.Step(box, dir)

	if !grid.InBounds(newBox, d.size) {
		return false
	}
	if _, blocked := walls[newBox]; blocked {
		return false
	}
	if _, blocked := obstacles[newBox]; blocked {
		return false
	}
	if _, deadlock := d.tables.SimpleDeadlocks[newBox]; deadlock {
		return false
	}

	behind := grid.Unstep(box, dir)
	if _, blocked := walls[behind]; blocked {
		return false
	}
	if _, blocked := obstacles[behind]; blocked {
		return false
	}
	return true
}

// freezeDeadlock implements the recursive freeze-deadlock check of spec.md
// §4.5.2: box is frozen iff it has no legal push direction and every
// box-neighbour, recursively treated as the new candidate with box fixed
// into the wall set, is also frozen. Vacuously true when box has no legal
// push direction and no box-neighbours at all.
func (d *Domain) freezeDeadlock(boxes []grid.Position, walls map[grid.Position]struct{}, box grid.Position) bool {
	for _, dir := range grid.Directions {
		if d.isMovable(boxes, walls, box, dir) {
			return false
		}
	}

	boxSet := toSet(boxes)
	countBox := 0
	countDeadlock := 0
	for _, dir := range grid.Directions {
		neighbor := grid.Step(box, dir)
		if _, isBox := boxSet[neighbor]; !isBox {
			continue
		}
		countBox++
		newBoxes := removeBox(boxes, box)
		newWalls := withWall(walls, box)
		if d.freezeDeadlock(newBoxes, newWalls, neighbor) {
			countDeadlock++
		}
	}
	return countBox == countDeadlock
}

// areaCapacityDeadlock reports whether any area signature currently holds
// more boxes than it has reachable goals (spec.md §4.3 bullet 3, §4.5.2).
func (d *Domain) areaCapacityDeadlock(boxes []grid.Position) bool {
	for _, area := range d.areas {
		count := 0
		for _, b := range boxes {
			if _, in := area.cells[b]; in {
				count++
			}
		}
		if count > area.goalCount {
			return true
		}
	}
	return false
}

// deadlockCheck decides whether pushing a box to newBox, yielding the full
// updated box set boxes, creates a deadlock (spec.md §4.5.1 step 3(b),
// §4.5.2).
func (d *Domain) deadlockCheck(boxes []grid.Position, newBox grid.Position) bool {
	if d.areaCapacityDeadlock(boxes) {
		return true
	}
	if _, isGoal := d.goals[newBox]; isGoal {
		return false
	}
	return d.freezeDeadlock(boxes, d.walls, newBox)
}

// newBoxSet returns the full box set after hypothetically pushing box in
// direction dir, not necessarily sorted.
func newBoxSet(boxes []grid.Position, box grid.Position, dir grid.Direction) []grid.Position {
	out := removeBox(boxes, box)
	out = append(out, grid.Step(box, dir))
	return out
}

// allowed reports whether pushing box in dir from state is both physically
// possible and deadlock-free (spec.md §4.5.1 step 3).
func (d *Domain) allowed(state State, box grid.Position, dir grid.Direction) bool {
	if !d.isMovable(state.Boxes, d.walls, box, dir) {
		return false
	}
	newBoxes := newBoxSet(state.Boxes, box, dir)
	return !d.deadlockCheck(newBoxes, grid.Step(box, dir))
}

// visitable reports whether state is dominated by a previously visited
// state with the same box set and a keeper-reachable position (spec.md
// §4.5.4).
func (d *Domain) visitable(state State) bool {
	key := boxesKey(state.Boxes)
	previous, ok := d.visitedKeepers[key]
	if !ok {
		return false
	}
	obstacles := toSet(state.Boxes)
	for w := range d.walls {
		obstacles[w] = struct{}{}
	}
	for _, prior := range previous {
		if _, reachable := keeper.FindPath(obstacles, d.size, state.Keeper, prior); reachable {
			return true
		}
	}
	return false
}

// Actions enumerates macro-actions from state (spec.md §4.5.1), or returns
// search.SkipDominated if state is keeper-dominated by an earlier one.
func (d *Domain) Actions(state search.State) search.Actions {
	s := state.(State)

	if d.visitable(s) {
		return search.SkipDominated
	}
	key := boxesKey(s.Boxes)
	d.visitedKeepers[key] = append(d.visitedKeepers[key], s.Keeper)

	obstacles := toSet(s.Boxes)
	for w := range d.walls {
		obstacles[w] = struct{}{}
	}

	var actions []search.Action
	for _, box := range s.Boxes {
		for _, dir := range grid.Directions {
			if !d.allowed(s, box, dir) {
				continue
			}
			pushFrom := grid.Unstep(box, dir)
			walk, reachable := keeper.FindPath(obstacles, d.size, s.Keeper, pushFrom)
			if !reachable {
				continue
			}
			keystrokes := make([]grid.Direction, 0, len(walk)+1)
			keystrokes = append(keystrokes, walk...)
			keystrokes = append(keystrokes, dir)
			actions = append(actions, MacroAction{Box: box, Keystrokes: keystrokes})
		}
	}
	return search.Expand(actions...)
}

// Result applies a macro-action, returning the new state with the keeper
// at the cell it occupied right after completing the push -- the push's
// source cell, equal to the box's pre-push position. This corrects the
// latent bug spec.md §4.5.5/§9 calls out in the original source, which
// dropped the keeper's post-push cell entirely.
func (d *Domain) Result(state search.State, action search.Action) search.State {
	s := state.(State)
	a := action.(MacroAction)
	if len(a.Keystrokes) == 0 {
		panic(fmt.Errorf("%w: macro-action for box %v has no keystrokes", ErrInternalInvariant, a.Box))
	}
	present := false
	for _, b := range s.Boxes {
		if b == a.Box {
			present = true
			break
		}
	}
	if !present {
		panic(fmt.Errorf("%w: macro-action moves box %v not present in state", ErrInternalInvariant, a.Box))
	}

	lastDir := a.Keystrokes[len(a.Keystrokes)-1]
	newBoxPos := grid.Step(a.Box, lastDir)
	newBoxes := replaceSorted(s.Boxes, a.Box, newBoxPos)
	pushSource := grid.Unstep(newBoxPos, lastDir) // == a.Box
	return State{Keeper: pushSource, Boxes: newBoxes}
}

// Cost is the number of keystrokes the macro-action takes, walk plus push
// (spec.md §4.5.5).
func (d *Domain) Cost(state search.State, action search.Action) float64 {
	return float64(len(action.(MacroAction).Keystrokes))
}

// greedyDistance computes the min-cost matching heuristic of spec.md
// §4.5.3: sort all (goal, box) pairs by pull distance, greedily accept
// edges whose endpoints are both unmatched, then pair any leftover boxes
// with their nearest still-unmatched goal.
func (d *Domain) greedyDistance(boxes []grid.Position) int {
	type edge struct {
		goal, box grid.Position
		dist      int
	}
	edges := make([]edge, 0, len(boxes)*len(d.goalList))
	for _, box := range boxes {
		for _, goal := range d.goalList {
			edges = append(edges, edge{goal: goal, box: box, dist: d.tables.PullDistance[goal][box]})
		}
	}
	for i := range edges {
		if edges[i].dist >= staticmap.Infinite {
			edges[i].dist = sentinelDistance
		}
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].dist < edges[j].dist })

	matchedBoxes := make(map[grid.Position]struct{}, len(boxes))
	matchedGoals := make(map[grid.Position]struct{}, len(d.goalList))
	sum := 0
	for _, e := range edges {
		if _, taken := matchedBoxes[e.box]; taken {
			continue
		}
		if _, taken := matchedGoals[e.goal]; taken {
			continue
		}
		matchedBoxes[e.box] = struct{}{}
		matchedGoals[e.goal] = struct{}{}
		sum += e.dist
	}

	for _, box := range boxes {
		if _, matched := matchedBoxes[box]; matched {
			continue
		}
		bestDist := staticmap.Infinite
		var bestGoal grid.Position
		found := false
		for _, goal := range d.goalList {
			if _, taken := matchedGoals[goal]; taken {
				continue
			}
			dist := d.tables.PullDistance[goal][box]
			if !found || dist < bestDist {
				bestDist, bestGoal, found = dist, goal, true
			}
		}
		if !found {
			continue
		}
		matchedBoxes[box] = struct{}{}
		matchedGoals[bestGoal] = struct{}{}
		sum += bestDist
	}

	if sum >= staticmap.Infinite {
		return 0
	}
	return sum
}

// Heuristic estimates remaining cost as the greedy min-cost matching sum
// (spec.md §4.5.3); goal is unused since the matching always targets every
// goal in the map.
func (d *Domain) Heuristic(state search.State, goal search.State) float64 {
	return float64(d.greedyDistance(state.(State).Boxes))
}

// Equivalent reports whether two states have the same sorted box list and
// the same keeper position (spec.md §3 "State").
func (d *Domain) Equivalent(a, b search.State) bool {
	sa, sb := a.(State), b.(State)
	return sa.Keeper == sb.Keeper && boxesEqual(sa.Boxes, sb.Boxes)
}

// Satisfies reports whether state's box multiset equals goal's.
func (d *Domain) Satisfies(state search.State, goal search.State) bool {
	return boxesEqual(state.(State).Boxes, goal.(State).Boxes)
}

// Hash renders (keeper, sorted boxes) as a stable string key.
func (d *Domain) Hash(state search.State) string {
	s := state.(State)
	return fmt.Sprintf("%v|%v", s.Keeper, s.Boxes)
}

var _ search.Domain = (*Domain)(nil)
