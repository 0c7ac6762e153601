package search

import (
	"container/heap"
	"strings"
)

// node is one arena-allocated search-tree node (spec.md §9: "arena+index").
// parent is an index into Tree.nodes, -1 for the root, so the whole tree is
// released by dropping the nodes slice -- no pointer cycles to unwind.
type node struct {
	parent    int
	state     State
	action    Action // action that produced this node; nil for the root
	depth     int
	cost      float64
	heuristic float64
}

// Result is what Search returns on success: the path of states and actions
// from the root to the goal, plus the bookkeeping counters the original
// SearchTree exposed as properties (visited_ones/length/cost/plan).
type Result struct {
	States   []State
	Plan     []Action
	Visited  int
	Expanded int
	Depth    int
	Cost     float64
}

// Tree is a best-first search over a Domain, parameterised by Strategy
// (spec.md §4.6 C6). A Tree is single-use: call Search once, then discard
// it (or call DebugString for diagnostics) -- matching the synchronous,
// single-threaded solver described in spec.md §5.
type Tree struct {
	domain   Domain
	goal     State
	strategy Strategy

	nodes    []node
	children map[int][]int // parent index -> child indices, populated as expanded, for DebugString
	open     *frontier
	visited  map[string]struct{}
	counter  int
}

// NewTree creates a Tree rooted at initial, searching for goal under the
// default Greedy strategy (spec.md §6: "The strategy name (default greedy)
// is the only core knob").
func NewTree(domain Domain, initial, goal State) *Tree {
	t := &Tree{
		domain:   domain,
		goal:     goal,
		strategy: Greedy,
		children: make(map[int][]int),
		visited:  make(map[string]struct{}),
	}
	root := node{
		parent:    -1,
		state:     initial,
		heuristic: domain.Heuristic(initial, goal),
	}
	t.nodes = append(t.nodes, root)
	f := make(frontier, 0, 64)
	heap.Init(&f)
	t.open = &f
	heap.Push(t.open, frontierItem{priority: t.strategy.priority(0, 0, root.heuristic), counter: 0, nodeIdx: 0})
	t.counter = 1
	return t
}

// Strategy sets the search strategy; returns the tree for chaining, mirroring
// teacher solve.go's fluent Solver builder.
func (t *Tree) Strategy(s Strategy) *Tree {
	t.strategy = s
	return t
}

// Search runs the best-first loop of spec.md §4.6 to completion and returns
// the first goal node found, or ErrNoSolution if the frontier empties. A
// domain that panics with an error (spec.md §7's InternalInvariant class of
// defect, as opposed to silent deadlock/dominance pruning) has that panic
// recovered here and returned as a plain error rather than crashing the
// caller.
func (t *Tree) Search() (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			panic(r)
		}
	}()
	for t.open.Len() > 0 {
		item := heap.Pop(t.open).(frontierItem)
		idx := item.nodeIdx
		n := t.nodes[idx]

		hash := t.domain.Hash(n.state)
		if _, seen := t.visited[hash]; seen {
			continue
		}
		t.visited[hash] = struct{}{}

		if t.domain.Satisfies(n.state, t.goal) {
			return t.buildResult(idx), nil
		}

		actions := t.domain.Actions(n.state)
		if actions.Skip {
			// Dominated state: marked visited above already; nothing more
			// to do (spec.md §4.6 step 3).
			continue
		}

		for _, action := range actions.List {
			childState := t.domain.Result(n.state, action)

			if t.ancestorEquivalent(idx, childState) {
				continue
			}
			childHash := t.domain.Hash(childState)
			if _, seen := t.visited[childHash]; seen {
				continue
			}

			childCost := n.cost + t.domain.Cost(n.state, action)
			childHeuristic := t.domain.Heuristic(childState, t.goal)
			child := node{
				parent:    idx,
				state:     childState,
				action:    action,
				depth:     n.depth + 1,
				cost:      childCost,
				heuristic: childHeuristic,
			}
			childIdx := len(t.nodes)
			t.nodes = append(t.nodes, child)
			t.children[idx] = append(t.children[idx], childIdx)

			priority := t.strategy.priority(t.counter, childCost, childHeuristic)
			heap.Push(t.open, frontierItem{priority: priority, counter: t.counter, nodeIdx: childIdx})
			t.counter++
		}
	}
	return Result{}, ErrNoSolution
}

// ancestorEquivalent walks the parent chain from idx to the root, checking
// whether childState is equivalent to any ancestor's state -- the cycle
// check of spec.md §4.6 step 4.
func (t *Tree) ancestorEquivalent(idx int, childState State) bool {
	for idx != -1 {
		if t.domain.Equivalent(childState, t.nodes[idx].state) {
			return true
		}
		idx = t.nodes[idx].parent
	}
	return false
}

// buildResult walks parent pointers from the solution node, collecting the
// path of states and the plan of actions (spec.md §4.6 "Plan extraction").
func (t *Tree) buildResult(solutionIdx int) Result {
	var states []State
	var plan []Action
	visitedCount := len(t.visited)
	expanded := len(t.nodes) - 1 // root isn't itself an expansion product

	idx := solutionIdx
	for idx != -1 {
		n := t.nodes[idx]
		states = append([]State{n.state}, states...)
		if n.action != nil {
			plan = append([]Action{n.action}, plan...)
		}
		idx = n.parent
	}

	return Result{
		States:   states,
		Plan:     plan,
		Visited:  visitedCount,
		Expanded: expanded,
		Depth:    t.nodes[solutionIdx].depth,
		Cost:     t.nodes[solutionIdx].cost,
	}
}

// DebugString renders the explored tree as indented text, restoring the
// original SearchTree.show diagnostic dropped from spec.md's distillation
// (see SPEC_FULL.md §9). Not on any hot path; intended for test failures
// and the CLI's -debug flag.
func (t *Tree) DebugString() string {
	var b strings.Builder
	t.writeNode(&b, 0, "")
	return b.String()
}

func (t *Tree) writeNode(b *strings.Builder, idx int, indent string) {
	n := t.nodes[idx]
	if n.action != nil {
		b.WriteString(indent)
		b.WriteString("action\n")
	} else {
		b.WriteString(indent)
		b.WriteString("root\n")
	}
	for _, child := range t.children[idx] {
		t.writeNode(b, child, indent+"--")
	}
}
