// Command sokobansolve reads an XSB level file, solves it, and prints the
// resulting keystroke plan -- the thin external adapter SPEC_FULL.md §6
// calls for, wired on top of the same core the tests exercise directly.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/renanaferreira/sokoban-solver/levelmap"
	"github.com/renanaferreira/sokoban-solver/plan"
	"github.com/renanaferreira/sokoban-solver/search"
	"github.com/renanaferreira/sokoban-solver/sokoban"
	"github.com/renanaferreira/sokoban-solver/staticmap"
)

var strategies = map[string]search.Strategy{
	"breadth": search.Breadth,
	"uniform": search.Uniform,
	"greedy":  search.Greedy,
	"a_star":  search.AStar,
}

func main() {
	levelPath := flag.String("level", "", "path to an XSB-format level file")
	strategyName := flag.String("strategy", "greedy", "search strategy: breadth, uniform, greedy or a_star")
	debug := flag.Bool("debug", false, "print the explored search tree to stderr on failure")
	flag.Parse()

	if *levelPath == "" {
		log.Fatal("sokobansolve: -level is required")
	}
	strategy, ok := strategies[*strategyName]
	if !ok {
		log.Fatalf("sokobansolve: unknown strategy %q", *strategyName)
	}

	keystrokes, err := solve(*levelPath, strategy, *debug)
	if err != nil {
		if errors.Is(err, search.ErrNoSolution) {
			fmt.Fprintln(os.Stderr, "no solution found")
			os.Exit(1)
		}
		log.Fatalf("sokobansolve: %v", err)
	}
	fmt.Println(keystrokes)
}

func solve(levelPath string, strategy search.Strategy, debug bool) (string, error) {
	data, err := os.ReadFile(levelPath)
	if err != nil {
		return "", fmt.Errorf("sokobansolve: reading level: %w", err)
	}

	m, err := levelmap.Parse(data)
	if err != nil {
		return "", fmt.Errorf("sokobansolve: %w", err)
	}

	tables := staticmap.Analyze(m)
	domain := sokoban.NewDomain(m, tables)
	initial := sokoban.InitialState(m)
	goal := sokoban.GoalState(m)

	tree := search.NewTree(domain, initial, goal).Strategy(strategy)
	result, err := tree.Search()
	if err != nil {
		if debug {
			fmt.Fprintln(os.Stderr, tree.DebugString())
		}
		return "", err
	}

	actions := make([]sokoban.MacroAction, 0, len(result.Plan))
	for _, a := range result.Plan {
		actions = append(actions, a.(sokoban.MacroAction))
	}
	return plan.Flatten(actions), nil
}
