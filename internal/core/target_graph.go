package core

import (
	"fmt"
	"strings"

	"pkgmanifest/internal/types"
)

type visitState int

const (
	stateUnvisited visitState = iota
	stateVisiting
	stateDone
)

// TargetGraph holds the target-to-target edges of one manifest. Edges to
// dependency products are not part of the graph.
type TargetGraph struct {
	order []string
	edges map[string][]string
}

func NewTargetGraph(targets []types.Target) TargetGraph {
	graph := TargetGraph{
		order: make([]string, 0, len(targets)),
		edges: make(map[string][]string, len(targets)),
	}
	for _, target := range targets {
		graph.order = append(graph.order, target.Name)
		graph.edges[target.Name] = nil
	}
	for _, target := range targets {
		for _, name := range target.ReferencedNames() {
			if _, ok := graph.edges[name]; ok {
				graph.edges[target.Name] = append(graph.edges[target.Name], name)
			}
		}
	}
	return graph
}

// DetectCycle walks every target depth first and returns the first cycle
// found as a path that starts and ends on the same target, or nil.
func (g TargetGraph) DetectCycle() []string {
	states := make(map[string]visitState, len(g.order))
	var stack []string
	var cycle []string

	var visit func(name string) bool
	visit = func(name string) bool {
		states[name] = stateVisiting
		stack = append(stack, name)
		for _, next := range g.edges[name] {
			switch states[next] {
			case stateVisiting:
				cycle = cyclePath(stack, next)
				return true
			case stateUnvisited:
				if visit(next) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		states[name] = stateDone
		return false
	}

	for _, name := range g.order {
		if states[name] == stateUnvisited && visit(name) {
			return cycle
		}
	}
	return nil
}

func cyclePath(stack []string, start string) []string {
	for i, name := range stack {
		if name == start {
			path := append([]string{}, stack[i:]...)
			return append(path, start)
		}
	}
	return []string{start, start}
}

// BuildOrder returns target names with every target after the targets it
// depends on. Independent targets keep their declaration order.
func (g TargetGraph) BuildOrder() ([]string, error) {
	if cycle := g.DetectCycle(); cycle != nil {
		return nil, cycleError(cycle)
	}
	done := make(map[string]bool, len(g.order))
	order := make([]string, 0, len(g.order))
	var visit func(name string)
	visit = func(name string) {
		if done[name] {
			return
		}
		done[name] = true
		for _, next := range g.edges[name] {
			visit(next)
		}
		order = append(order, name)
	}
	for _, name := range g.order {
		visit(name)
	}
	return order, nil
}

func cycleError(cycle []string) error {
	return manifestError(types.ErrorKindCyclicDependency, cycle[0],
		fmt.Sprintf("cyclic target dependency: %s", strings.Join(cycle, " -> ")))
}
