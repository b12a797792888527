package pipeline

import (
	"github.com/gantrybuild/gantry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validate checks the node collection for duplicate activity names, edges
// pointing outside the collection, and dependency cycles.
func Validate(nodes []*Node) error {
	known := make(map[*Node]struct{}, len(nodes))
	names := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := names[n.ActivityName()]; dup {
			return zerr.With(domain.ErrDuplicateActivity, "activity", n.ActivityName())
		}
		names[n.ActivityName()] = struct{}{}
		known[n] = struct{}{}
	}

	visited := make(map[*Node]int, len(nodes)) // 0: unvisited, 1: visiting, 2: visited
	var path []*Node

	var visit func(n *Node) error
	visit = func(n *Node) error {
		visited[n] = 1
		path = append(path, n)

		for _, dep := range n.Dependencies() {
			if _, ok := known[dep]; !ok {
				return zerr.With(zerr.With(domain.ErrUnknownDependency, "activity", n.ActivityName()), "dependency", dep.ActivityName())
			}
			if visited[dep] == 1 {
				return buildCycleError(path, dep)
			}
			if visited[dep] == 0 {
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		visited[n] = 2
		path = path[:len(path)-1]
		return nil
	}

	for _, n := range nodes {
		if visited[n] == 0 {
			if err := visit(n); err != nil {
				return err
			}
		}
	}
	return nil
}

// buildCycleError constructs an error with cycle path metadata.
func buildCycleError(path []*Node, dep *Node) error {
	cyclePath := ""
	start := 0
	for i, n := range path {
		if n == dep {
			start = i
			break
		}
	}
	for i := start; i < len(path); i++ {
		cyclePath += path[i].ActivityName() + " -> "
	}
	cyclePath += dep.ActivityName()
	return zerr.With(domain.ErrCycleDetected, "cycle", cyclePath)
}

// TopoOrder returns the activity names in a dependency-respecting order.
// Ties follow the input order of nodes, so the result is deterministic for
// a given pipeline definition. It assumes Validate passed.
func TopoOrder(nodes []*Node) []string {
	inDegree := make(map[*Node]int, len(nodes))
	dependents := make(map[*Node][]*Node, len(nodes))
	for _, n := range nodes {
		deps := n.Dependencies()
		inDegree[n] = len(deps)
		for _, dep := range deps {
			dependents[dep] = append(dependents[dep], n)
		}
	}

	var ready []*Node
	for _, n := range nodes {
		if inDegree[n] == 0 {
			ready = append(ready, n)
		}
	}

	order := make([]string, 0, len(nodes))
	for len(ready) > 0 {
		n := ready[0]
		ready = ready[1:]
		order = append(order, n.ActivityName())

		for _, dependent := range dependents[n] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}
	return order
}
