// Package graph provides a generic undirected adjacency-list graph.
// These are engine-level constructs usable by any tile-based game.
package graph

import (
	"github.com/charmbracelet/log"
	"github.com/zyedidia/generic/mapset"
)

// Graph is an undirected graph over comparable node values.
// Edges are stored in both directions; neighbour lists keep insertion
// order so traversals are deterministic for a deterministic caller.
//
// Misuse (adding a duplicate node, adding an edge to a missing node,
// querying a missing node) is never fatal: the operation is refused,
// a warning is logged, and the returned bool reports the refusal.
type Graph[N comparable] struct {
	adjacency map[N][]N
	order     []N // node keys in insertion order
}

// New creates an empty graph.
func New[N comparable]() *Graph[N] {
	return &Graph[N]{
		adjacency: make(map[N][]N),
	}
}

// AddNode adds n with no neighbours. Adding a node twice is refused
// with a warning rather than treated as an error.
func (g *Graph[N]) AddNode(n N) bool {
	if _, found := g.adjacency[n]; found {
		log.Warn("graph: node already present", "node", n)
		return false
	}
	g.adjacency[n] = nil
	g.order = append(g.order, n)
	return true
}

// AddEdge connects a and b in both directions. Both endpoints must have
// been added first; otherwise the edge is refused with a warning.
// The graph does not deduplicate parallel edges, so callers must not
// add the same pair twice.
func (g *Graph[N]) AddEdge(a, b N) bool {
	if _, found := g.adjacency[a]; !found {
		log.Warn("graph: edge endpoint not present", "node", a)
		return false
	}
	if _, found := g.adjacency[b]; !found {
		log.Warn("graph: edge endpoint not present", "node", b)
		return false
	}
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
	return true
}

// Has reports whether n is a node of the graph.
func (g *Graph[N]) Has(n N) bool {
	_, found := g.adjacency[n]
	return found
}

// Neighbours returns the live neighbour list of n. Mutating the returned
// slice mutates the graph, so callers iterating while mutating must copy
// first. The bool distinguishes "node absent" (false) from "node present
// with zero neighbours" (true with an empty list).
func (g *Graph[N]) Neighbours(n N) ([]N, bool) {
	neighbours, found := g.adjacency[n]
	if !found {
		log.Warn("graph: neighbour query on missing node", "node", n)
		return nil, false
	}
	return neighbours, true
}

// Nodes returns a snapshot of all node keys in insertion order.
func (g *Graph[N]) Nodes() []N {
	nodes := make([]N, len(g.order))
	copy(nodes, g.order)
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph[N]) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph[N]) EdgeCount() int {
	total := 0
	for _, neighbours := range g.adjacency {
		total += len(neighbours)
	}
	return total / 2
}

// RemoveNodeIfConnected removes target only if every other node stays
// reachable from anchor afterwards. On refusal the graph is unchanged
// and false is returned. This is the primitive that lets room pruning
// never produce an unreachable sub-dungeon.
func (g *Graph[N]) RemoveNodeIfConnected(target, anchor N) bool {
	if !g.Has(target) || !g.Has(anchor) {
		log.Warn("graph: removal with missing node", "target", target, "anchor", anchor)
		return false
	}
	if target == anchor {
		return false
	}

	if g.reachableWithout(anchor, target) != g.NodeCount()-1 {
		return false
	}

	// Strip target from every neighbour's list, then drop it.
	for _, neighbour := range g.adjacency[target] {
		g.adjacency[neighbour] = withoutNode(g.adjacency[neighbour], target)
	}
	delete(g.adjacency, target)
	g.order = withoutNode(g.order, target)
	return true
}

// reachableWithout counts the nodes reachable from start while treating
// excluded as removed. Visitation order does not affect the count, so a
// plain stack walk is fine.
func (g *Graph[N]) reachableWithout(start, excluded N) int {
	visited := mapset.New[N]()
	stack := []N{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == excluded || visited.Has(current) {
			continue
		}
		visited.Put(current)

		for _, neighbour := range g.adjacency[current] {
			if neighbour != excluded && !visited.Has(neighbour) {
				stack = append(stack, neighbour)
			}
		}
	}

	return visited.Size()
}

// withoutNode returns nodes with every occurrence of n removed.
func withoutNode[N comparable](nodes []N, n N) []N {
	kept := nodes[:0]
	for _, candidate := range nodes {
		if candidate != n {
			kept = append(kept, candidate)
		}
	}
	return kept
}
