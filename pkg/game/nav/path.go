package nav

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"deepdelve/pkg/engine/graph"
	"deepdelve/pkg/engine/pqueue"
	"deepdelve/pkg/engine/world"
)

// Strategy selects the search algorithm used by FindPath.
type Strategy int

const (
	// StrategyAStar is the default: optimal shortest paths via A* with a
	// straight-line heuristic.
	StrategyAStar Strategy = iota

	// StrategyGreedy is a depth-first fallback that follows the most
	// promising neighbour first and keeps the first path it finds. It is
	// cheap and usually decent, but it does NOT guarantee shortest paths.
	StrategyGreedy
)

// String returns the strategy name.
func (s Strategy) String() string {
	if s == StrategyGreedy {
		return "greedy"
	}
	return "astar"
}

// FindPath returns an ordered start-to-goal waypoint list over the
// navigation graph. Start and goal are snapped to their nearest graph
// nodes first. An empty result means "no path": a disconnected graph or
// bad snapping is an expected outcome, not an error.
func FindPath(g *graph.Graph[world.Position], start, goal world.Position, strategy Strategy) []world.Position {
	from, ok := NearestNode(g, start)
	if !ok {
		return nil
	}
	to, ok := NearestNode(g, goal)
	if !ok {
		return nil
	}

	if strategy == StrategyGreedy {
		return greedySearch(g, from, to)
	}
	return astar(g, from, to, world.Position.Dist)
}

// astar is the classic A* loop: pop the open node with the lowest
// f = g + h, finish when the goal pops, otherwise relax each neighbour.
// With the straight-line heuristic (admissible and consistent here) the
// returned path is optimal; with a zero heuristic it degenerates to
// Dijkstra, which the tests use for cross-validation.
func astar(g *graph.Graph[world.Position], start, goal world.Position, heuristic func(a, b world.Position) float64) []world.Position {
	open := pqueue.New[world.Position]()
	open.Enqueue(start, heuristic(start, goal))

	cost := map[world.Position]float64{start: 0}
	parent := make(map[world.Position]world.Position)

	for open.Len() > 0 {
		current, err := open.Dequeue()
		if err != nil {
			// Unreachable: the loop condition guards emptiness.
			return nil
		}

		if current == goal {
			return reconstructPath(parent, start, goal)
		}

		neighbours, ok := g.Neighbours(current)
		if !ok {
			continue
		}
		for _, neighbour := range neighbours {
			tentative := cost[current] + current.Dist(neighbour)
			if best, seen := cost[neighbour]; seen && tentative >= best {
				continue
			}
			cost[neighbour] = tentative
			parent[neighbour] = current

			score := tentative + heuristic(neighbour, goal)
			if !open.Enqueue(neighbour, score) {
				open.UpdatePriority(neighbour, score)
			}
		}
	}

	return nil
}

// reconstructPath walks the parent back-pointers from goal to start and
// reverses the result into start-to-goal order.
func reconstructPath(parent map[world.Position]world.Position, start, goal world.Position) []world.Position {
	path := []world.Position{goal}
	for current := goal; current != start; {
		current = parent[current]
		path = append(path, current)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// greedySearch is the non-optimal depth-first variant: neighbours are
// visited closest-to-goal first and the first route to reach the goal
// wins, with no cost relaxation.
func greedySearch(g *graph.Graph[world.Position], start, goal world.Position) []world.Position {
	visited := mapset.New[world.Position]()

	var walk func(current world.Position) []world.Position
	walk = func(current world.Position) []world.Position {
		if current == goal {
			return []world.Position{current}
		}
		visited.Put(current)

		live, ok := g.Neighbours(current)
		if !ok {
			return nil
		}
		// Copy before sorting: Neighbours returns the live list.
		neighbours := append([]world.Position(nil), live...)
		sort.Slice(neighbours, func(i, j int) bool {
			return neighbours[i].Dist(goal) < neighbours[j].Dist(goal)
		})

		for _, neighbour := range neighbours {
			if visited.Has(neighbour) {
				continue
			}
			if rest := walk(neighbour); rest != nil {
				return append([]world.Position{current}, rest...)
			}
		}
		return nil
	}

	return walk(start)
}
