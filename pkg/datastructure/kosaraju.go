package datastructure

import (
	"sort"

	"github.com/lintang-b-s/wayfinder/pkg/util"
)

// StronglyConnectedComponents. kosaraju's algorithm over the directed edges of g. a graph built from symmetric edges
// has one component per connected part of the floor plan. each component is sorted by id, components are ordered by
// their smallest id.
func (g *Graph) StronglyConnectedComponents() [][]Index {
	ids := g.GetNodeIDs()

	reverseAdj := make(map[Index][]Index, len(ids))
	for _, u := range ids {
		for _, e := range g.nodes[u].edges {
			reverseAdj[e.GetHead()] = append(reverseAdj[e.GetHead()], u)
		}
	}

	order := make([]Index, 0, len(ids))
	visited := make(map[Index]bool, len(ids))
	for _, v := range ids {
		if !visited[v] {
			g.dfs(v, &order, visited, func(u Index, handle func(Index)) {
				for _, e := range g.nodes[u].edges {
					handle(e.GetHead())
				}
			})
		}
	}

	order = util.ReverseG[Index](order)

	// reset visited
	visited = make(map[Index]bool, len(ids))
	components := make([][]Index, 0, 1)

	for _, v := range order {
		if !visited[v] {
			component := make([]Index, 0, 10)
			g.dfs(v, &component, visited, func(u Index, handle func(Index)) {
				for _, w := range reverseAdj[u] {
					handle(w)
				}
			})
			sort.Slice(component, func(i, j int) bool { return component[i] < component[j] })
			components = append(components, component)
		}
	}

	sort.Slice(components, func(i, j int) bool { return components[i][0] < components[j][0] })
	return components
}

func (g *Graph) dfs(v Index, output *[]Index, visited map[Index]bool,
	forNeighbors func(u Index, handle func(Index))) {

	visited[v] = true

	forNeighbors(v, func(w Index) {
		if !visited[w] {
			g.dfs(w, output, visited, forNeighbors)
		}
	})

	*output = append(*output, v)
}
