/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package resolver follows var() references between generated custom
// properties and reports problems a browser would only surface at runtime.
package resolver

import (
	"errors"
	"fmt"

	"bennypowers.dev/tokencss/convert"
)

// ErrCircularReference indicates declarations that reference each other.
var ErrCircularReference = errors.New("circular reference")

// DependencyGraph represents a directed graph of var() dependencies.
type DependencyGraph struct {
	dependencies map[string][]string
	dependents   map[string][]string
	nodes        map[string]bool
	order        []string
}

// BuildDependencyGraph builds a dependency graph from the declarations
// visible in one scope.
func BuildDependencyGraph(decls []convert.Declaration) *DependencyGraph {
	graph := &DependencyGraph{
		dependencies: make(map[string][]string),
		dependents:   make(map[string][]string),
		nodes:        make(map[string]bool),
	}

	for _, d := range decls {
		if !graph.nodes[d.Name] {
			graph.order = append(graph.order, d.Name)
		}
		graph.nodes[d.Name] = true
	}

	for _, d := range decls {
		if d.Target == "" {
			continue
		}
		graph.dependencies[d.Name] = []string{d.Target}
		graph.dependents[d.Target] = append(graph.dependents[d.Target], d.Name)
	}

	return graph
}

// Has reports whether name is declared.
func (g *DependencyGraph) Has(name string) bool {
	return g.nodes[name]
}

// Names returns the declared names in declaration order.
func (g *DependencyGraph) Names() []string {
	return g.order
}

// Dependencies returns the names the given declaration depends on.
func (g *DependencyGraph) Dependencies(name string) []string {
	if deps, ok := g.dependencies[name]; ok {
		return deps
	}
	return []string{}
}

// Dependents returns the names that depend on the given declaration.
func (g *DependencyGraph) Dependents(name string) []string {
	if deps, ok := g.dependents[name]; ok {
		return deps
	}
	return []string{}
}

// HasCycle returns true if the graph contains a circular dependency.
func (g *DependencyGraph) HasCycle() bool {
	return g.FindCycle() != nil
}

// FindCycle returns the first cycle path in declaration order, or nil.
func (g *DependencyGraph) FindCycle() []string {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, node := range g.order {
		if cycle := g.findCycleDFS(node, visited, recStack, nil); cycle != nil {
			return cycle
		}
	}
	return nil
}

func (g *DependencyGraph) findCycleDFS(node string, visited, recStack map[string]bool, path []string) []string {
	if recStack[node] {
		cycleStart := -1
		for i, n := range path {
			if n == node {
				cycleStart = i
				break
			}
		}
		if cycleStart == -1 {
			panic(fmt.Sprintf("cycle detection invariant violated: node %q in recStack but not in path %v", node, path))
		}
		return append(path[cycleStart:], node)
	}
	if visited[node] {
		return nil
	}

	visited[node] = true
	recStack[node] = true
	path = append(path, node)

	for _, dep := range g.dependencies[node] {
		if cycle := g.findCycleDFS(dep, visited, recStack, path); cycle != nil {
			return cycle
		}
	}

	recStack[node] = false
	return nil
}

// TopologicalSort returns declared names in dependency order
// (dependencies first). Returns an error if the graph contains a cycle.
func (g *DependencyGraph) TopologicalSort() ([]string, error) {
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("%w: %v", ErrCircularReference, cycle)
	}

	visited := make(map[string]bool)
	result := []string{}

	for _, node := range g.order {
		if !visited[node] {
			g.topologicalSortDFS(node, visited, &result)
		}
	}

	return result, nil
}

func (g *DependencyGraph) topologicalSortDFS(node string, visited map[string]bool, stack *[]string) {
	visited[node] = true

	for _, dep := range g.dependencies[node] {
		if !visited[dep] && g.nodes[dep] {
			g.topologicalSortDFS(dep, visited, stack)
		}
	}

	*stack = append(*stack, node)
}
