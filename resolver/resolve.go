/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package resolver

import (
	"bennypowers.dev/tokencss/convert"
)

// Visible returns the declarations in effect inside scope: the root
// declarations, with names the scope redeclares taking the scope's value,
// followed by the scope's own names. For the root scope itself (or a nil
// scope) it returns the root declarations.
func Visible(root, scope *convert.Scope) []convert.Declaration {
	if scope == nil || scope == root {
		return root.Declarations()
	}

	out := make([]convert.Declaration, 0, len(root.Declarations())+len(scope.Declarations()))
	for _, d := range root.Declarations() {
		if override, ok := scope.Lookup(d.Name); ok {
			d = override
		}
		out = append(out, d)
	}
	for _, d := range scope.Declarations() {
		if _, ok := root.Lookup(d.Name); !ok {
			out = append(out, d)
		}
	}
	return out
}

// ResolveValues returns the literal value each declaration resolves to
// after following var() references. Declarations whose chain ends at an
// undeclared name are absent from the result.
func ResolveValues(decls []convert.Declaration) (map[string]string, error) {
	graph := BuildDependencyGraph(decls)

	sortedNames, err := graph.TopologicalSort()
	if err != nil {
		return nil, err
	}

	byName := make(map[string]convert.Declaration, len(decls))
	for _, d := range decls {
		byName[d.Name] = d
	}

	resolved := make(map[string]string, len(decls))
	for _, name := range sortedNames {
		d := byName[name]
		if d.Target == "" {
			resolved[name] = d.Value
			continue
		}
		if v, ok := resolved[d.Target]; ok {
			resolved[name] = v
		}
	}

	return resolved, nil
}
