/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert

import (
	"slices"
	"strings"

	"bennypowers.dev/tokencss/token"
)

// rootScoped lists the global categories declared once in :root and
// skipped in theme scopes.
var rootScoped = []string{"spacing", "radius", "container"}

func isRootScoped(key string) bool {
	return slices.Contains(rootScoped, key)
}

// unquoted lists typography categories whose values lose their quote characters.
var unquoted = []string{"font-family", "font-weight"}

// walker emits declarations for one scope.
type walker struct {
	scope *Scope
	theme string
	unit  string
}

// emit declares tok under the normalized name built from parts.
func (w *walker) emit(tok *token.Token, parts ...string) {
	w.emitWith(tok, nil, parts...)
}

// emitWith is emit with an optional rewrite of the rendered value.
func (w *walker) emitWith(tok *token.Token, fix func(string) string, parts ...string) {
	d := Declaration{
		Name:   join(parts...),
		Type:   tok.Type,
		Source: tok.DotPath(),
	}
	if ref, ok := tok.Reference(); ok {
		d.Reference = ref
		d.Target = ReferenceName(ref, w.theme)
		d.Value = ResolveReference(ref, w.theme)
	} else {
		d.Value = RenderValue(tok, w.unit)
	}
	if fix != nil {
		d.Value = fix(d.Value)
	}
	w.scope.declare(d)
}

// walkTokens emits every direct token of cat as prefix-key.
// Nested categories are not descended into.
func (w *walker) walkTokens(cat *token.Category, prefix string, fix func(string) string) {
	for _, e := range cat.Entries() {
		if e.Token != nil {
			w.emitWith(e.Token, fix, prefix, e.Key)
		}
	}
}

// walkBase emits one root-scoped global category (spacing, radius, container).
func (w *walker) walkBase(global *token.Category, name string) {
	cat, ok := global.Category(name)
	if !ok {
		return
	}
	w.walkTokens(cat, name, nil)
}

// walkTypography emits each typography category as typography-category-key.
func (w *walker) walkTypography(mode *token.Category) {
	for _, e := range mode.Entries() {
		w.scope.blank()
		w.scope.comment("Typography - " + e.Key)

		var fix func(string) string
		if slices.Contains(unquoted, Normalize(e.Key)) {
			fix = stripQuotes
		}
		switch {
		case e.Category != nil:
			w.walkTokens(e.Category, "typography-"+e.Key, fix)
		case e.Token != nil:
			w.emitWith(e.Token, fix, "typography", e.Key)
		}
	}
}

// walkThemeColors emits a theme's global color primitives. Color families
// may nest one level deep (e.g. brand.primary.base).
func (w *walker) walkThemeColors(global *token.Category) {
	for _, e := range global.Entries() {
		if isRootScoped(e.Key) {
			continue
		}

		w.scope.blank()
		w.scope.comment(e.Key + " colors")

		switch {
		case e.Category != nil:
			for _, shade := range e.Category.Entries() {
				switch {
				case shade.Token != nil:
					w.emit(shade.Token, e.Key, shade.Key)
				case shade.Category != nil:
					w.walkTokens(shade.Category, e.Key+Separator+shade.Key, nil)
				}
			}
		case e.Token != nil:
			w.emit(e.Token, e.Key)
		}
	}
}

// walkSemantic emits one commented block per semantic category.
func (w *walker) walkSemantic(semantic *token.Category) {
	w.scope.blank()
	w.scope.comment("Semantic tokens")

	w.walkCategories(semantic, func(string) bool { return false })
}

// walkOther emits the theme's remaining same-level categories.
func (w *walker) walkOther(mode *token.Category) {
	w.walkCategories(mode, func(key string) bool {
		return key == "global" || key == "semantic" || isRootScoped(key)
	})
}

// walkCategories emits each child category of parent as a commented
// block of category-key declarations.
func (w *walker) walkCategories(parent *token.Category, skip func(string) bool) {
	for _, e := range parent.Entries() {
		if skip(e.Key) {
			continue
		}

		w.scope.blank()
		w.scope.comment(e.Key + " tokens")

		switch {
		case e.Category != nil:
			w.walkTokens(e.Category, e.Key, nil)
		case e.Token != nil:
			w.emit(e.Token, e.Key)
		}
	}
}

func stripQuotes(s string) string {
	return strings.NewReplacer(`"`, "", "'", "").Replace(s)
}
