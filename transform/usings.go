package transform

import (
	"slices"
	"strings"

	"github.com/csforge/csforge/syntax"
)

// UsingsHoister shortens every qualified name in a compilation unit to its
// rightmost part and adds the qualifier to the using directives. Plain usings
// are merged with the collected qualifiers, deduplicated and sorted with
// System namespaces first; aliased and static usings follow unchanged.
//
// Namespace names and the using directives themselves are left alone. Trees
// that are not a compilation unit have nowhere to put usings and are
// returned as they are.
type UsingsHoister struct{}

func (UsingsHoister) Name() string { return "usings-hoister" }

func (UsingsHoister) Rewrite(root syntax.Node) (syntax.Node, error) {
	unit, ok := root.(*syntax.CompilationUnit)
	if !ok {
		return root, nil
	}

	h := &hoister{seen: map[string]bool{}}
	var aliased, static []*syntax.UsingDirective
	for _, u := range unit.Usings {
		switch {
		case u.Alias != nil:
			aliased = append(aliased, u)
		case !u.Static.IsZero():
			static = append(static, u)
		default:
			h.add(u.Name)
		}
	}

	out := *unit
	out.Members = h.members(unit.Members)

	slices.SortFunc(h.names, compareNamespaces)
	out.Usings = make([]*syntax.UsingDirective, 0, len(h.names)+len(aliased)+len(static))
	for _, name := range h.names {
		out.Usings = append(out.Usings, syntax.NewUsing(syntax.MustParseName(name)))
	}
	out.Usings = append(out.Usings, aliased...)
	out.Usings = append(out.Usings, static...)
	return &out, nil
}

type hoister struct {
	names []string
	seen  map[string]bool
}

func (h *hoister) add(n syntax.Name) {
	text := syntax.Text(n)
	if text == "" || h.seen[text] {
		return
	}
	h.seen[text] = true
	h.names = append(h.names, text)
}

func (h *hoister) members(list []syntax.Member) []syntax.Member {
	out := make([]syntax.Member, 0, len(list))
	for _, m := range list {
		if m = h.member(m); m != nil {
			out = append(out, m)
		}
	}
	return out
}

func (h *hoister) member(m syntax.Member) syntax.Member {
	if ns, ok := m.(*syntax.NamespaceDecl); ok {
		c := *ns
		c.Members = h.members(ns.Members)
		return &c
	}
	out := syntax.Apply(m, h.pre, nil)
	if syntax.IsNil(out) {
		return nil
	}
	return out.(syntax.Member)
}

func (h *hoister) pre(c *syntax.Cursor) bool {
	if n, ok := c.Node().(*syntax.QualifiedName); ok {
		h.add(n.Left)
		right := syntax.ReplaceLastToken(n.Right, func(t syntax.Token) syntax.Token {
			return t.WithTrailing(syntax.LastToken(n).Trailing...)
		})
		right = syntax.ReplaceFirstToken(right, func(t syntax.Token) syntax.Token {
			return t.WithLeading(syntax.FirstToken(n).Leading...)
		})
		c.Replace(right)
	}
	return true
}

func isSystem(name string) bool {
	return name == "System" || strings.HasPrefix(name, "System.")
}

func compareNamespaces(a, b string) int {
	switch sa, sb := isSystem(a), isSystem(b); {
	case sa && !sb:
		return -1
	case sb && !sa:
		return 1
	}
	return strings.Compare(a, b)
}
