package syntax

import (
	"reflect"

	"github.com/cockroachdb/errors"
)

// visitor carries the callbacks used by rebuild. node is called for every
// non-nil child and may return nil to delete it; token is called for every
// token, present or not.
type visitor struct {
	node  func(Node) Node
	token func(Token) Token
}

func (v *visitor) tok(t Token) Token {
	if v.token == nil {
		return t
	}
	return v.token(t)
}

func (v *visitor) toks(list []Token) []Token {
	if list == nil {
		return nil
	}
	out := make([]Token, 0, len(list))
	for _, t := range list {
		if t = v.tok(t); !t.IsZero() {
			out = append(out, t)
		}
	}
	return out
}

// one visits a single optional child. A replacement of the wrong shape is a
// programming error.
func one[T Node](v *visitor, n T) T {
	var zero T
	if IsNil(n) {
		return zero
	}
	out := v.node(n)
	if IsNil(out) {
		return zero
	}
	t, ok := out.(T)
	if !ok {
		panic(errors.AssertionFailedf("cannot replace %s with %s in a %s slot",
			n.Kind(), out.Kind(), reflect.TypeFor[T]()))
	}
	return t
}

// many visits a child list, dropping deleted elements.
func many[T Node](v *visitor, list []T) []T {
	if list == nil {
		return nil
	}
	out := make([]T, 0, len(list))
	for _, n := range list {
		if t := one(v, n); !IsNil(t) {
			out = append(out, t)
		}
	}
	return out
}

// Cursor describes the node being visited by Apply.
type Cursor struct {
	node    Node
	parent  Node
	deleted bool
}

// Node returns the current node. After a Replace it returns the replacement.
func (c *Cursor) Node() Node { return c.node }

// Parent returns the parent as it was before its children were visited, or
// nil at the root.
func (c *Cursor) Parent() Node { return c.parent }

// Replace substitutes n for the current node. A replacement made in pre is
// traversed instead of the original.
func (c *Cursor) Replace(n Node) {
	c.node = n
	c.deleted = IsNil(n)
}

// Delete removes the current node from its parent. Deleting a required child
// leaves the slot empty.
func (c *Cursor) Delete() {
	c.node = nil
	c.deleted = true
}

// ApplyFunc is called by Apply for each node.
type ApplyFunc func(*Cursor) bool

// Apply traverses the tree rooted at root depth-first and returns the
// rewritten tree. Every visited node is copied, root is never modified.
//
// pre is called before the children of a node are visited; if it returns
// false the children and post are skipped for that node. post is called after
// the children; if it returns false the traversal stops and the tree rebuilt
// so far is returned. Either callback may be nil.
func Apply(root Node, pre, post ApplyFunc) Node {
	if IsNil(root) {
		return nil
	}
	a := &applier{pre: pre, post: post}
	return a.visit(root)
}

type applier struct {
	pre, post ApplyFunc
	parents   []Node
	aborted   bool
}

func (a *applier) visit(n Node) Node {
	if a.aborted {
		return n
	}
	c := &Cursor{node: n}
	if len(a.parents) > 0 {
		c.parent = a.parents[len(a.parents)-1]
	}
	if a.pre != nil && !a.pre(c) {
		if c.deleted {
			return nil
		}
		return c.node
	}
	if c.deleted {
		return nil
	}
	out := c.node.rebuild(&visitor{node: func(child Node) Node {
		return a.child(c.node, child)
	}})
	c.node = out
	if a.aborted {
		return c.node
	}
	if a.post != nil && !a.post(c) {
		// remaining nodes are returned as they are
		a.aborted = true
	}
	if c.deleted {
		return nil
	}
	return c.node
}

func (a *applier) child(parent, n Node) Node {
	a.parents = append(a.parents, parent)
	defer func() { a.parents = a.parents[:len(a.parents)-1] }()
	return a.visit(n)
}

// Inspect calls f for every node in depth-first order. If f returns false the
// children of that node are skipped.
func Inspect(root Node, f func(Node) bool) {
	Apply(root, func(c *Cursor) bool { return f(c.Node()) }, nil)
}

// MapTokens returns a copy of root with f applied to every token.
func MapTokens(root Node, f func(Token) Token) Node {
	if IsNil(root) {
		return nil
	}
	var v visitor
	v = visitor{
		token: f,
		node:  func(n Node) Node { return n.rebuild(&v) },
	}
	return root.rebuild(&v)
}

// FirstToken returns the first present token of n in source order.
func FirstToken(n Node) Token {
	var first Token
	found := false
	walkTokens(n, func(t Token) Token {
		if !found && !t.IsZero() {
			first, found = t, true
		}
		return t
	})
	return first
}

// LastToken returns the last present token of n in source order.
func LastToken(n Node) Token {
	var last Token
	walkTokens(n, func(t Token) Token {
		if !t.IsZero() {
			last = t
		}
		return t
	})
	return last
}

// ReplaceFirstToken returns a copy of n whose first present token is f(token).
func ReplaceFirstToken[N Node](n N, f func(Token) Token) N {
	done := false
	return mapAs(n, func(t Token) Token {
		if done || t.IsZero() {
			return t
		}
		done = true
		return f(t)
	})
}

// ReplaceLastToken returns a copy of n whose last present token is f(token).
func ReplaceLastToken[N Node](n N, f func(Token) Token) N {
	total := 0
	walkTokens(n, func(t Token) Token {
		if !t.IsZero() {
			total++
		}
		return t
	})
	seen := 0
	return mapAs(n, func(t Token) Token {
		if t.IsZero() {
			return t
		}
		seen++
		if seen == total {
			return f(t)
		}
		return t
	})
}

func mapAs[N Node](n N, f func(Token) Token) N {
	if IsNil(n) {
		return n
	}
	return MapTokens(n, f).(N)
}

func walkTokens(n Node, f func(Token) Token) {
	if !IsNil(n) {
		MapTokens(n, f)
	}
}
