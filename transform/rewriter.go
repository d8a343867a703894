// Package transform holds the rewriters applied to built syntax trees and
// the pipeline that orders them.
package transform

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/logger"
	"github.com/csforge/csforge/syntax"
)

const (
	// StripperPriority pins the whitespace stripper just before the printer.
	StripperPriority = 9999
	// NormalizerPriority pins the pretty printer after everything else.
	NormalizerPriority = 10000
)

// Rewriter is a tree-to-tree transformation. Returning a nil node deletes
// the tree. Rewriters must not modify their input.
type Rewriter interface {
	Name() string
	Rewrite(syntax.Node) (syntax.Node, error)
}

// RewriterFunc adapts a plain function to a Rewriter.
type RewriterFunc struct {
	Label string
	Fn    func(syntax.Node) (syntax.Node, error)
}

func (f RewriterFunc) Name() string { return f.Label }

func (f RewriterFunc) Rewrite(n syntax.Node) (syntax.Node, error) { return f.Fn(n) }

// Func returns a named Rewriter calling fn.
func Func(name string, fn func(syntax.Node) (syntax.Node, error)) Rewriter {
	return RewriterFunc{Label: name, Fn: fn}
}

type entry struct {
	rewriter Rewriter
	priority int
}

// Pipeline is an ordered list of rewriters. The zero value is empty and
// ready to use.
type Pipeline struct {
	entries []entry
}

// Add registers r at the given priority. Lower priorities run first; equal
// priorities run in the order they were added.
func (p *Pipeline) Add(r Rewriter, priority int) {
	if r == nil {
		panic(errors.AssertionFailedf("nil rewriter"))
	}
	p.entries = append(p.entries, entry{rewriter: r, priority: priority})
}

// Append registers r with its insertion index as priority.
func (p *Pipeline) Append(r Rewriter) {
	p.Add(r, len(p.entries))
}

// Len returns the number of registered rewriters.
func (p *Pipeline) Len() int { return len(p.entries) }

// Reset removes every rewriter.
func (p *Pipeline) Reset() { p.entries = nil }

// Names lists the rewriters in the order Run applies them.
func (p *Pipeline) Names() []string {
	ordered := p.ordered()
	names := make([]string, len(ordered))
	for i, e := range ordered {
		names[i] = e.rewriter.Name()
	}
	return names
}

func (p *Pipeline) ordered() []entry {
	ordered := slices.Clone(p.entries)
	slices.SortStableFunc(ordered, func(a, b entry) int { return a.priority - b.priority })
	return ordered
}

// Run threads n through every rewriter. It stops at the first error, or when
// a rewriter deletes the tree.
func (p *Pipeline) Run(n syntax.Node) (syntax.Node, error) {
	for _, e := range p.ordered() {
		if syntax.IsNil(n) {
			return nil, nil
		}
		out, err := e.rewriter.Rewrite(n)
		if err != nil {
			return nil, errors.Wrapf(err, "rewriter %s", e.rewriter.Name())
		}
		logger.Logger.Debugw("applied rewriter", "rewriter", e.rewriter.Name(), "priority", e.priority, "root", n.Kind().String())
		n = out
	}
	if syntax.IsNil(n) {
		return nil, nil
	}
	return n, nil
}
