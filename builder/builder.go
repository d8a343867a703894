// Package builder provides fluent builders for C# declarations. Each builder
// holds the pieces of one declaration, produces a fresh syntax tree from
// them on Build, and threads that tree through its own rewriter pipeline.
package builder

import (
	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
)

// core is embedded by every builder. B is the concrete builder type, so the
// promoted methods keep the chain on the outer builder.
type core[B any] struct {
	self      B
	rewriters transform.Pipeline
	err       error
}

// WithRewriter registers r to run after the rewriters already added.
func (c *core[B]) WithRewriter(r transform.Rewriter) B {
	c.rewriters.Append(r)
	return c.self
}

// WithRewriterPriority registers r at an explicit priority. Lower runs first.
func (c *core[B]) WithRewriterPriority(r transform.Rewriter, priority int) B {
	c.rewriters.Add(r, priority)
	return c.self
}

// NormalizeWhitespace lays out the output with default indentation once all
// other rewriters have run.
func (c *core[B]) NormalizeWhitespace() B {
	return c.NormalizeWhitespaceWith(transform.Normalizer{})
}

// NormalizeWhitespaceWith is NormalizeWhitespace with explicit options.
func (c *core[B]) NormalizeWhitespaceWith(n transform.Normalizer) B {
	c.rewriters.Add(n, transform.NormalizerPriority)
	return c.self
}

// RemoveWhitespace strips formatting from the output.
func (c *core[B]) RemoveWhitespace() B {
	c.rewriters.Add(transform.Stripper{}, transform.StripperPriority)
	return c.self
}

// Rewriters lists the registered rewriters in the order Build applies them.
func (c *core[B]) Rewriters() []string {
	return c.rewriters.Names()
}

// fail records the first error, which Build then returns.
func (c *core[B]) fail(err error) {
	if c.err == nil && err != nil {
		c.err = err
	}
}

func (c *core[B]) resetCore() {
	c.rewriters.Reset()
	c.err = nil
}

// finish runs the pipeline over a freshly built node and narrows the result
// back to its declared type. A deleted tree yields the zero value.
func finish[N syntax.Node](p *transform.Pipeline, n N) (N, error) {
	var zero N
	out, err := p.Run(n)
	if err != nil {
		return zero, err
	}
	if syntax.IsNil(out) {
		return zero, nil
	}
	typed, ok := out.(N)
	if !ok {
		return zero, errors.AssertionFailedf("rewriters turned %s into %s", n.Kind(), out.Kind())
	}
	return typed, nil
}
