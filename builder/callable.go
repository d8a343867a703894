package builder

import (
	"github.com/csforge/csforge/syntax"
)

// callable is the part constructors and methods share: parameters and a
// body, which is either a block, an expression or absent.
type callable[B any] struct {
	member[B]
	parameters     []*ParameterBuilder
	body           *BodyBuilder
	expressionBody *syntax.ArrowExpression
}

func (c *callable[B]) initCallable(self B, name string) {
	c.init(self, name)
	c.body = NewBody()
}

// HasParameter appends a parameter.
func (c *callable[B]) HasParameter(name string, typ syntax.Type) B {
	c.Parameter(name, typ)
	return c.self
}

// Parameter appends a parameter and returns its builder.
func (c *callable[B]) Parameter(name string, typ syntax.Type) *ParameterBuilder {
	p := NewParameter(name, typ)
	c.parameters = append(c.parameters, p)
	return p
}

func (c *callable[B]) WithParameter(p *ParameterBuilder) B {
	c.parameters = append(c.parameters, p)
	return c.self
}

func (c *callable[B]) WithoutParameters() B {
	c.parameters = nil
	return c.self
}

// Body returns the body builder, creating an empty block body if the member
// had none.
func (c *callable[B]) Body() *BodyBuilder {
	if c.body == nil {
		c.body = NewBody()
	}
	c.expressionBody = nil
	return c.body
}

// WithBody passes the body builder to fn.
func (c *callable[B]) WithBody(fn func(*BodyBuilder)) B {
	fn(c.Body())
	return c.self
}

// WithEmptyBody replaces the body with an empty block.
func (c *callable[B]) WithEmptyBody() B {
	c.body = NewBody()
	c.expressionBody = nil
	return c.self
}

// WithExpressionBody replaces the body with "=> expr;".
func (c *callable[B]) WithExpressionBody(expr syntax.Expr) B {
	c.body = nil
	c.expressionBody = syntax.NewArrowExpression(expr)
	return c.self
}

// WithoutBody drops the body; the declaration ends with a semicolon.
func (c *callable[B]) WithoutBody() B {
	c.body = nil
	c.expressionBody = nil
	return c.self
}

func (c *callable[B]) loadCallable(identifier syntax.Token, decl syntax.Modified, params *syntax.ParameterList, body *syntax.Block, arrow *syntax.ArrowExpression) {
	c.load(identifier, decl)
	c.parameters = nil
	if params != nil {
		for _, p := range params.Parameters {
			c.parameters = append(c.parameters, ParameterFrom(p))
		}
	}
	c.body = nil
	if body != nil {
		c.body = BodyFrom(body)
	}
	c.expressionBody = arrow
}

func (c *callable[B]) resetCallable() {
	c.resetMember()
	c.parameters = nil
	c.body = NewBody()
	c.expressionBody = nil
}

type builtBody struct {
	block     *syntax.Block
	arrow     *syntax.ArrowExpression
	semicolon syntax.Token
}

func (c *callable[B]) build() (*syntax.ParameterList, builtBody, error) {
	var out builtBody
	list := syntax.NewParameterList()
	for _, p := range c.parameters {
		param, err := p.Build()
		if err != nil {
			return nil, out, err
		}
		if param != nil {
			list.Parameters = append(list.Parameters, param)
		}
	}
	if c.body != nil {
		block, err := c.body.Build()
		if err != nil {
			return nil, out, err
		}
		out.block = block
	}
	out.arrow = c.expressionBody
	if out.block == nil {
		out.semicolon = syntax.Tok(syntax.SemicolonToken)
	}
	return list, out, nil
}
