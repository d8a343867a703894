package compile

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/builder"
	"github.com/csforge/csforge/syntax"
	"github.com/google/uuid"
)

// Assembly collects type definitions that are compiled together.
type Assembly struct {
	Name string

	// DefaultNamespace is given to every type defined through DefineType.
	DefaultNamespace string

	references []string
	types      []*builder.TypeBuilder
	newID      func() string
}

// NewAssembly returns an empty assembly whose default namespace is name.
func NewAssembly(name string) *Assembly {
	return &Assembly{
		Name:             name,
		DefaultNamespace: name,
		newID:            func() string { return strings.ReplaceAll(uuid.NewString(), "-", "") },
	}
}

// DefineType adds a public class in the default namespace with a using for
// System and returns its builder for further configuration.
func (a *Assembly) DefineType(name string) *builder.TypeBuilder {
	b := builder.NewType(name).Public().Namespace(a.DefaultNamespace).Using("System")
	a.types = append(a.types, b)
	return b
}

// DefineAnonymousType is DefineType with a generated unique name.
func (a *Assembly) DefineAnonymousType() *builder.TypeBuilder {
	return a.DefineType("AnonymousType_" + a.newID())
}

// AddType adds an externally configured builder as is.
func (a *Assembly) AddType(b *builder.TypeBuilder) *Assembly {
	a.types = append(a.types, b)
	return a
}

// WithReference records assemblies the compiler must reference.
func (a *Assembly) WithReference(paths ...string) *Assembly {
	a.references = append(a.references, paths...)
	return a
}

func (a *Assembly) References() []string {
	return append([]string(nil), a.references...)
}

func (a *Assembly) Types() []*builder.TypeBuilder {
	return append([]*builder.TypeBuilder(nil), a.types...)
}

// Units builds one compilation unit per defined type. A type whose rewriters
// delete it contributes nothing.
func (a *Assembly) Units() ([]*syntax.CompilationUnit, error) {
	units := make([]*syntax.CompilationUnit, 0, len(a.types))
	for _, b := range a.types {
		unit, err := b.BuildCompilationUnit()
		if err != nil {
			return nil, errors.Wrapf(err, "building type %s", b.Identifier())
		}
		if unit != nil {
			units = append(units, unit)
		}
	}
	return units, nil
}

// Compile builds every type and hands the units to c.
func (a *Assembly) Compile(ctx context.Context, c Compiler) (*Artifact, error) {
	units, err := a.Units()
	if err != nil {
		return nil, err
	}
	if r, ok := c.(Referencer); ok && len(a.references) > 0 {
		c = r.WithReferences(a.References()...)
	}
	return c.Compile(ctx, a.Name, units)
}

// Referencer is implemented by compilers that accept assembly references.
// WithReferences returns a copy and leaves the receiver unchanged.
type Referencer interface {
	WithReferences(paths ...string) Compiler
}
