// Package generator produces C# data types from the exported structs and
// enum-like constant groups of Go packages.
package generator

import (
	"context"
	"go/types"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/builder"
	"github.com/csforge/csforge/internal/codegen"
	"github.com/csforge/csforge/internal/logger"
	"github.com/csforge/csforge/syntax"
	"github.com/csforge/csforge/transform"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/dave/dst/dstutil"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

// Options controls what is generated and how it is laid out.
type Options struct {
	// Namespace prefixes every generated namespace. Each package adds its own
	// Pascal cased name below it.
	Namespace string

	// ValueSemantics makes properties read-only and synthesizes a value
	// constructor, Equals and GetHashCode.
	ValueSemantics bool
	// ToString adds a ToString override, and implies ValueSemantics.
	ToString bool

	Normalizer transform.Normalizer

	// Concurrency bounds how many files are rendered at once. Zero means no limit.
	Concurrency int
}

// GenerationFunction inspects one node of a Go file and records the C#
// declarations it gives rise to.
type GenerationFunction func(m *Manager, state *PackageState, c *dstutil.Cursor)

// Manager keeps the state of a generation run across packages.
type Manager struct {
	opts        Options
	appPath     string
	packages    map[string]*PackageState
	order       []string
	generators  []GenerationFunction
	structs     map[*types.TypeName]string
	enumMembers map[*types.TypeName][]enumMember
}

// PackageState holds what has been generated for a single package.
type PackageState struct {
	pkg       *decorator.Package
	namespace string
	relDir    string
	pending   []pending
}

// pending is a declaration waiting to be rendered.
type pending struct {
	name  string
	build func() (*syntax.CompilationUnit, error)
}

// File is one generated C# source file.
type File struct {
	// Path is relative to the output directory.
	Path    string
	Type    string
	Package string
	Text    string
}

// Load reads the packages matching patterns, relative to dir, with full
// syntax and type information.
func Load(ctx context.Context, dir string, patterns ...string) ([]*decorator.Package, error) {
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	pkgs, err := decorator.Load(&packages.Config{Dir: dir, Context: ctx, Mode: packages.LoadSyntax}, patterns...)
	if err != nil {
		return nil, errors.Wrapf(err, "loading packages from %s", dir)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, errors.WithHint(
				errors.Newf("package %s: %s", pkg.PkgPath, pkg.Errors[0].Error()),
				"the packages must compile before types can be generated from them")
		}
	}
	return pkgs, nil
}

// NewManager prepares a run over pkgs. appPath is the directory the packages
// were loaded from; output paths mirror the package layout below it.
func NewManager(pkgs []*decorator.Package, appPath string, opts Options) *Manager {
	m := &Manager{
		opts:        opts,
		appPath:     appPath,
		packages:    map[string]*PackageState{},
		structs:     map[*types.TypeName]string{},
		enumMembers: map[*types.TypeName][]enumMember{},
		generators:  []GenerationFunction{GenerateStruct, GenerateEnum},
	}
	for _, pkg := range pkgs {
		if _, ok := m.packages[pkg.PkgPath]; ok {
			continue
		}
		m.packages[pkg.PkgPath] = &PackageState{
			pkg:       pkg,
			namespace: m.namespaceFor(pkg),
			relDir:    m.relativeDir(pkg),
		}
		m.order = append(m.order, pkg.PkgPath)
	}
	slices.Sort(m.order)
	return m
}

func (m *Manager) namespaceFor(pkg *decorator.Package) string {
	ns := codegen.Namespace(pkg.Name)
	if m.opts.Namespace != "" {
		ns = m.opts.Namespace + "." + ns
	}
	return ns
}

func (m *Manager) relativeDir(pkg *decorator.Package) string {
	root, err := filepath.Abs(m.appPath)
	if err != nil || pkg.Dir == "" {
		return pkg.Name
	}
	rel, err := filepath.Rel(root, pkg.Dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return pkg.Name
	}
	return rel
}

// Generate runs every generation function over every file and renders the
// results. Files come back sorted by path.
func (m *Manager) Generate(ctx context.Context, generators ...GenerationFunction) ([]File, error) {
	if len(generators) == 0 {
		generators = m.generators
	}
	m.scan()

	var jobs []job
	for _, path := range m.order {
		state := m.packages[path]
		state.pending = nil
		logger.Logger.Debugw("generating package", "package", path, "namespace", state.namespace)
		for _, file := range state.pkg.Syntax {
			dstutil.Apply(file, skipFunctions, func(c *dstutil.Cursor) bool {
				for _, gen := range generators {
					gen(m, state, c)
				}
				return true
			})
		}
		for _, p := range state.pending {
			jobs = append(jobs, job{state: state, pending: p})
		}
	}
	return m.render(ctx, jobs)
}

type job struct {
	state   *PackageState
	pending pending
}

// render builds each pending declaration on its own goroutine. Builders are
// never shared between jobs.
func (m *Manager) render(ctx context.Context, jobs []job) ([]File, error) {
	files := make([]File, len(jobs))
	g, ctx := errgroup.WithContext(ctx)
	if m.opts.Concurrency > 0 {
		g.SetLimit(m.opts.Concurrency)
	}
	for i, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			unit, err := j.pending.build()
			if err != nil {
				return errors.Wrapf(err, "generating %s.%s", j.state.pkg.PkgPath, j.pending.name)
			}
			files[i] = File{
				Path:    filepath.Join(j.state.relDir, j.pending.name+".cs"),
				Type:    j.pending.name,
				Package: j.state.pkg.PkgPath,
				Text:    syntax.Render(unit),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortFunc(files, func(a, b File) int { return strings.Compare(a.Path, b.Path) })
	return files, nil
}

func skipFunctions(c *dstutil.Cursor) bool {
	_, fn := c.Node().(*dst.FuncDecl)
	return !fn
}

// scan records every type that will be generated so that fields can refer
// to one another regardless of declaration order.
func (m *Manager) scan() {
	clear(m.structs)
	clear(m.enumMembers)
	for _, path := range m.order {
		state := m.packages[path]
		for _, file := range state.pkg.Syntax {
			for _, decl := range file.Decls {
				gen, ok := decl.(*dst.GenDecl)
				if !ok {
					continue
				}
				for _, spec := range gen.Specs {
					if ts, ok := spec.(*dst.TypeSpec); ok {
						if obj := m.structType(state, ts); obj != nil {
							m.structs[obj] = state.namespace + "." + obj.Name()
						}
					}
				}
			}
		}
		m.scanEnums(state)
	}
}

// mapperFor returns a type mapper that names types of the same package
// without their namespace.
func (m *Manager) mapperFor(state *PackageState) codegen.TypeMapper {
	known := make(map[*types.TypeName]string, len(m.structs)+len(m.enumMembers))
	add := func(obj *types.TypeName, qualified string) {
		if obj.Pkg() != nil && obj.Pkg().Path() == state.pkg.PkgPath {
			known[obj] = obj.Name()
			return
		}
		known[obj] = qualified
	}
	for obj, name := range m.structs {
		add(obj, name)
	}
	for obj := range m.enumMembers {
		add(obj, m.packageNamespace(obj)+"."+obj.Name())
	}
	return codegen.TypeMapper{Known: known}
}

func (m *Manager) packageNamespace(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return m.opts.Namespace
	}
	if state, ok := m.packages[obj.Pkg().Path()]; ok {
		return state.namespace
	}
	return m.opts.Namespace
}

// typeBuilder returns a builder for a type of the package, with the layout
// rewriters every generated type gets.
func (m *Manager) typeBuilder(state *PackageState, name string) *builder.TypeBuilder {
	return builder.NewType(name).Public().
		Namespace(state.namespace).
		HoistUsings().
		NormalizeWhitespaceWith(m.opts.Normalizer)
}

func (m *Manager) add(state *PackageState, name string, build func() (*syntax.CompilationUnit, error)) {
	state.pending = append(state.pending, pending{name: name, build: build})
}
