package compile

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/builder"
	"github.com/csforge/csforge/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCompiler struct {
	mock.Mock
}

func (m *MockCompiler) Compile(ctx context.Context, name string, units []*syntax.CompilationUnit) (*Artifact, error) {
	args := m.Called(ctx, name, units)
	artifact, _ := args.Get(0).(*Artifact)
	return artifact, args.Error(1)
}

type referencingCompiler struct {
	*MockCompiler
	refs []string
}

func (c referencingCompiler) WithReferences(paths ...string) Compiler {
	c.refs = append(c.refs, paths...)
	c.MockCompiler.MethodCalled("References", c.refs)
	return c
}

func Test_CompilationFailedErrorMessage(t *testing.T) {
	err := &CompilationFailedError{Diagnostics: []Diagnostic{
		{Code: "CS0246", Message: "The type or namespace name 'Foo' could not be found"},
		{Code: "CS0168", Message: "The variable 'x' is declared but never used", Severity: SeverityWarning},
		{Code: "CS1002", Message: "; expected"},
	}}

	want := "dynamic compilation failed" +
		"\n    CS0246: The type or namespace name 'Foo' could not be found" +
		"\n    CS0168: The variable 'x' is declared but never used" +
		"\n    CS1002: ; expected"
	assert.Equal(t, want, err.Error())
	assert.Len(t, err.Errors(), 2)
}

func Test_ParseDiagnostics(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   []Diagnostic
	}{
		{
			name:   "located error",
			output: "/tmp/b/00_Person.cs(3,17): error CS1002: ; expected\n",
			want:   []Diagnostic{{File: "/tmp/b/00_Person.cs", Line: 3, Column: 17, Code: "CS1002", Message: "; expected"}},
		},
		{
			name:   "warning without location",
			output: "warning CS2008: No source files specified.",
			want:   []Diagnostic{{Code: "CS2008", Message: "No source files specified.", Severity: SeverityWarning}},
		},
		{
			name:   "noise is ignored",
			output: "Microsoft (R) Visual C# Compiler\n\nBuild started\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDiagnostics(tt.output))
		})
	}
}

func Test_AssemblyDefineType(t *testing.T) {
	a := NewAssembly("Acme.Dynamic")
	a.DefineType("Person").Property("Name", builder.T("string"))

	units, err := a.Units()
	require.NoError(t, err)
	require.Len(t, units, 1)
	assert.Equal(t,
		"using System;namespace Acme.Dynamic{public class Person{public string Name{get;}}}",
		syntax.Render(units[0]))
}

func Test_AssemblyAnonymousTypes(t *testing.T) {
	a := NewAssembly("Dyn")
	n := 0
	a.newID = func() string {
		n++
		return []string{"", "a1", "b2"}[n]
	}

	first := a.DefineAnonymousType()
	second := a.DefineAnonymousType()
	assert.Equal(t, "AnonymousType_a1", first.Identifier())
	assert.Equal(t, "AnonymousType_b2", second.Identifier())

	generated := NewAssembly("Dyn").DefineAnonymousType()
	assert.Regexp(t, `^AnonymousType_[0-9a-f]{32}$`, generated.Identifier())
}

func Test_AssemblyCompile(t *testing.T) {
	a := NewAssembly("Acme")
	a.DefineType("Person")
	a.DefineType("Order")

	compiler := new(MockCompiler)
	compiler.On("Compile", mock.Anything, "Acme", mock.MatchedBy(func(units []*syntax.CompilationUnit) bool {
		return len(units) == 2
	})).Return(&Artifact{Name: "Acme", Path: "Acme.dll"}, nil)

	artifact, err := a.Compile(context.Background(), compiler)
	require.NoError(t, err)
	assert.Equal(t, "Acme.dll", artifact.Path)
	compiler.AssertExpectations(t)
}

func Test_AssemblyCompilePassesReferences(t *testing.T) {
	a := NewAssembly("Acme").WithReference("System.Runtime.dll", "Acme.Core.dll")
	a.DefineType("Person")

	m := new(MockCompiler)
	m.On("References", []string{"System.Runtime.dll", "Acme.Core.dll"}).Return()
	m.On("Compile", mock.Anything, "Acme", mock.Anything).Return(&Artifact{Name: "Acme"}, nil)

	_, err := a.Compile(context.Background(), referencingCompiler{MockCompiler: m})
	require.NoError(t, err)
	m.AssertExpectations(t)
}

func Test_AssemblyCompileSurfacesFailure(t *testing.T) {
	a := NewAssembly("Acme")
	a.DefineType("Broken")

	failure := &CompilationFailedError{Diagnostics: []Diagnostic{{Code: "CS0001", Message: "boom"}}}
	compiler := new(MockCompiler)
	compiler.On("Compile", mock.Anything, "Acme", mock.Anything).Return(nil, failure)

	_, err := a.Compile(context.Background(), compiler)
	var compileErr *CompilationFailedError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, "CS0001", compileErr.Diagnostics[0].Code)
}

func Test_AssemblyBuildErrorSkipsCompiler(t *testing.T) {
	a := NewAssembly("Acme")
	a.DefineType("Bad").Namespace("Acme..Bad")

	compiler := new(MockCompiler)
	_, err := a.Compile(context.Background(), compiler)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad")
	compiler.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything)
}

// fakeCompiler writes a shell script that prints output and exits with code.
func fakeCompiler(t *testing.T, output string, code int) string {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	script := filepath.Join(t.TempDir(), "csc")
	body := "#!/bin/sh\ncat <<'EOF'\n" + output + "\nEOF\nexit " + strconv.Itoa(code) + "\n"
	require.NoError(t, os.WriteFile(script, []byte(body), 0o755))
	return script
}

func Test_ExecCompiler(t *testing.T) {
	units, err := NewAssembly("Acme").AddType(builder.NewType("Person")).Units()
	require.NoError(t, err)

	tests := []struct {
		name     string
		output   string
		code     int
		wantErr  bool
		warnings int
	}{
		{name: "success", output: "Compilation succeeded", code: 0},
		{name: "warnings", output: "00_Person.cs(1,1): warning CS0105: duplicate using", code: 0, warnings: 1},
		{name: "errors", output: "00_Person.cs(1,7): error CS1001: Identifier expected", code: 1, wantErr: true},
		{name: "exit without diagnostics", output: "crashed", code: 2, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			c := ExecCompiler{Command: fakeCompiler(t, tt.output, tt.code), Dir: dir, Timeout: 10 * time.Second}
			artifact, err := c.Compile(context.Background(), "Acme", units)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, "Acme.dll"), artifact.Path)
			assert.Len(t, artifact.Warnings, tt.warnings)
			assert.FileExists(t, filepath.Join(dir, "00_Person.cs"))
		})
	}
}

func Test_ExecCompilerErrorsAreDiagnostics(t *testing.T) {
	units, err := NewAssembly("Acme").AddType(builder.NewType("Person")).Units()
	require.NoError(t, err)

	out := "00_Person.cs(1,7): error CS1001: Identifier expected\n00_Person.cs(1,9): error CS1514: { expected"
	c := ExecCompiler{Command: fakeCompiler(t, out, 1)}
	_, err = c.Compile(context.Background(), "Acme", units)

	var compileErr *CompilationFailedError
	require.True(t, errors.As(err, &compileErr))
	assert.Len(t, compileErr.Diagnostics, 2)
	assert.Equal(t, 7, compileErr.Diagnostics[0].Column)
}

func Test_ExecCompilerRequiresInput(t *testing.T) {
	_, err := ExecCompiler{}.Compile(context.Background(), "Acme", nil)
	assert.Error(t, err)

	_, err = ExecCompiler{Command: "csc"}.Compile(context.Background(), "Acme", nil)
	assert.Error(t, err)
}
