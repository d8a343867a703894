package generator

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/csforge/csforge/internal/comment"
	"github.com/dave/dst"
	"github.com/dave/dst/dstutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, opts Options) map[string]File {
	t.Helper()
	pkgs, err := Load(context.Background(), "testdata/shop", "./...")
	require.NoError(t, err)

	files, err := NewManager(pkgs, "testdata/shop", opts).Generate(context.Background())
	require.NoError(t, err)

	byPath := map[string]File{}
	for _, f := range files {
		byPath[filepath.ToSlash(f.Path)] = f
	}
	return byPath
}

func Test_GenerateFileSet(t *testing.T) {
	files := generate(t, Options{Namespace: "Acme"})

	var paths []string
	for p := range files {
		paths = append(paths, p)
	}
	assert.ElementsMatch(t,
		[]string{"Audited.cs", "Line.cs", "Order.cs", "Page.cs", "Priority.cs", "Status.cs", "billing/Invoice.cs"},
		paths)
	assert.Equal(t, "example.com/shop/billing", files["billing/Invoice.cs"].Package)
}

func Test_GenerateStruct(t *testing.T) {
	files := generate(t, Options{Namespace: "Acme"})

	want := "namespace Acme.Shop\n" +
		"{\n" +
		"    /// <summary>\n" +
		"    /// Line is a single article of an order.\n" +
		"    /// </summary>\n" +
		"    public class Line\n" +
		"    {\n" +
		"        public string Sku { get; set; }\n" +
		"        public int Qty { get; set; }\n" +
		"    }\n" +
		"}\n"
	assert.Equal(t, want, files["Line.cs"].Text)
}

func Test_GenerateStructFields(t *testing.T) {
	order := generate(t, Options{Namespace: "Acme"})["Order.cs"].Text

	tests := []struct {
		name string
		want string
	}{
		{name: "framework usings first", want: "using System;\nusing System.Collections.Generic;\nusing Acme.Billing;\n"},
		{name: "field doc", want: "        /// ID is assigned on checkout.\n"},
		{name: "long", want: "public long ID { get; set; }"},
		{name: "enum", want: "public Status Status { get; set; }"},
		{name: "small enum", want: "public Priority Priority { get; set; }"},
		{name: "time", want: "public DateTime Placed { get; set; }"},
		{name: "slice of generated type", want: "public Line[] Lines { get; set; }"},
		{name: "map", want: "public Dictionary<string, string> Tags { get; set; }"},
		{name: "other package", want: "public Invoice Invoice { get; set; }"},
		{name: "renamed by tag", want: "public double Amount { get; set; }"},
		{name: "warning", want: "// csforge WARN: field Notify was not generated\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, order, tt.want)
		})
	}
	assert.NotContains(t, order, "Internal")
	assert.NotContains(t, order, "secret")
	assert.NotContains(t, order, "Notify {")
}

func Test_GenerateEmbeddedAndGeneric(t *testing.T) {
	files := generate(t, Options{Namespace: "Acme"})

	audited := files["Audited.cs"].Text
	assert.Contains(t, audited, "public class Audited : Order\n")
	assert.Contains(t, audited, "public string By { get; set; }")

	page := files["Page.cs"].Text
	assert.Contains(t, page, "public class Page<T>\n")
	assert.Contains(t, page, "public T[] Items { get; set; }")
	assert.Contains(t, page, "public int? Next { get; set; }")
}

func Test_GenerateEnum(t *testing.T) {
	files := generate(t, Options{Namespace: "Acme"})

	status := files["Status.cs"].Text
	assert.Contains(t, status, "/// Status tracks an order through fulfilment.\n")
	assert.Contains(t, status, "    public enum Status\n")
	assert.Contains(t, status, "/// StatusOpen orders can still change.\n")
	assert.Contains(t, status, "        Open = 0,\n")
	assert.Contains(t, status, "        Shipped = 1,\n")
	assert.Contains(t, status, "        Cancelled = 2\n")

	priority := files["Priority.cs"].Text
	assert.Contains(t, priority, "public enum Priority : byte\n")
	assert.Contains(t, priority, "        Low = 1,\n")
	assert.Contains(t, priority, "        High = 2\n")
}

func Test_GenerateValueSemantics(t *testing.T) {
	files := generate(t, Options{Namespace: "Acme", ToString: true})

	line := files["Line.cs"].Text
	assert.Contains(t, line, "public string Sku { get; }")
	assert.Contains(t, line, "public Line(string sku, int qty)")
	assert.Contains(t, line, "public override bool Equals(object obj)")
	assert.Contains(t, line, "public override int GetHashCode()")
	assert.Contains(t, line, "public override string ToString()")
}

func Test_GenerateFunctions(t *testing.T) {
	pkgs, err := Load(context.Background(), "testdata/shop", "./...")
	require.NoError(t, err)

	var visited []string
	record := func(m *Manager, state *PackageState, c *dstutil.Cursor) {
		if ts, ok := c.Node().(*dst.TypeSpec); ok {
			visited = append(visited, ts.Name.Name)
		}
	}

	files, err := NewManager(pkgs, "testdata/shop", Options{}).Generate(context.Background(), GenerateEnum, record)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "Priority.cs", files[0].Path)
	assert.Equal(t, "Status.cs", files[1].Path)
	assert.True(t, strings.HasPrefix(files[1].Text, "namespace Shop\n"))

	// Function bodies are not visited, so Local never shows up.
	assert.ElementsMatch(t, []string{"Invoice", "Status", "Priority", "Line", "Order", "Audited", "Page", "helper"}, visited)
}

func Test_GenerateWarningsReachTheConsole(t *testing.T) {
	color.NoColor = true
	comment.EnableConsolePrinter("shop")
	var out bytes.Buffer
	comment.SetOutput(&out)
	t.Cleanup(func() { comment.SetOutput(os.Stderr) })

	generate(t, Options{})
	comment.WriteAll()
	assert.Contains(t, out.String(), "csforge WARN: shop/shop.go")
	assert.Contains(t, out.String(), "field Notify was not generated\n\tunsupported type chan string: channels have no data shape")
}

func Test_LoadReportsBrokenPackages(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module broken\n\ngo 1.24\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.go"), []byte("package broken\n\nvar x int = \"text\"\n"), 0o644))

	_, err := Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package broken")
}
