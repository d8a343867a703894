package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const shopPath = "../generator/testdata/shop"

func TestValidateOutputFile(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid", path: filepath.Join(dir, "out.diff")},
		{name: "wrong extension", path: filepath.Join(dir, "out.patch"), wantErr: true},
		{name: "missing directory", path: filepath.Join(dir, "missing", "out.diff"), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOutputFile(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateCmd_WritesFiles(t *testing.T) {
	color.NoColor = true
	out := t.TempDir()

	_, stderr, err := execute(t, "generate", "--path", shopPath, "--namespace", "Acme", "--out", out)
	require.NoError(t, err)

	order, err := os.ReadFile(filepath.Join(out, "Order.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(order), "namespace Acme.Shop\n")
	assert.FileExists(t, filepath.Join(out, "billing", "Invoice.cs"))
	assert.FileExists(t, filepath.Join(out, "Status.cs"))

	assert.Contains(t, stderr, "csforge WARN: shop/shop.go")
}

func TestGenerateCmd_Options(t *testing.T) {
	out := t.TempDir()

	_, _, err := execute(t, "generate", "--path", shopPath, "--out", out, "--to-string", "--indent", "\t")
	require.NoError(t, err)

	line, err := os.ReadFile(filepath.Join(out, "Line.cs"))
	require.NoError(t, err)
	assert.Contains(t, string(line), "\tpublic class Line\n")
	assert.Contains(t, string(line), "public override string ToString()")
}

func TestGenerateCmd_Diff(t *testing.T) {
	out := t.TempDir()
	diff := filepath.Join(t.TempDir(), "types.diff")

	_, _, err := execute(t, "generate", "--path", shopPath, "--out", out, "--diff", diff)
	require.NoError(t, err)

	text, err := os.ReadFile(diff)
	require.NoError(t, err)
	assert.Contains(t, string(text), "+    public class Line")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing path", args: []string{"generate"}, want: `"path" not set`},
		{name: "invalid path", args: []string{"generate", "--path", "does-not-exist"}, want: "is invalid"},
		{name: "bad diff", args: []string{"generate", "--path", shopPath, "--diff", "types.txt"}, want: ".diff extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
