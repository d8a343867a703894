package compile

import (
	"bufio"
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/csforge/csforge/internal/logger"
	"github.com/csforge/csforge/syntax"
)

// DefaultTimeout bounds a compiler run when ExecCompiler.Timeout is zero.
const DefaultTimeout = 2 * time.Minute

// ExecCompiler runs a csc compatible command line compiler. The command is
// invoked as
//
//	Command Args... -nologo -target:library -out:<dir>/<name>.dll [-r:<ref>]... <sources>...
//
// and its output is scanned for "file(line,col): error CS0000: message" lines.
type ExecCompiler struct {
	Command string
	Args    []string

	// Dir receives the sources and the artifact. A temporary directory is
	// created when it is empty and removed again if compilation fails.
	Dir string

	Timeout    time.Duration
	References []string
}

func (c ExecCompiler) WithReferences(paths ...string) Compiler {
	c.References = append(slices.Clone(c.References), paths...)
	return c
}

func (c ExecCompiler) Compile(ctx context.Context, name string, units []*syntax.CompilationUnit) (artifact *Artifact, err error) {
	if c.Command == "" {
		return nil, errors.New("no compiler command configured")
	}
	if len(units) == 0 {
		return nil, errors.Newf("assembly %s has no compilation units", name)
	}

	dir := c.Dir
	if dir == "" {
		dir, err = os.MkdirTemp("", "csforge-")
		if err != nil {
			return nil, errors.Wrap(err, "creating build directory")
		}
		defer func() {
			if err != nil {
				os.RemoveAll(dir)
			}
		}()
	}

	sources := Sources(units)
	files := make([]string, 0, len(sources))
	for file, text := range sources {
		path := filepath.Join(dir, file)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		files = append(files, path)
	}
	slices.Sort(files)

	out := filepath.Join(dir, name+".dll")
	args := append(slices.Clone(c.Args), "-nologo", "-target:library", "-out:"+out)
	for _, r := range c.References {
		args = append(args, "-r:"+r)
	}
	args = append(args, files...)

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, c.Command, args...)
	cmd.Dir = dir
	cmd.Stdout = &output
	cmd.Stderr = &output

	logger.Logger.Debugw("running compiler", "command", c.Command, "assembly", name, "sources", len(files))
	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, errors.Wrapf(ctxErr, "compiling %s", name)
	}

	diags := ParseDiagnostics(output.String())
	if err := failed(diags); err != nil {
		return nil, err
	}
	if runErr != nil {
		return nil, errors.WithDetail(errors.Wrapf(runErr, "running %s", c.Command), output.String())
	}
	return &Artifact{Name: name, Path: out, Warnings: diags}, nil
}

var diagnosticLine = regexp.MustCompile(`^(?:(.*?)\((\d+),(\d+)\):\s*)?(error|warning)\s+([A-Za-z]+\d+):\s*(.*)$`)

// ParseDiagnostics extracts every diagnostic from compiler output. Lines that
// do not look like diagnostics are ignored.
func ParseDiagnostics(output string) []Diagnostic {
	var diags []Diagnostic
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		m := diagnosticLine.FindStringSubmatch(strings.TrimSpace(scanner.Text()))
		if m == nil {
			continue
		}
		d := Diagnostic{File: m[1], Code: m[5], Message: m[6]}
		d.Line, _ = strconv.Atoi(m[2])
		d.Column, _ = strconv.Atoi(m[3])
		if m[4] == "warning" {
			d.Severity = SeverityWarning
		}
		diags = append(diags, d)
	}
	return diags
}
