package comment

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/fatih/color"
)

type ConsolePrinter struct {
	appRoot  string
	out      io.Writer
	mu       sync.Mutex
	comments []string
}

// initialize this if you want to use it at the start of the program
var printer *ConsolePrinter

func EnableConsolePrinter(applicationPath string) {
	printer = &ConsolePrinter{
		appRoot: filepath.Base(applicationPath),
		out:     os.Stderr,
	}
}

// SetOutput redirects the console printer. It has no effect until
// EnableConsolePrinter has been called.
func SetOutput(w io.Writer) {
	if printer != nil {
		printer.out = w
	}
}

func WriteAll() {
	if printer != nil {
		printer.Flush()
	}
}

var headerColors = map[string]*color.Color{
	InfoHeader: color.New(color.FgCyan),
	WarnHeader: color.New(color.FgYellow, color.Bold),
}

// Add queues a note for the console. Notes are printed in the order they
// were added and may be added from several goroutines.
func (p *ConsolePrinter) Add(pkg *decorator.Package, node dst.Node, header, message string, additionalInfo ...string) {
	if p == nil {
		return
	}

	pos := getPosition(pkg, node, p.appRoot)

	b := strings.Builder{}
	if c, ok := headerColors[header]; ok {
		b.WriteString(c.Sprint(header))
	} else {
		b.WriteString(header)
	}
	b.WriteByte(':')
	b.WriteByte(' ')

	if pos != "" {
		b.WriteString(pos)
		b.WriteByte(' ')
	}
	b.WriteString(message)
	for _, info := range additionalInfo {
		b.WriteString("\n\t")
		b.WriteString(info)
	}

	p.mu.Lock()
	p.comments = append(p.comments, b.String())
	p.mu.Unlock()
}

// Flush writes every queued note and empties the queue.
func (p *ConsolePrinter) Flush() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range p.comments {
		fmt.Fprintln(p.out, c)
	}
	p.comments = nil
}
