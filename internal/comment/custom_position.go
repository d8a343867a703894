package comment

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/csforge/csforge/internal/util"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// getPosition creates a human readable string representing the position of a node in an application.
// In order to improve readability, the filename will be localized to the root of the application.
// The format of the string is as follows based on the positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename, line, column	|	filename line:column
// filename, line			|	filename line
// filename					|	filename
// invalid or empty			|	""
func getPosition(pkg *decorator.Package, node dst.Node, appRoot string) string {
	pos := util.Position(node, pkg)
	if pos == nil || !pos.IsValid() {
		return ""
	}

	filename := pos.Filename
	split := strings.Split(filename, string(filepath.Separator))
	for i, segment := range split {
		if segment == appRoot {
			filename = filepath.Join(split[i:]...)
			break
		}
	}

	path := strings.Builder{}
	path.WriteString(filename)
	if pos.Line != 0 {
		path.WriteByte(' ')
		path.WriteString(strconv.Itoa(pos.Line))
		if pos.Column != 0 {
			path.WriteByte(':')
			path.WriteString(strconv.Itoa(pos.Column))
		}
	}

	return path.String()
}
