package codegen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Pascal upper-cases the first letter of name.
func Pascal(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || unicode.IsUpper(r) {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Namespace turns a Go import path into a dotted C# namespace, one Pascal
// cased segment per path element. Dashes and dots inside an element start a
// new word.
func Namespace(importPath string) string {
	var parts []string
	for _, elem := range strings.Split(importPath, "/") {
		var b strings.Builder
		for _, word := range strings.FieldsFunc(elem, func(r rune) bool { return r == '-' || r == '.' || r == '_' }) {
			b.WriteString(Pascal(word))
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return strings.Join(parts, ".")
}

// EnumMember names a constant of an enum type. The type name is dropped when
// it prefixes the constant, so StatusOpen of type Status becomes Open.
func EnumMember(typeName, constName string) string {
	trimmed, ok := strings.CutPrefix(constName, typeName)
	if r, _ := utf8.DecodeRuneInString(trimmed); !ok || !unicode.IsUpper(r) && r != '_' {
		return Pascal(constName)
	}
	if rest := strings.TrimLeft(trimmed, "_"); rest != "" {
		return Pascal(rest)
	}
	return Pascal(constName)
}
