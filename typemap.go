package javadts

import (
	"maps"
	"strings"
)

const (
	// nbsp separates a parameter's type from its name in rendered signatures.
	nbsp = "\u00a0"

	// zwsp is emitted by newer Javadoc between a method name and "(".
	zwsp = "\u200b"
)

// defaultPrimitives maps Java primitive and boxed types to TypeScript types.
var defaultPrimitives = map[string]string{
	"float":    "number",
	"int":      "number",
	"double":   "number",
	"long":     "number",
	"short":    "number",
	"byte":     "number",
	"String":   "string",
	"byte[]":   "number[]",
	"String[]": "string[]",
	"T":        "any",
	"Integer":  "number",
	"Byte":     "number",
}

// qualifiers are stripped from a type column before mapping.
var qualifiers = []string{"static ", "abstract ", "protected", "default "}

// collectionPrefixes are one-argument generic containers mapped to arrays.
var collectionPrefixes = []string{"List<", "Set<", "Collection<", "ArrayList<"}

// TypeMap maps Java type expressions to TypeScript type expressions.
// A TypeMap is immutable and safe for concurrent use.
type TypeMap struct {
	primitives map[string]string
}

// NewTypeMap returns a TypeMap using the given primitive table.
// The table is copied.
func NewTypeMap(primitives map[string]string) *TypeMap {
	return &TypeMap{primitives: maps.Clone(primitives)}
}

// DefaultPrimitives returns a copy of the default primitive table.
func DefaultPrimitives() map[string]string {
	return maps.Clone(defaultPrimitives)
}

// DefaultTypeMap returns a TypeMap using the default primitive table.
func DefaultTypeMap() *TypeMap {
	return NewTypeMap(defaultPrimitives)
}

// With returns a copy of the map with overrides added on top.
func (m *TypeMap) With(overrides map[string]string) *TypeMap {
	primitives := maps.Clone(m.primitives)
	if primitives == nil {
		primitives = make(map[string]string, len(overrides))
	}
	maps.Copy(primitives, overrides)
	return &TypeMap{primitives: primitives}
}

// Lookup returns the table entry for a Java type.
func (m *TypeMap) Lookup(javaType string) (string, bool) {
	ts, ok := m.primitives[javaType]
	return ts, ok
}

// Map converts a Java type expression into a TypeScript type expression.
// Unknown types pass through unchanged, so Map never fails and mapping
// its own output returns the output unchanged.
func (m *TypeMap) Map(javaType string) string {
	t := cleanType(javaType)

	if ts, ok := m.primitives[t]; ok {
		return ts
	}

	// "<T> void" and other generic method type parameter prefixes.
	if params, rest, ok := cutTypeParams(t); ok {
		if rest == "void" {
			return "any"
		}
		if params != "" {
			return m.Map(rest)
		}
	}

	for _, prefix := range collectionPrefixes {
		if strings.HasPrefix(t, prefix) && closesAtEnd(t, len(prefix)-1) {
			args := splitTopLevel(t[len(prefix):len(t)-1], ',')
			if len(args) == 0 {
				return t
			}
			return m.argument(args[0]) + "[]"
		}
	}

	if strings.HasPrefix(t, "Map<") && closesAtEnd(t, len("Map")) {
		args := splitTopLevel(t[len("Map<"):len(t)-1], ',')
		if len(args) != 2 {
			return t
		}
		return "Map<" + m.argument(args[0]) + ", " + m.argument(args[1]) + ">"
	}

	if base, ok := strings.CutSuffix(t, "[]"); ok {
		if ts, ok := m.primitives[base]; ok {
			return ts + "[]"
		}
	}

	return t
}

// argument maps a generic type argument through the primitive table only.
func (m *TypeMap) argument(arg string) string {
	arg = strings.TrimSpace(arg)
	switch {
	case arg == "?":
		return "any"
	case strings.HasPrefix(arg, "? extends "):
		arg = strings.TrimSpace(strings.TrimPrefix(arg, "? extends "))
	case strings.HasPrefix(arg, "? super "):
		arg = strings.TrimSpace(strings.TrimPrefix(arg, "? super "))
	}
	if ts, ok := m.primitives[arg]; ok {
		return ts
	}
	return arg
}

// cleanType strips qualifiers and leading annotations from a type column.
func cleanType(t string) string {
	t = strings.ReplaceAll(t, zwsp, "")
	t = strings.ReplaceAll(t, "\n", " ")
	for _, q := range qualifiers {
		t = strings.Replace(t, q, "", 1)
	}
	t = stripAnnotations(strings.TrimSpace(t))
	return strings.TrimSpace(t)
}

// stripAnnotations removes leading annotation tokens such as "@NotNull ".
func stripAnnotations(s string) string {
	for strings.HasPrefix(s, "@") {
		i := strings.IndexFunc(s, isSeparator)
		if i < 0 {
			return s
		}
		s = strings.TrimLeftFunc(s[i:], isSeparator)
	}
	return s
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\u00a0'
}

// cutTypeParams splits a generic method prefix such as "<T> " from a type.
// ok is false when t does not start with a type parameter list.
func cutTypeParams(t string) (params, rest string, ok bool) {
	if !strings.HasPrefix(t, "<") {
		return "", t, false
	}
	end := matchingAngle(t, 0)
	if end < 0 {
		return "", t, false
	}
	rest = strings.TrimLeftFunc(t[end+1:], isSeparator)
	if rest == "" {
		return "", t, false
	}
	return t[1:end], rest, true
}

// closesAtEnd reports whether the "<" at open is closed by the last byte
// of t. Arrays of generics such as "List<String>[]" fail this and pass
// through with their element untouched.
func closesAtEnd(t string, open int) bool {
	return matchingAngle(t, open) == len(t)-1
}

// matchingAngle returns the index of the ">" closing the "<" at open.
func matchingAngle(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on sep outside of angle brackets and trims the parts.
// Returns nil for blank input.
func splitTopLevel(s string, sep byte) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	return append(parts, strings.TrimSpace(s[start:]))
}
