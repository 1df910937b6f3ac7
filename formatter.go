package javadts

import "strings"

// FormatDeclarations renders declarations for display.
// Each declaration is preceded by a comment naming its source URL when known.
// Declarations are separated by blank lines.
func FormatDeclarations(decls []*Declaration, sources []string) string {
	if len(decls) == 0 {
		return ""
	}

	parts := make([]string, 0, len(decls))
	for i, d := range decls {
		text := d.String()
		if i < len(sources) && sources[i] != "" {
			text = "// " + sources[i] + "\n" + text
		}
		parts = append(parts, strings.TrimSuffix(text, "\n"))
	}

	return strings.Join(parts, "\n\n") + "\n"
}
