package javadts

import "strings"

// NormalizeSignature rewrites a rendered Java method signature such as
// "getItem(int slot)" into a TypeScript member signature such as
// "getItem(slot: number)".
//
// Parameters are separated by top-level commas and each parameter's type
// is separated from its name by a non-breaking space. A signature without
// "(" or a parameter without a separator is EMALFORMED.
func (m *TypeMap) NormalizeSignature(raw string) (string, error) {
	s := strings.ReplaceAll(raw, zwsp, "")
	s = strings.ReplaceAll(s, "\n", " ")

	name, params, ok := strings.Cut(s, "(")
	if !ok {
		return "", Errorf(EMALFORMED, "signature %q has no parameter list", strings.TrimSpace(raw))
	}
	name = strings.TrimSpace(name)

	// Everything after the closing parenthesis is ignored.
	if i := strings.LastIndex(params, ")"); i >= 0 {
		params = params[:i]
	}

	converted := make([]string, 0, 4)
	for _, p := range splitTopLevel(params, ',') {
		param, err := m.parameter(p)
		if err != nil {
			return "", err
		}
		converted = append(converted, param)
	}

	return name + "(" + strings.Join(converted, ", ") + ")", nil
}

// parameter converts one "Type name" parameter into "name: type".
func (m *TypeMap) parameter(p string) (string, error) {
	p = stripAnnotations(strings.TrimSpace(p))

	javaType, name, ok := cutLast(p, nbsp)
	if !ok {
		return "", Errorf(EMALFORMED, "parameter %q has no type separator", p)
	}
	name = strings.TrimSpace(strings.Replace(name, ")", "", 1))
	if name == "" {
		return "", Errorf(EMALFORMED, "parameter %q has no name", p)
	}

	if base, ok := strings.CutSuffix(strings.TrimSpace(javaType), "..."); ok {
		return "..." + name + ": " + m.arrayOf(base), nil
	}
	return name + ": " + m.Map(javaType), nil
}

// arrayOf maps a vararg element type to an array type.
func (m *TypeMap) arrayOf(javaType string) string {
	ts := m.Map(javaType)
	if strings.ContainsAny(ts, " |") {
		return "(" + ts + ")[]"
	}
	return ts + "[]"
}

// cutLast slices s around the last instance of sep.
func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}

// ConstructorSignature rewrites a rendered constructor such as
// "Location(World world)" into "new(world: World)". The class name is
// not part of the result.
func (m *TypeMap) ConstructorSignature(code string) (string, error) {
	_, params, ok := strings.Cut(code, "(")
	if !ok {
		return "", Errorf(EMALFORMED, "constructor %q has no parameter list", strings.TrimSpace(code))
	}
	return m.NormalizeSignature("new(" + params)
}
