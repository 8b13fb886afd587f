package stub

import (
	"strings"
	"unicode"

	"github.com/gofrs/uuid/v5"
)

// newCorrelationID returns a short id correlating a synthesized class's
// class_not_found event with every later class_changed event for the same
// class, so log aggregation can group a schema's whole drift history.
func newCorrelationID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return "stub-id-unavailable"
	}
	return id.String()
}

// snakeCase implements the camelCase→snake_case projection from spec §4.I
// step 3 and §6's "produced fields are snake_case" rule.
func snakeCase(camel string) string {
	var b strings.Builder
	for i, r := range camel {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// pascalCase turns a snake_case or camelCase key into an exported Go
// identifier, used only by renderSketch to build a readable field name
// (the sketch is diagnostic text, never compiled).
func pascalCase(key string) string {
	parts := strings.FieldsFunc(key, func(r rune) bool { return r == '_' })
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		r[0] = unicode.ToUpper(r[0])
		b.WriteString(string(r))
	}
	if b.Len() == 0 {
		return "Field"
	}
	return b.String()
}
