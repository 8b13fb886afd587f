package stub

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/structs"

	"github.com/bittoy/ytparse/types"
)

// kindGoType is the diagnostic Go type renderSketch prints per KeyKind —
// never compiled, just read by whoever is deciding how to write the real
// registered class for this name.
var kindGoType = map[types.KeyKind]reflect.Type{
	types.KindPrimitive: reflect.TypeOf(""),
	types.KindArray:     reflect.TypeOf([]string(nil)),
	types.KindWrapper:   reflect.TypeOf(map[string]any(nil)),
	types.KindObject:    reflect.TypeOf(map[string]any(nil)),
	types.KindMisc:      reflect.TypeOf(map[string]any(nil)),
	types.KindUnknown:   reflect.TypeOf((*any)(nil)).Elem(),
}

// renderSketch implements spec §4.I step 2's "human-readable class sketch
// (a code-like string — for diagnostics only)". It builds a throwaway
// struct type via reflect.StructOf mirroring the introspected fields, then
// renders it through github.com/fatih/structs' field enumeration — the
// same library this module's node constructors could use to go the other
// direction (struct→map) — so the sketch's field order and naming exactly
// match what structs.New(...).Names() would report for a hand-written
// struct in this shape.
func renderSketch(className string, keyInfo []types.KeyInfo, correlationID string) string {
	if len(keyInfo) == 0 {
		return fmt.Sprintf("type %s struct{} // class_id=%s", className, correlationID)
	}

	fields := make([]reflect.StructField, 0, len(keyInfo))
	for _, ki := range keyInfo {
		goType, ok := kindGoType[ki.Kind]
		if !ok {
			goType = kindGoType[types.KindUnknown]
		}
		fields = append(fields, reflect.StructField{
			Name: pascalCase(snakeCase(ki.Key)),
			Type: goType,
			Tag:  reflect.StructTag(fmt.Sprintf(`mapstructure:"%s"`, ki.Key)),
		})
	}
	sample := reflect.New(reflect.StructOf(fields)).Elem().Interface()
	s := structs.New(sample)

	var b strings.Builder
	fmt.Fprintf(&b, "type %s struct { // class_id=%s\n", className, correlationID)
	for i, name := range s.Names() {
		fmt.Fprintf(&b, "\t%s %s `%s`\n", name, fields[i].Type, fields[i].Tag)
	}
	b.WriteString("}")
	return b.String()
}
