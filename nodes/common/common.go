// Package common holds the shared node scaffolding every nodes/...
// subpackage builds its concrete classes on: a Base implementing
// types.Node over a flat dynamic-properties bag (the same HasKey/Key
// contract stub.Node provides for synthesized classes), plus the
// camelCase-to-snake_case projection the stub generator documents in spec
// §4.I step 3, so a statically known class and a runtime-synthesized one
// expose fields identically to callers.
package common

import (
	"strings"
	"unicode"

	"github.com/bittoy/ytparse/internal/maps"
	"github.com/bittoy/ytparse/parser"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// textRun mirrors the two shapes a text field takes upstream: either a
// bare simpleText string or a list of styled runs concatenated together.
// Projected via internal/maps.Map2Struct rather than hand-walking the
// wrapper, the same projection the stub generator's synthesized
// constructors use for recognized nested shapes (spec §4.I step 3).
type textRun struct {
	SimpleText string `mapstructure:"simpleText"`
	Runs       []struct {
		Text string `mapstructure:"text"`
	} `mapstructure:"runs"`
}

// ProjectText reads body's key as a text object and flattens it to a
// plain string, preferring simpleText and falling back to concatenated
// run text. Returns ("", false) if key is absent or not a text object.
func ProjectText(body rawnode.Raw, key string) (string, bool) {
	v, ok := rawnode.Get(body, key)
	if !ok {
		return "", false
	}
	m, ok := rawnode.AsMap(v)
	if !ok {
		return "", false
	}
	var tr textRun
	if err := maps.Map2Struct(m, &tr); err != nil {
		return "", false
	}
	if tr.SimpleText != "" {
		return tr.SimpleText, true
	}
	if len(tr.Runs) == 0 {
		return "", false
	}
	var b strings.Builder
	for _, r := range tr.Runs {
		b.WriteString(r.Text)
	}
	return b.String(), true
}

// Base implements types.Node over a tag and a Properties bag.
type Base struct {
	tag   types.TypeTag
	props types.Properties
}

// NewBase returns a Base. A nil props is replaced with an empty bag so
// HasKey/Key never see a nil map.
func NewBase(tag types.TypeTag, props types.Properties) Base {
	if props == nil {
		props = types.NewProperties()
	}
	return Base{tag: tag, props: props}
}

func (b Base) TypeTag() types.TypeTag { return b.tag }

func (b Base) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if t == b.tag {
			return true
		}
	}
	return false
}

func (b Base) HasKey(key string) bool             { return b.props.Has(key) }
func (b Base) Key(key string) (rawnode.Raw, bool)  { return b.props.Get(key) }
func (b Base) Props() types.Properties             { return b.props }

// FlattenProps reads body's immediate keys into a fresh Properties bag,
// snake_casing each key. body must be a wrapper (*rawnode.Object); any
// other shape yields an empty bag.
func FlattenProps(body rawnode.Raw) types.Properties {
	props := types.NewProperties()
	obj, ok := rawnode.AsObject(body)
	if !ok {
		return props
	}
	for _, k := range obj.Keys() {
		v, _ := obj.Get(k)
		props.Put(SnakeCase(k), v)
	}
	return props
}

// SnakeCase converts a camelCase source key to snake_case.
func SnakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseChildren tries each field name in turn against body, returning the
// first one whose value parses to a non-empty ObservedArray (a field that is
// absent, fails to parse or parses empty is skipped). Several node
// classes (ItemSection, SectionList, Grid, PlaylistPanel, ...) hold their
// child items under a field whose exact name is a closed, class-specific
// choice upstream; trying a short candidate list keeps one constructor
// shape for all of them instead of one bespoke struct per class.
func ParseChildren(pc *types.ParseContext, body rawnode.Raw, fields ...string) types.ObservedArray {
	for _, f := range fields {
		if v, ok := rawnode.Get(body, f); ok {
			arr, err := parser.ParseArray(pc, v)
			if err == nil && arr.Len() > 0 {
				return arr
			}
		}
	}
	return types.NewObservedArray(nil)
}

// WithTargetID copies the first present of the given camelCase id fields
// from body into props under the "targetId" dynamic key ObservedArray's
// HasTarget reads (spec's target/video/browse id convention).
func WithTargetID(props types.Properties, body rawnode.Raw, idFields ...string) {
	for _, f := range idFields {
		if v, ok := rawnode.Get(body, f); ok {
			if s, ok := rawnode.AsString(v); ok {
				props.Put("targetId", s)
				return
			}
		}
	}
}
