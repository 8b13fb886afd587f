package stub

import (
	"sort"
	"strings"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// commandLikeSuffixes mirrors parser's command-key suffix set so the stub
// generator classifies a single-key command/endpoint/action field as misc
// rather than as a nested renderer wrapper (spec §4.I step 1).
var commandLikeSuffixes = []string{"Command", "Endpoint", "Action"}

// introspect implements spec §4.I step 1: traverse body's immediate
// fields, inferring a KeyKind per field, in a stable (sorted) key order so
// diff comparisons and rendered sketches are deterministic across runs.
func introspect(body rawnode.Raw) []types.KeyInfo {
	obj, ok := rawnode.AsObject(body)
	if !ok {
		return nil
	}
	keys := append([]string(nil), obj.Keys()...)
	sort.Strings(keys)

	out := make([]types.KeyInfo, 0, len(keys))
	for _, k := range keys {
		v, _ := obj.Get(k)
		out = append(out, types.KeyInfo{Key: k, Kind: inferKind(k, v)})
	}
	return out
}

func inferKind(key string, v rawnode.Raw) types.KeyKind {
	switch t := v.(type) {
	case nil:
		return types.KindUnknown
	case string, float64, bool:
		return types.KindPrimitive
	case []rawnode.Raw:
		return types.KindArray
	case *rawnode.Object:
		if isCommandLike(key) {
			return types.KindMisc
		}
		if t.Len() == 1 {
			return types.KindWrapper
		}
		if t.Len() == 0 {
			return types.KindUnknown
		}
		return types.KindObject
	default:
		return types.KindUnknown
	}
}

func isCommandLike(key string) bool {
	for _, suffix := range commandLikeSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

// diff implements spec §4.I step 4: compare prior against current,
// returning every key whose kind changed (including keys added or
// removed), keyed by name for a readable event payload.
func diff(prior, current []types.KeyInfo) []types.KeyInfo {
	priorKind := make(map[string]types.KeyKind, len(prior))
	for _, ki := range prior {
		priorKind[ki.Key] = ki.Kind
	}
	currentKind := make(map[string]types.KeyKind, len(current))
	for _, ki := range current {
		currentKind[ki.Key] = ki.Kind
	}

	var changed []types.KeyInfo
	for _, ki := range current {
		if was, ok := priorKind[ki.Key]; !ok || was != ki.Kind {
			changed = append(changed, ki)
		}
	}
	for _, ki := range prior {
		if _, ok := currentKind[ki.Key]; !ok {
			changed = append(changed, types.KeyInfo{Key: ki.Key, Kind: types.KindUnknown})
		}
	}
	return changed
}
