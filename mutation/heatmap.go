package mutation

import (
	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

const heatMapTag types.TypeTag = "MacroMarkersListEntity"

// applyHeatMap implements spec §4.H's MacroMarkersListEntity pass — the
// only mutation pass that adds new nodes to the memo rather than patching
// existing ones. It invokes the registered MacroMarkersListEntity
// constructor directly (the payload sub-object is already a known, fully
// class-tagged body; there is no wrapper key to dispatch through).
func applyHeatMap(pc *types.ParseContext, cfg types.Config, m *memo.Memo, records []Record) {
	ctor, ok := cfg.Registry.Lookup(heatMapTag)
	if !ok {
		return
	}
	for _, rec := range records {
		env := envOf(rec)
		markerType, ok := extractString(env, "payload.macroMarkersListEntity.markersList.markerType")
		if !ok || markerType != "MARKER_TYPE_HEATMAP" {
			continue
		}
		entity, hasEntity := rec.Payload["macroMarkersListEntity"]
		if !hasEntity {
			continue
		}
		body := toRaw(entity)
		node, err := ctor(pc, body)
		if err != nil {
			reportEvent(cfg, types.Event{Category: types.CategoryParse, ClassName: string(heatMapTag), Body: body, Err: err})
			continue
		}
		if node == nil {
			continue
		}
		m.Add(heatMapTag, node)
	}
}

// toRaw re-wraps a plain map[string]any (as produced by rawnode.AsMap) back
// into a rawnode.Object so constructors see the same shape they would from
// a freshly decoded document. Order is not meaningful here: the heat-map
// payload's own keys were already consumed by the expr-path extraction
// above, and MacroMarkersListEntity's constructor addresses fields by name,
// not by declared order.
func toRaw(v any) rawnode.Raw {
	switch t := v.(type) {
	case map[string]any:
		obj := rawnode.NewObject()
		for k, val := range t {
			obj.Set(k, toRaw(val))
		}
		return obj
	case []any:
		out := make([]rawnode.Raw, len(t))
		for i, val := range t {
			out[i] = toRaw(val)
		}
		return out
	default:
		return v
	}
}
