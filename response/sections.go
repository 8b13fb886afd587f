package response

import (
	"strconv"

	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/parser"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// pollySection handles one of the spec §4.G table rows marked "Memo
// produced? yes" whose value may be either a single wrapper or a list —
// parser.Parse decides which from raw's own shape. A fresh memo is pushed
// for the duration of the section and restored afterward.
func pollySection(pc *types.ParseContext, doc rawnode.Raw, key string) (types.SuperParsedResult, *memo.Memo) {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return types.SuperParsedResult{}, memo.New()
	}
	m := memo.New()
	prev := pc.PushMemo(m)
	res, _ := parser.Parse(pc, raw, false)
	pc.SetActive(prev)
	return res, m
}

// pollySectionNoMemo handles a §4.G row marked "Memo produced? no": parsed
// under whatever memo is already active (if any), rather than a fresh one.
func pollySectionNoMemo(pc *types.ParseContext, doc rawnode.Raw, key string) (types.SuperParsedResult, error) {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return types.SuperParsedResult{}, nil
	}
	return parser.Parse(pc, raw, false)
}

// itemSection handles a single-wrapper §4.G row with no memo of its own.
func itemSection(pc *types.ParseContext, doc rawnode.Raw, key string) types.Node {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return nil
	}
	node, _ := parser.ParseItem(pc, raw)
	return node
}

// itemSectionMemo handles a single-wrapper §4.G row that does produce its
// own memo (liveChatItemContextMenuSupportedRenderers).
func itemSectionMemo(pc *types.ParseContext, doc rawnode.Raw, key string) (types.Node, *memo.Memo) {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return nil, memo.New()
	}
	m := memo.New()
	prev := pc.PushMemo(m)
	node, _ := parser.ParseItem(pc, raw)
	pc.SetActive(prev)
	return node, m
}

// arraySection handles a §4.G row that is always a list, parsed under
// whatever memo is currently active.
func arraySection(pc *types.ParseContext, doc rawnode.Raw, key string) types.ObservedArray {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return types.NewObservedArray(nil)
	}
	arr, _ := parser.ParseArray(pc, raw)
	return arr
}

// continuationSection handles a §4.F continuation-dispatcher row
// (continuation, continuationEndpoint, continuationContents). Only
// continuationContents is documented in §4.G as producing its own memo;
// the other two callers pass along the caller's current active memo.
func continuationSection(pc *types.ParseContext, doc rawnode.Raw, key string) (types.Node, *memo.Memo) {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return nil, nil
	}
	if key != "continuationContents" {
		node, _ := parser.ParseContinuation(pc, raw)
		return node, nil
	}
	m := memo.New()
	prev := pc.PushMemo(m)
	node, _ := parser.ParseContinuation(pc, raw)
	pc.SetActive(prev)
	return node, m
}

// actionsSection handles the "actions" row (spec §4.G): poly parse after
// stripping clickTrackingParams from each entry, producing its own memo.
// Each entry's own wrapper key already ends in Command/Endpoint/Action, so
// the sanitized class tag comes out the same as parser.ParseCommand would
// produce — but the table specifies poly parse (§4.D), not the
// command/endpoint/action parser (§4.E), so entries are run through
// parser.ParseArray rather than ParseCommands.
func actionsSection(pc *types.ParseContext, doc rawnode.Raw) (types.ObservedArray, *memo.Memo) {
	raw, ok := rawnode.Get(doc, "actions")
	if !ok {
		return types.NewObservedArray(nil), memo.New()
	}
	list, ok := rawnode.AsList(raw)
	if !ok {
		return types.NewObservedArray(nil), memo.New()
	}
	stripped := make([]rawnode.Raw, len(list))
	for i, item := range list {
		stripped[i] = stripClickTracking(item)
	}
	m := memo.New()
	prev := pc.PushMemo(m)
	arr, _ := parser.ParseArray(pc, stripped)
	pc.SetActive(prev)
	return arr, m
}

// stripClickTracking drops the clickTrackingParams key from an actions
// entry before parsing, per spec §4.G's "actions" row; every other key
// keeps its declared order.
func stripClickTracking(item rawnode.Raw) rawnode.Raw {
	obj, ok := rawnode.AsObject(item)
	if !ok {
		return item
	}
	out := rawnode.NewObject()
	for _, k := range obj.Keys() {
		if k == "clickTrackingParams" {
			continue
		}
		v, _ := obj.Get(k)
		out.Set(k, v)
	}
	return out
}

// directSection handles a §4.G row that is itself a bare wrapper rather
// than a keyed section (videoDetails, currentVideoEndpoint, endpoint),
// parsed under the caller's current active memo: currentVideoEndpoint and
// endpoint go through parser.ParseCommand, videoDetails through
// parser.ParseItem like any other single item.
func directSection(pc *types.ParseContext, doc rawnode.Raw, key string) types.Node {
	raw, ok := rawnode.Get(doc, key)
	if !ok {
		return nil
	}
	if key == "currentVideoEndpoint" || key == "endpoint" {
		node, _ := parser.ParseCommand(pc, raw)
		return node
	}
	node, _ := parser.ParseItem(pc, raw)
	return node
}

// entriesSection covers the top-level "entries" list some
// search/browse responses carry alongside contents, parsed under the
// caller's current active memo rather than a dedicated one — §4.G does not
// list it as memo-producing.
func entriesSection(pc *types.ParseContext, cfg types.Config, doc rawnode.Raw) []types.Node {
	raw, ok := rawnode.Get(doc, "entries")
	if !ok {
		return nil
	}
	arr, _ := parser.ParseArray(pc, raw)
	return arr.Nodes()
}

// stringField reads a top-level string field, degrading to "" if absent or
// not a string.
func stringField(doc rawnode.Raw, key string) string {
	v, ok := rawnode.Get(doc, key)
	if !ok {
		return ""
	}
	s, _ := rawnode.AsString(v)
	return s
}

// numberField reads a top-level numeric field, degrading to 0 if absent or
// unparseable. Per spec.md §9, fields like estimatedResults arrive as
// numeric strings upstream ("1000000"), not JSON numbers — a bare string
// is parsed with base-10 integer semantics before falling back to the
// plain-JSON-number case.
func numberField(doc rawnode.Raw, key string) int64 {
	v, ok := rawnode.Get(doc, key)
	if !ok {
		return 0
	}
	return parseNumeric(v)
}

// parseNumeric reads v as an int64 whether it arrived as a JSON number or
// as a numeric string.
func parseNumeric(v rawnode.Raw) int64 {
	if s, ok := rawnode.AsString(v); ok {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0
		}
		return n
	}
	n, _ := rawnode.AsNumber(v)
	return int64(n)
}

// stringListField reads a top-level list-of-strings field (refinements),
// skipping any entry that is not a string rather than failing the whole
// field.
func stringListField(doc rawnode.Raw, key string) []string {
	v, ok := rawnode.Get(doc, key)
	if !ok {
		return nil
	}
	list, ok := rawnode.AsList(v)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := rawnode.AsString(item); ok {
			out = append(out, s)
		}
	}
	return out
}

// responseContextSection projects the responseContext object (see
// Response.ResponseContext's doc comment) without going through the node
// registry — it is a fixed-shape object, not a class-tagged wrapper.
func responseContextSection(doc rawnode.Raw) *ResponseContext {
	raw, ok := rawnode.Get(doc, "responseContext")
	if !ok {
		return nil
	}
	rc := &ResponseContext{}
	rc.VisitorData = stringField(raw, "visitorData")
	if v, ok := rawnode.Get(raw, "serviceTrackingParams"); ok {
		if list, ok := rawnode.AsList(v); ok {
			rc.ServiceTrackingParams = list
		}
	}
	return rc
}
