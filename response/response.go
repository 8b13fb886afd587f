package response

import (
	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/mutation"
	"github.com/bittoy/ytparse/parser"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/streamdata"
	"github.com/bittoy/ytparse/types"
)

// Response is the structural projection of one decoded document, matching
// spec §4.G's section table row for row.
type Response struct {
	Contents     types.SuperParsedResult
	ContentsMemo *memo.Memo

	OnResponseReceived     types.ObservedArray
	OnResponseReceivedMemo *memo.Memo

	ContinuationContents     types.Node
	ContinuationContentsMemo *memo.Memo

	Actions     types.ObservedArray
	ActionsMemo *memo.Memo

	LiveChatItemContextMenuSupportedRenderers types.Node
	LiveChatMemo                              *memo.Memo

	Header     types.SuperParsedResult
	HeaderMemo *memo.Memo

	Items     types.SuperParsedResult
	ItemsMemo *memo.Memo

	Metadata       types.SuperParsedResult
	PlayerOverlays types.SuperParsedResult

	Sidebar     types.Node
	Microformat types.Node
	Overlay     types.Node
	Captions    types.Node
	Storyboards types.Node
	Endscreen   types.Node
	Cards       types.Node
	Background  types.Node

	Alerts           types.ObservedArray
	Annotations      types.ObservedArray
	EngagementPanels types.ObservedArray

	Continuation         types.Node
	ContinuationEndpoint types.Node

	Refinements      []string
	EstimatedResults int64
	TargetID         string
	Challenge        rawnode.Raw

	PlaybackTracking  rawnode.Raw
	PlayabilityStatus rawnode.Raw
	PlayerConfig      rawnode.Raw
	BgChallenge       rawnode.Raw
	CpnInfo           rawnode.Raw

	StreamingData *streamdata.Streaming

	VideoDetails         types.Node
	CurrentVideoEndpoint types.Node
	Endpoint             types.Node

	Entries []types.Node

	PlayerResponse    *Response
	WatchNextResponse *Response

	TrackingParams      string
	Topbar              types.Node
	ResponseContext     *ResponseContext
	FrameworkUpdatesRaw rawnode.Raw
}

// ResponseContext is the supplemented responseContext projection (spec
// §4.G's "Supplemented sections" note): visitor data plus the service
// tracking params list, structurally projected rather than left raw since
// callers increasingly need visitor data for session continuity.
type ResponseContext struct {
	VisitorData           string
	ServiceTrackingParams []rawnode.Raw
}

// Parse implements spec §4.G's top-level entry point: decode-then-parse a
// full response document under cfg.
func Parse(cfg types.Config, doc rawnode.Raw) *Response {
	pc := types.NewParseContext(cfg)
	return parseDocument(pc, cfg, doc)
}

// parseDocument walks doc's known sections. It isolates its own memo use
// from the caller's by pushing a nil active memo for the duration of this
// call and restoring whatever was active on return — the reentrancy
// contract spec §5 requires for playerResponse/watchNextResponse's
// recursive re-entry (see bottom of this function).
func parseDocument(pc *types.ParseContext, cfg types.Config, doc rawnode.Raw) *Response {
	prev := pc.PushMemo(nil)
	defer pc.SetActive(prev)

	r := &Response{}

	r.Contents, r.ContentsMemo = pollySection(pc, doc, "contents")
	r.OnResponseReceived, r.OnResponseReceivedMemo = onResponseReceivedSection(pc, doc)
	r.ContinuationContents, r.ContinuationContentsMemo = continuationSection(pc, doc, "continuationContents")
	r.Actions, r.ActionsMemo = actionsSection(pc, doc)
	r.LiveChatItemContextMenuSupportedRenderers, r.LiveChatMemo = itemSectionMemo(pc, doc, "liveChatItemContextMenuSupportedRenderers")

	r.Header, r.HeaderMemo = pollySection(pc, doc, "header")
	r.Items, r.ItemsMemo = pollySection(pc, doc, "items")
	r.Metadata, _ = pollySectionNoMemo(pc, doc, "metadata")
	r.PlayerOverlays, _ = pollySectionNoMemo(pc, doc, "playerOverlays")

	r.Sidebar = itemSection(pc, doc, "sidebar")
	r.Microformat = itemSection(pc, doc, "microformat")
	r.Overlay = itemSection(pc, doc, "overlay")
	r.Captions = itemSection(pc, doc, "captions")
	r.Storyboards = itemSection(pc, doc, "storyboards")
	r.Endscreen = itemSection(pc, doc, "endscreen")
	r.Cards = itemSection(pc, doc, "cards")
	r.Background = itemSection(pc, doc, "background")

	r.Alerts = arraySection(pc, doc, "alerts")
	r.Annotations = arraySection(pc, doc, "annotations")
	r.EngagementPanels = arraySection(pc, doc, "engagementPanels")

	r.Continuation, _ = continuationSection(pc, doc, "continuation")
	r.ContinuationEndpoint, _ = continuationSection(pc, doc, "continuationEndpoint")

	r.Refinements = stringListField(doc, "refinements")
	r.EstimatedResults = numberField(doc, "estimatedResults")
	r.TargetID = stringField(doc, "targetId")
	r.Challenge, _ = rawnode.Get(doc, "challenge")

	r.PlaybackTracking, _ = rawnode.Get(doc, "playbackTracking")
	r.PlayabilityStatus, _ = rawnode.Get(doc, "playabilityStatus")
	r.PlayerConfig, _ = rawnode.Get(doc, "playerConfig")
	r.BgChallenge, _ = rawnode.Get(doc, "bgChallenge")
	r.CpnInfo, _ = rawnode.Get(doc, "cpnInfo")

	if body, ok := rawnode.Get(doc, "streamingData"); ok {
		r.StreamingData = streamdata.Project(body)
	}

	r.VideoDetails = directSection(pc, doc, "videoDetails")
	r.CurrentVideoEndpoint = directSection(pc, doc, "currentVideoEndpoint")
	r.Endpoint = directSection(pc, doc, "endpoint")

	r.Entries = entriesSection(pc, cfg, doc)

	r.TrackingParams = stringField(doc, "trackingParams")
	r.Topbar = itemSection(pc, doc, "topbar")
	r.ResponseContext = responseContextSection(doc)
	r.FrameworkUpdatesRaw, _ = rawnode.Get(doc, "frameworkUpdates")

	if body, ok := rawnode.Get(doc, "playerResponse"); ok {
		r.PlayerResponse = parseDocument(pc, cfg, body)
	}
	if body, ok := rawnode.Get(doc, "watchNextResponse"); ok {
		r.WatchNextResponse = parseDocument(pc, cfg, body)
	}

	mutation.Run(pc, cfg, r.ContentsMemo, doc)
	if r.OnResponseReceivedMemo != nil && r.OnResponseReceivedMemo.Len() > 0 {
		mutation.Run(pc, cfg, r.OnResponseReceivedMemo, doc)
	}

	return r
}

// onResponseReceivedSection tries the three key variants the upstream
// client uses interchangeably across endpoints, in spec §4.G's declared
// order, using the first one present.
func onResponseReceivedSection(pc *types.ParseContext, doc rawnode.Raw) (types.ObservedArray, *memo.Memo) {
	for _, key := range []string{"onResponseReceivedActions", "onResponseReceivedEndpoints", "onResponseReceivedCommands"} {
		if raw, ok := rawnode.Get(doc, key); ok {
			m := memo.New()
			prev := pc.PushMemo(m)
			arr := parser.ParseResponseReceived(pc, raw)
			pc.SetActive(prev)
			return arr, m
		}
	}
	return types.NewObservedArray(nil), memo.New()
}
