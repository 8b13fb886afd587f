package mutation

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/registry"
	"github.com/bittoy/ytparse/report"
	"github.com/bittoy/ytparse/types"
)

type fakeMultiSelect struct {
	key        string
	title      string
	selected   bool
	appliedTok string
	applied    bool
}

func (n *fakeMultiSelect) TypeTag() types.TypeTag       { return "MusicMultiSelectMenuItem" }
func (n *fakeMultiSelect) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if t == n.TypeTag() {
			return true
		}
	}
	return false
}
func (n *fakeMultiSelect) HasKey(string) bool             { return false }
func (n *fakeMultiSelect) Key(string) (rawnode.Raw, bool) { return nil, false }
func (n *fakeMultiSelect) FormItemEntityKey() string      { return n.key }
func (n *fakeMultiSelect) Title() string                  { return n.title }
func (n *fakeMultiSelect) ApplySelection(selected bool, opaqueToken string) {
	n.selected = selected
	n.appliedTok = opaqueToken
	n.applied = true
}

func testCfg(rep types.Reporter) types.Config {
	return types.NewConfig(
		types.WithRegistry(registry.New()),
		types.WithReporter(rep),
		types.WithLimiter(rate.NewLimiter(rate.Inf, 100)),
		types.WithLogger(zerolog.Nop()),
	)
}

func TestApplyMultiSelectMatchesAndReportsUnmatched(t *testing.T) {
	m := memo.New()
	m1 := &fakeMultiSelect{key: "K1", title: "T1"}
	m2 := &fakeMultiSelect{key: "K2", title: "T2"}
	m.Add(m1.TypeTag(), m1)
	m.Add(m2.TypeTag(), m2)

	rep := report.NewCollector()
	cfg := testCfg(rep)

	doc, _ := rawnode.Decode([]byte(`{
		"frameworkUpdates": { "entityBatchUpdate": { "mutations": [
			{"entityKey":"e1","payload":{"musicFormBooleanChoice":{"id":"K1","selected":true,"opaqueToken":"tok"}}}
		]}}
	}`))
	records, present := LoadMutations(doc)
	if !present {
		t.Fatal("expected mutations to be present")
	}
	applyMultiSelect(cfg, m, records, present)

	if !m1.applied || !m1.selected || m1.appliedTok != "tok" {
		t.Errorf("m1 not applied correctly: %+v", m1)
	}
	if m2.applied {
		t.Error("m2 should not have been applied")
	}
	invalid := rep.ByCategory(types.CategoryMutationDataInvalid)
	if len(invalid) != 1 || invalid[0].TotalAffected != 2 || len(invalid[0].FailedTitles) != 1 || invalid[0].FailedTitles[0] != "T2" {
		t.Errorf("unexpected mutation_data_invalid event: %+v", invalid)
	}
}

func TestApplyMultiSelectMissingMutations(t *testing.T) {
	m := memo.New()
	m.Add("MusicMultiSelectMenuItem", &fakeMultiSelect{key: "K", title: "T"})
	rep := report.NewCollector()
	cfg := testCfg(rep)

	applyMultiSelect(cfg, m, nil, false)

	missing := rep.ByCategory(types.CategoryMutationDataMissing)
	if len(missing) != 1 || missing[0].ClassName != "MusicMultiSelectMenuItem" {
		t.Errorf("unexpected events: %+v", missing)
	}
}

func heatMapCtor(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	return &fakeMultiSelect{key: "heatmap"}, nil
}

func TestApplyHeatMapAddsMemoNode(t *testing.T) {
	m := memo.New()
	reg := registry.New()
	reg.Register("MacroMarkersListEntity", func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
		return &fakeMultiSelect{key: "hm"}, nil
	}, nil)
	rep := report.NewCollector()
	cfg := types.NewConfig(types.WithRegistry(reg), types.WithReporter(rep))
	pc := types.NewParseContext(cfg)

	doc, _ := rawnode.Decode([]byte(`{
		"frameworkUpdates": { "entityBatchUpdate": { "mutations": [
			{"entityKey":"e1","payload":{"macroMarkersListEntity":{"markersList":{"markerType":"MARKER_TYPE_HEATMAP"}}}}
		]}}
	}`))
	records, _ := LoadMutations(doc)
	applyHeatMap(pc, cfg, m, records)

	if len(m.Get("MacroMarkersListEntity")) != 1 {
		t.Fatalf("expected one MacroMarkersListEntity in memo, got %d", len(m.Get("MacroMarkersListEntity")))
	}
}

type fakeComment struct {
	commentKey, toolbarStateKey, toolbarSurfaceKey, commentSurfaceKey string
	gotComment, gotToolbarState, gotToolbarSurface, gotCommentSurface rawnode.Raw
	called                                                            bool
}

func (n *fakeComment) TypeTag() types.TypeTag { return "CommentView" }
func (n *fakeComment) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if t == n.TypeTag() {
			return true
		}
	}
	return false
}
func (n *fakeComment) HasKey(string) bool             { return false }
func (n *fakeComment) Key(string) (rawnode.Raw, bool) { return nil, false }
func (n *fakeComment) CommentKey() string             { return n.commentKey }
func (n *fakeComment) ToolbarStateKey() string        { return n.toolbarStateKey }
func (n *fakeComment) ToolbarSurfaceKey() string      { return n.toolbarSurfaceKey }
func (n *fakeComment) CommentSurfaceKey() string      { return n.commentSurfaceKey }
func (n *fakeComment) ApplyMutations(comment, toolbarState, toolbarSurface, commentSurface rawnode.Raw) {
	n.called = true
	n.gotComment = comment
	n.gotToolbarState = toolbarState
	n.gotToolbarSurface = toolbarSurface
	n.gotCommentSurface = commentSurface
}

func TestApplyCommentsCorrelatesFourPayloads(t *testing.T) {
	m := memo.New()
	c := &fakeComment{commentKey: "ck", toolbarStateKey: "tsk", toolbarSurfaceKey: "entity-1", commentSurfaceKey: "csk"}
	m.Add(c.TypeTag(), c)

	rep := report.NewCollector()
	cfg := testCfg(rep)

	doc, _ := rawnode.Decode([]byte(`{
		"frameworkUpdates": { "entityBatchUpdate": { "mutations": [
			{"entityKey":"x1","payload":{"commentEntityPayload":{"key":"ck","properties":{"content":"hi"}}}},
			{"entityKey":"x2","payload":{"engagementToolbarStateEntityPayload":{"key":"tsk"}}},
			{"entityKey":"entity-1","payload":{"somethingElse":true}},
			{"entityKey":"x3","payload":{"commentSurfaceEntityPayload":{"key":"csk"}}}
		]}}
	}`))
	records, present := LoadMutations(doc)
	applyComments(cfg, m, records, present)

	if !c.called {
		t.Fatal("expected ApplyMutations to be called")
	}
	if c.gotComment == nil || c.gotToolbarState == nil || c.gotToolbarSurface == nil || c.gotCommentSurface == nil {
		t.Errorf("expected all four payloads resolved, got %+v", c)
	}
}

func TestApplyCommentsNoMatchesNoEvent(t *testing.T) {
	m := memo.New()
	c := &fakeComment{commentKey: "missing"}
	m.Add(c.TypeTag(), c)
	rep := report.NewCollector()
	cfg := testCfg(rep)

	doc, _ := rawnode.Decode([]byte(`{"frameworkUpdates":{"entityBatchUpdate":{"mutations":[]}}}`))
	records, present := LoadMutations(doc)
	applyComments(cfg, m, records, present)

	if !c.called {
		t.Error("ApplyMutations should still be called with all-nil arguments")
	}
	if len(rep.Events) != 0 {
		t.Errorf("expected no events, got %+v", rep.Events)
	}
}
