package parser

import (
	"testing"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/registry"
	"github.com/bittoy/ytparse/report"
	"github.com/bittoy/ytparse/types"
)

func sectionListCtor(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	return &testNode{tag: "SectionListContinuation", props: types.NewProperties()}, nil
}

func TestParseContinuationKnownContainer(t *testing.T) {
	reg := registry.New()
	reg.Register("SectionListContinuation", sectionListCtor, nil)
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`{"sectionListContinuation":{}}`))
	node, ok := ParseContinuation(pc, raw)
	if !ok {
		t.Fatal("expected ParseContinuation to dispatch sectionListContinuation")
	}
	if node.TypeTag() != "SectionListContinuation" {
		t.Errorf("TypeTag = %q, want SectionListContinuation", node.TypeTag())
	}
}

func TestParseContinuationUnknownContainerEmpty(t *testing.T) {
	reg := registry.New()
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`{"somethingElseContinuation":{}}`))
	_, ok := ParseContinuation(pc, raw)
	if ok {
		t.Error("expected unknown continuation container to yield empty")
	}
}

func TestParseResponseReceivedFiltersUnmatched(t *testing.T) {
	reg := registry.New()
	reg.Register("AppendContinuationItemsAction", appendCtor, nil)
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`[{"appendContinuationItemsAction":{}},{"unknownAction":{}}]`))
	arr := ParseResponseReceived(pc, raw)
	if arr.Len() != 1 {
		t.Fatalf("ParseResponseReceived len = %d, want 1", arr.Len())
	}
	if arr.At(0).TypeTag() != "AppendContinuationItemsAction" {
		t.Errorf("unexpected node: %v", arr.At(0))
	}
}
