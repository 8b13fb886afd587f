package parser

import (
	"testing"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/registry"
	"github.com/bittoy/ytparse/report"
	"github.com/bittoy/ytparse/types"
)

func appendCtor(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) {
	return &testNode{tag: "AppendContinuationItemsAction", props: types.NewProperties()}, nil
}

func TestParseCommandFirstMatchingSuffixKey(t *testing.T) {
	reg := registry.New()
	reg.Register("AppendContinuationItemsAction", appendCtor, nil)
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`{"clickTrackingParams":"x","appendContinuationItemsAction":{}}`))
	node, ok := ParseCommand(pc, raw)
	if !ok {
		t.Fatal("expected ParseCommand to dispatch on appendContinuationItemsAction")
	}
	if node.TypeTag() != "AppendContinuationItemsAction" {
		t.Errorf("TypeTag = %q, want AppendContinuationItemsAction", node.TypeTag())
	}
}

func TestParseCommandNoMatchingSuffixEmpty(t *testing.T) {
	reg := registry.New()
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`{"clickTrackingParams":"x","trackingParams":"y"}`))
	_, ok := ParseCommand(pc, raw)
	if ok {
		t.Error("expected no dispatch when no key has a command-like suffix")
	}
}

func TestParseCommandsFiltersUnregistered(t *testing.T) {
	reg := registry.New()
	reg.Register("AppendContinuationItemsAction", appendCtor, nil)
	rep := report.NewCollector()
	pc, _ := testContext(t, reg, rep)

	raw, _ := rawnode.Decode([]byte(`[{"appendContinuationItemsAction":{}},{"unknownAction":{}}]`))
	arr := ParseCommands(pc, raw)
	if arr.Len() != 1 {
		t.Fatalf("ParseCommands len = %d, want 1", arr.Len())
	}
}
