package stub

import (
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/registry"
	"github.com/bittoy/ytparse/report"
	"github.com/bittoy/ytparse/types"
)

func testConfig(reg *registry.Registry, rep *report.Collector) types.Config {
	return types.NewConfig(
		types.WithRegistry(reg),
		types.WithReporter(rep),
		types.WithSanitize(func(k string) string { return k }),
		types.WithLimiter(rate.NewLimiter(rate.Inf, 100)),
		types.WithLogger(zerolog.Nop()),
	)
}

var noopRecurser = Recurser{
	ParseItem: func(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.Node, bool) {
		return nil, false
	},
	ParseArray: func(pc *types.ParseContext, raw rawnode.Raw, allowed ...types.TypeTag) (types.ObservedArray, error) {
		return types.NewObservedArray(nil), nil
	},
}

func TestSynthesizeFirstSightEmitsClassNotFound(t *testing.T) {
	reg := registry.New()
	rep := report.NewCollector()
	cfg := testConfig(reg, rep)
	pc := types.NewParseContext(cfg)

	body, err := rawnode.Decode([]byte(`{"title":"hello","count":3}`))
	if err != nil {
		t.Fatal(err)
	}

	ctor, ok := Synthesize(cfg, pc, "BrandNewThing", body, noopRecurser)
	if !ok {
		t.Fatal("expected Synthesize to succeed")
	}
	events := rep.ByCategory(types.CategoryClassNotFound)
	if len(events) != 1 || events[0].ClassName != "BrandNewThing" {
		t.Fatalf("unexpected class_not_found events: %+v", events)
	}
	if !reg.Has("BrandNewThing") {
		t.Error("expected BrandNewThing to be registered after Synthesize")
	}

	node, err := ctor(pc, body)
	if err != nil {
		t.Fatalf("ctor returned error: %v", err)
	}
	if node.TypeTag() != "BrandNewThing" {
		t.Errorf("TypeTag = %q, want BrandNewThing", node.TypeTag())
	}
	if v, ok := node.Key("title"); !ok || v != "hello" {
		t.Errorf("Key(title) = %v, %v; want hello, true", v, ok)
	}
}

func TestSynthesizeDriftEmitsClassChanged(t *testing.T) {
	reg := registry.New()
	rep := report.NewCollector()
	cfg := testConfig(reg, rep)
	pc := types.NewParseContext(cfg)

	first, _ := rawnode.Decode([]byte(`{"title":"a"}`))
	ctor, _ := Synthesize(cfg, pc, "DriftClass", first, noopRecurser)
	if _, err := ctor(pc, first); err != nil {
		t.Fatal(err)
	}

	second, _ := rawnode.Decode([]byte(`{"title":["a","b"]}`))
	if _, err := ctor(pc, second); err != nil {
		t.Fatal(err)
	}

	changed := rep.ByCategory(types.CategoryClassChanged)
	if len(changed) != 1 {
		t.Fatalf("len(class_changed events) = %d, want 1", len(changed))
	}
	if changed[0].ClassName != "DriftClass" {
		t.Errorf("ClassName = %q, want DriftClass", changed[0].ClassName)
	}
}
