package registry

import (
	"errors"
	"testing"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

type fakeNode struct{ tag types.TypeTag }

func (n *fakeNode) TypeTag() types.TypeTag { return n.tag }
func (n *fakeNode) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if n.tag == t {
			return true
		}
	}
	return false
}
func (n *fakeNode) HasKey(string) bool             { return false }
func (n *fakeNode) Key(string) (rawnode.Raw, bool) { return nil, false }

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	ctor := func(pc *types.ParseContext, body rawnode.Raw) (types.Node, error) { return &fakeNode{tag: "Video"}, nil }
	r.Register("Video", ctor, &fakeNode{tag: "Video"})

	got, ok := r.Lookup("Video")
	if !ok {
		t.Fatal("expected Video to be registered")
	}
	node, err := got(nil, nil)
	if err != nil || node.TypeTag() != "Video" {
		t.Fatalf("unexpected constructor result: %v %v", node, err)
	}
	if !r.Has("Video") {
		t.Error("Has(Video) = false, want true")
	}
	if r.Has("Unknown") {
		t.Error("Has(Unknown) = true, want false")
	}
}

func TestRegisterDuplicateReturnsError(t *testing.T) {
	r := New()
	ctor := func(*types.ParseContext, rawnode.Raw) (types.Node, error) { return nil, nil }
	if err := r.Register("Video", ctor, nil); err != nil {
		t.Fatalf("unexpected error on first registration: %v", err)
	}
	if err := r.Register("Video", ctor, nil); err == nil {
		t.Error("expected an error on duplicate registration")
	}
}

func TestAddRuntimeAppendOnlyOrder(t *testing.T) {
	r := New()
	errCtor := func(*types.ParseContext, rawnode.Raw) (types.Node, error) { return nil, errors.New("unused") }
	r.AddRuntime("Foo", errCtor, nil)
	r.AddRuntime("Bar", errCtor, nil)
	r.AddRuntime("Foo", errCtor, nil) // class_changed: re-add same tag

	entries := r.DynamicEntries()
	if len(entries) != 2 {
		t.Fatalf("DynamicEntries len = %d, want 2", len(entries))
	}
	if entries[0].Tag != "Foo" || entries[1].Tag != "Bar" {
		t.Errorf("DynamicEntries order = %v, want [Foo Bar]", entries)
	}
}

func TestLookupOrErrorOnUnknown(t *testing.T) {
	r := New()
	if _, err := r.LookupOrError("Nope"); err == nil {
		t.Error("expected an error looking up an unknown class")
	}
}

func TestLookupOrErrorOnKnown(t *testing.T) {
	r := New()
	ctor := func(*types.ParseContext, rawnode.Raw) (types.Node, error) { return &fakeNode{tag: "Video"}, nil }
	_ = r.Register("Video", ctor, &fakeNode{tag: "Video"})
	got, err := r.LookupOrError("Video")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, _ := got(nil, nil)
	if node.TypeTag() != "Video" {
		t.Fatalf("unexpected constructor result: %v", node)
	}
}
