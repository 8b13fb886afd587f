package memo

import (
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

func TestAddAndGetTypePreservesOrder(t *testing.T) {
	m := New()
	v1 := &fakeNode{tag: "Video"}
	s1 := &fakeNode{tag: "Shelf"}
	v2 := &fakeNode{tag: "Video"}

	m.Add("Video", v1)
	m.Add("Shelf", s1)
	m.Add("Video", v2)

	videos := m.GetType("Video")
	if videos.Len() != 2 || videos.At(0) != v1 || videos.At(1) != v2 {
		t.Errorf("GetType(Video) = %v, want [v1 v2]", videos.Nodes())
	}

	union := m.GetType("Shelf", "Video")
	if union.Len() != 3 {
		t.Fatalf("GetType union len = %d, want 3", union.Len())
	}
	if union.At(0) != v1 || union.At(1) != s1 || union.At(2) != v2 {
		t.Errorf("GetType union order wrong: %v", union.Nodes())
	}
}

func TestGetTypeUnknownTagEmpty(t *testing.T) {
	m := New()
	arr := m.GetType("Nothing")
	if arr.Len() != 0 {
		t.Errorf("GetType on empty memo len = %d, want 0", arr.Len())
	}
}

func TestLenAcrossTags(t *testing.T) {
	m := New()
	m.Add("A", &fakeNode{tag: "A"})
	m.Add("B", &fakeNode{tag: "B"})
	m.Add("A", &fakeNode{tag: "A"})
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}
