package metrics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

type fakeNode struct{ tag types.TypeTag }

func (n fakeNode) TypeTag() types.TypeTag { return n.tag }
func (n fakeNode) Is(tags ...types.TypeTag) bool {
	for _, t := range tags {
		if t == n.tag {
			return true
		}
	}
	return false
}
func (n fakeNode) HasKey(string) bool                  { return false }
func (n fakeNode) Key(string) (rawnode.Raw, bool)      { return nil, false }

func TestDebugLogsBeforeAndAfter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := NewDebug(logger)

	d.Before("Video")
	d.After("Video", fakeNode{tag: "Video"}, 1500)

	out := buf.String()
	if !strings.Contains(out, "dispatch start") {
		t.Fatalf("expected a dispatch start log line, got %q", out)
	}
	if !strings.Contains(out, "dispatch end") {
		t.Fatalf("expected a dispatch end log line, got %q", out)
	}
	if !strings.Contains(out, `"tag":"Video"`) {
		t.Fatalf("expected the after log to carry the resulting tag, got %q", out)
	}
}

func TestDebugLogsEmptyResult(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	d := NewDebug(logger)

	d.After("UnknownThing", nil, 500)

	out := buf.String()
	if !strings.Contains(out, `"empty":true`) {
		t.Fatalf("expected the after log to flag an empty result, got %q", out)
	}
}
