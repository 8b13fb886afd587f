package response_test

import (
	"testing"
	"time"

	_ "github.com/bittoy/ytparse/nodes"
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/response"
)

func decode(t *testing.T, doc string) rawnode.Raw {
	t.Helper()
	v, err := rawnode.Decode([]byte(doc))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return v
}

func TestParseContentsSingleVideo(t *testing.T) {
	doc := decode(t, `{
		"contents": {
			"videoRenderer": {
				"videoId": "abc123",
				"title": {"simpleText": "Hello world"}
			}
		}
	}`)

	r := response.Parse(response.NewOptions(), doc)

	node, ok := r.Contents.AsSingle()
	if !ok || node == nil {
		t.Fatalf("expected a single parsed node, got %+v", r.Contents)
	}
	if node.TypeTag() != "Video" {
		t.Fatalf("expected Video, got %s", node.TypeTag())
	}
	if v, _ := node.Key("title_text"); v != "Hello world" {
		t.Fatalf("expected title_text %q, got %v", "Hello world", v)
	}
	if v, _ := node.Key("targetId"); v != "abc123" {
		t.Fatalf("expected targetId abc123, got %v", v)
	}
	if r.ContentsMemo == nil || r.ContentsMemo.Len() != 1 {
		t.Fatalf("expected contents memo to record one node, got %v", r.ContentsMemo)
	}
}

func TestParseContentsArray(t *testing.T) {
	doc := decode(t, `{
		"contents": [
			{"videoRenderer": {"videoId": "a"}},
			{"videoRenderer": {"videoId": "b"}}
		]
	}`)

	r := response.Parse(response.NewOptions(), doc)

	arr, ok := r.Contents.AsArray()
	if !ok {
		t.Fatalf("expected array result, got %+v", r.Contents)
	}
	if arr.Len() != 2 {
		t.Fatalf("expected 2 nodes, got %d", arr.Len())
	}
}

func TestParseOnResponseReceivedActionsFiltersUnknown(t *testing.T) {
	doc := decode(t, `{
		"onResponseReceivedActions": [
			{"appendContinuationItemsAction": {"targetId": "t1", "continuationItems": []}},
			{"someBrandNewUnknownAction": {"foo": "bar"}}
		]
	}`)

	r := response.Parse(response.NewOptions(), doc)

	if r.OnResponseReceived.Len() != 1 {
		t.Fatalf("expected 1 known response-received node, got %d", r.OnResponseReceived.Len())
	}
	if tag := r.OnResponseReceived.At(0).TypeTag(); tag != "AppendContinuationItemsAction" {
		t.Fatalf("expected AppendContinuationItemsAction, got %s", tag)
	}
}

func TestParseStreamingData(t *testing.T) {
	// expiresInSeconds arrives as a numeric string upstream (spec.md §9),
	// not a JSON number — this is the real InnerTube shape.
	before := time.Now()
	doc := decode(t, `{
		"streamingData": {
			"expiresInSeconds": "21540",
			"formats": [
				{"itag": 18, "mimeType": "video/mp4", "bitrate": 500000, "url": "https://example.invalid/a"}
			],
			"adaptiveFormats": [
				{"itag": 137, "mimeType": "video/mp4", "signatureCipher": "s=XYZ"}
			]
		}
	}`)

	r := response.Parse(response.NewOptions(), doc)

	if r.StreamingData == nil {
		t.Fatal("expected streaming data to be projected")
	}
	if len(r.StreamingData.Formats) != 1 || r.StreamingData.Formats[0].Itag != 18 {
		t.Fatalf("unexpected formats: %+v", r.StreamingData.Formats)
	}
	if len(r.StreamingData.AdaptiveFormats) != 1 || r.StreamingData.AdaptiveFormats[0].Nonce == "" {
		t.Fatalf("expected adaptive format to carry a derived nonce: %+v", r.StreamingData.AdaptiveFormats)
	}
	wantExpiry := before.Add(21540 * time.Second)
	if diff := r.StreamingData.ExpiresAt.Sub(wantExpiry); diff < -time.Second || diff > time.Second {
		t.Fatalf("expected expiry around %v, got %v", wantExpiry, r.StreamingData.ExpiresAt)
	}
}

func TestParseEstimatedResultsNumericString(t *testing.T) {
	// estimatedResults arrives as a numeric string upstream (spec.md §9),
	// not a JSON number.
	doc := decode(t, `{"estimatedResults": "1000000"}`)

	r := response.Parse(response.NewOptions(), doc)

	if r.EstimatedResults != 1000000 {
		t.Fatalf("expected EstimatedResults 1000000, got %d", r.EstimatedResults)
	}
}

func TestParseActionsStripsClickTracking(t *testing.T) {
	doc := decode(t, `{
		"actions": [
			{"clickTrackingParams": "xyz", "signalAction": {"signal": "LIKE"}}
		]
	}`)

	r := response.Parse(response.NewOptions(), doc)

	if r.Actions.Len() != 1 {
		t.Fatalf("expected 1 action node, got %d", r.Actions.Len())
	}
	if tag := r.Actions.At(0).TypeTag(); tag != "SignalAction" {
		t.Fatalf("expected SignalAction, got %s", tag)
	}
}

func TestParsePlayerResponseRecursesWithIsolatedMemo(t *testing.T) {
	doc := decode(t, `{
		"contents": {"videoRenderer": {"videoId": "outer"}},
		"playerResponse": {
			"contents": {"videoRenderer": {"videoId": "inner"}}
		}
	}`)

	r := response.Parse(response.NewOptions(), doc)

	outer, _ := r.Contents.AsSingle()
	if v, _ := outer.Key("targetId"); v != "outer" {
		t.Fatalf("expected outer targetId, got %v", v)
	}
	if r.PlayerResponse == nil {
		t.Fatal("expected a nested player response")
	}
	inner, _ := r.PlayerResponse.Contents.AsSingle()
	if v, _ := inner.Key("targetId"); v != "inner" {
		t.Fatalf("expected inner targetId, got %v", v)
	}
	if r.ContentsMemo.Len() != 1 || r.PlayerResponse.ContentsMemo.Len() != 1 {
		t.Fatalf("expected each recursion level to keep its own one-node memo: outer=%d inner=%d",
			r.ContentsMemo.Len(), r.PlayerResponse.ContentsMemo.Len())
	}
}

func TestResponseContextProjection(t *testing.T) {
	doc := decode(t, `{
		"responseContext": {
			"visitorData": "CgVvp...",
			"serviceTrackingParams": [{"service": "GFEEDBACK", "params": []}]
		}
	}`)

	r := response.Parse(response.NewOptions(), doc)

	if r.ResponseContext == nil {
		t.Fatal("expected responseContext to be projected")
	}
	if r.ResponseContext.VisitorData != "CgVvp..." {
		t.Fatalf("unexpected visitorData: %q", r.ResponseContext.VisitorData)
	}
	if len(r.ResponseContext.ServiceTrackingParams) != 1 {
		t.Fatalf("expected 1 service tracking param, got %d", len(r.ResponseContext.ServiceTrackingParams))
	}
}
