package report

import "testing"

import "github.com/bittoy/ytparse/types"

func TestCollectorByCategory(t *testing.T) {
	c := NewCollector()
	c.Report(types.Event{Category: types.CategoryParse, ClassName: "Video"})
	c.Report(types.Event{Category: types.CategoryClassNotFound, ClassName: "Foo"})
	c.Report(types.Event{Category: types.CategoryParse, ClassName: "Shelf"})

	parseEvents := c.ByCategory(types.CategoryParse)
	if len(parseEvents) != 2 {
		t.Fatalf("len(parse events) = %d, want 2", len(parseEvents))
	}
	if parseEvents[0].ClassName != "Video" || parseEvents[1].ClassName != "Shelf" {
		t.Errorf("unexpected order: %+v", parseEvents)
	}
	if len(c.Events) != 3 {
		t.Errorf("len(c.Events) = %d, want 3", len(c.Events))
	}
}

func TestSetDefaultReplacesProcessWideReporter(t *testing.T) {
	orig := GetDefault()
	defer SetDefault(orig)

	c := NewCollector()
	SetDefault(c)

	if GetDefault() != types.Reporter(c) {
		t.Fatal("expected GetDefault to return the reporter passed to SetDefault")
	}
	GetDefault().Report(types.Event{Category: types.CategoryParse, ClassName: "Video"})
	if len(c.Events) != 1 {
		t.Fatalf("expected the replaced default to receive the event, got %d events", len(c.Events))
	}
}

func TestDefaultReportDoesNotPanic(t *testing.T) {
	d := NewDefault(zerologNop())
	for _, cat := range []types.Category{
		types.CategoryParse,
		types.CategoryTypecheck,
		types.CategoryMutationDataMissing,
		types.CategoryMutationDataInvalid,
		types.CategoryClassNotFound,
		types.CategoryClassChanged,
		types.Category("unknown"),
	} {
		d.Report(types.Event{Category: cat})
	}
}
