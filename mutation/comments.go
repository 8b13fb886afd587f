package mutation

import (
	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/types"
)

// applyComments implements spec §4.H's CommentView pass. mutation_data_missing
// fires when the memo holds comment-views but the mutations list is absent
// entirely. When mutations are present but a given comment-view's four
// lookups all miss, ApplyMutations still runs with every argument nil and
// no event is emitted — the Open Question in spec.md §9 preserves that
// upstream behavior rather than adding a new diagnostic for it.
func applyComments(cfg types.Config, m *memo.Memo, records []Record, mutationsPresent bool) {
	nodes := m.Get("CommentView")
	if len(nodes) == 0 {
		return
	}
	if !mutationsPresent {
		reportEvent(cfg, types.Event{
			Category:  types.CategoryMutationDataMissing,
			ClassName: "CommentView",
		})
		return
	}

	byEntityKey := make(map[string]Record, len(records))
	byCommentKey := make(map[string]Record, len(records))
	byToolbarStateKey := make(map[string]Record, len(records))
	byCommentSurfaceKey := make(map[string]Record, len(records))
	for _, rec := range records {
		env := envOf(rec)
		byEntityKey[rec.EntityKey] = rec
		if key, ok := extractString(env, "payload.commentEntityPayload.key"); ok {
			byCommentKey[key] = rec
		}
		if key, ok := extractString(env, "payload.engagementToolbarStateEntityPayload.key"); ok {
			byToolbarStateKey[key] = rec
		}
		if key, ok := extractString(env, "payload.commentSurfaceEntityPayload.key"); ok {
			byCommentSurfaceKey[key] = rec
		}
	}

	for _, n := range nodes {
		target, ok := n.(CommentTarget)
		if !ok {
			continue
		}
		comment := rawPayload(byCommentKey, target.CommentKey())
		toolbarState := rawPayload(byToolbarStateKey, target.ToolbarStateKey())
		toolbarSurface := rawPayload(byEntityKey, target.ToolbarSurfaceKey())
		commentSurface := rawPayload(byCommentSurfaceKey, target.CommentSurfaceKey())
		target.ApplyMutations(comment, toolbarState, toolbarSurface, commentSurface)
	}
}

func rawPayload(index map[string]Record, key string) any {
	if key == "" {
		return nil
	}
	rec, ok := index[key]
	if !ok {
		return nil
	}
	return toRaw(rec.Payload)
}
