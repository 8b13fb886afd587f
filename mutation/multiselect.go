package mutation

import (
	"github.com/bittoy/ytparse/memo"
	"github.com/bittoy/ytparse/types"
)

// applyMultiSelect implements spec §4.H's MusicMultiSelectMenuItem pass.
func applyMultiSelect(cfg types.Config, m *memo.Memo, records []Record, mutationsPresent bool) {
	nodes := m.Get("MusicMultiSelectMenuItem")
	if len(nodes) == 0 {
		return
	}
	if !mutationsPresent {
		reportEvent(cfg, types.Event{
			Category:  types.CategoryMutationDataMissing,
			ClassName: "MusicMultiSelectMenuItem",
		})
		return
	}

	var failedTitles []string
	for _, n := range nodes {
		target, ok := n.(MultiSelectTarget)
		if !ok {
			continue
		}
		matched := false
		for _, rec := range records {
			env := envOf(rec)
			id, ok := extractString(env, "payload.musicFormBooleanChoice.id")
			if !ok || id != target.FormItemEntityKey() {
				continue
			}
			selected, hasSelected := extract(env, "payload.musicFormBooleanChoice.selected")
			opaqueToken, hasToken := extractString(env, "payload.musicFormBooleanChoice.opaqueToken")
			if !hasSelected || !hasToken {
				continue
			}
			sel, _ := selected.(bool)
			target.ApplySelection(sel, opaqueToken)
			matched = true
			break
		}
		if !matched {
			failedTitles = append(failedTitles, target.Title())
		}
	}

	if len(failedTitles) > 0 {
		reportEvent(cfg, types.Event{
			Category:      types.CategoryMutationDataInvalid,
			TotalAffected: len(nodes),
			FailedTitles:  failedTitles,
		})
	}
}

func reportEvent(cfg types.Config, ev types.Event) {
	if cfg.Reporter != nil {
		cfg.Reporter.Report(ev)
	}
}
