/*
 * Copyright 2025 The RuleGo Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package parser

import (
	"github.com/bittoy/ytparse/rawnode"
	"github.com/bittoy/ytparse/types"
)

// continuationContainers is the closed match from spec §4.F: a small set
// of known continuation-container wrapper keys, each naming the one
// continuation node type it dispatches to. Exactly one branch fires; an
// unrecognized key yields empty, never a stub synthesis — continuation
// shapes are a closed, upstream-stable set.
var continuationContainers = map[string]types.TypeTag{
	"timedContinuationData":         "TimedContinuation",
	"itemSectionContinuation":       "ItemSectionContinuation",
	"sectionListContinuation":       "SectionListContinuation",
	"liveChatContinuation":          "LiveChatContinuation",
	"musicPlaylistShelfContinuation": "MusicPlaylistShelfContinuation",
	"musicShelfContinuation":        "MusicShelfContinuation",
	"gridContinuation":              "GridContinuation",
	"playlistPanelContinuation":     "PlaylistPanelContinuation",
	"continuationCommand":           "ContinuationCommand",
}

// ParseContinuation implements spec §4.F's continuation dispatcher. raw
// must be a single wrapper; its first key is matched against
// continuationContainers with no sanitization (continuation container keys
// are not renderer/model class names).
func ParseContinuation(pc *types.ParseContext, raw rawnode.Raw) (types.Node, bool) {
	key, body, ok := rawnode.FirstKey(raw)
	if !ok {
		return nil, false
	}
	tag, known := continuationContainers[key]
	if !known {
		return nil, false
	}
	cfg := pc.Config
	ctor, found := cfg.Registry.Lookup(tag)
	if !found {
		return nil, false
	}
	node, err := ctor(pc, body)
	if err != nil {
		report(cfg, types.Event{Category: types.CategoryParse, ClassName: string(tag), Body: body, Err: err})
		return nil, false
	}
	if node == nil {
		return nil, false
	}
	if active := pc.ActiveOrNil(); active != nil {
		active.Add(node.TypeTag(), node)
	}
	return node, true
}

// responseReceivedTags is the second closed set from spec §4.F, matched by
// the dispatched class's sanitized type_tag rather than by raw key,
// because onResponseReceivedActions/Endpoints/Commands entries are
// themselves Command/Endpoint/Action wrappers (see command.go). The
// sanitizer only strips Renderer/Model (§4.C) — it never strips
// Command/Endpoint/Action — so these tags retain their raw suffix, unlike
// the continuationContainers tags above which name their own node classes
// directly.
var responseReceivedTags = map[types.TypeTag]bool{
	"NavigateAction":                  true,
	"ShowMiniplayerCommand":           true,
	"ReloadContinuationItemsCommand":  true,
	"AppendContinuationItemsAction":   true,
	"OpenPopupAction":                 true,
}

// ParseResponseReceived implements spec §4.F's parse_response_received:
// dispatch every entry as a command, then filter to the closed set of
// known response-received classes, dropping unmatched entries silently.
func ParseResponseReceived(pc *types.ParseContext, raw rawnode.Raw) types.ObservedArray {
	list, ok := rawnode.AsList(raw)
	if !ok {
		return types.NewObservedArray(nil)
	}
	var out []types.Node
	for _, item := range list {
		node, ok := ParseCommand(pc, item)
		if ok && responseReceivedTags[node.TypeTag()] {
			out = append(out, node)
		}
	}
	return types.NewObservedArray(out)
}
