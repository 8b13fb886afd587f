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

// Package types defines the core interfaces, data structures, and contracts
// shared by every component of the response parser.
//
// 包 types 定义了响应解析器各组件共享的核心接口、数据结构和契约。
//
// # Key Components
// # 关键组件
//
//   - Node: the capability surface every parsed tree node implements
//     Node：每个解析出的树节点实现的能力接口
//   - Constructor: the function signature the registry dispatches to
//     Constructor：注册表分发所用的构造函数签名
//   - ObservedArray / SuperParsedResult: the ordered-collection and
//     poly-parse wrappers callers consume
//     ObservedArray / SuperParsedResult：调用方消费的有序集合与多态解析包装
//
// # Architecture Overview
// # 架构概览
//
// A raw document is an untyped recursive tree (package rawnode). The
// response parser (package response) walks its known top-level sections,
// delegating node-by-node construction to the item/array/poly parser
// (package parser), which dispatches by sanitized class name through the
// registry (package registry), falling back to runtime stub synthesis
// (package stub) for unknown classes. Every constructed node is recorded
// into the section's memo (package memo); after structural parsing the
// mutation engine (package mutation) patches memo-resident nodes from the
// document's entity batch.
//
// 原始文档是无类型的递归树（rawnode 包）。响应解析器（response 包）遍历其
// 已知的顶层分区，将逐节点构造委托给条目/数组/多态解析器（parser 包），
// 后者通过注册表（registry 包）按清洗后的类名分发，对未知类退回运行时存根
// 合成（stub 包）。每个构造出的节点都记录到该分区的备忘录（memo 包）中；
// 结构化解析完成后，变更引擎（mutation 包）根据文档的实体批次修补备忘录中
// 驻留的节点。
package types

import "github.com/bittoy/ytparse/rawnode"

// TypeTag is a sanitized class name — the registry key and the identity
// every Node reports via TypeTag(). See package sanitize for the
// normalization algorithm (capitalize, strip Renderer/Model, Radio→Mix).
//
// TypeTag 是经过清洗的类名——注册表键，也是每个 Node 通过 TypeTag() 报告的
// 身份。
type TypeTag string

// Node is the capability surface every parsed tree node implements. It is
// the direct generalization of the teacher framework's component interface
// (New/Type/Init/OnMsg/Destroy) to this domain's narrower contract: a node
// here is built once from a raw body by a Constructor and never
// re-initialized, destroyed, or messaged — there is no lifecycle because
// there is no execution, only a tree to build.
//
// Node 是每个解析出的树节点实现的能力接口。
type Node interface {
	// TypeTag returns the node's sanitized class name. Always equal to the
	// name the registry dispatched on to construct it (spec invariant).
	TypeTag() TypeTag

	// Is reports whether the node's TypeTag equals any of tags. Matching is
	// flat, by TypeTag equality — there is no subtype polymorphism.
	Is(tags ...TypeTag) bool

	// HasKey reports whether the node carries a dynamic field named key.
	// Concrete node classes answer this from the Properties bag held by
	// their embedded nodes/common.Base; stub nodes (package stub) answer it
	// from their synthesized field map.
	HasKey(key string) bool

	// Key fetches a dynamic field named key, or ok=false if absent. Use
	// HasKey first when the caller needs to distinguish "absent" from "an
	// empty/zero value present".
	Key(key string) (rawnode.Raw, bool)
}

// As casts n to one of tags, returning (n, true) if n.Is(tags...), or
// (nil, false) otherwise. A free function rather than a method so it
// composes with the nil Node returned from a failed or empty parse.
func As(n Node, tags ...TypeTag) (Node, bool) {
	if n == nil || !n.Is(tags...) {
		return nil, false
	}
	return n, true
}

// Constructor builds a Node from a wrapper's raw body. It receives the
// enclosing ParseContext so it can recurse into nested wrappers/arrays via
// package parser's ParseItem/ParseArray — the same active memo stays
// threaded through the whole recursive descent for one section. On an
// internal failure it returns a non-nil error instead of panicking;
// ParseItem turns that into a `parse` report event and an empty result. A
// Constructor must not leak partially constructed state on failure (spec
// invariant): return (nil, err), never a half-populated Node alongside an
// error.
type Constructor func(pc *ParseContext, body rawnode.Raw) (Node, error)

// CategoryGetter is an optional interface a Constructor's registered
// prototype can implement to group node classes for diagnostics and
// tooling (e.g. listing all registered "continuation" classes).
type CategoryGetter interface {
	Category() string
}

// DescGetter is an optional interface a Constructor's registered prototype
// can implement to supply a short human-readable description, surfaced by
// the dynamic-registrations query (see package registry) for tooling that
// lists synthesized stub classes alongside their introspected shape.
type DescGetter interface {
	Desc() string
}
