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

// Package maps reproduces the teacher module's missing utils/maps helper
// (referenced but absent from the retrieved example tree) with a thin
// wrapper over github.com/mitchellh/mapstructure, used by
// nodes/common.ProjectText to project a raw wrapper body's plain
// map[string]any view onto a typed struct without per-field boilerplate.
//
// Package maps 是围绕 mapstructure 的薄封装，用于将原始包装体投影到类型化结构体。
package maps

import "github.com/mitchellh/mapstructure"

// Map2Struct decodes src (typically rawnode.AsMap's output) into dst, a
// pointer to a struct tagged with `mapstructure:"camelKey"`. Unknown
// fields in src are ignored, matching this module's tolerant-parsing
// stance: an upstream schema addition must never fail a constructor.
func Map2Struct(src map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(src)
}

// Struct2Map is the inverse projection. Nothing in this module calls it.
func Struct2Map(src any) (map[string]any, error) {
	var out map[string]any
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(src); err != nil {
		return nil, err
	}
	return out, nil
}
