package types

// SuperParsedResult is a discriminated union of a single parsed Node and an
// ObservedArray, matching the design note in spec.md §9: "model as a
// discriminated union ... callers branch on variant rather than via duck
// typing". Produced by parser.Parse when RequireArray is false and the
// input's shape (single wrapper vs. list of wrappers) is not known ahead of
// time.
type SuperParsedResult struct {
	single Node
	many   ObservedArray
	isMany bool
}

// Single wraps a lone parsed node.
func Single(n Node) SuperParsedResult {
	return SuperParsedResult{single: n}
}

// Many wraps an observed array.
func Many(arr ObservedArray) SuperParsedResult {
	return SuperParsedResult{many: arr, isMany: true}
}

// IsMany reports whether the result holds an ObservedArray (input was a
// list) rather than a single Node (input was a wrapper).
func (r SuperParsedResult) IsMany() bool {
	return r.isMany
}

// AsSingle returns the single node and true, or (nil, false) if the result
// holds an array instead.
func (r SuperParsedResult) AsSingle() (Node, bool) {
	if r.isMany {
		return nil, false
	}
	return r.single, r.single != nil
}

// AsArray returns the observed array and true, or (ObservedArray{}, false)
// if the result holds a single node instead.
func (r SuperParsedResult) AsArray() (ObservedArray, bool) {
	if !r.isMany {
		return ObservedArray{}, false
	}
	return r.many, true
}

// IsEmpty reports whether the result carries neither a node nor any array
// elements.
func (r SuperParsedResult) IsEmpty() bool {
	if r.isMany {
		return r.many.Len() == 0
	}
	return r.single == nil
}
