package types

import "github.com/bittoy/ytparse/rawnode"

// Category identifies one of the six diagnostic event shapes the error
// reporter (package report, §4.J) can receive. Never thrown: always routed
// through Reporter.Report and never influences control flow.
type Category string

const (
	// CategoryParse: a constructor threw (returned a non-nil error).
	// Carries the raw body that failed to construct.
	CategoryParse Category = "parse"
	// CategoryTypecheck: a dispatched class's TypeTag was not in the
	// allowed set passed to ParseItem/ParseArray/Parse. Carries the actual
	// and expected tags.
	CategoryTypecheck Category = "typecheck"
	// CategoryMutationDataMissing: the memo has nodes a mutation pass
	// would affect, but framework_updates.entity_batch_update.mutations was
	// absent entirely.
	CategoryMutationDataMissing Category = "mutation_data_missing"
	// CategoryMutationDataInvalid: an aggregate report of mutation targets
	// that had no matching mutation record (total affected, failed count,
	// failed titles).
	CategoryMutationDataInvalid Category = "mutation_data_invalid"
	// CategoryClassNotFound: a sanitized class name had no registry
	// entry; carries the introspected KeyInfo and a diagnostic class
	// sketch.
	CategoryClassNotFound Category = "class_not_found"
	// CategoryClassChanged: a previously synthesized class's key shape
	// changed on a later parse; carries the prior/current KeyInfo diff.
	CategoryClassChanged Category = "class_changed"
)

// Event is the single shape carried to Reporter.Report for every category.
// Fields not meaningful for a given Category are left zero.
type Event struct {
	Category Category

	// CategoryParse
	ClassName string
	Body      rawnode.Raw
	Err       error

	// CategoryTypecheck
	Actual   TypeTag
	Expected []TypeTag

	// CategoryMutationDataMissing / CategoryMutationDataInvalid
	TotalAffected int
	FailedTitles  []string

	// CategoryClassNotFound / CategoryClassChanged
	KeyInfo     []KeyInfo
	PriorInfo   []KeyInfo
	ClassSketch string
}

// KeyInfo describes one immediate field of an introspected unknown wrapper
// body: its camelCase source key and the inferred shape of its value.
type KeyInfo struct {
	Key  string
	Kind KeyKind
}

// KeyKind is the inferred shape of a raw field's value, used by the stub
// generator (package stub) to decide how to project and how to recurse.
type KeyKind string

const (
	KindPrimitive KeyKind = "primitive" // string, number, bool
	KindArray     KeyKind = "array"
	KindWrapper   KeyKind = "wrapper" // a single-key class wrapper
	KindObject    KeyKind = "object"  // a multi-key plain object
	KindMisc      KeyKind = "misc"    // a recognized non-wrapper shape (e.g. an endpoint container)
	KindUnknown   KeyKind = "unknown"
)
