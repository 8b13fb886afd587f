// Package nodes exists solely to trigger, via blank import, registration
// of every concrete node class from nodes/render, nodes/continuation,
// nodes/command, and nodes/mutation into the shared registry.Default.
// Importing nodes (typically blank-imported by package response or by
// cmd/ytparse) guarantees every subpackage's init()-time
// Registered.Add calls have already run, since Go runs an imported
// package's init functions before its importer's — draining them here,
// once, keeps registration order deterministic regardless of which
// subpackage main ends up importing directly.
package nodes

import (
	"github.com/bittoy/ytparse/nodes/command"
	"github.com/bittoy/ytparse/nodes/continuation"
	"github.com/bittoy/ytparse/nodes/mutation"
	"github.com/bittoy/ytparse/nodes/render"
	"github.com/bittoy/ytparse/registry"
)

func init() {
	// Errors here mean a duplicate static class tag — a programmer error at
	// startup; there's no recovery path from an init(), so they're discarded
	// the same way the teacher's own bootstrap registration does.
	_ = registry.Default.RegisterAll(render.Registered.Registrations())
	_ = registry.Default.RegisterAll(continuation.Registered.Registrations())
	_ = registry.Default.RegisterAll(command.Registered.Registrations())
	_ = registry.Default.RegisterAll(mutation.Registered.Registrations())
}
