package parser

import "github.com/bittoy/ytparse/nodes/ignored"

// isIgnored reports whether className is in the closed ignored-class set
// from spec §6 (package nodes/ignored): sanitized names that produce no
// typed node and no error, silently skipped by ParseItem.
func isIgnored(className string) bool {
	return ignored.Is(className)
}
