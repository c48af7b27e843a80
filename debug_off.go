//go:build !flattree_debug

package flattree

const debugChecks = false
