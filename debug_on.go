//go:build flattree_debug

package flattree

// debugChecks enables assertions on the build path. Compile with
//
//	go build -tags flattree_debug
const debugChecks = true
