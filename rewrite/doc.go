// Package rewrite provides ordered, cascading literal substitution over
// strings.
//
// A rewrite is a list of (Old, New) pairs applied sequentially: each
// pair replaces every occurrence of Old in the current text before the
// next pair is considered. Order is significant — later pairs observe
// the output of earlier ones, and the list is traversed exactly once
// (no fixed-point iteration).
//
// Matching is purely literal; there is no pattern language.
//
// ⚙️ Usage:
//
//	out := rewrite.Rewrite("x-x-x-x", []rewrite.Pair{
//	  {Old: "x", New: "est"},
//	  {Old: "est", New: "test"},
//	})
//	// out == "test-test-test-test"
//
// Complexity: O(P·N) for P pairs over text of length N.
package rewrite
