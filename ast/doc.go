// Package ast defines the document tree shared by the parser and evaluator
// stages of the SST pipeline.
//
// A [Doc] is an ordered sequence of [Item]; an Item is either a run of Text
// or an [Element] carrying named and positional arguments, each itself a
// Doc. The same shape is used for both the raw tree produced by the parser
// and the expanded tree produced by the evaluator -- only the set of tags
// present differs.
//
// # Invariants
//
// Every Doc maintained by this package satisfies two invariants, enforced
// by [Doc.Append] rather than left to callers:
//
//   - no two adjacent Items are both Text (adjacent text runs are merged);
//   - no Item is an empty Text run.
//
// [Pos] records a zero-based line and column (counted in Unicode code
// points) plus an optional filename. Positions sharing a source file share
// the same *string via [Pos.Filename] to avoid per-position string copies.
package ast
