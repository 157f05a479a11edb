// Package validate matches an expanded [ast.Doc] against a [schema.Pattern]
// and produces either a typed [Instance] tree (a proof of the match) or an
// [Error].
//
// Validation errors are stratified into non-fatal (a [Kind] of Expected,
// which drives alternation in a Choice pattern) and fatal (WrongArgCount,
// WrongElementContent, SchemaError), which abort the whole match regardless
// of where they occur. [Error.IsFatal] reports which is which.
//
// Instance nodes are built and addressed by pointer: [Instance] values are
// always handled as *Instance, so the number package can key a table on
// node identity (spec.md §9's design note for garbage-collected targets).
package validate
