// Package schema defines the pattern algebra used to describe the valid
// shape of an expanded document, plus the registry ([Schema]) that maps
// each element tag to the pattern list for its positional arguments.
//
// A [Pattern] is a small regular-expression-like grammar over [ast.Doc]:
// Text matches one text run, ElementRef matches one element of a given
// tag, Para brackets a paragraph, Seq concatenates, Choice tries
// alternatives in order, and Many repeats with an inclusive lower bound
// and optional inclusive upper bound. The validate package walks a Doc
// against a Pattern and produces a typed instance tree mirroring the
// pattern's shape.
package schema
