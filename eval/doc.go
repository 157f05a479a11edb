// Package eval expands macro calls and built-ins in a parsed [ast.Doc].
//
// The macro environment is a persistent, lexically scoped linked list of
// frames (one per \def), so a macro sees the bindings in scope at its
// definition site, not at its call site, and expansion is idempotent:
// evaluating an already-fully-expanded Doc is a no-op since it contains no
// more macro calls to resolve.
//
// Five tags are built in rather than user-definable macros: \def binds a
// name (optionally with arity and named defaults) to a body; \# is a
// comment and contributes nothing; \strip evaluates its single argument in
// the current environment and inlines the result into the surrounding Doc
// (a \def inside it is not visible after it); \include parses and
// recursively expands another file starting from an empty environment;
// \includeraw splices another file's contents in as literal text.
package eval
