// Package parser turns SST source text into a raw [ast.Doc].
//
// [ParseString] runs a recursive-descent parser with committed
// alternatives: once a `\`, `{{`, `\begin{`, or an argument delimiter has
// been consumed, failure is fatal -- there is no backtracking across that
// commit point. A closing `}` or `]` that was not expected simply ends the
// enclosing doc (it is the caller's job to consume it).
//
// # Lexical surface
//
// Text is any maximal run of characters other than `{`, `}`, `[`, `]`, `\`.
// `{{ ... }}` encloses a raw text block with nesting support. `\tag` starts
// a short-form element (`[name=doc]` named arguments, then `{doc}`
// positional arguments); `\begin{tag} ... \end{tag}` starts a long-form
// element whose nested doc becomes the final positional argument. Tag names
// are `[a-z0-9#]+`; `begin` and `end` are reserved.
//
// # Indentation normalization
//
// After a Doc is fully parsed, [Normalize] strips the common leading
// whitespace shared by every complete line across all text items reachable
// within that Doc (recursing into every named and positional argument
// first), and drops a single leading blank line from the first text item.
// This lets authors indent source freely inside arguments without that
// indentation leaking into rendered output. [ParseString] applies
// Normalize to its result before returning.
package parser
