// Package wireschema hand-builds JSON Schema (Draft 7) descriptions of the
// wire formats sst emits over JSON: [ast.Doc]/[ast.Item]/[ast.Pos] (§6.2)
// and [validate.Instance]. It exists for downstream tooling that consumes
// `sst parse`, `sst eval`, or `sst check --json` output and
// wants to validate it without re-deriving the shape from this module's
// Go types, exposed via `sst schema-json {doc,instance}`.
package wireschema
