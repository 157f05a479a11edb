// Package number assigns hierarchical section numbers to chapter, section,
// and subsection instance nodes produced by the validate package.
//
// Numbering keys its table on instance node identity -- a *validate.Instance
// is a stable address for the lifetime of the tree it belongs to, taking
// the place of number.rs's InstanceByAddr (spec.md §9's design note for
// garbage-collected targets) -- so the renderer can look up a chapter's
// number by the very node it already holds, with no separate id scheme.
package number
