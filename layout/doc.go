// Package layout turns a tree of styled text blocks into fixed-width,
// optionally ANSI-coloured terminal output: greedy word wrap, margin
// collapsing between sibling blocks, and table column sizing.
package layout
