// Package render turns a validated [validate.Instance] proof tree into
// terminal-ready text via the layout package, dispatching on each node's
// element tag the way to_text.rs's recursive-descent renderer does.
package render
