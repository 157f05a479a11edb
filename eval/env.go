package eval

import "github.com/sstlang/sst/ast"

// frame is one binding in the persistent, reference-counted-in-spirit
// macro environment: a lexically scoped linked list. Go's garbage
// collector takes the place of the reference counting the chain would
// otherwise need, since a frame is only ever reachable through other
// frames or still-live call frames of eval.
type frame struct {
	name     string
	arity    int
	defaults map[string]ast.Doc
	body     ast.Doc
	next     *frame
}

// lookupEnv walks env from the innermost binding outward and returns the
// first frame whose name matches, or nil if none does.
func lookupEnv(name string, env *frame) *frame {
	for env != nil && env.name != name {
		env = env.next
	}

	return env
}

// toMacro binds name to a zero-arity macro whose body is the given Doc,
// used to bind a call's arguments ("0", "1", ...) and named defaults
// inside the macro body's environment.
func toMacro(name string, body ast.Doc, next *frame) *frame {
	return &frame{name: name, body: body, next: next}
}
