package eval

import (
	"strconv"
	"strings"

	"github.com/sstlang/sst/ast"
	"github.com/sstlang/sst/parser"
)

// Eval expands every macro call and built-in (\def, \#, \strip, \include,
// \includeraw) in doc and returns the expanded Doc. Elements that are
// neither a built-in nor a bound macro are kept as-is, with their own
// arguments evaluated in the current environment.
func Eval(doc ast.Doc) (ast.Doc, error) {
	return eval2(nil, doc)
}

func eval2(env *frame, doc ast.Doc) (ast.Doc, error) {
	var result ast.Doc
	if err := evalInto(&result, env, doc); err != nil {
		return ast.Doc{}, err
	}

	return result, nil
}

// evalInto expands doc's items into dst. env is threaded imperatively
// across the loop: a \def rebinds it for every sibling item that follows,
// the same as a sequence of top-level let-bindings.
func evalInto(dst *ast.Doc, env *frame, doc ast.Doc) error {
	for _, it := range doc.Items {
		switch it.Kind {
		case ast.Text:
			dst.AppendText(it.Text, it.Pos)

		case ast.ElementItem:
			switch it.Tag {
			case "def":
				newEnv, err := evalDef(env, it)
				if err != nil {
					return err
				}

				env = newEnv

			case "#":
				// comment: contributes nothing.

			case "strip":
				if len(it.PosArgs) != 1 {
					return &Error{Kind: BadStrip, Pos: it.ElementPos}
				}

				if err := evalInto(dst, env, it.PosArgs[0]); err != nil {
					return err
				}

			case "include":
				path, content, err := readIncludeFile(it)
				if err != nil {
					return err
				}

				included, err := parser.ParseString(path, content)
				if err != nil {
					return err
				}

				if err := evalInto(dst, nil, included); err != nil {
					return err
				}

			case "includeraw":
				path, content, err := readIncludeFile(it)
				if err != nil {
					return err
				}

				dst.AppendText(content, ast.NewPos(path, 0, 0))

			default:
				if err := evalCall(dst, env, it); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// evalCall expands a call to a bound macro, or, if no macro is bound for
// the tag, copies the element through with its own arguments evaluated.
func evalCall(dst *ast.Doc, env *frame, it ast.Item) error {
	m := lookupEnv(it.Tag, env)
	if m == nil {
		namedArgs, err := evalArgMap(env, it.NamedArgs)
		if err != nil {
			return err
		}

		posArgs, err := evalArgSlice(env, it.PosArgs)
		if err != nil {
			return err
		}

		dst.Append(ast.NewElement(it.Tag, namedArgs, posArgs, it.ElementPos))

		return nil
	}

	if m.arity != len(it.PosArgs) && !(m.arity == 0 && it.IsEmpty()) {
		return &Error{Kind: WrongMacroArgCount, Pos: it.ElementPos, Name: m.name, Want: m.arity, Got: len(it.PosArgs)}
	}

	callEnv := m.next

	for name, def := range m.defaults {
		if arg, ok := it.NamedArgs[name]; ok {
			callEnv = toMacro(name, arg, callEnv)
		} else {
			callEnv = toMacro(name, def, callEnv)
		}
	}

	for n := range m.arity {
		callEnv = toMacro(strconv.Itoa(n), it.PosArgs[n], callEnv)
	}

	return evalInto(dst, callEnv, m.body)
}

func evalDef(env *frame, it ast.Item) (*frame, error) {
	if len(it.PosArgs) != 2 {
		return nil, &Error{Kind: WrongDefArgCount, Pos: it.ElementPos, Got: len(it.PosArgs)}
	}

	name, ok := firstText(it.PosArgs[0])
	if !ok {
		return nil, &Error{Kind: InvalidMacroName, Pos: it.ElementPos}
	}

	arity := 0

	var defaults map[string]ast.Doc

	for argName, argDoc := range it.NamedArgs {
		if argName != "arity" {
			if defaults == nil {
				defaults = map[string]ast.Doc{}
			}

			defaults[argName] = argDoc
		}
	}

	if x, ok := it.NamedArgs["arity"]; ok {
		s, ok := exactText(x)
		if !ok {
			return nil, &Error{Kind: BadArity, Pos: it.ElementPos}
		}

		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			return nil, &Error{Kind: BadArity, Pos: it.ElementPos}
		}

		arity = n
	}

	return &frame{
		name:     name,
		arity:    arity,
		defaults: defaults,
		body:     it.PosArgs[1],
		next:     env,
	}, nil
}

func evalArgMap(env *frame, args map[string]ast.Doc) (map[string]ast.Doc, error) {
	if len(args) == 0 {
		return nil, nil
	}

	out := make(map[string]ast.Doc, len(args))

	for name, body := range args {
		evaluated, err := eval2(env, body)
		if err != nil {
			return nil, err
		}

		out[name] = evaluated
	}

	return out, nil
}

func evalArgSlice(env *frame, args []ast.Doc) ([]ast.Doc, error) {
	if len(args) == 0 {
		return nil, nil
	}

	out := make([]ast.Doc, len(args))

	for i, arg := range args {
		evaluated, err := eval2(env, arg)
		if err != nil {
			return nil, err
		}

		out[i] = evaluated
	}

	return out, nil
}

// firstText returns the text of d's first item, ignoring any items after
// it, as used for a \def's name argument.
func firstText(d ast.Doc) (string, bool) {
	if len(d.Items) == 0 || d.Items[0].Kind != ast.Text {
		return "", false
	}

	return d.Items[0].Text, true
}

// exactText returns the text of d when d is exactly one Text item.
func exactText(d ast.Doc) (string, bool) {
	if len(d.Items) != 1 || d.Items[0].Kind != ast.Text {
		return "", false
	}

	return d.Items[0].Text, true
}
