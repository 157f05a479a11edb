package eval_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstlang/sst/ast"
	"github.com/sstlang/sst/eval"
	"github.com/sstlang/sst/parser"
)

func evalSource(t *testing.T, src string) (ast.Doc, error) {
	t.Helper()

	doc, err := parser.ParseString("", src)
	require.NoError(t, err)

	return eval.Eval(doc)
}

func text(t *testing.T, doc ast.Doc) string {
	t.Helper()

	require.Len(t, doc.Items, 1)
	require.Equal(t, ast.Text, doc.Items[0].Kind)

	return doc.Items[0].Text
}

func TestEval_SimpleMacro(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def{greet}{hi}\greet`)
	require.NoError(t, err)
	assert.Equal(t, "hi", text(t, doc))
}

func TestEval_MacroWithArgs(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def[arity=1]{shout}{\0!}\shout{hi}`)
	require.NoError(t, err)
	assert.Equal(t, "hi!", text(t, doc))
}

func TestEval_MacroDefaultArgument(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def[greeting=hello]{greet}{\greeting}\greet`)
	require.NoError(t, err)
	assert.Equal(t, "hello", text(t, doc))
}

func TestEval_MacroDefaultArgumentOverridden(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def[greeting=hello]{greet}{\greeting}\greet[greeting=hi]`)
	require.NoError(t, err)
	assert.Equal(t, "hi", text(t, doc))
}

// TestEval_LexicalScoping pins down the subtlety the evaluator's own doc
// comment flags: a macro's body is expanded in the environment captured at
// \def time, not at the call site, so a later redefinition of a name the
// macro's body references does not affect it.
func TestEval_LexicalScoping(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def{x}{outer}\def{f}{\x}\def{x}{inner}\f`)
	require.NoError(t, err)
	assert.Equal(t, "outer", text(t, doc))
}

func TestEval_ZeroArityBareCall(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def{x}{hi}\x`)
	require.NoError(t, err)
	assert.Equal(t, "hi", text(t, doc))
}

func TestEval_ZeroArityEmptyBracesCall(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\def{x}{hi}\x{}`)
	require.NoError(t, err)
	assert.Equal(t, "hi", text(t, doc))
}

func TestEval_UnboundTagPassesThrough(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\emph{hi}`)
	require.NoError(t, err)
	require.Len(t, doc.Items, 1)
	assert.Equal(t, "emph", doc.Items[0].Tag)
	assert.Equal(t, "hi", text(t, doc.Items[0].PosArgs[0]))
}

func TestEval_WrongMacroArgCount(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\def[arity=1]{shout}{\0!}\shout{a}{b}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.WrongMacroArgCount, evalErr.Kind)
}

func TestEval_NonzeroArityCalledEmpty(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\def[arity=1]{shout}{\0!}\shout`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.WrongMacroArgCount, evalErr.Kind)
}

func TestEval_WrongDefArgCount(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\def{onlyname}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.WrongDefArgCount, evalErr.Kind)
}

func TestEval_InvalidMacroName(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\def{\emph{x}}{body}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.InvalidMacroName, evalErr.Kind)
}

func TestEval_BadArity(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\def[arity=nope]{x}{body}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.BadArity, evalErr.Kind)
}

func TestEval_CommentContributesNothing(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `before\#{ignored}after`)
	require.NoError(t, err)
	assert.Equal(t, "beforeafter", text(t, doc))
}

func TestEval_Strip(t *testing.T) {
	t.Parallel()

	doc, err := evalSource(t, `\strip{  hi  }`)
	require.NoError(t, err)
	assert.Equal(t, "  hi  ", text(t, doc))
}

func TestEval_BadStrip(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\strip{a}{b}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.BadStrip, evalErr.Kind)
}

func TestEval_IncludeUnknownBase(t *testing.T) {
	t.Parallel()

	// Parsed with an empty filename (as stdin input is), so there is no
	// base directory to resolve \include's path against.
	_, err := evalSource(t, `\include{other.sst}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.UnknownBase, evalErr.Kind)
}

func TestEval_IncludeRawUnknownBase(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\includeraw{other.sst}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.UnknownBase, evalErr.Kind)
}

func TestEval_BadInclude(t *testing.T) {
	t.Parallel()

	_, err := evalSource(t, `\include{a}{b}`)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.BadInclude, evalErr.Kind)
}

func TestEval_IncludeResolvesRelativeToIncludingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	other := dir + "/other.sst"
	require.NoError(t, os.WriteFile(other, []byte("included text"), 0o600))

	doc, err := parser.ParseString(dir+"/main.sst", `\include{other.sst}`)
	require.NoError(t, err)

	result, err := eval.Eval(doc)
	require.NoError(t, err)
	assert.Equal(t, "included text", text(t, result))
}

func TestEval_IncludeRawResolvesRelativeToIncludingFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	other := dir + "/other.sst"
	require.NoError(t, os.WriteFile(other, []byte(`\emph{not expanded}`), 0o600))

	doc, err := parser.ParseString(dir+"/main.sst", `\includeraw{other.sst}`)
	require.NoError(t, err)

	result, err := eval.Eval(doc)
	require.NoError(t, err)
	assert.Equal(t, `\emph{not expanded}`, text(t, result))
}

func TestEval_IOError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	doc, err := parser.ParseString(dir+"/main.sst", `\include{missing.sst}`)
	require.NoError(t, err)

	_, err = eval.Eval(doc)
	require.Error(t, err)

	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.IOError, evalErr.Kind)
}
