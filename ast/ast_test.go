package ast_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sstlang/sst/ast"
)

func TestDocAppendMergesAdjacentText(t *testing.T) {
	t.Parallel()

	var d ast.Doc
	d.AppendText("Hello ", ast.NewPos("", 0, 0))
	d.AppendText("World", ast.NewPos("", 0, 6))

	require.Len(t, d.Items, 1)
	assert.Equal(t, "Hello World", d.Items[0].Text)
}

func TestDocAppendDropsEmptyText(t *testing.T) {
	t.Parallel()

	var d ast.Doc
	d.AppendText("", ast.NewPos("", 0, 0))
	assert.True(t, d.IsEmpty())
}

func TestItemIsEmpty(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		item ast.Item
		want bool
	}{
		"no pos args": {
			item: ast.NewElement("foo", nil, nil, ast.Pos{}),
			want: true,
		},
		"one empty pos arg": {
			item: ast.NewElement("foo", nil, []ast.Doc{{}}, ast.Pos{}),
			want: true,
		},
		"one nonempty pos arg": {
			item: ast.NewElement("foo", nil, []ast.Doc{ast.NewDoc(ast.NewText("x", ast.Pos{}))}, ast.Pos{}),
			want: false,
		},
		"two pos args": {
			item: ast.NewElement("foo", nil, []ast.Doc{{}, {}}, ast.Pos{}),
			want: false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.item.IsEmpty())
		})
	}
}

func TestPosJSONOmitsAbsentFilename(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ast.NewPos("", 1, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"line":1,"column":2}`, string(data))

	data, err = json.Marshal(ast.NewPos("a.sst", 1, 2))
	require.NoError(t, err)
	assert.JSONEq(t, `{"filename":"a.sst","line":1,"column":2}`, string(data))
}

func TestDocJSONRoundTrip(t *testing.T) {
	t.Parallel()

	d := ast.NewDoc(
		ast.NewText("Hello ", ast.NewPos("", 0, 0)),
		ast.NewElement("emph",
			nil,
			[]ast.Doc{ast.NewDoc(ast.NewText("World", ast.NewPos("", 0, 12)))},
			ast.NewPos("", 0, 6)),
		ast.NewText("!", ast.NewPos("", 0, 18)),
	)

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got ast.Doc
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got.Items, 3)
	assert.Equal(t, "Hello ", got.Items[0].Text)
	assert.Equal(t, "emph", got.Items[1].Tag)
	assert.Equal(t, "!", got.Items[2].Text)
}
