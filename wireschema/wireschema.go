package wireschema

import "github.com/google/jsonschema-go/jsonschema"

const (
	typeObject  = "object"
	typeArray   = "array"
	typeString  = "string"
	typeInteger = "integer"
)

// posSchema describes the wire shape of [ast.Pos]: {filename?, line, column}.
func posSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"filename": {Type: typeString},
			"line":     {Type: typeInteger, Minimum: jsonschema.Ptr(float64(0))},
			"column":   {Type: typeInteger, Minimum: jsonschema.Ptr(float64(0))},
		},
		Required:             []string{"line", "column"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// docSchemaDepth bounds the recursive descent through nested argument Docs
// in [docSchema]/[itemSchema], for the same reason as
// [instanceSchemaDepth]: Item arguments are themselves Docs, so the true
// shape nests as deep as the source document does.
const docSchemaDepth = 8

// itemSchema describes the wire shape of [ast.Item]: either a text object
// {text, pos} or an element object {tag, named_args?, pos_args?, pos}.
// depth bounds how many nested argument-Doc levels are described
// structurally before bottoming out in an unconstrained array.
func itemSchema(depth int) *jsonschema.Schema {
	var nestedDoc *jsonschema.Schema
	if depth <= 0 {
		nestedDoc = &jsonschema.Schema{Type: typeArray}
	} else {
		nestedDoc = docSchema(depth - 1)
	}

	textItem := &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"text": {Type: typeString},
			"pos":  posSchema(),
		},
		Required:             []string{"text", "pos"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	elementItem := &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"tag":        {Type: typeString},
			"named_args": {Type: typeObject, AdditionalProperties: nestedDoc},
			"pos_args":   {Type: typeArray, Items: nestedDoc},
			"pos":        posSchema(),
		},
		Required:             []string{"tag", "pos"},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}

	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{textItem, elementItem}}
}

// docSchema describes the wire shape of [ast.Doc]: a JSON array of Item.
func docSchema(depth int) *jsonschema.Schema {
	return &jsonschema.Schema{Type: typeArray, Items: itemSchema(depth)}
}

// DocSchema returns a fresh *jsonschema.Schema describing [ast.Doc], the
// wire format `sst parse` and `sst eval` emit.
func DocSchema() *jsonschema.Schema {
	s := docSchema(docSchemaDepth)
	s.Title = "SST Doc"
	s.Description = "An ordered sequence of Item: either a text run {text, pos} or an element {tag, named_args?, pos_args?, pos}."

	return s
}

// instanceSchema describes the wire shape of [validate.Instance]: a
// {kind: ...} object tagged by variant, per validate/json.go. depth bounds
// how many nested "children"/"child" levels are described structurally
// before bottoming out in an unconstrained object -- jsonschema-go's
// Schema is a plain struct with no $ref/$defs indirection exercised
// elsewhere in this pack, so an unbounded tree is approximated rather
// than expressed as a true fixed-point.
func instanceSchema(depth int) *jsonschema.Schema {
	var nested *jsonschema.Schema
	if depth <= 0 {
		nested = &jsonschema.Schema{Type: typeObject}
	} else {
		nested = instanceSchema(depth - 1)
	}

	text := &jsonschema.Schema{
		Type:       typeObject,
		Properties: map[string]*jsonschema.Schema{"kind": constString("text"), "text": {Type: typeString}},
		Required:   []string{"kind", "text"},
	}

	element := &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"kind":     constString("element"),
			"tag":      {Type: typeString},
			"children": {Type: typeArray, Items: nested},
		},
		Required: []string{"kind", "tag", "children"},
	}

	para := &jsonschema.Schema{
		Type:       typeObject,
		Properties: map[string]*jsonschema.Schema{"kind": constString("para"), "child": nested},
		Required:   []string{"kind", "child"},
	}

	seq := &jsonschema.Schema{
		Type:       typeObject,
		Properties: map[string]*jsonschema.Schema{"kind": constString("seq"), "children": {Type: typeArray, Items: nested}},
		Required:   []string{"kind", "children"},
	}

	choice := &jsonschema.Schema{
		Type: typeObject,
		Properties: map[string]*jsonschema.Schema{
			"kind":   constString("choice"),
			"branch": {Type: typeInteger, Minimum: jsonschema.Ptr(float64(0))},
			"child":  nested,
		},
		Required: []string{"kind", "branch", "child"},
	}

	many := &jsonschema.Schema{
		Type:       typeObject,
		Properties: map[string]*jsonschema.Schema{"kind": constString("many"), "children": {Type: typeArray, Items: nested}},
		Required:   []string{"kind", "children"},
	}

	return &jsonschema.Schema{OneOf: []*jsonschema.Schema{text, element, para, seq, choice, many}}
}

// instanceSchemaDepth bounds the recursive descent in [instanceSchema].
// Real instance trees nest as deep as the schema being validated against,
// so this is a pragmatic approximation, not a structural guarantee --
// deeper trees still round-trip through `sst check --json`, they just
// validate their tail against the unconstrained object at the bottom.
const instanceSchemaDepth = 8

// InstanceSchema returns a fresh *jsonschema.Schema describing
// [validate.Instance], the wire format `sst check --json` emits.
func InstanceSchema() *jsonschema.Schema {
	s := instanceSchema(instanceSchemaDepth)
	s.Title = "SST Instance"
	s.Description = "A validation proof tree mirroring the matched Pattern: text, element, para, seq, choice, or many."

	return s
}

func constString(v string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: typeString, Const: jsonschema.Ptr[any](v)}
}
