package ast

import "encoding/json"

// posJSON mirrors the wire shape of Pos: {filename?, line, column}.
type posJSON struct {
	Filename *string `json:"filename,omitempty"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
}

// MarshalJSON implements [json.Marshaler] for Pos, per §6.2: filename is
// omitted when absent.
func (p Pos) MarshalJSON() ([]byte, error) {
	return json.Marshal(posJSON{Filename: p.Filename, Line: p.Line, Column: p.Column})
}

// UnmarshalJSON implements [json.Unmarshaler] for Pos.
func (p *Pos) UnmarshalJSON(data []byte) error {
	var pj posJSON
	if err := json.Unmarshal(data, &pj); err != nil {
		return err
	}

	p.Filename = pj.Filename
	p.Line = pj.Line
	p.Column = pj.Column

	return nil
}

// itemJSON mirrors the wire shape of Item: either a {text, pos} object or a
// {tag, named_args?, pos_args?, pos} object, distinguished by which fields
// are present.
type itemJSON struct {
	Text      *string         `json:"text,omitempty"`
	Tag       *string         `json:"tag,omitempty"`
	NamedArgs map[string]Doc  `json:"named_args,omitempty"`
	PosArgs   []Doc           `json:"pos_args,omitempty"`
	Pos       json.RawMessage `json:"pos"`
}

// MarshalJSON implements [json.Marshaler] for Item.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Kind == Text {
		posData, err := json.Marshal(it.Pos)
		if err != nil {
			return nil, err
		}

		return json.Marshal(itemJSON{Text: &it.Text, Pos: posData})
	}

	posData, err := json.Marshal(it.ElementPos)
	if err != nil {
		return nil, err
	}

	ij := itemJSON{Tag: &it.Tag, Pos: posData}
	if len(it.NamedArgs) > 0 {
		ij.NamedArgs = it.NamedArgs
	}

	if len(it.PosArgs) > 0 {
		ij.PosArgs = it.PosArgs
	}

	return json.Marshal(ij)
}

// UnmarshalJSON implements [json.Unmarshaler] for Item.
func (it *Item) UnmarshalJSON(data []byte) error {
	var ij itemJSON
	if err := json.Unmarshal(data, &ij); err != nil {
		return err
	}

	var pos Pos
	if len(ij.Pos) > 0 {
		if err := json.Unmarshal(ij.Pos, &pos); err != nil {
			return err
		}
	}

	if ij.Text != nil {
		*it = Item{Kind: Text, Text: *ij.Text, Pos: pos}

		return nil
	}

	tag := ""
	if ij.Tag != nil {
		tag = *ij.Tag
	}

	*it = Item{
		Kind:       ElementItem,
		Tag:        tag,
		NamedArgs:  ij.NamedArgs,
		PosArgs:    ij.PosArgs,
		ElementPos: pos,
	}

	return nil
}

// MarshalJSON implements [json.Marshaler] for Doc: a Doc is a JSON array of
// Item.
func (d Doc) MarshalJSON() ([]byte, error) {
	items := d.Items
	if items == nil {
		items = []Item{}
	}

	return json.Marshal(items)
}

// UnmarshalJSON implements [json.Unmarshaler] for Doc.
func (d *Doc) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	d.Items = items

	return nil
}
