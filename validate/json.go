package validate

import "encoding/json"

// instanceJSON mirrors the wire shape of an Instance: a {kind: ...} object
// tagged by variant, with only the fields relevant to that variant present
// (§6.2's "Instance tags variants; Element emits tag, children").
type instanceJSON struct {
	Kind     string       `json:"kind"`
	Text     string       `json:"text,omitempty"`
	Tag      string       `json:"tag,omitempty"`
	Children *[]*Instance `json:"children,omitempty"`
	Child    *Instance    `json:"child,omitempty"`
	Branch   *int         `json:"branch,omitempty"`
}

func (k InstanceKind) wireName() string {
	switch k {
	case InstanceText:
		return "text"
	case InstanceElement:
		return "element"
	case InstancePara:
		return "para"
	case InstanceSeq:
		return "seq"
	case InstanceChoice:
		return "choice"
	case InstanceMany:
		return "many"
	default:
		return "unknown"
	}
}

// MarshalJSON implements [json.Marshaler] for Instance.
func (i Instance) MarshalJSON() ([]byte, error) {
	ij := instanceJSON{Kind: i.Kind.wireName()}

	children := i.Children
	if children == nil {
		children = []*Instance{}
	}

	switch i.Kind {
	case InstanceText:
		ij.Text = i.Text
	case InstanceElement:
		ij.Tag = i.Tag
		ij.Children = &children
	case InstancePara:
		ij.Child = i.Child
	case InstanceSeq:
		ij.Children = &children
	case InstanceChoice:
		branch := i.Branch
		ij.Branch = &branch
		ij.Child = i.Child
	case InstanceMany:
		ij.Children = &children
	}

	return json.Marshal(ij)
}
