package ir

import "fmt"

type Type int

const (
	LeafType Type = iota
	TreeType
)

func (t Type) String() string {
	switch t {
	case LeafType:
		return "Leaf"
	case TreeType:
		return "Tree"
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	switch string(d) {
	case "Leaf":
		*t = LeafType
	case "Tree":
		*t = TreeType
	default:
		return fmt.Errorf("unrecognized type %q", d)
	}
	return nil
}

func Types() []Type {
	return []Type{LeafType, TreeType}
}
