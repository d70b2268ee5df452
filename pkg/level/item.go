package level

import "fmt"

// ItemKind is the closed set of item variants a room may hold.
type ItemKind string

const (
	KindNone    ItemKind = "none"
	KindRelic   ItemKind = "relic"
	KindVillain ItemKind = "villain"
)

// Item is a value placed in a room. Relics are auto-collected on entry;
// the villain triggers win/loss evaluation.
type Item struct {
	Name string   `json:"name"`
	Kind ItemKind `json:"type"`
}

// NewItem builds an Item from its wire kind, rejecting unknown kinds.
func NewItem(kind, name string) (*Item, error) {
	switch ItemKind(kind) {
	case KindRelic:
		return &Item{Name: name, Kind: KindRelic}, nil
	case KindVillain:
		return &Item{Name: name, Kind: KindVillain}, nil
	default:
		return nil, fmt.Errorf("unknown item type: %q", kind)
	}
}

func (i *Item) IsVillain() bool {
	return i != nil && i.Kind == KindVillain
}

func (i *Item) IsRelic() bool {
	return i != nil && i.Kind == KindRelic
}
