package models

// Item is the demo's only data schema: a named, priced product with an
// optional offer flag. Items live for a single request; nothing is persisted.
type Item struct {
	Name    string
	Price   float64
	IsOffer *bool // nil when the caller omitted the flag
}

// NewItem constructs an Item from already type-checked request fields.
func NewItem(name string, price float64, isOffer *bool) *Item {
	return &Item{
		Name:    name,
		Price:   price,
		IsOffer: isOffer,
	}
}
