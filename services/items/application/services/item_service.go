package services

import (
	"context"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/domain/models"
)

// ItemRead is the result of an item lookup: the requested ID plus the
// optional query filter echoed back.
type ItemRead struct {
	ItemID int
	Q      *string
}

// ItemUpdate is the result of an item update: the new name and price bound
// to the requested ID.
type ItemUpdate struct {
	ItemID int
	Name   string
	Price  float64
}

// ItemService implements the item operations. The API is deliberately an
// echo: there is no store behind it, so reads and updates reflect their
// typed inputs straight back to the caller.
type ItemService struct{}

// NewItemService returns an ItemService.
func NewItemService() *ItemService {
	return &ItemService{}
}

// Get returns the read model for the given item ID and optional filter.
func (s *ItemService) Get(_ context.Context, itemID int, q *string) (*ItemRead, error) {
	return &ItemRead{ItemID: itemID, Q: q}, nil
}

// Update applies item to the given ID and returns the update result.
func (s *ItemService) Update(_ context.Context, itemID int, item *models.Item) (*ItemUpdate, error) {
	return &ItemUpdate{
		ItemID: itemID,
		Name:   item.Name,
		Price:  item.Price,
	}, nil
}
