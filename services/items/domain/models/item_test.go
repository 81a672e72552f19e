package models_test

import (
	"testing"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/domain/models"
)

func TestNewItem(t *testing.T) {
	offer := true
	item := models.NewItem("pen", 1.5, &offer)

	if item.Name != "pen" {
		t.Errorf("unexpected Name: %q", item.Name)
	}
	if item.Price != 1.5 {
		t.Errorf("unexpected Price: %v", item.Price)
	}
	if item.IsOffer == nil || !*item.IsOffer {
		t.Errorf("unexpected IsOffer: %v", item.IsOffer)
	}
}

func TestNewItem_offerOmitted(t *testing.T) {
	item := models.NewItem("pen", 1.5, nil)
	if item.IsOffer != nil {
		t.Errorf("expected nil IsOffer, got %v", *item.IsOffer)
	}
}
