package services

import (
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/app"
)

// Services is the application-layer service container for this bounded context.
type Services struct {
	Item *ItemService
}

// New wires all item application services. The Application container is
// accepted for parity with other services even though items needs no
// infrastructure today.
func New(_ *app.Application) *Services {
	return &Services{
		Item: NewItemService(),
	}
}
