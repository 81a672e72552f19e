package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/app"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/application/handlers"
	appsvcs "github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/application/services"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/items", func(r chi.Router) {
		r.Get("/{item_id}", handlers.NewGetItemHandler(svcs).Execute)
		r.Put("/{item_id}", handlers.NewPutItemHandler(svcs).Execute)
	})
}
