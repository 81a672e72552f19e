package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/app"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/greeting/application/handlers"
)

// GreetingRoutes registers the greeting endpoint on the provided chi router.
func GreetingRoutes(r chi.Router, _ *app.Application) {
	r.Get("/", handlers.NewGetRootHandler().Execute)
}
