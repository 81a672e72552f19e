package app

import (
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/config"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context
// methods and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "reading item", "item_id", id)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger logger.Logger
	Config *config.Config
}
