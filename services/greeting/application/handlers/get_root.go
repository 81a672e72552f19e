package handlers

import (
	"net/http"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/httpx"
)

// GreetingResponse is returned by the root endpoint.
type GreetingResponse struct {
	Hello string `json:"Hello" example:"World"`
} // @name GreetingResponse

// GetRootHandler handles GET / requests.
type GetRootHandler struct{}

// NewGetRootHandler returns a GetRootHandler.
func NewGetRootHandler() *GetRootHandler {
	return &GetRootHandler{}
}

// Execute returns the root greeting.
//
//	@Summary		Root greeting
//	@Description	Returns a static greeting; useful as a smoke test for the API
//	@Tags			greeting
//	@Produce		json
//	@Success		200	{object}	GreetingResponse
//	@Router			/ [get]
func (h *GetRootHandler) Execute(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, GreetingResponse{Hello: "World"})
}
