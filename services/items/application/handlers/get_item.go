package handlers

import (
	"net/http"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/errhttp"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/httpx"
	pkgvalidator "github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/validator"
	appsvcs "github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/application/services"
)

// GetItemResponse is returned by GET /items/{item_id}.
// Q is null when the query parameter was not supplied.
type GetItemResponse struct {
	ItemID int     `json:"item_id" example:"42"`
	Q      *string `json:"q"       example:"foo"`
} // @name GetItemResponse

// ValidationErrorResponse is returned when request inputs fail type coercion
// or schema validation.
type ValidationErrorResponse struct {
	Error  string            `json:"error"  example:"Validation failed"`
	Fields map[string]string `json:"fields"`
} // @name ValidationErrorResponse

// ErrorResponse is returned on non-validation errors.
type ErrorResponse struct {
	Error string `json:"error" example:"Invalid JSON"`
} // @name ErrorResponse

// GetItemHandler handles GET /items/{item_id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute reads an item by its ID.
//
//	@Summary		Read item
//	@Description	Returns the requested item ID together with the optional query filter
//	@Tags			items
//	@Produce		json
//	@Param			item_id	path		int		true	"Item ID"
//	@Param			q		query		string	false	"Optional query filter"
//	@Success		200		{object}	GetItemResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items/{item_id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := pkgvalidator.IntParam(r, "item_id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	read, err := h.svc.Item.Get(r.Context(), itemID, pkgvalidator.OptionalQuery(r, "q"))
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, GetItemResponse{
		ItemID: read.ItemID,
		Q:      read.Q,
	})
}
