package handlers

import (
	"net/http"

	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/errhttp"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/httpx"
	pkgvalidator "github.com/Kirankumarvel/FastAPI-Auto-Docs/pkg/validator"
	appsvcs "github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/application/services"
	"github.com/Kirankumarvel/FastAPI-Auto-Docs/services/items/domain/models"
)

// UpdateItemRequest is the request body for PUT /items/{item_id}.
// Price is a pointer so an explicit zero price passes the required check.
type UpdateItemRequest struct {
	Name    string   `json:"name"     validate:"required" example:"pen"`
	Price   *float64 `json:"price"    validate:"required" example:"1.5"`
	IsOffer *bool    `json:"is_offer" example:"true"`
} // @name UpdateItemRequest

// UpdateItemResponse is returned on a successful item update.
type UpdateItemResponse struct {
	ItemName     string  `json:"item_name"     example:"pen"`
	ItemID       int     `json:"item_id"       example:"7"`
	UpdatedPrice float64 `json:"updated_price" example:"1.5"`
} // @name UpdateItemResponse

// PutItemHandler handles PUT /items/{item_id} requests.
type PutItemHandler struct {
	svc *appsvcs.Services
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute updates an item.
//
//	@Summary		Update item
//	@Description	Applies the supplied item data to the given ID and echoes the result
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		int					true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Item data"
//	@Success		200		{object}	UpdateItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ValidationErrorResponse
//	@Router			/items/{item_id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	itemID, err := pkgvalidator.IntParam(r, "item_id")
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	req, err := pkgvalidator.DecodeJSON[UpdateItemRequest](r)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	item := models.NewItem(req.Name, *req.Price, req.IsOffer)
	upd, err := h.svc.Item.Update(r.Context(), itemID, item)
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}

	httpx.JSON(w, http.StatusOK, UpdateItemResponse{
		ItemName:     upd.Name,
		ItemID:       upd.ItemID,
		UpdatedPrice: upd.Price,
	})
}
