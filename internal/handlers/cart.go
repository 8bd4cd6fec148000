package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OlamideOlanipekun/NaijaBites/internal/services"
)

type CartHandler struct {
	carts *services.CartService
}

func NewCartHandler(carts *services.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get returns the session cart with pricing and upsell suggestions.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.carts.View(r.Context(), sessionID(w, r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// AddItem adds one unit of a dish to the cart.
//
//	POST /api/v1/cart/items {"dish_id": "1"}
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DishID string `json:"dish_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}
	if req.DishID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "dish_id is required", r))
		return
	}

	session := sessionID(w, r)
	if _, err := h.carts.Add(r.Context(), session, req.DishID); err != nil {
		handleServiceError(w, r, err)
		return
	}

	view, err := h.carts.View(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// UpdateItem applies a quantity delta to a cart line. An unknown dish id is a
// no-op and still returns the (unchanged) cart.
//
//	PATCH /api/v1/cart/items/{id} {"delta": -1}
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	dishID := chi.URLParam(r, "id")

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("VALIDATION_ERROR", "Invalid request body", r))
		return
	}

	session := sessionID(w, r)
	if _, err := h.carts.UpdateQuantity(r.Context(), session, dishID, req.Delta); err != nil {
		handleServiceError(w, r, err)
		return
	}

	view, err := h.carts.View(r.Context(), session)
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// Checkout returns the final pricing summary and empties the cart. No order is
// created or charged.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	summary, err := h.carts.Checkout(r.Context(), sessionID(w, r))
	if err != nil {
		handleServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Order confirmed. Your delicacies are on the way!",
		"pricing": summary,
	})
}
