package handlers

import (
	"net/http"
	"strings"

	"github.com/OlamideOlanipekun/NaijaBites/internal/catalog"
	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

type MenuHandler struct {
	catalog *catalog.Catalog
}

func NewMenuHandler(cat *catalog.Catalog) *MenuHandler {
	return &MenuHandler{catalog: cat}
}

// List returns the filtered, sorted menu view.
//
//	GET /api/v1/menu?category=Soups&tags=Spicy,Vegan&q=rice&sort=price-low
func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	state := models.FilterState{
		Category: q.Get("category"),
		Query:    q.Get("q"),
		Sort:     models.SortMode(q.Get("sort")),
	}
	if raw := q.Get("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				state.Tags = append(state.Tags, models.Tag(t))
			}
		}
	}

	dishes := h.catalog.ListFiltered(state)
	if dishes == nil {
		dishes = []models.Dish{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dishes": dishes,
		"count":  len(dishes),
	})
}

// Categories returns the fixed category filter bar.
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"categories": catalog.Categories})
}

// Tags returns the fixed dietary tag row.
func (h *MenuHandler) Tags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"tags": catalog.DietaryTags})
}
