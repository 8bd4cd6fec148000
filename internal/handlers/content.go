package handlers

import (
	"net/http"

	"github.com/OlamideOlanipekun/NaijaBites/internal/catalog"
)

// ContentHandler serves the static marketing content: testimonials and the
// photo gallery.
type ContentHandler struct {
	catalog *catalog.Catalog
}

func NewContentHandler(cat *catalog.Catalog) *ContentHandler {
	return &ContentHandler{catalog: cat}
}

func (h *ContentHandler) Testimonials(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"testimonials": h.catalog.Testimonials()})
}

func (h *ContentHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"gallery": h.catalog.Gallery()})
}
