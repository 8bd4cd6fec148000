// Package catalog owns the static dish catalog and the pure filtering and
// sorting engine behind the menu view. The data is loaded once and never
// mutated; every accessor returns copies.
package catalog

import (
	"sort"
	"strings"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

// CategoryAll is the sentinel category that matches every dish.
const CategoryAll = "All"

// Categories is the category filter bar, in display order.
var Categories = []string{
	CategoryAll,
	string(models.CategoryStarters),
	string(models.CategoryMain),
	string(models.CategorySoups),
	string(models.CategorySides),
	string(models.CategoryGrills),
	string(models.CategoryDrinks),
}

// DietaryTags is the tag filter row, in display order.
var DietaryTags = []models.Tag{
	models.TagSpicy,
	models.TagVegan,
	models.TagGlutenFree,
	models.TagChefSpecial,
}

// Catalog is the immutable dish catalog.
type Catalog struct {
	dishes []models.Dish
	byID   map[string]models.Dish
}

// New builds the catalog from the static menu data.
func New() *Catalog {
	byID := make(map[string]models.Dish, len(menuItems))
	for _, d := range menuItems {
		byID[d.ID] = d
	}
	return &Catalog{dishes: menuItems, byID: byID}
}

// Dishes returns a copy of the full catalog in insertion order.
func (c *Catalog) Dishes() []models.Dish {
	out := make([]models.Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

// Get looks up a dish by id.
func (c *Catalog) Get(id string) (models.Dish, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// Testimonials returns the customer reviews for the carousel.
func (c *Catalog) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(testimonials))
	copy(out, testimonials)
	return out
}

// Gallery returns the photo gallery entries.
func (c *Catalog) Gallery() []models.GalleryItem {
	out := make([]models.GalleryItem, len(galleryItems))
	copy(out, galleryItems)
	return out
}

// ListFiltered applies the filter state to the catalog and returns the
// resulting view. Category match is exact unless the category is "All". A dish
// matches the query when it is a case-insensitive substring of the name or the
// description (empty query matches everything). A dish matches the tag set
// only when every selected tag is present on the dish. The three predicates
// are ANDed; pre-sort order is catalog insertion order, and sorting is stable
// and never touches the catalog itself.
func (c *Catalog) ListFiltered(state models.FilterState) []models.Dish {
	query := strings.ToLower(strings.TrimSpace(state.Query))

	var out []models.Dish
	for _, d := range c.dishes {
		if !matchesCategory(d, state.Category) {
			continue
		}
		if !matchesQuery(d, query) {
			continue
		}
		if !matchesTags(d, state.Tags) {
			continue
		}
		out = append(out, d)
	}

	switch state.Sort {
	case models.SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}

	return out
}

func matchesCategory(d models.Dish, category string) bool {
	return category == "" || category == CategoryAll || string(d.Category) == category
}

func matchesQuery(d models.Dish, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Description), query)
}

func matchesTags(d models.Dish, tags []models.Tag) bool {
	for _, tag := range tags {
		if !d.HasTag(tag) {
			return false
		}
	}
	return true
}
