package models

// Category is the fixed menu section a dish belongs to.
type Category string

const (
	CategoryMain     Category = "Main"
	CategorySoups    Category = "Soups"
	CategorySides    Category = "Sides"
	CategoryGrills   Category = "Grills"
	CategoryDrinks   Category = "Drinks"
	CategoryStarters Category = "Starters"
)

// Tag is a dietary or marketing label on a dish.
type Tag string

const (
	TagSpicy       Tag = "Spicy"
	TagVegan       Tag = "Vegan"
	TagGlutenFree  Tag = "Gluten-Free"
	TagChefSpecial Tag = "Chef Special"
)

// Dish is one immutable catalog entry. Price is a whole-naira amount.
type Dish struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Tags        []Tag    `json:"tags,omitempty"`
}

// HasTag reports whether the dish carries the given tag.
func (d Dish) HasTag(tag Tag) bool {
	for _, t := range d.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// SortMode controls the ordering of a filtered menu view.
type SortMode string

const (
	SortDefault   SortMode = "default"
	SortPriceLow  SortMode = "price-low"
	SortPriceHigh SortMode = "price-high"
)

// FilterState is the transient combination of view parameters applied to the
// catalog. The zero value means "All" categories, no tags, no query, default order.
type FilterState struct {
	Category string
	Tags     []Tag
	Query    string
	Sort     SortMode
}
