package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
)

func dishIDs(dishes []models.Dish) []string {
	ids := make([]string, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
	}
	return ids
}

func TestListFiltered_DefaultStatePreservesCatalogOrder(t *testing.T) {
	cat := New()

	got := cat.ListFiltered(models.FilterState{})

	require.Len(t, got, len(cat.Dishes()))
	assert.Equal(t, dishIDs(cat.Dishes()), dishIDs(got))
}

func TestListFiltered_CategoryExactMatch(t *testing.T) {
	cat := New()

	tests := []struct {
		name     string
		category string
		wantIDs  []string
	}{
		{"all matches everything", CategoryAll, dishIDs(cat.Dishes())},
		{"soups", "Soups", []string{"2", "4"}},
		{"grills", "Grills", []string{"3", "12"}},
		{"sides", "Sides", []string{"9", "10"}},
		{"unknown category matches nothing", "Desserts", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cat.ListFiltered(models.FilterState{Category: tc.category})
			assert.Equal(t, tc.wantIDs, dishIDs(got))
		})
	}
}

func TestListFiltered_SearchMatchesNameOrDescription(t *testing.T) {
	cat := New()

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"name match is case-insensitive", "JOLLOF", []string{"1"}},
		{"description match counts", "hibiscus", []string{"6"}},
		{"empty query matches everything", "", dishIDs(cat.Dishes())},
		{"whitespace query matches everything", "   ", dishIDs(cat.Dishes())},
		{"no match", "sushi", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := cat.ListFiltered(models.FilterState{Query: tc.query})
			assert.Equal(t, tc.wantIDs, dishIDs(got))
		})
	}
}

func TestListFiltered_TagsAreConjunctive(t *testing.T) {
	cat := New()

	// A single tag narrows to dishes carrying it.
	spicy := cat.ListFiltered(models.FilterState{Tags: []models.Tag{models.TagSpicy}})
	for _, d := range spicy {
		assert.True(t, d.HasTag(models.TagSpicy), "dish %s should be spicy", d.ID)
	}

	// Two tags require BOTH on the same dish, not either.
	veganSpicy := cat.ListFiltered(models.FilterState{
		Tags: []models.Tag{models.TagVegan, models.TagSpicy},
	})
	assert.Equal(t, []string{"5"}, dishIDs(veganSpicy), "only Ewa Agoyin is both vegan and spicy")

	// A dish with no tags never matches a non-empty tag set.
	for _, d := range veganSpicy {
		assert.NotEmpty(t, d.Tags)
	}
}

func TestListFiltered_AllPredicatesAnded(t *testing.T) {
	cat := New()

	got := cat.ListFiltered(models.FilterState{
		Category: "Main",
		Query:    "beans",
		Tags:     []models.Tag{models.TagVegan},
	})

	assert.Equal(t, []string{"5"}, dishIDs(got))
}

func TestListFiltered_SortByPrice(t *testing.T) {
	cat := New()

	low := cat.ListFiltered(models.FilterState{Sort: models.SortPriceLow})
	require.NotEmpty(t, low)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}
	assert.Equal(t, 1000, low[0].Price)
	assert.Equal(t, 4500, low[len(low)-1].Price)

	high := cat.ListFiltered(models.FilterState{Sort: models.SortPriceHigh})
	require.NotEmpty(t, high)
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
	assert.Equal(t, 4500, high[0].Price)
	assert.Equal(t, 1000, high[len(high)-1].Price)
}

func TestListFiltered_SortIsStableOnEqualPrices(t *testing.T) {
	cat := New()

	// Golden Puff Puff ("7") and Moi Moi ("10") are both 1500; catalog order
	// has "7" first and must survive the sort.
	got := cat.ListFiltered(models.FilterState{Sort: models.SortPriceLow})

	var equalPriced []string
	for _, d := range got {
		if d.Price == 1500 {
			equalPriced = append(equalPriced, d.ID)
		}
	}
	assert.Equal(t, []string{"7", "10"}, equalPriced)
}

func TestListFiltered_SortNeverMutatesCatalog(t *testing.T) {
	cat := New()
	before := dishIDs(cat.Dishes())

	cat.ListFiltered(models.FilterState{Sort: models.SortPriceHigh})
	cat.ListFiltered(models.FilterState{Sort: models.SortPriceLow})

	assert.Equal(t, before, dishIDs(cat.Dishes()))
}

func TestGet(t *testing.T) {
	cat := New()

	dish, ok := cat.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Party Jollof Rice", dish.Name)
	assert.Equal(t, 3500, dish.Price)

	_, ok = cat.Get("999")
	assert.False(t, ok)
}

func TestStaticContent(t *testing.T) {
	cat := New()

	assert.Len(t, cat.Testimonials(), 3)
	assert.Len(t, cat.Gallery(), 8)

	for _, item := range cat.Gallery() {
		assert.Contains(t, []string{"Cuisine", "Ambiance", "Culture"}, item.Category)
	}
}
