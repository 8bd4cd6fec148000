package services

import (
	"context"

	"github.com/OlamideOlanipekun/NaijaBites/internal/catalog"
	"github.com/OlamideOlanipekun/NaijaBites/internal/models"
	"github.com/OlamideOlanipekun/NaijaBites/internal/repository"
)

// Pricing constants for the delivery rule, in whole naira.
const (
	FreeDeliveryThreshold = 15000
	DeliveryFlatFee       = 1500
	VATRate               = 0.075
)

// MaxSuggestions caps the upsell strip in the cart panel.
const MaxSuggestions = 3

// complementaryCategories are the categories eligible for upsell suggestions.
var complementaryCategories = map[models.Category]bool{
	models.CategorySides:    true,
	models.CategoryDrinks:   true,
	models.CategoryStarters: true,
}

// CartService owns all cart mutations and the derived pricing view. Every
// operation is a total function: unknown dish ids on quantity updates are
// silent no-ops, and quantities driven to zero remove the item outright.
type CartService struct {
	store   repository.CartStore
	catalog *catalog.Catalog
}

func NewCartService(store repository.CartStore, cat *catalog.Catalog) *CartService {
	return &CartService{store: store, catalog: cat}
}

// Add puts one unit of the dish into the session cart, merging with an
// existing line for the same dish, and marks the cart panel open.
func (s *CartService) Add(ctx context.Context, sessionID, dishID string) (*models.Cart, error) {
	dish, ok := s.catalog.Get(dishID)
	if !ok {
		return nil, &NotFoundError{Message: "Dish not found"}
	}

	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if item := cart.Find(dishID); item != nil {
		item.Quantity++
	} else {
		cart.Items = append(cart.Items, models.CartItem{Dish: dish, Quantity: 1})
	}
	cart.IsOpen = true

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity applies a signed delta to the line with the given dish id.
// The quantity floors at zero and a zero-quantity line is removed; this is the
// only removal path. An unknown id leaves the cart untouched.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, dishID string, delta int) (*models.Cart, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	item := cart.Find(dishID)
	if item == nil {
		return cart, nil
	}

	item.Quantity += delta
	if item.Quantity <= 0 {
		kept := cart.Items[:0]
		for _, it := range cart.Items {
			if it.ID != dishID {
				kept = append(kept, it)
			}
		}
		cart.Items = kept
	}

	if err := s.store.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// SetOpen records the cart panel state for the session.
func (s *CartService) SetOpen(ctx context.Context, sessionID string, open bool) error {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	cart.IsOpen = open
	return s.store.Save(ctx, sessionID, cart)
}

// View returns the cart together with its pricing summary and upsell
// suggestions.
func (s *CartService) View(ctx context.Context, sessionID string) (*models.CartView, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &models.CartView{
		Cart:        *cart,
		Pricing:     Pricing(cart.Items),
		Suggestions: SuggestUpsell(s.catalog.Dishes(), cart.Items),
	}, nil
}

// Checkout is a terminal action: it returns the final pricing summary and
// empties the session cart. No order record is created anywhere.
func (s *CartService) Checkout(ctx context.Context, sessionID string) (*models.PricingSummary, error) {
	cart, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	summary := Pricing(cart.Items)
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return nil, err
	}
	return &summary, nil
}

// Pricing derives the order summary from the cart contents. The delivery fee
// is waived at or above the free-delivery threshold, VAT is 7.5% of the
// subtotal, and the progress indicator is clamped to 1.0.
func Pricing(items []models.CartItem) models.PricingSummary {
	var subtotal int
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	fee := DeliveryFlatFee
	if subtotal >= FreeDeliveryThreshold {
		fee = 0
	}

	vat := float64(subtotal) * VATRate

	progress := float64(subtotal) / float64(FreeDeliveryThreshold)
	if progress > 1 {
		progress = 1
	}

	return models.PricingSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		VAT:         vat,
		Total:       float64(subtotal+fee) + vat,
		Progress:    progress,
	}
}

// SuggestUpsell picks up to three complementary dishes (sides, drinks,
// starters) that are not already in the cart, preserving catalog order.
func SuggestUpsell(dishes []models.Dish, items []models.CartItem) []models.Dish {
	inCart := make(map[string]bool, len(items))
	for _, item := range items {
		inCart[item.ID] = true
	}

	var out []models.Dish
	for _, d := range dishes {
		if !complementaryCategories[d.Category] || inCart[d.ID] {
			continue
		}
		out = append(out, d)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out
}
