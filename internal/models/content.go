package models

// Testimonial is a customer review shown in the carousel.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}

// GalleryItem is one photo in the gallery, grouped by theme.
type GalleryItem struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Caption  string `json:"caption"`
	Category string `json:"category"` // Cuisine, Ambiance or Culture
}
