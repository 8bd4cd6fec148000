package catalog

import "github.com/OlamideOlanipekun/NaijaBites/internal/models"

// menuItems is the full dish catalog in presentation order. The order here is
// load-bearing: the "default" sort of the menu view preserves it exactly.
var menuItems = []models.Dish{
	{
		ID:          "1",
		Name:        "Party Jollof Rice",
		Price:       3500,
		Category:    models.CategoryMain,
		Description: "Smoky, authentic long-grain rice cooked in rich tomato and pepper sauce. Served with fried plantain and chicken.",
		Image:       "https://images.unsplash.com/photo-1628102476629-f80511d273d2?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagSpicy, models.TagChefSpecial},
	},
	{
		ID:          "2",
		Name:        "Pounded Yam & Egusi Soup",
		Price:       4500,
		Category:    models.CategorySoups,
		Description: "Freshly pounded yam served with rich melon seed soup, assorted meat, and fish.",
		Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagGlutenFree},
	},
	{
		ID:          "3",
		Name:        "Beef Suya (Naija Style)",
		Price:       2500,
		Category:    models.CategoryGrills,
		Description: "Spicy grilled beef skewers coated in traditional Yaji spice. Served with onions and tomatoes.",
		Image:       "https://images.unsplash.com/photo-1604328698692-f76ea9498e76?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagSpicy},
	},
	{
		ID:          "7",
		Name:        "Golden Puff Puff",
		Price:       1500,
		Category:    models.CategoryStarters,
		Description: "Deep-fried dough balls, soft, airy and sweet. A classic Nigerian street snack.",
		Image:       "https://images.unsplash.com/photo-1635363638580-c2809d049eee?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagVegan},
	},
	{
		ID:          "4",
		Name:        "Amala, Gbegiri & Ewedu",
		Price:       4000,
		Category:    models.CategorySoups,
		Description: "The legendary \"Abula\" - yam flour served with bean soup and jute leaves.",
		Image:       "https://images.unsplash.com/photo-1604328699546-512c96c4a631?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "5",
		Name:        "Ewa Agoyin",
		Price:       2200,
		Category:    models.CategoryMain,
		Description: "Extra soft mashed beans served with a signature dark spicy pepper sauce.",
		Image:       "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagVegan, models.TagSpicy},
	},
	{
		ID:          "6",
		Name:        "Zobo Drink",
		Price:       1000,
		Category:    models.CategoryDrinks,
		Description: "Refreshing chilled hibiscus flower infusion with ginger and pineapple hints.",
		Image:       "https://images.unsplash.com/photo-1582211594533-268f4f1edeb9?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagVegan, models.TagGlutenFree},
	},
	{
		ID:          "8",
		Name:        "Gizdodo",
		Price:       3000,
		Category:    models.CategoryStarters,
		Description: "A delicious combination of gizzard and fried plantain tossed in spicy pepper sauce.",
		Image:       "https://images.unsplash.com/photo-1604328701918-028f09071060?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagSpicy},
	},
	{
		ID:          "9",
		Name:        "Fried Plantain (Dodo)",
		Price:       1200,
		Category:    models.CategorySides,
		Description: "Sweet ripe plantain fried to a caramelised golden brown. The perfect partner for Jollof.",
		Image:       "https://images.unsplash.com/photo-1593280359364-5242f1958068?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagVegan, models.TagGlutenFree},
	},
	{
		ID:          "10",
		Name:        "Moi Moi",
		Price:       1500,
		Category:    models.CategorySides,
		Description: "Steamed bean pudding blended with peppers, onions and crayfish, wrapped in banana leaf.",
		Image:       "https://images.unsplash.com/photo-1605522561233-768ad7a8fabf?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagGlutenFree},
	},
	{
		ID:          "11",
		Name:        "Chapman Cocktail",
		Price:       1800,
		Category:    models.CategoryDrinks,
		Description: "The iconic Nigerian mocktail - a fizzy blend of citrus, grenadine and bitters over ice.",
		Image:       "https://images.unsplash.com/photo-1551024709-8f23befc6f87?auto=format&fit=crop&q=80&w=800",
	},
	{
		ID:          "12",
		Name:        "Asun (Peppered Goat)",
		Price:       3800,
		Category:    models.CategoryGrills,
		Description: "Smoky chunks of grilled goat meat tossed in fiery scotch bonnet pepper sauce.",
		Image:       "https://images.unsplash.com/photo-1544025162-d76694265947?auto=format&fit=crop&q=80&w=800",
		Tags:        []models.Tag{models.TagSpicy, models.TagChefSpecial},
	},
}

var testimonials = []models.Testimonial{
	{
		ID:      "1",
		Name:    "Chidi Okoro",
		Role:    "Food Blogger",
		Comment: "The Jollof rice here is the closest thing to my mother's cooking back in Lagos. Truly authentic!",
		Rating:  5,
		Avatar:  "https://i.pravatar.cc/150?u=chidi",
	},
	{
		ID:      "2",
		Name:    "Sarah Williams",
		Role:    "Regular Customer",
		Comment: "Best Suya in town! The Yaji spice is just perfect. Also, the Zobo is incredibly refreshing.",
		Rating:  5,
		Avatar:  "https://i.pravatar.cc/150?u=sarah",
	},
	{
		ID:      "3",
		Name:    "Adebayo Tunde",
		Role:    "Tech Lead",
		Comment: "Great atmosphere and even better food. The Amala is consistently soft and the Gbegiri is rich.",
		Rating:  4,
		Avatar:  "https://i.pravatar.cc/150?u=adebayo",
	},
}

var galleryItems = []models.GalleryItem{
	{ID: "1", URL: "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?auto=format&fit=crop&q=80&w=1200", Caption: "The Heart of Victoria Island Dining", Category: "Ambiance"},
	{ID: "2", URL: "https://images.unsplash.com/photo-1550966841-3ee5ad458e64?auto=format&fit=crop&q=80&w=1200", Caption: "Fire-Grilled Perfection: Suya Prep", Category: "Cuisine"},
	{ID: "3", URL: "https://images.unsplash.com/photo-1559339352-11d035aa65de?auto=format&fit=crop&q=80&w=1200", Caption: "Authentic Spice Market Selection", Category: "Culture"},
	{ID: "4", URL: "https://images.unsplash.com/photo-1514362545857-3bc16c4c7d1b?auto=format&fit=crop&q=80&w=1200", Caption: "Hand-Picked Hibiscus for Zobo", Category: "Cuisine"},
	{ID: "5", URL: "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?auto=format&fit=crop&q=80&w=1200", Caption: "A Celebration of Grains and Spices", Category: "Cuisine"},
	{ID: "6", URL: "https://images.unsplash.com/photo-1555396273-367ea4eb4db5?auto=format&fit=crop&q=80&w=1200", Caption: "Where Tradition Meets Modernity", Category: "Ambiance"},
	{ID: "7", URL: "https://images.unsplash.com/photo-1565299624946-b28f40a0ae38?auto=format&fit=crop&q=80&w=1200", Caption: "Rich Textures of West Africa", Category: "Culture"},
	{ID: "8", URL: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?auto=format&fit=crop&q=80&w=1200", Caption: "Event Hosting: Naija Style", Category: "Ambiance"},
}
